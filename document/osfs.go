// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package document

import (
	"path/filepath"

	"github.com/hack-pad/hackpadfs"
	osfs "github.com/hack-pad/hackpadfs/os"
)

// OSFS returns the operating system filesystem and the path within it
// of the given (absolute or relative) operating system file path.
func OSFS(osPath string) (hackpadfs.FS, string, error) {
	abs, err := filepath.Abs(osPath)
	if err != nil {
		return nil, "", err
	}
	fsys := osfs.NewFS()
	p, err := fsys.FromOSPath(abs)
	if err != nil {
		return nil, "", err
	}
	return fsys, p, nil
}
