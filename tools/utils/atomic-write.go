// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package utils

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

var _ = fmt.Print

// AtomicWriteFile writes data to a temporary file in the same directory as
// path and then renames it over path, so readers never see a partially
// written file. Symlinks at path are followed.
func AtomicWriteFile(path string, data io.Reader, perm os.FileMode) (err error) {
	if q, serr := filepath.EvalSymlinks(path); serr == nil {
		path = q
	} else if !errors.Is(serr, fs.ErrNotExist) {
		return serr
	}
	if path, err = filepath.Abs(path); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path))
	if err != nil {
		return err
	}
	removed := false
	defer func() {
		f.Close()
		if !removed {
			os.Remove(f.Name())
		}
	}()
	if _, err = io.Copy(f, data); err != nil {
		return err
	}
	if err = f.Chmod(perm); err != nil {
		return err
	}
	if err = f.Sync(); err != nil {
		return err
	}
	if err = os.Rename(f.Name(), path); err == nil {
		removed = true
	}
	return
}

// AtomicUpdateFile is AtomicWriteFile that preserves the permissions of an
// existing file. perms is used only when creating a new file.
func AtomicUpdateFile(path string, data io.Reader, perms ...fs.FileMode) (err error) {
	perm := fs.FileMode(0o666)
	if len(perms) > 0 {
		perm = perms[0]
	}
	s, err := os.Stat(path)
	if err == nil {
		perm = s.Mode().Perm()
	}
	return AtomicWriteFile(path, data, perm)
}
