// License: GPLv3 Copyright: 2023, Kovid Goyal, <kovid at kovidgoyal.net>

package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

var _ = fmt.Print

// CachedValues persists a JSON serializable value, usually a pointer to a
// struct, in the cache directory.
type CachedValues[T any] struct {
	Name string
	Opts T
	// Defaults to CacheDir()
	Dir string
}

func (self *CachedValues[T]) Path() string {
	dir := self.Dir
	if dir == "" {
		dir = CacheDir()
	}
	return filepath.Join(dir, self.Name+".json")
}

// Load reads stored values into Opts. A missing file is not an error, Opts
// is left unchanged.
func (self *CachedValues[T]) Load() (T, error) {
	raw, err := os.ReadFile(self.Path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = nil
		}
		return self.Opts, err
	}
	if err = json.Unmarshal(raw, self.Opts); err != nil {
		err = fmt.Errorf("the cached values in %s are corrupted: %w", self.Path(), err)
	}
	return self.Opts, err
}

func (self *CachedValues[T]) Save() error {
	raw, err := json.MarshalIndent(self.Opts, "", "  ")
	if err != nil {
		return err
	}
	path := self.Path()
	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return AtomicUpdateFile(path, bytes.NewReader(raw), 0o600)
}

// Delete removes the stored values, it is not an error if there are none.
func (self *CachedValues[T]) Delete() error {
	if err := os.Remove(self.Path()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func NewCachedValues[T any](name string, initial_val T) *CachedValues[T] {
	return &CachedValues[T]{Name: name, Opts: initial_val}
}
