// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package naming

import (
	"fmt"
	"sync/atomic"
)

var _ = fmt.Print

const ResetPrompt = "Are you sure you want to reset all settings to defaults? This will clear all your custom configurations."

type Saver interface {
	Save(FontConfiguration) error
}

// Session holds the current configuration. Changes replace the stored
// snapshot atomically so readers never observe a configuration that is
// being modified.
type Session struct {
	current atomic.Pointer[FontConfiguration]
	saver   Saver
}

func NewSession(initial FontConfiguration, saver Saver) *Session {
	ans := Session{saver: saver}
	c := initial.Clone()
	ans.current.Store(&c)
	return &ans
}

func (self *Session) Config() FontConfiguration {
	return self.current.Load().Clone()
}

func (self *Session) save() error {
	if self.saver == nil {
		return nil
	}
	if err := self.saver.Save(self.Config()); err != nil {
		return fmt.Errorf("failed to save font configuration: %w", err)
	}
	return nil
}

// Update applies mutate to a private copy of the current configuration and
// installs the result. mutate may be called more than once if another
// update wins the race.
func (self *Session) Update(mutate func(FontConfiguration) FontConfiguration) error {
	for {
		old := self.current.Load()
		n := mutate(old.Clone())
		if self.current.CompareAndSwap(old, &n) {
			break
		}
	}
	return self.save()
}

// Reset discards all configuration in favor of the defaults, but only if
// confirm agrees. The returned bool is true when the reset happened.
func (self *Session) Reset(confirm func(prompt string) bool) (bool, error) {
	if confirm != nil && !confirm(ResetPrompt) {
		return false, nil
	}
	d := DefaultConfiguration()
	self.current.Store(&d)
	return true, self.save()
}

func (self *Session) Instances() []NamedInstance {
	return Instances(*self.current.Load())
}
