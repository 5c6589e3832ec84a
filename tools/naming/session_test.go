// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package naming

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var _ = fmt.Print

type recording_saver struct {
	mutex sync.Mutex
	saved []FontConfiguration
	err   error
}

func (self *recording_saver) Save(cfg FontConfiguration) error {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	self.saved = append(self.saved, cfg)
	return self.err
}

func TestSession(t *testing.T) {
	saver := &recording_saver{}
	s := NewSession(DefaultConfiguration().WithFamilyName("Custom").WithAxes(WeightAxis), saver)
	if err := s.Update(func(c FontConfiguration) FontConfiguration { return c.WithAxisValues(WeightAxis, "400,700") }); err != nil {
		t.Fatal(err)
	}
	if len(s.Instances()) != 2 || len(saver.saved) != 1 || saver.saved[0].Axis_configs[WeightAxis].Values != "400,700" {
		t.Fatalf("Update was not applied and saved")
	}

	// mutating the returned copy must not leak into the session
	c := s.Config()
	c.Axes[0] = "XXXX"
	if s.Config().Axes[0] != WeightAxis {
		t.Fatalf("Config() did not return a copy")
	}

	var prompts []string
	done, err := s.Reset(func(p string) bool { prompts = append(prompts, p); return false })
	if done || err != nil || s.Config().Family_name != "Custom" || len(saver.saved) != 1 {
		t.Fatalf("Cancelled reset changed the session: %v %v", done, err)
	}
	done, err = s.Reset(func(string) bool { return true })
	if !done || err != nil {
		t.Fatalf("Confirmed reset did not happen: %v %v", done, err)
	}
	if !s.Config().Equal(DefaultConfiguration()) || len(saver.saved) != 2 {
		t.Fatalf("Reset did not restore and save the defaults")
	}
	if diff := cmp.Diff([]string{ResetPrompt}, prompts); diff != "" {
		t.Fatalf("Unexpected prompts:\n%s", diff)
	}

	saver.err = errors.New("disk full")
	err = s.Update(func(c FontConfiguration) FontConfiguration { return c.WithFamilyName("X") })
	if !errors.Is(err, saver.err) || s.Config().Family_name != "X" {
		t.Fatalf("Save failure not reported or update lost: %v", err)
	}
}

func TestSessionConcurrentUpdates(t *testing.T) {
	s := NewSession(FontConfiguration{}, nil)
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Update(func(c FontConfiguration) FontConfiguration {
				c.Axes = append(c.Axes, fmt.Sprintf("a%03d", i))
				return c
			})
		}()
	}
	wg.Wait()
	if n := len(s.Config().Axes); n != 50 {
		t.Fatalf("Lost updates, only %d axes present", n)
	}
}
