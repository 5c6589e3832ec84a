// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package fontconf

import (
	"errors"
	"fmt"

	"github.com/fontnametable/fontnames/tools/naming"
	"github.com/fontnametable/fontnames/tools/utils"
)

var _ = fmt.Print

const StateName = "state"

// State is the configuration as a set of independent keys, one per kind of
// setting, the same split the web version of this tool used for its
// browser storage.
type State struct {
	Family_name           string                        `json:"familyName"`
	Axes                  []string                      `json:"axes"`
	Axis_values           map[string]string             `json:"axisValues"`
	Axis_name_mappings    map[string]naming.NameMapping `json:"axisNameMappings"`
	Axis_subfamilies      map[string]bool               `json:"axisSubfamilies"`
	Axis_regular_elidable map[string]bool               `json:"axisRegularElidable"`
}

func StateFromConfig(cfg naming.FontConfiguration) *State {
	ans := State{
		Family_name:           cfg.Family_name,
		Axes:                  append([]string{}, cfg.Axes...),
		Axis_values:           make(map[string]string, len(cfg.Axis_configs)),
		Axis_name_mappings:    make(map[string]naming.NameMapping, len(cfg.Axis_configs)),
		Axis_subfamilies:      make(map[string]bool),
		Axis_regular_elidable: make(map[string]bool),
	}
	for tag, ac := range cfg.Axis_configs {
		ans.Axis_values[tag] = ac.Values
		ans.Axis_name_mappings[tag] = ac.Names.Clone()
		if ac.Is_subfamily {
			ans.Axis_subfamilies[tag] = true
		}
		if ac.Regular_elidable {
			ans.Axis_regular_elidable[tag] = true
		}
	}
	return &ans
}

// Config rebuilds the configuration. Every tag mentioned under any key gets
// an axis configuration.
func (self *State) Config() naming.FontConfiguration {
	ans := naming.FontConfiguration{Family_name: self.Family_name, Axes: append([]string{}, self.Axes...), Axis_configs: make(map[string]naming.AxisConfig)}
	touch := func(tag string, edit func(*naming.AxisConfig)) {
		ac := ans.Axis_configs[tag]
		edit(&ac)
		ans.Axis_configs[tag] = ac
	}
	for tag, values := range self.Axis_values {
		touch(tag, func(ac *naming.AxisConfig) { ac.Values = values })
	}
	for tag, names := range self.Axis_name_mappings {
		touch(tag, func(ac *naming.AxisConfig) { ac.Names = names.Clone() })
	}
	for tag, on := range self.Axis_subfamilies {
		touch(tag, func(ac *naming.AxisConfig) { ac.Is_subfamily = on })
	}
	for tag, on := range self.Axis_regular_elidable {
		touch(tag, func(ac *naming.AxisConfig) { ac.Regular_elidable = on })
	}
	return ans
}

// StateStore keeps a JSON snapshot of the last saved configuration in the
// cache directory, it is used to recover when there is no conf file.
type StateStore struct {
	cache *utils.CachedValues[*State]
}

// NewStateStore stores its snapshot in dir, or the cache directory if dir
// is empty.
func NewStateStore(dir string) *StateStore {
	ans := StateStore{cache: utils.NewCachedValues(StateName, &State{})}
	ans.cache.Dir = dir
	return &ans
}

func (self *StateStore) Path() string { return self.cache.Path() }

// Load returns the stored configuration, found is false if nothing has been
// stored yet.
func (self *StateStore) Load() (cfg naming.FontConfiguration, found bool, err error) {
	self.cache.Opts = &State{}
	s, err := self.cache.Load()
	if err != nil {
		return cfg, false, err
	}
	if s.Axes == nil && s.Axis_values == nil && s.Family_name == "" {
		return cfg, false, nil
	}
	return s.Config(), true, nil
}

func (self *StateStore) Save(cfg naming.FontConfiguration) error {
	self.cache.Opts = StateFromConfig(cfg)
	if err := self.cache.Save(); err != nil {
		return fmt.Errorf("failed to save state snapshot to %s: %w", self.Path(), err)
	}
	return nil
}

// Clear removes the snapshot.
func (self *StateStore) Clear() error {
	return self.cache.Delete()
}

// Savers saves to every member, continuing past failures.
type Savers []naming.Saver

func (self Savers) Save(cfg naming.FontConfiguration) error {
	errs := make([]error, 0, len(self))
	for _, s := range self {
		if err := s.Save(cfg); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
