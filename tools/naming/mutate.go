// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package naming

import (
	"fmt"
	"strings"
)

var _ = fmt.Print

// ParseAxesList parses the comma separated axis order as typed by a user.
func ParseAxesList(spec string) []string {
	ans := make([]string, 0, 4)
	for _, x := range strings.Split(spec, ",") {
		if x = strings.TrimSpace(x); x != "" {
			ans = append(ans, x)
		}
	}
	return ans
}

func (self FontConfiguration) with_axis_config(tag string, edit func(*AxisConfig)) FontConfiguration {
	ans := self.Clone()
	if ans.Axis_configs == nil {
		ans.Axis_configs = make(map[string]AxisConfig)
	}
	ac := ans.Axis_configs[tag]
	edit(&ac)
	ans.Axis_configs[tag] = ac
	return ans
}

func (self FontConfiguration) WithFamilyName(name string) FontConfiguration {
	ans := self.Clone()
	ans.Family_name = name
	return ans
}

// WithAxes replaces the axis list. Axes that were already present keep their
// configuration, new axes are seeded from the defaults table and the
// configuration of axes no longer listed is dropped.
func (self FontConfiguration) WithAxes(tags ...string) FontConfiguration {
	ans := FontConfiguration{Family_name: self.Family_name, Axes: make([]string, 0, len(tags)), Axis_configs: make(map[string]AxisConfig, len(tags))}
	for _, tag := range tags {
		if _, seen := ans.Axis_configs[tag]; seen {
			continue
		}
		ac, found := self.Axis_configs[tag]
		ac = ac.Clone()
		if !found || ac.Values == "" || ac.Names == nil {
			defaults := DefaultAxisConfig(tag)
			if ac.Values == "" {
				ac.Values = defaults.Values
			}
			if ac.Names == nil {
				ac.Names = defaults.Names
			}
		}
		ans.Axes = append(ans.Axes, tag)
		ans.Axis_configs[tag] = ac
	}
	return ans
}

func (self FontConfiguration) WithAxesString(spec string) FontConfiguration {
	return self.WithAxes(ParseAxesList(spec)...)
}

// WithoutAxis removes tag from the axis list together with all of its
// configuration.
func (self FontConfiguration) WithoutAxis(tag string) FontConfiguration {
	ans := self.Clone()
	axes := ans.Axes[:0]
	for _, x := range ans.Axes {
		if x != tag {
			axes = append(axes, x)
		}
	}
	ans.Axes = axes
	delete(ans.Axis_configs, tag)
	return ans
}

func (self FontConfiguration) WithAxisValues(tag, values string) FontConfiguration {
	return self.with_axis_config(tag, func(ac *AxisConfig) { ac.Values = values })
}

func (self FontConfiguration) WithAxisName(tag string, value float64, name string) FontConfiguration {
	return self.with_axis_config(tag, func(ac *AxisConfig) {
		if ac.Names == nil {
			ac.Names = make(NameMapping)
		}
		ac.Names[value] = name
	})
}

func (self FontConfiguration) WithoutAxisName(tag string, value float64) FontConfiguration {
	if _, found := self.Axis_configs[tag]; !found {
		return self.Clone()
	}
	return self.with_axis_config(tag, func(ac *AxisConfig) { delete(ac.Names, value) })
}

func (self FontConfiguration) WithSubfamily(tag string, on bool) FontConfiguration {
	return self.with_axis_config(tag, func(ac *AxisConfig) { ac.Is_subfamily = on })
}

func (self FontConfiguration) WithRegularElidable(tag string, on bool) FontConfiguration {
	return self.with_axis_config(tag, func(ac *AxisConfig) { ac.Regular_elidable = on })
}

// WithAxisNames replaces the whole name mapping of tag.
func (self FontConfiguration) WithAxisNames(tag string, names NameMapping) FontConfiguration {
	return self.with_axis_config(tag, func(ac *AxisConfig) {
		ac.Names = names.Clone()
		if ac.Names == nil {
			ac.Names = NameMapping{}
		}
	})
}
