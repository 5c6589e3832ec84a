// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package naming

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

var _ = fmt.Print

const (
	WeightAxis      = "wght"
	WidthAxis       = "wdth"
	OpticalSizeAxis = "opsz"
	ItalicAxis      = "ital"
	SlantAxis       = "slnt"
)

// AxisConfig is the per axis part of a FontConfiguration. Values is kept as
// the raw comma separated text the user typed, it is parsed only when
// instances are generated.
type AxisConfig struct {
	Values           string      `json:"values"`
	Names            NameMapping `json:"names,omitempty"`
	Is_subfamily     bool        `json:"is_subfamily,omitempty"`
	Regular_elidable bool        `json:"regular_elidable,omitempty"`
}

func (self AxisConfig) ParsedValues() []float64 {
	return ParseAxisValues(self.Values)
}

func (self AxisConfig) Clone() AxisConfig {
	ans := self
	ans.Names = self.Names.Clone()
	return ans
}

// FontConfiguration is an immutable snapshot of everything the naming rules
// read. All With* methods return modified copies and never touch the
// receiver.
type FontConfiguration struct {
	Family_name  string                `json:"family_name"`
	Axes         []string              `json:"axes"`
	Axis_configs map[string]AxisConfig `json:"axis_configs"`
}

func (self FontConfiguration) Clone() FontConfiguration {
	ans := FontConfiguration{Family_name: self.Family_name, Axes: slices.Clone(self.Axes)}
	if self.Axis_configs != nil {
		ans.Axis_configs = make(map[string]AxisConfig, len(self.Axis_configs))
		for tag, ac := range self.Axis_configs {
			ans.Axis_configs[tag] = ac.Clone()
		}
	}
	return ans
}

// AxisConfig returns the configuration for tag. A missing configuration is
// reported as not found and behaves as an axis with no values.
func (self FontConfiguration) AxisConfig(tag string) (AxisConfig, bool) {
	ac, found := self.Axis_configs[tag]
	return ac, found
}

// UniqueAxes returns the axis list with repeated tags removed, keeping the
// first occurrence.
func (self FontConfiguration) UniqueAxes() []string {
	ans := make([]string, 0, len(self.Axes))
	for _, tag := range self.Axes {
		if !slices.Contains(ans, tag) {
			ans = append(ans, tag)
		}
	}
	return ans
}

// The regular elidable flag is stored per axis but only the weight axis flag
// is ever consulted.
func (self FontConfiguration) regular_elidable() bool {
	return self.Axis_configs[WeightAxis].Regular_elidable
}

func (self FontConfiguration) Equal(other FontConfiguration) bool {
	if self.Family_name != other.Family_name || !slices.Equal(self.Axes, other.Axes) || len(self.Axis_configs) != len(other.Axis_configs) {
		return false
	}
	for tag, a := range self.Axis_configs {
		b, found := other.Axis_configs[tag]
		if !found || a.Values != b.Values || a.Is_subfamily != b.Is_subfamily || a.Regular_elidable != b.Regular_elidable || !maps.Equal(a.Names, b.Names) {
			return false
		}
	}
	return true
}

type AxisValue struct {
	Tag   string  `json:"tag" yaml:"tag"`
	Value float64 `json:"value" yaml:"value"`
}

// Coordinate is one generated instance location, in configured axis order.
type Coordinate []AxisValue

func (self Coordinate) Get(tag string) (float64, bool) {
	for _, av := range self {
		if av.Tag == tag {
			return av.Value, true
		}
	}
	return 0, false
}

func (self Coordinate) String() string {
	parts := make([]string, len(self))
	for i, av := range self {
		parts[i] = av.Tag + "=" + FormatValue(av.Value)
	}
	return strings.Join(parts, " ")
}

type NamedInstance struct {
	Coordinate          Coordinate `json:"coordinate" yaml:"coordinate,flow"`
	Family_name         string     `json:"family_name" yaml:"family_name"`
	Style_name          string     `json:"style_name" yaml:"style_name"`
	Variable_style_name string     `json:"variable_style_name" yaml:"variable_style_name"`
	Full_name           string     `json:"full_name" yaml:"full_name"`
	Postscript_name     string     `json:"postscript_name" yaml:"postscript_name"`
}
