// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package naming

import (
	"fmt"
)

var _ = fmt.Print

const (
	// Marks a value that must never appear in names
	UnnamedMarker = "-"
	RegularName   = "Regular"
	// The neutral point of the width axis
	WidthDefault = 100
)

// name_part is the contribution of a single axis value to a name, "" for
// nothing.
func (self FontConfiguration) name_part(tag string, value float64) string {
	mapped, found := self.Axis_configs[tag].Names.Lookup(value)
	elide_regular := self.regular_elidable()
	if tag == WidthAxis && value == WidthDefault {
		switch mapped {
		case "", UnnamedMarker:
			return ""
		case RegularName:
			if elide_regular {
				return ""
			}
		}
		return mapped
	}
	if !found {
		if tag == WidthAxis {
			return ""
		}
		return tag + FormatValue(value)
	}
	switch mapped {
	case "", UnnamedMarker:
		return ""
	case RegularName:
		if elide_regular {
			return ""
		}
	}
	return mapped
}

// axis_walk visits axes in configured order and collects the non-empty
// contributions of the axes accepted by include.
func (self FontConfiguration) axis_walk(coord Coordinate, include func(AxisConfig) bool) []string {
	axes := self.UniqueAxes()
	parts := make([]string, 0, len(axes))
	for _, tag := range axes {
		value, found := coord.Get(tag)
		if !found || !include(self.Axis_configs[tag]) {
			continue
		}
		if part := self.name_part(tag, value); part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}
