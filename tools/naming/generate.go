// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package naming

import (
	"fmt"
	"slices"
)

var _ = fmt.Print

type axis_values struct {
	tag    string
	values []float64
}

func (self FontConfiguration) axis_value_arrays() []axis_values {
	axes := self.UniqueAxes()
	ans := make([]axis_values, len(axes))
	for i, tag := range axes {
		ans[i] = axis_values{tag: tag, values: self.Axis_configs[tag].ParsedValues()}
	}
	return ans
}

// InstanceCount is the size of the cartesian product of all axis values,
// 1 when there are no axes.
func (self FontConfiguration) InstanceCount() int {
	total := 1
	for _, av := range self.axis_value_arrays() {
		total *= len(av.values)
	}
	return total
}

// Generate expands the configuration into every combination of axis values.
// The first axis varies slowest, values are used in the order given.
func Generate(cfg FontConfiguration) []Coordinate {
	arrays := cfg.axis_value_arrays()
	ans := make([]Coordinate, 0, cfg.InstanceCount())
	current := make(Coordinate, len(arrays))
	var generate_combinations func(index int)
	generate_combinations = func(index int) {
		if index == len(arrays) {
			ans = append(ans, slices.Clone(current))
			return
		}
		for _, v := range arrays[index].values {
			current[index] = AxisValue{Tag: arrays[index].tag, Value: v}
			generate_combinations(index + 1)
		}
	}
	generate_combinations(0)
	return ans
}
