// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package fontfile

import (
	"fmt"
	"slices"
	"strings"

	"github.com/fontnametable/fontnames/tools/naming"
)

var _ = fmt.Print

// VisibleAxes is the tags of the axes not flagged as hidden, in font order.
func (self *Fvar) VisibleAxes() []string {
	ans := make([]string, 0, len(self.Axes))
	for _, a := range self.Axes {
		if !a.Hidden && !slices.Contains(ans, a.Tag) {
			ans = append(ans, a.Tag)
		}
	}
	return ans
}

// AxisValues returns the distinct values used for the axis tag by the named
// instances, in ascending order. Fonts without named instances give the
// minimum, default and maximum of the axis.
func (self *Fvar) AxisValues(tag string) []float64 {
	idx := slices.IndexFunc(self.Axes, func(a Axis) bool { return a.Tag == tag })
	if idx < 0 {
		return nil
	}
	ans := make([]float64, 0, len(self.Instances))
	for _, inst := range self.Instances {
		if idx < len(inst.Coordinates) {
			ans = append(ans, inst.Coordinates[idx])
		}
	}
	if len(ans) == 0 {
		a := self.Axes[idx]
		ans = append(ans, a.Min, a.Default, a.Max)
	}
	slices.Sort(ans)
	return slices.Compact(ans)
}

func format_values(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = naming.FormatValue(v)
	}
	return strings.Join(parts, ",")
}

// Seed replaces the axes of base with the visible axes of the font and
// their values. Name mappings, flags and the family name of axes that base
// already knows are kept, new axes start from the defaults.
func (self *Fvar) Seed(base naming.FontConfiguration) naming.FontConfiguration {
	ans := base.WithAxes(self.VisibleAxes()...)
	for _, tag := range ans.Axes {
		if values := self.AxisValues(tag); len(values) > 0 {
			ans = ans.WithAxisValues(tag, format_values(values))
		}
	}
	return ans
}
