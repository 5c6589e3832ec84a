// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package naming

import (
	"fmt"
	"strings"
	"unicode"
)

var _ = fmt.Print

type name_policy struct {
	include  func(AxisConfig) bool
	prefix   []string
	if_empty func() string
}

func all_axes(AxisConfig) bool { return true }
func style_axes(ac AxisConfig) bool { return !ac.Is_subfamily }
func subfamily_axes(ac AxisConfig) bool { return ac.Is_subfamily }
func regular_when_empty() string { return RegularName }

func (self FontConfiguration) assemble(coord Coordinate, policy name_policy) string {
	parts := self.axis_walk(coord, policy.include)
	if len(policy.prefix) > 0 {
		parts = append(policy.prefix[:len(policy.prefix):len(policy.prefix)], parts...)
	}
	if len(parts) == 0 && policy.if_empty != nil {
		return policy.if_empty()
	}
	return strings.Join(parts, " ")
}

// StyleName is the name of the instance within its family. Subfamily axes
// are left out and the result is never empty.
func (self FontConfiguration) StyleName(coord Coordinate) string {
	return self.assemble(coord, name_policy{include: style_axes, if_empty: regular_when_empty})
}

// VariableStyleName names the instance using every axis. It is empty for the
// default instance when Regular is elidable.
func (self FontConfiguration) VariableStyleName(coord Coordinate) string {
	return self.assemble(coord, name_policy{include: all_axes, if_empty: func() string {
		if self.regular_elidable() {
			return ""
		}
		return RegularName
	}})
}

// FamilyName is the base family name followed by the contributions of all
// subfamily axes.
func (self FontConfiguration) FamilyName(coord Coordinate) string {
	return self.assemble(coord, name_policy{include: subfamily_axes, prefix: []string{self.Family_name}})
}

func FullName(family_name, style_name string) string {
	return family_name + " " + style_name
}

func strip_whitespace(x string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '\ufeff' {
			return -1
		}
		return r
	}, x)
}

func PostscriptName(family_name, style_name string) string {
	return strip_whitespace(family_name) + "-" + strip_whitespace(style_name)
}

func (self FontConfiguration) Derive(coord Coordinate) NamedInstance {
	family, style := self.FamilyName(coord), self.StyleName(coord)
	return NamedInstance{
		Coordinate:          coord,
		Family_name:         family,
		Style_name:          style,
		Variable_style_name: self.VariableStyleName(coord),
		Full_name:           FullName(family, style),
		Postscript_name:     PostscriptName(family, style),
	}
}

// Instances recomputes the complete, ordered list of named instances. Nothing
// is cached, so calling it after any configuration change is always correct.
func Instances(cfg FontConfiguration) []NamedInstance {
	coords := Generate(cfg)
	ans := make([]NamedInstance, len(coords))
	for i, c := range coords {
		ans[i] = cfg.Derive(c)
	}
	return ans
}
