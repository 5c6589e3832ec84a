// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package naming

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var _ = fmt.Print

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityTip     Severity = "tip"
	SeverityWarning Severity = "warning"
)

type Tip struct {
	Severity Severity `json:"severity"`
	Title    string   `json:"title"`
	Message  string   `json:"message"`
}

// Conventional order of registered axes in style names
var IdealAxisOrder = []string{WidthAxis, WeightAxis, OpticalSizeAxis, ItalicAxis, SlantAxis}

const large_family_threshold = 16

func is_ideal_axis_order(axes []string) bool {
	last := -1
	for _, tag := range axes {
		if idx := slices.Index(IdealAxisOrder, tag); idx > -1 {
			if idx < last {
				return false
			}
			last = idx
		}
	}
	return true
}

// raw_token_count counts comma separated tokens without parsing them, an
// axis without values counts as one.
func raw_token_count(values string) int {
	if values == "" {
		return 1
	}
	return strings.Count(values, ",") + 1
}

// Tips analyses a configuration and returns advice about common naming
// conventions. It has no influence on the generated names.
func Tips(cfg FontConfiguration) (ans []Tip) {
	add := func(severity Severity, title, msg string, args ...any) {
		if len(args) > 0 {
			msg = fmt.Sprintf(msg, args...)
		}
		ans = append(ans, Tip{Severity: severity, Title: title, Message: msg})
	}
	has_axis := func(tag string) bool { return slices.Contains(cfg.Axes, tag) }
	names := func(tag string) NameMapping { return cfg.Axis_configs[tag].Names }

	if len(cfg.Axes) <= 2 && cfg.Family_name == DefaultFamilyName {
		add(SeverityInfo, "Font Naming Overview", `Variable Style Name is used for static instances, Style Name appears in font menus, PostScript Name has no spaces (hyphen separated) and Full Name includes the complete family name. Use "-" for default values that should not appear in style names.`)
	}

	if len(cfg.Axes) > 1 && !is_ideal_axis_order(cfg.Axes) {
		add(SeverityWarning, "Axis Order Convention", `Consider reordering axes to follow the recommended sequence: Width, Weight, Optical Size, Italic, Slant. Your current order (%s) determines the order of words in the generated style names. The conventional order gives the best compatibility across applications.`, strings.Join(cfg.Axes, ", "))
	}

	if len(cfg.Axes) > 0 && cfg.Axes[0] == ItalicAxis {
		add(SeverityInfo, "Italic First", `Having Italic as the first axis is unusual. Italic normally follows Weight and Width in style names ("Bold Italic" not "Italic Bold"). Consider moving it later in the sequence.`)
	}

	if has_axis(WidthAxis) {
		if name, _ := names(WidthAxis).Lookup(WidthDefault); name != UnnamedMarker {
			add(SeverityTip, "Width Naming Convention", `The default width value (100) is normally unnamed in style names. Use a hyphen (-) for the value 100 to omit it from style names. The width axis uses 100 as normal, with condensed values below and extended values above.`)
		}
	}

	if has_axis(WeightAxis) {
		// tokens that are not numbers still count, so a value list with no
		// usable weights gets the tip
		var tokens []string
		if raw := cfg.Axis_configs[WeightAxis].Values; raw != "" {
			tokens = strings.Split(raw, ",")
		}
		has_standard := slices.ContainsFunc(tokens, func(token string) bool {
			v, err := ParseValueKey(token)
			return err == nil && math.Mod(v, 100) == 0 && v >= 100 && v <= 900
		})
		if len(tokens) > 0 && !has_standard {
			add(SeverityTip, "Weight Axis Convention", `The weight axis normally uses values from 100 to 900 in steps of 100 (100=Thin, 400=Regular, 700=Bold, 900=Black). Standard weight values give better compatibility with design applications.`)
		}
	}

	total := 1
	for _, tag := range cfg.Axes {
		total *= raw_token_count(cfg.Axis_configs[tag].Values)
	}
	if total > large_family_threshold {
		add(SeverityWarning, "Large Font Family", `Your configuration generates %d instances. For families this large consider Typographic Family Names (Name ID 16) to create subfamilies, for example separate "%[2]s Condensed" and "%[2]s Extended" submenus instead of one large menu. Mark the relevant axes as subfamily axes.`, total, cfg.Family_name)
	}

	var opsz_values []float64
	if has_axis(OpticalSizeAxis) {
		opsz_values = cfg.Axis_configs[OpticalSizeAxis].ParsedValues()
		has_display := slices.ContainsFunc(opsz_values, func(v float64) bool { return v >= 72 })
		has_text := slices.ContainsFunc(opsz_values, func(v float64) bool { return v <= 18 })
		if has_display && has_text {
			add(SeverityInfo, "Optical Size Naming", `You have both text and display optical sizes. Consider descriptive names such as "Caption" (8-12pt), "Text" (14-18pt), "Subhead" (24-36pt) and "Display" (48pt and above) to help users pick the right size.`)
		}
	}

	width_100, _ := names(WidthAxis).Lookup(WidthDefault)
	all_opsz_named := len(opsz_values) > 0 && !slices.ContainsFunc(opsz_values, func(v float64) bool {
		name, _ := names(OpticalSizeAxis).Lookup(v)
		return name == ""
	})
	if (width_100 != "" && width_100 != UnnamedMarker) || all_opsz_named {
		add(SeverityTip, "Default Value Naming", `Use "-" (hyphen) to mark default values that should not appear in style names, such as normal width at 100 or the text optical size. Omitting default attributes follows the "Regular" elidable convention.`)
	}

	upper := cases.Upper(language.Und)
	for _, tag := range cfg.UniqueAxes() {
		if cfg.Axis_configs[tag].Is_subfamily {
			add(SeverityInfo, upper.String(tag)+" Subfamily Mode", `The %s axis will create separate font families (e.g. "%[2]s Condensed", "%[2]s Extended") instead of style variants within a single family. This keeps font menus for large families organized.`, tag, cfg.Family_name)
		}
	}
	return
}
