// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package naming

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var _ = fmt.Print

func coord(pairs ...any) (ans Coordinate) {
	for i := 0; i < len(pairs); i += 2 {
		var v float64
		switch x := pairs[i+1].(type) {
		case int:
			v = float64(x)
		case float64:
			v = x
		}
		ans = append(ans, AxisValue{Tag: pairs[i].(string), Value: v})
	}
	return
}

func weight_width(weights, widths string) FontConfiguration {
	return DefaultConfiguration().WithAxisValues(WeightAxis, weights).WithAxisValues(WidthAxis, widths)
}

type name_row struct {
	Coords, Family, Style, Variable, Full, Postscript string
}

func rows(instances []NamedInstance) []name_row {
	ans := make([]name_row, len(instances))
	for i, x := range instances {
		ans[i] = name_row{x.Coordinate.String(), x.Family_name, x.Style_name, x.Variable_style_name, x.Full_name, x.Postscript_name}
	}
	return ans
}

func TestRegularAndBold(t *testing.T) {
	cfg := weight_width("400,700", "100")
	expected := []name_row{
		{"wght=400 wdth=100", "MyFont", "Regular", "Regular", "MyFont Regular", "MyFont-Regular"},
		{"wght=700 wdth=100", "MyFont", "Bold", "Bold", "MyFont Bold", "MyFont-Bold"},
	}
	if diff := cmp.Diff(expected, rows(Instances(cfg))); diff != "" {
		t.Fatalf("Unexpected instances:\n%s", diff)
	}

	cfg = cfg.WithRegularElidable(WeightAxis, true)
	expected = []name_row{
		{"wght=400 wdth=100", "MyFont", "Regular", "", "MyFont Regular", "MyFont-Regular"},
		{"wght=700 wdth=100", "MyFont", "Bold", "Bold", "MyFont Bold", "MyFont-Bold"},
	}
	if diff := cmp.Diff(expected, rows(Instances(cfg))); diff != "" {
		t.Fatalf("Unexpected instances with Regular elidable:\n%s", diff)
	}
}

func TestSubfamilyAxis(t *testing.T) {
	cfg := FontConfiguration{
		Family_name: "MyFont",
		Axes:        []string{WidthAxis},
		Axis_configs: map[string]AxisConfig{
			WidthAxis: {Values: "75,100", Names: NameMapping{75: "Condensed", 100: "-"}, Is_subfamily: true},
		},
	}
	for c, expected := range map[float64]string{75: "MyFont Condensed", 100: "MyFont"} {
		if actual := cfg.FamilyName(coord(WidthAxis, c)); actual != expected {
			t.Fatalf("Family name for wdth=%v: %#v != %#v", c, expected, actual)
		}
	}
	inst := cfg.Derive(coord(WidthAxis, 75))
	if diff := cmp.Diff(name_row{"wdth=75", "MyFont Condensed", "Regular", "Condensed", "MyFont Condensed Regular", "MyFontCondensed-Regular"}, rows([]NamedInstance{inst})[0]); diff != "" {
		t.Fatalf("Unexpected names for subfamily instance:\n%s", diff)
	}
}

func TestNamePartRules(t *testing.T) {
	base := FontConfiguration{Family_name: "F", Axes: []string{WeightAxis, WidthAxis, OpticalSizeAxis, "GRAD"}, Axis_configs: map[string]AxisConfig{
		WeightAxis:      DefaultAxisConfig(WeightAxis),
		WidthAxis:       {Names: NameMapping{75: "Condensed"}},
		OpticalSizeAxis: {Names: NameMapping{18: "-", 36: ""}},
	}}
	for _, tc := range []struct {
		cfg      FontConfiguration
		c        Coordinate
		style    string
		variable string
	}{
		{base, coord(OpticalSizeAxis, 10), "opsz10", "opsz10"},
		{base, coord(OpticalSizeAxis, 18), "Regular", "Regular"},
		{base, coord(OpticalSizeAxis, 36), "Regular", "Regular"},
		{base, coord("GRAD", -0.5), "GRAD-0.5", "GRAD-0.5"},
		{base, coord(WidthAxis, 87.5), "Regular", "Regular"},
		{base, coord(WidthAxis, 100), "Regular", "Regular"},
		{base, coord(WeightAxis, 700, WidthAxis, 75, OpticalSizeAxis, 72), "Bold Condensed opsz72", "Bold Condensed opsz72"},
		{base.WithAxisName(WidthAxis, 100, "Normal"), coord(WeightAxis, 700, WidthAxis, 100), "Bold Normal", "Bold Normal"},
		{base.WithAxisName(WidthAxis, 100, "Regular"), coord(WeightAxis, 700, WidthAxis, 100), "Bold Regular", "Bold Regular"},
		{base.WithAxisName(WidthAxis, 100, "Regular").WithRegularElidable(WeightAxis, true), coord(WeightAxis, 700, WidthAxis, 100), "Bold", "Bold"},
		{base.WithAxisName(OpticalSizeAxis, 8, "Regular").WithRegularElidable(WeightAxis, true), coord(WeightAxis, 400, OpticalSizeAxis, 8), "Regular", ""},
		// the flag on any other axis is ignored
		{base.WithRegularElidable(OpticalSizeAxis, true), coord(WeightAxis, 400), "Regular", "Regular"},
		{base.WithSubfamily(WeightAxis, true), coord(WeightAxis, 700, OpticalSizeAxis, 36), "Regular", "Bold"},
	} {
		if actual := tc.cfg.StyleName(tc.c); actual != tc.style {
			t.Fatalf("Style name for %s: %#v != %#v", tc.c, tc.style, actual)
		}
		if actual := tc.cfg.VariableStyleName(tc.c); actual != tc.variable {
			t.Fatalf("Variable style name for %s: %#v != %#v", tc.c, tc.variable, actual)
		}
	}
}

func TestPostscriptName(t *testing.T) {
	for _, tc := range [][3]string{
		{"My Font", "Extra Bold", "MyFont-ExtraBold"},
		{"A\tB", "C\u00a0D", "AB-CD"},
		{"", "Regular", "-Regular"},
	} {
		if actual := PostscriptName(tc[0], tc[1]); actual != tc[2] {
			t.Fatalf("PostScript name for %#v %#v: %#v != %#v", tc[0], tc[1], tc[2], actual)
		}
	}
	if actual := FullName("My Font", "Extra Bold"); actual != "My Font Extra Bold" {
		t.Fatalf("Unexpected full name: %#v", actual)
	}
}

func TestNamingLaws(t *testing.T) {
	configs := []FontConfiguration{
		DefaultConfiguration(),
		DefaultConfiguration().WithRegularElidable(WeightAxis, true),
		DefaultConfiguration().WithAxes(WidthAxis, WeightAxis, OpticalSizeAxis, ItalicAxis, SlantAxis),
		DefaultConfiguration().WithAxes(WeightAxis, WidthAxis, OpticalSizeAxis).WithSubfamily(WidthAxis, true).WithRegularElidable(WeightAxis, true),
		DefaultConfiguration().WithAxes(WidthAxis, "XTRA").WithAxisValues(WidthAxis, "50, 100 ,x,200"),
	}
	for i, cfg := range configs {
		first, second := Instances(cfg), Instances(cfg)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Fatalf("Config %d: naming is not deterministic:\n%s", i, diff)
		}
		if Fingerprint(first) != Fingerprint(second) {
			t.Fatalf("Config %d: fingerprints differ", i)
		}
		if len(first) != cfg.InstanceCount() {
			t.Fatalf("Config %d: %d instances generated, expected: %d", i, len(first), cfg.InstanceCount())
		}
		elidable := cfg.regular_elidable()
		for _, inst := range first {
			if inst.Style_name == "" {
				t.Fatalf("Config %d: empty style name for %s", i, inst.Coordinate)
			}
			if elidable {
				for _, n := range []string{inst.Variable_style_name, inst.Style_name} {
					if n != RegularName && strings.Contains(" "+n+" ", " Regular ") {
						t.Fatalf("Config %d: %#v contains Regular for %s", i, n, inst.Coordinate)
					}
				}
			}
			if wdth, found := inst.Coordinate.Get(WidthAxis); found && wdth == WidthDefault && cfg.Axis_configs[WidthAxis].Names[WidthDefault] == UnnamedMarker {
				without := slices.DeleteFunc(slices.Clone(inst.Coordinate), func(av AxisValue) bool { return av.Tag == WidthAxis })
				if a, b := inst.Variable_style_name, cfg.VariableStyleName(without); a != b {
					t.Fatalf("Config %d: default width changed the variable style name of %s: %#v != %#v", i, inst.Coordinate, b, a)
				}
				if a, b := inst.Style_name, cfg.StyleName(without); a != b {
					t.Fatalf("Config %d: default width changed the style name of %s: %#v != %#v", i, inst.Coordinate, b, a)
				}
			}
		}
	}
	if a, b := Fingerprint(Instances(configs[0])), Fingerprint(Instances(configs[1])); a == b {
		t.Fatalf("Different name tables have the same fingerprint")
	}
}
