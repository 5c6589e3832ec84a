// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package naming

import (
	"fmt"
)

var _ = fmt.Print

const DefaultFamilyName = "MyFont"

// Used for axes that are not in CommonAxes
const UnknownAxisValues = "0,100"

type CommonAxis struct {
	Tag, Name      string
	Default_values string
	default_names  func() NameMapping
}

func (self CommonAxis) DefaultNames() NameMapping {
	if self.default_names == nil {
		return NameMapping{}
	}
	return self.default_names()
}

func weight_names() NameMapping {
	return NameMapping{
		100: "Thin",
		200: "ExtraLight",
		250: "UltraLight",
		275: "Light",
		300: "Light",
		350: "SemiLight",
		400: "Regular",
		450: "Book",
		500: "Medium",
		600: "SemiBold",
		650: "DemiBold",
		700: "Bold",
		800: "ExtraBold",
		850: "Heavy",
		900: "Black",
		950: "ExtraBlack",
	}
}

func width_names() NameMapping {
	return NameMapping{
		50:    "UltraCondensed",
		62.5:  "ExtraCondensed",
		75:    "Condensed",
		87.5:  "SemiCondensed",
		100:   UnnamedMarker,
		112.5: "SemiExtended",
		125:   "Extended",
		150:   "ExtraExtended",
		200:   "UltraExtended",
	}
}

func optical_size_names() NameMapping {
	return NameMapping{
		8:  "UI",
		18: UnnamedMarker,
		36: "Deck",
		72: "Display",
	}
}

var CommonAxes = []CommonAxis{
	{Tag: WeightAxis, Name: "Weight", Default_values: "100,200,300,400,500,600,700,800,900", default_names: weight_names},
	{Tag: WidthAxis, Name: "Width", Default_values: "75,100,125", default_names: width_names},
	{Tag: OpticalSizeAxis, Name: "Optical Size", Default_values: "8,18,36,72", default_names: optical_size_names},
	{Tag: ItalicAxis, Name: "Italic", Default_values: "0,1"},
	{Tag: SlantAxis, Name: "Slant", Default_values: "-15,0"},
}

func CommonAxisFor(tag string) (CommonAxis, bool) {
	for _, ca := range CommonAxes {
		if ca.Tag == tag {
			return ca, true
		}
	}
	return CommonAxis{}, false
}

// AxisDisplayName is the human readable name of a registered axis, or the
// tag itself.
func AxisDisplayName(tag string) string {
	if ca, found := CommonAxisFor(tag); found {
		return ca.Name
	}
	return tag
}

// DefaultAxisConfig is what a newly added axis starts with.
func DefaultAxisConfig(tag string) AxisConfig {
	if ca, found := CommonAxisFor(tag); found {
		return AxisConfig{Values: ca.Default_values, Names: ca.DefaultNames()}
	}
	return AxisConfig{Values: UnknownAxisValues, Names: NameMapping{}}
}

func DefaultConfiguration() FontConfiguration {
	return FontConfiguration{
		Family_name: DefaultFamilyName,
		Axes:        []string{WeightAxis, WidthAxis},
		Axis_configs: map[string]AxisConfig{
			WeightAxis: DefaultAxisConfig(WeightAxis),
			WidthAxis:  DefaultAxisConfig(WidthAxis),
		},
	}
}
