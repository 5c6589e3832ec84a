// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

// Package glyphs converts named instances to and from the instances section
// of a Glyphs source file, which is an OpenStep property list.
package glyphs

import (
	"fmt"

	"github.com/fontnametable/fontnames/tools/naming"
	"howett.net/plist"
)

var _ = fmt.Print

const (
	AxisLocationParameter = "Axis Location"
	DefaultLanguage       = "dflt"

	FamilyNamesKey        = "familyNames"
	VariableStyleNamesKey = "variableStyleNames"
	WWSFamilyNameKey      = "WWSFamilyName"
	WWSSubfamilyNameKey   = "WWSSubfamilyName"
)

type LocalizedValue struct {
	Language string `plist:"language"`
	Value    string `plist:"value"`
}

// Property is either a localized property with Values or a plain one with
// Value. Plain properties always carry a value, even an empty one.
type Property struct {
	Key    string           `plist:"key"`
	Value  *string          `plist:"value,omitempty"`
	Values []LocalizedValue `plist:"values,omitempty"`
}

type AxisLocation struct {
	Axis     string  `plist:"Axis"`
	Location float64 `plist:"Location"`
}

type CustomParameter struct {
	Name  string         `plist:"name"`
	Value []AxisLocation `plist:"value"`
}

type Instance struct {
	Axes_values       []float64         `plist:"axesValues"`
	Custom_parameters []CustomParameter `plist:"customParameters"`
	Name              string            `plist:"name"`
	Properties        []Property        `plist:"properties"`
}

type Document struct {
	Instances []Instance `plist:"instances"`
}

func localized(key, val string) Property {
	return Property{Key: key, Values: []LocalizedValue{{Language: DefaultLanguage, Value: val}}}
}

func plain(key, val string) Property {
	return Property{Key: key, Value: &val}
}

func NewInstance(ni naming.NamedInstance) Instance {
	ans := Instance{
		Axes_values: make([]float64, len(ni.Coordinate)),
		Name:        ni.Style_name,
		Properties: []Property{
			localized(FamilyNamesKey, ni.Family_name),
			localized(VariableStyleNamesKey, ni.Variable_style_name),
			plain(WWSFamilyNameKey, ni.Family_name),
			plain(WWSSubfamilyNameKey, ni.Style_name),
		},
	}
	locations := make([]AxisLocation, len(ni.Coordinate))
	for i, av := range ni.Coordinate {
		ans.Axes_values[i] = av.Value
		locations[i] = AxisLocation{Axis: naming.AxisDisplayName(av.Tag), Location: av.Value}
	}
	ans.Custom_parameters = []CustomParameter{{Name: AxisLocationParameter, Value: locations}}
	return ans
}

func NewDocument(instances []naming.NamedInstance) Document {
	ans := Document{Instances: make([]Instance, len(instances))}
	for i, ni := range instances {
		ans.Instances[i] = NewInstance(ni)
	}
	return ans
}

// Property returns the value of the property named key. For localized
// properties the value for the default language is used.
func (self Instance) Property(key string) (string, bool) {
	for _, p := range self.Properties {
		if p.Key != key {
			continue
		}
		if len(p.Values) == 0 {
			if p.Value == nil {
				return "", true
			}
			return *p.Value, true
		}
		for _, lv := range p.Values {
			if lv.Language == DefaultLanguage {
				return lv.Value, true
			}
		}
		return p.Values[0].Value, true
	}
	return "", false
}

func (self Instance) AxisLocations() []AxisLocation {
	for _, cp := range self.Custom_parameters {
		if cp.Name == AxisLocationParameter {
			return cp.Value
		}
	}
	return nil
}

// Export serializes instances in the format Glyphs accepts when pasted into
// the instances tab of font info.
func Export(instances []naming.NamedInstance) ([]byte, error) {
	ans, err := plist.MarshalIndent(NewDocument(instances), plist.OpenStepFormat, "\t")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize %d instances as a property list: %w", len(instances), err)
	}
	return ans, nil
}

func Parse(data []byte) (ans Document, err error) {
	format, err := plist.Unmarshal(data, &ans)
	if err != nil {
		return ans, fmt.Errorf("not a valid Glyphs instances property list: %w", err)
	}
	if format != plist.OpenStepFormat && format != plist.GNUStepFormat {
		return ans, fmt.Errorf("Glyphs instances must be a text property list, not %s", plist.FormatNames[format])
	}
	return
}
