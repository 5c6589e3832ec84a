// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package cli

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/fontnametable/fontnames/tools/config"
	"github.com/fontnametable/fontnames/tools/utils"
)

var _ = fmt.Print

type OptionType int

const (
	StringOption OptionType = iota
	IntegerOption
	FloatOption
	BoolOption
	CountOption
)

type Alias struct {
	NameWithoutHyphens string
	IsShort            bool
	IsUnset            bool
}

func (self *Alias) String() string {
	if self.IsShort {
		return "-" + self.NameWithoutHyphens
	}
	return "--" + self.NameWithoutHyphens
}

// OptionSpec describes an option. Name is a space separated list of aliases,
// the first of which must be a long option and is CamelCased to form the
// default Dest.
//
// Available types are: string, str, list, int, float, count, bool-set,
// bool-reset and choices. If Choices is set the type is choices. A negative
// Depth adds the option to all sub-commands, a positive one to sub-commands
// up to that depth. Set Help to "!" to hide the option.
type OptionSpec struct {
	Name    string
	Type    string
	Dest    string
	Choices string
	Depth   int
	Default string
	Help    string
}

type Option struct {
	Name       string
	Aliases    []Alias
	Choices    []string
	Default    string
	OptionType OptionType
	Hidden     bool
	Depth      int
	Help       string
	IsList     bool
	Parent     *Command

	values_from_cmdline        []string
	parsed_values_from_cmdline []any
	parsed_default             any
	seen_option                string
}

func camel_case_dest(x string) string {
	x = strings.ReplaceAll(strings.ReplaceAll(x, "-", "_"), ",", "")
	parts := strings.Split(strings.TrimLeft(x, "_"), "_")
	for i, p := range parts {
		parts[i] = utils.Capitalize(p)
	}
	return strings.Join(parts, "")
}

func is_string_slice(f reflect.Value) bool {
	if f.Kind() != reflect.Slice {
		return false
	}
	return f.Type().Elem().Kind() == reflect.String
}

func (self *Option) init_option() {
	self.values_from_cmdline = make([]string, 0, 1)
	self.parsed_values_from_cmdline = make([]any, 0, 1)
}

func option_from_spec(spec OptionSpec) (*Option, error) {
	ans := Option{Help: spec.Help, Hidden: spec.Help == "!", Depth: spec.Depth}
	ans.init_option()
	parts := strings.Fields(spec.Name)
	if len(parts) == 0 {
		return nil, fmt.Errorf("No --aliases specified for option")
	}
	ans.Name = camel_case_dest(parts[0])
	ans.Aliases = make([]Alias, len(parts))
	for i, x := range parts {
		ans.Aliases[i] = Alias{NameWithoutHyphens: strings.TrimLeft(x, "-"), IsShort: !strings.HasPrefix(x, "--")}
	}
	if spec.Dest != "" {
		ans.Name = spec.Dest
	}
	if spec.Choices != "" {
		parts := strings.Split(spec.Choices, ",")
		if len(parts) == 1 {
			parts = strings.Fields(spec.Choices)
		} else {
			for i, x := range parts {
				parts[i] = strings.TrimSpace(x)
			}
		}
		ans.Choices = parts
		ans.OptionType = StringOption
		ans.Default = parts[0]
	} else {
		switch spec.Type {
		case "choice", "choices":
			ans.OptionType = StringOption
		case "int":
			ans.OptionType = IntegerOption
			ans.Default = "0"
		case "float":
			ans.OptionType = FloatOption
			ans.Default = "0"
		case "count":
			ans.OptionType = CountOption
			ans.Default = "0"
		case "bool-set":
			ans.OptionType = BoolOption
			ans.Default = "false"
		case "bool-reset":
			ans.OptionType = BoolOption
			ans.Default = "true"
			for i := range ans.Aliases {
				ans.Aliases[i].IsUnset = true
			}
		case "list":
			ans.IsList = true
			fallthrough
		case "str", "string", "":
			ans.OptionType = StringOption
		default:
			return nil, fmt.Errorf("Unknown option type: %s", spec.Type)
		}
	}
	if spec.Default != "" {
		ans.Default = spec.Default
	}
	if ans.IsList {
		if ans.Default != "" {
			ans.parsed_default = strings.Fields(ans.Default)
		}
	} else {
		pval, err := ans.parse_value(ans.Default)
		if err != nil {
			return nil, err
		}
		ans.parsed_default = pval
	}
	if ans.Name == "" {
		return nil, fmt.Errorf("No dest specified for option")
	}
	return &ans, nil
}

func (self *Option) reset() {
	self.values_from_cmdline = self.values_from_cmdline[:0]
	self.parsed_values_from_cmdline = self.parsed_values_from_cmdline[:0]
	self.seen_option = ""
}

func (self *Option) needs_argument() bool {
	return self.OptionType != BoolOption && self.OptionType != CountOption
}

func (self *Option) MatchingAlias(prefix_without_hyphens string, is_short bool) string {
	for _, a := range self.Aliases {
		if a.IsShort == is_short && strings.HasPrefix(a.NameWithoutHyphens, prefix_without_hyphens) {
			return a.String()
		}
	}
	return ""
}

func (self *Option) HasAlias(name_without_hyphens string, is_short bool) bool {
	for _, a := range self.Aliases {
		if a.IsShort == is_short && a.NameWithoutHyphens == name_without_hyphens {
			return true
		}
	}
	return false
}

type ParseError struct {
	Option  *Option
	Message string
}

func (self *ParseError) Error() string { return self.Message }

func NormalizeOptionName(name string) string {
	return strings.ReplaceAll(strings.TrimLeft(name, "-"), "_", "-")
}

func (self *Option) parsed_value() any {
	if len(self.values_from_cmdline) == 0 {
		if self.IsList && self.parsed_default == nil {
			return []string{}
		}
		return self.parsed_default
	}
	switch self.OptionType {
	case CountOption:
		return len(self.parsed_values_from_cmdline)
	case StringOption:
		if self.IsList {
			ans := make([]string, 0, len(self.parsed_values_from_cmdline)+2)
			if self.parsed_default != nil {
				ans = append(ans, self.parsed_default.([]string)...)
			}
			for _, x := range self.parsed_values_from_cmdline {
				ans = append(ans, x.(string))
			}
			return ans
		}
		fallthrough
	default:
		return self.parsed_values_from_cmdline[len(self.parsed_values_from_cmdline)-1]
	}
}

func (self *Option) parse_value(val string) (any, error) {
	switch self.OptionType {
	case BoolOption:
		b, err := config.ParseBool(val)
		if err != nil {
			return nil, &ParseError{Option: self, Message: fmt.Sprintf(":yellow:`%s` is not a valid value for :opt:`%s`. Valid values: y, yes, true, n, no and false", val, self.seen_option)}
		}
		return b, nil
	case StringOption:
		return val, nil
	case IntegerOption, CountOption:
		pval, err := strconv.ParseInt(val, 0, 0)
		if err != nil {
			return nil, &ParseError{Option: self, Message: fmt.Sprintf(
				":yellow:`%s` is not a valid number for :opt:`%s`. Only integers in decimal, hexadecimal, binary or octal notation are accepted.", val, self.seen_option)}
		}
		return int(pval), nil
	case FloatOption:
		pval, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return nil, &ParseError{Option: self, Message: fmt.Sprintf(
				":yellow:`%s` is not a valid number for :opt:`%s`. Only floats in decimal and hexadecimal notation are accepted.", val, self.seen_option)}
		}
		return pval, nil
	default:
		return nil, &ParseError{Option: self, Message: fmt.Sprintf("Unknown option type for %s", self.Name)}
	}
}

func (self *Option) add_parsed(val string, pval any) {
	self.values_from_cmdline = append(self.values_from_cmdline, val)
	self.parsed_values_from_cmdline = append(self.parsed_values_from_cmdline, pval)
}

func (self *Option) add_value(val string) error {
	name_without_hyphens := NormalizeOptionName(self.seen_option)
	switch self.OptionType {
	case BoolOption:
		if val == "" {
			for _, x := range self.Aliases {
				if x.NameWithoutHyphens == name_without_hyphens {
					self.add_parsed(config.BoolToString(!x.IsUnset), !x.IsUnset)
					return nil
				}
			}
			return nil
		}
		pval, err := self.parse_value(val)
		if err != nil {
			return err
		}
		self.add_parsed(val, pval)
	case StringOption:
		if self.Choices != nil && !slices.Contains(self.Choices, val) {
			return &ParseError{Option: self, Message: fmt.Sprintf(":yellow:`%s` is not a valid value for :opt:`%s`. Valid values: %s",
				val, self.seen_option, strings.Join(self.Choices, ", "),
			)}
		}
		self.add_parsed(val, val)
	case IntegerOption, FloatOption:
		pval, err := self.parse_value(val)
		if err != nil {
			return err
		}
		self.add_parsed(val, pval)
	case CountOption:
		self.add_parsed(val, 1)
	}
	return nil
}
