// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package fontconf

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/fontnametable/fontnames/tools/config"
	"github.com/fontnametable/fontnames/tools/naming"
	"github.com/fontnametable/fontnames/tools/utils"
)

var _ = fmt.Print

const ConfName = "fontnames.conf"
const Sentinel = "FONTNAMES"

const conf_header = `# vim:fileencoding=utf-8:foldmethod=marker
# Font naming configuration. fontnames rewrites the block between the
# BEGIN and END markers below, edit outside it freely.`

// DefaultPath is where the configuration lives when no explicit path is
// given.
func DefaultPath() string {
	return filepath.Join(utils.ConfigDir(), ConfName)
}

type axis_edit = func(naming.FontConfiguration) naming.FontConfiguration

type loader struct {
	family_name *string
	axes        []string
	axes_set    bool
	edits       []axis_edit
}

// tag_and_rest splits the value of a per axis setting into the axis tag and
// the remainder.
func tag_and_rest(key, val string, rest_required bool) (tag, rest string, err error) {
	parts := config.SplitFields(val, 2)
	if len(parts) == 0 || (rest_required && len(parts) < 2) {
		return "", "", fmt.Errorf("%s needs an axis tag followed by a value", key)
	}
	if len(parts) > 1 {
		rest = parts[1]
	}
	return parts[0], rest, nil
}

func (self *loader) add_edit(edit axis_edit) {
	self.edits = append(self.edits, edit)
}

func (self *loader) handle_line(key, val string) error {
	if key == "family_name" {
		name, err := config.StringLiteral(strings.TrimSpace(val))
		if err != nil {
			return err
		}
		self.family_name = &name
		return nil
	}
	if key == "axes" {
		self.axes = naming.ParseAxesList(val)
		self.axes_set = true
		return nil
	}
	tag, rest, err := tag_and_rest(key, val, key == "subfamily" || key == "regular_elidable" || key == "axis_name")
	if err != nil {
		return err
	}
	switch key {
	case "axis_values":
		values, err := config.StringLiteral(rest)
		if err != nil {
			return err
		}
		self.add_edit(func(c naming.FontConfiguration) naming.FontConfiguration { return c.WithAxisValues(tag, values) })
	case "axis_name":
		parts := config.SplitFields(rest, 2)
		value, err := naming.ParseValueKey(parts[0])
		if err != nil {
			return fmt.Errorf("%#v is not a valid axis value", parts[0])
		}
		name := ""
		if len(parts) > 1 {
			if name, err = config.StringLiteral(parts[1]); err != nil {
				return err
			}
		}
		self.add_edit(func(c naming.FontConfiguration) naming.FontConfiguration { return c.WithAxisName(tag, value, name) })
	case "clear_names":
		self.add_edit(func(c naming.FontConfiguration) naming.FontConfiguration { return c.WithAxisNames(tag, nil) })
	case "subfamily", "regular_elidable":
		on, err := config.ParseBool(rest)
		if err != nil {
			return err
		}
		if key == "subfamily" {
			self.add_edit(func(c naming.FontConfiguration) naming.FontConfiguration { return c.WithSubfamily(tag, on) })
		} else {
			self.add_edit(func(c naming.FontConfiguration) naming.FontConfiguration { return c.WithRegularElidable(tag, on) })
		}
	default:
		return fmt.Errorf("unknown setting: %s", key)
	}
	return nil
}

func (self *loader) apply(base naming.FontConfiguration) naming.FontConfiguration {
	ans := base
	if self.family_name != nil {
		ans = ans.WithFamilyName(*self.family_name)
	}
	if self.axes_set {
		ans = ans.WithAxes(self.axes...)
	}
	for _, edit := range self.edits {
		ans = edit(ans)
	}
	return ans
}

type LoadResult struct {
	Config naming.FontConfiguration
	// Lines that could not be understood, they are otherwise ignored
	Bad_lines []config.ConfigLine
	// True if at least one configuration file existed
	Found bool
	// True if the configuration came from the state snapshot
	From_state bool
	// Problems that did not prevent loading
	Warnings []error
}

// Load reads the configuration from paths or, when none are given, from
// the default location, then applies overrides. Files that do not exist
// are skipped and a configuration that sets nothing is the default one.
func Load(paths []string, overrides []string) (LoadResult, error) {
	l := loader{}
	ans := LoadResult{}
	p := config.ConfigParser{
		LineHandler:   l.handle_line,
		SourceHandler: func(text, path string) { ans.Found = true },
	}
	if err := p.LoadConfig(ConfName, paths, overrides); err != nil {
		return ans, err
	}
	ans.Config = l.apply(naming.DefaultConfiguration())
	ans.Bad_lines = p.BadLines()
	return ans, nil
}

// LoadWithState is Load, except that when no conf file exists the last
// snapshot in state, if any, is used as the base for overrides.
func LoadWithState(paths []string, overrides []string, state *StateStore) (LoadResult, error) {
	ans, err := Load(paths, overrides)
	if err != nil || ans.Found || state == nil {
		return ans, err
	}
	cfg, found, err := state.Load()
	if err != nil {
		ans.Warnings = append(ans.Warnings, err)
		return ans, nil
	}
	if !found {
		return ans, nil
	}
	l := loader{}
	p := config.ConfigParser{LineHandler: l.handle_line}
	if len(overrides) > 0 {
		if err = p.ParseOverrides(overrides...); err != nil {
			return ans, err
		}
	}
	ans.Config = l.apply(cfg)
	ans.Bad_lines = p.BadLines()
	ans.From_state = true
	return ans, nil
}

// Serialize renders cfg as conf lines that Load turns back into an equal
// configuration.
func Serialize(cfg naming.FontConfiguration) string {
	lines := []string{
		"family_name " + config.EscapeStringLiteral(cfg.Family_name),
		"axes " + strings.Join(cfg.Axes, ", "),
	}
	tags := maps.Keys(cfg.Axis_configs)
	slices.Sort(tags)
	for _, tag := range tags {
		ac := cfg.Axis_configs[tag]
		lines = append(lines, "", fmt.Sprintf("axis_values %s %s", tag, config.EscapeStringLiteral(ac.Values)), "clear_names "+tag)
		for _, v := range ac.Names.SortedValues() {
			line := fmt.Sprintf("axis_name %s %s", tag, naming.FormatValue(v))
			if name := ac.Names[v]; name != "" {
				line += " " + config.EscapeStringLiteral(name)
			}
			lines = append(lines, line)
		}
		lines = append(lines, "subfamily "+tag+" "+config.BoolToString(ac.Is_subfamily))
		lines = append(lines, "regular_elidable "+tag+" "+config.BoolToString(ac.Regular_elidable))
	}
	return strings.Join(lines, "\n")
}

// ConfFile saves configurations into the generated block of a conf file,
// leaving anything the user wrote around it alone.
type ConfFile struct {
	Path    string
	Patcher config.Patcher
}

func NewConfFile(path string) *ConfFile {
	if path == "" {
		path = DefaultPath()
	}
	return &ConfFile{Path: path, Patcher: config.Patcher{Write_backup: true, Header: conf_header}}
}

func (self *ConfFile) Save(cfg naming.FontConfiguration) error {
	if _, err := self.Patcher.Patch(self.Path, Sentinel, Serialize(cfg), "family_name", "axes", "axis_values", "axis_name", "clear_names", "subfamily", "regular_elidable"); err != nil {
		return fmt.Errorf("failed to write %s: %w", self.Path, err)
	}
	return nil
}

func (self *ConfFile) Exists() bool {
	_, err := os.Stat(self.Path)
	return !errors.Is(err, fs.ErrNotExist)
}
