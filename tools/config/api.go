// License: GPLv3 Copyright: 2023, Kovid Goyal, <kovid at kovidgoyal.net>

package config

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fontnametable/fontnames/tools/utils"
)

var _ = fmt.Print

const SYSTEM_CONF = "/etc/xdg/fontnames"

type ConfigLine struct {
	Src_file, Line string
	Line_number    int
	Err            error
}

func (self ConfigLine) Error() string {
	return fmt.Sprintf("%s:%d: %s", self.Src_file, self.Line_number, self.Err)
}

func (self ConfigLine) Unwrap() error { return self.Err }

type ConfigParser struct {
	LineHandler     func(key, val string) error
	CommentsHandler func(line string) error
	SourceHandler   func(text, path string)

	bad_lines     []ConfigLine
	seen_includes map[string]bool
	override_env  []string
}

type Scanner interface {
	Scan() bool
	Text() string
	Err() error
}

func (self *ConfigParser) BadLines() []ConfigLine {
	return self.bad_lines
}

// Err combines all bad lines into a single error, nil if there were none.
func (self *ConfigParser) Err() error {
	if len(self.bad_lines) == 0 {
		return nil
	}
	errs := make([]error, len(self.bad_lines))
	for i, bl := range self.bad_lines {
		errs[i] = bl
	}
	return errors.Join(errs...)
}

var key_pat = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(`^([a-zA-Z][a-zA-Z0-9_-]*)(?:\s+(.*))?$`)
})

func (self *ConfigParser) bad_line(name, line string, lnum int, err error) {
	self.bad_lines = append(self.bad_lines, ConfigLine{Src_file: name, Line: line, Line_number: lnum, Err: err})
}

func (self *ConfigParser) parse(scanner Scanner, name, base_path_for_includes string, depth int) error {
	if self.seen_includes[name] { // avoid include loops
		return nil
	}
	self.seen_includes[name] = true

	recurse := func(r io.Reader, nname, base_path_for_includes string) error {
		if depth > 32 {
			return fmt.Errorf("Too many nested include directives while processing config file: %s", name)
		}
		return self.parse(bufio.NewScanner(r), nname, base_path_for_includes, depth+1)
	}

	make_absolute := func(path string) (string, error) {
		if path == "" {
			return "", fmt.Errorf("Empty include paths not allowed")
		}
		if !filepath.IsAbs(path) {
			path = filepath.Join(base_path_for_includes, path)
		}
		return path, nil
	}

	include_file := func(path string) error {
		raw, err := os.ReadFile(path)
		if err == nil {
			return recurse(bytes.NewReader(raw), path, filepath.Dir(path))
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("Failed to process include %#v with error: %w", path, err)
		}
		return nil
	}

	lnum, next_line_num := 0, 0
	next_line := ""
	var line string
	scan := func() bool {
		if scanner.Scan() {
			next_line = strings.TrimLeft(scanner.Text(), " \t")
			next_line_num++
			return true
		}
		next_line = ""
		return false
	}

	for {
		if next_line != "" {
			line = next_line
		} else {
			if !scan() {
				break
			}
			if line = next_line; line == "" {
				continue
			}
		}
		lnum = next_line_num
		// lines starting with a backslash continue the previous line
		for scan() && strings.HasPrefix(next_line, `\`) {
			line += next_line[1:]
		}

		if line[0] == '#' {
			if self.CommentsHandler != nil {
				if err := self.CommentsHandler(line); err != nil {
					self.bad_line(name, line, lnum, err)
				}
			}
			continue
		}
		m := key_pat().FindStringSubmatch(strings.TrimRight(line, " \t\r"))
		if m == nil {
			self.bad_line(name, line, lnum, fmt.Errorf("Invalid config line: %#v", line))
			continue
		}
		key, val := m[1], strings.TrimSpace(m[2])
		switch key {
		default:
			if err := self.LineHandler(key, val); err != nil {
				self.bad_line(name, line, lnum, err)
			}
		case "include":
			if path, err := make_absolute(val); err != nil {
				self.bad_line(name, line, lnum, err)
			} else if err = include_file(path); err != nil {
				return err
			}
		case "globinclude":
			path, err := make_absolute(val)
			if err != nil {
				self.bad_line(name, line, lnum, err)
				continue
			}
			matches, err := doublestar.FilepathGlob(path)
			if err != nil {
				self.bad_line(name, line, lnum, fmt.Errorf("Invalid glob pattern: %#v: %w", val, err))
				continue
			}
			for _, incpath := range matches {
				if err = include_file(incpath); err != nil {
					return err
				}
			}
		case "envinclude":
			env := self.override_env
			if env == nil {
				env = os.Environ()
			}
			for _, x := range env {
				ekey, eval, _ := strings.Cut(x, "=")
				if is_match, err := doublestar.Match(val, ekey); is_match && err == nil {
					if err := recurse(strings.NewReader(eval), "<env var: "+ekey+">", base_path_for_includes); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

func (self *ConfigParser) ParseFiles(paths ...string) error {
	for _, path := range paths {
		apath, err := filepath.Abs(path)
		if err == nil {
			path = apath
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		scanner := utils.NewLineScanner(utils.UnsafeBytesToString(raw))
		self.seen_includes = make(map[string]bool)
		if err = self.parse(scanner, path, filepath.Dir(path), 0); err != nil {
			return err
		}
		if self.SourceHandler != nil {
			self.SourceHandler(utils.UnsafeBytesToString(raw), path)
		}
	}
	return nil
}

// LoadConfig reads the system wide config file then either paths or, if no
// paths are given, the file named name in the user config directory, and
// finally applies overrides. Missing files are ignored.
func (self *ConfigParser) LoadConfig(name string, paths []string, overrides []string) (err error) {
	add_if_exists := func(q string) {
		err = self.ParseFiles(q)
		if err != nil && errors.Is(err, fs.ErrNotExist) {
			err = nil
		}
	}
	if add_if_exists(filepath.Join(SYSTEM_CONF, name)); err != nil {
		return err
	}
	if len(paths) > 0 {
		for _, path := range paths {
			if add_if_exists(path); err != nil {
				return err
			}
		}
	} else {
		if add_if_exists(filepath.Join(utils.ConfigDir(), name)); err != nil {
			return err
		}
	}
	if len(overrides) > 0 {
		return self.ParseOverrides(overrides...)
	}
	return
}

type LinesScanner struct {
	lines []string
}

func (self *LinesScanner) Scan() bool {
	return len(self.lines) > 0
}

func (self *LinesScanner) Text() string {
	ans := self.lines[0]
	self.lines = self.lines[1:]
	return ans
}

func (self *LinesScanner) Err() error {
	return nil
}

// ParseOverrides parses lines of the form key=val or key val
func (self *ConfigParser) ParseOverrides(overrides ...string) error {
	s := LinesScanner{lines: utils.Map(func(x string) string {
		if k, v, found := strings.Cut(x, "="); found && !strings.ContainsAny(k, " \t") {
			return k + " " + v
		}
		return x
	}, overrides)}
	self.seen_includes = make(map[string]bool)
	return self.parse(&s, "<overrides>", utils.ConfigDir(), 0)
}

// Patcher maintains a block of generated settings delimited by sentinel
// comments inside a config file that may also contain user edits.
type Patcher struct {
	Write_backup bool
	Mode         fs.FileMode
	// Written at the top of newly created files
	Header string
}

func (self Patcher) Patch(path, sentinel, content string, settings_to_comment_out ...string) (updated bool, err error) {
	if self.Mode == 0 {
		self.Mode = 0o644
	}
	backup_path := path
	if q, err := filepath.EvalSymlinks(path); err == nil {
		path = q
	}
	raw, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}
	text := utils.UnsafeBytesToString(raw)
	if len(settings_to_comment_out) > 0 {
		pat := utils.MustCompile(fmt.Sprintf(`(?m)^\s*(%s)\b`, strings.Join(utils.Map(regexp.QuoteMeta, settings_to_comment_out), "|")))
		text = pat.ReplaceAllString(text, `# $1`)
	}

	pat := utils.MustCompile(fmt.Sprintf(`(?ms)^# BEGIN_%s.+?# END_%s`, sentinel, sentinel))
	replaced := false
	addition := fmt.Sprintf("# BEGIN_%s\n%s\n# END_%s", sentinel, content, sentinel)
	ntext := pat.ReplaceAllStringFunc(text, func(string) string {
		replaced = true
		return addition
	})
	if !replaced {
		if raw == nil && self.Header != "" {
			text = strings.TrimRight(self.Header, "\n")
		}
		if text != "" {
			text += "\n\n"
		}
		ntext = text + addition
	}
	nraw := utils.UnsafeStringToBytes(ntext)
	if !bytes.Equal(raw, nraw) {
		if len(raw) > 0 && self.Write_backup {
			_ = os.WriteFile(backup_path+".bak", raw, self.Mode)
		}
		if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return false, err
		}
		return true, utils.AtomicUpdateFile(path, bytes.NewReader(nraw), self.Mode)
	}
	return false, nil
}
