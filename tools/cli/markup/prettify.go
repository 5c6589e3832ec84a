// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package markup

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fontnametable/fontnames"
)

var _ = fmt.Print

type sgr_func = func(args ...any) string

type Context struct {
	allow_escape_codes bool

	Cyan, Green, Blue, BrightRed, Yellow, Italic, Bold, Title, Exe, Opt, Emph, Err, Warn, Code sgr_func
	Url                                                                                        func(string, string) string
}

func (self *Context) sprint_func(start string) sgr_func {
	return func(args ...any) string {
		text := fmt.Sprint(args...)
		if !self.allow_escape_codes || text == "" {
			return text
		}
		return "\x1b[" + start + "m" + text + "\x1b[0m"
	}
}

func (self *Context) url_func(url, text string) string {
	if !self.allow_escape_codes {
		return text
	}
	return "\x1b]8;;" + url + "\x1b\\" + text + "\x1b]8;;\x1b\\"
}

func New(allow_escape_codes bool) *Context {
	ans := Context{allow_escape_codes: allow_escape_codes}

	ans.Cyan = ans.sprint_func("96")
	ans.Green = ans.sprint_func("32")
	ans.Blue = ans.sprint_func("34")
	ans.BrightRed = ans.sprint_func("91")
	ans.Yellow = ans.sprint_func("93")
	ans.Italic = ans.sprint_func("3")
	ans.Bold = ans.sprint_func("1")
	ans.Title = ans.sprint_func("1;34")
	ans.Exe = ans.sprint_func("1;93")
	ans.Opt = ans.Green
	ans.Emph = ans.BrightRed
	ans.Err = ans.sprint_func("1;91")
	ans.Warn = ans.sprint_func("1;93")
	ans.Code = ans.Cyan
	ans.Url = ans.url_func

	return &ans
}

func ReplaceAllStringSubmatchFunc(re *regexp.Regexp, str string, repl func([]string) string) string {
	result := strings.Builder{}
	last_index := 0
	for _, v := range re.FindAllStringSubmatchIndex(str, -1) {
		groups := make([]string, 0, len(v)/2)
		for i := 0; i < len(v); i += 2 {
			if v[i] == -1 || v[i+1] == -1 {
				groups = append(groups, "")
			} else {
				groups = append(groups, str[v[i]:v[i+1]])
			}
		}
		result.WriteString(str[last_index:v[0]])
		result.WriteString(repl(groups))
		last_index = v[1]
	}
	result.WriteString(str[last_index:])
	return result.String()
}

func website_url(doc string) string {
	doc = strings.Trim(doc, "/")
	if doc != "" {
		doc += "/"
	}
	return fontnames.WebsiteBaseUrl + doc
}

var prettify_pat = regexp.MustCompile(":([a-z]+):`([^`]+)`")

func text_and_target(x string) (text string, target string) {
	text, target, found := strings.Cut(x, "<")
	if !found {
		target = text
	}
	return strings.TrimSpace(text), strings.TrimRight(target, ">")
}

// Prettify renders the :role:`text` markup used in help and error messages.
func (self *Context) Prettify(text string) string {
	return ReplaceAllStringSubmatchFunc(prettify_pat, text, func(groups []string) string {
		val := groups[2]
		switch groups[1] {
		case "file", "emph":
			return self.Italic(val)
		case "doc":
			text, target := text_and_target(val)
			return self.Url(website_url(target), text)
		case "code":
			return self.Code(val)
		case "option":
			idx := strings.LastIndex(val, "--")
			if idx < 0 {
				idx = strings.Index(val, "-")
			}
			if idx > -1 {
				val = val[idx:]
			}
			return self.Bold(val)
		case "opt":
			return self.Bold(val)
		case "yellow":
			return self.Yellow(val)
		case "blue":
			return self.Blue(val)
		case "green":
			return self.Green(val)
		case "cyan":
			return self.Cyan(val)
		default:
			return val
		}
	})
}

func (self *Context) SetAllowEscapeCodes(allow_escape_codes bool) {
	self.allow_escape_codes = allow_escape_codes
}

func (self *Context) EscapeCodesAllowed() bool {
	return self.allow_escape_codes
}
