// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fontnametable/fontnames"
	"github.com/fontnametable/fontnames/tools/cli/markup"
	"github.com/fontnametable/fontnames/tools/tty"
	"github.com/fontnametable/fontnames/tools/utils"
)

var _ = fmt.Print

var Stdout io.Writer = os.Stdout
var Stderr io.Writer = os.Stderr

func stderr_formatter() *markup.Context {
	return markup.New(Stderr == io.Writer(os.Stderr) && tty.IsTerminal(os.Stderr.Fd()))
}

func ShowError(err error) {
	formatter := stderr_formatter()
	msg := formatter.Prettify(err.Error())
	fmt.Fprintln(Stderr, formatter.Err("Error")+":", msg)
}

// ShowWarning reports a problem that did not stop the command.
func ShowWarning(format string, args ...any) {
	formatter := stderr_formatter()
	fmt.Fprintln(Stderr, formatter.Warn("Warning")+":", formatter.Prettify(fmt.Sprintf(format, args...)))
}

func (self *Command) version_string(formatter *markup.Context) string {
	return fmt.Sprintln(formatter.Italic(self.CommandStringForUsage()), formatter.Opt(fontnames.VersionString))
}

func (self *Command) ShowVersion() {
	formatter := markup.New(Stdout == io.Writer(os.Stdout) && tty.IsTerminal(os.Stdout.Fd()))
	fmt.Fprint(Stdout, self.version_string(formatter))
}

var sgr_pat = utils.MustCompile("\x1b\\[[0-9;]*m|\x1b\\]8;;[^\x1b]*\x1b\\\\")

func visible_width(x string) int {
	return utf8.RuneCountInString(sgr_pat.ReplaceAllString(x, ""))
}

// wrap_text wraps each paragraph of text to width, prefixing every line
// with indent. Lines that start with whitespace are kept as is.
func wrap_text(text, indent string, width int) string {
	ans := strings.Builder{}
	width = max(width-visible_width(indent), 20)
	for i, line := range utils.Splitlines(text) {
		if i > 0 {
			ans.WriteString("\n")
		}
		if line == "" || strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
			ans.WriteString(indent + line)
			continue
		}
		current := 0
		ans.WriteString(indent)
		for _, word := range strings.Fields(line) {
			w := visible_width(word)
			if current > 0 && current+1+w > width {
				ans.WriteString("\n" + indent)
				current = 0
			}
			if current > 0 {
				ans.WriteString(" ")
				current++
			}
			ans.WriteString(word)
			current += w
		}
	}
	return ans.String()
}

func format_with_indent(output io.Writer, text string, indent string, screen_width int) {
	io.WriteString(output, wrap_text(strings.TrimSpace(text), indent, screen_width))
	io.WriteString(output, "\n")
}

func (self *Command) FormatSubCommands(output io.Writer, formatter *markup.Context, screen_width int) {
	for _, g := range self.SubCommandGroups {
		if !g.HasVisibleSubCommands() {
			continue
		}
		title := utils.IfElse(g.Title == "", "Commands", g.Title)
		fmt.Fprintln(output)
		fmt.Fprintln(output, formatter.Title(title)+":")
		for _, c := range g.SubCommands {
			if c.Hidden {
				continue
			}
			fmt.Fprintln(output, "  ", formatter.Opt(c.Name))
			format_with_indent(output, formatter.Prettify(c.ShortDescription), "    ", screen_width)
		}
	}
}

func (self *Option) FormatOption(output io.Writer, formatter *markup.Context, screen_width int) {
	fmt.Fprint(output, "  ")
	for i, a := range self.Aliases {
		fmt.Fprint(output, formatter.Opt(a.String()))
		if i != len(self.Aliases)-1 {
			fmt.Fprint(output, ", ")
		}
	}
	defval := self.Default
	switch self.OptionType {
	case CountOption:
		defval = ""
	case BoolOption:
		defval = utils.IfElse(self.Default == "true", "yes", "no")
	}
	if defval != "" {
		fmt.Fprintf(output, " %s", formatter.Italic("[="+defval+"]"))
	}
	fmt.Fprintln(output)
	format_with_indent(output, formatter.Prettify(self.Help), "    ", screen_width)
	if self.Choices != nil {
		format_with_indent(output, "Choices: "+strings.Join(self.Choices, ", "), "    ", screen_width)
	}
}

func (self *Command) ShowHelp() {
	self.ShowHelpWithCommandString(strings.TrimSpace(self.CommandStringForUsage()))
}

func (self *Command) FormatHelp(output io.Writer, cs string, formatter *markup.Context, screen_width int) {
	fmt.Fprintln(output, formatter.Title("Usage")+":", formatter.Exe(cs), strings.TrimSpace(formatter.Prettify(self.Usage)))
	fmt.Fprintln(output)
	if self.HelpText != "" {
		format_with_indent(output, formatter.Prettify(self.HelpText), "", screen_width)
	} else if self.ShortDescription != "" {
		format_with_indent(output, formatter.Prettify(self.ShortDescription), "", screen_width)
	}

	if self.HasVisibleSubCommands() {
		self.FormatSubCommands(output, formatter, screen_width)
		fmt.Fprintln(output)
		format_with_indent(output, "Get help for an individual command by running:", "", screen_width)
		fmt.Fprintln(output, "   ", cs, formatter.Italic("command"), "-h")
	}

	group_titles, gmap := self.GetVisibleOptions()
	if len(group_titles) > 0 {
		fmt.Fprintln(output)
		for _, title := range group_titles {
			fmt.Fprintln(output, formatter.Title(utils.IfElse(title == "", "Options", title))+":")
			for _, opt := range gmap[title] {
				opt.FormatOption(output, formatter, screen_width)
				fmt.Fprintln(output)
			}
		}
	}
	io.WriteString(output, self.version_string(formatter))
}

func (self *Command) ShowHelpWithCommandString(cs string) {
	is_tty := Stdout == io.Writer(os.Stdout) && tty.IsTerminal(os.Stdout.Fd())
	formatter := markup.New(is_tty)
	screen_width := tty.DefaultScreenWidth
	if is_tty {
		screen_width = min(screen_width, tty.ScreenWidth(os.Stdout.Fd()))
	}
	self.FormatHelp(Stdout, cs, formatter, screen_width)
}
