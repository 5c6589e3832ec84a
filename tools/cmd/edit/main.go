// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package edit

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fontnametable/fontnames/tools/cli"
	"github.com/fontnametable/fontnames/tools/cmd/common"
	"github.com/fontnametable/fontnames/tools/config"
	"github.com/fontnametable/fontnames/tools/fontconf"
	"github.com/fontnametable/fontnames/tools/fontfile"
	"github.com/fontnametable/fontnames/tools/naming"
	"github.com/fontnametable/fontnames/tools/tty"
)

var _ = fmt.Print

type mutation = func(naming.FontConfiguration) naming.FontConfiguration

type action struct {
	name, usage, help string
	min_args          int
	// zero means no limit
	max_args int
	build    func(args []string) (mutation, error)
}

func parse_value(text string) (float64, error) {
	v, err := naming.ParseValueKey(text)
	if err != nil {
		return 0, fmt.Errorf(":yellow:`%s` is not a valid axis value", text)
	}
	return v, nil
}

func parse_flag(text string) (bool, error) {
	on, err := config.ParseBool(text)
	if err != nil {
		return false, fmt.Errorf(":yellow:`%s` is not valid, use yes or no", text)
	}
	return on, nil
}

var actions = []action{
	{name: "family", usage: "NAME", help: "Set the family name", min_args: 1, build: func(args []string) (mutation, error) {
		name := strings.Join(args, " ")
		return func(c naming.FontConfiguration) naming.FontConfiguration { return c.WithFamilyName(name) }, nil
	}},
	{name: "axes", usage: "TAG, ...", help: "Set the axes and their order. Axes that are new get the default values and names", min_args: 1, build: func(args []string) (mutation, error) {
		spec := strings.Join(args, ",")
		return func(c naming.FontConfiguration) naming.FontConfiguration { return c.WithAxesString(spec) }, nil
	}},
	{name: "remove-axis", usage: "TAG", help: "Remove an axis together with its values and names", min_args: 1, max_args: 1, build: func(args []string) (mutation, error) {
		return func(c naming.FontConfiguration) naming.FontConfiguration { return c.WithoutAxis(args[0]) }, nil
	}},
	{name: "values", usage: "TAG VALUE, ...", help: "Set the values used for an axis", min_args: 2, build: func(args []string) (mutation, error) {
		tag, values := args[0], strings.Join(args[1:], ",")
		return func(c naming.FontConfiguration) naming.FontConfiguration { return c.WithAxisValues(tag, values) }, nil
	}},
	{name: "name", usage: "TAG VALUE [NAME]", help: "Set the name used for an axis value. Without NAME the value is elided from names", min_args: 2, build: func(args []string) (mutation, error) {
		v, err := parse_value(args[1])
		if err != nil {
			return nil, err
		}
		tag, name := args[0], strings.Join(args[2:], " ")
		return func(c naming.FontConfiguration) naming.FontConfiguration { return c.WithAxisName(tag, v, name) }, nil
	}},
	{name: "unname", usage: "TAG VALUE", help: "Remove the name of an axis value, names then use the tag and value", min_args: 2, max_args: 2, build: func(args []string) (mutation, error) {
		v, err := parse_value(args[1])
		if err != nil {
			return nil, err
		}
		return func(c naming.FontConfiguration) naming.FontConfiguration { return c.WithoutAxisName(args[0], v) }, nil
	}},
	{name: "subfamily", usage: "TAG yes|no", help: "Whether the axis creates separate families instead of styles", min_args: 2, max_args: 2, build: func(args []string) (mutation, error) {
		on, err := parse_flag(args[1])
		if err != nil {
			return nil, err
		}
		return func(c naming.FontConfiguration) naming.FontConfiguration { return c.WithSubfamily(args[0], on) }, nil
	}},
	{name: "elidable", usage: "TAG yes|no", help: "Whether Regular is dropped from style names when other parts are present", min_args: 2, max_args: 2, build: func(args []string) (mutation, error) {
		on, err := parse_flag(args[1])
		if err != nil {
			return nil, err
		}
		return func(c naming.FontConfiguration) naming.FontConfiguration { return c.WithRegularElidable(args[0], on) }, nil
	}},
	{name: "import", usage: "FONT_FILE", help: "Set the axes and values from the named instances of an existing variable font", min_args: 1, max_args: 1, build: func(args []string) (mutation, error) {
		fvar, err := fontfile.Open(args[0])
		if err != nil {
			return nil, err
		}
		return fvar.Seed, nil
	}},
}

type editor struct {
	w       io.Writer
	path    string
	session *naming.Session
	state   *fontconf.StateStore
}

func new_editor(w io.Writer, cmd *cli.Command) (*editor, error) {
	path, err := common.ConfPath(cmd)
	if err != nil {
		return nil, err
	}
	cfg, err := common.Load(cmd, false)
	if err != nil {
		return nil, err
	}
	ans := editor{w: w, path: path, state: fontconf.NewStateStore("")}
	ans.session = naming.NewSession(cfg, fontconf.Savers{fontconf.NewConfFile(path), ans.state})
	return &ans, nil
}

func (self *editor) report() {
	cfg := self.session.Config()
	fmt.Fprintf(self.w, "Saved to %s: %d instances over %s\n", self.path, cfg.InstanceCount(), strings.Join(cfg.Axes, ", "))
}

func (self *editor) apply(m mutation) error {
	if err := self.session.Update(m); err != nil {
		return err
	}
	self.report()
	return nil
}

var read_answer = func() (string, error) {
	if tty.IsTerminal(os.Stdin.Fd()) {
		b, err := tty.ReadSingleByteFromTerminal()
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return line, nil
}

func (self *editor) confirm(prompt string) bool {
	fmt.Fprint(self.w, prompt, " [y/N] ")
	answer, err := read_answer()
	fmt.Fprintln(self.w)
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func (self *editor) reset(yes bool) error {
	done, err := self.session.Reset(func(prompt string) bool { return yes || self.confirm(prompt) })
	if err != nil {
		return err
	}
	if !done {
		fmt.Fprintln(self.w, "Nothing was changed")
		return nil
	}
	if err = self.state.Clear(); err != nil {
		return err
	}
	self.report()
	return nil
}

func check_args(cmd *cli.Command, a action, args []string) error {
	if len(args) < a.min_args || (a.max_args > 0 && len(args) > a.max_args) {
		return fmt.Errorf("Usage: %s %s", cmd.CommandStringForUsage(), a.usage)
	}
	return nil
}

func EntryPoint(root *cli.Command) *cli.Command {
	ec := root.AddSubCommand(&cli.Command{
		Name:             "edit",
		Usage:            "action [args]",
		ShortDescription: "Change the naming configuration",
		HelpText:         "Apply a change to the configuration file and save it. Settings written by hand outside the block managed by fontnames are kept.",
	})
	for _, a := range actions {
		ec.AddSubCommand(&cli.Command{
			Name:             a.name,
			Usage:            a.usage,
			ShortDescription: a.help,
			Run: func(cmd *cli.Command, args []string) (rc int, err error) {
				if err = check_args(cmd, a, args); err != nil {
					return 1, err
				}
				m, err := a.build(args)
				if err != nil {
					return 1, err
				}
				e, err := new_editor(cli.Stdout, cmd)
				if err != nil {
					return 1, err
				}
				if err = e.apply(m); err != nil {
					return 1, err
				}
				return 0, nil
			},
		})
	}
	reset_cmd := ec.AddSubCommand(&cli.Command{
		Name:             "reset",
		Usage:            "[options]",
		ShortDescription: "Reset all settings to the defaults",
		Run: func(cmd *cli.Command, args []string) (rc int, err error) {
			opts := struct{ Yes bool }{}
			if err = cmd.GetOptionValues(&opts); err != nil {
				return 1, err
			}
			e, err := new_editor(cli.Stdout, cmd)
			if err != nil {
				return 1, err
			}
			if err = e.reset(opts.Yes); err != nil {
				return 1, err
			}
			return 0, nil
		},
	})
	reset_cmd.Add(cli.OptionSpec{Name: "--yes -y", Type: "bool-set", Help: "Do not ask for confirmation"})
	ec.AddSubCommand(&cli.Command{
		Name:             "show",
		ShortDescription: "Print the configuration in the format it is saved in",
		Run: func(cmd *cli.Command, args []string) (rc int, err error) {
			cfg, err := common.Load(cmd, true)
			if err != nil {
				return 1, err
			}
			fmt.Fprintln(cli.Stdout, fontconf.Serialize(cfg))
			return 0, nil
		},
	})
	return ec
}
