// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package tips

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fontnametable/fontnames/tools/cli"
	"github.com/fontnametable/fontnames/tools/cli/markup"
	"github.com/fontnametable/fontnames/tools/cmd/common"
	"github.com/fontnametable/fontnames/tools/naming"
	"github.com/fontnametable/fontnames/tools/tty"
)

var _ = fmt.Print

type Options struct {
	Format string
}

func severity_color(formatter *markup.Context, s naming.Severity) func(...any) string {
	switch s {
	case naming.SeverityWarning:
		return formatter.Yellow
	case naming.SeverityTip:
		return formatter.Green
	default:
		return formatter.Cyan
	}
}

func Write(w io.Writer, tips []naming.Tip, formatter *markup.Context) {
	for i, tip := range tips {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s %s\n", severity_color(formatter, tip.Severity)("["+string(tip.Severity)+"]"), formatter.Title(tip.Title))
		fmt.Fprintln(w, formatter.Prettify(tip.Message))
	}
}

func main(w io.Writer, cfg naming.FontConfiguration, opts *Options) (rc int, err error) {
	tips := naming.Tips(cfg)
	if opts.Format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err = enc.Encode(tips); err != nil {
			return 1, err
		}
		return 0, nil
	}
	Write(w, tips, markup.New(w == io.Writer(os.Stdout) && tty.IsTerminal(os.Stdout.Fd())))
	return 0, nil
}

func EntryPoint(root *cli.Command) *cli.Command {
	sc := root.AddSubCommand(&cli.Command{
		Name:             "tips",
		Usage:            "[options]",
		ShortDescription: "Show advice on naming conventions for the current configuration",
		HelpText:         "Analyzes the configuration and suggests improvements. Tips never change the generated names.",
		Run: func(cmd *cli.Command, args []string) (rc int, err error) {
			if len(args) > 0 {
				return 1, fmt.Errorf("The tips command takes no arguments")
			}
			opts := &Options{}
			if err = cmd.GetOptionValues(opts); err != nil {
				return 1, err
			}
			cfg, err := common.Load(cmd, true)
			if err != nil {
				return 1, err
			}
			return main(cli.Stdout, cfg, opts)
		},
	})
	sc.Add(cli.OptionSpec{
		Name:    "--format -f",
		Choices: "text, json",
		Help:    "The output format.",
	})
	return sc
}
