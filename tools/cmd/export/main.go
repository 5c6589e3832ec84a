// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package export

import (
	"bytes"
	"fmt"
	"io"

	"github.com/fontnametable/fontnames/tools/cli"
	"github.com/fontnametable/fontnames/tools/clipboard"
	"github.com/fontnametable/fontnames/tools/cmd/common"
	"github.com/fontnametable/fontnames/tools/naming"
	"github.com/fontnametable/fontnames/tools/naming/glyphs"
	"github.com/fontnametable/fontnames/tools/utils"
)

var _ = fmt.Print

type Options struct {
	Output     string
	Clipboard  bool
	UsePrimary bool
}

var copy_to_clipboard = clipboard.Copy

func main(w io.Writer, cfg naming.FontConfiguration, opts *Options) (rc int, err error) {
	data, err := glyphs.Export(naming.Instances(cfg))
	if err != nil {
		return 1, fmt.Errorf("failed to serialize instances: %w", err)
	}
	if opts.Clipboard {
		dest := utils.IfElse(opts.UsePrimary, clipboard.PrimarySelection, clipboard.Clipboard)
		if cerr := copy_to_clipboard(string(data), dest); cerr != nil {
			cli.ShowWarning("Could not copy to the clipboard: %s", cerr)
		}
	}
	if opts.Output != "" {
		path := utils.Expanduser(opts.Output)
		if err = utils.AtomicUpdateFile(path, bytes.NewReader(data), 0o644); err != nil {
			return 1, fmt.Errorf("failed to write %s: %w", path, err)
		}
		return 0, nil
	}
	if _, err = w.Write(data); err != nil {
		return 1, err
	}
	return 0, nil
}

func EntryPoint(root *cli.Command) *cli.Command {
	sc := root.AddSubCommand(&cli.Command{
		Name:             "export",
		Usage:            "[options]",
		ShortDescription: "Export the instances in the format used by the Glyphs font editor",
		HelpText: "Writes the instances as a Glyphs :code:`instances` property list, ready to paste into a" +
			" .glyphs file. Each instance carries its axis locations and its localized family and variable style names.",
		Run: func(cmd *cli.Command, args []string) (rc int, err error) {
			if len(args) > 0 {
				return 1, fmt.Errorf("The export command takes no arguments")
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
		Name: "--output",
		Help: "Write to the specified file instead of STDOUT.",
	})
	sc.Add(cli.OptionSpec{
		Name: "--clipboard",
		Type: "bool-set",
		Help: "Copy the result to the clipboard using the OSC 52 escape code. Failing to copy is not an error.",
	})
	sc.Add(cli.OptionSpec{
		Name: "--use-primary",
		Type: "bool-set",
		Help: "With :option:`--clipboard` use the primary selection rather than the clipboard.",
	})
	return sc
}
