// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package instances

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/fontnametable/fontnames/tools/cli"
	"github.com/fontnametable/fontnames/tools/cmd/common"
	"github.com/fontnametable/fontnames/tools/naming"
)

var _ = fmt.Print

type Options struct {
	Format      string
	Fingerprint bool
}

var table_headers = []string{"Coordinates", "Family", "Style", "Variable style", "Full name", "PostScript name"}

func row(inst naming.NamedInstance) []string {
	return []string{inst.Coordinate.String(), inst.Family_name, inst.Style_name, inst.Variable_style_name, inst.Full_name, inst.Postscript_name}
}

func write_separated(w io.Writer, sep string, rows ...[]string) {
	for _, r := range rows {
		for i, cell := range r {
			if i > 0 {
				io.WriteString(w, sep)
			}
			io.WriteString(w, cell)
		}
		io.WriteString(w, "\n")
	}
}

func Write(w io.Writer, instances []naming.NamedInstance, format string) (err error) {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(instances)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(instances); err != nil {
			return err
		}
		return enc.Close()
	case "tsv":
		write_separated(w, "\t", table_headers)
		for _, inst := range instances {
			write_separated(w, "\t", row(inst))
		}
		return nil
	default:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		write_separated(tw, "\t", table_headers)
		for _, inst := range instances {
			write_separated(tw, "\t", row(inst))
		}
		if err = tw.Flush(); err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "\n%d instances\n", len(instances))
		return err
	}
}

func main(w io.Writer, cfg naming.FontConfiguration, opts *Options) (rc int, err error) {
	instances := naming.Instances(cfg)
	if opts.Fingerprint {
		_, err = fmt.Fprintf(w, "%016x\n", naming.Fingerprint(instances))
	} else {
		err = Write(w, instances, opts.Format)
	}
	if err != nil {
		return 1, err
	}
	return 0, nil
}

func EntryPoint(root *cli.Command) *cli.Command {
	sc := root.AddSubCommand(&cli.Command{
		Name:             "instances",
		Usage:            "[options]",
		ShortDescription: "List every instance with its derived names",
		HelpText: "Generate all combinations of the configured axis values and print the style, variable style," +
			" family, full and PostScript names of each.",
		Run: func(cmd *cli.Command, args []string) (rc int, err error) {
			if len(args) > 0 {
				return 1, fmt.Errorf("The instances command takes no arguments")
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
		Choices: "table, json, tsv, yaml",
		Help:    "The output format.",
	})
	sc.Add(cli.OptionSpec{
		Name: "--fingerprint",
		Type: "bool-set",
		Help: "Print only a hash of the complete name table. Two configurations with the same fingerprint name every instance identically.",
	})
	return sc
}
