// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

// Package common has the options and configuration loading shared by all
// fontnames commands.
package common

import (
	"fmt"

	"github.com/fontnametable/fontnames/tools/cli"
	"github.com/fontnametable/fontnames/tools/fontconf"
	"github.com/fontnametable/fontnames/tools/naming"
)

var _ = fmt.Print

type ConfigOptions struct {
	Config   []string
	Override []string
}

func AddConfigOptions(root *cli.Command) {
	root.AddToGroup("Configuration", cli.OptionSpec{
		Name: "--config -c", Type: "list", Depth: -1,
		Help: "Specify a path to the configuration file(s) to use. All configuration files are merged onto the" +
			" builtin defaults. Defaults to :file:`fontnames.conf` in the fontnames config directory.",
	})
	root.AddToGroup("Configuration", cli.OptionSpec{
		Name: "--override -o", Type: "list", Depth: -1,
		Help: "Override individual configuration options, can be specified multiple times." +
			" Syntax: :emph:`name=value`. For example: :code:`-o family_name=Sans`",
	})
}

func config_options(cmd *cli.Command) (*ConfigOptions, error) {
	opts := ConfigOptions{}
	if err := cmd.GetOptionValues(&opts); err != nil {
		return nil, err
	}
	return &opts, nil
}

// ConfPath is the file edits are saved to, the first --config path or the
// default location.
func ConfPath(cmd *cli.Command) (string, error) {
	opts, err := config_options(cmd)
	if err != nil {
		return "", err
	}
	if len(opts.Config) > 0 {
		return opts.Config[0], nil
	}
	return fontconf.DefaultPath(), nil
}

// Load reads the configuration for cmd, reporting problems that do not
// prevent loading as warnings. Overrides are ignored unless
// apply_overrides is set.
func Load(cmd *cli.Command, apply_overrides bool) (naming.FontConfiguration, error) {
	opts, err := config_options(cmd)
	if err != nil {
		return naming.FontConfiguration{}, err
	}
	overrides := opts.Override
	if !apply_overrides {
		overrides = nil
	}
	res, err := fontconf.LoadWithState(opts.Config, overrides, fontconf.NewStateStore(""))
	if err != nil {
		return naming.FontConfiguration{}, fmt.Errorf("failed to load configuration: %w", err)
	}
	for _, bl := range res.Bad_lines {
		cli.ShowWarning("Ignoring invalid config line: %s", bl.Error())
	}
	for _, w := range res.Warnings {
		cli.ShowWarning("%s", w)
	}
	return res.Config, nil
}
