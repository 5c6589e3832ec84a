// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package tool

import (
	"fmt"

	"github.com/fontnametable/fontnames/tools/cli"
	"github.com/fontnametable/fontnames/tools/cmd/common"
	"github.com/fontnametable/fontnames/tools/cmd/edit"
	"github.com/fontnametable/fontnames/tools/cmd/export"
	"github.com/fontnametable/fontnames/tools/cmd/instances"
	"github.com/fontnametable/fontnames/tools/cmd/tips"
)

var _ = fmt.Print

func FontnamesToolEntryPoints(root *cli.Command) {
	common.AddConfigOptions(root)
	// instances
	instances.EntryPoint(root)
	// export
	export.EntryPoint(root)
	// tips
	tips.EntryPoint(root)
	// edit
	edit.EntryPoint(root)
}

func NewRoot() *cli.Command {
	root := cli.NewRootCommand()
	root.Name = "fontnames"
	root.ShortDescription = "Generate standardized names for the instances of a variable font"
	root.Usage = "command [command options] [command args]"
	root.Run = func(cmd *cli.Command, args []string) (int, error) {
		cmd.ShowHelp()
		return 0, nil
	}
	FontnamesToolEntryPoints(root)
	return root
}
