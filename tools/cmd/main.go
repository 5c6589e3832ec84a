// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package main

import (
	"github.com/fontnametable/fontnames/tools/cmd/tool"
)

func main() {
	tool.NewRoot().Exec()
}
