// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

// Package clipboard copies text to the system clipboard of the terminal
// emulator using the OSC 52 escape code, which works over SSH as well.
package clipboard

import (
	"bufio"
	"fmt"
	"io"

	"github.com/emmansun/base64"

	"github.com/fontnametable/fontnames/tools/tty"
)

var _ = fmt.Print

type Destination string

const (
	Clipboard        Destination = "c"
	PrimarySelection Destination = "p"
)

// WriteOSC52 writes the escape code that asks the terminal to place data
// into dest.
func WriteOSC52(w io.Writer, dest Destination, data io.Reader) (err error) {
	bw := bufio.NewWriter(w)
	if _, err = bw.WriteString("\x1b]52;" + string(dest) + ";"); err != nil {
		return
	}
	enc := base64.NewEncoder(base64.StdEncoding, bw)
	if _, err = io.Copy(enc, data); err != nil {
		return
	}
	if err = enc.Close(); err != nil {
		return
	}
	if _, err = bw.WriteString("\x1b\\"); err != nil {
		return
	}
	return bw.Flush()
}

func Encode(dest Destination, text string) string {
	return "\x1b]52;" + string(dest) + ";" + base64.StdEncoding.EncodeToString([]byte(text)) + "\x1b\\"
}

// Copy sends text to the clipboard of the controlling terminal.
func Copy(text string, dest Destination) error {
	term, err := tty.OpenControllingTerm()
	if err != nil {
		return fmt.Errorf("no terminal available to copy to the clipboard: %w", err)
	}
	defer term.Close()
	return term.WriteAllString(Encode(dest, text))
}
