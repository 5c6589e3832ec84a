// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package tty

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/fontnametable/fontnames/tools/utils"
)

var _ = fmt.Print

const (
	TCSANOW   = 0
	TCSADRAIN = 1
	TCSAFLUSH = 2

	DefaultScreenWidth = 80
)

type Term struct {
	os_file *os.File
	states  []unix.Termios
}

func eintr_retry_noret(f func() error) error {
	for {
		qerr := f()
		if qerr == unix.EINTR {
			continue
		}
		return qerr
	}
}

func eintr_retry_intret(f func() (int, error)) (int, error) {
	for {
		q, qerr := f()
		if qerr == unix.EINTR {
			continue
		}
		return q, qerr
	}
}

func IsTerminal(fd uintptr) bool {
	var t unix.Termios
	err := eintr_retry_noret(func() error { return Tcgetattr(int(fd), &t) })
	return err == nil
}

// ScreenWidth is the number of columns of the terminal fd refers to, or
// DefaultScreenWidth if it is not a terminal.
func ScreenWidth(fd uintptr) int {
	w, _, err := term.GetSize(int(fd))
	if err != nil || w < 1 {
		return DefaultScreenWidth
	}
	return w
}

type TermiosOperation func(t *unix.Termios)

var SetBlockingRead TermiosOperation = func(t *unix.Termios) {
	t.Cc[unix.VMIN] = 1
	t.Cc[unix.VTIME] = 0
}

var SetNoCanonical TermiosOperation = func(t *unix.Termios) {
	t.Lflag &^= unix.ICANON
}

var SetNoEcho TermiosOperation = func(t *unix.Termios) {
	t.Lflag &^= unix.ECHO
}

func OpenTerm(name string, operations ...TermiosOperation) (self *Term, err error) {
	fd, err := eintr_retry_intret(func() (int, error) {
		return unix.Open(name, unix.O_NOCTTY|unix.O_CLOEXEC|unix.O_RDWR, 0666)
	})
	if err != nil {
		return nil, &os.PathError{Op: "open", Path: name, Err: err}
	}
	self = &Term{os_file: os.NewFile(uintptr(fd), name)}
	if err = self.ApplyOperations(TCSANOW, operations...); err != nil {
		self.Close()
		self = nil
	}
	return
}

// go doesn't have a wrapper for ctermid()
func Ctermid() string { return "/dev/tty" }

func OpenControllingTerm(operations ...TermiosOperation) (self *Term, err error) {
	return OpenTerm(Ctermid(), operations...)
}

func (self *Term) Fd() int {
	if self.os_file == nil {
		return -1
	}
	return int(self.os_file.Fd())
}

func (self *Term) Close() error {
	if self.os_file == nil {
		return nil
	}
	err := eintr_retry_noret(func() error { return self.os_file.Close() })
	self.os_file = nil
	return err
}

func (self *Term) ApplyOperations(when uintptr, operations ...TermiosOperation) (err error) {
	if len(operations) == 0 {
		return
	}
	var state unix.Termios
	if err = eintr_retry_noret(func() error { return Tcgetattr(self.Fd(), &state) }); err != nil {
		return
	}
	new_state := state
	for _, op := range operations {
		op(&new_state)
	}
	if err = eintr_retry_noret(func() error { return Tcsetattr(self.Fd(), when, &new_state) }); err == nil {
		self.states = append(self.states, state)
	}
	return
}

// Restore puts back the terminal state from before the first
// ApplyOperations.
func (self *Term) Restore() (err error) {
	if len(self.states) == 0 {
		return nil
	}
	if err = eintr_retry_noret(func() error { return Tcsetattr(self.Fd(), TCSAFLUSH, &self.states[0]) }); err == nil {
		self.states = self.states[:0]
	}
	return
}

func (self *Term) RestoreAndClose() error {
	_ = self.Restore()
	return self.Close()
}

func is_temporary_error(err error) bool {
	return errors.Is(err, unix.EINTR) || errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EWOULDBLOCK) || errors.Is(err, io.ErrShortWrite)
}

func (self *Term) Read(b []byte) (n int, err error) {
	for {
		n, err = self.os_file.Read(b)
		if err != nil && is_temporary_error(err) && n <= 0 {
			continue
		}
		return
	}
}

func (self *Term) Write(b []byte) (int, error) {
	return self.os_file.Write(b)
}

func (self *Term) WriteAll(b []byte) error {
	for len(b) > 0 {
		n, err := self.os_file.Write(b)
		if err != nil && !is_temporary_error(err) {
			return err
		}
		b = b[n:]
	}
	return nil
}

func (self *Term) WriteAllString(s string) error {
	return self.WriteAll(utils.UnsafeStringToBytes(s))
}

// ReadSingleByteFromTerminal waits for a single key press without needing
// the user to press Enter.
func ReadSingleByteFromTerminal() (b byte, err error) {
	term, err := OpenControllingTerm(SetBlockingRead, SetNoCanonical)
	if err != nil {
		return 0, err
	}
	defer term.RestoreAndClose()
	ans := []byte{0}
	for {
		n, err := term.Read(ans)
		if err != nil {
			return 0, err
		}
		if n > 0 {
			return ans[0], nil
		}
	}
}
