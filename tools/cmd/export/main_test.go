// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/fontnametable/fontnames/tools/cli"
	"github.com/fontnametable/fontnames/tools/clipboard"
	"github.com/fontnametable/fontnames/tools/naming"
	"github.com/fontnametable/fontnames/tools/naming/glyphs"
)

var _ = fmt.Print

func TestExportClipboard(t *testing.T) {
	var copied string
	var copied_to clipboard.Destination
	orig := copy_to_clipboard
	defer func() { copy_to_clipboard = orig }()
	copy_to_clipboard = func(text string, dest clipboard.Destination) error {
		copied, copied_to = text, dest
		return nil
	}
	cfg := naming.DefaultConfiguration().WithAxisValues("wght", "400,700").WithAxisValues("wdth", "100")
	expected, err := glyphs.Export(naming.Instances(cfg))
	if err != nil {
		t.Fatal(err)
	}

	out := strings.Builder{}
	if rc, err := main(&out, cfg, &Options{Clipboard: true, UsePrimary: true}); rc != 0 || err != nil {
		t.Fatalf("export failed: %d %v", rc, err)
	}
	if diff := cmp.Diff(string(expected), copied); diff != "" {
		t.Fatalf("Unexpected clipboard contents:\n%s", diff)
	}
	if copied_to != clipboard.PrimarySelection {
		t.Fatalf("Copied to the wrong destination: %#v", copied_to)
	}
	// the output is produced even when copying to the clipboard
	if diff := cmp.Diff(string(expected), out.String()); diff != "" {
		t.Fatalf("Unexpected output:\n%s", diff)
	}

	stderr := strings.Builder{}
	orig_stderr := cli.Stderr
	cli.Stderr = &stderr
	defer func() { cli.Stderr = orig_stderr }()
	copy_to_clipboard = func(string, clipboard.Destination) error { return errors.New("no terminal") }
	path := filepath.Join(t.TempDir(), "out.plist")
	out.Reset()
	if rc, err := main(&out, cfg, &Options{Clipboard: true, Output: path}); rc != 0 || err != nil {
		t.Fatalf("A clipboard failure must not fail the export: %d %v", rc, err)
	}
	if !strings.Contains(stderr.String(), "Could not copy to the clipboard: no terminal") {
		t.Fatalf("Clipboard failure not reported: %#v", stderr.String())
	}
	if out.Len() != 0 {
		t.Fatalf("Export to a file wrote to the output: %s", out.String())
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(string(expected), string(raw)); diff != "" {
		t.Fatalf("Unexpected file contents:\n%s", diff)
	}
}
