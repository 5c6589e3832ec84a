// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package markup

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var _ = fmt.Print

func TestPrettify(t *testing.T) {
	plain := New(false)
	for src, expected := range map[string]string{
		"no markup":                       "no markup",
		"use :option:`fontnames --yes`":   "use --yes",
		":yellow:`wdth` is unknown":       "wdth is unknown",
		"see :doc:`the docs <naming/>`":   "see the docs",
		":code:`a` and :emph:`b`":         "a and b",
		":unknown:`x` stays :opt:`-h`":    "x stays -h",
		"unterminated :code:`x and more":  "unterminated :code:`x and more",
	} {
		if diff := cmp.Diff(expected, plain.Prettify(src)); diff != "" {
			t.Fatalf("Failed to prettify %#v:\n%s", src, diff)
		}
	}

	colored := New(true)
	if diff := cmp.Diff("x \x1b[93mwdth\x1b[0m y", colored.Prettify("x :yellow:`wdth` y")); diff != "" {
		t.Fatalf("Unexpected SGR output:\n%s", diff)
	}
	if diff := cmp.Diff("\x1b]8;;"+website_url("naming")+"\x1b\\docs\x1b]8;;\x1b\\", colored.Prettify(":doc:`docs <naming>`")); diff != "" {
		t.Fatalf("Unexpected hyperlink:\n%s", diff)
	}
	if colored.Bold("") != "" {
		t.Fatalf("Empty text must not be wrapped in escape codes")
	}
	colored.SetAllowEscapeCodes(false)
	if colored.EscapeCodesAllowed() || colored.Err("Error") != "Error" {
		t.Fatalf("Disabling escape codes had no effect")
	}
}
