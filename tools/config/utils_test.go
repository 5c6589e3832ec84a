// License: GPLv3 Copyright: 2023, Kovid Goyal, <kovid at kovidgoyal.net>

package config

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var _ = fmt.Print

func TestStringLiteralParsing(t *testing.T) {
	for q, expected := range map[string]string{
		`abc`:                 `abc`,
		`a\nb\M`:              "a\nb\\M",
		`a\x20\x1\u1234\123|`: "a \\x1\u1234\123|",
		`it\'s \"x\" \`:       `it's "x" \`,
	} {
		actual, err := StringLiteral(q)
		if err != nil {
			t.Fatal(err)
		}
		if expected != actual {
			t.Fatalf("Failed with input: %#v\n%#v != %#v", q, expected, actual)
		}
	}
	for _, q := range []string{"", " Extra Bold ", `a\b`, "tab\there", "new\nline", "Ünïcödé", "Sans\u00a0", "\u2003Wide\u3000", "\u0085x"} {
		actual, _ := StringLiteral(EscapeStringLiteral(q))
		if actual != q {
			t.Fatalf("Escaping %#v did not round trip, got: %#v via %#v", q, actual, EscapeStringLiteral(q))
		}
	}
}

func TestEscapeEdgeWhitespace(t *testing.T) {
	for q, expected := range map[string]string{
		"Sans\u00a0":     `Sans\u00a0`,
		" a b ":          `\x20a b\x20`,
		"\u3000":         `\u3000`,
		"x\u00a0y":       "x\u00a0y",
		"Sans\U0001F600": "Sans\U0001F600",
	} {
		if actual := EscapeStringLiteral(q); actual != expected {
			t.Fatalf("Escaping %#v: %#v != %#v", q, expected, actual)
		}
	}
}

func TestSplitFields(t *testing.T) {
	for _, tc := range []struct {
		val      string
		n        int
		expected []string
	}{
		{"wght 400 Extra  Bold", 3, []string{"wght", "400", "Extra  Bold"}},
		{"  wght\t400  ", 3, []string{"wght", "400"}},
		{"wght", 3, []string{"wght"}},
		{"", 2, []string{}},
		{"a b c", 1, []string{"a b c"}},
	} {
		if diff := cmp.Diff(tc.expected, SplitFields(tc.val, tc.n)); diff != "" {
			t.Fatalf("Failed to split %#v:\n%s", tc.val, diff)
		}
	}
}

func TestParseBool(t *testing.T) {
	for q, expected := range map[string]bool{"yes": true, "Y": true, " true": true, "no": false, "off": false, "0": false} {
		if actual, err := ParseBool(q); err != nil || actual != expected {
			t.Fatalf("Parsing %#v gave %v, %v", q, actual, err)
		}
	}
	if _, err := ParseBool("maybe"); err == nil {
		t.Fatalf("Invalid boolean accepted")
	}
}
