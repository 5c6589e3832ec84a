// License: GPLv3 Copyright: 2023, Kovid Goyal, <kovid at kovidgoyal.net>

package utils

import (
	"bufio"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var _ = fmt.Print

func TestStringScanner(t *testing.T) {
	for _, text := range []string{
		"a\nb\nc",
		"a\nb\nc\r",
		"a\n\n\nb\nc",
		"a\r\r\nb\r\nc\n",
		"\n1",
		"",
		"\n",
	} {
		actual := Splitlines(text)
		expected := make([]string, 0, len(actual))
		s := bufio.NewScanner(strings.NewReader(text))
		for s.Scan() {
			expected = append(expected, s.Text())
		}
		if diff := cmp.Diff(expected, actual); diff != "" {
			t.Fatalf("Failed for: %#v\n%s", text, diff)
		}
	}
}

func TestLevenshteinDistance(t *testing.T) {
	for _, tc := range []struct {
		a, b     string
		expected int
	}{
		{"", "abc", 3},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"instances", "instanecs", 2},
		{"EXPORT", "export", 0},
		{"tïps", "tips", 1},
	} {
		if actual := LevenshteinDistance(tc.a, tc.b, true); actual != tc.expected {
			t.Fatalf("Distance between %#v and %#v: %d != %d", tc.a, tc.b, tc.expected, actual)
		}
	}
	if LevenshteinDistance("A", "a", false) != 1 {
		t.Fatalf("Case was ignored")
	}
}
