// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package cli

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/fontnametable/fontnames/tools/cli/markup"
)

var _ = fmt.Print

type options struct {
	SimpleString string
	Choices      string
	FromParent   int
	SetMe        bool
	Int          int
	Float        float64
	Tags         []string
}

func test_tree() (*Command, *Command) {
	root := NewRootCommand()
	root.Name = "fontnames"
	root.Add(OptionSpec{Name: "--from-parent -p", Type: "count", Depth: 1})
	child1 := root.AddSubCommand(&Command{Name: "child1", ShortDescription: "The first child"})
	child1.Add(OptionSpec{Name: "--choices", Choices: "a b c"})
	child1.Add(OptionSpec{Name: "--simple-string -s"})
	child1.Add(OptionSpec{Name: "--set-me", Type: "bool-set"})
	child1.Add(OptionSpec{Name: "--int", Type: "int"})
	child1.Add(OptionSpec{Name: "--float", Type: "float"})
	child1.Add(OptionSpec{Name: "--tags", Type: "list", Default: "wght wdth"})
	return root, child1
}

func TestCLIParsing(t *testing.T) {
	_, child1 := test_tree()

	rt := func(cmdline string, expected_options any, expected_args ...string) {
		cmd, err := child1.ParseArgs(strings.Fields(cmdline))
		if err != nil {
			t.Fatal(err)
		}
		actual_options := reflect.New(reflect.TypeOf(expected_options).Elem()).Interface()
		if err = cmd.GetOptionValues(actual_options); err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(expected_options, actual_options) {
			t.Fatalf("Option values incorrect (expected != actual):\nCommand line: %s\n%#v != %#v", cmdline, expected_options, actual_options)
		}
		if expected_args == nil {
			expected_args = []string{}
		}
		if !reflect.DeepEqual(expected_args, cmd.Args) {
			t.Fatalf("Argument values incorrect (expected != actual):\nCommand line: %s\n%#v != %#v", cmdline, expected_args, cmd.Args)
		}
		cmd.Root().ResetAfterParseArgs()
	}
	tags := []string{"wght", "wdth"}

	rt(
		"test --from-parent child1 -ps ss --choices b --from-parent one two",
		&options{SimpleString: "ss", Choices: "b", FromParent: 3, Tags: tags},
		"one", "two",
	)
	rt("test child1", &options{Choices: "a", Tags: tags})
	rt("test ch", &options{Choices: "a", Tags: tags})
	rt("test child1 --set-me --simple-string=foo one", &options{Choices: "a", SimpleString: "foo", SetMe: true, Tags: tags}, "one")
	rt("test child1 --set-me=no --simple-string= one", &options{Choices: "a", Tags: tags}, "one")
	rt("test child1 --int -3 --simple-string -s --float=3.3", &options{Choices: "a", SimpleString: "-s", Int: -3, Float: 3.3, Tags: tags})
	rt("test child1 --tags opsz --tag=GRAD -- --int", &options{Choices: "a", Tags: []string{"wght", "wdth", "opsz", "GRAD"}}, "--int")

	for _, cmdline := range []string{
		"test child1 --choices x",
		"test child1 --int three",
		"test child1 --set-me=maybe",
		"test child1 --nonexistent",
		"test child1 -sp x",
		"test child1 --int",
		"test nochild",
	} {
		_, err := child1.ParseArgs(strings.Fields(cmdline))
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("No parse error for %#v: %v", cmdline, err)
		}
		child1.Root().ResetAfterParseArgs()
	}
}

func TestBoolReset(t *testing.T) {
	root := NewRootCommand()
	opt := root.Add(OptionSpec{Name: "--color --colour", Type: "bool-reset"})
	for cmdline, expected := range map[string]bool{"x": true, "x --color": false, "x --colour=yes": true} {
		if _, err := root.ParseArgs(strings.Fields(cmdline)); err != nil {
			t.Fatal(err)
		}
		actual, err := GetOptionValue[bool](root, opt.Name)
		if err != nil {
			t.Fatal(err)
		}
		if actual != expected {
			t.Fatalf("Unexpected value for %#v: %v", cmdline, actual)
		}
		root.ResetAfterParseArgs()
	}
}

func TestSuggestions(t *testing.T) {
	root, child1 := test_tree()
	if err := root.Validate(); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"child1"}, root.SuggestionsForCommand("chilt1", 2)); diff != "" {
		t.Fatalf("Unexpected command suggestions:\n%s", diff)
	}
	if diff := cmp.Diff([]string{"--int"}, child1.SuggestionsForOption("--in", 2)); diff != "" {
		t.Fatalf("Unexpected option suggestions:\n%s", diff)
	}
	if diff := cmp.Diff("fontnames child1", child1.CommandStringForUsage()); diff != "" {
		t.Fatalf("Unexpected usage string:\n%s", diff)
	}
	dup := NewRootCommand()
	dup.Add(OptionSpec{Name: "--one -x"})
	dup.Add(OptionSpec{Name: "--two -x"})
	if err := dup.Validate(); err == nil {
		t.Fatalf("Duplicate short flag not detected")
	}
}

func TestHelpOutput(t *testing.T) {
	root, child1 := test_tree()
	if err := root.Validate(); err != nil {
		t.Fatal(err)
	}
	child1.Usage = "[options] ARGS"
	child1.HelpText = "Does things with :yellow:`axes` that are described in a paragraph long enough to need wrapping at forty columns."
	sb := strings.Builder{}
	child1.FormatHelp(&sb, child1.CommandStringForUsage(), markup.New(false), 40)
	out := sb.String()
	for _, q := range []string{"Usage: fontnames child1 [options] ARGS", "  --choices [=a]", "    Choices: a, b, c", "  --set-me [=no]", "  --from-parent, -p"} {
		if !strings.Contains(out, q) {
			t.Fatalf("%#v not found in help output:\n%s", q, out)
		}
	}
	for _, line := range strings.Split(out, "\n") {
		if len(line) > 40 {
			t.Fatalf("Line not wrapped: %#v", line)
		}
	}
	if strings.Contains(out, "\x1b") {
		t.Fatalf("Escape codes in plain help output")
	}
}

func TestWrapText(t *testing.T) {
	for _, tc := range []struct {
		text, indent string
		width        int
		expected     string
	}{
		{"one two three", "", 20, "one two three"},
		{"aaaa bbbb cccc dddd eeee ffff", "  ", 24, "  aaaa bbbb cccc dddd\n  eeee ffff"},
		{"para\n\n    code  block", "", 20, "para\n\n    code  block"},
		{"\x1b[1mbold\x1b[0m aaaaaaaaaaaaaaa", "", 20, "\x1b[1mbold\x1b[0m aaaaaaaaaaaaaaa"},
	} {
		if diff := cmp.Diff(tc.expected, wrap_text(tc.text, tc.indent, tc.width)); diff != "" {
			t.Fatalf("Failed to wrap %#v:\n%s", tc.text, diff)
		}
	}
}

func TestExecArgs(t *testing.T) {
	root, child1 := test_tree()
	var seen []string
	child1.Run = func(cmd *Command, args []string) (int, error) {
		seen = args
		if len(args) > 0 && args[0] == "fail" {
			return 3, fmt.Errorf("failed with :yellow:`%s`", args[0])
		}
		return 0, nil
	}
	stderr := strings.Builder{}
	orig := Stderr
	Stderr = &stderr
	defer func() { Stderr = orig }()

	if rc := root.ExecArgs([]string{"test", "child1", "x"}); rc != 0 {
		t.Fatalf("Unexpected exit code: %d", rc)
	}
	if diff := cmp.Diff([]string{"x"}, seen); diff != "" {
		t.Fatalf("Unexpected args:\n%s", diff)
	}
	root.ResetAfterParseArgs()
	if rc := root.ExecArgs([]string{"test", "child1", "fail"}); rc != 3 {
		t.Fatalf("Unexpected exit code: %d", rc)
	}
	if diff := cmp.Diff("Error: failed with fail\n", stderr.String()); diff != "" {
		t.Fatalf("Unexpected error output:\n%s", diff)
	}
	root.ResetAfterParseArgs()
	stderr.Reset()
	if rc := root.ExecArgs([]string{"test", "--bogus"}); rc != 1 || !strings.Contains(stderr.String(), "Unknown option: --bogus") {
		t.Fatalf("Bad option not reported: %d %#v", rc, stderr.String())
	}
}
