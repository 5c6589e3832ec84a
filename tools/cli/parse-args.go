// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package cli

import (
	"fmt"
	"strings"
)

var _ = fmt.Print

type arg_parser struct {
	cmd               *Command
	ctx               *Context
	remaining         []string
	expecting_arg_for *Option
	options_allowed   bool
}

func (self *arg_parser) resolve_option(opt_str string) (*Option, string, error) {
	is_short := !strings.HasPrefix(opt_str, "--")
	name := NormalizeOptionName(opt_str)
	possible_options := self.cmd.FindOptions(opt_str)
	switch len(possible_options) {
	case 0:
		if possibles := self.cmd.SuggestionsForOption(opt_str, 2); len(possibles) > 0 {
			return nil, "", &ParseError{Message: fmt.Sprintf("Unknown option: :yellow:`%s`. Did you mean:\n\t%s", opt_str, strings.Join(possibles, "\n\t"))}
		}
		return nil, "", &ParseError{Message: fmt.Sprintf("Unknown option: :yellow:`%s`", opt_str)}
	case 1:
		opt := possible_options[0]
		return opt, opt.MatchingAlias(name, is_short), nil
	}
	ambi := make([]string, len(possible_options))
	for i, o := range possible_options {
		if o.HasAlias(name, is_short) {
			return o, opt_str, nil
		}
		ambi[i] = o.MatchingAlias(name, is_short)
	}
	return nil, "", &ParseError{Message: fmt.Sprintf("Ambiguous option: :yellow:`%s` could be any of: %s", opt_str, strings.Join(ambi, ", "))}
}

func (self *arg_parser) handle_option(opt_str string, has_val bool, opt_val string, val_not_allowed bool) error {
	opt, opt_str, err := self.resolve_option(opt_str)
	if err != nil {
		return err
	}
	opt.seen_option = opt_str
	needs_arg := opt.needs_argument()
	if needs_arg && val_not_allowed {
		return &ParseError{Message: fmt.Sprintf("The option: :yellow:`%s` must be followed by a value not another option", opt_str)}
	}
	switch {
	case has_val:
		if !needs_arg && opt.OptionType != BoolOption {
			return &ParseError{Message: fmt.Sprintf("The option: :yellow:`%s` does not take values", opt_str)}
		}
		return opt.add_value(opt_val)
	case needs_arg:
		self.expecting_arg_for = opt
		return nil
	}
	return opt.add_value("")
}

func (self *arg_parser) handle_option_arg(arg string) error {
	opt_str, opt_val, has_val := strings.Cut(arg, "=")
	if strings.HasPrefix(opt_str, "--") {
		return self.handle_option(opt_str, has_val, opt_val, false)
	}
	runes := []rune(opt_str[1:])
	for i, sl := range runes {
		var err error
		if i == len(runes)-1 {
			err = self.handle_option("-"+string(sl), has_val, opt_val, false)
		} else {
			err = self.handle_option("-"+string(sl), false, "", true)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// handle_positional returns the sub-command arg names, if any.
func (self *arg_parser) handle_positional(arg string) (*Command, error) {
	cmd := self.cmd
	if cmd.AllowOptionsAfterArgs <= len(cmd.Args) {
		self.options_allowed = false
	}
	if cmd.HasSubCommands() {
		possible_cmds := cmd.FindSubCommands(arg)
		if len(possible_cmds) == 1 {
			return possible_cmds[0], nil
		}
		if !cmd.SubCommandIsOptional {
			if len(possible_cmds) == 0 {
				if possibles := cmd.SuggestionsForCommand(arg, 2); len(possibles) > 0 {
					return nil, &ParseError{Message: fmt.Sprintf("Unknown subcommand: :yellow:`%s`. Did you mean:\n\t%s", arg, strings.Join(possibles, "\n\t"))}
				}
				return nil, &ParseError{Message: fmt.Sprintf(":yellow:`%s` is not a known subcommand for :emph:`%s`. Use --help to get a list of valid subcommands.", arg, cmd.Name)}
			}
			cn := make([]string, len(possible_cmds))
			for i, x := range possible_cmds {
				cn[i] = x.Name
			}
			return nil, &ParseError{Message: fmt.Sprintf(
				":yellow:`%s` is not a known subcommand for :emph:`%s`. Did you mean:\n\t%s", arg, cmd.Name, strings.Join(cn, "\n\t"))}
		}
	}
	cmd.Args = append(cmd.Args, arg)
	return nil, nil
}

func (self *Command) parse_args(ctx *Context, args []string) error {
	ctx.SeenCommands = append(ctx.SeenCommands, self)
	p := arg_parser{cmd: self, ctx: ctx, remaining: append([]string(nil), args...), options_allowed: true}
	for len(p.remaining) > 0 {
		arg := p.remaining[0]
		p.remaining = p.remaining[1:]
		switch {
		case p.expecting_arg_for != nil:
			if err := p.expecting_arg_for.add_value(arg); err != nil {
				return err
			}
			p.expecting_arg_for = nil
		case p.options_allowed && arg == "--":
			p.options_allowed = false
		case p.options_allowed && strings.HasPrefix(arg, "-") && arg != "-":
			if err := p.handle_option_arg(arg); err != nil {
				return err
			}
		default:
			sc, err := p.handle_positional(arg)
			if err != nil {
				return err
			}
			if sc != nil {
				return sc.parse_args(ctx, p.remaining)
			}
		}
	}
	if p.expecting_arg_for != nil {
		return &ParseError{Option: p.expecting_arg_for, Message: fmt.Sprintf("The option: :yellow:`%s` must be followed by a value", p.expecting_arg_for.seen_option)}
	}
	return nil
}
