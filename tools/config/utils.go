// License: GPLv3 Copyright: 2023, Kovid Goyal, <kovid at kovidgoyal.net>

package config

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var _ = fmt.Print

// ParseBool accepts the usual spellings of yes and no and rejects anything
// else.
func ParseBool(x string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(x)) {
	case "y", "yes", "true", "on", "1":
		return true, nil
	case "n", "no", "false", "off", "0":
		return false, nil
	}
	return false, fmt.Errorf("%#v is not a valid boolean, use yes or no", x)
}

func BoolToString(x bool) string {
	if x {
		return "yes"
	}
	return "no"
}

// SplitFields splits val into at most n whitespace separated fields, the
// last field is the unsplit remainder.
func SplitFields(val string, n int) []string {
	ans := make([]string, 0, n)
	val = strings.TrimLeftFunc(val, unicode.IsSpace)
	for val != "" && len(ans) < n-1 {
		idx := strings.IndexFunc(val, unicode.IsSpace)
		if idx < 0 {
			break
		}
		ans = append(ans, val[:idx])
		val = strings.TrimLeftFunc(val[idx:], unicode.IsSpace)
	}
	if val != "" {
		ans = append(ans, val)
	}
	return ans
}

// StringLiteral decodes the backslash escapes supported in Go string
// literals. Invalid escapes are passed through unchanged.
func StringLiteral(val string) (string, error) {
	if !strings.Contains(val, `\`) {
		return val, nil
	}
	ans := strings.Builder{}
	ans.Grow(len(val))
	for len(val) > 0 {
		if val[0] != '\\' {
			r, sz := utf8.DecodeRuneInString(val)
			ans.WriteRune(r)
			val = val[sz:]
			continue
		}
		if len(val) == 1 {
			ans.WriteByte('\\')
			break
		}
		if val[1] == '\'' || val[1] == '"' {
			ans.WriteByte(val[1])
			val = val[2:]
			continue
		}
		r, multibyte, tail, err := strconv.UnquoteChar(val, '"')
		if err != nil {
			ans.WriteByte('\\')
			val = val[1:]
			continue
		}
		if multibyte || r >= utf8.RuneSelf {
			ans.WriteRune(r)
		} else {
			ans.WriteByte(byte(r))
		}
		val = tail
	}
	return ans.String(), nil
}

// EscapeStringLiteral is the inverse of StringLiteral. It escapes
// backslashes, control characters and leading or trailing whitespace so that
// the result survives being stored as a config value.
func EscapeStringLiteral(val string) string {
	ans := strings.Builder{}
	ans.Grow(len(val) + 8)
	_, last_size := utf8.DecodeLastRuneInString(val)
	last := len(val) - last_size
	for i, r := range val {
		switch {
		case r == '\\':
			ans.WriteString(`\\`)
		case unicode.IsControl(r):
			q := strconv.QuoteRune(r)
			ans.WriteString(q[1 : len(q)-1])
		case unicode.IsSpace(r) && (i == 0 || i == last):
			switch {
			case r < utf8.RuneSelf:
				fmt.Fprintf(&ans, `\x%02x`, r)
			case r <= 0xffff:
				fmt.Fprintf(&ans, `\u%04x`, r)
			default:
				fmt.Fprintf(&ans, `\U%08x`, r)
			}
		default:
			ans.WriteRune(r)
		}
	}
	return ans.String()
}
