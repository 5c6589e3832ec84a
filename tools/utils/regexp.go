// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package utils

import (
	"fmt"
	"regexp"
	"sync"
)

var _ = fmt.Print

var pat_cache sync.Map

// MustCompile is regexp.MustCompile with a process wide cache of compiled
// patterns.
func MustCompile(pat string) *regexp.Regexp {
	if ans, found := pat_cache.Load(pat); found {
		return ans.(*regexp.Regexp)
	}
	ans, _ := pat_cache.LoadOrStore(pat, regexp.MustCompile(pat))
	return ans.(*regexp.Regexp)
}
