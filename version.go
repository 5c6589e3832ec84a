// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package fontnames

import (
	"fmt"
	"runtime/debug"
)

type VersionType struct {
	major, minor, patch int
}

func (self VersionType) String() string {
	return fmt.Sprint(self.major, ".", self.minor, ".", self.patch)
}

var Version = VersionType{major: 0, minor: 4, patch: 0}
var VersionString string
var VCSRevision string

const WebsiteBaseUrl = "https://glyphsapp.com/learn/"

func init() {
	VersionString = Version.String()
	bi, ok := debug.ReadBuildInfo()
	if ok {
		for _, bs := range bi.Settings {
			if bs.Key == "vcs.revision" {
				VCSRevision = bs.Value
			}
		}
	}
}
