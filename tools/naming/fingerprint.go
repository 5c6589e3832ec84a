// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package naming

import (
	"fmt"
	"io"

	"github.com/zeebo/xxh3"
)

var _ = fmt.Print

// Fingerprint is a hash of the complete ordered name table. Two computations
// over the same configuration always give the same fingerprint.
func Fingerprint(instances []NamedInstance) uint64 {
	h := xxh3.New()
	sep := []byte{0}
	for _, inst := range instances {
		for _, field := range []string{
			inst.Coordinate.String(), inst.Family_name, inst.Style_name,
			inst.Variable_style_name, inst.Full_name, inst.Postscript_name} {
			_, _ = io.WriteString(h, field)
			_, _ = h.Write(sep)
		}
		_, _ = h.Write([]byte{'\n'})
	}
	return h.Sum64()
}
