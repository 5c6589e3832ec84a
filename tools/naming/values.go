// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package naming

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
)

var _ = fmt.Print

// FormatValue renders an axis value the way it appears in names and in
// serialized mappings: shortest decimal form with no trailing zeros.
func FormatValue(v float64) string {
	if v == 0 {
		// avoid -0
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseValueKey parses the textual form of an axis value. "100", "100.0"
// and "1e2" all give the same key.
func ParseValueKey(text string) (float64, error) {
	ans, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(ans) {
		return 0, fmt.Errorf("%#v is not a valid axis value", text)
	}
	if ans == 0 {
		ans = 0
	}
	return ans, nil
}

// ParseAxisValues parses a comma separated list of numbers. Tokens that are
// not numbers are silently dropped, as are repeats of an earlier value.
func ParseAxisValues(text string) []float64 {
	ans := make([]float64, 0, strings.Count(text, ",")+1)
	for _, token := range strings.Split(text, ",") {
		v, err := ParseValueKey(token)
		if err == nil && !slices.Contains(ans, v) {
			ans = append(ans, v)
		}
	}
	return ans
}

// NameMapping maps axis values to display names. Entries are sparse, a
// missing entry is distinct from an entry with an empty name.
type NameMapping map[float64]string

func (self NameMapping) Lookup(v float64) (name string, found bool) {
	name, found = self[v]
	return
}

func (self NameMapping) Clone() NameMapping {
	if self == nil {
		return nil
	}
	return maps.Clone(self)
}

func (self NameMapping) SortedValues() []float64 {
	return slices.Sorted(maps.Keys(self))
}

func (self NameMapping) MarshalJSON() ([]byte, error) {
	m := make(map[string]string, len(self))
	for k, v := range self {
		m[FormatValue(k)] = v
	}
	return json.Marshal(m)
}

func (self *NameMapping) UnmarshalJSON(data []byte) error {
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	if m == nil {
		*self = nil
		return nil
	}
	ans := make(NameMapping, len(m))
	for k, v := range m {
		key, err := ParseValueKey(k)
		if err != nil {
			return fmt.Errorf("invalid axis value %#v in name mapping: %w", k, err)
		}
		ans[key] = v
	}
	*self = ans
	return nil
}
