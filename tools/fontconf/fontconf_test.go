// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package fontconf

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fontnametable/fontnames/tools/naming"
)

var _ = fmt.Print

func write_conf(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))
	return path
}

func TestLoadConf(t *testing.T) {
	tdir := t.TempDir()
	write_conf(t, tdir, "names.conf", "axis_name wdth 75 Narrow\n")
	path := write_conf(t, tdir, "fontnames.conf", `
# a comment
family_name \x20Spaced Sans
axes wdth, wght, opsz
axis_values wght 300, 700
axis_values opsz 8,
\ 72
axis_name wght 300
axis_name wght 700.0 Heavy\tOne
clear_names opsz
axis_name opsz 72 Display
subfamily wdth yes
regular_elidable wght on
include names.conf
bogus setting
axis_name wght notanumber Name
subfamily wdth perhaps
axis_values
`)
	res, err := Load([]string{path}, []string{"axis_name=wght 400 Book"})
	require.NoError(t, err)
	assert.True(t, res.Found)
	cfg := res.Config
	assert.Equal(t, " Spaced Sans", cfg.Family_name)
	assert.Equal(t, []string{"wdth", "wght", "opsz"}, cfg.Axes)

	wght, _ := cfg.AxisConfig("wght")
	assert.Equal(t, "300, 700", wght.Values)
	assert.True(t, wght.Regular_elidable)
	name, found := wght.Names.Lookup(300)
	assert.True(t, found)
	assert.Equal(t, "", name)
	assert.Equal(t, "Heavy\tOne", wght.Names[700])
	assert.Equal(t, "Book", wght.Names[400])
	// entries from the defaults that were not touched survive
	assert.Equal(t, "Thin", wght.Names[100])

	opsz, _ := cfg.AxisConfig("opsz")
	assert.Equal(t, "8, 72", opsz.Values)
	assert.Equal(t, naming.NameMapping{72: "Display"}, opsz.Names)

	wdth, _ := cfg.AxisConfig("wdth")
	assert.True(t, wdth.Is_subfamily)
	assert.Equal(t, "Narrow", wdth.Names[75])

	require.Len(t, res.Bad_lines, 4)
	assert.Contains(t, res.Bad_lines[0].Err.Error(), "unknown setting: bogus")
	assert.Contains(t, res.Bad_lines[1].Err.Error(), "not a valid axis value")
	assert.Contains(t, res.Bad_lines[2].Err.Error(), "not a valid boolean")
	assert.Contains(t, res.Bad_lines[3].Err.Error(), "needs an axis tag")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("FONTNAMES_CONFIG_DIRECTORY", t.TempDir())
	res, err := Load(nil, nil)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.True(t, naming.DefaultConfiguration().Equal(res.Config))
	assert.Empty(t, res.Bad_lines)

	empty := write_conf(t, t.TempDir(), "empty.conf", "# nothing here\n")
	res, err = Load([]string{empty}, nil)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.True(t, naming.DefaultConfiguration().Equal(res.Config))
}

func TestSaveRoundTrip(t *testing.T) {
	cfg := naming.DefaultConfiguration().
		WithFamilyName(`Back\slash Sans `).
		WithAxesString("wdth, wght, opsz, XOPQ").
		WithAxisValues("XOPQ", "10, 20,30").
		WithAxisName("XOPQ", 20, "Mid").
		WithAxisName("XOPQ", 30, "").
		WithoutAxisName("wght", 400).
		WithSubfamily("opsz", true).
		WithRegularElidable("wght", true)

	path := filepath.Join(t.TempDir(), "sub", "fontnames.conf")
	cf := NewConfFile(path)
	assert.False(t, cf.Exists())
	require.NoError(t, cf.Save(cfg))
	assert.True(t, cf.Exists())

	res, err := Load([]string{path}, nil)
	require.NoError(t, err)
	assert.Empty(t, res.Bad_lines)
	assert.True(t, cfg.Equal(res.Config), "round trip changed the configuration:\n%s", Serialize(res.Config))
	_, found := res.Config.Axis_configs["wght"].Names.Lookup(400)
	assert.False(t, found)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(raw)
	assert.True(t, strings.HasPrefix(text, "# vim:"))
	assert.Contains(t, text, "# BEGIN_FONTNAMES\nfamily_name Back\\\\slash Sans\\x20\n")
	assert.Contains(t, text, "axis_name XOPQ 30\n")

	// user content outside the block survives, conflicting settings are commented out
	require.NoError(t, os.WriteFile(path, []byte("include extra.conf\nfamily_name Other\n"+text), 0o600))
	require.NoError(t, cf.Save(cfg.WithFamilyName("Final")))
	raw, err = os.ReadFile(path)
	require.NoError(t, err)
	text = string(raw)
	assert.True(t, strings.HasPrefix(text, "include extra.conf\n# family_name Other\n"))
	assert.Equal(t, 1, strings.Count(text, "# BEGIN_FONTNAMES"))
	res, err = Load([]string{path}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Final", res.Config.Family_name)
	assert.FileExists(t, path+".bak")
}

func TestEdgeWhitespaceSurvivesSave(t *testing.T) {
	cfg := naming.DefaultConfiguration().
		WithFamilyName("Sans\u00a0").
		WithAxisValues("wght", "  100 , 200 ").
		WithAxisName("wdth", 75, "\u2003Narrow")
	path := filepath.Join(t.TempDir(), ConfName)
	require.NoError(t, NewConfFile(path).Save(cfg))
	res, err := Load([]string{path}, nil)
	require.NoError(t, err)
	assert.Empty(t, res.Bad_lines)
	assert.Equal(t, "Sans\u00a0", res.Config.Family_name)
	assert.Equal(t, "  100 , 200 ", res.Config.Axis_configs["wght"].Values)
	name, _ := res.Config.Axis_configs["wdth"].Names.Lookup(75)
	assert.Equal(t, "\u2003Narrow", name)
}

func TestStateStore(t *testing.T) {
	store := NewStateStore(t.TempDir())
	_, found, err := store.Load()
	require.NoError(t, err)
	assert.False(t, found)

	cfg := naming.DefaultConfiguration().WithAxesString("wght, opsz").WithSubfamily("opsz", true).WithRegularElidable("wght", true).WithFamilyName("Snap")
	require.NoError(t, store.Save(cfg))
	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	for _, key := range []string{"familyName", "axes", "axisValues", "axisNameMappings", "axisSubfamilies", "axisRegularElidable"} {
		assert.Contains(t, string(raw), `"`+key+`"`)
	}

	loaded, found, err := store.Load()
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, cfg.Equal(loaded))

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())
	_, found, err = store.Load()
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0o600))
	_, _, err = store.Load()
	assert.ErrorContains(t, err, "corrupted")
}

func TestLoadWithState(t *testing.T) {
	t.Setenv("FONTNAMES_CONFIG_DIRECTORY", t.TempDir())
	store := NewStateStore(t.TempDir())
	snap := naming.DefaultConfiguration().WithFamilyName("Snapshot")
	require.NoError(t, store.Save(snap))

	res, err := LoadWithState(nil, []string{"axes=wght"}, store)
	require.NoError(t, err)
	assert.True(t, res.From_state)
	assert.Equal(t, "Snapshot", res.Config.Family_name)
	assert.Equal(t, []string{"wght"}, res.Config.Axes)

	conf := write_conf(t, t.TempDir(), "fontnames.conf", "family_name FromConf\n")
	res, err = LoadWithState([]string{conf}, nil, store)
	require.NoError(t, err)
	assert.False(t, res.From_state)
	assert.Equal(t, "FromConf", res.Config.Family_name)

	require.NoError(t, os.WriteFile(store.Path(), []byte("[]"), 0o600))
	res, err = LoadWithState(nil, nil, store)
	require.NoError(t, err)
	assert.Len(t, res.Warnings, 1)
	assert.True(t, naming.DefaultConfiguration().Equal(res.Config))
}

type failing_saver struct{}

func (failing_saver) Save(naming.FontConfiguration) error { return errors.New("disk full") }

func TestSavers(t *testing.T) {
	store := NewStateStore(t.TempDir())
	s := Savers{failing_saver{}, store}
	err := s.Save(naming.DefaultConfiguration())
	assert.ErrorContains(t, err, "disk full")
	_, found, lerr := store.Load()
	require.NoError(t, lerr)
	assert.True(t, found, "later savers must run after a failure")
}
