// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package utils

import (
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"
)

const AppName = "fontnames"

func Expanduser(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		usr, err := user.Current()
		if err == nil {
			home = usr.HomeDir
		}
	}
	if err != nil || home == "" {
		return path
	}
	if path == "~" {
		return home
	}
	path = strings.ReplaceAll(path, string(os.PathSeparator), "/")
	parts := strings.Split(path, "/")
	if parts[0] == "~" {
		parts[0] = home
	} else if uname := parts[0][1:]; uname != "" {
		if u, err := user.Lookup(uname); err == nil && u.HomeDir != "" {
			parts[0] = u.HomeDir
		}
	}
	return strings.Join(parts, string(os.PathSeparator))
}

func Abspath(path string) string {
	q, err := filepath.Abs(path)
	if err == nil {
		return q
	}
	return path
}

// app_dir resolves a per user directory. An explicit override in env_var
// wins, then the first existing candidate that contains marker, then the
// first candidate.
func app_dir(env_var, xdg_var, fallback, darwin_fallback, marker string) string {
	if q := os.Getenv(env_var); q != "" {
		return Abspath(Expanduser(q))
	}
	var locations []string
	if q := os.Getenv(xdg_var); q != "" {
		locations = append(locations, Expanduser(q))
	}
	locations = append(locations, Expanduser(fallback))
	if runtime.GOOS == "darwin" {
		locations = append(locations, Expanduser(darwin_fallback))
	}
	if marker != "" {
		for _, loc := range locations {
			q := filepath.Join(loc, AppName)
			if _, err := os.Stat(filepath.Join(q, marker)); err == nil {
				return q
			}
		}
	}
	return filepath.Join(locations[0], AppName)
}

// ConfigDir is where fontnames.conf lives. Set FONTNAMES_CONFIG_DIRECTORY to
// override.
func ConfigDir() string {
	return app_dir("FONTNAMES_CONFIG_DIRECTORY", "XDG_CONFIG_HOME", "~/.config", "~/Library/Preferences", AppName+".conf")
}

// CacheDir holds state that can be regenerated, such as the last
// configuration used. Set FONTNAMES_CACHE_DIRECTORY to override.
func CacheDir() string {
	return app_dir("FONTNAMES_CACHE_DIRECTORY", "XDG_CACHE_HOME", "~/.cache", "~/Library/Caches", "")
}
