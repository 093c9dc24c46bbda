// Package envconfig reads bf settings from the environment.
package envconfig

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// HandoffPath returns the file the chosen directory is appended to.
// Configurable via BF_HANDOFF
// Default: $HOME/.bf
func HandoffPath() string {
	if s := Var("BF_HANDOFF"); s != "" {
		return s
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bf")
}

// LogPath returns the diagnostic log file, or "" when logging is off.
// Configurable via BF_LOG
func LogPath() string {
	return Var("BF_LOG")
}

// HideHidden drops dot-directories (and hidden ones on Windows) from listings.
// Configurable via BF_HIDE_HIDDEN
var HideHidden = Bool("BF_HIDE_HIDDEN")

// LogLevel returns the log level
// Configurable via BF_DEBUG
// Values: 0/false = INFO (default), 1/true = DEBUG, 2 = TRACE
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if s := Var("BF_DEBUG"); s != "" {
		if b, _ := strconv.ParseBool(s); b {
			level = slog.LevelDebug
		} else if i, _ := strconv.ParseInt(s, 10, 64); i != 0 {
			level = slog.Level(i * -4)
		}
	}

	return level
}

// BoolWithDefault returns a reader for a boolean variable. Unparseable
// non-empty values count as true.
func BoolWithDefault(k string) func(defaultValue bool) bool {
	return func(defaultValue bool) bool {
		if s := Var(k); s != "" {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return true
			}
			return b
		}
		return defaultValue
	}
}

// Bool returns a reader for a boolean variable that defaults to false.
func Bool(k string) func() bool {
	withDefault := BoolWithDefault(k)
	return func() bool {
		return withDefault(false)
	}
}

// String returns a reader for a string variable.
func String(s string) func() string {
	return func() string {
		return Var(s)
	}
}

// EnvVar describes one environment variable and its current value.
type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// AsMap returns every variable bf reads, keyed by name.
func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"BF_HANDOFF":     {"BF_HANDOFF", HandoffPath(), "File the chosen directory is appended to (default \"~/.bf\")"},
		"BF_LOG":         {"BF_LOG", LogPath(), "Write diagnostic logs to this file"},
		"BF_DEBUG":       {"BF_DEBUG", LogLevel(), "Show additional debug information in the log (e.g. BF_DEBUG=1)"},
		"BF_HIDE_HIDDEN": {"BF_HIDE_HIDDEN", HideHidden(), "Do not list hidden directories"},
	}
}

// Values returns the current value of every variable as a string.
func Values() map[string]string {
	vals := make(map[string]string)
	for k, v := range AsMap() {
		vals[k] = fmt.Sprintf("%v", v.Value)
	}
	return vals
}

// Var returns an environment variable stripped of leading and trailing
// quotes or spaces.
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}
