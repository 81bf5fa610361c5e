// Package cli collects the environment-driven settings shared by every
// command.
package cli

import (
	"os"
	"strconv"

	"github.com/spf13/pflag"
)

type EnvSettings struct {
	// Debug enables verbose internal output
	Debug bool
	// Verbose reports each manifest entry instead of only failures
	Verbose bool
	// NoColors disables colored output
	NoColors bool
	// NoEmojis disables emojis in output
	NoEmojis bool
}

func New() *EnvSettings {
	env := &EnvSettings{}
	env.Debug, _ = strconv.ParseBool(os.Getenv("LICY_DEBUG"))
	env.Verbose, _ = strconv.ParseBool(os.Getenv("LICY_VERBOSE"))
	env.NoColors, _ = strconv.ParseBool(os.Getenv("LICY_NOCOLORS"))
	env.NoEmojis, _ = strconv.ParseBool(os.Getenv("LICY_NOEMOJIS"))
	return env
}

// AddFlags binds flags to the given flag set.
func (s *EnvSettings) AddFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&s.Debug, "debug", s.Debug, "enable verbose output")
	fs.BoolVar(&s.Verbose, "verbose", s.Verbose, "report every entry, not only failures")
	fs.BoolVar(&s.NoColors, "nocolor", s.NoColors, "disable colors")
	fs.BoolVar(&s.NoEmojis, "noemoji", s.NoEmojis, "disable emojis")
}

// EnvVars reads the current environment variables this command considers.
func (s *EnvSettings) EnvVars() map[string]string {
	return map[string]string{
		"LICY_DEBUG":    strconv.FormatBool(s.Debug),
		"LICY_VERBOSE":  strconv.FormatBool(s.Verbose),
		"LICY_NOCOLORS": strconv.FormatBool(s.NoColors),
		"LICY_NOEMOJIS": strconv.FormatBool(s.NoEmojis),
	}
}
