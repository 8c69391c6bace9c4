package main

import "github.com/spf13/pflag"

// anyFlagChanged reports whether the user explicitly set any of the named
// flags. A flag set back to its default value still counts as changed.
func anyFlagChanged(flags *pflag.FlagSet, names ...string) bool {
	for _, name := range names {
		if flags.Changed(name) {
			return true
		}
	}
	return false
}
