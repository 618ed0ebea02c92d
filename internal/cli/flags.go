package cli

import "github.com/spf13/pflag"

// anyChanged reports whether the user set any of the named flags explicitly.
// Used to decide between flag mode and the interactive wizard.
func anyChanged(fs *pflag.FlagSet, names ...string) bool {
	for _, name := range names {
		if fs.Changed(name) {
			return true
		}
	}
	return false
}

// clampInt bounds v to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
