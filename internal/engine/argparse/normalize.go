// Package argparse turns the raw command line into domain.Options.
package argparse

import "strings"

// Normalize rewrites args into one token per flag or value:
// "--opt=value" becomes "--opt", "value" and "-abc" becomes "-a", "-b", "-c".
// A literal "--" and everything after it are copied unchanged.
func Normalize(args []string) []string {
	out := make([]string, 0, len(args))
	for i, arg := range args {
		switch {
		case arg == "--":
			return append(out, args[i:]...)
		case strings.HasPrefix(arg, "--"):
			if name, value, ok := strings.Cut(arg, "="); ok {
				out = append(out, name, value)
				continue
			}
			out = append(out, arg)
		case len(arg) > 2 && arg[0] == '-':
			for _, ch := range arg[1:] {
				out = append(out, "-"+string(ch))
			}
		default:
			out = append(out, arg)
		}
	}
	return out
}
