// Package flagx contains helpers for cooperative flag parsing: several
// packages (config loaders, test binaries) each parse their own subset of
// os.Args without tripping over flags they do not know.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs returns the subset of args that belongs to the flags listed in
// keep. Both spellings are recognized:
//
//	-f value
//	-f=value (and --flag=value)
//
// For the separate-value spelling the following argument is included unless
// it starts with a dash, in which case the flag is kept bare. Everything
// else, including positional arguments, is dropped. The result is never nil.
func FilterArgs(args []string, keep []string) []string {
	wanted := make(map[string]struct{}, len(keep))
	for _, f := range keep {
		wanted[f] = struct{}{}
	}

	out := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, found := strings.Cut(arg, "="); found && strings.HasPrefix(arg, "-") {
			if _, ok := wanted[name]; ok {
				out = append(out, arg)
			}
			continue
		}

		if _, ok := wanted[arg]; !ok {
			continue
		}
		out = append(out, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, args[i+1])
			i++
		}
	}

	return out
}

// JsonConfigFlags extracts the config file path given via -c or -config.
// Other arguments are left for their owners; when neither flag is present
// the returned path is empty.
func JsonConfigFlags() string {
	var config string

	args := FilterArgs(os.Args[1:], []string{"-c", "-config"})

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&config, "config", "", "Path to config file")
	fs.StringVar(&config, "c", "", "Path to config file (short)")
	_ = fs.Parse(args)

	return config
}
