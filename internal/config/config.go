// Package config parses the process's command-line flags into the
// settings the rest of the program needs: where to read the input
// document from, where to write the output document, whether to
// pretty-print it, and how verbose logging should be.
package config

import (
	"github.com/spf13/pflag"
)

// Config holds one run's settings.
type Config struct {
	Input    string // "-" means stdin
	Output   string // "-" means stdout
	Pretty   bool
	LogLevel string // one of "debug", "info", "warn", "error"
}

// Parse parses args (typically os.Args[1:]) into a Config.
func Parse(args []string) (Config, error) {
	fs := pflag.NewFlagSet("transitcatalogue", pflag.ContinueOnError)

	input := fs.StringP("input", "i", "-", "input document path, or - for stdin")
	output := fs.StringP("output", "o", "-", "output document path, or - for stdout")
	pretty := fs.Bool("pretty", false, "indent the output JSON document")
	logLevel := fs.String("log-level", "info", "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return Config{
		Input:    *input,
		Output:   *output,
		Pretty:   *pretty,
		LogLevel: *logLevel,
	}, nil
}
