package config

import (
	"flag"
	"os"

	"github.com/taskflow-app/taskflow/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   documents root (default from Config)
//	-b string   key-value database path (default from Config)
//
// The argument list is filtered to the flags handled here so the JSON
// stage's -c/-config flags do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-b"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "documents root directory")
	fs.StringVar(&cfg.DatabaseDSN, "b", cfg.DatabaseDSN, "key-value database path")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
