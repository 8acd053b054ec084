// jot - JSON parse/format CLI tool
//
// Usage:
//
//	jot fmt [--canonical] [file...]   Parse and print compact JSON
//	jot check [file...]               Validate inputs
//	jot hash [file...]                Print canonical hashes
//	jot stats [file...]               Print value-tree statistics
//	jot bench [-n N] [file...]        Measure parse/render throughput
//
// If no file is given (or the file is "-"), input is read from stdin.
// Files ending in .gz are decompressed transparently.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

const toolVersion = "0.1.0"

// logger is a no-op unless --verbose installs a real one.
var logger log.Logger = log.NewNopLogger()

func main() {
	app := kingpin.New("jot", "A command-line tool for parsing, formatting, and hashing JSON documents.")
	app.Version(toolVersion)
	verbose := app.Flag("verbose", "Log per-input details to stderr.").Short('v').Bool()
	app.PreAction(func(_ *kingpin.ParseContext) error {
		if *verbose {
			logger = level.NewFilter(log.NewLogfmtLogger(os.Stderr), level.AllowDebug())
		}
		return nil
	})

	addFmtCommand(app)
	addCheckCommand(app)
	addHashCommand(app)
	addStatsCommand(app)
	addBenchCommand(app)

	kingpin.MustParse(app.Parse(os.Args[1:]))
}

func exitWithErr(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
