package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log/level"

	"github.com/Neumenon/jot/jot"
)

// checkCommand validates inputs without printing their contents.
type checkCommand struct {
	files *[]string
}

func (cmd *checkCommand) run(c *kingpin.ParseContext) error {
	failed := false
	for _, name := range inputsOrStdin(*cmd.files) {
		data, err := readInput(name)
		if err != nil {
			exitWithErr(err)
		}

		start := time.Now()
		ok := jot.Valid(string(data))
		level.Debug(logger).Log(
			"msg", "checked input",
			"input", name,
			"bytes", len(data),
			"valid", ok,
			"duration", time.Since(start),
		)

		if ok {
			fmt.Printf("%s: ok\n", name)
		} else {
			failed = true
			fmt.Printf("%s: malformed\n", name)
		}
	}
	if failed {
		os.Exit(1)
	}
	return nil
}

func addCheckCommand(app *kingpin.Application) {
	cmd := &checkCommand{}
	check := app.Command("check", "Validate inputs; exit 1 if any is malformed.").Action(cmd.run)
	cmd.files = check.Arg("file", "Input files; '-' or no arguments reads stdin.").Strings()
}
