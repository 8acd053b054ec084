package main

import (
	"fmt"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log/level"

	"github.com/Neumenon/jot/jot"
)

// fmtCommand parses each input and prints the compact rendering.
type fmtCommand struct {
	files     *[]string
	canonical *bool
}

func (cmd *fmtCommand) run(c *kingpin.ParseContext) error {
	for _, name := range inputsOrStdin(*cmd.files) {
		cmd.formatInput(name)
	}
	return nil
}

func (cmd *fmtCommand) formatInput(name string) {
	data, err := readInput(name)
	if err != nil {
		exitWithErr(err)
	}

	start := time.Now()
	v, err := jot.Parse(string(data))
	if err != nil {
		exitWithErr(fmt.Errorf("failed to parse JSON input: %s", name))
	}

	out := jot.Render(v)
	if *cmd.canonical {
		out = jot.CanonicalRender(v)
	}
	level.Debug(logger).Log(
		"msg", "formatted input",
		"input", name,
		"in_bytes", len(data),
		"out_bytes", len(out),
		"duration", time.Since(start),
	)
	fmt.Println(out)
}

func addFmtCommand(app *kingpin.Application) {
	cmd := &fmtCommand{}
	format := app.Command("fmt", "Parse inputs and print the compact rendering.").Action(cmd.run)
	cmd.files = format.Arg("file", "Input files; '-' or no arguments reads stdin.").Strings()
	cmd.canonical = format.Flag("canonical", "Render with object keys sorted.").Bool()
}
