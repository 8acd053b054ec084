package main

import (
	"fmt"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/go-kit/log/level"

	"github.com/Neumenon/jot/jot"
)

// benchCommand measures parse and render throughput over each input.
type benchCommand struct {
	files      *[]string
	iterations *int
}

func (cmd *benchCommand) run(c *kingpin.ParseContext) error {
	for _, name := range inputsOrStdin(*cmd.files) {
		cmd.benchInput(name)
	}
	return nil
}

func (cmd *benchCommand) benchInput(name string) {
	data, err := readInput(name)
	if err != nil {
		exitWithErr(err)
	}
	text := string(data)

	v, err := jot.Parse(text)
	if err != nil {
		exitWithErr(fmt.Errorf("failed to parse JSON input: %s", name))
	}

	iters := *cmd.iterations
	level.Debug(logger).Log("msg", "starting bench", "input", name, "bytes", len(text), "iterations", iters)

	start := time.Now()
	for i := 0; i < iters; i++ {
		if _, err := jot.Parse(text); err != nil {
			exitWithErr(fmt.Errorf("failed to parse JSON input: %s", name))
		}
	}
	parseDur := time.Since(start)

	var rendered string
	start = time.Now()
	for i := 0; i < iters; i++ {
		rendered = jot.Render(v)
	}
	renderDur := time.Since(start)

	bold := color.New(color.Bold)
	bold.Printf("%s:\n", name)
	fmt.Printf(
		"\tparse:  %d iterations in %v (%v/s)\n",
		iters,
		parseDur.Round(time.Microsecond),
		humanize.Bytes(throughput(len(text), iters, parseDur)),
	)
	fmt.Printf(
		"\trender: %d iterations in %v (%v/s)\n",
		iters,
		renderDur.Round(time.Microsecond),
		humanize.Bytes(throughput(len(rendered), iters, renderDur)),
	)
}

func throughput(size, iters int, d time.Duration) uint64 {
	if d <= 0 {
		return 0
	}
	return uint64(float64(size) * float64(iters) / d.Seconds())
}

func addBenchCommand(app *kingpin.Application) {
	cmd := &benchCommand{}
	bench := app.Command("bench", "Measure parse and render throughput.").Action(cmd.run)
	cmd.files = bench.Arg("file", "Input files; '-' or no arguments reads stdin.").Strings()
	cmd.iterations = bench.Flag("iterations", "Iterations per input.").Short('n').Default("1000").Int()
}
