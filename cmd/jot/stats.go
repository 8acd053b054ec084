package main

import (
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/Neumenon/jot/jot"
)

// statsCommand prints value-tree statistics for each input.
type statsCommand struct {
	files *[]string
}

func (cmd *statsCommand) run(c *kingpin.ParseContext) error {
	for _, name := range inputsOrStdin(*cmd.files) {
		cmd.printStats(name)
	}
	return nil
}

func (cmd *statsCommand) printStats(name string) {
	data, err := readInput(name)
	if err != nil {
		exitWithErr(err)
	}

	v, err := jot.Parse(string(data))
	if err != nil {
		exitWithErr(fmt.Errorf("failed to parse JSON input: %s", name))
	}

	var stats treeStats
	stats.collect(v, 1)

	bold := color.New(color.Bold)
	bold.Printf("%s:\n", name)
	fmt.Printf(
		"\tinput size: %v, values: %d, max depth: %d\n",
		humanize.Bytes(uint64(len(data))),
		stats.total(),
		stats.maxDepth,
	)
	fmt.Printf(
		"\tnulls: %d, bools: %d, numbers: %d, strings: %d (%v of text)\n",
		stats.nulls,
		stats.bools,
		stats.numbers,
		stats.strings,
		humanize.Bytes(uint64(stats.stringBytes)),
	)
	fmt.Printf(
		"\tobjects: %d (%d members), arrays: %d (%d elements)\n",
		stats.objects,
		stats.members,
		stats.arrays,
		stats.elements,
	)
}

// treeStats accumulates per-kind counts over one value tree.
type treeStats struct {
	nulls    int
	bools    int
	numbers  int
	strings  int
	objects  int
	arrays   int
	members  int
	elements int

	maxDepth    int
	stringBytes int
}

func (s *treeStats) total() int {
	return s.nulls + s.bools + s.numbers + s.strings + s.objects + s.arrays
}

func (s *treeStats) collect(v *jot.Value, depth int) {
	if depth > s.maxDepth {
		s.maxDepth = depth
	}
	switch v.Kind() {
	case jot.KindNull:
		s.nulls++
	case jot.KindBool:
		s.bools++
	case jot.KindNumber:
		s.numbers++
	case jot.KindString:
		s.strings++
		str, _ := v.AsStr()
		s.stringBytes += len(str)
	case jot.KindObject:
		s.objects++
		fields, _ := v.AsObj()
		s.members += len(fields)
		for _, m := range fields {
			s.stringBytes += len(m.Key)
			s.collect(m.Value, depth+1)
		}
	case jot.KindArray:
		s.arrays++
		elems, _ := v.AsArr()
		s.elements += len(elems)
		for _, e := range elems {
			s.collect(e, depth+1)
		}
	}
}

func addStatsCommand(app *kingpin.Application) {
	cmd := &statsCommand{}
	summary := app.Command("stats", "Print value-tree statistics for each input.").Action(cmd.run)
	cmd.files = summary.Arg("file", "Input files; '-' or no arguments reads stdin.").Strings()
}
