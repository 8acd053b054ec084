package main

import (
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/Neumenon/jot/jot"
)

// hashCommand prints the canonical content hash of each input.
type hashCommand struct {
	files *[]string
}

func (cmd *hashCommand) run(c *kingpin.ParseContext) error {
	for _, name := range inputsOrStdin(*cmd.files) {
		data, err := readInput(name)
		if err != nil {
			exitWithErr(err)
		}

		v, err := jot.Parse(string(data))
		if err != nil {
			exitWithErr(fmt.Errorf("failed to parse JSON input: %s", name))
		}
		fmt.Printf("%s  %s\n", jot.CanonicalHash(v), name)
	}
	return nil
}

func addHashCommand(app *kingpin.Application) {
	cmd := &hashCommand{}
	hash := app.Command("hash", "Print the canonical hash of each input.").Action(cmd.run)
	cmd.files = hash.Arg("file", "Input files; '-' or no arguments reads stdin.").Strings()
}
