package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

const stdinName = "-"

// inputsOrStdin normalizes an argument list; no arguments means stdin.
func inputsOrStdin(files []string) []string {
	if len(files) == 0 {
		return []string{stdinName}
	}
	return files
}

// readInput returns the raw bytes of one input. The name "-" reads
// stdin, and files ending in .gz are decompressed on the way in.
func readInput(name string) ([]byte, error) {
	if name == stdinName {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	f, err := os.Open(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("input not found: %s", name)
		}
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer func() { _ = f.Close() }()

	var r io.Reader = f
	if strings.HasSuffix(name, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read gzip header: %w", err)
		}
		defer func() { _ = gz.Close() }()
		r = gz
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return data, nil
}
