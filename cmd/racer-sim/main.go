// Command racer-sim runs a YAML driving scenario headless and prints a JSON log
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"

	"github.com/lixenwraith/vi-racer/engine"
)

var summaryFlag = flag.Bool("summary", false, "Print a one-line summary instead of the JSON log")

func readScenario(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func run(path string, stdout io.Writer) error {
	data, err := readScenario(path)
	if err != nil {
		return fmt.Errorf("read scenario: %w", err)
	}

	if !*summaryFlag {
		out, err := engine.RunYAML(data)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(stdout, "%s\n", out)
		return err
	}

	s, err := engine.ParseScenario(data)
	if err != nil {
		return err
	}
	l, err := engine.RunScenario(s)
	if err != nil {
		return fmt.Errorf("running scenario %q: %w", s.Name, err)
	}
	_, err = fmt.Fprintln(stdout, formatSummary(termenv.NewOutput(stdout), l))
	return err
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: racer-sim [-summary] [scenario.yaml]\n\nReads stdin when no file is given.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(flag.Arg(0), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "racer-sim: %v\n", err)
		os.Exit(1)
	}
}
