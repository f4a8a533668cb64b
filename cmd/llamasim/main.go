// Package main provides the entry point for llamasim.
// llamasim is a cosmetic simulator of the Llamux kernel module.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/llamux/llamasim/sim"
)

var testMode = flag.Bool("test", false, "Run the batch test prompts instead of interactive mode")

func main() {
	flag.Parse()

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Usage: llamasim [options]\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	var opts []sim.SimulatorOption
	if !*testMode {
		source, err := sim.NewReadlineSource()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening terminal input: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts, sim.WithLineSource(source))
	}

	simulator := sim.NewSimulator(opts...)
	simulator.Boot()

	if *testMode {
		simulator.RunTests()
		return
	}

	if err := simulator.InteractiveMode(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
