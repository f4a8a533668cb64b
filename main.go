// Package main provides the entry point for llamasim.
// llamasim simulates the Llamux kernel module: a scripted boot
// sequence and a chat loop answering with random vocabulary words.
//
// For the full CLI, use: go run ./cmd/llamasim
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("llamasim - Llamux Kernel Module Simulator")
	fmt.Println("The llama that boots but does not think")
	fmt.Println("")
	fmt.Println("Usage: llamasim [options]")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -test    Run the batch test prompts instead of interactive mode")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/llamasim' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/llamasim' instead.")
	}
}
