// Package main provides the CLI tool for the flex layout engine.
//
// Usage:
//
//	flex compute [options] <fixture.toml>   Lay out a fixture and print rects
//	flex bench [options]                    Lay out many generated trees concurrently
//	flex help                               Show help
//
// Examples:
//
//	flex compute testdata/panel.toml
//	flex compute -w 1024 -h 768 panel.toml
//	flex bench -trees 16 -depth 4 -branching 6
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

const usage = `flex - incremental flexbox layout engine

Usage:
  flex <command> [options] [args...]

Commands:
  compute     Lay out a TOML fixture and print the computed rects as TOML
  bench       Build and lay out many independent trees concurrently
  version     Print version information
  help        Show this help message

Compute options:
  -w <n>          Override the fixture's available width
  -h <n>          Override the fixture's available height
  -config <path>  Engine config file (TOML)
  -twice          Compute twice and report the second (cached) pass

Bench options:
  -trees <n>      Number of independent engines (default 8)
  -depth <n>      Tree depth (default 3)
  -branching <n>  Children per container (default 5)
  -rounds <n>     Mutate-and-recompute rounds per tree (default 10)
  -config <path>  Engine config file (TOML)

Set FLEX_DEBUG=<path> to write an engine debug log.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "compute":
		if err := runCompute(os.Stdout, args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "bench":
		if err := runBench(os.Stdout, args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("flex version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}
