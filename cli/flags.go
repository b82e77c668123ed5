package cli

import (
	cli "github.com/urfave/cli/v2"
)

// Shared flag definitions. Flags override the config file, which overrides
// config.Default().
var (
	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "Path to a .toml or .yaml configuration file",
	}
	logLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "Minimum log level (debug, info, warn, error)",
	}
	logFormatFlag = &cli.StringFlag{
		Name:  "log-format",
		Usage: "Log encoding (console, json)",
	}

	// Generator flags
	verticesFlag = &cli.IntFlag{
		Name:  "vertices",
		Usage: "Number of vertices of the random edge list",
	}
	edgesFlag = &cli.IntFlag{
		Name:  "edges",
		Usage: "Number of random edges to generate",
	}
	seedFlag = &cli.Int64Flag{
		Name:  "seed",
		Usage: "Seed of the edge generator",
	}

	// Sort flags
	strategyFlag = &cli.StringFlag{
		Name:  "strategy",
		Usage: "Sorting strategy: counting or radix",
	}
	baseFlag = &cli.IntFlag{
		Name:  "base",
		Usage: "Radix of the digit passes (radix strategy)",
	}
	workersFlag = &cli.IntFlag{
		Name:  "workers",
		Usage: "Worker goroutines for the counting phase (radix strategy)",
	}
	parallelScatterFlag = &cli.BoolFlag{
		Name:  "parallel-scatter",
		Usage: "Place edges from all workers concurrently (radix strategy)",
	}

	// Output flags
	printFlag = &cli.BoolFlag{
		Name:  "print",
		Usage: "Write the sorted edges, one 'source -> destination' per line",
	}
	limitFlag = &cli.IntFlag{
		Name:  "limit",
		Usage: "Print at most this many adjacency rows (0 = all)",
		Value: 20,
	}
	bfsFromFlag = &cli.IntFlag{
		Name:  "bfs-from",
		Usage: "Also print the breadth-first order from this vertex",
	}
)

func generateFlags() []cli.Flag {
	return []cli.Flag{verticesFlag, edgesFlag, seedFlag}
}

func radixFlags() []cli.Flag {
	return []cli.Flag{baseFlag, workersFlag, parallelScatterFlag}
}
