// Package main is the entry point for the arbor CLI.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/arbor/internal/config"
	"github.com/dshills/arbor/internal/dataset"
	"github.com/dshills/arbor/internal/engine/bst"
	"github.com/dshills/arbor/internal/inspect"
	"github.com/dshills/arbor/internal/script"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

type options struct {
	ConfigPath string
	Load       string
	Sequential bool
	Stats      bool
	Dump       bool
	Pretty     bool
	Script     string
	Inspect    bool
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if opts.Pretty {
		cfg.Pretty = true
	}
	if opts.Sequential {
		cfg.Balanced = false
	}

	// Script mode drives its own trees; it does not touch the dataset.
	if opts.Script != "" {
		runner := script.NewRunner(script.WithTimeout(cfg.ScriptTimeout))
		defer runner.Close()
		if err := runner.RunFile(opts.Script); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	path := opts.Load
	if path == "" {
		path = cfg.Dataset
	}
	if path == "" {
		fmt.Fprintln(os.Stderr, "Error: no dataset given (use -load or ARBOR_DATASET)")
		flag.Usage()
		return 2
	}

	tree, err := loadTree(path, cfg.Balanced)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if opts.Inspect {
		ins, err := inspect.New(tree, cfg.Theme)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		if err := ins.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	if opts.Stats {
		printStats(tree)
	}

	if opts.Dump || !opts.Stats {
		out, err := dataset.Dump(tree, cfg.Pretty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Println(string(out))
	}

	return 0
}

// loadTree reads the dataset and builds the tree, balanced or in
// arrival order.
func loadTree(path string, balanced bool) (*bst.Tree[string, string], error) {
	pairs, err := dataset.Load(path)
	if err != nil {
		return nil, err
	}

	if balanced {
		b := bst.NewBuilder[string, string]()
		b.AddPairs(pairs)
		return b.Build(), nil
	}

	tree := bst.New[string, string]()
	for _, p := range pairs {
		tree.Insert(p.Key, p.Value)
	}
	return tree, nil
}

func printStats(t *bst.Tree[string, string]) {
	s := t.Stats()
	fmt.Printf("keys:     %d\n", s.Size)
	fmt.Printf("height:   %d\n", s.Height)
	fmt.Printf("leaves:   %d\n", s.Leaves)
	fmt.Printf("internal: %d\n", s.Internal)
	if k, _, ok := t.Min(); ok {
		fmt.Printf("min key:  %s\n", k)
	}
	if k, _, ok := t.Max(); ok {
		fmt.Printf("max key:  %s\n", k)
	}
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.Load, "load", "", "JSON dataset to load")
	flag.BoolVar(&opts.Sequential, "seq", false, "Insert dataset pairs in arrival order instead of building balanced")
	flag.BoolVar(&opts.Stats, "stats", false, "Print tree shape statistics")
	flag.BoolVar(&opts.Dump, "dump", false, "Print the tree as a sorted JSON object")
	flag.BoolVar(&opts.Pretty, "pretty", false, "Indent JSON dump output")
	flag.StringVar(&opts.Script, "script", "", "Lua script to run")
	flag.BoolVar(&opts.Inspect, "inspect", false, "Open the interactive tree inspector")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Arbor - ordered tree container toolkit\n\n")
		fmt.Fprintf(os.Stderr, "Usage: arbor [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  arbor -load data.json               Dump dataset in sorted key order\n")
		fmt.Fprintf(os.Stderr, "  arbor -load data.json -stats        Print tree shape statistics\n")
		fmt.Fprintf(os.Stderr, "  arbor -load data.json -seq -stats   Show the unbalanced shape\n")
		fmt.Fprintf(os.Stderr, "  arbor -load data.json -inspect      Browse the tree interactively\n")
		fmt.Fprintf(os.Stderr, "  arbor -script ops.lua               Run a Lua operation script\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("Arbor %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	return opts
}
