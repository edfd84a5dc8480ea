package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/toyz/poet/internal/cli"
	"github.com/toyz/poet/internal/config"
	"github.com/toyz/poet/internal/utils"
)

func main() {
	var (
		outFlag     = flag.String("out", "", "Output source root (e.g. src/main/java); prints to stdout when empty")
		configFlag  = flag.String("config", "", "Path to a YAML or JSON configuration file")
		indentFlag  = flag.String("indent", "", "Indentation unit for generated sources (default two spaces)")
		listFlag    = flag.Bool("list", false, "List the built-in samples and exit")
		cleanFlag   = flag.Bool("clean", false, "Remove previously generated files from the output directory and exit")
		verboseFlag = flag.Bool("verbose", false, "Enable verbose output")
		quietFlag   = flag.Bool("quiet", false, "Only show errors and final results")
		helpFlag    = flag.Bool("help", false, "Show help information")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [sample-names...]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Poet Java Source Generator\n")
		fmt.Fprintf(os.Stderr, "Builds Java source files from the built-in sample descriptor trees.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nArguments:\n")
		fmt.Fprintf(os.Stderr, "  sample-names       Built-in samples to generate; defaults to all\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -list                                # Show available samples\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s helloworld                           # Print the HelloWorld sample to stdout\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -out src/main/java shapes           # Write the shapes sample under a source root\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -config poet.yaml -verbose           # Generate configured samples with detail\n", os.Args[0])
	}

	flag.Parse()

	if *helpFlag {
		flag.Usage()
		os.Exit(0)
	}

	if *listFlag {
		fmt.Println("Available samples:")
		for _, sample := range cli.Samples() {
			fmt.Printf("  %-12s %s\n", sample.Name, sample.Description)
		}
		return
	}

	var diagnostics *utils.DiagnosticSystem
	if *quietFlag {
		diagnostics = utils.NewQuietDiagnostics()
	} else if *verboseFlag {
		diagnostics = utils.NewVerboseDiagnostics()
	} else {
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}

	cfg := config.New()
	if *configFlag != "" {
		if err := cfg.LoadFile(*configFlag); err != nil {
			diagnostics.Error("Loading configuration failed: %v", err)
			os.Exit(1)
		}
		diagnostics.Verbose("Loaded configuration from %s", *configFlag)
	}
	if *outFlag != "" {
		cfg.OutputDir = *outFlag
	}
	if *indentFlag != "" {
		cfg.Indent = *indentFlag
	}

	if *cleanFlag {
		if cfg.OutputDir == "" {
			diagnostics.Error("-clean requires an output directory (-out or config outputDir)")
			os.Exit(1)
		}
		diagnostics.Header("cleaning generated sources")
		removed, err := cli.NewCleaner(cfg.FileComment).Clean(cfg.OutputDir)
		if err != nil {
			diagnostics.Error("Clean failed: %v", err)
			os.Exit(1)
		}
		for _, path := range removed {
			diagnostics.Verbose("Removed %s", path)
		}
		diagnostics.Success("Removed %d generated file(s)", len(removed))
		return
	}

	samples := flag.Args()

	diagnostics.Header("generating Java sources")
	if *verboseFlag {
		diagnostics.Subsection("Configuration")
		if cfg.OutputDir != "" {
			diagnostics.List("Output directory: %s", cfg.OutputDir)
		} else {
			diagnostics.List("Output: stdout")
		}
		diagnostics.List("Indent: %q", cfg.Indent)
		if len(samples) > 0 {
			diagnostics.List("Samples: %s", strings.Join(samples, ", "))
		}
	}

	generator := cli.NewGenerator(cfg, diagnostics)
	if err := generator.Run(samples); err != nil {
		diagnostics.Error("Generation failed: %v", err)
		os.Exit(1)
	}

	summary := generator.GetSummary()
	if cfg.OutputDir != "" {
		stats := map[string]interface{}{
			"Samples run":     summary.SamplesRun,
			"Files generated": len(summary.FilesGenerated),
			"Elapsed":         summary.Elapsed.Round(time.Millisecond),
		}
		diagnostics.Summary("Generation Complete!", stats)
	}
	diagnostics.RenderComplete()
}
