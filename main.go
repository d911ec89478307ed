package main

import (
	"fmt"
	"os"

	"github.com/mrlokans/paperread/internal/cli"
	"github.com/mrlokans/paperread/internal/config"
	"github.com/mrlokans/paperread/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

type command interface {
	ParseFlags(args []string) error
	Run() error
}

func main() {
	// If no arguments or "serve" command, run the HTTP server
	if len(os.Args) < 2 || os.Args[1] == "serve" {
		cfg := config.NewConfig()
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
			os.Exit(1)
		}
		entrypoint.Run(cfg, Version)
		return
	}

	name := os.Args[1]
	args := os.Args[2:]

	var cmd command
	switch name {
	case "import-articles":
		cmd = cli.NewImportArticlesCommand()
	case "rebuild-paragraphs":
		cmd = cli.NewRebuildParagraphsCommand()
	case "paginate":
		cmd = cli.NewPaginateCommand()
	case "version":
		fmt.Printf("paperread %s (%s)\n", Version, Commit)
		return
	case "-h", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", name)
		printUsage()
		os.Exit(1)
	}

	if err := cmd.ParseFlags(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  serve               Start the HTTP server (default if no command given)\n")
	fmt.Fprintf(os.Stderr, "  import-articles     Import text files as articles, optionally split into chapters\n")
	fmt.Fprintf(os.Stderr, "  rebuild-paragraphs  Recompute stored paragraphs and paragraph counts\n")
	fmt.Fprintf(os.Stderr, "  paginate            Preview the page layout of a text file\n")
	fmt.Fprintf(os.Stderr, "  version             Print the version\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
