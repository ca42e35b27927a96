package main

import (
	"fmt"
	"os"
)

const usageText = `noted is a terminal client for a notes service.

Usage:
  noted [command] [flags]

Commands:
  ui        run the terminal UI (default)
  ls        list notes
  config    print effective configuration
  version   print version
  help      show help

Configuration:
  NOTED_API_URL   base URL of the notes service (NOTES_API_URL also accepted)
  ~/.noted/config.toml for UI options and a base URL fallback

Examples:
  NOTED_API_URL=http://localhost:3000 noted
  noted ls --json
  noted config
`

func printUsage() {
	fmt.Fprint(os.Stderr, usageText)
}

func main() {
	args := os.Args[1:]

	wiring := defaultCommandWiring(os.Stdout, os.Stderr)
	commands := buildCommands(wiring)

	name := "ui"
	if len(args) > 0 {
		name = args[0]
		args = args[1:]
	}

	switch name {
	case "-h", "--help", "help":
		printUsage()
		return
	}

	runner, ok := commands[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", name)
		printUsage()
		os.Exit(2)
	}
	if err := runner.Run(args); err != nil {
		fmt.Fprintf(os.Stderr, "%s error: %v\n", name, err)
		os.Exit(1)
	}
}
