package main

import (
	"flag"
	"fmt"
	"io"

	"noted/internal/config"
)

type ConfigCommand struct {
	stdout io.Writer
	stderr io.Writer
}

func NewConfigCommand(stdout, stderr io.Writer) *ConfigCommand {
	return &ConfigCommand{stdout: stdout, stderr: stderr}
}

func (c *ConfigCommand) Run(args []string) error {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	defaults := fs.Bool("defaults", false, "print defaults instead of the effective configuration")
	if err := fs.Parse(args); err != nil {
		return err
	}

	settings := config.DefaultSettings()
	if !*defaults {
		loaded, err := config.LoadSettings()
		if err != nil {
			return err
		}
		settings = loaded
	}

	rendered, err := settings.Render()
	if err != nil {
		return err
	}
	fmt.Fprint(c.stdout, rendered)

	if !*defaults {
		if base := settings.APIBaseURL(); base != "" {
			fmt.Fprintf(c.stdout, "\n# resolved base URL: %s\n", base)
		} else {
			fmt.Fprintf(c.stdout, "\n# base URL is not configured; set %s\n", config.EnvAPIURL)
		}
	}
	return nil
}

type VersionCommand struct {
	stdout  io.Writer
	version string
}

func NewVersionCommand(stdout io.Writer, version string) *VersionCommand {
	return &VersionCommand{stdout: stdout, version: version}
}

func (c *VersionCommand) Run([]string) error {
	fmt.Fprintln(c.stdout, c.version)
	return nil
}
