package main

import (
	"io"
	"os"
	"runtime/debug"

	"noted/internal/client"
	"noted/internal/config"
)

type commandRunner interface {
	Run(args []string) error
}

type clientFactory func() (*client.Client, config.Settings, error)

type commandWiring struct {
	stdout    io.Writer
	stderr    io.Writer
	newClient clientFactory
	version   string
}

func defaultCommandWiring(stdout, stderr io.Writer) commandWiring {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return commandWiring{
		stdout:    stdout,
		stderr:    stderr,
		newClient: newNotesClient,
		version:   buildVersion(),
	}
}

func buildCommands(wiring commandWiring) map[string]commandRunner {
	return map[string]commandRunner{
		"ui":      NewUICommand(wiring.stderr, wiring.newClient),
		"ls":      NewLSCommand(wiring.stdout, wiring.stderr, wiring.newClient),
		"config":  NewConfigCommand(wiring.stdout, wiring.stderr),
		"version": NewVersionCommand(wiring.stdout, wiring.version),
	}
}

func newNotesClient() (*client.Client, config.Settings, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, settings, err
	}
	c, err := client.New(settings)
	if err != nil {
		return nil, settings, err
	}
	return c, settings, nil
}

const version = "dev"

func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
	}
	return version
}
