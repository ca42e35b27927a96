package main

import (
	"flag"
	"io"

	"noted/internal/app"
	"noted/internal/config"
	"noted/internal/logging"
)

type UICommand struct {
	stderr    io.Writer
	newClient clientFactory
}

func NewUICommand(stderr io.Writer, newClient clientFactory) *UICommand {
	return &UICommand{stderr: stderr, newClient: newClient}
}

func (c *UICommand) Run(args []string) error {
	fs := flag.NewFlagSet("ui", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	notesClient, settings, err := c.newClient()
	if err != nil {
		return err
	}

	log, closeLog := uiLogger(settings)
	if closeLog != nil {
		defer closeLog()
	}
	notesClient.SetLogger(log)

	return app.Run(notesClient, settings, log)
}

// uiLogger writes to ~/.noted/ui.log; while the TUI runs, stderr is not ours
// to print to. Logging failures degrade to a no-op logger.
func uiLogger(settings config.Settings) (logging.Logger, func()) {
	path, err := config.UILogPath()
	if err != nil {
		return logging.Nop(), nil
	}
	log, closer, err := logging.NewFileLogger(path, logging.ParseLevel(settings.LogLevel()))
	if err != nil {
		return logging.Nop(), nil
	}
	return log, func() { _ = closer.Close() }
}
