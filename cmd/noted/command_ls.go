package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"noted/internal/types"
)

type LSCommand struct {
	stdout    io.Writer
	stderr    io.Writer
	newClient clientFactory
}

func NewLSCommand(stdout, stderr io.Writer, newClient clientFactory) *LSCommand {
	return &LSCommand{stdout: stdout, stderr: stderr, newClient: newClient}
}

func (c *LSCommand) Run(args []string) error {
	fs := flag.NewFlagSet("ls", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	asJSON := fs.Bool("json", false, "print raw server records as JSON")
	query := fs.String("q", "", "filter by title/content substring")
	if err := fs.Parse(args); err != nil {
		return err
	}

	notesClient, _, err := c.newClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	records, err := notesClient.List(ctx)
	if err != nil {
		return err
	}

	if *asJSON {
		encoder := json.NewEncoder(c.stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(records)
	}

	notes, dropped := types.NormalizeRecords(records, time.Now())
	if dropped > 0 {
		fmt.Fprintf(c.stderr, "warning: ignored %d record(s) without a usable id\n", dropped)
	}
	notes = types.FilterNotes(types.SortNotes(notes), *query)
	printNotes(c.stdout, notes)
	return nil
}

func printNotes(output io.Writer, notes []types.Note) {
	writer := tabwriter.NewWriter(output, 0, 8, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tUPDATED\tTITLE")
	for _, note := range notes {
		updated := "-"
		if key := note.SortKey(); !key.IsZero() {
			updated = key.Local().Format("2006-01-02 15:04")
		}
		title := note.Title
		if title == "" {
			title = "Untitled"
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\n", note.ID, updated, title)
	}
	_ = writer.Flush()
}
