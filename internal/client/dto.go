package client

import "noted/internal/types"

type notePayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Some backends return the list bare, others wrap it in an envelope.
type notesEnvelope struct {
	Notes []types.Record `json:"notes"`
}
