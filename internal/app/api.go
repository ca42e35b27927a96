package app

import (
	"context"

	"noted/internal/client"
	"noted/internal/types"
)

// NotesAPI is the surface the controller needs from the REST client. Tests
// substitute fakes; production code wraps *client.Client.
type NotesAPI interface {
	List(ctx context.Context) ([]types.Record, error)
	Create(ctx context.Context, title, content string) (types.Record, error)
	Update(ctx context.Context, id, title, content string) (types.Record, error)
	Delete(ctx context.Context, id string) error
}

type ClientAPI struct {
	client *client.Client
}

func NewClientAPI(client *client.Client) *ClientAPI {
	return &ClientAPI{client: client}
}

func (a *ClientAPI) List(ctx context.Context) ([]types.Record, error) {
	return a.client.List(ctx)
}

func (a *ClientAPI) Create(ctx context.Context, title, content string) (types.Record, error) {
	return a.client.Create(ctx, title, content)
}

func (a *ClientAPI) Update(ctx context.Context, id, title, content string) (types.Record, error) {
	return a.client.Update(ctx, id, title, content)
}

func (a *ClientAPI) Delete(ctx context.Context, id string) error {
	return a.client.Delete(ctx, id)
}
