package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Makepad-fr/tada-remote/internal/model"
)

const todosPath = "/todos"

// List fetches the whole collection in server order.
func (c *Client) List(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	if err := c.jsonRequest(ctx, http.MethodGet, todosPath, nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}

// Create posts draft and returns the server's copy, id included.
// The test API fakes persistence: a success does not mean the item is stored.
func (c *Client) Create(ctx context.Context, draft model.Draft) (model.Item, error) {
	var created model.Item
	if err := c.jsonRequest(ctx, http.MethodPost, todosPath, draft, &created); err != nil {
		return model.Item{}, err
	}
	return created, nil
}

// Remove deletes the item with the given id. The response body is ignored.
func (c *Client) Remove(ctx context.Context, id int) error {
	return c.request(ctx, http.MethodDelete, todosPath+"/"+strconv.Itoa(id), nil, nil)
}
