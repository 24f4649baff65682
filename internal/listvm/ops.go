package listvm

import (
	"context"

	"github.com/Makepad-fr/tada-remote/internal/api"
	"github.com/Makepad-fr/tada-remote/internal/model"
	"github.com/rs/xid"
)

// Result is the outcome of one operation, ready to be applied.
type Result interface {
	OpID() xid.ID
}

type LoadResult struct {
	ID    xid.ID
	Items []model.Item
	Err   error
}

type AddResult struct {
	ID    xid.ID
	Draft model.Draft
	Item  model.Item
	Err   error
}

type RemoveResult struct {
	ID     xid.ID
	ItemID int
	Err    error
}

func (r LoadResult) OpID() xid.ID   { return r.ID }
func (r AddResult) OpID() xid.ID    { return r.ID }
func (r RemoveResult) OpID() xid.ID { return r.ID }

// LoadOp fetches the collection. Run may be called from any goroutine.
type LoadOp struct {
	ID     xid.ID
	remote api.Remote
}

func (op *LoadOp) Run(ctx context.Context) Result {
	items, err := op.remote.List(ctx)
	return LoadResult{ID: op.ID, Items: items, Err: err}
}

// AddOp creates Draft. Run may be called from any goroutine.
type AddOp struct {
	ID     xid.ID
	Draft  model.Draft
	remote api.Remote
}

func (op *AddOp) Run(ctx context.Context) Result {
	item, err := op.remote.Create(ctx, op.Draft)
	return AddResult{ID: op.ID, Draft: op.Draft, Item: item, Err: err}
}

// RemoveOp deletes ItemID. Run may be called from any goroutine.
type RemoveOp struct {
	ID     xid.ID
	ItemID int
	remote api.Remote
}

func (op *RemoveOp) Run(ctx context.Context) Result {
	err := op.remote.Remove(ctx, op.ItemID)
	return RemoveResult{ID: op.ID, ItemID: op.ItemID, Err: err}
}
