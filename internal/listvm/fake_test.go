package listvm

import (
	"context"
	"testing"

	"github.com/Makepad-fr/tada-remote/internal/model"
)

type Call interface{}

// FakeRemote answers each call with whatever the test feeds it, in lockstep.
type FakeRemote struct {
	t     *testing.T
	Calls chan Call
}

func NewFakeRemote(t *testing.T) *FakeRemote {
	return &FakeRemote{t, make(chan Call)}
}

type listCall struct{}
type listResp struct {
	items []model.Item
	err   error
}

func (c *FakeRemote) List(ctx context.Context) ([]model.Item, error) {
	c.Calls <- &listCall{}
	resp := (<-c.Calls).(*listResp)
	return resp.items, resp.err
}

type createCall struct{ draft model.Draft }
type createResp struct {
	item model.Item
	err  error
}

func (c *FakeRemote) Create(ctx context.Context, draft model.Draft) (model.Item, error) {
	c.Calls <- &createCall{draft}
	resp := (<-c.Calls).(*createResp)
	return resp.item, resp.err
}

type removeCall struct{ id int }
type removeResp struct{ err error }

func (c *FakeRemote) Remove(ctx context.Context, id int) error {
	c.Calls <- &removeCall{id}
	return (<-c.Calls).(*removeResp).err
}

func (c *FakeRemote) Close() {
	close(c.Calls)
}

func (c *FakeRemote) AssertList(items []model.Item, err error) {
	if _, ok := (<-c.Calls).(*listCall); !ok {
		c.t.Error("expected a list call")
	}
	c.Calls <- &listResp{items, err}
}

func (c *FakeRemote) AssertCreate(draft model.Draft, item model.Item, err error) {
	call, ok := (<-c.Calls).(*createCall)
	if !ok {
		c.t.Error("expected a create call")
	} else if call.draft != draft {
		c.t.Errorf("expected create with %+v but was %+v", draft, call.draft)
	}
	c.Calls <- &createResp{item, err}
}

func (c *FakeRemote) AssertRemove(id int, err error) {
	call, ok := (<-c.Calls).(*removeCall)
	if !ok {
		c.t.Error("expected a remove call")
	} else if call.id != id {
		c.t.Errorf("expected remove of %d but was %d", id, call.id)
	}
	c.Calls <- &removeResp{err}
}

func (c *FakeRemote) AssertDone(t *testing.T) {
	if _, more := <-c.Calls; more {
		t.Fatal("Did not expect more calls")
	}
}

// gatedRemote holds every remove until the test releases its id.
type gatedRemote struct {
	release map[int]chan error
}

func newGatedRemote(ids ...int) *gatedRemote {
	g := &gatedRemote{release: make(map[int]chan error)}
	for _, id := range ids {
		g.release[id] = make(chan error)
	}
	return g
}

func (g *gatedRemote) List(ctx context.Context) ([]model.Item, error) {
	return items(1, 2, 3), nil
}

func (g *gatedRemote) Create(ctx context.Context, draft model.Draft) (model.Item, error) {
	return model.Item{UserID: draft.UserID, ID: 201, Title: draft.Title}, nil
}

func (g *gatedRemote) Remove(ctx context.Context, id int) error {
	return <-g.release[id]
}

func items(ids ...int) []model.Item {
	out := make([]model.Item, 0, len(ids))
	for _, id := range ids {
		out = append(out, model.Item{UserID: 1, ID: id, Title: "item " + string(rune('A'+id-1))})
	}
	return out
}

func itemIDs(list []model.Item) []int {
	out := make([]int, 0, len(list))
	for _, it := range list {
		out = append(out, it.ID)
	}
	return out
}

func assertIDs(t *testing.T, got []model.Item, want ...int) {
	t.Helper()
	g := itemIDs(got)
	if len(g) != len(want) {
		t.Fatalf("ids: expected %v, got %v", want, g)
	}
	for i := range want {
		if g[i] != want[i] {
			t.Fatalf("ids: expected %v, got %v", want, g)
		}
	}
}
