// Package listvm keeps the to-do list view state in sync with the remote API.
//
// Each operation is split in three steps: Begin* decides whether the
// operation runs and captures its input, Run performs the single network
// call, and Apply folds the result into the state. Begin* and Apply must be
// called from the same goroutine; Run can happen anywhere. Results are
// applied in the order they are handed to Apply, whatever order the
// operations were started in.
package listvm

import (
	"context"
	"strconv"
	"strings"

	"github.com/Makepad-fr/tada-remote/internal/api"
	"github.com/Makepad-fr/tada-remote/internal/model"
	"github.com/charmbracelet/log"
	"github.com/rs/xid"
)

const addKey = "add"

func removeKey(id int) string { return "remove:" + strconv.Itoa(id) }

type ViewModel struct {
	remote  api.Remote
	ownerID int
	policy  Policy

	items       []model.Item
	loadStarted bool
	loading     bool
	loaded      bool
	err         *OperationFailed

	draft       string
	formVisible bool

	// op id -> dedupe key
	inFlight map[xid.ID]string
}

func New(remote api.Remote, funcs ...OptionFunc) *ViewModel {
	opts := NewOptions(funcs...)
	return &ViewModel{
		remote:   remote,
		ownerID:  opts.OwnerID,
		policy:   opts.Policy,
		items:    []model.Item{},
		loading:  true,
		inFlight: make(map[xid.ID]string),
	}
}

// State returns the current tagged view state.
func (vm *ViewModel) State() State {
	if vm.err != nil {
		return Failed{Items: vm.Items(), Err: vm.err}
	}
	if vm.loading {
		return Loading{}
	}
	return Ready{Items: vm.Items()}
}

// Items returns a copy of the local collection.
func (vm *ViewModel) Items() []model.Item {
	out := make([]model.Item, len(vm.items))
	copy(out, vm.items)
	return out
}

func (vm *ViewModel) Loading() bool { return vm.loading }

// Err returns the last recorded error, or nil.
func (vm *ViewModel) Err() *OperationFailed { return vm.err }

func (vm *ViewModel) Draft() string { return vm.draft }

func (vm *ViewModel) SetDraft(title string) { vm.draft = title }

func (vm *ViewModel) FormVisible() bool { return vm.formVisible }

func (vm *ViewModel) ToggleForm() { vm.formVisible = !vm.formVisible }

func (vm *ViewModel) HideForm() { vm.formVisible = false }

// InFlight returns how many started operations have not been applied yet.
func (vm *ViewModel) InFlight() int { return len(vm.inFlight) }

// BeginLoad starts the initial load. It returns nil once a load has been started.
func (vm *ViewModel) BeginLoad() *LoadOp {
	if vm.loadStarted {
		return nil
	}
	vm.loadStarted = true
	vm.loading = true

	op := &LoadOp{ID: xid.New(), remote: vm.remote}
	vm.inFlight[op.ID] = OpLoad.String()
	log.Debug("operation started", "op", OpLoad, "op_id", op.ID)
	return op
}

// BeginAdd starts creating an item from the current draft, sent as typed.
// It returns nil, without touching any state, when the draft is blank, when the
// initial load has not succeeded, or when the policy refuses a second add.
func (vm *ViewModel) BeginAdd() *AddOp {
	if strings.TrimSpace(vm.draft) == "" || !vm.loaded {
		return nil
	}
	if !vm.admit(addKey) {
		log.Debug("operation skipped, already in flight", "op", OpAdd)
		return nil
	}

	op := &AddOp{
		ID: xid.New(),
		Draft: model.Draft{
			UserID:    vm.ownerID,
			Title:     vm.draft,
			Completed: false,
		},
		remote: vm.remote,
	}
	vm.inFlight[op.ID] = addKey
	log.Debug("operation started", "op", OpAdd, "op_id", op.ID, "title", vm.draft)
	return op
}

// BeginRemove starts deleting the item with the given id. It returns nil when
// the initial load has not succeeded or the policy refuses a duplicate remove.
func (vm *ViewModel) BeginRemove(id int) *RemoveOp {
	if !vm.loaded {
		return nil
	}
	key := removeKey(id)
	if !vm.admit(key) {
		log.Debug("operation skipped, already in flight", "op", OpRemove, "item_id", id)
		return nil
	}

	op := &RemoveOp{ID: xid.New(), ItemID: id, remote: vm.remote}
	vm.inFlight[op.ID] = key
	log.Debug("operation started", "op", OpRemove, "op_id", op.ID, "item_id", id)
	return op
}

func (vm *ViewModel) admit(key string) bool {
	if vm.policy != PolicyDedupe {
		return true
	}
	for _, k := range vm.inFlight {
		if k == key {
			return false
		}
	}
	return true
}

// Apply folds r into the state. It returns the *OperationFailed recorded
// for a failed result, nil otherwise.
func (vm *ViewModel) Apply(r Result) error {
	delete(vm.inFlight, r.OpID())

	switch res := r.(type) {
	case LoadResult:
		return vm.applyLoad(res)
	case AddResult:
		return vm.applyAdd(res)
	case RemoveResult:
		return vm.applyRemove(res)
	default:
		log.Warn("unknown result type", "op_id", r.OpID())
		return nil
	}
}

func (vm *ViewModel) applyLoad(res LoadResult) error {
	vm.loading = false
	if res.Err != nil {
		return vm.fail(OpLoad, res.ID, res.Err)
	}
	vm.items = model.Truncate(res.Items, model.PageSize)
	vm.loaded = true
	log.Debug("operation done", "op", OpLoad, "op_id", res.ID, "received", len(res.Items), "kept", len(vm.items))
	return nil
}

func (vm *ViewModel) applyAdd(res AddResult) error {
	if res.Err != nil {
		return vm.fail(OpAdd, res.ID, res.Err)
	}
	for _, it := range vm.items {
		if it.ID == res.Item.ID {
			// The test API hands out the same id for every create.
			// Both entries are kept; a remove by that id drops all of them.
			log.Warn("server returned an id already in the list", "item_id", res.Item.ID)
			break
		}
	}
	vm.items = model.Prepend(vm.items, res.Item)
	vm.draft = ""
	vm.formVisible = false
	log.Debug("operation done", "op", OpAdd, "op_id", res.ID, "item_id", res.Item.ID)
	return nil
}

func (vm *ViewModel) applyRemove(res RemoveResult) error {
	if res.Err != nil {
		return vm.fail(OpRemove, res.ID, res.Err)
	}
	vm.items = model.WithoutID(vm.items, res.ItemID)
	log.Debug("operation done", "op", OpRemove, "op_id", res.ID, "item_id", res.ItemID)
	return nil
}

// fail records the user-facing error. It replaces any previous one and is
// never cleared by a later success.
func (vm *ViewModel) fail(op Operation, id xid.ID, cause error) error {
	log.Error("operation failed", "op", op, "op_id", id, "err", cause)
	vm.err = newOperationFailed(op)
	return vm.err
}

// Load runs the initial load synchronously.
func (vm *ViewModel) Load(ctx context.Context) error {
	op := vm.BeginLoad()
	if op == nil {
		return nil
	}
	return vm.Apply(op.Run(ctx))
}

// Add creates the current draft synchronously. ok is false when nothing was sent.
func (vm *ViewModel) Add(ctx context.Context) (ok bool, err error) {
	op := vm.BeginAdd()
	if op == nil {
		return false, nil
	}
	return true, vm.Apply(op.Run(ctx))
}

// Remove deletes id synchronously. ok is false when nothing was sent.
func (vm *ViewModel) Remove(ctx context.Context, id int) (ok bool, err error) {
	op := vm.BeginRemove(id)
	if op == nil {
		return false, nil
	}
	return true, vm.Apply(op.Run(ctx))
}
