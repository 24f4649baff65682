package listvm

import (
	"github.com/Makepad-fr/tada-remote/internal/model"
)

// State is what the view renders. It is one of Loading, Ready or Failed.
type State interface {
	isState()
}

// Loading is shown until the first load answers.
type Loading struct{}

// Ready holds the collection when no error has been recorded.
type Ready struct {
	Items []model.Item
}

// Failed carries the last error together with whatever items are known.
// After a failed load Items is empty; after a failed add or remove the
// collection is still there and stays usable.
type Failed struct {
	Items []model.Item
	Err   *OperationFailed
}

func (Loading) isState() {}
func (Ready) isState()   {}
func (Failed) isState()  {}

// ShowList reports whether the collection should be rendered along with s.
func ShowList(s State) bool {
	switch st := s.(type) {
	case Ready:
		return true
	case Failed:
		return st.Err.Op != OpLoad
	default:
		return false
	}
}
