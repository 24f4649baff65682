package listvm

import (
	"strings"

	"github.com/pkg/errors"
)

// Policy decides whether overlapping operations are allowed.
type Policy int

const (
	// PolicyAllowConcurrent lets every operation through. Results are
	// applied in the order they arrive.
	PolicyAllowConcurrent Policy = iota
	// PolicyDedupe keeps at most one add in flight, and at most one remove per item id.
	PolicyDedupe
)

func (p Policy) String() string {
	if p == PolicyDedupe {
		return "dedupe"
	}
	return "allow"
}

// ParsePolicy maps a configuration value to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "allow", "concurrent":
		return PolicyAllowConcurrent, nil
	case "dedupe":
		return PolicyDedupe, nil
	default:
		return PolicyAllowConcurrent, errors.Errorf("unknown in-flight policy %q", s)
	}
}

// DefaultOwnerID is the placeholder owner put on every new item.
const DefaultOwnerID = 1

type Options struct {
	OwnerID int
	Policy  Policy
}

type OptionFunc func(opts *Options)

func WithOwnerID(id int) OptionFunc {
	return func(opts *Options) {
		opts.OwnerID = id
	}
}

func WithPolicy(p Policy) OptionFunc {
	return func(opts *Options) {
		opts.Policy = p
	}
}

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		OwnerID: DefaultOwnerID,
		Policy:  PolicyAllowConcurrent,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}
