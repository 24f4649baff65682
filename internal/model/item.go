package model

// PageSize is how many items a load keeps from the remote result.
const PageSize = 10

// Item is a to-do entry as the remote API returns it.
// ID is assigned by the server; the client never makes one up.
type Item struct {
	UserID    int    `json:"userId"`
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Draft is an item that has not been created yet.
type Draft struct {
	UserID    int    `json:"userId"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Truncate keeps the first n items in source order.
func Truncate(items []Item, n int) []Item {
	if n < 0 {
		n = 0
	}
	if len(items) > n {
		items = items[:n]
	}
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// Prepend returns a new slice with it in front of items.
func Prepend(items []Item, it Item) []Item {
	out := make([]Item, 0, len(items)+1)
	out = append(out, it)
	return append(out, items...)
}

// WithoutID returns items minus every entry carrying id.
// An id that is not present leaves the collection as is.
func WithoutID(items []Item, id int) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}

// Stats counts completed and pending items for headers.
func Stats(items []Item) (completed, pending int) {
	for _, it := range items {
		if it.Completed {
			completed++
		} else {
			pending++
		}
	}
	return
}
