package model

import "testing"

func ids(items []Item) []int {
	out := make([]int, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func sameIDs(t *testing.T, got []Item, want ...int) {
	t.Helper()
	g := ids(got)
	if len(g) != len(want) {
		t.Fatalf("ids: expected %v, got %v", want, g)
	}
	for i := range want {
		if g[i] != want[i] {
			t.Fatalf("ids: expected %v, got %v", want, g)
		}
	}
}

func makeItems(n int) []Item {
	items := make([]Item, 0, n)
	for i := 1; i <= n; i++ {
		items = append(items, Item{UserID: 1, ID: i, Title: "item"})
	}
	return items
}

func TestTruncate(t *testing.T) {
	type testCase struct {
		Name     string
		Total    int
		Expected int
	}

	testCases := []testCase{
		{Name: "empty", Total: 0, Expected: 0},
		{Name: "below page", Total: 3, Expected: 3},
		{Name: "exact page", Total: PageSize, Expected: PageSize},
		{Name: "above page", Total: 200, Expected: PageSize},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			got := Truncate(makeItems(tc.Total), PageSize)
			if e, g := tc.Expected, len(got); e != g {
				t.Fatalf("len: expected %d, got %d", e, g)
			}
			for i, it := range got {
				if it.ID != i+1 {
					t.Errorf("position %d: expected id %d, got %d", i, i+1, it.ID)
				}
			}
		})
	}
}

func TestTruncateDoesNotAlias(t *testing.T) {
	src := makeItems(3)
	got := Truncate(src, PageSize)
	got[0].Title = "changed"
	if src[0].Title != "item" {
		t.Fatalf("source mutated: %q", src[0].Title)
	}
}

func TestPrepend(t *testing.T) {
	got := Prepend(makeItems(3), Item{ID: 201, Title: "Buy milk"})
	sameIDs(t, got, 201, 1, 2, 3)
}

func TestWithoutID(t *testing.T) {
	sameIDs(t, WithoutID(makeItems(3), 2), 1, 3)
	sameIDs(t, WithoutID(makeItems(3), 42), 1, 2, 3)
}

func TestStats(t *testing.T) {
	items := []Item{{ID: 1, Completed: true}, {ID: 2}, {ID: 3}}
	c, p := Stats(items)
	if c != 1 || p != 2 {
		t.Fatalf("expected 1/2, got %d/%d", c, p)
	}
}
