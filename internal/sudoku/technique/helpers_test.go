package technique

import "testing"

func TestContains(t *testing.T) {
	if !contains([]int{1, 3, 5}, 3) {
		t.Error("expected 3 to be found")
	}
	if contains([]int{1, 3, 5}, 4) {
		t.Error("did not expect 4 to be found")
	}
}

func TestChangeString(t *testing.T) {
	c := change{Row: 0, Col: 8, Val: 7}
	if got := c.String(); got != "r1c9#7" {
		t.Errorf("String() = %q, want r1c9#7", got)
	}
}

func TestFormatChanges(t *testing.T) {
	changes := []change{{0, 0, 1}, {1, 1, 2}}
	got := formatChanges(changes)
	want := "r1c1#1, r2c2#2"
	if got != want {
		t.Errorf("formatChanges = %q, want %q", got, want)
	}
}
