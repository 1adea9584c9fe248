package catalog

import "testing"

// TestFind verifies lookup by id.
func TestFind(t *testing.T) {
	ex, ok := Find("chest-push-ups")
	if !ok {
		t.Fatal("expected chest-push-ups to exist")
	}
	if ex.Name != "Push-ups" || ex.MuscleGroup != "chest" {
		t.Errorf("unexpected exercise: %+v", ex)
	}

	if _, ok := Find("nope"); ok {
		t.Error("expected miss for unknown id")
	}
}

// TestFilter verifies the combined muscle-group/difficulty filter.
func TestFilter(t *testing.T) {
	for _, ex := range Filter("legs", "") {
		if ex.MuscleGroup != "legs" {
			t.Errorf("Filter(legs) returned %+v", ex)
		}
	}
	for _, ex := range Filter("", Advanced) {
		if ex.Difficulty != Advanced {
			t.Errorf("Filter(advanced) returned %+v", ex)
		}
	}
	both := Filter("chest", Beginner)
	if len(both) != 1 || both[0].ID != "chest-push-ups" {
		t.Errorf("Filter(chest, beginner) = %+v", both)
	}
	if got, want := len(Filter("", "")), len(All()); got != want {
		t.Errorf("unfiltered Filter returned %d, want %d", got, want)
	}
}

// TestMuscleGroups verifies distinct groups come back in catalog order.
func TestMuscleGroups(t *testing.T) {
	groups := MuscleGroups()
	want := []string{"chest", "back", "legs", "shoulders", "arms", "core"}
	if len(groups) != len(want) {
		t.Fatalf("MuscleGroups() = %v", groups)
	}
	for i := range want {
		if groups[i] != want[i] {
			t.Errorf("groups[%d] = %q, want %q", i, groups[i], want[i])
		}
	}
}

// TestAllIsCopy verifies mutating the returned slice does not affect the
// catalog.
func TestAllIsCopy(t *testing.T) {
	all := All()
	all[0].Name = "tampered"
	if All()[0].Name == "tampered" {
		t.Error("All() returned a live reference")
	}
}
