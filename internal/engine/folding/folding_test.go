package folding

import "testing"

func TestAddAndFold(t *testing.T) {
	x := NewIndex()
	if err := x.Add(10, 20); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if x.IsFolded(10, 20) {
		t.Error("new region should start open")
	}
	if err := x.Fold(10, 20); err != nil {
		t.Fatalf("Fold failed: %v", err)
	}
	if !x.IsFolded(10, 20) {
		t.Error("region should be folded")
	}
}

func TestFoldRegistersUnknownRegion(t *testing.T) {
	x := NewIndex()
	if err := x.Fold(5, 9); err != nil {
		t.Fatalf("Fold failed: %v", err)
	}
	if !x.IsFolded(5, 9) {
		t.Error("Fold should register and collapse an unknown region")
	}
}

func TestInvalidRegion(t *testing.T) {
	x := NewIndex()
	if err := x.Add(5, 5); err != ErrRegionInvalid {
		t.Errorf("expected ErrRegionInvalid, got %v", err)
	}
	if err := x.Fold(-1, 3); err != ErrRegionInvalid {
		t.Errorf("expected ErrRegionInvalid, got %v", err)
	}
}

func TestCoveringIsStrict(t *testing.T) {
	x := NewIndex()
	if err := x.Fold(10, 20); err != nil {
		t.Fatalf("Fold failed: %v", err)
	}
	if got := x.Covering(10); len(got) != 0 {
		t.Errorf("offset on start boundary should not be covered, got %v", got)
	}
	if got := x.Covering(20); len(got) != 0 {
		t.Errorf("offset on end boundary should not be covered, got %v", got)
	}
	if got := x.Covering(15); len(got) != 1 {
		t.Errorf("offset strictly inside should be covered, got %v", got)
	}
}

func TestCoveringNestedRegions(t *testing.T) {
	x := NewIndex()
	if err := x.Add(0, 100); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := x.Add(10, 20); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	got := x.Covering(15)
	if len(got) != 2 {
		t.Fatalf("expected 2 covering regions, got %d", len(got))
	}
	if got[0].Start != 0 || got[1].Start != 10 {
		t.Errorf("covering regions out of order: %v", got)
	}
}

func TestEnsureUnfolded(t *testing.T) {
	x := NewIndex()
	if err := x.Fold(10, 20); err != nil {
		t.Fatalf("Fold failed: %v", err)
	}
	if err := x.Fold(30, 40); err != nil {
		t.Fatalf("Fold failed: %v", err)
	}
	x.EnsureUnfolded(15)
	if x.IsFolded(10, 20) {
		t.Error("region containing the offset should be expanded")
	}
	if !x.IsFolded(30, 40) {
		t.Error("unrelated region should stay folded")
	}
}

func TestHidesOffset(t *testing.T) {
	x := NewIndex()
	if err := x.Fold(10, 20); err != nil {
		t.Fatalf("Fold failed: %v", err)
	}
	if !x.HidesOffset(15) {
		t.Error("offset 15 should be hidden")
	}
	if x.HidesOffset(10) {
		t.Error("boundary offset should not be hidden")
	}
	x.Unfold(10, 20)
	if x.HidesOffset(15) {
		t.Error("offset should be visible after unfold")
	}
}

func TestUnfoldAll(t *testing.T) {
	x := NewIndex()
	if err := x.Fold(1, 5); err != nil {
		t.Fatalf("Fold failed: %v", err)
	}
	if err := x.Fold(6, 9); err != nil {
		t.Fatalf("Fold failed: %v", err)
	}
	x.UnfoldAll()
	for _, r := range x.Regions() {
		if r.Folded {
			t.Errorf("region %v should be open", r)
		}
	}
}

func TestRemove(t *testing.T) {
	x := NewIndex()
	if err := x.Add(1, 5); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	x.Remove(1, 5)
	if len(x.Regions()) != 0 {
		t.Errorf("expected no regions, got %v", x.Regions())
	}
}

func TestAddDuplicateIsNoOp(t *testing.T) {
	x := NewIndex()
	if err := x.Add(1, 5); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := x.Add(1, 5); err != nil {
		t.Fatalf("duplicate Add failed: %v", err)
	}
	if len(x.Regions()) != 1 {
		t.Errorf("expected 1 region, got %d", len(x.Regions()))
	}
}
