package registry

import (
	"testing"

	"github.com/matzehuels/dropgrid/pkg/errors"
	"github.com/matzehuels/dropgrid/pkg/geom"
)

var grid4 = geom.GridSpec{Columns: 4, RowHeight: 70}

func TestRegisterDraggable(t *testing.T) {
	r := New()

	if err := r.RegisterDraggable("a", "left", geom.R(0, 0, 10, 10)); err != nil {
		t.Fatalf("RegisterDraggable: %v", err)
	}
	n, ok := r.Draggable("a")
	if !ok {
		t.Fatal("Draggable(a) not found")
	}
	if n.ContainerID != "left" || n.Rect != geom.R(0, 0, 10, 10) {
		t.Errorf("node = %+v", *n)
	}

	// Layout pass updates in place
	if err := r.RegisterDraggable("a", "right", geom.R(5, 5, 10, 10)); err != nil {
		t.Fatalf("RegisterDraggable update: %v", err)
	}
	if n2, _ := r.Draggable("a"); n2 != n || n2.ContainerID != "right" || n2.Rect.Left != 5 {
		t.Errorf("update did not modify entry in place: %+v", *n2)
	}
	if r.DraggableCount() != 1 {
		t.Errorf("DraggableCount = %d, want 1", r.DraggableCount())
	}

	r.UnregisterDraggable("a")
	r.UnregisterDraggable("missing")
	if _, ok := r.Draggable("a"); ok {
		t.Error("Draggable(a) still present after unregister")
	}
}

func TestRegisterDraggableInvalid(t *testing.T) {
	r := New()
	tests := []struct {
		name      string
		id        ItemID
		container ContainerID
	}{
		{"empty item", "", "left"},
		{"empty container", "a", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.RegisterDraggable(tt.id, tt.container, geom.Rect{})
			if !errors.Is(err, errors.ErrCodeInvalidID) {
				t.Errorf("error = %v, want INVALID_ID", err)
			}
		})
	}
}

func TestRegisterDroppableOrder(t *testing.T) {
	r := New()
	for _, id := range []ContainerID{"left", "right", "dock"} {
		if err := r.RegisterDroppable(id, geom.R(0, 0, 100, 100), grid4, nil); err != nil {
			t.Fatalf("RegisterDroppable(%s): %v", id, err)
		}
	}

	// Re-registering keeps the original position
	if err := r.RegisterDroppable("left", geom.R(1, 1, 50, 50), grid4, []ItemID{"a"}); err != nil {
		t.Fatalf("RegisterDroppable(left) again: %v", err)
	}

	assertOrder(t, r, "left", "right", "dock")

	left, _ := r.Droppable("left")
	if left.Rect != geom.R(1, 1, 50, 50) || left.Len() != 1 {
		t.Errorf("left = %+v, want updated rect and 1 item", *left)
	}

	r.UnregisterDroppable("right")
	r.UnregisterDroppable("missing")
	assertOrder(t, r, "left", "dock")

	if err := r.RegisterDroppable("right", geom.Rect{}, grid4, nil); err != nil {
		t.Fatal(err)
	}
	assertOrder(t, r, "left", "dock", "right")
}

func TestRegisterDroppableCopiesItems(t *testing.T) {
	r := New()
	items := []ItemID{"a", "b"}
	if err := r.RegisterDroppable("left", geom.Rect{}, grid4, items); err != nil {
		t.Fatal(err)
	}
	items[0] = "z"

	c, _ := r.Droppable("left")
	if c.Items[0] != "a" {
		t.Errorf("registry aliases caller slice: %v", c.Items)
	}
}

func TestRegisterDroppableInvalidGrid(t *testing.T) {
	r := New()
	err := r.RegisterDroppable("left", geom.Rect{}, geom.GridSpec{Columns: 0, RowHeight: 1}, nil)
	if !errors.Is(err, errors.ErrCodeInvalidGrid) {
		t.Errorf("error = %v, want INVALID_GRID", err)
	}
	if len(r.Containers()) != 0 {
		t.Error("invalid container was registered")
	}
}

func TestUpdateDroppableRect(t *testing.T) {
	r := New()
	if err := r.UpdateDroppableRect("left", geom.Rect{}); !errors.Is(err, errors.ErrCodeUnknownContainer) {
		t.Errorf("UpdateDroppableRect(unknown) = %v, want UNKNOWN_CONTAINER", err)
	}

	_ = r.RegisterDroppable("left", geom.R(0, 0, 10, 10), grid4, nil)
	if err := r.UpdateDroppableRect("left", geom.R(20, 0, 10, 10)); err != nil {
		t.Fatalf("UpdateDroppableRect: %v", err)
	}
	c, _ := r.Droppable("left")
	if c.Rect.Left != 20 {
		t.Errorf("Rect.Left = %v, want 20", c.Rect.Left)
	}
}

func TestSetItemOrder(t *testing.T) {
	r := New()
	if err := r.SetItemOrder("left", nil); !errors.Is(err, errors.ErrCodeUnknownContainer) {
		t.Errorf("SetItemOrder(unknown) = %v, want UNKNOWN_CONTAINER", err)
	}

	_ = r.RegisterDroppable("left", geom.Rect{}, grid4, []ItemID{"a", "b"})
	if err := r.SetItemOrder("left", []ItemID{"b", "a"}); err != nil {
		t.Fatal(err)
	}
	c, _ := r.Droppable("left")
	if c.IndexOf("b") != 0 || c.IndexOf("a") != 1 || c.IndexOf("z") != -1 {
		t.Errorf("Items = %v", c.Items)
	}
}

func TestLocate(t *testing.T) {
	r := New()
	_ = r.RegisterDroppable("left", geom.Rect{}, grid4, []ItemID{"a", "b", "c"})
	_ = r.RegisterDraggable("b", "left", geom.Rect{})
	_ = r.RegisterDraggable("orphan", "nowhere", geom.Rect{})
	_ = r.RegisterDraggable("stale", "left", geom.Rect{})

	tests := []struct {
		name      string
		id        ItemID
		wantOK    bool
		wantIndex int
	}{
		{"registered", "b", true, 1},
		{"unknown item", "x", false, -1},
		{"unknown container", "orphan", false, -1},
		{"not listed", "stale", false, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, idx, ok := r.Locate(tt.id)
			if ok != tt.wantOK || idx != tt.wantIndex {
				t.Errorf("Locate(%q) = (%d, %v), want (%d, %v)", tt.id, idx, ok, tt.wantIndex, tt.wantOK)
			}
		})
	}
}

func assertOrder(t *testing.T, r *Registry, want ...ContainerID) {
	t.Helper()
	got := r.Containers()
	if len(got) != len(want) {
		t.Fatalf("Containers() len = %d, want %d", len(got), len(want))
	}
	for i, c := range got {
		if c.ID != want[i] {
			t.Errorf("Containers()[%d] = %s, want %s", i, c.ID, want[i])
		}
	}
}
