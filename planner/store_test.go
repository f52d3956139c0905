package planner

import (
	"strings"
	"testing"

	"gaguya-backend/models"
)

func chair() models.FurnitureItem {
	return models.FurnitureItem{ID: 2, Name: "사무용 의자", Width: 600, Depth: 600, Price: 95000}
}

func newTestStore() *Store {
	return NewStore(RoomDimensions{Width: 5000, Height: 4000}, 0.1)
}

func TestAddFurnitureSelectsAndSkipsSnap(t *testing.T) {
	s := newTestStore()

	// 2px from the corner — a move would snap, a drop must not.
	placed := s.AddFurniture(desk(), 2, 2)
	if placed.X != 2 || placed.Y != 2 {
		t.Fatalf("drop moved the item to (%v, %v)", placed.X, placed.Y)
	}
	if placed.Rotation != 0 {
		t.Fatalf("new item rotation = %d, want 0", placed.Rotation)
	}

	state := s.Snapshot()
	if state.SelectedID != placed.ID {
		t.Fatalf("selected = %q, want the new item %q", state.SelectedID, placed.ID)
	}
}

func TestMoveSnapsAgainstWalls(t *testing.T) {
	s := newTestStore()
	placed := s.AddFurniture(desk(), 100, 100)

	s.UpdateFurniturePosition(placed.ID, 2, 2)

	state := s.Snapshot()
	if state.Items[0].X != 0 || state.Items[0].Y != 0 {
		t.Fatalf("got (%v, %v), want (0, 0)", state.Items[0].X, state.Items[0].Y)
	}
}

func TestRotateCyclesAndKeepsPosition(t *testing.T) {
	s := newTestStore()
	placed := s.AddFurniture(desk(), 100, 100)

	want := []int{90, 180, 270, 0}
	for _, expected := range want {
		s.RotateFurniture(placed.ID)
		state := s.Snapshot()
		if state.Items[0].Rotation != expected {
			t.Fatalf("rotation = %d, want %d", state.Items[0].Rotation, expected)
		}
		if state.Items[0].X != 100 || state.Items[0].Y != 100 {
			t.Fatalf("rotation moved the item to (%v, %v)", state.Items[0].X, state.Items[0].Y)
		}
	}
}

func TestColorOverridesOneInstanceOnly(t *testing.T) {
	s := newTestStore()
	a := s.AddFurniture(chair(), 10, 10)
	b := s.AddFurniture(chair(), 200, 200)

	s.ChangeFurnitureColor(a.ID, "#8b4513")

	state := s.Snapshot()
	for _, it := range state.Items {
		switch it.ID {
		case a.ID:
			if it.Color != "#8b4513" {
				t.Fatalf("a color = %q", it.Color)
			}
		case b.ID:
			if it.Color != "" {
				t.Fatalf("b color changed to %q", it.Color)
			}
		}
	}
}

func TestTotalPriceSumsTemplates(t *testing.T) {
	s := newTestStore()
	s.AddFurniture(desk(), 10, 10)
	s.AddFurniture(chair(), 200, 10)
	placed := s.AddFurniture(chair(), 200, 200)

	// Rotation and color never change the total.
	s.RotateFurniture(placed.ID)
	s.ChangeFurnitureColor(placed.ID, "#000000")

	if got := s.TotalPrice(); got != 180000+95000+95000 {
		t.Fatalf("total = %d", got)
	}

	s.RemoveFurniture(placed.ID)
	if got := s.TotalPrice(); got != 180000+95000 {
		t.Fatalf("total after remove = %d", got)
	}
}

func TestUnknownIDsAreNoOps(t *testing.T) {
	s := newTestStore()
	placed := s.AddFurniture(desk(), 100, 100)

	s.UpdateFurniturePosition("nope", 0, 0)
	s.RotateFurniture("nope")
	s.ChangeFurnitureColor("nope", "#fff")
	s.RemoveFurniture("nope")
	s.Select("nope")

	state := s.Snapshot()
	if len(state.Items) != 1 {
		t.Fatalf("item count = %d", len(state.Items))
	}
	it := state.Items[0]
	if it.X != 100 || it.Y != 100 || it.Rotation != 0 || it.Color != "" {
		t.Fatalf("item mutated: %+v", it)
	}
	if state.SelectedID != placed.ID {
		t.Fatalf("selection changed to %q", state.SelectedID)
	}
}

func TestClearAllEmptiesSessionButKeepsRoom(t *testing.T) {
	s := newTestStore()
	s.AddFurniture(desk(), 10, 10)
	s.AddFurniture(chair(), 100, 100)

	s.ClearAll()

	state := s.Snapshot()
	if len(state.Items) != 0 || state.SelectedID != "" || state.TotalPrice != 0 {
		t.Fatalf("clear left state behind: %+v", state)
	}
	if state.Room.Width != 5000 || state.Room.Height != 4000 {
		t.Fatalf("room changed: %+v", state.Room)
	}
}

func TestRemoveSelectedClearsSelection(t *testing.T) {
	s := newTestStore()
	a := s.AddFurniture(desk(), 10, 10)
	b := s.AddFurniture(chair(), 100, 100) // selected now

	s.RemoveFurniture(b.ID)
	if got := s.Snapshot().SelectedID; got != "" {
		t.Fatalf("selection = %q, want empty", got)
	}

	s.Select(a.ID)
	s.Select("")
	if got := s.Snapshot().SelectedID; got != "" {
		t.Fatalf("deselect failed, selection = %q", got)
	}
}

func TestSessionManagerLifecycle(t *testing.T) {
	m := NewSessionManager(DefaultSessionTTL)

	id, store := m.Create(RoomDimensions{Width: 3000, Height: 3000}, 0.1)
	if store == nil || id == "" {
		t.Fatal("create returned nothing")
	}
	if m.Get(id) != store {
		t.Fatal("get returned a different store")
	}

	m.Destroy(id)
	if m.Get(id) != nil {
		t.Fatal("destroyed session still retrievable")
	}
	if m.Get("missing") != nil {
		t.Fatal("unknown id returned a store")
	}
}

func TestQuoteComposition(t *testing.T) {
	s := newTestStore()
	s.AddFurniture(desk(), 10, 10)
	s.AddFurniture(chair(), 200, 10)

	c := ComposeConsultation(s.Snapshot(), "홍길동", "010-1234-5678", "hong@example.com", "가구야")
	if c.Name != "홍길동" || c.Phone != "010-1234-5678" {
		t.Fatalf("contact fields lost: %+v", c)
	}
	for _, want := range []string{
		"[공간 시뮬레이션 견적 문의]",
		"공간 크기: 5000×4000mm",
		"사무용 책상 (800×600mm) - ₩180,000",
		"사무용 의자 (600×600mm) - ₩95,000",
		"예상 합계: ₩275,000",
	} {
		if !strings.Contains(c.Message, want) {
			t.Fatalf("message missing %q:\n%s", want, c.Message)
		}
	}
}
