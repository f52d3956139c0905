package planner

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"gaguya-backend/models"
)

// Store owns one planning session: room, scale, placed items, selection.
// The 2D and 3D views render from the same store, so every mutation goes
// through the mutex. Items keep insertion order — that is also z-order.
type Store struct {
	mu sync.Mutex

	room     RoomDimensions
	scale    float64 // px per mm
	items    []PlacedFurniture
	selected string // placed id, "" = none

	lastTouched time.Time
}

// State is an immutable snapshot handed to renderers.
type State struct {
	Room       RoomDimensions    `json:"room"`
	Scale      float64           `json:"scale"`
	CanvasW    float64           `json:"canvasWidth"`
	CanvasH    float64           `json:"canvasHeight"`
	Items      []PlacedFurniture `json:"items"`
	SelectedID string            `json:"selectedId,omitempty"`
	TotalPrice int               `json:"totalPrice"`
}

func NewStore(room RoomDimensions, scale float64) *Store {
	return &Store{room: room, scale: scale, lastTouched: time.Now()}
}

func (s *Store) canvasSize() (float64, float64) {
	return float64(s.room.Width) * s.scale, float64(s.room.Height) * s.scale
}

// AddFurniture places a new instance at (x, y) with rotation 0 and selects
// it. No snapping on the initial drop — only subsequent moves snap.
func (s *Store) AddFurniture(item models.FurnitureItem, x, y float64) PlacedFurniture {
	s.mu.Lock()
	defer s.mu.Unlock()

	placed := PlacedFurniture{
		ID:   uuid.NewString(),
		Item: item,
		X:    x,
		Y:    y,
	}
	s.items = append(s.items, placed)
	s.selected = placed.ID
	s.touch()
	return placed
}

// UpdateFurniturePosition snaps (x, y) against walls and the other items and
// commits the result. Unknown ids are ignored — a drag can race a delete.
func (s *Store) UpdateFurniturePosition(id string, x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return
	}
	canvasW, canvasH := s.canvasSize()

	others := make([]PlacedFurniture, 0, len(s.items)-1)
	for i, it := range s.items {
		if i != idx {
			others = append(others, it)
		}
	}

	nx, ny := Snap(x, y, s.items[idx], others, canvasW, canvasH, SnapThreshold, s.scale)
	s.items[idx].X = nx
	s.items[idx].Y = ny
	s.touch()
}

// RotateFurniture turns the item 90° clockwise. Position is deliberately left
// alone even if the swapped footprint now pokes past a wall or a neighbor.
func (s *Store) RotateFurniture(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := s.indexOf(id); idx >= 0 {
		s.items[idx].Rotation = (s.items[idx].Rotation + 90) % 360
		s.touch()
	}
}

// ChangeFurnitureColor overrides the color of one instance only; other
// placements of the same template keep theirs.
func (s *Store) ChangeFurnitureColor(id, color string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := s.indexOf(id); idx >= 0 {
		s.items[idx].Color = color
		s.touch()
	}
}

func (s *Store) RemoveFurniture(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	if s.selected == id {
		s.selected = ""
	}
	s.touch()
}

func (s *Store) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.selected = ""
	s.touch()
}

// Select marks one placed item as selected; pass "" to deselect (click on
// empty canvas). Selecting an unknown id is a no-op.
func (s *Store) Select(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == "" || s.indexOf(id) >= 0 {
		s.selected = id
		s.touch()
	}
}

func (s *Store) SetRoomDimensions(room RoomDimensions) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.room = room
	s.touch()
}

func (s *Store) SetScale(scale float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if scale > 0 {
		s.scale = scale
	}
	s.touch()
}

// TotalPrice sums the template prices of every placed item. Rotation and
// color never affect price.
func (s *Store) TotalPrice() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalPriceLocked()
}

func (s *Store) totalPriceLocked() int {
	total := 0
	for _, it := range s.items {
		total += it.Item.Price
	}
	return total
}

// Snapshot returns a copy both renderers can read without holding the lock.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	canvasW, canvasH := s.canvasSize()
	items := make([]PlacedFurniture, len(s.items))
	copy(items, s.items)

	return State{
		Room:       s.room,
		Scale:      s.scale,
		CanvasW:    canvasW,
		CanvasH:    canvasH,
		Items:      items,
		SelectedID: s.selected,
		TotalPrice: s.totalPriceLocked(),
	}
}

// LastTouched reports the last mutation time; the session manager expires
// idle stores on it.
func (s *Store) LastTouched() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastTouched
}

func (s *Store) indexOf(id string) int {
	for i, it := range s.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) touch() { s.lastTouched = time.Now() }
