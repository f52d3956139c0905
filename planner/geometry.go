package planner

import "gaguya-backend/models"

// SnapThreshold is in screen pixels, not millimeters. It stays fixed across
// zoom levels so the gesture feels the same however far the user zoomed.
const SnapThreshold = 20.0

// RoomDimensions is the room footprint in millimeters.
type RoomDimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// PlacedFurniture is one instance on the canvas. ID is its own — the same
// template can be placed any number of times. X/Y are canvas pixels.
type PlacedFurniture struct {
	ID       string               `json:"id"`
	Item     models.FurnitureItem `json:"item"`
	X        float64              `json:"x"`
	Y        float64              `json:"y"`
	Rotation int                  `json:"rotation"` // 0, 90, 180, 270
	Color    string               `json:"color,omitempty"`
}

// EffectiveSize returns the on-canvas width/height of f in pixels at the
// given scale (px per mm). Width and depth swap at 90 and 270 degrees.
func EffectiveSize(f PlacedFurniture, scale float64) (w, h float64) {
	w = float64(f.Item.Width) * scale
	h = float64(f.Item.Depth) * scale
	if f.Rotation%180 != 0 {
		w, h = h, w
	}
	return w, h
}

// Snap adjusts a candidate position of moving against the canvas walls and
// the other placed items, then clamps into the canvas. Wall and neighbor
// snapping act independently per axis; clamping always wins over a snap
// target that would leave the canvas.
//
// When several neighbors are within threshold on the same axis the smallest
// adjustment wins; exact ties go to the earlier neighbor in list order.
func Snap(x, y float64, moving PlacedFurniture, others []PlacedFurniture, canvasW, canvasH, threshold, scale float64) (float64, float64) {
	w, h := EffectiveSize(moving, scale)

	x = snapAxis(x, w, canvasW, moving, others, threshold, scale, true)
	y = snapAxis(y, h, canvasH, moving, others, threshold, scale, false)

	x = clamp(x, 0, canvasW-w)
	y = clamp(y, 0, canvasH-h)
	return x, y
}

func snapAxis(pos, size, canvasSize float64, moving PlacedFurniture, others []PlacedFurniture, threshold, scale float64, horizontal bool) float64 {
	best := pos
	bestDelta := threshold

	consider := func(target float64) {
		d := abs(pos - target)
		if d < bestDelta {
			bestDelta = d
			best = target
		}
	}

	// Walls first; a closer neighbor edge below can still beat them.
	consider(0)
	consider(canvasSize - size)

	for _, o := range others {
		if o.ID == moving.ID {
			continue
		}
		ow, oh := EffectiveSize(o, scale)
		if horizontal {
			consider(o.X + ow)   // our left edge against their right edge
			consider(o.X - size) // our right edge against their left edge
		} else {
			consider(o.Y + oh)
			consider(o.Y - size)
		}
	}
	return best
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
