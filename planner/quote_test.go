package planner

import (
	"strings"
	"testing"
)

func TestFurnitureListKeepsPlacementOrder(t *testing.T) {
	items := []PlacedFurniture{
		{ID: "1", Item: chair()},
		{ID: "2", Item: desk()},
	}

	lines := strings.Split(FurnitureList(items), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "사무용 의자") || !strings.HasPrefix(lines[1], "사무용 책상") {
		t.Fatalf("order wrong:\n%s", strings.Join(lines, "\n"))
	}
}

func TestComposeConsultationEmptyLayout(t *testing.T) {
	state := State{Room: RoomDimensions{Width: 3000, Height: 2000}}

	c := ComposeConsultation(state, "김철수", "010-0000-0000", "", "")
	if !strings.Contains(c.Message, "(없음)") {
		t.Fatalf("empty layout marker missing:\n%s", c.Message)
	}
	if !strings.Contains(c.Message, "예상 합계: ₩0") {
		t.Fatalf("zero total missing:\n%s", c.Message)
	}
}

func TestFormatWonGrouping(t *testing.T) {
	cases := map[int]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		95000:    "95,000",
		1234567:  "1,234,567",
		-1234567: "-1,234,567",
	}
	for in, want := range cases {
		if got := formatWon(in); got != want {
			t.Fatalf("formatWon(%d) = %q, want %q", in, got, want)
		}
	}
}
