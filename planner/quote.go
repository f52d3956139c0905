package planner

import (
	"fmt"
	"strings"
)

// Consultation is the pre-filled payload handed to the inquiry flow.
type Consultation struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Message string `json:"message"`
}

// FurnitureList formats every placed item as
// "<name> (<w>×<h>mm) - ₩<price>", one line per item, in placement order.
// Dimensions are the template footprint — rotation doesn't change what you
// are buying.
func FurnitureList(items []PlacedFurniture) string {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, fmt.Sprintf("%s (%d×%dmm) - ₩%s",
			it.Item.Name, it.Item.Width, it.Item.Depth, formatWon(it.Item.Price)))
	}
	return strings.Join(lines, "\n")
}

// ComposeConsultation builds the free-text inquiry body from the current
// layout. Pure formatting — no server round-trip happens here.
func ComposeConsultation(state State, name, phone, email, company string) Consultation {
	var b strings.Builder
	b.WriteString("[공간 시뮬레이션 견적 문의]\n\n")
	fmt.Fprintf(&b, "공간 크기: %d×%dmm\n\n", state.Room.Width, state.Room.Height)
	b.WriteString("배치 가구:\n")
	if len(state.Items) == 0 {
		b.WriteString("(없음)\n")
	} else {
		b.WriteString(FurnitureList(state.Items))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\n예상 합계: ₩%s", formatWon(state.TotalPrice))

	return Consultation{
		Name:    name,
		Phone:   phone,
		Email:   email,
		Company: company,
		Message: b.String(),
	}
}

// formatWon groups digits by thousands ("1234567" → "1,234,567").
func formatWon(amount int) string {
	s := fmt.Sprintf("%d", amount)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}
