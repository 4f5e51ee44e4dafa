package display

import "strings"

// wrapText breaks s into lines no wider than maxWidth. A single word wider
// than maxWidth gets a line of its own.
func wrapText(m Measurer, s string, style TextStyle, maxWidth float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if m.Advance(candidate, style) <= maxWidth {
			line = candidate
			continue
		}
		lines = append(lines, line)
		line = w
	}
	return append(lines, line)
}

// flowItem is one box placed by flowRow.
type flowItem struct {
	X, Y, Width float64
}

// flowRows places boxes of the given widths left to right, wrapping onto a
// new row when maxWidth is exceeded. Each row is centered when center is
// set. It returns the placements and the number of rows.
func flowRows(widths []float64, gap, rowHeight, maxWidth float64, center bool) ([]flowItem, int) {
	items := make([]flowItem, len(widths))
	rows := 0
	start := 0
	for start < len(widths) {
		end := start
		used := 0.0
		for end < len(widths) {
			next := widths[end]
			if end > start {
				next += gap
			}
			if end > start && used+next > maxWidth {
				break
			}
			used += next
			end++
		}
		x := 0.0
		if center {
			x = (maxWidth - used) / 2
		}
		for i := start; i < end; i++ {
			items[i] = flowItem{X: x, Y: float64(rows) * (rowHeight + gap), Width: widths[i]}
			x += widths[i] + gap
		}
		rows++
		start = end
	}
	return items, rows
}
