package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/glencjones/edwina/internal/layout"
)

// RenderFrame paints the region partition onto a width x height canvas, one
// bordered box per region. Titles may be nil; the focused pane gets the
// accent border.
func RenderFrame(regions []layout.Region, width, height int, focused string, titles map[string]string) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	canvas := make([]string, height)
	blank := strings.Repeat(" ", width)
	for i := range canvas {
		canvas[i] = blank
	}
	for _, reg := range regions {
		title := ""
		if titles != nil {
			title = titles[reg.Pane]
		}
		box := renderPane(reg, title, reg.Pane == focused)
		overlay(canvas, box, reg.Rect.X, reg.Rect.Y)
	}
	return strings.Join(canvas, "\n")
}

func renderPane(reg layout.Region, title string, focused bool) string {
	r := reg.Rect
	if r.W < 2 || r.H < 2 {
		row := strings.Repeat("░", r.W)
		rows := make([]string, r.H)
		for i := range rows {
			rows[i] = row
		}
		return strings.Join(rows, "\n")
	}
	if title == "" {
		title = reg.Pane
	}
	label := paneTitleStyle.Render(title)
	dims := paneDimStyle.Render(fmt.Sprintf("%dx%d", r.W, r.H))
	content := label
	if r.H > 3 {
		content = label + "\n" + dims
	}
	inner := lipgloss.Place(r.W-2, r.H-2, lipgloss.Center, lipgloss.Center, content)
	border := paneBorder
	if focused {
		border = focusedPaneBorder
	}
	return border.Render(inner)
}

// overlay copies block into the canvas at column x, row y. Canvas rows are
// styled strings, so all width math is ANSI-aware.
func overlay(canvas []string, block string, x, y int) {
	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 || row >= len(canvas) {
			continue
		}
		width := ansi.StringWidth(line)
		left := ansi.Truncate(canvas[row], x, "")
		if pad := x - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ansi.TruncateLeft(canvas[row], x+width, "")
		canvas[row] = left + line + right
	}
}
