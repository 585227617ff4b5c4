package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderBoard renders exactly m.board.rows lines of the tile grid.
func (m Model) renderBoard() string {
	b := m.board
	if b.rows <= 0 {
		return ""
	}

	switch {
	case m.snapshot.Failed():
		return m.renderPanel(m.renderFailure())
	case !m.snapshot.Loaded || m.grid == nil:
		return m.renderPanel(m.spinner.View() + " Loading photos…")
	case len(b.tiles) == 0:
		return m.renderPanel(fmt.Sprintf("No %s photos", strings.ToLower(m.mode.Label())))
	}

	styles := m.theme.Styles()
	width := b.tileWidth()
	n := b.columnCount()

	var lines []string
	for start := 0; start < len(b.tiles); start += n {
		end := min(start+n, len(b.tiles))
		row := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			row = append(row, m.renderTile(styles, b.tiles[i], width, i == m.selected))
		}
		joined := lipgloss.JoinHorizontal(lipgloss.Top, row...)
		lines = append(lines, strings.Split(joined, "\n")...)
	}

	visible := make([]string, b.rows)
	for i := range visible {
		if idx := b.offset + i; idx < len(lines) {
			visible[i] = lines[idx]
		}
	}
	return strings.Join(visible, "\n")
}

func (m Model) renderTile(styles Styles, t *tile, width int, selected bool) string {
	inner := max(width-2, 1)
	rec := t.record

	title := fmt.Sprintf("#%d", rec.ID)
	if rec.IsVideo {
		title += " ▶"
	}
	if m.gallery.Likes().Liked(rec.ID) {
		title += " ♥"
	}

	counts := "♥ " + compactCount(rec.Likes) + " ✎ " + compactCount(rec.Comments)

	var status string
	switch t.status {
	case tileReady:
		status = "ready"
		if t.info.Width > 0 {
			status = fmt.Sprintf("%dx%d %s", t.info.Width, t.info.Height, t.info.Format)
		}
	case tileFailed:
		status = "unavailable"
	default:
		status = m.spinner.View() + " loading"
	}

	body := strings.Join([]string{
		truncate(title, inner),
		styles.MutedText.Render(truncate(mediaName(rec.ThumbnailURL()), inner)),
		truncate(counts, inner),
		lipgloss.NewStyle().
			Foreground(lipgloss.Color(styles.TileColor(t.status.String()))).
			Render(truncate(status, inner)),
	}, "\n")

	style := styles.Tile
	if selected {
		style = styles.TileSelected
	}
	if t.status == tileFailed {
		style = style.BorderForeground(lipgloss.Color(styles.TileColor(tileFailed.String())))
	} else if rec.IsVideo && !selected {
		style = style.BorderForeground(lipgloss.Color(styles.TileColor("video")))
	}
	return style.
		Width(inner).
		Height(TileRows - 2).
		MaxHeight(TileRows).
		Render(body)
}

// renderFailure is the whole-grid failure indicator.
func (m Model) renderFailure() string {
	styles := m.theme.Styles()
	msg := "feed unavailable"
	if m.snapshot.LastError != nil {
		msg = m.snapshot.LastError.Error()
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		styles.DangerText.Render("Could not load photos"),
		"",
		styles.MutedText.Render(truncate(msg, max(m.width-8, 10))),
	)
}

func (m Model) renderPanel(content string) string {
	return lipgloss.Place(m.board.cols, m.board.rows, lipgloss.Center, lipgloss.Center, content)
}
