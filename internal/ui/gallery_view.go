package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pixwall/internal/gallery"
)

// galleryLayout is the screen geometry of the gallery overlay. Clicks are
// mapped against it, so it must match what renderGallery draws.
type galleryLayout struct {
	left, top     int // outer corner, border included
	width, height int // outer size
	contentLeft   int
	contentTop    int
	innerWidth    int
	mediaRows     int
}

func (m Model) galleryLayout() galleryLayout {
	width := min(max(m.width-2, 24), OverlayMaxWidth)
	mediaRows := min(max(m.height-12, 3), 10)
	height := mediaRows + 10 // 6 content lines, 2 padding, 2 border

	l := galleryLayout{
		left:      max((m.width-width)/2, 0),
		top:       max((m.height-height)/2, 0),
		width:     width,
		height:    height,
		mediaRows: mediaRows,
	}
	l.contentLeft = l.left + 1 + 2
	l.contentTop = l.top + 1 + 1
	l.innerWidth = width - 2 - 4
	return l
}

func (l galleryLayout) contains(x, y int) bool {
	return x >= l.left && x < l.left+l.width && y >= l.top && y < l.top+l.height
}

func (l galleryLayout) mediaTop() int    { return l.contentTop + 2 }
func (l galleryLayout) mediaBottom() int { return l.mediaTop() + l.mediaRows }
func (l galleryLayout) likesRow() int    { return l.mediaBottom() + 1 }

// hit classifies a click inside the overlay.
func (l galleryLayout) hit(x, y int) gallery.Target {
	switch {
	case y == l.likesRow():
		return gallery.TargetLikes
	case y >= l.mediaTop() && y < l.mediaBottom() &&
		x >= l.contentLeft && x < l.contentLeft+l.innerWidth:
		return gallery.TargetMedia
	default:
		return gallery.TargetOther
	}
}

// renderGallery renders the overlay for the current preview.
func (m Model) renderGallery() string {
	styles := m.theme.Styles()
	l := m.galleryLayout()

	preview := m.gallery.Preview()
	if preview == nil {
		return ""
	}
	view := preview.Render()
	rec := view.Record

	title := styles.AccentText.Bold(true).Render(
		fmt.Sprintf("Photo %d / %d", m.gallery.Index()+1, m.gallery.Len()))
	if view.Video {
		title += " " + styles.Badge("video", "VIDEO")
	}

	mediaLines := []string{
		styles.Text.Bold(true).Render(truncateMiddle(mediaName(view.Source), l.innerWidth-2)),
		styles.MutedText.Render(truncateMiddle(view.Source, l.innerWidth-2)),
	}
	if view.Video {
		state := "❚❚ paused"
		if view.Playing {
			state = "▶ playing"
		}
		mediaLines = append(mediaLines, styles.InfoText.Render(state))
	} else {
		mediaLines = append(mediaLines, styles.FaintText.Render("‹ click left · click right ›"))
	}
	media := lipgloss.Place(
		l.innerWidth, l.mediaRows,
		lipgloss.Center, lipgloss.Center,
		strings.Join(mediaLines[:min(len(mediaLines), l.mediaRows)], "\n"),
	)

	heart := "♡"
	heartStyle := styles.MutedText
	if view.Liked {
		heart = "♥"
		heartStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(styles.TileColor("liked"))).Bold(true)
	}
	likes := heartStyle.Render(fmt.Sprintf("%s %s", heart, compactCount(view.Likes))) +
		"  " + styles.Text.Render("✎ "+compactCount(rec.Comments))
	if !rec.CreatedAt.IsZero() {
		likes += "  " + styles.MutedText.Render(rec.CreatedAt.Format("2006-01-02"))
	}

	hints := make([]string, 0, 5)
	for _, b := range m.keys.galleryHelp() {
		if b.Help().Key == "space" && !view.Video {
			continue
		}
		hints = append(hints, b.Help().Key+" "+strings.ToLower(b.Help().Desc))
	}

	content := strings.Join([]string{
		title,
		"",
		media,
		"",
		likes,
		"",
		styles.FaintText.Render(truncate(strings.Join(hints, " · "), l.innerWidth)),
	}, "\n")

	box := styles.Overlay.
		Width(l.width - 2).
		Height(l.height - 2).
		Render(content)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
