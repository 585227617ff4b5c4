package ui

import (
	"fmt"

	"github.com/five82/pixwall/internal/grid"
	"github.com/five82/pixwall/internal/photo"
)

// renderHeader renders the status line and the filter bar.
func (m Model) renderHeader() string {
	return m.renderStatusLine() + "\n" + m.renderFilterBar()
}

func (m Model) renderStatusLine() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{bg.Render("pixwall", styles.Logo)}

	switch {
	case m.snapshot.Failed():
		parts = append(parts, bg.Render("● FEED DOWN", styles.DangerText))
	case !m.snapshot.Loaded:
		parts = append(parts, bg.Render(m.spinner.View()+" Loading feed", styles.WarningText))
	default:
		parts = append(parts,
			bg.Render("● "+fmt.Sprintf("%d photos", len(m.snapshot.Photos)), styles.SuccessText))
	}

	if m.grid != nil && m.grid.Loaded() {
		state := m.grid.State()
		stateStyle := styles.InfoText
		if state == grid.StateExhausted {
			stateStyle = styles.MutedText
		}
		parts = append(parts,
			bg.Render("Showing:", styles.MutedText)+bg.Spaces(1)+
				bg.Render(fmt.Sprintf("%d/%d", m.grid.Rendered(), len(m.grid.Photos())), styles.Text),
			bg.Render(state.String(), stateStyle),
		)
	}

	layout := m.device.String()
	if m.grid != nil {
		layout = m.grid.Breakpoint().String() + " " + layout
	}
	parts = append(parts, bg.Render(layout, styles.FaintText))

	if m.feedURL != "" && m.width >= 100 {
		parts = append(parts, bg.Render(truncateMiddle(m.feedURL, 40), styles.FaintText))
	}

	return bg.FillLine(styles.Header.Render(bg.Join(parts, "  ")), m.width)
}

func (m Model) renderFilterBar() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Background)

	parts := make([]string, 0, len(photo.FilterModes()))
	for i, mode := range photo.FilterModes() {
		label := fmt.Sprintf("%d %s", i+1, mode.Label())
		if mode == m.mode {
			parts = append(parts, styles.Badge("ready", label))
			continue
		}
		parts = append(parts, bg.Render(" "+label+" ", styles.MutedText))
	}
	return bg.FillLine(" "+bg.Join(parts, " "), m.width)
}

// renderFooter renders the short key help.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	h := m.help
	h.Width = max(m.width-2, 0)
	var text string
	if m.gallery.Visible() {
		text = h.ShortHelpView(m.keys.galleryHelp())
	} else {
		text = h.View(m.keys)
	}
	return styles.Footer.Width(m.width).MaxWidth(m.width).Render(text)
}
