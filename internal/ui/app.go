// Package ui provides the Bubble Tea photo wall.
package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/five82/pixwall/internal/config"
	"github.com/five82/pixwall/internal/feed"
	"github.com/five82/pixwall/internal/gallery"
	"github.com/five82/pixwall/internal/grid"
	"github.com/five82/pixwall/internal/photo"
	"github.com/five82/pixwall/internal/prefs"
	"github.com/five82/pixwall/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Source    feed.Source
	Store     *state.Store
	Config    config.Config
	FeedURL   string
	Device    grid.Device
	ThemeName string
	Filter    photo.FilterMode
	PrefsPath string
	Logger    zerolog.Logger
	Now       func() time.Time
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	cfg       config.Config
	feedURL   string
	device    grid.Device
	prefsPath string
	log       zerolog.Logger
	now       func() time.Time

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	width    int
	height   int
	ready    bool
	showHelp bool

	// Data state
	snapshot state.Snapshot

	// Grid state; the board and controller are shared by every copy of
	// the model and are only touched from Update.
	board    *board
	grid     *grid.Controller
	gallery  *gallery.Gallery
	mode     photo.FilterMode
	selected int

	// Debounce tokens: only the latest settles.
	scrollSeq int
	resizeSeq int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	return Model{
		ctx:       ctx,
		store:     opts.Store,
		cfg:       opts.Config,
		feedURL:   opts.FeedURL,
		device:    opts.Device,
		prefsPath: prefsPath,
		log:       opts.Logger,
		now:       opts.Now,
		theme:     GetTheme(themeName),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		spinner:   sp,
		board:     newBoard(ctx, opts.Source, opts.Config.CellWidth, opts.Config.CellHeight),
		gallery:   gallery.New(),
		mode:      opts.Filter,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store), tickCmd(SnapshotPoll))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.board.resize(msg.Width, msg.Height-chromeRows)
		if !m.ready {
			// The controller samples the first real width as its
			// breakpoint baseline, so it is created only now.
			m.ready = true
			m.grid = m.newController()
			return m, m.loadIfReady()
		}
		m.clampSelection()
		m.resizeSeq++
		return m, settleCmd(grid.ResizeDebounce, resizeSettledMsg{seq: m.resizeSeq})

	case tickMsg:
		if m.snapshot.Settled() || m.store == nil {
			return m, nil
		}
		return m, tea.Batch(fetchSnapshotCmd(m.store), tickCmd(SnapshotPoll))

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		return m, m.loadIfReady()

	case probeMsg:
		if m.board.resolve(msg) && msg.err != nil {
			m.log.Debug().Err(msg.err).Int("handle", int(msg.handle)).Msg("image probe failed")
		}
		return m, nil

	case scrollSettledMsg:
		if msg.seq != m.scrollSeq || m.grid == nil {
			return m, nil
		}
		m.grid.Dispatch(grid.Scrolled{})
		return m, m.board.drain()

	case resizeSettledMsg:
		if msg.seq != m.resizeSeq || m.grid == nil {
			return m, nil
		}
		m.grid.Dispatch(grid.Resized{})
		m.clampSelection()
		return m, m.board.drain()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.gallery.Visible() {
		return m.renderGallery()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderBoard(),
		m.renderFooter(),
	)
}

func (m Model) newController() *grid.Controller {
	ctrl := grid.NewController(grid.Options{
		Renderer:        m.board,
		Viewport:        m.board,
		Device:          m.device,
		BreakpointWidth: m.cfg.BreakpointWidth,
		Gap:             m.cfg.ScrollGap,
		Mode:            m.mode,
		Now:             m.now,
		Logger:          m.log,
	})
	m.board.columns = ctrl.RowSize
	return ctrl
}

// loadIfReady hands the feed to the controller once both exist.
func (m *Model) loadIfReady() tea.Cmd {
	if m.grid == nil || !m.snapshot.Loaded || m.grid.Loaded() {
		return nil
	}
	res := m.grid.Dispatch(grid.Load{Records: m.snapshot.Photos})
	m.log.Info().
		Int("photos", len(m.snapshot.Photos)).
		Int("rendered", res.Rendered).
		Str("filter", m.mode.String()).
		Msg("feed loaded")
	m.selected = 0
	return m.board.drain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}
	if m.gallery.Visible() {
		return m.handleGalleryKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil
	case key.Matches(msg, m.keys.FilterPopular):
		return m, m.setFilter(photo.FilterPopular)
	case key.Matches(msg, m.keys.FilterNew):
		return m, m.setFilter(photo.FilterNew)
	case key.Matches(msg, m.keys.FilterDiscussed):
		return m, m.setFilter(photo.FilterDiscussed)
	case key.Matches(msg, m.keys.CycleFilter):
		return m, m.setFilter(m.mode.Next())
	case key.Matches(msg, m.keys.Open):
		m.openGallery(m.selected)
		return m, nil
	}

	n := m.board.columnCount()
	page := m.board.visibleRows() * n
	switch {
	case key.Matches(msg, m.keys.Left):
		return m, m.selectTile(m.selected - 1)
	case key.Matches(msg, m.keys.Right):
		return m, m.selectTile(m.selected + 1)
	case key.Matches(msg, m.keys.Up):
		return m, m.selectTile(m.selected - n)
	case key.Matches(msg, m.keys.Down):
		return m, m.selectTileDown(m.selected + n)
	case key.Matches(msg, m.keys.PageUp):
		return m, m.selectTile(m.selected - page)
	case key.Matches(msg, m.keys.PageDown):
		return m, m.selectTileDown(m.selected + page)
	case key.Matches(msg, m.keys.Top):
		return m, m.selectTile(0)
	case key.Matches(msg, m.keys.Bottom):
		return m, m.selectTileDown(len(m.board.tiles) - 1)
	}
	return m, nil
}

func (m Model) handleGalleryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Close):
		m.gallery.HandleKey(gallery.KeyEsc)
		return m, m.selectTile(m.gallery.Index())
	case key.Matches(msg, m.keys.Prev):
		m.gallery.HandleKey(gallery.KeyLeft)
	case key.Matches(msg, m.keys.Next):
		m.gallery.HandleKey(gallery.KeyRight)
	case key.Matches(msg, m.keys.Like):
		m.gallery.HandleClick(gallery.TargetLikes)
	case key.Matches(msg, m.keys.Play):
		if p := m.gallery.Preview(); p != nil && p.Render().Video {
			m.gallery.HandleClick(gallery.TargetMedia)
		}
	}
	return m, nil
}

// handleMouse processes wheel scrolling and clicks.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		return m, nil
	}
	if m.gallery.Visible() {
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		l := m.galleryLayout()
		if !l.contains(msg.X, msg.Y) {
			m.gallery.Hide()
			return m, m.selectTile(m.gallery.Index())
		}
		switch l.hit(msg.X, msg.Y) {
		case gallery.TargetLikes:
			m.gallery.HandleClick(gallery.TargetLikes)
		case gallery.TargetMedia:
			if p := m.gallery.Preview(); p != nil && p.Render().Video {
				m.gallery.HandleClick(gallery.TargetMedia)
			} else {
				m.gallery.HandleImageClick(msg.X, l.contentLeft, l.innerWidth)
			}
		}
		return m, nil
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		if m.board.scrollBy(-WheelStep) {
			return m, m.scrolled()
		}
	case msg.Button == tea.MouseButtonWheelDown:
		if m.board.scrollBy(WheelStep) || m.wantsMore() {
			return m, m.scrolled()
		}
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		if idx, ok := m.board.tileAt(msg.X, msg.Y-headerRows); ok {
			m.selected = idx
			m.openGallery(idx)
		}
	}
	return m, nil
}

// selectTile moves the selection, scrolling when the tile is off screen.
func (m *Model) selectTile(index int) tea.Cmd {
	if len(m.board.tiles) == 0 {
		m.selected = 0
		return nil
	}
	m.selected = min(max(index, 0), len(m.board.tiles)-1)
	if m.board.ensureVisible(m.selected) {
		return m.scrolled()
	}
	return nil
}

// selectTileDown is selectTile for downward moves. At the bottom of the board
// the view cannot move, so a scroll is still reported while photos remain.
func (m *Model) selectTileDown(index int) tea.Cmd {
	if cmd := m.selectTile(index); cmd != nil {
		return cmd
	}
	if m.wantsMore() {
		return m.scrolled()
	}
	return nil
}

// wantsMore reports whether the view sits at the bottom with photos left to render.
func (m Model) wantsMore() bool {
	return m.grid != nil && m.grid.Remaining() > 0 && m.board.atBottom()
}

func (m *Model) clampSelection() {
	m.selected = min(max(m.selected, 0), max(len(m.board.tiles)-1, 0))
}

// scrolled starts a new scroll debounce window.
func (m *Model) scrolled() tea.Cmd {
	m.scrollSeq++
	return settleCmd(grid.ScrollDebounce, scrollSettledMsg{seq: m.scrollSeq})
}

func (m *Model) setFilter(mode photo.FilterMode) tea.Cmd {
	m.mode = mode
	m.savePrefs()
	if m.grid == nil {
		return nil
	}
	m.board.scrollTo(0)
	m.selected = 0
	res := m.grid.Dispatch(grid.SetFilter{Mode: mode})
	m.log.Info().Str("filter", mode.String()).Int("rendered", res.Rendered).Msg("filter changed")
	return m.board.drain()
}

// openGallery shows the overlay at the filtered index; failed tiles stay shut.
func (m *Model) openGallery(index int) {
	if m.grid == nil || index < 0 || index >= len(m.board.tiles) {
		return
	}
	if m.board.tiles[index].status == tileFailed {
		return
	}
	m.gallery.SetPhotos(m.grid.Photos())
	m.gallery.SetCurrentIndex(index)
	m.gallery.Show()
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, Filter: m.mode.String()}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.log.Warn().Err(err).Str("path", m.prefsPath).Msg("save preferences")
	}
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type scrollSettledMsg struct{ seq int }

type resizeSettledMsg struct{ seq int }

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func settleCmd(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return msg
	})
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(m.ctx),
	)
	_, err := p.Run()
	return err
}
