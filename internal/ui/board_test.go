package ui

import (
	"context"
	"errors"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/pixwall/internal/feed"
	"github.com/five82/pixwall/internal/grid"
	"github.com/five82/pixwall/internal/photo"
)

// fakeSource answers probes from a table and remembers the contexts it saw.
type fakeSource struct {
	mu       sync.Mutex
	failures map[string]error
	contexts map[string]context.Context
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		failures: make(map[string]error),
		contexts: make(map[string]context.Context),
	}
}

func (f *fakeSource) FetchPhotos(context.Context) ([]photo.Record, error) {
	return nil, errors.New("not used")
}

func (f *fakeSource) ProbeImage(ctx context.Context, ref string) (feed.ImageInfo, error) {
	f.mu.Lock()
	f.contexts[ref] = ctx
	err := f.failures[ref]
	f.mu.Unlock()
	if err != nil {
		return feed.ImageInfo{}, err
	}
	if ctx.Err() != nil {
		return feed.ImageInfo{}, ctx.Err()
	}
	return feed.ImageInfo{Width: 640, Height: 480, Format: "jpeg"}, nil
}

func (f *fakeSource) contextFor(ref string) context.Context {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.contexts[ref]
}

// runCmd executes cmd and flattens any batches into their messages.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func probeMsgs(msgs []tea.Msg) []probeMsg {
	var out []probeMsg
	for _, msg := range msgs {
		if p, ok := msg.(probeMsg); ok {
			out = append(out, p)
		}
	}
	return out
}

func TestBoard_MaterializeProbesAvailableRecords(t *testing.T) {
	src := newFakeSource()
	src.failures["broken.jpg"] = errors.New("decode image: bad header")
	b := newBoard(context.Background(), src, 0, 0)

	missing := b.Materialize(photo.Record{ID: 0})
	ok := b.Materialize(photo.Record{ID: 1, URL: "full.jpg", PreviewURL: "thumb.jpg"})
	broken := b.Materialize(photo.Record{ID: 2, URL: "broken.jpg"})

	require.Len(t, b.tiles, 3)
	assert.Equal(t, tileFailed, b.byHandle[missing].status)
	assert.ErrorIs(t, b.byHandle[missing].err, feed.ErrUnavailable)
	assert.Equal(t, tileLoading, b.byHandle[ok].status)

	msgs := probeMsgs(runCmd(b.drain()))
	require.Len(t, msgs, 2, "records without a URL are never probed")
	assert.Nil(t, b.drain(), "drain empties the queue")
	assert.NotNil(t, src.contextFor("thumb.jpg"), "tiles probe the preview first")

	for _, msg := range msgs {
		assert.True(t, b.resolve(msg))
	}
	assert.Equal(t, tileReady, b.byHandle[ok].status)
	assert.Equal(t, 640, b.byHandle[ok].info.Width)
	assert.Equal(t, tileFailed, b.byHandle[broken].status)
}

func TestBoard_EvictCancelsProbeAndDropsLateResult(t *testing.T) {
	src := newFakeSource()
	b := newBoard(context.Background(), src, 0, 0)

	h := b.Materialize(photo.Record{ID: 4, URL: "slow.jpg"})
	cmd := b.drain()
	b.Evict(h)

	msgs := probeMsgs(runCmd(cmd))
	require.Len(t, msgs, 1)
	assert.ErrorIs(t, src.contextFor("slow.jpg").Err(), context.Canceled)
	assert.False(t, b.resolve(msgs[0]), "evicted tiles ignore late results")
	assert.Empty(t, b.tiles)

	// Evicting twice is harmless.
	b.Evict(h)
}

func TestBoard_WithoutSourceTilesAreReady(t *testing.T) {
	b := newBoard(nil, nil, 0, 0)
	h := b.Materialize(photo.Record{ID: 1, URL: "a.jpg"})
	assert.Equal(t, tileReady, b.byHandle[h].status)
	assert.Nil(t, b.drain())
}

func TestBoard_ViewportGeometry(t *testing.T) {
	b := newBoard(context.Background(), nil, 10, 20)
	b.columns = func() int { return 5 }
	b.resize(70, 30)

	assert.Equal(t, 700, b.Width())
	assert.Equal(t, 600, b.Height())
	assert.Equal(t, 0, b.ContentBottom())

	for i := 0; i < 11; i++ {
		b.Materialize(photo.Record{ID: i, URL: "x.jpg"})
	}
	assert.Equal(t, 3, b.tileRowCount())
	assert.Equal(t, 3*TileRows*20, b.ContentBottom())

	var _ grid.Viewport = b
	assert.Equal(t, 0, b.maxOffset(), "content fits, nothing to scroll")
	assert.False(t, b.scrollBy(5))

	for i := 11; i < 40; i++ {
		b.Materialize(photo.Record{ID: i, URL: "x.jpg"})
	}
	// 8 rows of 6 cells on a 30 row board.
	assert.Equal(t, 18, b.maxOffset())
	assert.True(t, b.scrollBy(5))
	assert.Equal(t, (48-5)*20, b.ContentBottom())
	assert.True(t, b.scrollTo(100))
	assert.Equal(t, 18, b.offset, "scrolling clamps to the last row")
}

func TestBoard_EnsureVisibleAndTileAt(t *testing.T) {
	b := newBoard(context.Background(), nil, 10, 20)
	b.columns = func() int { return 5 }
	b.resize(100, 12)
	for i := 0; i < 30; i++ {
		b.Materialize(photo.Record{ID: i, URL: "x.jpg"})
	}

	assert.False(t, b.ensureVisible(6), "second row is already visible")
	assert.True(t, b.ensureVisible(17))
	assert.Equal(t, 12, b.offset, "row 3 ends at cell 24")
	assert.True(t, b.ensureVisible(0))
	assert.Equal(t, 0, b.offset)

	idx, ok := b.tileAt(45, 7)
	require.True(t, ok)
	assert.Equal(t, 7, idx)

	_, ok = b.tileAt(45, 12)
	assert.False(t, ok, "below the board")

	b.resize(103, 12)
	_, ok = b.tileAt(101, 0)
	assert.False(t, ok, "leftover cells right of the last column")
}
