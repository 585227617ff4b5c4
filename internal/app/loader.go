package app

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/five82/pixwall/internal/feed"
	"github.com/five82/pixwall/internal/state"
)

// StartLoader fetches the feed once in a background goroutine and publishes
// the outcome to store. It returns immediately; the returned channel closes
// when the fetch has been published.
func StartLoader(ctx context.Context, store *state.Store, source feed.Source, log zerolog.Logger) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		load(ctx, store, source, log)
	}()
	return done
}

func load(ctx context.Context, store *state.Store, source feed.Source, log zerolog.Logger) {
	records, err := source.FetchPhotos(ctx)
	if err != nil {
		store.Update(nil, err)
		log.Error().Err(err).Msg("feed fetch failed")
		return
	}
	store.Update(records, nil)
	log.Info().Int("photos", len(records)).Msg("feed fetched")
}
