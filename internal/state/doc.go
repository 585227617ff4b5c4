// Package state holds the feed snapshot shared between the loader goroutine
// and the UI.
//
// The loader performs exactly one fetch and publishes its outcome with
// Update; the UI polls Snapshot on a tick until the snapshot is Settled and
// then hands the photos to the grid controller. A Store is ready to use as a
// zero value and is safe for one writer and many readers.
//
// Update keeps previously loaded photos when it is given an error, and
// Snapshot returns copies of both the photo slice and the error so callers
// never share mutable state with the store.
package state
