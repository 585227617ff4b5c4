// Package app is the composition root of pixwall.
//
// Run wires the pieces together in this order:
//
//  1. Load config.toml (with environment overrides) and preferences
//  2. Open the rotated zerolog log file
//  3. Build the feed client
//  4. Probe the device class once for the whole session
//  5. Start the one-shot feed loader, which publishes to a state.Store
//  6. Start the Bubble Tea UI and block until it exits
//
// A missing or unreadable feed is not fatal: the loader records the error in
// the store and the UI shows a whole-grid failure panel. Only a malformed
// config file or an unusable feed URL stop Run before the UI starts.
//
// The loader makes exactly one request; there is no retry and no polling of
// the feed itself. The UI polls the store until the snapshot settles.
package app
