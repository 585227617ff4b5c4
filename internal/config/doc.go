// Package config loads pixwall's TOML configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/pixwall/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing, empty or out of range, use defaults
//  5. Apply PIXWALL_FEED_URL and PIXWALL_LOG_LEVEL from the environment
//
// The caller is expected to load an optional .env file (godotenv) before
// calling Load so that its values take part in step 5.
//
// # TOML Format
//
//	feed_url = "http://127.0.0.1:8080"
//	feed_path = "data/pictures.json"
//	request_timeout_ms = 10000
//	breakpoint_width = 1380
//	cell_width = 10
//	cell_height = 20
//	scroll_gap = 100
//	device = "auto"         # auto | pointer | touch
//	log_file = "~/.local/share/pixwall/pixwall.log"
//	log_level = "info"      # debug | info | warn | error
//
// Every field is optional. Invalid values are replaced by their defaults
// rather than rejected; only unreadable files and malformed TOML are errors.
//
// # Layout Units
//
// cell_width and cell_height convert terminal cells to the layout units the
// grid reasons in, so a 138 column terminal sits exactly on the default
// breakpoint.
package config
