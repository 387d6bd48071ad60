package config

// EmbeddedAPIKey is an OMDb API key injected at build time via ldflags.
// It serves as the default and can be overridden by environment
// variables or config file.
//
// Build with:
//   go build -ldflags "-X 'github.com/slipstream/omdb/internal/config.EmbeddedAPIKey=xxx'" ./cmd/omdb
var EmbeddedAPIKey string
