package satchel

import (
	"os"

	"github.com/rs/zerolog"
)

// Option configures a world at construction time.
type Option func(w *world)

// WithLogger injects the logger used for world debug events. Worlds are
// silent by default.
func WithLogger(l zerolog.Logger) Option {
	return func(w *world) {
		w.log = l
	}
}

// WithPrettyLog enables human-readable debug logging on stderr.
func WithPrettyLog() Option {
	return func(w *world) {
		w.log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			With().Timestamp().Logger().
			Level(zerolog.DebugLevel)
	}
}

// WithCapacity pre-sizes the world for an expected entity count.
func WithCapacity(n int) Option {
	return func(w *world) {
		if n <= 0 {
			return
		}
		w.entities = make(map[EntityID]*entity, n)
		w.order = make([]EntityID, 0, n)
	}
}
