package pkgconfig

import "time"

// Config is a read-only view over application configuration.
type Config interface {
	GetInt(key string) int64
	GetBool(key string) bool
	GetString(key string) string
	GetArray(key string) []string
	GetDuration(key string) time.Duration
	Close() error
}
