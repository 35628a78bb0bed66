// internal/handlers/answer/config.go
package answer

import "time"

type Config struct {
	MaxImageBytes  int64
	RequestTimeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		MaxImageBytes:  10 * 1024 * 1024, // matches the documented 10MB upload cap
		RequestTimeout: 120 * time.Second,
	}
}
