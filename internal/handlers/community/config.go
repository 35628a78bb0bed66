// internal/handlers/community/config.go
package community

import (
	"time"

	"plantscape-service/internal/common/config"
)

type Config struct {
	MinGroupSize     int
	Narrate          bool
	NarrationTimeout time.Duration
}

func LoadConfig(cfg config.CommunityConfig) *Config {
	minSize := cfg.MinGroupSize
	if minSize < 2 {
		minSize = 2
	}
	return &Config{
		MinGroupSize:     minSize,
		Narrate:          cfg.Narrate,
		NarrationTimeout: 30 * time.Second,
	}
}
