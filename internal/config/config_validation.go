package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Defaults applied by [StructuredConfig.validate] when a field was not set by
// any configuration source.
const (
	DefaultHTTPAddress    = ":8080"
	DefaultRequestTimeout = 30 * time.Second
	DefaultMusicBaseURL   = "https://api.music.yandex.net"
	DefaultMusicPageSize  = 20
	DefaultMusicCoverSize = "400x400"
	DefaultMusicTimeout   = 15 * time.Second
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants and applies defaults for unset fields.
//
// An empty database DSN and an empty music token are deliberately NOT
// validation errors: the affected endpoint reports a configuration error at
// request time instead of preventing startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout <= 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}

	if cfg.App.BcryptCost == 0 {
		cfg.App.BcryptCost = bcrypt.DefaultCost
	}
	if cfg.App.BcryptCost < bcrypt.MinCost || cfg.App.BcryptCost > bcrypt.MaxCost {
		return ErrInvalidAppConfigs
	}

	if cfg.Music.BaseURL == "" {
		cfg.Music.BaseURL = DefaultMusicBaseURL
	}
	if cfg.Music.PageSize <= 0 {
		cfg.Music.PageSize = DefaultMusicPageSize
	}
	if cfg.Music.CoverSize == "" {
		cfg.Music.CoverSize = DefaultMusicCoverSize
	}
	if cfg.Music.Timeout <= 0 {
		cfg.Music.Timeout = DefaultMusicTimeout
	}

	return nil
}
