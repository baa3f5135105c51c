package config

import "github.com/ghtyrant/sinfonia-server/internal/domain"

// mapConfig applies parsed values on top of base (usually the defaults).
func mapConfig(base domain.Config, y yamlConfig) domain.Config {
	cfg := base

	if y.Server.URL != "" {
		cfg.Server.BaseURL = y.Server.URL
	}
	if y.Server.Token != "" {
		cfg.Server.Token = y.Server.Token
	}
	if y.Server.TimeoutMS != nil && *y.Server.TimeoutMS > 0 {
		cfg.Server.TimeoutMS = *y.Server.TimeoutMS
	}
	if y.Theme.File != "" {
		cfg.Theme.File = y.Theme.File
	}
	if y.Output.Format != "" {
		cfg.Output.Format = y.Output.Format
	}

	return cfg
}
