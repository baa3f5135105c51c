package config

import (
	"os"
	"path/filepath"

	"github.com/ghtyrant/sinfonia-server/internal/domain"
	"gopkg.in/yaml.v3"
)

// Load reads sinfoniactl.yaml from root. A missing file is not an error:
// the server ships with fixed startup defaults and the CLI mirrors them.
func Load(root string) (domain.Config, error) {
	cfg, err := LoadFile(filepath.Join(root, ConfigFile))
	if err != nil && domain.IsKind(err, domain.KindNotFound) {
		return domain.DefaultConfig(), nil
	}
	return cfg, err
}

// LoadFile reads a config file at an explicit path. Here a missing file
// is an error, since the caller asked for that exact file.
func LoadFile(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindExecution
		if os.IsNotExist(err) {
			kind = domain.KindNotFound
		}
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return mapConfig(cfg, y), nil
}

// ApplyEnv overlays SINFONIA_* environment variables on top of cfg.
func ApplyEnv(cfg domain.Config) domain.Config {
	if v := os.Getenv("SINFONIA_URL"); v != "" {
		cfg.Server.BaseURL = v
	}
	if v := os.Getenv("SINFONIA_TOKEN"); v != "" {
		cfg.Server.Token = v
	}
	if v := os.Getenv("SINFONIA_THEME"); v != "" {
		cfg.Theme.File = v
	}
	return cfg
}
