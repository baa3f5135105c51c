package domain

// Config represents the sinfoniactl configuration loaded from sinfoniactl.yaml.
type Config struct {
	Server ServerConfig
	Theme  ThemeConfig
	Output OutputConfig
}

type ServerConfig struct {
	BaseURL   string
	Token     string
	TimeoutMS int
}

type ThemeConfig struct {
	File string
}

type OutputConfig struct {
	Format string
}

// DefaultConfig mirrors the server's own startup defaults, so a bare
// invocation against a local server works without any configuration file.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			BaseURL:   "http://127.0.0.1:9090",
			Token:     "totallynotsecure",
			TimeoutMS: 10000,
		},
		Theme:  ThemeConfig{File: "theme.json"},
		Output: OutputConfig{Format: "pretty"},
	}
}
