package ports

// ConfigLocator finds the directory holding the sinfoniactl configuration.
type ConfigLocator interface {
	FindRoot(startDir string) (string, error)
}
