package config

// Build metadata, set with -ldflags "-X github.com/edirooss/pmx-registry/internal/config.Version=...".
var (
	Version   = "dev"
	GitCommit = "none"
	BuildDate = "unknown"
)
