package domain

// Config represents the cubebag configuration loaded from cubebag.yaml.
type Config struct {
	Paths  PathsConfig
	Output OutputConfig
}

type PathsConfig struct {
	Input      string
	ReportsDir string
}

type OutputConfig struct {
	Format string
}

// DefaultConfig provides sane defaults if cubebag.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Paths: PathsConfig{
			Input:      "input.txt",
			ReportsDir: "reports",
		},
		Output: OutputConfig{
			Format: "plain",
		},
	}
}
