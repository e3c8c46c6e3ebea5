package domain

// Config mirrors ~/.ask/config.yaml.
type Config struct {
	BaseURL        string          `yaml:"base_url"`
	Endpoint       string          `yaml:"endpoint"`
	Model          string          `yaml:"model"`
	Temperature    float64         `yaml:"temperature"`
	TimeoutSeconds int             `yaml:"timeout"`
	Shell          string          `yaml:"shell"`
	History        HistorySettings `yaml:"history"`
}

// HistorySettings controls the per-turn command history store.
type HistorySettings struct {
	Enabled bool `yaml:"enabled"`
}

// Defaults for a local LM Studio style endpoint.
const (
	DefaultBaseURL  = "http://localhost:1234"
	DefaultEndpoint = "/v1/chat/completions"
	DefaultModel    = "qwen/qwen3-vl-8b"
	DefaultTimeout  = 60
)

// WithDefaults fills unset fields with their defaults.
func (c Config) WithDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = DefaultTimeout
	}
	return c
}
