package config

// Config represents the full application configuration.
type Config struct {
	Groq          GroqConfig          `yaml:"groq"`
	HTTP          HTTPConfig          `yaml:"http"`
	Validation    ValidationConfig    `yaml:"validation"`
	Store         StoreConfig         `yaml:"store"`
	Output        OutputConfig        `yaml:"output"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// GroqConfig configures the completion provider. An empty APIKey is a
// detectable precondition failure: the interpreter refuses to call out and
// the caller falls back to the offline reading.
type GroqConfig struct {
	APIKey  string `yaml:"apiKey"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"baseURL"`
}

// HTTPConfig holds HTTP client settings for the provider call.
type HTTPConfig struct {
	Timeout           string  `yaml:"timeout"`
	MaxRetries        int     `yaml:"maxRetries"`
	InitialBackoff    string  `yaml:"initialBackoff"`
	MaxBackoff        string  `yaml:"maxBackoff"`
	BackoffMultiplier float64 `yaml:"backoffMultiplier"`
}

// ValidationConfig exposes the heuristic thresholds of the input and
// response validators. These are tuning knobs; the defaults match what the
// detection rules were calibrated with.
type ValidationConfig struct {
	SpecialCharRatio   float64 `yaml:"specialCharRatio"`
	MinResponseLength  int     `yaml:"minResponseLength"`
	RelevanceMinLength int     `yaml:"relevanceMinLength"`
}

// StoreConfig configures the reading-history persistence layer.
type StoreConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// OutputConfig configures where exported readings are written.
type OutputConfig struct {
	Directory string `yaml:"directory"`
}

// ObservabilityConfig configures logging.
type ObservabilityConfig struct {
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures request/response logging.
type LoggingConfig struct {
	Enabled       bool   `yaml:"enabled"`
	Level         string `yaml:"level"`         // debug, info, error
	Format        string `yaml:"format"`        // json, human
	RedactAPIKeys bool   `yaml:"redactAPIKeys"` // Redact API keys in logs
}
