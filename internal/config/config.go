package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Providers ProvidersConfig `yaml:"providers"`
	Chat      ChatConfig      `yaml:"chat"`
	Terms     TermsConfig     `yaml:"terms"`
	Router    RouterConfig    `yaml:"router"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,Authorization,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"1048576"`
}

// DatabaseConfig holds store connection settings. Driver is "postgres" or "sqlite";
// for sqlite the DSN is a file path or ":memory:".
type DatabaseConfig struct {
	Driver          string        `yaml:"driver"             env:"DATABASE_DRIVER"             env-default:"postgres"`
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// ProvidersConfig holds AI completion provider settings.
type ProvidersConfig struct {
	Default   string         `yaml:"default"   env:"PROVIDER_DEFAULT" env-default:"openai"`
	Timeout   time.Duration  `yaml:"timeout"   env:"PROVIDER_TIMEOUT" env-default:"30s"`
	OpenAI    ProviderConfig `yaml:"openai"    env-prefix:"OPENAI_"`
	Gemini    ProviderConfig `yaml:"gemini"    env-prefix:"GEMINI_"`
	Anthropic ProviderConfig `yaml:"anthropic" env-prefix:"ANTHROPIC_"`
}

// ProviderConfig holds the settings of a single provider. Model and BaseURL
// fall back to the provider's built-in defaults when empty.
type ProviderConfig struct {
	APIKey  string `yaml:"api_key"  env:"API_KEY"`
	Model   string `yaml:"model"    env:"MODEL"`
	BaseURL string `yaml:"base_url" env:"BASE_URL"`

	// KeySet reports whether a credential was supplied at all. An env var set
	// to "" counts as supplied; it is then the provider that rejects it.
	KeySet bool `yaml:"-" env:"-"`
}

// ChatConfig holds chat exchange settings.
type ChatConfig struct {
	// DisableMessageLog turns off the best-effort log of chat exchanges.
	DisableMessageLog bool          `yaml:"disable_message_log" env:"CHAT_DISABLE_MESSAGE_LOG" env-default:"false"`
	LogTimeout        time.Duration `yaml:"log_timeout"         env:"CHAT_LOG_TIMEOUT"         env-default:"5s"`
	// RetentionDays is how long cmd/cleanup keeps logged exchanges.
	RetentionDays int `yaml:"retention_days" env:"CHAT_RETENTION_DAYS" env-default:"90"`
}

// TermsConfig holds term operation settings.
type TermsConfig struct {
	// FailListOnError makes List answer with an error when the store fails.
	// Unset, a store failure yields an empty list.
	FailListOnError bool `yaml:"fail_list_on_error" env:"TERMS_FAIL_LIST_ON_ERROR" env-default:"false"`
}

// RouterConfig holds request routing settings.
type RouterConfig struct {
	// UnmatchedNotFound answers unmatched routes with 404 instead of the
	// informational 200 response.
	UnmatchedNotFound bool `yaml:"unmatched_not_found" env:"ROUTER_UNMATCHED_NOT_FOUND" env-default:"false"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Env names of the provider credentials, used to tell an unset key from an empty one.
const (
	EnvOpenAIKey    = "OPENAI_API_KEY"
	EnvGeminiKey    = "GEMINI_API_KEY"
	EnvAnthropicKey = "ANTHROPIC_API_KEY"
)

// ByName returns the provider settings keyed by provider name.
func (p ProvidersConfig) ByName() map[string]ProviderConfig {
	return map[string]ProviderConfig{
		"openai":    p.OpenAI,
		"gemini":    p.Gemini,
		"anthropic": p.Anthropic,
	}
}

// resolveCredentials fills KeySet for every provider. A key counts as set when
// its env var exists (even if empty) or a non-empty value came from YAML.
func (p *ProvidersConfig) resolveCredentials(lookup func(string) (string, bool)) {
	for env, pc := range map[string]*ProviderConfig{
		EnvOpenAIKey:    &p.OpenAI,
		EnvGeminiKey:    &p.Gemini,
		EnvAnthropicKey: &p.Anthropic,
	} {
		_, inEnv := lookup(env)
		pc.KeySet = inEnv || pc.APIKey != ""
	}
}
