package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultCalendarKeyHeader  = "X-Calendar-Key"
	defaultSuccessRedirect    = "/auth_s.html"
	defaultFailureRedirect    = "/auth_f.html"

	DefaultScopes              = "https://www.googleapis.com/auth/calendar openid email"
	DefaultAccessTokenLifetime = 1800 * time.Second
	DefaultStateTTL            = 10 * time.Minute
	DefaultEncryptionSalt      = "calbridge"
	DefaultSessionTable        = "calendar_sessions"
	DefaultCalendarName        = "AI Assistant"
	DefaultTimeZone            = "Asia/Shanghai"
)

// Store drivers recognised by store.driver.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverBadger   = "badger"
	StoreDriverMemory   = "memory"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP HTTPConfig `json:"http" yaml:"http"`

	OAuth OAuthConfig `json:"oauth" yaml:"oauth"`

	Encryption EncryptionConfig `json:"encryption" yaml:"encryption"`

	// Store selects and names the session store
	Store StoreConfig `json:"store" yaml:"store"`

	// Postgres is only read when store.driver is postgres
	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Calendar CalendarConfig `json:"calendar" yaml:"calendar"`

	TimeAssistant TimeAssistantConfig `json:"timeAssistant" yaml:"timeAssistant"`

	// PubSub configuration for session lifecycle events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configuration for the authorization hand-off image
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

type HTTPConfig struct {
	Port               int    `json:"port" yaml:"port"`
	MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
	Timeouts           struct {
		ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
		ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
		WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
		IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
	} `json:"timeouts" yaml:"timeouts"`

	// CalendarKeyHeader carries the caller's session key on calendar requests
	CalendarKeyHeader string `json:"calendarKeyHeader" yaml:"calendarKeyHeader"`

	RateLimit RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	Redirects struct {
		Success string `json:"success" yaml:"success"`
		Failure string `json:"failure" yaml:"failure"`
	} `json:"redirects" yaml:"redirects"`
}

// RateLimitConfig limits calendar requests per calendar key. Zero disables it.
type RateLimitConfig struct {
	RequestsPerSecond float64 `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	Burst             int     `json:"burst" yaml:"burst"`
}

// OAuthConfig describes the Google OAuth client used for calendar consent
type OAuthConfig struct {
	ClientID     string `json:"clientId" yaml:"clientId"`
	ClientSecret string `json:"clientSecret" yaml:"clientSecret"`
	RedirectURI  string `json:"redirectUri" yaml:"redirectUri"`

	// Scopes is space separated, as Google expects it in the scope parameter
	Scopes string `json:"scopes" yaml:"scopes"`

	// AccessTokenLifetime is how long a stored access token is trusted before refreshing
	AccessTokenLifetime time.Duration `json:"accessTokenLifetime" yaml:"accessTokenLifetime"`

	// StateSecret signs the state parameter; empty derives the key from encryption.key
	StateSecret string        `json:"stateSecret" yaml:"stateSecret"`
	StateTTL    time.Duration `json:"stateTTL" yaml:"stateTTL"`

	// SerializeRefresh makes concurrent requests for one user share a single refresh
	SerializeRefresh *bool `json:"serializeRefresh" yaml:"serializeRefresh"`
}

type EncryptionConfig struct {
	Key  string `json:"key" yaml:"key"`
	Salt string `json:"salt" yaml:"salt"`
}

type StoreConfig struct {
	Driver      string `json:"driver" yaml:"driver"`
	Table       string `json:"table" yaml:"table"`
	Path        string `json:"path" yaml:"path"`
	AutoMigrate bool   `json:"autoMigrate" yaml:"autoMigrate"`
}

type CalendarConfig struct {
	// Name is the display name of the dedicated calendar events are written to
	Name     string `json:"name" yaml:"name"`
	TimeZone string `json:"timeZone" yaml:"timeZone"`
}

type TimeAssistantConfig struct {
	DefaultTimeZone string `json:"defaultTimeZone" yaml:"defaultTimeZone"`
}

// PubSubConfig defines where session lifecycle events are published
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// RefreshSerialized reports whether refreshes are gated per user. Defaults to true.
func (c OAuthConfig) RefreshSerialized() bool {
	return c.SerializeRefresh == nil || *c.SerializeRefresh
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := findConfigFile(searchPaths, currEnv+".yaml")
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// OAUTH_CLIENTSECRET lands on oauth.clientSecret, not oauth.clientsecret
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyDefaults fills every optional setting left empty by the file and environment.
func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if c.HTTP.CalendarKeyHeader == "" {
		c.HTTP.CalendarKeyHeader = defaultCalendarKeyHeader
	}
	if c.HTTP.Redirects.Success == "" {
		c.HTTP.Redirects.Success = defaultSuccessRedirect
	}
	if c.HTTP.Redirects.Failure == "" {
		c.HTTP.Redirects.Failure = defaultFailureRedirect
	}
	if strings.TrimSpace(c.OAuth.Scopes) == "" {
		c.OAuth.Scopes = DefaultScopes
	}
	if c.OAuth.AccessTokenLifetime <= 0 {
		c.OAuth.AccessTokenLifetime = DefaultAccessTokenLifetime
	}
	if c.OAuth.StateTTL <= 0 {
		c.OAuth.StateTTL = DefaultStateTTL
	}
	if c.Encryption.Salt == "" {
		c.Encryption.Salt = DefaultEncryptionSalt
	}
	if c.Store.Driver == "" {
		c.Store.Driver = StoreDriverMemory
	}
	if c.Store.Table == "" {
		c.Store.Table = DefaultSessionTable
	}
	if c.Calendar.Name == "" {
		c.Calendar.Name = DefaultCalendarName
	}
	if c.Calendar.TimeZone == "" {
		c.Calendar.TimeZone = DefaultTimeZone
	}
	if c.TimeAssistant.DefaultTimeZone == "" {
		c.TimeAssistant.DefaultTimeZone = DefaultTimeZone
	}
}

// Validate rejects configurations the broker cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.OAuth.ClientID == "":
		return errors.New("oauth.clientId is required")
	case c.OAuth.ClientSecret == "":
		return errors.New("oauth.clientSecret is required")
	case c.OAuth.RedirectURI == "":
		return errors.New("oauth.redirectUri is required")
	case c.Encryption.Key == "":
		return errors.New("encryption.key is required")
	}

	switch c.Store.Driver {
	case StoreDriverMemory:
	case StoreDriverBadger:
		if c.Store.Path == "" {
			return errors.New("store.path is required for the badger driver")
		}
	case StoreDriverPostgres:
		if c.Postgres == nil {
			return errors.New("postgres section is required for the postgres driver")
		}
	default:
		return errors.Errorf("unknown store driver: %s", c.Store.Driver)
	}

	if _, err := time.LoadLocation(c.Calendar.TimeZone); err != nil {
		return errors.Wrapf(err, "calendar.timeZone %q", c.Calendar.TimeZone)
	}

	return nil
}

func findConfigFile(searchPaths []string, name string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}
// until the first index without a host or port.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
