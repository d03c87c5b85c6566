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

const defaultPath = "."

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Integrations configuration for external data providers
	Integrations *IntegrationsConfig `json:"integrations" yaml:"integrations"`

	// Insight configuration for the generation cascade
	Insight *InsightConfig `json:"insight" yaml:"insight"`

	// PubSub configuration for sync event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Firebase configuration for re-authorization push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// IntegrationsConfig defines configuration for the provider integration layer
type IntegrationsConfig struct {
	// Sandbox forces every adapter into synthetic-data mode regardless of
	// credentials. Useful for demos and local development.
	Sandbox bool `json:"sandbox" yaml:"sandbox"`

	// SyncWindowDays bounds how far back a sync fetches, e.g. 30 or 90.
	SyncWindowDays int `json:"syncWindowDays" yaml:"syncWindowDays"`

	// AdapterTimeout bounds one adapter invocation; a hung upstream call is
	// treated as a transient failure after this long.
	AdapterTimeout time.Duration `json:"adapterTimeout" yaml:"adapterTimeout"`

	// RefreshMargin is the safety margin before token expiry that still
	// counts as fresh.
	RefreshMargin time.Duration `json:"refreshMargin" yaml:"refreshMargin"`

	Sales       *ProviderConfig    `json:"sales" yaml:"sales"`
	OpenFinance *ProviderConfig    `json:"openFinance" yaml:"openFinance"`
	SandboxData *SandboxDataConfig `json:"sandboxData" yaml:"sandboxData"`
}

// ProviderConfig defines one external provider's endpoints and client credentials
type ProviderConfig struct {
	ClientID     string `json:"clientId" yaml:"clientId"`
	ClientSecret string `json:"clientSecret" yaml:"clientSecret"`
	AuthURL      string `json:"authUrl" yaml:"authUrl"`
	TokenURL     string `json:"tokenUrl" yaml:"tokenUrl"`
	RedirectURI  string `json:"redirectUri" yaml:"redirectUri"`
	Scopes       string `json:"scopes" yaml:"scopes"`
	APIBaseURL   string `json:"apiBaseUrl" yaml:"apiBaseUrl"`

	// APIKey is sent as a provider-specific header on data calls when set
	// (the open-finance aggregator requires one in addition to the bearer token).
	APIKey string `json:"apiKey" yaml:"apiKey"`
}

// SandboxDataConfig bounds the synthetic generator's output
type SandboxDataConfig struct {
	MinRecords  int     `json:"minRecords" yaml:"minRecords"`
	MaxRecords  int     `json:"maxRecords" yaml:"maxRecords"`
	MinAmount   float64 `json:"minAmount" yaml:"minAmount"`
	MaxAmount   float64 `json:"maxAmount" yaml:"maxAmount"`
	RecencyDays int     `json:"recencyDays" yaml:"recencyDays"`
}

// InsightConfig defines the generation cascade configuration
type InsightConfig struct {
	// Models is the ordered list of remote model candidates, tried first to last.
	Models []string `json:"models" yaml:"models"`

	// APIKey authenticates against the remote model endpoint.
	APIKey string `json:"apiKey" yaml:"apiKey"`

	// RequestTimeout bounds one candidate attempt.
	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`

	// HistoryLimit caps how many chat messages are replayed into the context.
	HistoryLimit int `json:"historyLimit" yaml:"historyLimit"`

	// ContextWindowDays and ContextLimit bound the transactions loaded into
	// the context.
	ContextWindowDays int `json:"contextWindowDays" yaml:"contextWindowDays"`
	ContextLimit      int `json:"contextLimit" yaml:"contextLimit"`
}

// PubSubConfig defines Pub/Sub configuration for sync event publishing
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

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: INTEGRATIONS_SYNCWINDOWDAYS -> integrations.syncWindowDays
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
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

	applyIntegrationDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	cfg.Postgres.Replicas = buildReplicasFromEnv()

	return cfg, nil
}

func applyIntegrationDefaults(cfg *Config) {
	if cfg.Integrations == nil {
		cfg.Integrations = &IntegrationsConfig{}
	}
	if cfg.Integrations.SyncWindowDays <= 0 {
		cfg.Integrations.SyncWindowDays = 30
	}
	if cfg.Integrations.AdapterTimeout <= 0 {
		cfg.Integrations.AdapterTimeout = 15 * time.Second
	}
	if cfg.Integrations.RefreshMargin <= 0 {
		cfg.Integrations.RefreshMargin = 2 * time.Minute
	}
	if cfg.Integrations.SandboxData == nil {
		cfg.Integrations.SandboxData = &SandboxDataConfig{
			MinRecords:  8,
			MaxRecords:  25,
			MinAmount:   3,
			MaxAmount:   900,
			RecencyDays: 30,
		}
	}
	if cfg.Insight == nil {
		cfg.Insight = &InsightConfig{}
	}
	if cfg.Insight.RequestTimeout <= 0 {
		cfg.Insight.RequestTimeout = 20 * time.Second
	}
	if cfg.Insight.HistoryLimit <= 0 {
		cfg.Insight.HistoryLimit = 20
	}
	if cfg.Insight.ContextWindowDays <= 0 {
		cfg.Insight.ContextWindowDays = 90
	}
	if cfg.Insight.ContextLimit <= 0 {
		cfg.Insight.ContextLimit = 200
	}
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

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
