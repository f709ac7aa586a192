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

	defaultExploreRadiusMeters   = 10000
	defaultMaxSearchRadiusMeters = 50000
	defaultQueryTimeout          = 10 * time.Second

	defaultTrackingSearchRadiusMeters = 200
	defaultTrackingMinInterval        = 30 * time.Second
	defaultTrackingMinMovementMeters  = 10
	defaultPublishTimeout             = 10 * time.Second

	defaultNotificationRadiusMeters    = 50
	defaultMaxNotificationRadiusMeters = 5000
	defaultActiveStartHour             = 8
	defaultActiveEndHour               = 22
	defaultTimeZone                    = "Asia/Jerusalem"

	defaultRateLimitPerSecond = 5
	defaultRateLimitBurst     = 10
	defaultRateLimitExpiresIn = 3 * time.Minute
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
		// AutoMigrate creates or extends the catalog, profile, device and
		// notification tables on startup.
		AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// SecretKey.Access verifies access tokens issued by the account service.
	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Proximity *ProximityConfig `json:"proximity" yaml:"proximity"`

	Tracking *TrackingConfig `json:"tracking" yaml:"tracking"`

	Profile *ProfileConfig `json:"profile" yaml:"profile"`

	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	// Catalog configures the administrative catalog load
	Catalog *CatalogConfig `json:"catalog" yaml:"catalog"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// ProximityConfig defines the search engine defaults
type ProximityConfig struct {
	// Radius used by searchByItemName when the caller does not pass one
	ExploreRadiusMeters float64 `json:"exploreRadiusMeters" yaml:"exploreRadiusMeters"`

	// Upper bound accepted for any search radius
	MaxSearchRadiusMeters float64 `json:"maxSearchRadiusMeters" yaml:"maxSearchRadiusMeters"`

	// Timeout applied to every catalog round trip
	QueryTimeout time.Duration `json:"queryTimeout" yaml:"queryTimeout"`
}

// TrackingConfig defines background tracking behaviour
type TrackingConfig struct {
	// Search radius for passive checks; never smaller than the user's notification radius
	SearchRadiusMeters float64 `json:"searchRadiusMeters" yaml:"searchRadiusMeters"`

	// A report is skipped when both the elapsed time and the movement are below these
	MinInterval       time.Duration `json:"minInterval" yaml:"minInterval"`
	MinMovementMeters float64       `json:"minMovementMeters" yaml:"minMovementMeters"`

	// Timeout for publishing one notification event
	PublishTimeout time.Duration `json:"publishTimeout" yaml:"publishTimeout"`
}

// ProfileConfig defines defaults applied to new proximity profiles
type ProfileConfig struct {
	DefaultNotificationRadiusMeters float64 `json:"defaultNotificationRadiusMeters" yaml:"defaultNotificationRadiusMeters"`
	MaxNotificationRadiusMeters     float64 `json:"maxNotificationRadiusMeters" yaml:"maxNotificationRadiusMeters"`
	DefaultActiveStartHour          int     `json:"defaultActiveStartHour" yaml:"defaultActiveStartHour"`
	DefaultActiveEndHour            int     `json:"defaultActiveEndHour" yaml:"defaultActiveEndHour"`
	DefaultTimeZone                 string  `json:"defaultTimeZone" yaml:"defaultTimeZone"`
}

// RateLimitConfig defines per-user limits on the interactive search routes
type RateLimitConfig struct {
	Enabled           bool          `json:"enabled" yaml:"enabled"`
	RequestsPerSecond float64       `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	Burst             int           `json:"burst" yaml:"burst"`
	ExpiresIn         time.Duration `json:"expiresIn" yaml:"expiresIn"`
}

// CatalogConfig defines where the catalog seed is read from
type CatalogConfig struct {
	// gocloud.dev blob bucket URL, e.g. file:///var/data or gs://bucket
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// Object key of the seed document inside the bucket
	SeedKey string `json:"seedKey" yaml:"seedKey"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
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
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
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

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	applyDefaults(cfg)

	return cfg, nil
}

// applyDefaults fills every optional section so callers never nil-check them.
func applyDefaults(cfg *Config) {
	if cfg.Proximity == nil {
		cfg.Proximity = &ProximityConfig{}
	}
	if cfg.Proximity.ExploreRadiusMeters <= 0 {
		cfg.Proximity.ExploreRadiusMeters = defaultExploreRadiusMeters
	}
	if cfg.Proximity.MaxSearchRadiusMeters <= 0 {
		cfg.Proximity.MaxSearchRadiusMeters = defaultMaxSearchRadiusMeters
	}
	if cfg.Proximity.QueryTimeout <= 0 {
		cfg.Proximity.QueryTimeout = defaultQueryTimeout
	}

	if cfg.Tracking == nil {
		cfg.Tracking = &TrackingConfig{}
	}
	if cfg.Tracking.SearchRadiusMeters <= 0 {
		cfg.Tracking.SearchRadiusMeters = defaultTrackingSearchRadiusMeters
	}
	if cfg.Tracking.MinInterval <= 0 {
		cfg.Tracking.MinInterval = defaultTrackingMinInterval
	}
	if cfg.Tracking.MinMovementMeters <= 0 {
		cfg.Tracking.MinMovementMeters = defaultTrackingMinMovementMeters
	}
	if cfg.Tracking.PublishTimeout <= 0 {
		cfg.Tracking.PublishTimeout = defaultPublishTimeout
	}

	if cfg.Profile == nil {
		cfg.Profile = &ProfileConfig{
			DefaultActiveStartHour: defaultActiveStartHour,
			DefaultActiveEndHour:   defaultActiveEndHour,
		}
	}
	if cfg.Profile.DefaultNotificationRadiusMeters <= 0 {
		cfg.Profile.DefaultNotificationRadiusMeters = defaultNotificationRadiusMeters
	}
	if cfg.Profile.MaxNotificationRadiusMeters <= 0 {
		cfg.Profile.MaxNotificationRadiusMeters = defaultMaxNotificationRadiusMeters
	}
	if strings.TrimSpace(cfg.Profile.DefaultTimeZone) == "" {
		cfg.Profile.DefaultTimeZone = defaultTimeZone
	}

	if cfg.RateLimit == nil {
		cfg.RateLimit = &RateLimitConfig{}
	}
	if cfg.RateLimit.RequestsPerSecond <= 0 {
		cfg.RateLimit.RequestsPerSecond = defaultRateLimitPerSecond
	}
	if cfg.RateLimit.Burst <= 0 {
		cfg.RateLimit.Burst = defaultRateLimitBurst
	}
	if cfg.RateLimit.ExpiresIn <= 0 {
		cfg.RateLimit.ExpiresIn = defaultRateLimitExpiresIn
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
