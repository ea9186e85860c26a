package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath = "."

	defaultRegionCapacity   = 20
	defaultRegionRadius     = 100.0
	defaultDebounceInterval = 5 * time.Second
	defaultNearbyLimit      = 20
	defaultNearbyTimeout    = 10 * time.Second
	defaultHistoryKey       = "engagement/notification_history.json"
	defaultHistoryBucketURL = "mem://"
	defaultMonitorMaxRegion = 20
	defaultMonitorQueueSize = 64
)

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

	// Engagement configures the geofence engine and its rate limits
	Engagement *EngagementConfig `json:"engagement" yaml:"engagement"`

	// Nearby configures the nearby store lookup API
	Nearby *NearbyConfig `json:"nearby" yaml:"nearby"`

	// History configures where the notification history is persisted
	History *HistoryConfig `json:"history" yaml:"history"`

	// Monitor configures the software region monitor
	Monitor *MonitorConfig `json:"monitor" yaml:"monitor"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for region entry events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// EngagementConfig defines the engagement engine settings
type EngagementConfig struct {
	// Maximum number of regions monitored at once
	RegionCapacity int `json:"regionCapacity" yaml:"regionCapacity"`

	// Radius in meters of every monitored region
	RegionRadius float64 `json:"regionRadius" yaml:"regionRadius"`

	// Minimum interval between two accepted location fixes
	DebounceInterval time.Duration `json:"debounceInterval" yaml:"debounceInterval"`

	// IANA time zone used for calendar days and the allowed hour window
	TimeZone string `json:"timeZone" yaml:"timeZone"`

	// Disables the hour-of-day check, for debugging only
	IgnoreHourWindow bool `json:"ignoreHourWindow" yaml:"ignoreHourWindow"`

	RateLimit RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`
}

// RateLimitConfig defines the notification frequency caps
type RateLimitConfig struct {
	DailyLimit           int `json:"dailyLimit" yaml:"dailyLimit"`
	WeeklyLimit          int `json:"weeklyLimit" yaml:"weeklyLimit"`
	MonthlyLimit         int `json:"monthlyLimit" yaml:"monthlyLimit"`
	CooldownHours        int `json:"cooldownHours" yaml:"cooldownHours"`
	MerchantWeeklyLimit  int `json:"merchantWeeklyLimit" yaml:"merchantWeeklyLimit"`
	MerchantMonthlyLimit int `json:"merchantMonthlyLimit" yaml:"merchantMonthlyLimit"`
	AllowedHourStart     int `json:"allowedHourStart" yaml:"allowedHourStart"`
	AllowedHourEnd       int `json:"allowedHourEnd" yaml:"allowedHourEnd"`
}

// NearbyConfig defines the nearby store API client settings
type NearbyConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	APIKey  string        `json:"apiKey" yaml:"apiKey"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
	Limit   int           `json:"limit" yaml:"limit"`

	// Responses are cached per ~100m cell when greater than zero
	CacheTTL time.Duration `json:"cacheTtl" yaml:"cacheTtl"`
}

// HistoryConfig defines the persisted notification history location
type HistoryConfig struct {
	// gocloud.dev blob URL, e.g. file:///var/lib/engaged or gs://bucket
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
	Key       string `json:"key" yaml:"key"`
}

// MonitorConfig defines the software region monitor settings
type MonitorConfig struct {
	MaxRegions int `json:"maxRegions" yaml:"maxRegions"`
	QueueSize  int `json:"queueSize" yaml:"queueSize"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	DeviceToken     string `json:"deviceToken" yaml:"deviceToken"`
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

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// ENGAGEMENT_RATELIMIT_DAILYLIMIT -> engagement.rateLimit.dailyLimit
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

	return cfg, nil
}

// ApplyDefaults fills every optional section that was left out of the config file
func (c *Config) ApplyDefaults() {
	if c.Engagement == nil {
		c.Engagement = &EngagementConfig{}
	}
	if c.Engagement.RegionCapacity <= 0 {
		c.Engagement.RegionCapacity = defaultRegionCapacity
	}
	if c.Engagement.RegionRadius <= 0 {
		c.Engagement.RegionRadius = defaultRegionRadius
	}
	if c.Engagement.DebounceInterval <= 0 {
		c.Engagement.DebounceInterval = defaultDebounceInterval
	}
	c.Engagement.RateLimit = c.Engagement.RateLimit.WithDefaults()

	if c.Nearby == nil {
		c.Nearby = &NearbyConfig{}
	}
	if c.Nearby.Limit <= 0 {
		c.Nearby.Limit = defaultNearbyLimit
	}
	if c.Nearby.Timeout <= 0 {
		c.Nearby.Timeout = defaultNearbyTimeout
	}

	if c.History == nil {
		c.History = &HistoryConfig{}
	}
	if strings.TrimSpace(c.History.BucketURL) == "" {
		c.History.BucketURL = defaultHistoryBucketURL
	}
	if strings.TrimSpace(c.History.Key) == "" {
		c.History.Key = defaultHistoryKey
	}

	if c.Monitor == nil {
		c.Monitor = &MonitorConfig{}
	}
	if c.Monitor.MaxRegions <= 0 {
		c.Monitor.MaxRegions = defaultMonitorMaxRegion
	}
	if c.Monitor.QueueSize <= 0 {
		c.Monitor.QueueSize = defaultMonitorQueueSize
	}
}

// DefaultRateLimit returns the production notification caps
func DefaultRateLimit() RateLimitConfig {
	return RateLimitConfig{
		DailyLimit:           2,
		WeeklyLimit:          7,
		MonthlyLimit:         20,
		CooldownHours:        24,
		MerchantWeeklyLimit:  3,
		MerchantMonthlyLimit: 5,
		AllowedHourStart:     10,
		AllowedHourEnd:       20,
	}
}

// WithDefaults fills every unset cap from DefaultRateLimit.
// An unset AllowedHourEnd takes the default window end; AllowedHourStart 0 is only
// replaced when the end was unset too, so an explicit window starting at midnight survives.
func (r RateLimitConfig) WithDefaults() RateLimitConfig {
	defaults := DefaultRateLimit()

	if r.DailyLimit <= 0 {
		r.DailyLimit = defaults.DailyLimit
	}
	if r.WeeklyLimit <= 0 {
		r.WeeklyLimit = defaults.WeeklyLimit
	}
	if r.MonthlyLimit <= 0 {
		r.MonthlyLimit = defaults.MonthlyLimit
	}
	if r.CooldownHours <= 0 {
		r.CooldownHours = defaults.CooldownHours
	}
	if r.MerchantWeeklyLimit <= 0 {
		r.MerchantWeeklyLimit = defaults.MerchantWeeklyLimit
	}
	if r.MerchantMonthlyLimit <= 0 {
		r.MerchantMonthlyLimit = defaults.MerchantMonthlyLimit
	}
	if r.AllowedHourEnd <= 0 {
		r.AllowedHourEnd = defaults.AllowedHourEnd
		if r.AllowedHourStart <= 0 {
			r.AllowedHourStart = defaults.AllowedHourStart
		}
	}

	return r
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
