package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	Internal   InternalConfig

	// Storage
	Postgres PostgresConfig

	// Venue calendar specifics
	Feed         FeedConfig
	CalendarSync CalendarSyncConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// InternalConfig guards the admin routes.
type InternalConfig struct {
	APIKey string
}

type PostgresConfig struct {
	Host           string
	Port           int
	User           string
	Password       string
	Database       string
	SSLMode        string
	MaxConns       int32
	MinConns       int32
	ConnectTimeout time.Duration
	MaxRetries     int
	RetryInterval  time.Duration
}

type FeedConfig struct {
	Enabled         bool
	CalendarName    string
	Timezone        string
	SiteURL         string // UID host, PRODID and subscription links
	QueryParam      string
	TokenParam      string
	Filename        string
	HorizonMonths   int
	EventLimit      int
	ResolverLimit   int
	RateLimitPerMin int
	TypeColors      map[string]string // category -> hex color
}

type CalendarSyncConfig struct {
	CalendarID  string
	AccessToken string
	Endpoint    string // empty means the public Google endpoint
	MaxEvents   int
	Timeout     time.Duration
	IDPrefix    string
	Schedule    string // cron expression for cmd/sync, empty runs once
}

const minHorizonMonths = 9

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/venue-calendar/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/venue-calendar/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.Internal.APIKey = viper.GetString("internal.api_key")

	// Postgres
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.Database = viper.GetString("postgres.database")
	cfg.Postgres.SSLMode = viper.GetString("postgres.ssl_mode")
	cfg.Postgres.MaxConns = viper.GetInt32("postgres.max_conns")
	cfg.Postgres.MinConns = viper.GetInt32("postgres.min_conns")
	cfg.Postgres.ConnectTimeout = viper.GetDuration("postgres.connect_timeout")
	cfg.Postgres.MaxRetries = viper.GetInt("postgres.max_retries")
	cfg.Postgres.RetryInterval = viper.GetDuration("postgres.retry_interval")

	// Feed
	cfg.Feed.Enabled = viper.GetBool("feed.enabled")
	cfg.Feed.CalendarName = viper.GetString("feed.calendar_name")
	cfg.Feed.Timezone = viper.GetString("feed.timezone")
	cfg.Feed.SiteURL = strings.TrimRight(viper.GetString("feed.site_url"), "/")
	cfg.Feed.QueryParam = viper.GetString("feed.query_param")
	cfg.Feed.TokenParam = viper.GetString("feed.token_param")
	cfg.Feed.Filename = viper.GetString("feed.filename")
	cfg.Feed.HorizonMonths = viper.GetInt("feed.horizon_months")
	cfg.Feed.EventLimit = viper.GetInt("feed.event_limit")
	cfg.Feed.ResolverLimit = viper.GetInt("feed.resolver_limit")
	cfg.Feed.RateLimitPerMin = viper.GetInt("feed.rate_limit_per_min")
	cfg.Feed.TypeColors = viper.GetStringMapString("feed.type_colors")

	// Calendar sync
	cfg.CalendarSync.CalendarID = viper.GetString("calendar_sync.calendar_id")
	cfg.CalendarSync.AccessToken = viper.GetString("calendar_sync.access_token")
	cfg.CalendarSync.Endpoint = viper.GetString("calendar_sync.endpoint")
	cfg.CalendarSync.MaxEvents = viper.GetInt("calendar_sync.max_events")
	cfg.CalendarSync.Timeout = viper.GetDuration("calendar_sync.timeout")
	cfg.CalendarSync.IDPrefix = viper.GetString("calendar_sync.id_prefix")
	cfg.CalendarSync.Schedule = viper.GetString("calendar_sync.schedule")

	normalize(cfg)
	return cfg, nil
}

// normalize clamps numeric settings into their valid ranges.
func normalize(cfg *Config) {
	if cfg.Feed.HorizonMonths < minHorizonMonths {
		cfg.Feed.HorizonMonths = minHorizonMonths
	}
	if cfg.Feed.EventLimit < 1 {
		cfg.Feed.EventLimit = 1
	}
	if cfg.Feed.ResolverLimit < 1 {
		cfg.Feed.ResolverLimit = 1
	}
	if cfg.CalendarSync.MaxEvents < 1 {
		cfg.CalendarSync.MaxEvents = 1
	}
	if cfg.CalendarSync.Timeout <= 0 {
		cfg.CalendarSync.Timeout = 15 * time.Second
	}
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.database", "venue")
	viper.SetDefault("postgres.ssl_mode", "disable")
	viper.SetDefault("postgres.max_conns", 10)
	viper.SetDefault("postgres.min_conns", 1)
	viper.SetDefault("postgres.connect_timeout", "5s")
	viper.SetDefault("postgres.max_retries", 5)
	viper.SetDefault("postgres.retry_interval", "2s")

	viper.SetDefault("feed.enabled", true)
	viper.SetDefault("feed.calendar_name", "Events")
	viper.SetDefault("feed.timezone", "Europe/Paris")
	viper.SetDefault("feed.query_param", "calendar_feed")
	viper.SetDefault("feed.token_param", "token")
	viper.SetDefault("feed.filename", "events.ics")
	viper.SetDefault("feed.horizon_months", 12)
	viper.SetDefault("feed.event_limit", 240)
	viper.SetDefault("feed.resolver_limit", 180)
	viper.SetDefault("feed.rate_limit_per_min", 120)

	viper.SetDefault("calendar_sync.max_events", 200)
	viper.SetDefault("calendar_sync.timeout", "15s")
	viper.SetDefault("calendar_sync.id_prefix", "evt")
}
