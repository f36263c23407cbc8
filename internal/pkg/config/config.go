package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, relay credential, etc.)
// - default: Values common across all environments (timezone, timeout, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Log       LogConfig
	Relay     RelayConfig
	Catalog   CatalogConfig
	News      NewsConfig
	Instagram InstagramConfig
}

type ServerConfig struct {
	Port     string `envconfig:"PORT" required:"true"`
	TimeZone string `envconfig:"SHOP_TIMEZONE" default:"Asia/Tokyo"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

// RelayConfig configures the chat-notification relay. An empty token with
// Mode=auto selects demo mode: no network I/O, delivery is simulated.
type RelayConfig struct {
	URL          string        `envconfig:"RELAY_URL" default:"https://notify-api.line.me/api/notify"`
	Token        string        `envconfig:"RELAY_TOKEN" default:""`
	Mode         string        `envconfig:"RELAY_MODE" default:"auto"`                 // auto | demo | live
	ResponseMode string        `envconfig:"RELAY_RESPONSE_MODE" default:"observable"` // observable | opaque
	Timeout      time.Duration `envconfig:"RELAY_TIMEOUT" default:"10s"`
	DemoDelay    time.Duration `envconfig:"RELAY_DEMO_DELAY" default:"1s"`
}

type CatalogConfig struct {
	Path string `envconfig:"CATALOG_PATH" default:"config/offerings.json"`
}

type NewsConfig struct {
	UpdatesPath string `envconfig:"NEWS_UPDATES_PATH" default:"config/news.json"`
	EventsPath  string `envconfig:"NEWS_EVENTS_PATH" default:"config/event_news.json"`
}

type InstagramConfig struct {
	BaseURL     string        `envconfig:"INSTAGRAM_BASE_URL" default:"https://graph.instagram.com"`
	AccessToken string        `envconfig:"INSTAGRAM_ACCESS_TOKEN" default:""`
	Limit       int           `envconfig:"INSTAGRAM_LIMIT" default:"9"`
	Timeout     time.Duration `envconfig:"INSTAGRAM_TIMEOUT" default:"10s"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:     "8889", // Test port
			TimeZone: "Asia/Tokyo",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		Relay: RelayConfig{
			Mode:         "demo",
			ResponseMode: "observable",
			Timeout:      time.Second,
			DemoDelay:    time.Millisecond,
		},
	}
}
