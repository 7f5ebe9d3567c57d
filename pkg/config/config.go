package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ionut85/ai-marketing-tools-directory/pkg/common"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds all configuration for the directory server
type Config struct {
	Server   ServerConfig         `mapstructure:"server"`
	Timeouts common.TimeoutConfig `mapstructure:"timeouts"`
	Catalog  CatalogConfig        `mapstructure:"catalog"`
	Site     SiteConfig           `mapstructure:"site"`
	Redis    RedisConfig          `mapstructure:"redis"`
	Cache    CacheConfig          `mapstructure:"cache"`
	Rabbit   RabbitConfig         `mapstructure:"rabbit"`
	Tracking TrackingConfig       `mapstructure:"tracking"`
	Browse   BrowseConfig         `mapstructure:"browse"`
	Search   SearchConfig         `mapstructure:"search"`
	Log      LogConfig            `mapstructure:"log"`
}

type ServerConfig struct {
	ListenAddress   string `mapstructure:"listen_address"`
	DebugAddress    string `mapstructure:"debug_address"`
	EnableProfiling bool   `mapstructure:"enable_profiling"`
}

type CatalogConfig struct {
	// Source is a directory or an http(s) base url.
	Source string `mapstructure:"source"`
}

type SiteConfig struct {
	Title       string `mapstructure:"title"`
	Description string `mapstructure:"description"`
	// URL pins the base url of generated links, derived per request when empty.
	URL      string `mapstructure:"url"`
	Homepage string `mapstructure:"homepage"`
}

type RedisConfig struct {
	URL      string `mapstructure:"url"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

type RabbitConfig struct {
	URL string `mapstructure:"url"`
}

type TrackingConfig struct {
	Prefix string `mapstructure:"prefix"`
}

type BrowseConfig struct {
	PageSize int `mapstructure:"page_size"`
}

type SearchConfig struct {
	QuietPeriod time.Duration `mapstructure:"quiet_period"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.listen_address", ":8080")
	v.SetDefault("server.debug_address", ":8081")
	v.SetDefault("server.enable_profiling", false)

	timeouts := common.DefaultTimeoutConfig()
	v.SetDefault("timeouts.read_header", timeouts.ReadHeader)
	v.SetDefault("timeouts.read", timeouts.Read)
	v.SetDefault("timeouts.write", timeouts.Write)
	v.SetDefault("timeouts.idle", timeouts.Idle)
	v.SetDefault("timeouts.shutdown", timeouts.Shutdown)
	v.SetDefault("timeouts.hook", timeouts.Hook)

	v.SetDefault("catalog.source", "data")

	v.SetDefault("site.title", "GenAI Marketing Landscape")
	v.SetDefault("site.description", "")
	v.SetDefault("site.url", "")
	v.SetDefault("site.homepage", "https://tools.hypd.ai")

	v.SetDefault("redis.url", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("cache.ttl", 10*time.Minute)

	v.SetDefault("rabbit.url", "")
	v.SetDefault("tracking.prefix", "directory")

	v.SetDefault("browse.page_size", 12)
	v.SetDefault("search.quiet_period", 300*time.Millisecond)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Load reads config.yaml from the given directories (the working directory
// when none are given) with environment variable overrides, e.g.
// REDIS_URL for redis.url. A missing config file is not an error.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{"."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.WithField("file", v.ConfigFileUsed()).Info("config file loaded")
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if config.Browse.PageSize < 1 {
		return nil, fmt.Errorf("browse.page_size must be positive, got %d", config.Browse.PageSize)
	}
	return &config, nil
}

// Options turns the redis settings into client options. ok is false when no
// redis url is configured.
func (c RedisConfig) Options() (opts *redis.Options, ok bool, err error) {
	if c.URL == "" {
		return nil, false, nil
	}
	opts, err = redis.ParseURL(c.URL)
	if err != nil {
		// plain host:port
		if !strings.Contains(c.URL, "://") {
			opts, err = &redis.Options{Addr: c.URL}, nil
		} else {
			return nil, false, fmt.Errorf("invalid redis url: %w", err)
		}
	}
	if c.Password != "" {
		opts.Password = c.Password
	}
	if c.DB != 0 {
		opts.DB = c.DB
	}
	return opts, true, nil
}

// Apply configures the standard logger.
func (c LogConfig) Apply() error {
	level, err := log.ParseLevel(c.Level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	log.SetLevel(level)
	switch c.Format {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	case "text", "":
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("unknown log format %q", c.Format)
	}
	return nil
}
