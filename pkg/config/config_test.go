package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.ListenAddress != ":8080" || cfg.Server.DebugAddress != ":8081" {
		t.Errorf("Unexpected server config %+v", cfg.Server)
	}
	if cfg.Browse.PageSize != 12 || cfg.Search.QuietPeriod != 300*time.Millisecond {
		t.Errorf("Unexpected browse defaults %+v %+v", cfg.Browse, cfg.Search)
	}
	if cfg.Timeouts.Shutdown != 15*time.Second || cfg.Cache.TTL != 10*time.Minute {
		t.Errorf("Unexpected timeouts %+v cache %+v", cfg.Timeouts, cfg.Cache)
	}
	if cfg.Catalog.Source != "data" {
		t.Errorf("Unexpected catalog source %q", cfg.Catalog.Source)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  listen_address: ":9000"
catalog:
  source: "https://cdn.example.com/catalog"
search:
  quiet_period: 500ms
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("REDIS_URL", "redis://localhost:6379/2")
	t.Setenv("SERVER_LISTEN_ADDRESS", ":9100")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.ListenAddress != ":9100" {
		t.Errorf("Expected env to override file, got %q", cfg.Server.ListenAddress)
	}
	if cfg.Catalog.Source != "https://cdn.example.com/catalog" || cfg.Search.QuietPeriod != 500*time.Millisecond {
		t.Errorf("Expected file values, got %+v %+v", cfg.Catalog, cfg.Search)
	}
	opts, ok, err := cfg.Redis.Options()
	if err != nil || !ok {
		t.Fatalf("Expected redis options, got %v %v", ok, err)
	}
	if opts.Addr != "localhost:6379" || opts.DB != 2 {
		t.Errorf("Unexpected redis options %s db %d", opts.Addr, opts.DB)
	}
}

func TestInvalidPageSize(t *testing.T) {
	t.Setenv("BROWSE_PAGE_SIZE", "0")
	if _, err := Load(t.TempDir()); err == nil {
		t.Errorf("Expected error for page size 0")
	}
}

func TestRedisOptions(t *testing.T) {
	if _, ok, err := (RedisConfig{}).Options(); ok || err != nil {
		t.Errorf("Expected no redis without url, got %v %v", ok, err)
	}
	opts, ok, err := RedisConfig{URL: "cache:6379", Password: "secret"}.Options()
	if err != nil || !ok || opts.Addr != "cache:6379" || opts.Password != "secret" {
		t.Errorf("Unexpected options %+v %v %v", opts, ok, err)
	}
}

func TestLogConfig(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)
	defer log.SetFormatter(&log.TextFormatter{})

	if err := (LogConfig{Level: "debug", Format: "json"}).Apply(); err != nil {
		t.Fatal(err)
	}
	if log.GetLevel() != log.DebugLevel {
		t.Errorf("Expected debug level, got %s", log.GetLevel())
	}
	if err := (LogConfig{Level: "loud"}).Apply(); err == nil {
		t.Errorf("Expected invalid level error")
	}
	if err := (LogConfig{Level: "info", Format: "xml"}).Apply(); err == nil {
		t.Errorf("Expected invalid format error")
	}
}
