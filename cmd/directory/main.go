package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"

	"github.com/ionut85/ai-marketing-tools-directory/pkg/catalog"
	"github.com/ionut85/ai-marketing-tools-directory/pkg/common"
	"github.com/ionut85/ai-marketing-tools-directory/pkg/config"
	"github.com/ionut85/ai-marketing-tools-directory/pkg/seo"
	"github.com/ionut85/ai-marketing-tools-directory/pkg/server"
	"github.com/ionut85/ai-marketing-tools-directory/pkg/tracking"
	"github.com/ionut85/ai-marketing-tools-directory/pkg/types"
	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

var configDir = flag.String("config", ".", "directory containing config.yaml")

func main() {
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warnf("Could not load .env file: %v", err)
	}

	cfg, err := config.Load(*configDir)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Log.Apply(); err != nil {
		log.Fatalf("Invalid log configuration: %v", err)
	}

	ctx := context.Background()
	source := catalog.OpenSource(cfg.Catalog.Source)
	cat, err := catalog.Load(ctx, source)
	if err != nil {
		log.Fatalf("Failed to load catalog from %s: %v", source, err)
	}

	hooks := []common.ShutdownHook{}
	opts := server.Options{
		Site: seo.Site{
			Title:       cfg.Site.Title,
			Description: cfg.Site.Description,
			Homepage:    cfg.Site.Homepage,
		},
		BaseURL:  cfg.Site.URL,
		CacheTTL: cfg.Cache.TTL,
		Settings: server.ClientSettings{
			PageSize:      cfg.Browse.PageSize,
			QuietPeriodMs: cfg.Search.QuietPeriod.Milliseconds(),
		},
	}

	redisOpts, hasRedis, err := cfg.Redis.Options()
	if err != nil {
		log.Fatalf("Invalid redis configuration: %v", err)
	}
	if hasRedis {
		client := redis.NewClient(redisOpts)
		if err := client.Ping(ctx).Err(); err != nil {
			log.Warnf("Redis not reachable, documents will be rendered locally: %v", err)
		}
		cache := server.NewCacheWithClient(client, nil)
		opts.Cache = cache
		hooks = append(hooks, func(ctx context.Context) error { return cache.Close() })
		log.WithField("addr", redisOpts.Addr).Info("document cache distribution enabled")
	}

	var tracker types.Tracking
	if cfg.Rabbit.URL != "" {
		rt, err := tracking.NewRabbitTracking(cfg.Rabbit.URL, cfg.Tracking.Prefix)
		if err != nil {
			log.Errorf("Failed to connect to rabbitmq for tracking: %v", err)
		} else {
			tracker = rt
		}
	} else if log.IsLevelEnabled(log.DebugLevel) {
		tracker = tracking.NewLogTracking()
	}
	if tracker != nil {
		opts.Tracking = tracker
		hooks = append(hooks, func(ctx context.Context) error { return tracker.Close() })
	}

	ws := server.NewWebServer(cat, opts)

	if cfg.Rabbit.URL != "" {
		conn, err := amqp.DialConfig(cfg.Rabbit.URL, amqp.Config{
			Properties: amqp.NewConnectionProperties(),
		})
		if err != nil {
			log.Errorf("Failed to connect to rabbitmq for catalog changes: %v", err)
		} else {
			if err := ws.ListenForCatalogChanges(conn, cfg.Tracking.Prefix, source); err != nil {
				log.Errorf("Failed to listen for catalog changes: %v", err)
			} else {
				log.Info("Listening for catalog changes")
			}
			hooks = append(hooks, func(ctx context.Context) error { return conn.Close() })
		}
	}

	public := common.NewServerWithTimeouts(&http.Server{
		Addr:    cfg.Server.ListenAddress,
		Handler: ws.Handler(),
	}, cfg.Timeouts)
	debug := common.NewServerWithTimeouts(&http.Server{
		Addr:    cfg.Server.DebugAddress,
		Handler: server.DebugHandler(cfg.Server.EnableProfiling),
	}, cfg.Timeouts)
	// profiles run longer than regular requests
	debug.WriteTimeout = 0

	err = common.RunServersWithShutdown(ctx, cfg.Timeouts.Shutdown, cfg.Timeouts.Hook, []common.NamedServer{
		{Name: "directory", Server: public},
		{Name: "debug", Server: debug},
	}, hooks...)
	if err != nil {
		log.Fatalf("Server exited with error: %v", err)
	}
	log.Info("Server gracefully stopped")
}
