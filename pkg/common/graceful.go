package common

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ShutdownHook is a function executed after a termination signal is received
// but before the HTTP servers begin their graceful shutdown. If a hook returns
// an error it will be logged; shutdown continues regardless.
type ShutdownHook func(ctx context.Context) error

// NamedServer pairs a server with the name used in log lines.
type NamedServer struct {
	Name   string
	Server *http.Server
	// Listener is optional, when nil the server listens on Server.Addr.
	Listener net.Listener
}

func (s NamedServer) serve() error {
	log.WithFields(log.Fields{"server": s.Name, "addr": s.Server.Addr}).Info("starting server")
	var err error
	if s.Listener != nil {
		err = s.Server.Serve(s.Listener)
	} else {
		err = s.Server.ListenAndServe()
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// RunServersWithShutdown starts all servers and blocks until ctx is cancelled,
// a termination signal (SIGINT or SIGTERM) is received or one of the servers
// fails. It then runs the hooks in order, each with its own timeout inside the
// overall shutdown deadline, and finally shuts the servers down.
//
// Typical usage in main:
//
//	err := common.RunServersWithShutdown(ctx, cfg.Shutdown, cfg.Hook,
//		[]common.NamedServer{{Name: "public", Server: srv}}, closeTracker)
func RunServersWithShutdown(ctx context.Context, shutdownTimeout, hookTimeout time.Duration, servers []NamedServer, hooks ...ShutdownHook) error {
	if hookTimeout <= 0 {
		hookTimeout = 5 * time.Second
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	for _, s := range servers {
		g.Go(s.serve)
	}
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		runHooks(shutdownCtx, hookTimeout, hooks)

		var errs []error
		for _, s := range servers {
			if err := s.Server.Shutdown(shutdownCtx); err != nil {
				log.WithError(err).WithField("server", s.Name).Error("graceful shutdown failed")
				errs = append(errs, err)
				continue
			}
			log.WithField("server", s.Name).Info("shutdown complete")
		}
		return errors.Join(errs...)
	})
	return g.Wait()
}

func runHooks(ctx context.Context, hookTimeout time.Duration, hooks []ShutdownHook) {
	for i, h := range hooks {
		if h == nil {
			continue
		}
		hCtx, hCancel := context.WithTimeout(ctx, hookTimeout)
		if err := h(hCtx); err != nil {
			log.WithError(err).Errorf("shutdown hook %d failed", i)
		}
		if errors.Is(hCtx.Err(), context.DeadlineExceeded) {
			log.Warnf("shutdown hook %d timed out", i)
		}
		hCancel()
	}
}

// TimeoutConfig holds server and shutdown related timeouts (all durations).
type TimeoutConfig struct {
	ReadHeader time.Duration `mapstructure:"read_header"`
	Read       time.Duration `mapstructure:"read"`
	Write      time.Duration `mapstructure:"write"`
	Idle       time.Duration `mapstructure:"idle"`
	Shutdown   time.Duration `mapstructure:"shutdown"`
	Hook       time.Duration `mapstructure:"hook"`
}

func DefaultTimeoutConfig() TimeoutConfig {
	return TimeoutConfig{
		ReadHeader: 5 * time.Second,
		Read:       15 * time.Second,
		Write:      30 * time.Second,
		Idle:       60 * time.Second,
		Shutdown:   15 * time.Second,
		Hook:       5 * time.Second,
	}
}

// NewServerWithTimeouts attaches timeout settings to an existing *http.Server or creates a new one if nil.
func NewServerWithTimeouts(base *http.Server, cfg TimeoutConfig) *http.Server {
	if base == nil {
		base = &http.Server{}
	}
	base.ReadHeaderTimeout = cfg.ReadHeader
	base.ReadTimeout = cfg.Read
	base.WriteTimeout = cfg.Write
	base.IdleTimeout = cfg.Idle
	return base
}
