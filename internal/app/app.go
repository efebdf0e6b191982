// Package app wires configuration, storage, services and the HTTP transport
// into a runnable server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/alfred-backend/internal/auth"
	"github.com/heartmarshall/alfred-backend/internal/config"
	"github.com/heartmarshall/alfred-backend/internal/domain"
	authsvc "github.com/heartmarshall/alfred-backend/internal/service/auth"
	"github.com/heartmarshall/alfred-backend/internal/service/record"
	"github.com/heartmarshall/alfred-backend/internal/transport/middleware"
	"github.com/heartmarshall/alfred-backend/internal/transport/rest"
)

// App holds the assembled HTTP handler and the resources behind it.
type App struct {
	handler http.Handler
	closers []func()
}

// New opens storage and the session store, seeds demo data when enabled and
// builds the router. Call Close to release what New opened.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (_ *App, err error) {
	a := &App{}
	defer func() {
		if err != nil {
			a.Close()
		}
	}()

	st, err := openStorage(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, st.close)

	sessions, closeSessions, err := openSessions(ctx, cfg.Session, logger)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}
	a.closers = append(a.closers, closeSessions)

	passwords, err := auth.NewPasswordVerifier(cfg.Auth.PasswordMode, cfg.Auth.BcryptCost)
	if err != nil {
		return nil, err
	}

	if cfg.Demo.Seed {
		if _, err := seedDemo(ctx, logger, st, passwords, cfg.Auth.DemoUsername, time.Now()); err != nil {
			logger.ErrorContext(ctx, "demo data seeding failed", slog.String("error", err.Error()))
		}
	}

	authService := authsvc.NewService(logger, st.users, sessions, passwords, cfg.Session.MaxAge)
	policy, err := authsvc.NewPolicy(cfg.Auth.Policy, st.users, cfg.Auth.DemoUsername)
	if err != nil {
		return nil, err
	}
	signer := auth.NewCookieSigner(cfg.Session.Secret, cfg.Auth.Issuer)

	opts := record.Options{
		StrictPatch:      cfg.API.StrictPatch,
		EnforceOwnership: cfg.API.EnforceOwnership,
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupPeriod)
	a.closers = append(a.closers, limiter.Stop)

	global := []middleware.Middleware{
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	}

	deps := rest.RouterDeps{
		Health: rest.NewHealthHandler(Version,
			rest.Component{Name: "storage", Ping: st.pinger},
			rest.Component{Name: "sessions", Ping: sessions},
		),
		Auth: rest.NewAuthHandler(authService, signer, rest.CookieOptions{
			Name:   cfg.Session.CookieName,
			Secure: cfg.Session.Secure,
		}, logger),
		Resources: map[domain.Kind]rest.Resource{
			domain.KindTask:    rest.NewResourceHandler[domain.Task](record.NewService(logger, st.tasks, record.TaskSchema, opts), logger),
			domain.KindEvent:   rest.NewResourceHandler[domain.Event](record.NewService(logger, st.events, record.EventSchema, opts), logger),
			domain.KindMessage: rest.NewResourceHandler[domain.Message](record.NewService(logger, st.messages, record.MessageSchema, opts), logger),
			domain.KindBill:    rest.NewResourceHandler[domain.Bill](record.NewService(logger, st.bills, record.BillSchema, opts), logger),
		},
		RequireUser: middleware.RequireUser(logger, policy),
		LoginLimit:  limiter.Limit(cfg.RateLimit.LoginPerMinute),
	}

	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		global = append(global, middleware.NewMetrics(reg).Handler())
		deps.Metrics = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
		deps.MetricsPath = cfg.Metrics.Path
	}

	deps.Global = append(global,
		middleware.Session(logger, cfg.Session.CookieName, signer, authService),
		middleware.Logger(logger),
	)

	a.handler = rest.NewRouter(deps)
	return a, nil
}

// Handler returns the application's root HTTP handler.
func (a *App) Handler() http.Handler { return a.handler }

// Close releases storage, sessions and background workers in reverse order.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

// Run builds the application and serves HTTP until ctx is cancelled, then
// shuts down gracefully within server.shutdown_timeout.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("storage", cfg.Storage.Driver),
		slog.String("session_store", cfg.Session.Store),
		slog.String("auth_policy", cfg.Auth.Policy),
	)

	a, err := New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      a.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server stopped gracefully")
	return nil
}
