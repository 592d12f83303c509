package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rogerio-castellano/commerce-dashboard/internal/auth"
	"github.com/rogerio-castellano/commerce-dashboard/internal/http/ban"
	"github.com/rogerio-castellano/commerce-dashboard/internal/http/handlers"
	mw "github.com/rogerio-castellano/commerce-dashboard/internal/http/middleware"
	rl "github.com/rogerio-castellano/commerce-dashboard/internal/http/rate_limiter"
	"github.com/rogerio-castellano/commerce-dashboard/internal/http/router"
	"github.com/rogerio-castellano/commerce-dashboard/internal/redissvc"
	"github.com/rogerio-castellano/commerce-dashboard/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	banSummaryInterval = 24 * time.Hour
	shutdownTimeout    = 10 * time.Second
)

var errMissingSecret = errors.New("auth.jwt_secret is required")

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
	cmd.Flags().String("addr", ":8080", "listen address")
	cmd.Flags().String("redis-addr", "", "Redis address for rate limit bans, in-process when empty")
	a.bind("http.addr", cmd.Flags().Lookup("addr"))
	a.bind("redis.addr", cmd.Flags().Lookup("redis-addr"))
	return cmd
}

// banStore picks Redis when an address is configured and the in-process store otherwise.
func (a *app) banStore(ctx context.Context) (ban.Store, func(), error) {
	rc := a.cfg.Redis
	if rc.Addr == "" {
		a.log.Info("redis not configured, keeping bans in memory")
		return ban.NewMemoryStore(), func() {}, nil
	}
	rs, err := redissvc.Connect(ctx, rc.Addr, rc.Password, rc.DB)
	if err != nil {
		return nil, nil, err
	}
	return ban.NewRedisStore(rs), func() { _ = rs.Close() }, nil
}

func (a *app) serve(ctx context.Context) error {
	if a.cfg.Auth.JWTSecret == "" {
		return errMissingSecret
	}

	seed, releaseSeed, err := a.seedSource(ctx)
	if err != nil {
		return err
	}
	defer releaseSeed()

	bans, releaseBans, err := a.banStore(ctx)
	if err != nil {
		return err
	}
	defer releaseBans()

	sessions := store.NewSessions(seed, a.storeOptions(), a.log)
	defer sessions.Close()

	rc := a.cfg.RateLimit
	visitors := rl.NewVisitors(rc.RPS, rc.Burst)
	go visitors.StartVisitorCleanupLoop(ctx)
	go ban.StartDailyBanSummary(ctx, bans, a.log, banSummaryInterval)

	srv := &http.Server{
		Addr: a.cfg.HTTP.Addr,
		Handler: router.NewRouter(router.Deps{
			Server:   handlers.NewServer(sessions, a.log),
			Verifier: auth.NewVerifier(a.cfg.Auth.JWTSecret),
			Visitors: visitors,
			Bans:     bans,
			RateLimit: mw.RateLimitOptions{
				MaxStrikes: int64(rc.MaxStrikes),
				StrikeTTL:  rc.StrikeTTL,
				BanTTL:     rc.BanTTL,
			},
			Log: a.log,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("server running", zap.String("addr", srv.Addr), zap.String("seed", a.cfg.Seed.Source))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
