package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/frontdesk/internal/api"
	"github.com/mesh-intelligence/frontdesk/internal/logging"
	"github.com/mesh-intelligence/frontdesk/internal/sqlite"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(flags *rootFlags) *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the REST API for the configured variant",
		Long: "Open the variant's database, create the schema and seed rows if needed,\n" +
			"and serve the REST API until interrupted. Failing to open the database\n" +
			"aborts startup.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(flags)
			if err != nil {
				return userError(err)
			}
			if port != 0 {
				s.Port = port
			}
			logger, err := logging.New(cmd.ErrOrStderr(), logging.Options{Level: s.LogLevel, Format: s.LogFormat})
			if err != nil {
				return userError(err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			ln, err := net.Listen("tcp", net.JoinHostPort("", strconv.Itoa(s.Port)))
			if err != nil {
				return sysError(fmt.Errorf("listen on port %d: %w", s.Port, err))
			}
			return serve(ctx, ln, s, logger)
		},
	}
	cmd.Flags().IntVar(&port, "port", 0, "HTTP port (default: 5000 for gym, 5001 for hospital)")
	return cmd
}

// serve attaches the backend and serves the API on ln until ctx is done, then
// shuts the server down gracefully and detaches. ln is closed on return.
func serve(ctx context.Context, ln net.Listener, s *settings, logger zerolog.Logger) error {
	logger = logger.With().Str("variant", s.Storage.Variant).Logger()

	backend := sqlite.NewBackend()
	if err := backend.Attach(s.Storage); err != nil {
		ln.Close()
		logger.Error().Err(err).Str("path", s.Storage.DatabasePath()).Msg("cannot open database")
		return sysError(fmt.Errorf("open %s: %w", s.Storage.DatabasePath(), err))
	}
	defer func() {
		if err := backend.Detach(); err != nil {
			logger.Error().Err(err).Msg("closing database")
		}
	}()

	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Handler:           api.New(backend, logger).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info().
			Str("addr", ln.Addr().String()).
			Str("database", backend.Path()).
			Msg("serving")
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return sysError(fmt.Errorf("serve: %w", err))
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return sysError(fmt.Errorf("shutdown: %w", err))
	}
	return nil
}
