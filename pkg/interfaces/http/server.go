package http

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vsinha/wallcalc/pkg/application/services/analysis"
	httpH "github.com/vsinha/wallcalc/pkg/interfaces/http/handlers"
)

// ShutdownTimeout bounds how long in-flight requests may finish after Run's context ends
const ShutdownTimeout = 10 * time.Second

type Server struct {
	Engine *gin.Engine
	log    *zap.Logger
}

func NewServer(cfg RouterConfig) *Server {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{Engine: NewRouter(cfg), log: log}
}

// NewServerForService registers every handler against one analysis service
func NewServerForService(service *analysis.AnalysisService, log *zap.Logger) *Server {
	return NewServer(RouterConfig{
		Logger:              log,
		AssemblyHandler:     httpH.NewAssemblyHandler(service, log),
		OptimizationHandler: httpH.NewOptimizationHandler(service),
		CatalogHandler:      httpH.NewCatalogHandler(service, log),
		StatisticsHandler:   httpH.NewStatisticsHandler(service, log),
		HealthHandler:       httpH.NewHealthHandler(),
	})
}

// Run serves on address until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context, address string) error {
	srv := &nethttp.Server{
		Addr:              address,
		Handler:           s.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", zap.String("addr", address))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, nethttp.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to serve http: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("http server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down http server: %w", err)
	}
	return nil
}
