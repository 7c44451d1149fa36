// Package server exposes the engine's caller-facing operations as JSON
// over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/abhisek/masteryforge/internal/concept"
	"github.com/abhisek/masteryforge/internal/engine"
	"github.com/abhisek/masteryforge/internal/logger"
	"github.com/abhisek/masteryforge/internal/store"
)

// Engine is the subset of *engine.Engine the server calls.
type Engine interface {
	SelectNextConcept(ctx context.Context, userID, courseID string) (*concept.Concept, error)
	EligibleConcepts(ctx context.Context, userID, courseID string) ([]concept.Concept, error)
	Progress(ctx context.Context, userID, courseID string) (*engine.Report, error)
	UpdateMasteryAfterQuiz(ctx context.Context, userID, conceptID string, scorePercent float64) (*engine.UpdateResult, error)
	RecommendNextConceptAfterQuiz(ctx context.Context, userID, conceptID string, scorePercent float64) (*concept.Concept, error)
	CloseSession(ctx context.Context, userID string) (*store.LearningSession, error)
}

// Options configures a Server.
type Options struct {
	Addr        string
	CORSOrigins []string
	ServiceName string
	Version     string
	Log         *logger.Logger
}

// Server is the HTTP transport.
type Server struct {
	engine Engine
	opts   Options
	log    *logger.Logger
	router *gin.Engine

	// collapses concurrent /next calls for the same learner and course
	inflight singleflight.Group
}

// New builds a Server and its routes.
func New(eng Engine, opts Options) *Server {
	if opts.Log == nil {
		opts.Log = logger.Nop()
	}
	if opts.ServiceName == "" {
		opts.ServiceName = "masteryforge"
	}
	gin.SetMode(gin.ReleaseMode)

	s := &Server{engine: eng, opts: opts, log: opts.Log}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(opts.ServiceName))
	r.Use(requestLogger(s.log))
	r.Use(cors.New(corsConfig(opts.CORSOrigins)))

	r.GET("/healthz", s.health)

	v1 := r.Group("/v1/users/:user")
	{
		v1.GET("/next", s.next)
		v1.GET("/eligible", s.eligible)
		v1.GET("/progress", s.progress)
		v1.POST("/quiz", s.quiz)
		v1.POST("/session/close", s.closeSession)
	}

	s.router = r
	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info("http server listening", "addr", s.opts.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
		defer cancel()
		s.log.Info("http server shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

func requestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("http request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
		)
	}
}
