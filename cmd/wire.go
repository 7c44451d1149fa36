package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/masteryforge/internal/config"
	"github.com/abhisek/masteryforge/internal/engine"
	"github.com/abhisek/masteryforge/internal/llm"
	"github.com/abhisek/masteryforge/internal/logger"
	"github.com/abhisek/masteryforge/internal/recommend"
	"github.com/abhisek/masteryforge/internal/session"
	"github.com/abhisek/masteryforge/internal/store"
)

// runtime holds everything a command needs. Close releases it.
type runtime struct {
	cfg     config.Config
	log     *logger.Logger
	store   *store.Store
	tracker *session.Tracker
	engine  *engine.Engine
	// provider is nil when no model is configured.
	provider llm.Provider
}

type setupOpts struct {
	// engine builds the tracker, adapter and engine on top of the store.
	engine bool
	// quiet discards logs unless a log file is configured. The terminal
	// UI owns stderr.
	quiet bool
}

func setup(cmd *cobra.Command, opts setupOpts) (*runtime, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	envFile, _ := cmd.Flags().GetString("env-file")
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.Nop()
	if !opts.quiet || cfg.LogFile != "" {
		lopts := logger.Options{Mode: cfg.LogMode, Level: cfg.LogLevel, File: cfg.LogFile}
		if opts.quiet {
			lopts.Mode = "prod"
		}
		if log, err = logger.New(lopts); err != nil {
			return nil, fmt.Errorf("build logger: %w", err)
		}
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.OpenContext(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	log.Debug("database opened", "path", dbPath)

	rt := &runtime{cfg: cfg, log: log, store: st}
	if !opts.engine {
		return rt, nil
	}

	rt.tracker = session.NewTracker(st.SessionRepo(),
		session.WithWindow(cfg.SessionWindow),
		session.WithLogger(log))

	engCfg := cfg.Engine
	var adapter recommend.Adapter
	if noLLM, _ := cmd.Flags().GetBool("no-llm"); !noLLM {
		provider, llmCfg, err := buildProvider(ctx, st, log)
		switch {
		case err != nil:
			log.Warn("recommendation model unavailable, using deterministic ranking", "error", err)
		case provider != nil:
			rt.provider = provider
			adapter = recommend.NewLLMAdapter(provider, recommend.DefaultLLMAdapterConfig())
			engCfg.AdapterBudget = engine.BudgetFor(engCfg.AdapterBudget, llmCfg.Timeout)
			log.Info("recommendation model enabled", "provider", llmCfg.Provider, "model", provider.ModelID())
		}
	}

	rt.engine = engine.New(st.CatalogRepo(), st.MasteryRepo(), rt.tracker, adapter, engCfg, log)
	return rt, nil
}

// buildProvider prefers an explicit MASTERYFORGE_LLM_PROVIDER and falls
// back to discovering a vendor API key. It returns a nil provider when
// neither is present.
func buildProvider(ctx context.Context, st *store.Store, log *logger.Logger) (llm.Provider, llm.Config, error) {
	cfg := llm.ConfigFromEnv()
	if !config.IsSet("LLM_PROVIDER") {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return nil, cfg, nil
		}
		discovered.Timeout = cfg.Timeout
		cfg = discovered
	}
	if err := cfg.Validate(); err != nil {
		return nil, cfg, err
	}
	p, err := llm.NewProvider(ctx, cfg, st.EventRepo(), log)
	if err != nil {
		return nil, cfg, err
	}
	return p, cfg, nil
}

// Close flushes logs and closes the database.
func (r *runtime) Close() {
	if err := r.store.Close(); err != nil {
		r.log.Warn("close database", "error", err)
	}
	r.log.Sync()
}

// resolveDBPath returns the database path using the --db flag (highest
// priority), then MASTERYFORGE_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}
