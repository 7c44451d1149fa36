package cmd

import (
	"context"
	"fmt"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"

	"github.com/abhisek/masteryforge/internal/observability"
	"github.com/abhisek/masteryforge/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scheduler over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd, setupOpts{engine: true})
		if err != nil {
			return err
		}
		defer rt.Close()

		cfg := rt.cfg
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.HTTPAddr = addr
		}
		cfg.Tracing.Version = resolvedVersion()

		ctx := cmd.Context()
		shutdown, err := observability.InitTracing(ctx, rt.log, cfg.Tracing)
		if err != nil {
			return fmt.Errorf("init tracing: %w", err)
		}
		defer func() {
			if err := shutdown(context.WithoutCancel(ctx)); err != nil {
				rt.log.Warn("tracer shutdown", "error", err)
			}
		}()

		if quiet, _ := cmd.Flags().GetBool("no-banner"); !quiet {
			printStartUpBanner(cfg.HTTPAddr)
		}

		srv := server.New(rt.engine, server.Options{
			Addr:        cfg.HTTPAddr,
			CORSOrigins: cfg.CORSOrigins,
			ServiceName: cfg.Tracing.ServiceName,
			Version:     cfg.Tracing.Version,
			Log:         rt.log,
		})
		return srv.Run(ctx)
	},
}

func printStartUpBanner(addr string) {
	figure.NewFigure("MASTERYFORGE", "", true).Print()
	fmt.Println("======================================================")
	fmt.Printf("MasteryForge API (%s) on %s\n\n", resolvedVersion(), addr)
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides MASTERYFORGE_HTTP_ADDR)")
	serveCmd.Flags().Bool("no-banner", false, "Skip the start-up banner")
}
