package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/dshills/tdahscreen/internal/api"
)

func newServeCmd(g *globalFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the screening engine as a JSON HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// glog reads its settings from the standard flag set.
			if err := flag.CommandLine.Parse(nil); err != nil {
				return err
			}
			defer glog.Flush()

			cfg := g.config()
			if !cmd.Flags().Changed("addr") {
				addr = cfg.Addr
			}

			e, err := g.loadEngine()
			if err != nil {
				return err
			}
			c, err := g.loadContent()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			glog.Infof("serving %d questions from %s", e.Bank().Len(), e.Bank().Source)
			srv := api.NewServer(e, c, cfg.AllowedOrigins)
			if err := srv.ListenAndServe(ctx, addr, cfg.ShutdownTimeout); err != nil {
				return exitError(1, "http server: %v", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default: TDAHSCREEN_ADDR or :8043)")
	if f := flag.CommandLine.Lookup("logtostderr"); f != nil {
		_ = f.Value.Set("true")
		f.DefValue = "true"
	}
	cmd.Flags().AddGoFlagSet(flag.CommandLine)
	return cmd
}
