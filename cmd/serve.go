package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MarcovChain/FlaskFinance/dashboard"
	"github.com/google/subcommands"
)

type serveCmd struct {
	addr  string
	debug bool
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the web dashboard" }
func (*serveCmd) Usage() string {
	return `m4 serve [-addr <host:port>] [-debug]

  Serves the dashboard and its JSON API until interrupted.
  See 'm4 topic dashboard'.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", "", "Listen address (M4_ADDR)")
	f.BoolVar(&c.debug, "debug", false, "Development mode (M4_DEBUG)")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.addr != "" {
		a.cfg.Addr = c.addr
	}
	src, err := a.quotes()
	if err != nil {
		return fail(err)
	}

	srv := dashboard.New(dashboard.Config{
		Addr:      a.cfg.Addr,
		Log:       a.log,
		Loader:    a.loader,
		Quotes:    src,
		Loan:      a.loan(),
		CSATicker: a.cfg.CSATicker,
		Morning:   a.cfg.Morning,
		Night:     a.cfg.Night,
		DevMode:   c.debug || a.cfg.Debug,
	})

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() { errc <- srv.Start() }()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			a.log.Error().Err(err).Msg("server failed")
			return subcommands.ExitFailure
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.log.Error().Err(err).Msg("Server forced to shutdown")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
