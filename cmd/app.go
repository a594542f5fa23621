// Package cmd implements the m4 command line application.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	finance "github.com/MarcovChain/FlaskFinance"
	"github.com/MarcovChain/FlaskFinance/config"
	"github.com/MarcovChain/FlaskFinance/logger"
	"github.com/MarcovChain/FlaskFinance/quote"
	"github.com/MarcovChain/FlaskFinance/renderer"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd, groups[cmd.Name()])
	}
}

// Commands lists all the m4 subcommands.
var Commands = []subcommands.Command{
	&mortgageCmd{},
	&stocksCmd{},
	&csaCmd{},
	&salaryCmd{},
	&quoteCmd{},
	&serveCmd{},
	&topicCmd{},
}

var groups = map[string]string{
	"mortgage": "ledgers",
	"stocks":   "ledgers",
	"csa":      "ledgers",
	"salary":   "ledgers",
	"quote":    "quotes",
	"serve":    "dashboard",
	"topic":    "help",
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.
// They override the environment, see 'm4 topic config'.

var (
	dataDir   = flag.String("data", "", "Folder of the CSV ledgers (M4_DATA_DIR)")
	loan      = flag.String("loan", "", "Original mortgage principal (M4_LOAN_AMOUNT)")
	currency  = flag.String("currency", "", "Currency of every amount (M4_CURRENCY)")
	csaTicker = flag.String("csa-ticker", "", "Ticker of the share account (M4_CSA_TICKER)")
	provider  = flag.String("provider", "", "Quote provider, yahoo or eodhd (M4_QUOTE_PROVIDER)")
	cacheDir  = flag.String("cache", "", "Folder of the daily quote cache (M4_CACHE_DIR)")
	logLevel  = flag.String("log-level", "", "debug, info, warn or error (M4_LOG_LEVEL)")
	Verbose   = flag.Bool("v", false, "Human readable logs")
)

// app is what every subcommand needs.
type app struct {
	cfg    *config.Config
	log    zerolog.Logger
	loader *finance.Loader
}

// loadConfig reads the environment then applies the global flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	override := func(dst *string, flagValue string) {
		if flagValue != "" {
			*dst = flagValue
		}
	}
	override(&cfg.DataDir, *dataDir)
	override(&cfg.Currency, strings.ToUpper(*currency))
	override(&cfg.CSATicker, *csaTicker)
	override(&cfg.QuoteProvider, strings.ToLower(*provider))
	override(&cfg.CacheDir, *cacheDir)
	override(&cfg.LogLevel, *logLevel)
	if *loan != "" {
		amount, err := decimal.NewFromString(strings.ReplaceAll(*loan, ",", ""))
		if err != nil {
			return nil, fmt.Errorf("invalid -loan %q: %w", *loan, err)
		}
		cfg.LoanAmount = amount
	}
	return cfg, cfg.Validate()
}

func newApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: *Verbose || cfg.Debug})
	logger.SetGlobalLogger(log)
	log.Debug().Str("data", cfg.DataDir).Str("currency", cfg.Currency).Msg("configuration loaded")
	return &app{
		cfg:    cfg,
		log:    log,
		loader: finance.NewLoader(cfg.DataDir, cfg.Currency),
	}, nil
}

// quotes returns the configured quote source.
func (a *app) quotes() (finance.QuoteSource, error) {
	return quote.New(a.cfg.QuoteProvider, a.cfg.EODHDAPIKey, a.cfg.CacheDir, logger.Component(a.log, "quote"))
}

func (a *app) loan() finance.Money { return finance.M(a.cfg.LoanAmount, a.cfg.Currency) }

// fail reports err on stderr.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "%s: %v\n", renderer.ErrorTitle(err), err)
	return subcommands.ExitFailure
}

// printMarkdown prints a report, with the warnings of its derivation if any.
func printMarkdown(md string, warnings ...error) {
	for _, w := range warnings {
		if w != nil {
			md += "\n" + renderer.ErrorMarkdown(w)
		}
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(md)
}
