package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/MarcovChain/FlaskFinance/quote"
	"github.com/MarcovChain/FlaskFinance/renderer"
	"github.com/google/subcommands"
)

type quoteCmd struct {
	ticker string
	last   int
}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "display the latest closes of a ticker" }
func (*quoteCmd) Usage() string {
	return `m4 quote -t <ticker> [-n <days>]

  Displays the latest daily closes of a ticker with their 50 and 200 days
  simple moving averages. See 'm4 topic quotes'.
`
}

func (c *quoteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Ticker to display")
	f.IntVar(&c.last, "n", 10, "Number of days to display")
}

func (c *quoteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" {
		fmt.Fprintln(os.Stderr, "Error: -t is required")
		return subcommands.ExitUsageError
	}
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitUsageError
	}
	src, err := a.quotes()
	if err != nil {
		return fail(err)
	}
	h, err := src.History(ctx, c.ticker)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.QuoteMarkdown(c.ticker, h, quote.SMA(h, 50), quote.SMA(h, 200), c.last))
	return subcommands.ExitSuccess
}
