// Command m4, the Money-Making Machine, reports on a household finances.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/MarcovChain/FlaskFinance/cmd"
	"github.com/MarcovChain/FlaskFinance/docs"
	"github.com/MarcovChain/FlaskFinance/quote"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command line for shell completion.
func completion() *complete.Command {
	global := map[string]complete.Predictor{
		"data":       predict.Dirs("*"),
		"loan":       predict.Something,
		"currency":   predict.Set{"CAD", "USD", "EUR"},
		"csa-ticker": predict.Something,
		"provider":   predict.Set(quote.Providers),
		"cache":      predict.Dirs("*"),
		"log-level":  predict.Set{"debug", "info", "warn", "error"},
		"v":          predict.Nothing,
	}
	topics, _ := docs.GetAllTopics()
	sub := map[string]*complete.Command{
		"mortgage": {Flags: map[string]complete.Predictor{"s": predict.Nothing}},
		"stocks":   {Flags: map[string]complete.Predictor{"t": predict.Something}},
		"csa":      {},
		"salary":   {},
		"quote":    {Flags: map[string]complete.Predictor{"t": predict.Something, "n": predict.Something}},
		"serve":    {Flags: map[string]complete.Predictor{"addr": predict.Something, "debug": predict.Nothing}},
		"topic":    {Flags: map[string]complete.Predictor{"l": predict.Nothing, "raw": predict.Nothing}, Args: predict.Set(topics)},
	}
	return &complete.Command{Sub: sub, Flags: global}
}

func main() {
	name := path.Base(os.Args[0])
	// exits when invoked by the shell to complete a command line.
	completion().Complete(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()

	// unknown subcommands are looked up as m4-<subcommand> in PATH.
	if args := flag.Args(); len(args) > 0 && !registered(args[0]) {
		if found, code := cmd.RunExtension(args[0], args[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

func registered(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	for _, c := range cmd.Commands {
		if c.Name() == name {
			return true
		}
	}
	return false
}
