// Package cmd holds the iocscope command line interface
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// appName is used in usage output and as the service name in logs
const appName = "iocscope"

// k holds the parsed command line flags of the running command
var k = koanf.New(".")

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "classify indicators of compromise and build threat intel lookup links",
	Long: `iocscope detects whether an input is a domain, IPv4 address, URL, email,
file hash or free text, defangs it for safe sharing and lists the threat
intelligence lookups that apply to it. Run it as a one-shot CLI or serve the
same functionality over HTTP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		// flags of the executing subcommand, including inherited persistent flags
		if err := k.Load(posflag.Provider(cmd.Flags(), k.Delim(), k), nil); err != nil {
			return err
		}

		configureOutput(k.Bool("debug"), k.Bool("pretty"), k.Bool("no-color"))

		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Bool("debug", false, "enable debug logging")
	flags.Bool("pretty", false, "human readable log output")
	flags.Bool("no-color", false, "disable colored output")
}

// Execute runs the root command until it returns or the process is interrupted
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg(appName + " failed")

		stop()
		os.Exit(1)
	}
}

// configureOutput sets the global log level, log format and color mode
func configureOutput(debug, pretty, noColor bool) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	if noColor {
		color.NoColor = true
	}
}
