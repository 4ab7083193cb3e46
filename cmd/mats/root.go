package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"twviewer/logging"
	"twviewer/models"
	"twviewer/trackwrestling"
)

type cli struct {
	apiURL  string
	timeout time.Duration
	verbose bool

	logger *zap.Logger
	api    trackwrestling.API
}

// newRootCmd builds the command tree. A nil api is replaced by a client for --api-url
// once flags are parsed.
func newRootCmd(api trackwrestling.API) *cobra.Command {
	c := &cli{api: api, logger: zap.NewNop()}

	root := &cobra.Command{
		Use:          "mats",
		Short:        "Browse Trackwrestling tournaments, mat schedules and brackets",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := "warn"
			if c.verbose {
				level = "debug"
			}
			logger, err := logging.New(level, false)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			c.logger = logger

			if c.api != nil {
				return nil
			}
			client, err := trackwrestling.NewClient(c.apiURL,
				trackwrestling.WithTimeout(c.timeout),
				trackwrestling.WithLogger(logger.Named("trackwrestling")),
			)
			if err != nil {
				return fmt.Errorf("%w (set --api-url or TW_API_URL)", err)
			}
			c.api = client
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.logger.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.apiURL, "api-url", os.Getenv("TW_API_URL"), "tournament data API base URL")
	flags.DurationVar(&c.timeout, "timeout", 12*time.Second, "upstream request timeout")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		c.tournamentsCmd(),
		c.matchesCmd(),
		c.bracketsCmd(),
		c.bracketCmd(),
	)
	return root
}

func tournamentArgs(args []string) (models.EventType, string, error) {
	et, err := models.ParseEventType(args[0])
	if err != nil {
		return "", "", err
	}
	return et, args[1], nil
}
