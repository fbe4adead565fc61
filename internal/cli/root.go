package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"vaccine-assistant/internal/common/config"
)

// Version is set at build time with -ldflags "-X vaccine-assistant/internal/cli.Version=...".
var Version = "dev"

type rootOptions struct {
	configFile string
}

// NewRootCmd builds the command tree. Each call returns a fresh tree so
// tests can run commands in isolation.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "vaccine-assistant",
		Short: "Vietnamese vaccine information assistant",
		Long: `vaccine-assistant answers vaccine questions in Vietnamese: prices,
descriptions, eligible ages, side effects, schedules and where to get
vaccinated.

It serves a Rasa-compatible action webhook and a session API, resolving noisy
user input to canonical vaccine, age, symptom, disease and condition entities.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default: configs/config.yaml)")

	root.AddCommand(
		newServeCmd(opts),
		newResolveCmd(),
		newKnowledgeCmd(),
		newCatalogCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "vaccine-assistant %s\n", Version)
		},
	}
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	if o.configFile != "" {
		return config.LoadFromFile(o.configFile)
	}
	return config.Load()
}
