package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"vaccine-assistant/internal/actions"
	"vaccine-assistant/internal/knowledge"
	"vaccine-assistant/internal/resolver"
	"vaccine-assistant/pkg/catalog"
)

const defaultCatalogPath = "configs/actions.json"

func newCatalogCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and maintain the action catalog",
	}
	cmd.PersistentFlags().StringVar(&path, "file", defaultCatalogPath, "path to the action catalog")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List catalog actions and the intents routed to them",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cat, err := catalog.LoadCatalog(path)
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tCATEGORY\tSTATUS\tINTENTS")
				for _, a := range cat.Actions {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.ID, a.Category, a.ImplementationStatus, strings.Join(a.Intents, ","))
				}
				return w.Flush()
			},
		},
		&cobra.Command{
			Use:   "validate",
			Short: "Validate the catalog and check every action is implemented",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cat, err := catalog.LoadCatalog(path)
				if err != nil {
					return fmt.Errorf("catalog validation failed: %w", err)
				}
				if err := checkImplemented(cat, builtinDispatcher()); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Catalog validation passed: %d actions.\n", len(cat.Actions))
				return nil
			},
		},
		newCatalogSetStatusCmd(&path),
	)
	return cmd
}

func newCatalogSetStatusCmd(path *string) *cobra.Command {
	var id, status string
	cmd := &cobra.Command{
		Use:   "set-status",
		Short: "Update the implementation status of an action",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.LoadCatalog(*path)
			if err != nil {
				return err
			}
			if err := cat.SetStatus(id, status); err != nil {
				return err
			}
			if err := cat.Save(*path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s status to %s\n", id, status)
			return nil
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "action id")
	cmd.Flags().StringVar(&status, "status", "", "planned, in-progress, completed or verified")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("status")
	return cmd
}

// builtinDispatcher registers every action over static data only.
func builtinDispatcher() *actions.Dispatcher {
	kb := knowledge.New(knowledge.StaticTables())
	return actions.NewDispatcher(actions.Deps{Resolver: resolver.New(kb), Knowledge: kb}, actions.Options{})
}

func checkImplemented(cat *catalog.ActionCatalog, d *actions.Dispatcher) error {
	if missing := cat.Missing(d.Has); len(missing) > 0 {
		return fmt.Errorf("catalog actions without implementation: %s", strings.Join(missing, ", "))
	}
	return nil
}
