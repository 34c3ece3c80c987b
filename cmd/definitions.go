package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"eyedia/internal/bootstrap"
	"eyedia/internal/bootstrap/logging"
	"eyedia/internal/errs"
	badgeusecase "eyedia/internal/usecase/badge"
)

var definitionsCmd = &cobra.Command{
	Use:   "definitions",
	Short: "Badge definition catalog commands",
}

var definitionsImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a badge catalog file into the definition table",
	RunE: withApp(func(cmd *cobra.Command, app *bootstrap.App, svc *badgeusecase.Service) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		file, _ := cmd.Flags().GetString("file")
		if strings.TrimSpace(file) == "" {
			file = app.Config.Badges.CatalogFile
		}

		defs, err := badgeusecase.LoadCatalog(file)
		if err != nil {
			logging.Error(ctx, "load badge catalog failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "load badge catalog")
		}

		synced, err := svc.SyncCatalog(ctx, defs)
		if err != nil {
			logging.Error(ctx, "sync badge catalog failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "sync badge catalog")
		}

		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "badge catalog imported: file=%s definitions=%d\n", file, synced); err != nil {
			return errs.Wrap(err, "write import output")
		}
		return nil
	}),
}

var definitionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List badge definitions",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *badgeusecase.Service) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		defs, err := svc.ListDefinitions(ctx)
		if err != nil {
			return errs.Wrap(err, "list definitions")
		}

		for _, def := range defs {
			enabled := "enabled"
			if !def.Enabled {
				enabled = "disabled"
			}
			window := ""
			if def.StartAt != nil || def.EndAt != nil {
				window = " window=set"
			}
			if _, err := fmt.Fprintf(
				cmd.OutOrStdout(),
				"%s\t%s\t%s on %s\tgoal=%d\tsort=%d\t%s%s\n",
				def.Code, def.Title, def.Evaluator, def.Event, def.GoalValue, def.SortOrder, enabled, window,
			); err != nil {
				return errs.Wrap(err, "write definitions output")
			}
		}
		if len(defs) == 0 {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), "no badge definitions"); err != nil {
				return errs.Wrap(err, "write definitions output")
			}
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(definitionsCmd)
	definitionsCmd.AddCommand(definitionsImportCmd)
	definitionsCmd.AddCommand(definitionsListCmd)

	definitionsImportCmd.Flags().String("file", "", "Catalog file path (defaults to badges.catalog_file)")
}
