package cmd

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"eyedia/internal/bootstrap"
	"eyedia/internal/bootstrap/logging"
	"eyedia/internal/errs"
	badgeusecase "eyedia/internal/usecase/badge"
	"eyedia/internal/usecase/badgeconsole"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Interactive consoles",
}

var consoleBadgeCmd = &cobra.Command{
	Use:   "badge",
	Short: "Live badge summary console for one user",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *badgeusecase.Service) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		userID, _ := cmd.Flags().GetUint64("user")
		status, _ := cmd.Flags().GetString("status")
		refreshInterval, _ := cmd.Flags().GetDuration("refresh-interval")

		model := badgeconsole.NewModel(ctx, svc, badgeconsole.Options{
			UserID:          userID,
			StatusFilter:    status,
			RefreshInterval: refreshInterval,
		})

		program := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return errs.Wrap(err, "run badge console")
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(consoleCmd)
	consoleCmd.AddCommand(consoleBadgeCmd)

	consoleBadgeCmd.Flags().Uint64("user", 0, "User id")
	consoleBadgeCmd.Flags().String("status", "", "Optional status filter (LOCKED|IN_PROGRESS|ACHIEVED)")
	consoleBadgeCmd.Flags().Duration("refresh-interval", 5*time.Second, "Auto refresh interval")
	_ = consoleBadgeCmd.MarkFlagRequired("user")
}
