package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"eyedia/internal/bootstrap"
	"eyedia/internal/bootstrap/logging"
	domainbadge "eyedia/internal/domain/badge"
	"eyedia/internal/errs"
	badgeusecase "eyedia/internal/usecase/badge"
)

var badgeCmd = &cobra.Command{
	Use:   "badge",
	Short: "Badge progress query and acknowledgment commands",
}

var badgeSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show a user's badge summary (acknowledges newly achieved badges)",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *badgeusecase.Service) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		userID, _ := cmd.Flags().GetUint64("user")
		rawStatus, _ := cmd.Flags().GetString("status")

		var statusFilter *domainbadge.ProgressStatus
		if strings.TrimSpace(rawStatus) != "" {
			status, err := domainbadge.ParseProgressStatus(rawStatus)
			if err != nil {
				return err
			}
			statusFilter = &status
		}

		summary, err := svc.GetSummary(ctx, userID, statusFilter)
		if err != nil {
			logging.Error(ctx, "get badge summary failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "get badge summary")
		}

		out := cmd.OutOrStdout()
		if _, err := fmt.Fprintf(out, "badges: total=%d acquired=%d\n", summary.Total, summary.Acquired); err != nil {
			return errs.Wrap(err, "write summary output")
		}
		if summary.NextTarget != nil {
			if _, err := fmt.Fprintf(out, "next target: %s (%d/%d)\n",
				summary.NextTarget.Code, summary.NextTarget.CurrentValue, summary.NextTarget.GoalValue); err != nil {
				return errs.Wrap(err, "write summary output")
			}
		}
		for _, card := range summary.Badges {
			marker := " "
			if card.NewBadge {
				marker = "*"
			}
			if _, err := fmt.Fprintf(out, "%s %-24s %-12s %d/%d\t%s\n",
				marker, card.Code, card.Status, card.CurrentValue, card.GoalValue, card.Title); err != nil {
				return errs.Wrap(err, "write summary output")
			}
		}
		if summary.LastEventUID != "" {
			if _, err := fmt.Fprintf(out, "last event: %s\n", summary.LastEventUID); err != nil {
				return errs.Wrap(err, "write summary output")
			}
		}
		return nil
	}),
}

var badgeAckCmd = &cobra.Command{
	Use:   "ack",
	Short: "Acknowledge new badges by progress id",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *badgeusecase.Service) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		rawIDs, _ := cmd.Flags().GetStringSlice("ids")
		ids := make([]uint64, 0, len(rawIDs))
		for _, raw := range rawIDs {
			id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
			if err != nil {
				return errs.Wrapf(err, "parse badge id %q", raw)
			}
			ids = append(ids, id)
		}

		if err := svc.AcknowledgeNewBadges(ctx, ids); err != nil {
			logging.Error(ctx, "acknowledge badges failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "acknowledge badges")
		}

		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "badges acknowledged: %d\n", len(ids)); err != nil {
			return errs.Wrap(err, "write ack output")
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(badgeCmd)
	badgeCmd.AddCommand(badgeSummaryCmd)
	badgeCmd.AddCommand(badgeAckCmd)

	badgeSummaryCmd.Flags().Uint64("user", 0, "User id")
	badgeSummaryCmd.Flags().String("status", "", "Optional status filter (LOCKED|IN_PROGRESS|ACHIEVED)")
	_ = badgeSummaryCmd.MarkFlagRequired("user")

	badgeAckCmd.Flags().StringSlice("ids", nil, "Progress ids to acknowledge")
	_ = badgeAckCmd.MarkFlagRequired("ids")
}
