package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"eyedia/internal/bootstrap"
	"eyedia/internal/bootstrap/logging"
	domainbadge "eyedia/internal/domain/badge"
	"eyedia/internal/errs"
	badgeusecase "eyedia/internal/usecase/badge"
)

var eventCmd = &cobra.Command{
	Use:   "event",
	Short: "Badge event commands",
}

var eventEmitCmd = &cobra.Command{
	Use:   "emit",
	Short: "Emit a badge event through the progress engine",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *badgeusecase.Service) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		userID, _ := cmd.Flags().GetUint64("user")
		rawType, _ := cmd.Flags().GetString("type")
		uid, _ := cmd.Flags().GetString("uid")
		rawOccurredAt, _ := cmd.Flags().GetString("occurred-at")
		rawPayload, _ := cmd.Flags().GetStringSlice("payload")

		eventType, err := domainbadge.ParseEventType(rawType)
		if err != nil {
			return err
		}

		var occurredAt time.Time
		if strings.TrimSpace(rawOccurredAt) != "" {
			occurredAt, err = time.Parse(time.RFC3339, rawOccurredAt)
			if err != nil {
				return errs.Wrap(err, "parse occurred-at")
			}
		}

		payload, err := parsePayloadFlags(rawPayload)
		if err != nil {
			return err
		}

		event := domainbadge.Event{
			UID:        uid,
			Type:       eventType,
			UserID:     userID,
			OccurredAt: occurredAt,
			Payload:    payload,
		}

		if err := svc.ProcessEvent(ctx, event); err != nil {
			logging.Error(ctx, "process badge event failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "process badge event")
		}

		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "badge event processed: user=%d type=%s\n", userID, eventType); err != nil {
			return errs.Wrap(err, "write event output")
		}
		return nil
	}),
}

func parsePayloadFlags(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	payload := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !found || key == "" {
			return nil, errors.New("payload entries must look like key=value")
		}
		payload[key] = value
	}
	return payload, nil
}

func init() {
	rootCmd.AddCommand(eventCmd)
	eventCmd.AddCommand(eventEmitCmd)

	eventEmitCmd.Flags().Uint64("user", 0, "User id the event belongs to")
	eventEmitCmd.Flags().String("type", "", "Event type (EXHIBITION_COLLECTED|ART_VIEWED|VISIT_LOGGED)")
	eventEmitCmd.Flags().String("uid", "", "Optional idempotency uid (generated when blank)")
	eventEmitCmd.Flags().String("occurred-at", "", "Optional RFC3339 timestamp (defaults to now)")
	eventEmitCmd.Flags().StringSlice("payload", nil, "Payload entries as key=value")
	_ = eventEmitCmd.MarkFlagRequired("user")
	_ = eventEmitCmd.MarkFlagRequired("type")
}
