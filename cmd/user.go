package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"eyedia/internal/bootstrap"
	"eyedia/internal/bootstrap/logging"
	"eyedia/internal/errs"
	badgeusecase "eyedia/internal/usecase/badge"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "User directory commands",
}

var userAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a user in the directory",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *badgeusecase.Service) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		id, _ := cmd.Flags().GetUint64("id")
		nickname, _ := cmd.Flags().GetString("nickname")

		user, err := svc.RegisterUser(ctx, id, nickname)
		if err != nil {
			logging.Error(ctx, "register user failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "register user")
		}

		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "user registered: id=%d nickname=%s\n", user.ID, user.Nickname); err != nil {
			return errs.Wrap(err, "write user output")
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.AddCommand(userAddCmd)

	userAddCmd.Flags().Uint64("id", 0, "User id")
	userAddCmd.Flags().String("nickname", "", "Display nickname")
	_ = userAddCmd.MarkFlagRequired("id")
	_ = userAddCmd.MarkFlagRequired("nickname")
}
