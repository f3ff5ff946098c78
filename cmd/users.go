package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fleetsight/fleetsight/internal/auth"
	"github.com/fleetsight/fleetsight/internal/model"
	"github.com/fleetsight/fleetsight/internal/store"
)

var (
	userEmail    string
	userName     string
	userPassword string
	userRole     string
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage dashboard accounts",
}

var usersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a dashboard account",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		role := model.Role(userRole)
		if !model.IsValidRole(role) {
			return eris.Errorf("users: invalid role %q", userRole)
		}
		if len(userPassword) < 8 {
			return eris.New("users: password must be at least 8 characters")
		}

		hash, err := auth.HashPassword(userPassword)
		if err != nil {
			return err
		}

		st, err := store.Open(ctx, cfg.Store)
		if err != nil {
			return err
		}
		defer st.Close()
		if err := st.Migrate(ctx); err != nil {
			return err
		}

		user, err := st.CreateUser(ctx, model.User{
			Email:        userEmail,
			FullName:     userName,
			PasswordHash: hash,
			Role:         role,
		})
		if err != nil {
			return err
		}

		zap.L().Info("user created",
			zap.String("id", user.ID),
			zap.String("email", user.Email),
			zap.String("role", string(user.Role)),
		)
		return nil
	},
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List dashboard accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		st, err := store.Open(ctx, cfg.Store)
		if err != nil {
			return err
		}
		defer st.Close()
		if err := st.Migrate(ctx); err != nil {
			return err
		}

		users, err := st.ListUsers(ctx)
		if err != nil {
			return err
		}

		for _, u := range users {
			fmt.Printf("%s  %-30s  %-8s  %s\n", u.ID, u.Email, u.Role, u.CreatedAt.Format("2006-01-02 15:04"))
		}
		fmt.Printf("%d account(s)\n", len(users))
		return nil
	},
}

func init() {
	usersCreateCmd.Flags().StringVar(&userEmail, "email", "", "account email")
	usersCreateCmd.Flags().StringVar(&userName, "name", "", "account full name")
	usersCreateCmd.Flags().StringVar(&userPassword, "password", "", "account password")
	usersCreateCmd.Flags().StringVar(&userRole, "role", string(model.RoleOwner), "account role (owner or viewer)")
	usersCreateCmd.MarkFlagRequired("email")
	usersCreateCmd.MarkFlagRequired("password")

	usersCmd.AddCommand(usersCreateCmd)
	usersCmd.AddCommand(usersListCmd)
	rootCmd.AddCommand(usersCmd)
}
