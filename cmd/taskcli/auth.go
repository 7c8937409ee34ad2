package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskclient/internal/models"
)

func loginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and store the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			defer a.Shutdown()

			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")

			a.Auth.Login(cmd.Context(), models.LoginCredentials{
				Email:    email,
				Password: password,
			})

			if !a.Session.IsAuthenticated() {
				return errFailed
			}
			return nil
		},
	}

	cmd.Flags().StringP("email", "e", "", "Account email")
	cmd.Flags().StringP("password", "p", "", "Account password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")

	return cmd
}

func registerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and store the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			defer a.Shutdown()

			username, _ := cmd.Flags().GetString("username")
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")

			a.Auth.Register(cmd.Context(), models.RegisterCredentials{
				Username: username,
				Email:    email,
				Password: password,
			})

			if !a.Session.IsAuthenticated() {
				return errFailed
			}
			return nil
		},
	}

	cmd.Flags().StringP("username", "u", "", "Username")
	cmd.Flags().StringP("email", "e", "", "Account email")
	cmd.Flags().StringP("password", "p", "", "Account password")
	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")

	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			defer a.Shutdown()

			a.Auth.Logout(cmd.Context())
			fmt.Println("Logged out")
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			defer a.Shutdown()

			if err := requireAuth(a); err != nil {
				return err
			}

			user := a.Session.User()
			fmt.Printf("%s <%s>\n", user.Username, user.Email)
			return nil
		},
	}
}

func profileCmd() *cobra.Command {
	update := &cobra.Command{
		Use:   "update",
		Short: "Update profile fields, only changed ones are sent",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			defer a.Shutdown()

			if err := requireAuth(a); err != nil {
				return err
			}

			var patch models.UpdateUser
			if cmd.Flags().Changed("username") {
				username, _ := cmd.Flags().GetString("username")
				patch.Username = &username
			}
			if cmd.Flags().Changed("email") {
				email, _ := cmd.Flags().GetString("email")
				patch.Email = &email
			}
			if cmd.Flags().Changed("avatar") {
				avatar, _ := cmd.Flags().GetString("avatar")
				patch.Avatar = &avatar
			}

			a.Auth.UpdateProfile(cmd.Context(), patch)

			if msg := a.Session.Err(); msg != "" {
				return errFailed
			}
			return nil
		},
	}

	update.Flags().String("username", "", "New username")
	update.Flags().String("email", "", "New email")
	update.Flags().String("avatar", "", "New avatar URL")

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the user profile",
	}
	cmd.AddCommand(update)
	return cmd
}

func accountCmd() *cobra.Command {
	del := &cobra.Command{
		Use:   "delete",
		Short: "Delete the account and clear the local session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			defer a.Shutdown()

			if err := requireAuth(a); err != nil {
				return err
			}

			a.Auth.DeleteAccount(cmd.Context())

			if msg := a.Session.Err(); msg != "" {
				return errFailed
			}
			return nil
		},
	}

	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage the account",
	}
	cmd.AddCommand(del)
	return cmd
}
