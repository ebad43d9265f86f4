package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/taskflowapp/taskflow/internal/strutil"
	"github.com/taskflowapp/taskflow/task"
)

var loginCmd = &cobra.Command{
	Use:   "login <name>",
	Short: "Start a session as the given user",
	Args:  cobra.ExactArgs(1),
	RunE:  runLogin,
}

var (
	loginEmail string
	loginRole  string
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the session and clear all tasks",
	Long: `End the session.

Logging out clears the signed-in user and the entire task list. Theme
and other preferences are kept.`,
	Args: cobra.NoArgs,
	RunE: runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	Args:  cobra.NoArgs,
	RunE:  runWhoami,
}

var whoamiJSON bool

func init() {
	rootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd)

	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Email address")
	loginCmd.Flags().StringVar(&loginRole, "role", string(task.RoleUser), "Role (admin, user, guest)")

	whoamiCmd.Flags().BoolVar(&whoamiJSON, "json", false, "Output as JSON")
}

func runLogin(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	role, err := task.NormalizeRole(task.Role(loginRole))
	if err != nil {
		return err
	}

	user := task.User{
		ID:       uuid.NewString(),
		Name:     args[0],
		Email:    loginEmail,
		Role:     role,
		JoinedAt: time.Now(),
	}
	store.SetUser(&user)

	fmt.Printf("Logged in as %s (%s)\n", user.Name, user.Role)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	user := store.User()
	store.Logout()

	if user == nil {
		fmt.Println("Logged out.")
		return nil
	}
	fmt.Printf("Logged out %s.\n", user.Name)
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	user := store.User()
	if user == nil {
		fmt.Println("Not logged in.")
		return nil
	}

	if whoamiJSON {
		return encodeJSONToStdout(user)
	}

	fmt.Printf("%s [%s]\n", user.Name, strutil.Initials(user.Name))
	if user.Email != "" {
		fmt.Printf("Email:  %s\n", user.Email)
	}
	fmt.Printf("Role:   %s\n", user.Role)
	fmt.Printf("Joined: %s\n", user.JoinedAt.Format("2006-01-02"))
	return nil
}
