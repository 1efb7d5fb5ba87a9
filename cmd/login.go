package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/api"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and save the session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := api.ConfigFromEnv()
		tokens := &api.FileTokenSource{Path: cfg.TokenPath}
		client := api.New(cfg, tokens)

		reader := bufio.NewReader(os.Stdin)

		fmt.Print("Username: ")
		username, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("read username: %w", err)
		}
		fmt.Print("Password: ")
		password, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}

		token, err := client.Login(cmd.Context(),
			strings.TrimSpace(username), strings.TrimSpace(password))
		if err != nil {
			return fmt.Errorf("login: %w", err)
		}
		if err := tokens.Save(token); err != nil {
			return err
		}

		fmt.Println("Logged in. Token saved to", cfg.TokenPath)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the saved session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := api.ConfigFromEnv()
		tokens := &api.FileTokenSource{Path: cfg.TokenPath}
		if err := tokens.Clear(); err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return nil
	},
}
