package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"cinema-tui/model"
	"cinema-tui/store"
)

const otherEmail = "Use another email"

func newLoginCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Sign in and remember the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(flags)
			if err != nil {
				return err
			}
			defer e.Close()

			recent, err := store.LoadRecentLogins()
			if err != nil {
				e.logger.WithError(err).Debug("load recent logins failed")
			}
			email, err := promptEmail(recent)
			if err != nil {
				return err
			}
			password, err := promptPassword()
			if err != nil {
				return err
			}

			account, err := e.client.Login(context.Background(), model.Credential{Email: email, Password: password})
			if err != nil {
				e.logger.WithError(err).Warn("login failed")
				return fmt.Errorf("login: %w", err)
			}
			if err := store.SaveSession(account); err != nil {
				return fmt.Errorf("save session: %w", err)
			}
			if err := store.RememberLogin(email); err != nil {
				e.logger.WithError(err).Debug("remember login failed")
			}
			e.logger.WithField("email", email).Info("logged in")
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", email)
			return nil
		},
		SilenceUsage: true,
	}
}

func newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := store.ClearSession(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}

func promptEmail(recent []string) (string, error) {
	if len(recent) > 0 {
		sel := promptui.Select{
			Label: "Select Account",
			Items: append(append([]string{}, recent...), otherEmail),
			Size:  6,
		}
		_, choice, err := sel.Run()
		if err != nil {
			return "", err
		}
		if choice != otherEmail {
			return choice, nil
		}
	}
	prompt := promptui.Prompt{
		Label:    "Email",
		Validate: validateEmail,
	}
	email, err := prompt.Run()
	return strings.TrimSpace(email), err
}

func promptPassword() (string, error) {
	prompt := promptui.Prompt{
		Label: "Password",
		Mask:  '*',
		Validate: func(input string) error {
			if input == "" {
				return errors.New("password is required")
			}
			return nil
		},
	}
	return prompt.Run()
}

func validateEmail(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return errors.New("email is required")
	}
	if !strings.Contains(input, "@") {
		return errors.New("email must contain @")
	}
	return nil
}
