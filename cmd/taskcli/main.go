package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"taskclient/internal/app"
	"taskclient/internal/config"
	"taskclient/internal/keychain"
)

// errFailed signals a failed operation whose details were already
// rendered as a toast; it only carries the exit code.
var errFailed = errors.New("operation failed")

func main() {
	rootCmd := &cobra.Command{
		Use:           "taskcli",
		Short:         "taskcli - command line client for the task API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(loginCmd())
	rootCmd.AddCommand(registerCmd())
	rootCmd.AddCommand(logoutCmd())
	rootCmd.AddCommand(whoamiCmd())
	rootCmd.AddCommand(profileCmd())
	rootCmd.AddCommand(accountCmd())
	rootCmd.AddCommand(taskCmd())
	rootCmd.AddCommand(categoryCmd())
	rootCmd.AddCommand(priorityCmd())

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// consoleNotifier renders toasts on the terminal.
type consoleNotifier struct{}

func (consoleNotifier) Success(title, detail string) {
	if detail != "" {
		fmt.Printf("%s: %s\n", title, detail)
		return
	}
	fmt.Println(title)
}

func (consoleNotifier) Failure(title, detail string) {
	if detail != "" {
		fmt.Fprintf(os.Stderr, "%s: %s\n", title, detail)
		return
	}
	fmt.Fprintln(os.Stderr, title)
}

// setup wires the client and runs the session bootstrap. Every command
// goes through here, so protected screens are unreachable before the
// storage check settles.
func setup(cmd *cobra.Command) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	application := app.New(cfg, keychain.NewFileStore(cfg.Keychain.Path))
	if err := application.Init(consoleNotifier{}); err != nil {
		return nil, err
	}

	application.Bootstrap(cmd.Context())
	return application, nil
}

func requireAuth(a *app.App) error {
	if a.Phase() != app.PhaseAuthenticated {
		return errors.New("not logged in, run 'taskcli login' first")
	}
	return nil
}
