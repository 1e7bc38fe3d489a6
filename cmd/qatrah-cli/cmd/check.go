package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Youssef-Elmorali/blood-project-frontend/internal/login"
	"github.com/spf13/cobra"
)

// errCheckFailed makes the command exit non-zero once its report is printed.
var errCheckFailed = errors.New("check failed")

var (
	checkEmail    string
	checkPassword string
	checkAttempt  bool
	checkDelay    time.Duration
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the login form validation on the given values",
	Long: `Validates --email and --password with the same rules the login form uses
and prints the message each field would show. With --attempt a valid pair is
also submitted to the simulated authenticator.`,
	Example: `  qatrah-cli check --email donor@example.com --password secret1
  qatrah-cli check --email donor@example.com --password secret1 --attempt --delay 10ms`,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		values := map[login.Field]string{login.FieldEmail: checkEmail, login.FieldPassword: checkPassword}
		ok := true
		for _, field := range []login.Field{login.FieldEmail, login.FieldPassword} {
			ok = report(out, field, login.Validate(field, values[field])) && ok
		}
		if !ok {
			return errCheckFailed
		}
		if !checkAttempt {
			return nil
		}

		ctrl := login.NewController(login.NewSimulatedAuthenticator(checkDelay))
		ctrl.Dispatch(login.EmailChanged{Value: checkEmail})
		ctrl.Dispatch(login.PasswordChanged{Value: checkPassword})

		s, err := ctrl.Submit(context.Background())
		if err != nil {
			fmt.Fprintf(out, "attempt: %s\n", s.Errors.General)
			return errCheckFailed
		}
		fmt.Fprintln(out, "attempt: accepted")
		return nil
	},
}

func report(w io.Writer, field login.Field, err error) bool {
	if err == nil {
		fmt.Fprintf(w, "%s: ok\n", field)
		return true
	}
	fmt.Fprintf(w, "%s: %v\n", field, err)
	return false
}

func init() {
	checkCmd.Flags().StringVar(&checkEmail, "email", "", "email address to validate")
	checkCmd.Flags().StringVar(&checkPassword, "password", "", "password to validate")
	checkCmd.Flags().BoolVar(&checkAttempt, "attempt", false, "submit a valid pair to the simulated authenticator")
	checkCmd.Flags().DurationVar(&checkDelay, "delay", login.DefaultAuthDelay, "simulated authenticator delay")
	rootCmd.AddCommand(checkCmd)
}
