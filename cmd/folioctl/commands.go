// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/migration"
	"github.com/taibuivan/folio/internal/platform/sec"
)

var errEmptyPassword = errors.New("password must not be empty")

// newRootCmd builds the command tree. stdin and stdout are injected so the
// commands can be driven from tests.
func newRootCmd(stdin io.Reader, stdout io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "folioctl",
		Short:        "Operator tooling for the Folio API",
		SilenceUsage: true,
	}
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)

	rootCmd.AddCommand(newHashPasswordCmd())
	rootCmd.AddCommand(newVerifyPasswordCmd())
	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", constants.AppName, constants.AppVersion)
		},
	})

	return rootCmd
}

// # Passwords

func newHashPasswordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash-password",
		Short: "Print a bcrypt hash for ADMIN_PASSWORD_HASH",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fromStdin, _ := cmd.Flags().GetBool("stdin")

			password, err := readPassword(cmd, fromStdin, true)
			if err != nil {
				return err
			}

			hash, err := sec.HashPassword(password)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
	cmd.Flags().Bool("stdin", false, "Read the password from the first line of stdin")
	return cmd
}

func newVerifyPasswordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify-password",
		Short: "Check a password against a bcrypt hash",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, _ := cmd.Flags().GetString("hash")
			if hash == "" {
				hash = os.Getenv("ADMIN_PASSWORD_HASH")
			}
			if hash == "" {
				return errors.New("no hash given: pass --hash or set ADMIN_PASSWORD_HASH")
			}

			fromStdin, _ := cmd.Flags().GetBool("stdin")
			password, err := readPassword(cmd, fromStdin, false)
			if err != nil {
				return err
			}

			if !sec.CheckPasswordHash(password, hash) {
				return errors.New("password does not match")
			}

			fmt.Fprintln(cmd.OutOrStdout(), "password matches")
			return nil
		},
	}
	cmd.Flags().String("hash", "", "bcrypt hash to check against (defaults to ADMIN_PASSWORD_HASH)")
	cmd.Flags().Bool("stdin", false, "Read the password from the first line of stdin")
	return cmd
}

// readPassword reads from the terminal without echo, or from the first line
// of the command's input when fromStdin is set or no terminal is attached.
func readPassword(cmd *cobra.Command, fromStdin, confirm bool) (string, error) {
	file, isFile := cmd.InOrStdin().(*os.File)
	if fromStdin || !isFile || !term.IsTerminal(int(file.Fd())) {
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading password: %w", err)
		}
		password := strings.TrimRight(line, "\r\n")
		if password == "" {
			return "", errEmptyPassword
		}
		return password, nil
	}

	password, err := prompt(cmd, file, "Password: ")
	if err != nil {
		return "", err
	}
	if password == "" {
		return "", errEmptyPassword
	}

	if confirm {
		again, err := prompt(cmd, file, "Confirm password: ")
		if err != nil {
			return "", err
		}
		if again != password {
			return "", errors.New("passwords do not match")
		}
	}

	return password, nil
}

func prompt(cmd *cobra.Command, file *os.File, label string) (string, error) {
	fmt.Fprint(cmd.ErrOrStderr(), label)
	raw, err := term.ReadPassword(int(file.Fd()))
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(raw), nil
}

// # Migrations

func newMigrateCmd() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}
	migrateCmd.PersistentFlags().String("database-url", "", "PostgreSQL DSN (defaults to DATABASE_URL)")

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dsn, err := databaseURL(cmd)
			if err != nil {
				return err
			}
			return migration.RunUp(dsn, cliLogger(cmd))
		},
	})

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the recorded schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dsn, err := databaseURL(cmd)
			if err != nil {
				return err
			}

			status, err := migration.Version(dsn, cliLogger(cmd))
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatStatus(status))
			return nil
		},
	})

	return migrateCmd
}

func databaseURL(cmd *cobra.Command) (string, error) {
	dsn, _ := cmd.Flags().GetString("database-url")
	if dsn == "" {
		dsn = os.Getenv("DATABASE_URL")
	}
	if dsn == "" {
		return "", errors.New("no database: pass --database-url or set DATABASE_URL")
	}
	return dsn, nil
}

func formatStatus(status migration.Status) string {
	switch {
	case !status.Applied:
		return "no migrations applied"
	case status.Dirty:
		return fmt.Sprintf("version %d (dirty)", status.Version)
	default:
		return fmt.Sprintf("version %d", status.Version)
	}
}

func cliLogger(cmd *cobra.Command) *slog.Logger {
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
}
