package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"eshop-be/internal/config"
	"eshop-be/internal/db"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"
)

// migrator is the part of *migrate.Migrate the commands drive.
type migrator interface {
	Up() error
	Down() error
	Steps(n int) error
	Version() (uint, bool, error)
	Close() (error, error)
}

var newMigrator = func(cfg *config.Config) (migrator, error) {
	return migrate.New("file://"+cfg.MigrationsPath, db.URL(cfg))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var path string

	root := &cobra.Command{
		Use:          "migrate",
		Short:        "Manage the eshop database schema",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&path, "path", "", "directory with *.up.sql / *.down.sql files (defaults to MIGRATIONS_PATH)")

	withMigrator := func(fn func(m migrator, out io.Writer) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if path != "" {
				cfg.MigrationsPath = path
			}

			m, err := newMigrator(cfg)
			if err != nil {
				return fmt.Errorf("failed to create migrate instance: %w", err)
			}
			defer m.Close()

			return fn(m, cmd.OutOrStdout())
		}
	}

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: withMigrator(func(m migrator, out io.Writer) error {
			return report(out, m.Up(), "Migrations applied successfully")
		}),
	}

	down := &cobra.Command{
		Use:   "down [steps]",
		Short: "Roll back the last migration, or the given number of steps",
		Args:  cobra.MaximumNArgs(1),
	}
	down.RunE = func(cmd *cobra.Command, args []string) error {
		steps := 1
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return fmt.Errorf("steps must be a positive number, got %q", args[0])
			}
			steps = n
		}
		return withMigrator(func(m migrator, out io.Writer) error {
			return report(out, m.Steps(-steps), fmt.Sprintf("Rolled back %d migration(s)", steps))
		})(cmd, args)
	}

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Roll back every migration",
		Args:  cobra.NoArgs,
		RunE: withMigrator(func(m migrator, out io.Writer) error {
			return report(out, m.Down(), "All migrations rolled back")
		}),
	}

	version := &cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		Args:  cobra.NoArgs,
		RunE: withMigrator(func(m migrator, out io.Writer) error {
			v, dirty, err := m.Version()
			if errors.Is(err, migrate.ErrNilVersion) {
				fmt.Fprintln(out, "No migrations applied")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Version %d (dirty: %t)\n", v, dirty)
			return nil
		}),
	}

	root.AddCommand(up, down, reset, version)
	return root
}

func report(out io.Writer, err error, done string) error {
	if errors.Is(err, migrate.ErrNoChange) {
		fmt.Fprintln(out, "No migrations to apply")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(out, done)
	return nil
}
