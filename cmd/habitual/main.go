package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/cli/backups"
	"github.com/julianstephens/habitual/internal/cli/habits"
	"github.com/julianstephens/habitual/internal/cli/logs"
	"github.com/julianstephens/habitual/internal/cli/system"
	"github.com/julianstephens/habitual/internal/cli/track"
	"github.com/julianstephens/habitual/internal/cli/views"
	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/keyring"
	"github.com/julianstephens/habitual/internal/logger"
	"github.com/julianstephens/habitual/internal/storage"
	"github.com/julianstephens/habitual/internal/storage/jsonstore"
	"github.com/julianstephens/habitual/internal/storage/postgres"
	"github.com/julianstephens/habitual/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database path, JSON file path, or PostgreSQL connection string. PostgreSQL credentials must NOT be embedded; use the OS keyring or .pgpass." default:"~/.config/habitual/habitual.db"`
	Debug   bool   `help:"Log to stderr as well as the log file."`

	Init    system.InitCmd    `cmd:"" help:"Initialize habitual storage."`
	Migrate system.MigrateCmd `cmd:"" help:"Run database migrations."`
	Tui     system.TuiCmd     `cmd:"" help:"Launch the interactive dashboard." default:"1"`

	Habit struct {
		Add     habits.HabitAddCmd     `cmd:"" help:"Add a new habit."`
		List    habits.HabitListCmd    `cmd:"" help:"List habits."`
		Edit    habits.HabitEditCmd    `cmd:"" help:"Edit a habit."`
		Delete  habits.HabitDeleteCmd  `cmd:"" help:"Delete a habit and its history."`
		Archive habits.HabitArchiveCmd `cmd:"" help:"Archive a habit."`
	} `cmd:"" help:"Manage habits."`

	Log logs.LogCmd `cmd:"" help:"Log time against a habit."`

	Track struct {
		Start  track.TrackStartCmd  `cmd:"" help:"Start a tracking session."`
		Stop   track.TrackStopCmd   `cmd:"" help:"Stop the active session."`
		Status track.TrackStatusCmd `cmd:"" help:"Show active sessions." default:"1"`
	} `cmd:"" help:"Track time live."`

	Day       views.DayCmd       `cmd:"" help:"Show a day's progress."`
	Week      views.WeekCmd      `cmd:"" help:"Show the last 7 days."`
	Analytics views.AnalyticsCmd `cmd:"" help:"Show time distribution and streaks."`

	Clear struct {
		Today cli.ClearTodayCmd `cmd:"" help:"Clear today's logs and sessions."`
		All   cli.ClearAllCmd   `cmd:"" help:"Clear all logs and sessions."`
	} `cmd:"" help:"Clear logged data."`

	Seed  system.SeedCmd  `cmd:"" help:"Seed sample habits and logs."`
	Quote system.QuoteCmd `cmd:"" help:"Show today's quote."`

	Remind system.RemindCmd `cmd:"" help:"Run the daily reminder daemon."`

	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`

	ConfigCmd struct {
		Show system.ConfigShowCmd `cmd:"" help:"Show current settings." default:"1"`
		Set  system.ConfigSetCmd  `cmd:"" help:"Change a setting."`
	} `cmd:"" name:"config" help:"Manage settings."`

	Keyring struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store a PostgreSQL connection string in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored connection string (password masked)."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
		Status system.KeyringStatusCmd `cmd:"" help:"Check keyring availability."`
	} `cmd:"" help:"Manage stored database credentials."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Habit-tracking dashboard: log time, track sessions, keep streaks"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configDir := filepath.Dir(expandPath(constants.DefaultConfigPath))
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	store, err := openStore(expandPath(CLI.Config))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// init creates the schema itself and the keyring commands never touch
	// the store, so neither loads it.
	command := ctx.Command()
	if command != "init" && !strings.HasPrefix(command, "keyring") {
		if err := store.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	defer store.Close()

	if err := ctx.Run(&cli.Context{Store: store}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openStore picks the provider from the config value: a PostgreSQL
// connection string (explicit or from the keyring), a .json file, or the
// default sqlite database.
func openStore(config string) (storage.Provider, error) {
	if isPostgres(config) {
		if postgres.HasEmbeddedCredentials(config) {
			return nil, errors.New("PostgreSQL connection strings with embedded credentials are not allowed; store credentials with 'habitual keyring set' or use .pgpass")
		}
		return postgres.New(config), nil
	}

	// A stored keyring connection string overrides the default local path.
	if config == expandPath(constants.DefaultConfigPath) {
		if connStr, err := keyring.GetConnectionString(); err == nil && isPostgres(connStr) {
			return postgres.New(connStr), nil
		}
	}

	if strings.HasSuffix(config, ".json") {
		return jsonstore.New(config), nil
	}
	return sqlite.NewStore(config), nil
}

func isPostgres(s string) bool {
	return strings.HasPrefix(s, "postgres://") || strings.HasPrefix(s, "postgresql://")
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
