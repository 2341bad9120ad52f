package main

import (
	"io"

	"github.com/spf13/cobra"

	"habit-notes/config"
	"habit-notes/pkg/log"
)

// rootOptions are the flags shared by every subcommand.
type rootOptions struct {
	configPath  string
	file        string
	sqlitePath  string
	postgresDSN string
	notesKey    string
	timezone    string
	output      string
	verbose     bool

	logger log.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "notesctl",
		Short: "Offline tools for a habit-notes collection",
		Long: `notesctl runs reminder extraction, insights and text similarity over a
notes collection, read from a JSON export or straight from the service database.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.complete(cmd)
		},
	}

	opts.addFlags(cmd)

	cmd.AddCommand(
		newExtractCmd(opts),
		newInsightsCmd(opts),
		newSimilarityCmd(opts),
		newGcalAuthCmd(),
	)
	return cmd
}

func (o *rootOptions) addFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&o.configPath, "config", "c", "", "service config.yaml to read storage and timezone defaults from")
	flags.StringVarP(&o.file, "file", "f", "", "JSON file holding the notes array")
	flags.StringVar(&o.sqlitePath, "sqlite", "", "sqlite database of the service")
	flags.StringVar(&o.postgresDSN, "postgres", "", "postgres DSN of the service")
	flags.StringVar(&o.notesKey, "key", "", "kv_store key the notes are stored under")
	flags.StringVar(&o.timezone, "timezone", "UTC", "timezone for due dates and streaks")
	flags.StringVarP(&o.output, "output", "o", formatJSON, "output format: json or yaml")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "enable debug logging on stderr")
}

// complete applies config file defaults to flags the user did not set and
// builds the logger.
func (o *rootOptions) complete(cmd *cobra.Command) error {
	if err := validateFormat(o.output); err != nil {
		return err
	}

	if o.configPath != "" {
		cfg, err := config.LoadFile(o.configPath)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if !flags.Changed("key") {
			o.notesKey = cfg.Storage.NotesKey
		}
		if !flags.Changed("timezone") {
			o.timezone = cfg.Reminder.Timezone
		}
		if o.file == "" && o.sqlitePath == "" && o.postgresDSN == "" {
			switch cfg.Storage.Driver {
			case config.StorageDriverSQLite:
				o.sqlitePath = cfg.Storage.SQLitePath
			case config.StorageDriverPostgres:
				o.postgresDSN = cfg.Storage.PostgresDSN
			}
		}
	}

	o.logger = newLogger(o.verbose, cmd.ErrOrStderr())
	return nil
}

func newLogger(verbose bool, w io.Writer) log.Logger {
	if !verbose {
		return log.NewNop()
	}
	return log.Init(log.ZapConfig{
		Level:    "debug",
		Mode:     log.ModeDevelopment,
		Encoding: log.EncodingConsole,
		Output:   w,
	})
}
