package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"flatmap/mapping"
	"flatmap/store"
)

var (
	// Global flags
	cfgFile  string
	logLevel string

	cfg    Config
	logger zerolog.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "flatmap",
	Short: "Map flat key/value input to purchase orders and back",
	Long: `flatmap maps posted form fields and query strings to a demonstration
purchase order model and back.

Examples:
  flatmap describe
  flatmap decode 'Id=7&PlacedYear=2024&PlacedMonth=5&PlacedDay=1&Lines[0].Sku=A-1'
  flatmap encode order.yaml
  flatmap check 'Id=7&Lines[0].Skuu=A-1'`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (YAML)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level, overrides the config file")
}

func setup(cmd *cobra.Command, _ []string) error {
	var err error

	cfg, err = LoadConfig(cfgFile)
	if err != nil {
		return err
	}

	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	logger, err = newLogger(cmd.ErrOrStderr(), cfg.LogLevel)

	return err
}

func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level: %w", err)
	}

	out := zerolog.ConsoleWriter{Out: w, NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}}

	return zerolog.New(out).Level(lvl).With().Logger(), nil
}

// orderSerializer builds the demonstration mapping with the
// configured options.
func orderSerializer() (*mapping.Serializer[store.Order], error) {
	opts, err := cfg.MappingOptions(logger)
	if err != nil {
		return nil, err
	}

	return BuildOrderSerializer(opts...)
}

// readInput returns the first argument, or stdin when it is absent or "-".
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		return args[0], nil
	}

	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}

	return strings.TrimSpace(string(b)), nil
}
