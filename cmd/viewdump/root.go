package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/arrayview/internal/config"
	"github.com/joshuapare/arrayview/internal/diag"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
)

var rootCmd = &cobra.Command{
	Use:   "viewdump",
	Short: "Inspect binary record files through zero-copy views",
	Long: `viewdump maps a file into memory and prints its contents as typed
elements or as one field of fixed-size records, without copying the data.`,
	Version: "0.1.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// An invalid environment was already reported when the policy loaded.
		cfg, _ := config.Load()
		return diag.Init(diagOptions(cfg, verbose))
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
}

// diagOptions keeps the configured log format and lowers the level to
// warnings unless verbose output was requested.
func diagOptions(cfg config.Config, verbose bool) diag.Options {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return diag.Options{Format: cfg.DiagFormat, Level: level}
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// element is one printed value.
type element struct {
	Index int `json:"index"`
	Value any `json:"value"`
}

// printElements writes elements as text lines or as a JSON array.
func printElements(elems []element) error {
	if jsonOut {
		return printJSON(elems)
	}
	for _, e := range elems {
		printInfo("%d\t%v\n", e.Index, e.Value)
	}
	return nil
}

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
