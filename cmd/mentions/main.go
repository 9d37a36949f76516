package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/deusflow/mentions/internal/app"
	"github.com/deusflow/mentions/internal/config"
	"github.com/deusflow/mentions/internal/logger"
	"github.com/deusflow/mentions/internal/metrics"
)

var (
	personName string
	dateArg    string
	recipient  string
	outputPath string
	noResolve  bool
	debugMode  bool
)

var rootCmd = &cobra.Command{
	Use:   "mentions",
	Short: "Search news for mentions of a person and compile a sentiment report",
	Long: `mentions collects news article URLs for a person on a given day from
Google News RSS and NewsAPI, extracts each article, finds sentences
mentioning the person, asks a language model for a summary and sentiment
judgment, and prints (and optionally emails) a compiled report.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		logger.Init(debugMode)

		day, err := parseDay(dateArg)
		if err != nil {
			return err
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if noResolve {
			cfg.ResolveLinks = false
		}
		if debugMode {
			cfg.Debug = true
		}

		if os.Getenv("ENABLE_HTTP_MONITORING") == "true" {
			go startMonitoringServer()
		}

		application, err := app.New(cfg)
		if err != nil {
			return err
		}
		defer application.Close()

		rep, err := application.Run(app.Query{
			Person:    personName,
			Day:       day,
			Recipient: recipient,
		})
		if err != nil {
			return err
		}

		rendered := rep.Render()
		fmt.Print(rendered)

		if outputPath != "" {
			if err := os.WriteFile(outputPath, []byte(rendered), 0644); err != nil {
				return fmt.Errorf("writing report file: %w", err)
			}
			slog.Info("report written", "path", outputPath)
		}
		return nil
	},
}

// parseDay reads a YYYY-MM-DD date; empty means yesterday.
func parseDay(arg string) (time.Time, error) {
	if arg == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1), nil
	}
	day, err := time.Parse("2006-01-02", arg)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q, expected YYYY-MM-DD", arg)
	}
	return day, nil
}

func startMonitoringServer() {
	port := os.Getenv("MONITORING_PORT")
	if port == "" {
		port = "8080"
	}

	http.HandleFunc("/health", healthHandler)
	http.HandleFunc("/metrics", metricsHandler)

	slog.Info("starting monitoring server", "port", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		slog.Error("monitoring server error", "error", err)
	}
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	stats := metrics.Global.GetStats()

	status := "ok"
	if !stats["is_healthy"].(bool) {
		status = "error"
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	response := map[string]interface{}{
		"status":     status,
		"last_run":   stats["last_run_time"],
		"last_error": stats["last_error"],
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func metricsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(metrics.Global.GetStats())
}

func init() {
	rootCmd.Flags().StringVar(&personName, "person", "", "full name of the person to search for")
	rootCmd.Flags().StringVar(&dateArg, "date", "", "day to search, YYYY-MM-DD (default: yesterday)")
	rootCmd.Flags().StringVar(&recipient, "email", "", "optional recipient address for the emailed report")
	rootCmd.Flags().StringVar(&outputPath, "output", "", "optional path to write the text report to")
	rootCmd.Flags().BoolVar(&noResolve, "no-resolve", false, "skip Google News redirect resolution")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "enable debug logging")
	_ = rootCmd.MarkFlagRequired("person")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
