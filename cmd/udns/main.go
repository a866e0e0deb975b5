// Command udns is a thin command-line caller for the UltraDNS REST API.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	udns "github.com/ultradns/udns-go"
)

var (
	configPath string
	baseURL    string

	rootCmd = &cobra.Command{
		Use:           "udns",
		Short:         "Manage UltraDNS zones and records",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	// Load .env if present, for local development.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "REST endpoint (default "+udns.DefaultBaseURL+")")
}

// newClient builds a client from the config file and environment.
func newClient() (*udns.Client, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	opts := []udns.Option{udns.WithUserAgent("udns-cli")}
	if cfg.BaseURL != "" {
		opts = append(opts, udns.WithBaseURL(cfg.BaseURL))
	}
	return udns.New(cfg.Username, cfg.Password, opts...)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
