package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bookinglog/bookinglog/client"
)

// Build-time variables set via ldflags.
var (
	version   = "0.3.0"
	commit    = ""
	buildDate = ""
)

const defaultURL = "http://localhost:3040"

var (
	apiClient *client.Client
	flagURL   string
	flagActor string
	flagFmt   string
)

func versionString() string {
	if commit != "" && buildDate != "" {
		return fmt.Sprintf("bookinglog version %s (commit: %s, built: %s)", version, commit, buildDate)
	}
	return fmt.Sprintf("bookinglog version %s-dev", version)
}

// profileConfig holds connection settings for a single profile.
type profileConfig struct {
	URL   string `yaml:"url"`
	Actor string `yaml:"actor"`
}

// profilesFile is the top-level config file structure.
type profilesFile struct {
	Profiles      map[string]profileConfig `yaml:"profiles"`
	ActiveProfile string                   `yaml:"active_profile"`
}

func main() {
	rootCmd := &cobra.Command{
		Use:     "bookinglog",
		Short:   "Bookinglog CLI: change history for training sessions and venues",
		Version: versionString(),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			resolveConfig()
			apiClient = client.New(flagURL)
		},
		SilenceUsage: true,
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flagURL, "url", defaultURL, "Bookinglog server URL (env: BOOKINGLOG_URL)")
	rootCmd.PersistentFlags().StringVar(&flagActor, "actor", "", "Actor recorded on log entries (env: BOOKINGLOG_ACTOR)")
	rootCmd.PersistentFlags().StringVar(&flagFmt, "format", "json", "Output format: json|table|quiet")

	initCmd := newInitCmd()
	initCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {} // skip client setup
	doctorCmd := newDoctorCmd()
	doctorCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {} // skip client setup

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(newAuditCmd())
	rootCmd.AddCommand(newLogCmd())
	rootCmd.AddCommand(newVenueCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func resolveConfig() {
	// Flag takes precedence, then env, then config file.
	if flagURL == defaultURL {
		if v := os.Getenv("BOOKINGLOG_URL"); v != "" {
			flagURL = v
		}
	}
	if flagActor == "" {
		flagActor = os.Getenv("BOOKINGLOG_ACTOR")
	}

	// Try config file for any remaining defaults.
	cfg, err := loadConfigFile()
	if err != nil {
		return
	}
	url, actor := cfg.resolve()
	if flagURL == defaultURL && url != "" {
		flagURL = url
	}
	if flagActor == "" && actor != "" {
		flagActor = actor
	}
}

// configPath returns the location of the CLI config file.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".bookinglog", "config.yaml"), nil
}

func loadConfigFile() (*profilesFile, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg profilesFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// resolve picks the active profile's settings, defaulting to "default".
func (c *profilesFile) resolve() (url, actor string) {
	profile := c.ActiveProfile
	if profile == "" {
		profile = "default"
	}
	if p, ok := c.Profiles[profile]; ok {
		return p.URL, p.Actor
	}
	return "", ""
}

// requireActor exits with a hint when no actor has been configured.
func requireActor() string {
	if flagActor == "" {
		fmt.Fprintln(os.Stderr, "Error: an actor is required; set --actor, BOOKINGLOG_ACTOR, or run bookinglog init")
		os.Exit(1)
	}
	return flagActor
}

func fatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
	os.Exit(1)
}
