package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bookinglog/bookinglog/client"
)

func newInitCmd() *cobra.Command {
	var (
		initURL   string
		initActor string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Set up Bookinglog CLI configuration",
		Long:  "Interactive setup wizard that creates ~/.bookinglog/config.yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			nonInteractive := initURL != "" || initActor != ""
			return runInit(initURL, initActor, nonInteractive)
		},
	}

	cmd.Flags().StringVar(&initURL, "url", "", "Server URL (non-interactive mode)")
	cmd.Flags().StringVar(&initActor, "actor", "", "Default actor (non-interactive mode)")
	return cmd
}

func runInit(url, actor string, nonInteractive bool) error {
	if !nonInteractive {
		fmt.Println("\n  Bookinglog Setup")
		fmt.Println("  ----------------")
		fmt.Println()

		reader := bufio.NewReader(os.Stdin)

		fmt.Printf("  Server URL [%s]: ", defaultURL)
		line, _ := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line != "" {
			url = line
		}

		fmt.Print("  Default actor (name or email): ")
		actorLine, _ := reader.ReadString('\n')
		actor = strings.TrimSpace(actorLine)
	}

	if url == "" {
		url = defaultURL
	}

	if actor == "" {
		return fmt.Errorf("an actor is required")
	}

	// Test connection.
	if !nonInteractive {
		fmt.Print("\n  Checking server... ")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if _, err := client.New(url).Health(ctx); err != nil {
			fmt.Printf("unreachable (%v)\n  Saving config anyway.\n", err)
		} else {
			fmt.Println("ok")
		}
	}

	path, err := configPath()
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	// Merge into existing profiles when the file already exists.
	cfg, err := loadConfigFile()
	if err != nil {
		cfg = &profilesFile{Profiles: map[string]profileConfig{}}
	}
	if cfg.Profiles == nil {
		cfg.Profiles = map[string]profileConfig{}
	}
	cfg.Profiles["default"] = profileConfig{URL: url, Actor: actor}
	if cfg.ActiveProfile == "" {
		cfg.ActiveProfile = "default"
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	fmt.Printf("\n  Config written to %s\n", path)
	return nil
}
