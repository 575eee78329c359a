package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bookinglog/bookinglog/client"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose configuration and connectivity",
		Long:  "Run diagnostic checks against config and server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor()
		},
	}
}

type checkResult struct {
	Name   string
	Passed bool
	Detail string
	Hint   string
}

func runDoctor() error {
	fmt.Println("\nBookinglog Doctor")
	fmt.Println("=================")

	var results []checkResult

	// 1. Config file.
	cfgPath, _ := configPath()
	cfg, cfgErr := loadConfigFile()
	if cfgErr != nil {
		results = append(results, checkResult{
			Name: "Config file", Passed: false,
			Detail: cfgPath,
			Hint:   "Run: bookinglog init",
		})
	} else {
		results = append(results, checkResult{
			Name: "Config file", Passed: true,
			Detail: fmt.Sprintf("found (%s)", cfgPath),
		})
	}

	url, actor := doctorResolveSettings(cfg)

	// 2. Server URL.
	if url == "" {
		results = append(results, checkResult{
			Name: "Server URL", Passed: false,
			Hint: "Set --url, BOOKINGLOG_URL, or run bookinglog init",
		})
	} else {
		results = append(results, checkResult{
			Name: "Server URL", Passed: true, Detail: url,
		})
	}

	// 3. Default actor.
	if actor == "" {
		results = append(results, checkResult{
			Name: "Default actor", Passed: false,
			Hint: "Set --actor, BOOKINGLOG_ACTOR, or run bookinglog init",
		})
	} else {
		results = append(results, checkResult{
			Name: "Default actor", Passed: true, Detail: actor,
		})
	}

	// 4. Server reachable.
	if url != "" {
		health, err := doctorCheckHealth(url)
		if err != nil {
			results = append(results, checkResult{
				Name: "Server reachable", Passed: false,
				Detail: url,
				Hint:   fmt.Sprintf("Is the bookinglog server running?\n   Error: %v", err),
			})
		} else {
			detail := fmt.Sprintf("v%s, %s backend", health.Version, health.StoreBackend)
			results = append(results, checkResult{
				Name: "Server reachable", Passed: true, Detail: detail,
			})

			// 5. Store backend health (only meaningful for postgres).
			if health.Database == "disconnected" {
				results = append(results, checkResult{
					Name: "Store", Passed: false,
					Detail: "database disconnected",
					Hint:   "Check DATABASE_URL on the server",
				})
			} else {
				results = append(results, checkResult{
					Name: "Store", Passed: true, Detail: health.Database,
				})
			}
		}
	}

	// Print results.
	fmt.Println()
	allPassed := true
	for _, r := range results {
		if r.Passed {
			if r.Detail != "" {
				fmt.Printf("✅ %s: %s\n", r.Name, r.Detail)
			} else {
				fmt.Printf("✅ %s\n", r.Name)
			}
		} else {
			allPassed = false
			if r.Detail != "" {
				fmt.Printf("❌ %s: %s\n", r.Name, r.Detail)
			} else {
				fmt.Printf("❌ %s\n", r.Name)
			}
			if r.Hint != "" {
				fmt.Printf("   Hint: %s\n", r.Hint)
			}
		}
	}

	fmt.Println()
	if allPassed {
		fmt.Println("✅ All checks passed!")
	} else {
		fmt.Println("❌ Some checks failed.")
		return fmt.Errorf("doctor found issues")
	}

	return nil
}

func doctorResolveSettings(cfg *profilesFile) (url, actor string) {
	// Flags first (use the global flag values).
	url = flagURL
	actor = flagActor

	// Env overrides defaults.
	if url == defaultURL {
		if v := os.Getenv("BOOKINGLOG_URL"); v != "" {
			url = v
		}
	}
	if actor == "" {
		actor = os.Getenv("BOOKINGLOG_ACTOR")
	}

	// Config file fills remaining gaps.
	if cfg != nil {
		cfgURL, cfgActor := cfg.resolve()
		if url == defaultURL && cfgURL != "" {
			url = cfgURL
		}
		if actor == "" && cfgActor != "" {
			actor = cfgActor
		}
	}

	return url, actor
}

func doctorCheckHealth(url string) (*client.HealthResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return client.New(url).Health(ctx)
}
