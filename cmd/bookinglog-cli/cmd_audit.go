package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/bookinglog/bookinglog/client"
)

func newAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Query change history",
	}
	cmd.AddCommand(auditQueryCmd())
	cmd.AddCommand(auditHistoryCmd())
	cmd.AddCommand(auditSummaryCmd())
	return cmd
}

func auditQueryCmd() *cobra.Command {
	var (
		subject, action, actor string
		from, to               string
		limit, offset          int
	)
	cmd := &cobra.Command{
		Use:   "query",
		Short: "List audit records, newest first",
		Run: func(cmd *cobra.Command, args []string) {
			if limit < 0 || offset < 0 {
				fmt.Fprintln(os.Stderr, "Error: --limit and --offset must be non-negative")
				os.Exit(1)
			}

			opts := client.AuditQueryOptions{
				SubjectID: subject,
				Action:    action,
				Actor:     actor,
				Limit:     limit,
				Offset:    offset,
			}
			if from != "" {
				t, err := time.Parse(time.RFC3339, from)
				if err != nil {
					fatal("parse --from", err)
				}
				opts.From = &t
			}
			if to != "" {
				t, err := time.Parse(time.RFC3339, to)
				if err != nil {
					fatal("parse --to", err)
				}
				opts.To = &t
			}

			records, hasMore, err := apiClient.Audit.Query(context.Background(), opts)
			if err != nil {
				fatal("query audit", err)
			}

			if flagFmt == "table" {
				printRecordTable(records)
				if hasMore {
					fmt.Println("\n(more records available; use --offset)")
				}
				return
			}
			output(map[string]any{"data": records, "has_more": hasMore}, strconv.Itoa(len(records)))
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "Filter by subject id")
	cmd.Flags().StringVar(&action, "action", "", "Filter by action type")
	cmd.Flags().StringVar(&actor, "by", "", "Filter by actor substring")
	cmd.Flags().StringVar(&from, "from", "", "Only records at or after this RFC3339 time")
	cmd.Flags().StringVar(&to, "to", "", "Only records at or before this RFC3339 time")
	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum records to return")
	cmd.Flags().IntVar(&offset, "offset", 0, "Records to skip")
	return cmd
}

func auditHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history <subject-id>",
		Short: "Show the full history for one subject",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			records, err := apiClient.Audit.RecordsFor(context.Background(), args[0])
			if err != nil {
				fatal("fetch history", err)
			}

			if flagFmt == "table" {
				printRecordTable(records)
				return
			}
			output(records, strconv.Itoa(len(records)))
		},
	}
}

func auditSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary <subject-id>",
		Short: "Summarize one subject's history",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			summary, err := apiClient.Audit.Summary(context.Background(), args[0])
			if err != nil {
				fatal("fetch summary", err)
			}

			if flagFmt == "table" {
				printSummary(summary)
				return
			}
			output(summary, strconv.Itoa(summary.Total))
		},
	}
}

func printRecordTable(records []client.AuditRecord) {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		change := ""
		if r.PreviousValue != "" || r.NewValue != "" {
			change = fmt.Sprintf("%s -> %s", r.PreviousValue, r.NewValue)
		}
		rows = append(rows, []string{
			r.Timestamp.Local().Format("2006-01-02 15:04"),
			r.SubjectID,
			r.ActionType,
			truncate(r.PerformedBy, 28),
			truncate(change, 40),
		})
	}
	formatTable([]string{"TIME", "SUBJECT", "ACTION", "BY", "CHANGE"}, rows)
}

func printSummary(s *client.Summary) {
	fmt.Printf("Subject: %s\n", s.SubjectID)
	fmt.Printf("Records: %d\n", s.Total)
	if s.NewestRelative != "" {
		fmt.Printf("Latest:  %s\n", s.NewestRelative)
	}
	fmt.Println()

	actions := make([]string, 0, len(s.CountsByAction))
	for a := range s.CountsByAction {
		actions = append(actions, a)
	}
	sort.Strings(actions)

	rows := make([][]string, 0, len(actions))
	for _, a := range actions {
		rows = append(rows, []string{a, strconv.Itoa(s.CountsByAction[a])})
	}
	formatTable([]string{"ACTION", "COUNT"}, rows)

	if len(s.Recent) > 0 {
		fmt.Println()
		printRecordTable(s.Recent)
	}
}
