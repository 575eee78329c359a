package main

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bookinglog/bookinglog/client"
)

func newVenueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "venue",
		Short: "Record venue changes",
	}
	cmd.AddCommand(venueChangesCmd())
	return cmd
}

func venueChangesCmd() *cobra.Command {
	var prevJSON, nextJSON string
	cmd := &cobra.Command{
		Use:   "changes <venue-id>",
		Short: "Diff two venue snapshots and record the changes",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			var prev, next client.VenueSnapshot
			if err := json.Unmarshal([]byte(prevJSON), &prev); err != nil {
				fatal("parse --previous", err)
			}
			if err := json.Unmarshal([]byte(nextJSON), &next); err != nil {
				fatal("parse --next", err)
			}
			records, err := apiClient.Venues.LogChanges(context.Background(), args[0], prev, next, requireActor())
			if err != nil {
				fatal("venue changes", err)
			}
			if flagFmt == "table" {
				printRecordTable(records)
				return
			}
			output(records, strconv.Itoa(len(records)))
		},
	}
	cmd.Flags().StringVar(&prevJSON, "previous", "", "Previous snapshot as JSON")
	cmd.Flags().StringVar(&nextJSON, "next", "", "New snapshot as JSON")
	cmd.MarkFlagRequired("previous") //nolint:errcheck
	cmd.MarkFlagRequired("next")     //nolint:errcheck
	return cmd
}
