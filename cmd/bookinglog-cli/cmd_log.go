package main

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/bookinglog/bookinglog/client"
)

func newLogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record session events",
	}
	cmd.AddCommand(logCreatedCmd())
	cmd.AddCommand(logUpdatedCmd())
	cmd.AddCommand(logCancelledCmd())
	cmd.AddCommand(logBookingCmd())
	cmd.AddCommand(logBookingCancelCmd())
	cmd.AddCommand(logTransferCmd())
	cmd.AddCommand(logZoomLinkCmd())
	cmd.AddCommand(logNoteCmd())
	return cmd
}

func logCreatedCmd() *cobra.Command {
	var snapshotJSON string
	cmd := &cobra.Command{
		Use:   "created <session-id>",
		Short: "Record a session creation",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			var snapshot client.SessionSnapshot
			if err := json.Unmarshal([]byte(snapshotJSON), &snapshot); err != nil {
				fatal("parse --snapshot", err)
			}
			rec, err := apiClient.Sessions.LogCreated(context.Background(), args[0], snapshot, requireActor())
			if err != nil {
				fatal("log created", err)
			}
			output(rec, rec.ID)
		},
	}
	cmd.Flags().StringVar(&snapshotJSON, "snapshot", "", "Session snapshot as JSON")
	cmd.MarkFlagRequired("snapshot") //nolint:errcheck
	return cmd
}

func logUpdatedCmd() *cobra.Command {
	var prevJSON, nextJSON string
	cmd := &cobra.Command{
		Use:   "updated <session-id>",
		Short: "Diff two session snapshots and record the changes",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			var prev, next client.SessionSnapshot
			if err := json.Unmarshal([]byte(prevJSON), &prev); err != nil {
				fatal("parse --previous", err)
			}
			if err := json.Unmarshal([]byte(nextJSON), &next); err != nil {
				fatal("parse --next", err)
			}
			changes, err := apiClient.Sessions.LogUpdated(context.Background(), args[0], prev, next, requireActor())
			if err != nil {
				fatal("log updated", err)
			}
			quiet := ""
			if len(changes.Records) > 0 {
				quiet = changes.Records[0].ID
			}
			output(changes, quiet)
		},
	}
	cmd.Flags().StringVar(&prevJSON, "previous", "", "Previous snapshot as JSON")
	cmd.Flags().StringVar(&nextJSON, "next", "", "New snapshot as JSON")
	cmd.MarkFlagRequired("previous") //nolint:errcheck
	cmd.MarkFlagRequired("next")     //nolint:errcheck
	return cmd
}

func logCancelledCmd() *cobra.Command {
	var reason string
	cmd := &cobra.Command{
		Use:   "cancelled <session-id>",
		Short: "Record a session cancellation",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			rec, err := apiClient.Sessions.LogCancelled(context.Background(), args[0], reason, requireActor())
			if err != nil {
				fatal("log cancelled", err)
			}
			output(rec, rec.ID)
		},
	}
	cmd.Flags().StringVar(&reason, "reason", "", "Cancellation reason")
	return cmd
}

func logBookingCmd() *cobra.Command {
	var ref, name, email string
	cmd := &cobra.Command{
		Use:   "booking <session-id>",
		Short: "Record a new booking",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			booking := client.BookingInfo{BookingReference: ref, AttendeeName: name, AttendeeEmail: email}
			rec, err := apiClient.Sessions.LogBookingAdded(context.Background(), args[0], booking, requireActor())
			if err != nil {
				fatal("log booking", err)
			}
			output(rec, rec.ID)
		},
	}
	cmd.Flags().StringVar(&ref, "ref", "", "Booking reference")
	cmd.Flags().StringVar(&name, "name", "", "Attendee name")
	cmd.Flags().StringVar(&email, "email", "", "Attendee email")
	cmd.MarkFlagRequired("ref")  //nolint:errcheck
	cmd.MarkFlagRequired("name") //nolint:errcheck
	return cmd
}

func logBookingCancelCmd() *cobra.Command {
	var ref, name string
	var refund bool
	cmd := &cobra.Command{
		Use:   "booking-cancel <session-id>",
		Short: "Record a booking cancellation",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			booking := client.BookingInfo{BookingReference: ref, AttendeeName: name, RefundIssued: refund}
			rec, err := apiClient.Sessions.LogBookingCancelled(context.Background(), args[0], booking, requireActor())
			if err != nil {
				fatal("log booking-cancel", err)
			}
			output(rec, rec.ID)
		},
	}
	cmd.Flags().StringVar(&ref, "ref", "", "Booking reference")
	cmd.Flags().StringVar(&name, "name", "", "Attendee name")
	cmd.Flags().BoolVar(&refund, "refund", false, "Whether a refund was issued")
	cmd.MarkFlagRequired("ref")  //nolint:errcheck
	cmd.MarkFlagRequired("name") //nolint:errcheck
	return cmd
}

func logTransferCmd() *cobra.Command {
	var ref, name, fromSession, toSession string
	cmd := &cobra.Command{
		Use:   "transfer <session-id>",
		Short: "Record an attendee transfer between sessions",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			transfer := client.TransferInfo{
				BookingReference: ref,
				AttendeeName:     name,
				FromSessionID:    fromSession,
				ToSessionID:      toSession,
			}
			rec, err := apiClient.Sessions.LogAttendeeTransferred(context.Background(), args[0], transfer, requireActor())
			if err != nil {
				fatal("log transfer", err)
			}
			output(rec, rec.ID)
		},
	}
	cmd.Flags().StringVar(&ref, "ref", "", "Booking reference")
	cmd.Flags().StringVar(&name, "name", "", "Attendee name")
	cmd.Flags().StringVar(&fromSession, "from", "", "Source session id")
	cmd.Flags().StringVar(&toSession, "to", "", "Destination session id")
	cmd.MarkFlagRequired("ref")  //nolint:errcheck
	cmd.MarkFlagRequired("name") //nolint:errcheck
	cmd.MarkFlagRequired("from") //nolint:errcheck
	cmd.MarkFlagRequired("to")   //nolint:errcheck
	return cmd
}

func logZoomLinkCmd() *cobra.Command {
	var link string
	var isNew bool
	cmd := &cobra.Command{
		Use:   "zoom-link <session-id>",
		Short: "Record a meeting link being added or replaced",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			rec, err := apiClient.Sessions.LogZoomLinkChanged(context.Background(), args[0], link, isNew, requireActor())
			if err != nil {
				fatal("log zoom-link", err)
			}
			output(rec, rec.ID)
		},
	}
	cmd.Flags().StringVar(&link, "link", "", "Meeting link URL")
	cmd.Flags().BoolVar(&isNew, "new", false, "Link is being added for the first time")
	cmd.MarkFlagRequired("link") //nolint:errcheck
	return cmd
}

func logNoteCmd() *cobra.Command {
	var note string
	cmd := &cobra.Command{
		Use:   "note <session-id>",
		Short: "Record a free-text note",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			rec, err := apiClient.Sessions.LogNoteAdded(context.Background(), args[0], note, requireActor())
			if err != nil {
				fatal("log note", err)
			}
			output(rec, rec.ID)
		},
	}
	cmd.Flags().StringVar(&note, "note", "", "Note text")
	cmd.MarkFlagRequired("note") //nolint:errcheck
	return cmd
}
