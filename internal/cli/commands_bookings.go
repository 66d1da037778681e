package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/datban/datban-cli/internal/domain"
	"github.com/datban/datban-cli/internal/service/output"
)

func newBookingsCommand(deps Dependencies) *cobra.Command {
	bookings := &cobra.Command{
		Use:   "bookings",
		Short: "Manage table reservations.",
	}
	bookings.AddCommand(newBookingsListCommand(deps))
	bookings.AddCommand(newBookingsGetCommand(deps))
	bookings.AddCommand(newBookingsCancelCommand(deps))
	bookings.AddCommand(newBookingsUpdateStatusCommand(deps))
	return bookings
}

func newBookingsListCommand(deps Dependencies) *cobra.Command {
	var flags globalFlags
	var restaurantID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your bookings, or a restaurant's bookings.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseOutputFormat(flags.Format)
			if err != nil {
				return err
			}
			if _, err := requireLogin(cmd.Context(), deps, cmd, format, flags.Output); err != nil {
				return err
			}
			var bookings []domain.Booking
			if restaurantID != "" {
				bookings, err = deps.API.Bookings(cmd.Context(), restaurantID)
			} else {
				bookings, err = deps.API.MyBookings(cmd.Context())
			}
			if err != nil {
				return emitBackendError(cmd, format, flags.Output, flags.Verbose, err)
			}

			if format == output.FormatTable {
				return writeTable(cmd, buildBookingsTable("Bookings", bookings), flags.Output)
			}
			env := output.BuildEnvelope(output.SourceAPI, map[string]any{
				"bookings": bookings,
				"count":    len(bookings),
			}, nil, nil)
			return writeMachinePayload(cmd, env, format, flags.Output)
		},
	}

	cmd.Flags().StringVar(&restaurantID, "restaurant", "", "List bookings of this restaurant instead of your own.")
	addGlobalFlags(cmd, &flags)
	return cmd
}

func newBookingsGetCommand(deps Dependencies) *cobra.Command {
	var flags globalFlags

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one booking.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(flags.Format)
			if err != nil {
				return err
			}
			if _, err := requireLogin(cmd.Context(), deps, cmd, format, flags.Output); err != nil {
				return err
			}
			booked, err := deps.API.BookingByID(cmd.Context(), args[0])
			if err != nil {
				return emitBackendError(cmd, format, flags.Output, flags.Verbose, err)
			}

			if format == output.FormatTable {
				lines := []string{
					"Booking: " + booked.ID,
					"Restaurant: " + booked.FormatRestaurant(),
					"When: " + booked.FormatWhen(),
					"Guests: " + strconv.Itoa(booked.NumberOfGuests),
					"Status: " + booked.FormatStatus(),
				}
				if booked.SpecialRequests != "" {
					lines = append(lines, "Requests: "+booked.SpecialRequests)
				}
				if booked.CancellationReason != "" {
					lines = append(lines, "Cancellation reason: "+booked.CancellationReason)
				}
				return writeTable(cmd, strings.Join(lines, "\n"), flags.Output)
			}
			env := output.BuildEnvelope(output.SourceAPI, booked, nil, nil)
			return writeMachinePayload(cmd, env, format, flags.Output)
		},
	}

	addGlobalFlags(cmd, &flags)
	return cmd
}

func newBookingsCancelCommand(deps Dependencies) *cobra.Command {
	var flags globalFlags
	var reason string

	cmd := &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel one booking.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(flags.Format)
			if err != nil {
				return err
			}
			if _, err := requireLogin(cmd.Context(), deps, cmd, format, flags.Output); err != nil {
				return err
			}
			var booked domain.Booking
			if reason != "" {
				booked, err = deps.API.UpdateBookingStatus(cmd.Context(), args[0], domain.BookingStatusCancelled, reason)
			} else {
				booked, err = deps.API.CancelBooking(cmd.Context(), args[0])
			}
			if err != nil {
				return emitBackendError(cmd, format, flags.Output, flags.Verbose, err)
			}

			if format == output.FormatTable {
				return writeTable(cmd, "Booking "+booked.ID+" is now: "+booked.FormatStatus(), flags.Output)
			}
			env := output.BuildEnvelope(output.SourceAPI, booked, nil, nil)
			return writeMachinePayload(cmd, env, format, flags.Output)
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "Cancellation reason recorded with the booking.")
	addGlobalFlags(cmd, &flags)
	return cmd
}

func newBookingsUpdateStatusCommand(deps Dependencies) *cobra.Command {
	var flags globalFlags
	var status string
	var reason string

	validStatuses := []string{
		domain.BookingStatusPending,
		domain.BookingStatusConfirmed,
		domain.BookingStatusCancelled,
		domain.BookingStatusCompleted,
		domain.BookingStatusNoShow,
	}

	cmd := &cobra.Command{
		Use:   "update-status <id>",
		Short: "Transition one booking's status.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(flags.Format)
			if err != nil {
				return err
			}
			normalized := strings.ToUpper(strings.TrimSpace(status))
			valid := false
			for _, candidate := range validStatuses {
				if candidate == normalized {
					valid = true
					break
				}
			}
			if !valid {
				return fmt.Errorf("--status must be one of %s", strings.Join(validStatuses, ", "))
			}
			if _, err := requireLogin(cmd.Context(), deps, cmd, format, flags.Output); err != nil {
				return err
			}
			booked, err := deps.API.UpdateBookingStatus(cmd.Context(), args[0], normalized, reason)
			if err != nil {
				return emitBackendError(cmd, format, flags.Output, flags.Verbose, err)
			}

			if format == output.FormatTable {
				return writeTable(cmd, "Booking "+booked.ID+" is now: "+booked.FormatStatus(), flags.Output)
			}
			env := output.BuildEnvelope(output.SourceAPI, booked, nil, nil)
			return writeMachinePayload(cmd, env, format, flags.Output)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "New status: PENDING, CONFIRMED, CANCELLED, COMPLETED, or NO_SHOW.")
	cmd.Flags().StringVar(&reason, "reason", "", "Cancellation reason (with --status CANCELLED).")
	addGlobalFlags(cmd, &flags)
	return cmd
}

func buildBookingsTable(title string, bookings []domain.Booking) string {
	headers := []string{"ID", "Restaurant", "When", "Guests", "Status"}
	rows := [][]string{}
	for _, booked := range bookings {
		rows = append(rows, []string{
			booked.ID,
			booked.FormatRestaurant(),
			booked.FormatWhen(),
			strconv.Itoa(booked.NumberOfGuests),
			booked.FormatStatus(),
		})
	}
	return output.RenderTable(title, headers, rows)
}
