package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/datban/datban-cli/internal/service/booking"
	"github.com/datban/datban-cli/internal/service/output"
)

func newBookCommand(deps Dependencies) *cobra.Command {
	var flags globalFlags
	var form booking.Form
	var qrPath string
	var listSlots bool

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book a table at a restaurant.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseOutputFormat(flags.Format)
			if err != nil {
				return err
			}
			if listSlots {
				return writeTable(cmd, "Available times:\n"+strings.Join(booking.TimeSlots(), "\n"), flags.Output)
			}

			_, loggedIn := loadedSession(cmd.Context(), deps)
			flow := booking.NewFlow(deps.API, form)
			if err := flow.Validate(loggedIn); err != nil {
				return emitError(cmd, format, flags.Output, "DATBAN_BOOKING_INVALID", err.Error())
			}
			booked, err := flow.Submit(cmd.Context(), loggedIn)
			if err != nil {
				return emitBackendError(cmd, format, flags.Output, flags.Verbose, err)
			}

			warnings := []string{}
			if qrPath != "" {
				if err := booking.WriteConfirmationQR(booked, qrPath); err != nil {
					warnings = append(warnings, "could not write confirmation QR: "+err.Error())
				}
			}

			if format == output.FormatTable {
				text := "Đặt bàn thành công!" +
					"\nBooking: " + booked.ID +
					"\nRestaurant: " + booked.FormatRestaurant() +
					"\nWhen: " + booked.FormatWhen() +
					"\nStatus: " + booked.FormatStatus()
				if qrPath != "" && len(warnings) == 0 {
					text += "\nQR: " + qrPath
				}
				if len(warnings) > 0 {
					text += "\n" + strings.Join(warnings, "\n")
				}
				return writeTable(cmd, text, flags.Output)
			}
			env := output.BuildEnvelope(output.SourceAPI, booked, warnings, nil)
			return writeMachinePayload(cmd, env, format, flags.Output)
		},
	}

	defaults := booking.NewForm("")
	cmd.Flags().StringVar(&form.RestaurantID, "restaurant", "", "Restaurant id to book.")
	cmd.Flags().StringVar(&form.Date, "date", "", "Booking date (YYYY-MM-DD, up to three months ahead).")
	cmd.Flags().StringVar(&form.Time, "time", "", "Booking time (see --list-slots).")
	cmd.Flags().IntVar(&form.Guests, "guests", defaults.Guests, "Number of guests (1-50).")
	cmd.Flags().StringVar(&form.FullName, "name", "", "Contact full name.")
	cmd.Flags().StringVar(&form.Phone, "phone", "", "Contact phone number.")
	cmd.Flags().StringVar(&form.Email, "email", "", "Contact email.")
	cmd.Flags().StringVar(&form.PaymentMethod, "payment", defaults.PaymentMethod, "Payment method: pay_at_restaurant, bank_transfer, or credit_card.")
	cmd.Flags().StringVar(&form.Note, "note", "", "Optional note for the restaurant.")
	cmd.Flags().BoolVar(&form.AcceptPolicy, "accept-policy", false, "Accept the booking terms.")
	cmd.Flags().StringVar(&qrPath, "qr", "", "Write a confirmation QR code PNG to this path.")
	cmd.Flags().BoolVar(&listSlots, "list-slots", false, "Print the bookable time slots and exit.")
	addGlobalFlags(cmd, &flags)
	return cmd
}
