package booking

import (
	"fmt"
	"os"

	"github.com/skip2/go-qrcode"

	"github.com/datban/datban-cli/internal/domain"
)

// ConfirmationQR encodes a booking confirmation as a PNG QR code. The
// payload carries the booking id, date and time so the restaurant can look
// the reservation up at the door.
func ConfirmationQR(booking domain.Booking, size int) ([]byte, error) {
	if size <= 0 {
		size = 256
	}
	payload := fmt.Sprintf("datban://bookings/%s?date=%s&time=%s",
		booking.ID, booking.BookingDate, booking.BookingTime)
	png, err := qrcode.Encode(payload, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode confirmation qr: %w", err)
	}
	return png, nil
}

// WriteConfirmationQR writes the confirmation QR code to path.
func WriteConfirmationQR(booking domain.Booking, path string) error {
	png, err := ConfirmationQR(booking, 256)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return fmt.Errorf("write confirmation qr: %w", err)
	}
	return nil
}
