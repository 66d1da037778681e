// Package booking drives the reservation flow: collect the form, validate
// preconditions in a fixed order, submit once, and report the outcome with
// the same user-facing messages the booking widget shows.
package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/datban/datban-cli/internal/domain"
	"github.com/datban/datban-cli/internal/gateway/datban"
)

// Phase is the flow state. A successful submission is terminal; a failed
// one returns to editing with the form intact.
type Phase string

const (
	PhaseEditing    Phase = "editing"
	PhaseSubmitting Phase = "submitting"
	PhaseSuccess    Phase = "success"
)

// Validation messages, surfaced verbatim to the user.
const (
	MsgLoginRequired     = "Vui lòng đăng nhập để tiếp tục đặt bàn."
	MsgMissingBooking    = "Vui lòng điền đầy đủ thông tin đặt bàn."
	MsgMissingContact    = "Vui lòng nhập đầy đủ thông tin liên hệ."
	MsgPolicyNotAccepted = "Vui lòng đồng ý với điều khoản đặt bàn."
)

// PaymentMethod pairs a stable key with its display label.
type PaymentMethod struct {
	Key   string
	Label string
}

// PaymentMethods lists the supported payment options, first one default.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{
		{Key: "pay_at_restaurant", Label: "Thanh toán tại nhà hàng"},
		{Key: "bank_transfer", Label: "Chuyển khoản trước"},
		{Key: "credit_card", Label: "Thanh toán bằng thẻ"},
	}
}

func paymentLabel(key string) (string, bool) {
	for _, method := range PaymentMethods() {
		if method.Key == key {
			return method.Label, true
		}
	}
	return "", false
}

// TimeSlots lists bookable times: lunch 11:00 to 13:30 and dinner 17:00 to
// 21:00, both in 30 minute steps.
func TimeSlots() []string {
	slots := make([]string, 0, 15)
	appendRange := func(startHour, startMin, endHour, endMin int) {
		start := startHour*60 + startMin
		end := endHour*60 + endMin
		for minute := start; minute <= end; minute += 30 {
			slots = append(slots, fmt.Sprintf("%02d:%02d", minute/60, minute%60))
		}
	}
	appendRange(11, 0, 13, 30)
	appendRange(17, 0, 21, 0)
	return slots
}

// ValidTimeSlot reports whether value is one of the bookable times.
func ValidTimeSlot(value string) bool {
	for _, slot := range TimeSlots() {
		if slot == value {
			return true
		}
	}
	return false
}

const (
	// GuestsMin and GuestsMax bound the party size; GuestsDefault seeds
	// a fresh form.
	GuestsMin     = 1
	GuestsMax     = 50
	GuestsDefault = 2
)

// Form holds everything the user fills in before submitting.
type Form struct {
	RestaurantID  string
	Date          string // YYYY-MM-DD
	Time          string // HH:MM
	Guests        int
	FullName      string
	Phone         string
	Email         string
	PaymentMethod string
	Note          string
	AcceptPolicy  bool
}

// NewForm seeds a form with defaults for one restaurant.
func NewForm(restaurantID string) Form {
	return Form{
		RestaurantID:  restaurantID,
		Guests:        GuestsDefault,
		PaymentMethod: PaymentMethods()[0].Key,
	}
}

// DateBounds returns the bookable date window: today through three months
// from today.
func DateBounds(now time.Time) (time.Time, time.Time) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return today, today.AddDate(0, 3, 0)
}

// Flow runs a reservation from editing to success.
type Flow struct {
	api     datban.API
	now     func() time.Time
	phase   Phase
	form    Form
	booking domain.Booking
}

// NewFlow starts an editing flow over the given form.
func NewFlow(api datban.API, form Form) *Flow {
	return &Flow{api: api, now: time.Now, phase: PhaseEditing, form: form}
}

// Phase returns the current flow phase.
func (f *Flow) Phase() Phase { return f.phase }

// Form returns the current form. After a failed submission it still holds
// everything the user typed.
func (f *Flow) Form() Form { return f.form }

// Booking returns the confirmed booking once the flow reached success.
func (f *Flow) Booking() domain.Booking { return f.booking }

// Validate checks preconditions in presentation order and returns the first
// violation. loggedIn reflects whether a session token is present.
func (f *Flow) Validate(loggedIn bool) error {
	if !loggedIn {
		return fmt.Errorf("%s", MsgLoginRequired)
	}
	if err := f.validateBookingInfo(); err != nil {
		return err
	}
	if err := f.validateContact(); err != nil {
		return err
	}
	if !f.form.AcceptPolicy {
		return fmt.Errorf("%s", MsgPolicyNotAccepted)
	}
	return nil
}

func (f *Flow) validateBookingInfo() error {
	if f.form.RestaurantID == "" || f.form.Date == "" || f.form.Time == "" {
		return fmt.Errorf("%s", MsgMissingBooking)
	}
	if !ValidTimeSlot(f.form.Time) {
		return fmt.Errorf("%s", MsgMissingBooking)
	}
	date, err := time.ParseInLocation("2006-01-02", f.form.Date, f.now().Location())
	if err != nil {
		return fmt.Errorf("%s", MsgMissingBooking)
	}
	earliest, latest := DateBounds(f.now())
	if date.Before(earliest) || date.After(latest) {
		return fmt.Errorf("%s", MsgMissingBooking)
	}
	if f.form.Guests < GuestsMin || f.form.Guests > GuestsMax {
		return fmt.Errorf("%s", MsgMissingBooking)
	}
	return nil
}

func (f *Flow) validateContact() error {
	if strings.TrimSpace(f.form.FullName) == "" ||
		strings.TrimSpace(f.form.Phone) == "" ||
		strings.TrimSpace(f.form.Email) == "" {
		return fmt.Errorf("%s", MsgMissingContact)
	}
	if _, ok := paymentLabel(f.form.PaymentMethod); !ok {
		return fmt.Errorf("%s", MsgMissingContact)
	}
	return nil
}

// specialRequests folds contact details, payment method and the optional
// note into the free-text field the backend stores.
func (f *Flow) specialRequests() string {
	label, _ := paymentLabel(f.form.PaymentMethod)
	parts := []string{
		fmt.Sprintf("Thông tin liên hệ: %s - %s - %s",
			strings.TrimSpace(f.form.FullName),
			strings.TrimSpace(f.form.Phone),
			strings.TrimSpace(f.form.Email)),
		"Phương thức thanh toán: " + label,
	}
	if note := strings.TrimSpace(f.form.Note); note != "" {
		parts = append(parts, "Ghi chú: "+note)
	}
	return strings.Join(parts, " | ")
}

// Submit validates and sends the reservation. Validation failures never
// reach the network. On success the flow is terminal; on a backend error
// it returns to editing with the form preserved.
func (f *Flow) Submit(ctx context.Context, loggedIn bool) (domain.Booking, error) {
	if f.phase == PhaseSuccess {
		return f.booking, nil
	}
	if err := f.Validate(loggedIn); err != nil {
		return domain.Booking{}, err
	}
	f.phase = PhaseSubmitting
	booking, err := f.api.CreateBooking(ctx, domain.BookingRequest{
		RestaurantID:    f.form.RestaurantID,
		BookingDate:     f.form.Date,
		BookingTime:     f.form.Time,
		NumberOfGuests:  f.form.Guests,
		SpecialRequests: f.specialRequests(),
	})
	if err != nil {
		f.phase = PhaseEditing
		return domain.Booking{}, err
	}
	f.phase = PhaseSuccess
	f.booking = booking
	return booking, nil
}
