package core

import (
	"fmt"
	"time"

	"github.com/snnnxs25024-ux/absensi-backend/attendance/model"
)

const (
	StatusLabelOnPlan  = "On Plan"
	StatusLabelBuffer  = "Buffer"
	StatusLabelPartial = "Partial"
	StatusLabelTakeOut = "Take Out"
)

const (
	FulfillmentGap        = "GAP"
	FulfillmentFull       = "FULL FILL"
	FulfillmentFullBuffer = "FULL FILL BUFFER"
)

// EffectiveCheckout resolves the checkout to display for a record. A stored
// checkout wins. An open record past the shift cap gets a synthetic checkout
// at checkin + 9h; a fresh open record has none yet. The bool reports
// whether the returned time was auto-derived rather than operator-entered.
func EffectiveCheckout(rec model.AttendanceRecord, now time.Time) (*time.Time, bool) {
	if rec.CheckoutAt != nil {
		return rec.CheckoutAt, rec.AutoCheckout
	}
	if now.Sub(rec.CheckinAt) > MaxShiftDuration {
		t := rec.CheckinAt.Add(MaxShiftDuration)
		return &t, true
	}
	return nil, false
}

// WorkDuration is the paid span of a record, capped at the shift maximum.
// ok is false when there is no checkout yet or the data is inverted.
func WorkDuration(checkinAt time.Time, checkoutAt *time.Time) (time.Duration, bool) {
	if checkoutAt == nil {
		return 0, false
	}
	d := checkoutAt.Sub(checkinAt)
	if d < 0 {
		return 0, false
	}
	if d > MaxShiftDuration {
		d = MaxShiftDuration
	}
	return d, true
}

// FormatWorkDuration renders a duration as "8h 30m", or a dash placeholder
// when there is nothing to show.
func FormatWorkDuration(d time.Duration, ok bool) string {
	if !ok {
		return "—"
	}
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	return fmt.Sprintf("%dh %dm", h, m)
}

// StatusLabel picks the display status for a record. Take-out wins over any
// manual status; a record with neither is on plan.
func StatusLabel(rec model.AttendanceRecord) string {
	if rec.IsTakeout {
		return StatusLabelTakeOut
	}
	if rec.ManualStatus != nil {
		switch *rec.ManualStatus {
		case model.ManualStatusPartial:
			return StatusLabelPartial
		case model.ManualStatusBuffer:
			return StatusLabelBuffer
		}
	}
	return StatusLabelOnPlan
}

// ActualCount is the session headcount: every record except take-outs.
func ActualCount(records []model.AttendanceRecord) int {
	n := 0
	for _, r := range records {
		if !r.IsTakeout {
			n++
		}
	}
	return n
}

// Fulfillment classifies actual headcount against the plan.
func Fulfillment(planMpp, actual int) string {
	switch {
	case actual < planMpp:
		return FulfillmentGap
	case actual == planMpp:
		return FulfillmentFull
	default:
		return FulfillmentFullBuffer
	}
}
