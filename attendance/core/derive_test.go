package core

import (
	"testing"
	"time"

	"github.com/snnnxs25024-ux/absensi-backend/attendance/model"
	"github.com/snnnxs25024-ux/absensi-backend/utils"
	"github.com/stretchr/testify/assert"
)

func TestEffectiveCheckout(t *testing.T) {
	checkin := at("2025-10-20T07:00:00+07:00")

	t.Run("stored checkout wins", func(t *testing.T) {
		checkout := checkin.Add(8 * time.Hour)
		rec := model.AttendanceRecord{CheckinAt: checkin, CheckoutAt: &checkout}

		got, auto := EffectiveCheckout(rec, checkin.Add(20*time.Hour))
		assert.Equal(t, &checkout, got)
		assert.False(t, auto)
	})

	t.Run("stored auto checkout keeps its flag", func(t *testing.T) {
		checkout := checkin.Add(MaxShiftDuration)
		rec := model.AttendanceRecord{CheckinAt: checkin, CheckoutAt: &checkout, AutoCheckout: true}

		_, auto := EffectiveCheckout(rec, checkin.Add(20*time.Hour))
		assert.True(t, auto)
	})

	t.Run("open past the cap derives a checkout", func(t *testing.T) {
		rec := model.AttendanceRecord{CheckinAt: checkin}

		got, auto := EffectiveCheckout(rec, checkin.Add(10*time.Hour))
		assert.NotNil(t, got)
		assert.Equal(t, checkin.Add(MaxShiftDuration), *got)
		assert.True(t, auto)
	})

	t.Run("open within the cap has none", func(t *testing.T) {
		rec := model.AttendanceRecord{CheckinAt: checkin}

		got, auto := EffectiveCheckout(rec, checkin.Add(4*time.Hour))
		assert.Nil(t, got)
		assert.False(t, auto)
	})

	t.Run("open exactly at the cap has none", func(t *testing.T) {
		rec := model.AttendanceRecord{CheckinAt: checkin}

		got, _ := EffectiveCheckout(rec, checkin.Add(MaxShiftDuration))
		assert.Nil(t, got)
	})
}

func TestWorkDuration(t *testing.T) {
	checkin := at("2025-10-20T07:00:00+07:00")

	tests := []struct {
		name     string
		checkout *time.Time
		expected time.Duration
		ok       bool
	}{
		{
			name:     "normal shift",
			checkout: utils.Ptr(checkin.Add(8*time.Hour + 30*time.Minute)),
			expected: 8*time.Hour + 30*time.Minute,
			ok:       true,
		},
		{
			name:     "capped at nine hours",
			checkout: utils.Ptr(checkin.Add(14 * time.Hour)),
			expected: MaxShiftDuration,
			ok:       true,
		},
		{
			name:     "no checkout",
			checkout: nil,
			ok:       false,
		},
		{
			name:     "inverted data",
			checkout: utils.Ptr(checkin.Add(-time.Hour)),
			ok:       false,
		},
		{
			name:     "zero length",
			checkout: utils.Ptr(checkin),
			expected: 0,
			ok:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := WorkDuration(checkin, tt.checkout)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, d)
			}
		})
	}
}

func TestFormatWorkDuration(t *testing.T) {
	assert.Equal(t, "8h 30m", FormatWorkDuration(8*time.Hour+30*time.Minute, true))
	assert.Equal(t, "9h 0m", FormatWorkDuration(MaxShiftDuration, true))
	assert.Equal(t, "0h 45m", FormatWorkDuration(45*time.Minute, true))
	assert.Equal(t, "—", FormatWorkDuration(0, false))
}

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		name     string
		rec      model.AttendanceRecord
		expected string
	}{
		{
			name:     "plain record is on plan",
			rec:      model.AttendanceRecord{},
			expected: StatusLabelOnPlan,
		},
		{
			name:     "manual partial",
			rec:      model.AttendanceRecord{ManualStatus: utils.Ptr(model.ManualStatusPartial)},
			expected: StatusLabelPartial,
		},
		{
			name:     "manual buffer",
			rec:      model.AttendanceRecord{ManualStatus: utils.Ptr(model.ManualStatusBuffer)},
			expected: StatusLabelBuffer,
		},
		{
			name:     "take out wins over manual status",
			rec:      model.AttendanceRecord{IsTakeout: true, ManualStatus: utils.Ptr(model.ManualStatusPartial)},
			expected: StatusLabelTakeOut,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusLabel(tt.rec))
		})
	}
}

func TestActualCountAndFulfillment(t *testing.T) {
	records := []model.AttendanceRecord{
		{OpsID: "JKT001"},
		{OpsID: "JKT002", IsTakeout: true},
		{OpsID: "JKT003"},
		{OpsID: "JKT004", ManualStatus: utils.Ptr(model.ManualStatusBuffer)},
	}
	assert.Equal(t, 3, ActualCount(records))

	assert.Equal(t, FulfillmentGap, Fulfillment(4, 3))
	assert.Equal(t, FulfillmentFull, Fulfillment(3, 3))
	assert.Equal(t, FulfillmentFullBuffer, Fulfillment(2, 3))
	assert.Equal(t, FulfillmentGap, Fulfillment(1, 0))
}
