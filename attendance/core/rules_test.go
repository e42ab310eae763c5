package core

import (
	"testing"
	"time"

	"github.com/snnnxs25024-ux/absensi-backend/attendance/model"
	"github.com/snnnxs25024-ux/absensi-backend/utils"
	"github.com/stretchr/testify/assert"
)

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func activeWorker() *model.Worker {
	return &model.Worker{
		ID:         7,
		OpsID:      "JKT001",
		FullName:   "Rina Safitri",
		Department: model.DepartmentCache,
		Status:     model.StatusActive,
	}
}

func cacheSession() SessionInfo {
	return SessionInfo{
		Date:      utils.MustParseDate("2025-10-20"),
		Division:  model.DivisionCache,
		ShiftTime: "07:00 - 16:00",
		ShiftCode: "P",
		PlanMpp:   10,
	}
}

func TestEvaluateScanEligibility(t *testing.T) {
	now := at("2025-10-20T08:00:00+07:00")

	tests := []struct {
		name   string
		worker *model.Worker
	}{
		{
			name:   "unknown ops id",
			worker: nil,
		},
		{
			name: "non active worker",
			worker: &model.Worker{
				ID: 7, OpsID: "JKT001", FullName: "Rina Safitri",
				Department: model.DepartmentCache, Status: model.StatusNonActive,
			},
		},
		{
			name: "blacklisted worker",
			worker: &model.Worker{
				ID: 7, OpsID: "JKT001", FullName: "Rina Safitri",
				Department: model.DepartmentCache, Status: model.StatusBlacklist,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := EvaluateScan(ScanContext{
				OpsID:   "jkt001",
				Session: cacheSession(),
				Worker:  tt.worker,
				Now:     now,
			})
			assert.False(t, outcome.Admitted())
			assert.Equal(t, ReasonNotEligible, outcome.Reject.Reason)
			assert.Nil(t, outcome.Entry)
		})
	}
}

func TestEvaluateScanOpenRecord(t *testing.T) {
	t.Run("fresh open record blocks", func(t *testing.T) {
		now := at("2025-10-20T08:00:00+07:00")
		open := &model.AttendanceRecord{ID: 41, OpsID: "JKT001", CheckinAt: now.Add(-2 * time.Hour)}

		outcome := EvaluateScan(ScanContext{
			OpsID: "JKT001", Session: cacheSession(),
			Worker: activeWorker(), OpenRecord: open, Now: now,
		})
		assert.Equal(t, ReasonAlreadyCheckedIn, outcome.Reject.Reason)
		assert.Nil(t, outcome.AutoClose)
	})

	t.Run("open record exactly at the cap still blocks", func(t *testing.T) {
		now := at("2025-10-20T17:00:00+07:00")
		open := &model.AttendanceRecord{ID: 41, OpsID: "JKT001", CheckinAt: now.Add(-MaxShiftDuration)}

		outcome := EvaluateScan(ScanContext{
			OpsID: "JKT001", Session: cacheSession(),
			Worker: activeWorker(), OpenRecord: open, Now: now,
		})
		assert.Equal(t, ReasonAlreadyCheckedIn, outcome.Reject.Reason)
		assert.Nil(t, outcome.AutoClose)
	})

	t.Run("stale open record is closed and rest rule still applies", func(t *testing.T) {
		// checked in 14:00 yesterday, forgot to check out. Synthetic
		// checkout lands at 23:00 yesterday, only 3h before this scan.
		now := at("2025-10-21T02:00:00+07:00")
		checkin := at("2025-10-20T14:00:00+07:00")
		open := &model.AttendanceRecord{ID: 41, OpsID: "JKT001", CheckinAt: checkin}

		outcome := EvaluateScan(ScanContext{
			OpsID: "JKT001", Session: cacheSession(),
			Worker: activeWorker(), OpenRecord: open, Now: now,
		})
		assert.NotNil(t, outcome.AutoClose)
		assert.Equal(t, uint(41), outcome.AutoClose.RecordID)
		assert.Equal(t, checkin.Add(MaxShiftDuration), outcome.AutoClose.CheckoutAt)

		assert.False(t, outcome.Admitted())
		assert.Equal(t, ReasonCooldown, outcome.Reject.Reason)
		assert.Equal(t, 6*time.Hour, outcome.Reject.Remaining)
	})

	t.Run("stale open record closed on the same day blocks as completed", func(t *testing.T) {
		now := at("2025-10-20T12:00:00+07:00")
		checkin := at("2025-10-20T02:00:00+07:00")
		open := &model.AttendanceRecord{ID: 41, OpsID: "JKT001", CheckinAt: checkin}

		outcome := EvaluateScan(ScanContext{
			OpsID: "JKT001", Session: cacheSession(),
			Worker: activeWorker(), OpenRecord: open, Now: now,
		})
		assert.NotNil(t, outcome.AutoClose)
		assert.Equal(t, ReasonCompletedToday, outcome.Reject.Reason)
	})

	t.Run("stale open record closed long ago admits", func(t *testing.T) {
		now := at("2025-10-20T12:00:00+07:00")
		checkin := at("2025-10-18T08:00:00+07:00")
		open := &model.AttendanceRecord{ID: 41, OpsID: "JKT001", CheckinAt: checkin}

		outcome := EvaluateScan(ScanContext{
			OpsID: "JKT001", Session: cacheSession(),
			Worker: activeWorker(), OpenRecord: open, Now: now,
		})
		assert.NotNil(t, outcome.AutoClose)
		assert.True(t, outcome.Admitted())
		assert.NotNil(t, outcome.Entry)
	})
}

func TestEvaluateScanRest(t *testing.T) {
	t.Run("completed a shift earlier today", func(t *testing.T) {
		now := at("2025-10-20T18:00:00+07:00")
		checkout := at("2025-10-20T15:00:00+07:00")
		last := &model.AttendanceRecord{OpsID: "JKT001", CheckinAt: checkout.Add(-8 * time.Hour), CheckoutAt: &checkout}

		outcome := EvaluateScan(ScanContext{
			OpsID: "JKT001", Session: cacheSession(),
			Worker: activeWorker(), LastClosed: last, Now: now,
		})
		assert.Equal(t, ReasonCompletedToday, outcome.Reject.Reason)
	})

	t.Run("checkout yesterday within cooldown", func(t *testing.T) {
		now := at("2025-10-21T06:00:00+07:00")
		checkout := at("2025-10-20T23:00:00+07:00")
		last := &model.AttendanceRecord{OpsID: "JKT001", CheckinAt: checkout.Add(-8 * time.Hour), CheckoutAt: &checkout}

		outcome := EvaluateScan(ScanContext{
			OpsID: "JKT001", Session: cacheSession(),
			Worker: activeWorker(), LastClosed: last, Now: now,
		})
		assert.Equal(t, ReasonCooldown, outcome.Reject.Reason)
		assert.Equal(t, 2*time.Hour, outcome.Reject.Remaining)
		assert.Contains(t, outcome.Reject.Message, "120")
	})

	t.Run("exactly nine hours of rest passes", func(t *testing.T) {
		now := at("2025-10-21T06:00:00+07:00")
		checkout := at("2025-10-20T21:00:00+07:00")
		last := &model.AttendanceRecord{OpsID: "JKT001", CheckinAt: checkout.Add(-8 * time.Hour), CheckoutAt: &checkout}

		outcome := EvaluateScan(ScanContext{
			OpsID: "JKT001", Session: cacheSession(),
			Worker: activeWorker(), LastClosed: last, Now: now,
		})
		assert.True(t, outcome.Admitted())
	})

	t.Run("day boundary follows the site calendar", func(t *testing.T) {
		// 16:00 UTC is 23:00 Jakarta, 18:00 UTC is 01:00 the next Jakarta
		// day. Same UTC date, different site dates, so this is a cooldown
		// case and not a completed-today case.
		now := at("2025-10-19T18:00:00Z")
		checkout := at("2025-10-19T16:00:00Z")
		last := &model.AttendanceRecord{OpsID: "JKT001", CheckinAt: checkout.Add(-8 * time.Hour), CheckoutAt: &checkout}

		outcome := EvaluateScan(ScanContext{
			OpsID: "JKT001", Session: cacheSession(),
			Worker: activeWorker(), LastClosed: last, Now: now,
		})
		assert.Equal(t, ReasonCooldown, outcome.Reject.Reason)
		assert.Equal(t, 7*time.Hour, outcome.Reject.Remaining)
	})
}

func TestEvaluateScanDivision(t *testing.T) {
	now := at("2025-10-20T08:00:00+07:00")

	t.Run("department not deployed to division", func(t *testing.T) {
		worker := activeWorker()
		worker.Department = model.DepartmentReturn

		outcome := EvaluateScan(ScanContext{
			OpsID: "JKT001", Session: cacheSession(),
			Worker: worker, Now: now,
		})
		assert.Equal(t, ReasonDepartmentNotAllowed, outcome.Reject.Reason)
	})

	t.Run("tp sunter floors take every department", func(t *testing.T) {
		session := cacheSession()
		session.Division = model.DivisionTpSunter1

		for _, dept := range model.Departments {
			worker := activeWorker()
			worker.Department = dept

			outcome := EvaluateScan(ScanContext{
				OpsID: "JKT001", Session: session,
				Worker: worker, Now: now,
			})
			assert.True(t, outcome.Admitted(), "department %s", dept)
		}
	})
}

func TestEvaluateScanBuffer(t *testing.T) {
	now := at("2025-10-20T08:00:00+07:00")

	t.Run("duplicate in buffer is case-insensitive", func(t *testing.T) {
		buffer := []BufferedRecord{
			{ID: "a", WorkerID: 7, OpsID: "jkt001", FullName: "Rina Safitri", ScannedAt: now.Add(-time.Minute)},
		}
		outcome := EvaluateScan(ScanContext{
			OpsID: "JKT001", Session: cacheSession(), Buffer: buffer,
			Worker: activeWorker(), Now: now,
		})
		assert.Equal(t, ReasonDuplicateInSession, outcome.Reject.Reason)
	})

	t.Run("other workers in buffer do not block", func(t *testing.T) {
		buffer := []BufferedRecord{
			{ID: "a", WorkerID: 9, OpsID: "JKT044", FullName: "Budi Hartono", ScannedAt: now.Add(-time.Minute)},
		}
		outcome := EvaluateScan(ScanContext{
			OpsID: "JKT001", Session: cacheSession(), Buffer: buffer,
			Worker: activeWorker(), Now: now,
		})
		assert.True(t, outcome.Admitted())
	})
}

func TestEvaluateScanAdmit(t *testing.T) {
	now := at("2025-10-20T08:00:00+07:00")

	outcome := EvaluateScan(ScanContext{
		OpsID:   "  jkt001 ",
		Session: cacheSession(),
		Worker:  activeWorker(),
		Now:     now,
	})

	assert.True(t, outcome.Admitted())
	assert.Nil(t, outcome.Reject)
	assert.NotEmpty(t, outcome.Entry.ID)
	assert.Equal(t, uint(7), outcome.Entry.WorkerID)
	assert.Equal(t, "JKT001", outcome.Entry.OpsID)
	assert.Equal(t, "Rina Safitri", outcome.Entry.FullName)
	assert.Equal(t, now, outcome.Entry.ScannedAt)
}

func TestCeilMinutes(t *testing.T) {
	tests := []struct {
		name     string
		d        time.Duration
		expected int
	}{
		{name: "zero", d: 0, expected: 0},
		{name: "negative", d: -time.Minute, expected: 0},
		{name: "thirty seconds rounds up", d: 30 * time.Second, expected: 1},
		{name: "exact minute", d: time.Minute, expected: 1},
		{name: "just over a minute", d: 61 * time.Second, expected: 2},
		{name: "almost an hour", d: 59*time.Minute + 59*time.Second, expected: 60},
		{name: "two hours", d: 2 * time.Hour, expected: 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CeilMinutes(tt.d))
		})
	}
}
