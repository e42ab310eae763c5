package core

import (
	"testing"
	"time"

	"github.com/snnnxs25024-ux/absensi-backend/attendance/model"
	"github.com/snnnxs25024-ux/absensi-backend/utils"
	"github.com/stretchr/testify/assert"
)

func TestPeriodBounds(t *testing.T) {
	t.Run("first half", func(t *testing.T) {
		p := FirstHalf(2025, time.October)
		assert.Equal(t, utils.MustParseDate("2025-10-01"), p.Start)
		assert.Equal(t, utils.MustParseDate("2025-10-15"), p.End)
	})

	t.Run("second half of a 31 day month", func(t *testing.T) {
		p := SecondHalf(2025, time.October)
		assert.Equal(t, utils.MustParseDate("2025-10-16"), p.Start)
		assert.Equal(t, utils.MustParseDate("2025-10-31"), p.End)
	})

	t.Run("second half of february", func(t *testing.T) {
		p := SecondHalf(2025, time.February)
		assert.Equal(t, utils.MustParseDate("2025-02-28"), p.End)
	})

	t.Run("second half of a leap february", func(t *testing.T) {
		p := SecondHalf(2024, time.February)
		assert.Equal(t, utils.MustParseDate("2024-02-29"), p.End)
	})

	t.Run("second half of december stays in the year", func(t *testing.T) {
		p := SecondHalf(2025, time.December)
		assert.Equal(t, utils.MustParseDate("2025-12-31"), p.End)
	})
}

func TestPeriodContains(t *testing.T) {
	p := FirstHalf(2025, time.October)

	tests := []struct {
		name     string
		date     string
		expected bool
	}{
		{name: "first day", date: "2025-10-01", expected: true},
		{name: "last day", date: "2025-10-15", expected: true},
		{name: "day after", date: "2025-10-16", expected: false},
		{name: "previous month", date: "2025-09-30", expected: false},
		{name: "middle", date: "2025-10-08", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, p.Contains(utils.MustParseDate(tt.date)))
		})
	}
}

func TestCountAttendanceDays(t *testing.T) {
	workers := []model.Worker{
		{ID: 1, OpsID: "JKT001", FullName: "Rina Safitri"},
		{ID: 2, OpsID: "JKT002", FullName: "Budi Hartono"},
		{ID: 3, OpsID: "JKT003", FullName: "Agus Wijaya"},
	}

	sessions := []model.AttendanceSession{
		{
			ID: 10, Date: utils.MustParseDate("2025-10-02"),
			Records: []model.AttendanceRecord{
				{WorkerID: 1, OpsID: "JKT001", FullName: "Rina Safitri"},
				{WorkerID: 2, OpsID: "JKT002", FullName: "Budi Hartono"},
			},
		},
		{
			ID: 11, Date: utils.MustParseDate("2025-10-05"),
			Records: []model.AttendanceRecord{
				{WorkerID: 1, OpsID: "JKT001", FullName: "Rina Safitri"},
				// take-outs never count
				{WorkerID: 2, OpsID: "JKT002", FullName: "Budi Hartono", IsTakeout: true},
				// registry fallback: record saved without a name
				{WorkerID: 3, OpsID: "JKT003"},
			},
		},
		{
			ID: 12, Date: utils.MustParseDate("2025-10-15"),
			Records: []model.AttendanceRecord{
				// duplicate entries in one session count once
				{WorkerID: 1, OpsID: "JKT001", FullName: "Rina Safitri"},
				{WorkerID: 1, OpsID: "jkt001", FullName: "Rina Safitri"},
				// deleted from the registry, name survives on the record
				{WorkerID: 99, OpsID: "JKT099", FullName: "Sari Lestari"},
			},
		},
		{
			// outside the period
			ID: 13, Date: utils.MustParseDate("2025-10-20"),
			Records: []model.AttendanceRecord{
				{WorkerID: 1, OpsID: "JKT001", FullName: "Rina Safitri"},
			},
		},
	}

	tallies := CountAttendanceDays(sessions, workers, FirstHalf(2025, time.October))

	assert.Len(t, tallies, 4)

	// sorted by days desc, then name asc
	assert.Equal(t, AttendanceTally{WorkerID: 1, OpsID: "JKT001", FullName: "Rina Safitri", Days: 3}, tallies[0])
	assert.Equal(t, "Agus Wijaya", tallies[1].FullName)
	assert.Equal(t, 1, tallies[1].Days)
	assert.Equal(t, "Budi Hartono", tallies[2].FullName)
	assert.Equal(t, 1, tallies[2].Days)
	assert.Equal(t, "Sari Lestari", tallies[3].FullName)
	assert.Equal(t, 1, tallies[3].Days)
}

func TestCountAttendanceDaysUnknownWorker(t *testing.T) {
	sessions := []model.AttendanceSession{
		{
			ID: 10, Date: utils.MustParseDate("2025-10-02"),
			Records: []model.AttendanceRecord{
				{WorkerID: 55, OpsID: "JKT055"},
			},
		},
	}

	tallies := CountAttendanceDays(sessions, nil, FirstHalf(2025, time.October))

	assert.Len(t, tallies, 1)
	assert.Equal(t, "JKT055", tallies[0].OpsID)
	assert.Equal(t, "Unknown", tallies[0].FullName)
	assert.Equal(t, 1, tallies[0].Days)
}
