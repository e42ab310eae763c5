package helper

import (
	"testing"
	"time"

	attendance "github.com/snnnxs25024-ux/absensi-backend/attendance/core"
	"github.com/snnnxs25024-ux/absensi-backend/attendance/model"
	"github.com/snnnxs25024-ux/absensi-backend/utils"
	"github.com/stretchr/testify/assert"
)

func sessionOn(date string, planMpp int, opsIDs ...string) model.AttendanceSession {
	s := model.AttendanceSession{
		Date:     utils.MustParseDate(date),
		Division: model.DivisionCache,
		PlanMpp:  planMpp,
	}
	checkin := s.Date.Add(7 * time.Hour)
	for i, opsID := range opsIDs {
		s.Records = append(s.Records, model.AttendanceRecord{
			ID:        uint(i + 1),
			WorkerID:  uint(i + 1),
			OpsID:     opsID,
			FullName:  "Worker " + opsID,
			CheckinAt: checkin,
		})
	}
	return s
}

func TestBuildRecap(t *testing.T) {
	period := attendance.FirstHalf(2025, time.October)
	sessions := []model.AttendanceSession{
		sessionOn("2025-10-01", 2, "A1", "A2"),       // full fill
		sessionOn("2025-10-02", 2, "A1"),             // gap
		sessionOn("2025-10-03", 1, "A1", "A2"),       // buffer
	}

	recap := BuildRecap("sunter1", period, sessions, nil)

	assert.Equal(t, 3, recap.Sessions)
	assert.Equal(t, 1, recap.Gap)
	assert.Equal(t, 1, recap.FullFill)
	assert.Equal(t, 1, recap.FullFillBuffer)

	// A1 attended all three sessions, A2 two of them
	if assert.Len(t, recap.Tallies, 2) {
		assert.Equal(t, "A1", recap.Tallies[0].OpsID)
		assert.Equal(t, 3, recap.Tallies[0].Days)
		assert.Equal(t, 2, recap.Tallies[1].Days)
	}

	assert.Contains(t, recap.SlackLine(), "sunter1")
	assert.Contains(t, recap.SlackLine(), "3 sessions")
	assert.Contains(t, recap.Text(), "Worker A1")
}

func TestTallyAttachment(t *testing.T) {
	period := attendance.FirstHalf(2025, time.October)
	recap := BuildRecap("sunter1", period, []model.AttendanceSession{
		sessionOn("2025-10-05", 1, "A1"),
	}, nil)

	att, err := recap.TallyAttachment()
	assert.NoError(t, err)
	assert.NotEmpty(t, att.Content)
	assert.Contains(t, att.Filename, "sunter1")
}
