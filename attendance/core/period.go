package core

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/snnnxs25024-ux/absensi-backend/attendance/model"
)

// Period is a closed date interval. Start and End are date-only values at
// UTC midnight, same as session dates.
type Period struct {
	Start time.Time
	End   time.Time
}

// FirstHalf covers day 1 through 15 of the month.
func FirstHalf(year int, month time.Month) Period {
	return Period{
		Start: time.Date(year, month, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(year, month, 15, 0, 0, 0, 0, time.UTC),
	}
}

// SecondHalf covers day 16 through the last day of the month.
func SecondHalf(year int, month time.Month) Period {
	return Period{
		Start: time.Date(year, month, 16, 0, 0, 0, 0, time.UTC),
		// day 0 of the next month resolves to the last day of this one
		End: time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC),
	}
}

func (p Period) Contains(date time.Time) bool {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(p.Start) && !d.After(p.End)
}

func (p Period) Label() string {
	if p.Start.Month() == p.End.Month() && p.Start.Year() == p.End.Year() {
		return p.Start.Format("2") + "-" + p.End.Format("2 Jan 2006")
	}
	return p.Start.Format("2 Jan 2006") + " - " + p.End.Format("2 Jan 2006")
}

// AttendanceTally is one worker's distinct session-day count in a period.
type AttendanceTally struct {
	WorkerID uint   `json:"workerId"`
	OpsID    string `json:"opsId"`
	FullName string `json:"fullName"`
	Days     int    `json:"days"`
}

// CountAttendanceDays tallies, per worker, the sessions inside the period
// where they have at least one counting record. Take-outs never count and a
// worker counts at most once per session. Identity comes from the record
// first and the registry second, so tallies survive registry deletions.
func CountAttendanceDays(sessions []model.AttendanceSession, workers []model.Worker, period Period) []AttendanceTally {
	byOpsID := make(map[string]model.Worker)
	byID := make(map[uint]model.Worker)
	for _, w := range workers {
		byOpsID[w.OpsID] = w
		byID[w.ID] = w
	}

	tallies := make(map[string]*AttendanceTally)
	for _, s := range sessions {
		if !period.Contains(s.Date) {
			continue
		}
		seen := make(map[string]bool)
		for _, rec := range s.Records {
			if rec.IsTakeout {
				continue
			}
			key := model.NormalizeOpsID(rec.OpsID)
			if key == "" {
				key = fmt.Sprintf("#%d", rec.WorkerID)
			}
			if seen[key] {
				continue
			}
			seen[key] = true

			t, ok := tallies[key]
			if !ok {
				t = &AttendanceTally{
					WorkerID: rec.WorkerID,
					OpsID:    resolveOpsID(rec, byID),
					FullName: resolveName(rec, byOpsID, byID),
				}
				tallies[key] = t
			}
			t.Days++
		}
	}

	out := make([]AttendanceTally, 0, len(tallies))
	for _, t := range tallies {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Days != out[j].Days {
			return out[i].Days > out[j].Days
		}
		return strings.ToLower(out[i].FullName) < strings.ToLower(out[j].FullName)
	})
	return out
}

func resolveOpsID(rec model.AttendanceRecord, byID map[uint]model.Worker) string {
	if s := model.NormalizeOpsID(rec.OpsID); s != "" {
		return s
	}
	if w, ok := byID[rec.WorkerID]; ok {
		return w.OpsID
	}
	return "N/A"
}

func resolveName(rec model.AttendanceRecord, byOpsID map[string]model.Worker, byID map[uint]model.Worker) string {
	if rec.FullName != "" {
		return rec.FullName
	}
	if w, ok := byOpsID[model.NormalizeOpsID(rec.OpsID)]; ok {
		return w.FullName
	}
	if w, ok := byID[rec.WorkerID]; ok {
		return w.FullName
	}
	return "Unknown"
}

