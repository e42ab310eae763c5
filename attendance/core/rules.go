package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/snnnxs25024-ux/absensi-backend/attendance/model"
	"github.com/snnnxs25024-ux/absensi-backend/utils"
)

const (
	// MaxShiftDuration caps a single shift. An open check-in older than this
	// is treated as a forgotten checkout and closed at checkin + 9h.
	MaxShiftDuration = 9 * time.Hour

	// RestCooldown is the minimum gap between a checkout and the next
	// check-in.
	RestCooldown = 9 * time.Hour
)

const (
	ReasonNotEligible          = "NOT_ELIGIBLE"
	ReasonAlreadyCheckedIn     = "ALREADY_CHECKED_IN"
	ReasonCompletedToday       = "COMPLETED_TODAY"
	ReasonCooldown             = "COOLDOWN"
	ReasonDepartmentNotAllowed = "DEPARTMENT_NOT_ALLOWED"
	ReasonDuplicateInSession   = "DUPLICATE_IN_SESSION"
)

// ScanRejectedError reports why a scan was refused. Remaining is only set
// for cooldown rejections.
type ScanRejectedError struct {
	Reason    string        `json:"reason"`
	Message   string        `json:"message"`
	Remaining time.Duration `json:"-"`
}

func (e *ScanRejectedError) Error() string {
	return e.Message
}

// SessionInfo describes the draft session a scan belongs to. The session is
// not persisted until the operator saves it, so every scan carries the full
// descriptor.
type SessionInfo struct {
	Date      time.Time
	Division  string
	ShiftTime string
	ShiftCode string
	PlanMpp   int
}

// BufferedRecord is an admitted scan waiting in the operator's unsaved
// session. IDs are client-side only; the database assigns its own on save.
type BufferedRecord struct {
	ID        string    `json:"id"`
	WorkerID  uint      `json:"workerId"`
	OpsID     string    `json:"opsId"`
	FullName  string    `json:"fullName"`
	ScannedAt time.Time `json:"scannedAt"`
}

// ScanContext is everything EvaluateScan needs: the scanned input, the draft
// session, the current buffer, and the worker's stored history.
type ScanContext struct {
	OpsID      string
	Session    SessionInfo
	Buffer     []BufferedRecord
	Worker     *model.Worker
	OpenRecord *model.AttendanceRecord
	LastClosed *model.AttendanceRecord
	Now        time.Time
	Location   *time.Location
}

// AutoClose instructs the caller to persist a synthetic checkout for a
// forgotten open record.
type AutoClose struct {
	RecordID   uint
	CheckoutAt time.Time
}

// ScanOutcome is the full result of one scan. AutoClose can be set on both
// admitted and rejected outcomes: a stale open record is closed regardless
// of what the later checks decide.
type ScanOutcome struct {
	Entry     *BufferedRecord
	AutoClose *AutoClose
	Reject    *ScanRejectedError
}

func (o ScanOutcome) Admitted() bool {
	return o.Reject == nil
}

// EvaluateScan runs the admission checks in order and stops at the first
// failure. It never touches the database; the caller loads the history and
// applies any AutoClose instruction.
func EvaluateScan(sc ScanContext) ScanOutcome {
	loc := sc.Location
	if loc == nil {
		loc = utils.JakartaTZ
	}

	var outcome ScanOutcome

	// 1. Must resolve to an active worker.
	if sc.Worker == nil || sc.Worker.Status != model.StatusActive {
		outcome.Reject = &ScanRejectedError{
			Reason:  ReasonNotEligible,
			Message: fmt.Sprintf("ops id %s is not registered as an active worker", model.NormalizeOpsID(sc.OpsID)),
		}
		return outcome
	}
	worker := sc.Worker

	// 2. A still-open record blocks the scan unless it is stale, in which
	// case it is closed at checkin + 9h and treated as the latest completed
	// shift for the checks below.
	lastClosed := sc.LastClosed
	if sc.OpenRecord != nil {
		if sc.Now.Sub(sc.OpenRecord.CheckinAt) > MaxShiftDuration {
			closedAt := sc.OpenRecord.CheckinAt.Add(MaxShiftDuration)
			outcome.AutoClose = &AutoClose{RecordID: sc.OpenRecord.ID, CheckoutAt: closedAt}

			closed := *sc.OpenRecord
			closed.CheckoutAt = &closedAt
			closed.AutoCheckout = true
			if lastClosed == nil || lastClosed.CheckoutAt == nil || closedAt.After(*lastClosed.CheckoutAt) {
				lastClosed = &closed
			}
		} else {
			outcome.Reject = &ScanRejectedError{
				Reason:  ReasonAlreadyCheckedIn,
				Message: fmt.Sprintf("%s is still checked in since %s", worker.FullName, sc.OpenRecord.CheckinAt.In(loc).Format("02 Jan 15:04")),
			}
			return outcome
		}
	}

	if lastClosed != nil && lastClosed.CheckoutAt != nil {
		checkout := *lastClosed.CheckoutAt

		// 3. One completed shift per calendar day.
		if sameLocalDay(checkout, sc.Now, loc) {
			outcome.Reject = &ScanRejectedError{
				Reason:  ReasonCompletedToday,
				Message: fmt.Sprintf("%s already completed a shift today", worker.FullName),
			}
			return outcome
		}

		// 4. Rest cooldown since the last checkout.
		if rest := sc.Now.Sub(checkout); rest < RestCooldown {
			remaining := RestCooldown - rest
			outcome.Reject = &ScanRejectedError{
				Reason:    ReasonCooldown,
				Message:   fmt.Sprintf("%s needs %d more minutes of rest before the next shift", worker.FullName, CeilMinutes(remaining)),
				Remaining: remaining,
			}
			return outcome
		}
	}

	// 5. Department must be deployed to the session's division.
	if !DivisionAllowsDepartment(sc.Session.Division, worker.Department) {
		outcome.Reject = &ScanRejectedError{
			Reason:  ReasonDepartmentNotAllowed,
			Message: fmt.Sprintf("%s department is not deployed to %s", worker.Department, sc.Session.Division),
		}
		return outcome
	}

	// 6. One entry per worker per session.
	for _, b := range sc.Buffer {
		if strings.EqualFold(b.OpsID, worker.OpsID) {
			outcome.Reject = &ScanRejectedError{
				Reason:  ReasonDuplicateInSession,
				Message: fmt.Sprintf("%s is already in this session", worker.OpsID),
			}
			return outcome
		}
	}

	outcome.Entry = &BufferedRecord{
		ID:        uuid.New().String(),
		WorkerID:  worker.ID,
		OpsID:     worker.OpsID,
		FullName:  worker.FullName,
		ScannedAt: sc.Now,
	}
	return outcome
}

// CeilMinutes rounds a duration up to whole minutes for operator messages.
func CeilMinutes(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + time.Minute - 1) / time.Minute)
}

func sameLocalDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}
