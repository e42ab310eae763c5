package core

import (
	"errors"
	"fmt"
	"time"

	"github.com/snnnxs25024-ux/absensi-backend/attendance/model"
	"gorm.io/gorm"
)

var (
	ErrWorkerNotFound      = errors.New("no active worker with that ops id")
	ErrAlreadyInSession    = errors.New("worker already has a record in this session")
	ErrCheckoutBeforeIn    = errors.New("checkout must not be before checkin")
	ErrInvalidManualStatus = errors.New("manual status must be Partial or Buffer")
)

// AddManualRecord inserts a correction record into an already saved session.
// Unlike a scan it bypasses the admission checks; the operator is trusted
// here. Only the one-record-per-worker rule still holds.
func AddManualRecord(db *gorm.DB, sessionID uint, opsID string, checkinAt time.Time, checkoutAt *time.Time) (*model.AttendanceRecord, error) {
	var session model.AttendanceSession
	if err := db.First(&session, sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to fetch session %d: %w", sessionID, err)
	}

	worker, err := FindWorkerByOpsID(db, opsID)
	if err != nil {
		return nil, err
	}
	if worker == nil || worker.Status != model.StatusActive {
		return nil, ErrWorkerNotFound
	}

	var count int64
	if err := db.Model(&model.AttendanceRecord{}).
		Where("session_id = ? AND ops_id = ?", sessionID, worker.OpsID).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check existing records: %w", err)
	}
	if count > 0 {
		return nil, ErrAlreadyInSession
	}

	if checkoutAt != nil && checkoutAt.Before(checkinAt) {
		return nil, ErrCheckoutBeforeIn
	}

	rec := model.AttendanceRecord{
		SessionID:  sessionID,
		WorkerID:   worker.ID,
		OpsID:      worker.OpsID,
		FullName:   worker.FullName,
		CheckinAt:  checkinAt,
		CheckoutAt: checkoutAt,
	}
	if err := db.Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("failed to create record: %w", err)
	}
	return &rec, nil
}

// RecordUpdate carries the operator corrections for one record. Nil fields
// stay untouched; the Clear flags reset a column to null.
type RecordUpdate struct {
	CheckoutAt        *time.Time
	ClearCheckout     bool
	ManualStatus      *string
	ClearManualStatus bool
	IsTakeout         *bool
}

// UpdateRecord applies corrections to a saved record and returns the
// refreshed row.
func UpdateRecord(db *gorm.DB, id uint, upd RecordUpdate) (*model.AttendanceRecord, error) {
	var rec model.AttendanceRecord
	if err := db.First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to fetch record %d: %w", id, err)
	}

	changes := map[string]interface{}{}
	if upd.ClearCheckout {
		changes["checkout_at"] = nil
		changes["auto_checkout"] = false
	} else if upd.CheckoutAt != nil {
		if upd.CheckoutAt.Before(rec.CheckinAt) {
			return nil, ErrCheckoutBeforeIn
		}
		changes["checkout_at"] = *upd.CheckoutAt
		// an operator-entered checkout replaces any synthetic one
		changes["auto_checkout"] = false
	}
	if upd.ClearManualStatus {
		changes["manual_status"] = nil
	} else if upd.ManualStatus != nil {
		status, ok := model.ParseManualStatus(*upd.ManualStatus)
		if !ok {
			return nil, ErrInvalidManualStatus
		}
		changes["manual_status"] = status
	}
	if upd.IsTakeout != nil {
		changes["is_takeout"] = *upd.IsTakeout
	}

	if len(changes) == 0 {
		return &rec, nil
	}

	if err := db.Model(&rec).Updates(changes).Error; err != nil {
		return nil, fmt.Errorf("failed to update record %d: %w", id, err)
	}
	if err := db.First(&rec, id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload record %d: %w", id, err)
	}
	return &rec, nil
}

// DeleteRecord removes one record from a saved session.
func DeleteRecord(db *gorm.DB, id uint) error {
	res := db.Delete(&model.AttendanceRecord{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete record %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
