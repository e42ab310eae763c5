package core

import (
	"errors"
	"fmt"
	"time"

	"github.com/snnnxs25024-ux/absensi-backend/attendance/model"
	"gorm.io/gorm"
)

// Scan resolves the worker and their stored history, runs the admission
// checks, and persists the synthetic checkout when a stale open record was
// found. The buffered entry itself stays client-side until the session is
// saved.
func Scan(db *gorm.DB, session SessionInfo, buffer []BufferedRecord, opsID string, now time.Time) (ScanOutcome, error) {
	worker, err := FindWorkerByOpsID(db, opsID)
	if err != nil {
		return ScanOutcome{}, err
	}

	var open, lastClosed *model.AttendanceRecord
	if worker != nil {
		open, err = FindOpenRecord(db, worker.OpsID)
		if err != nil {
			return ScanOutcome{}, err
		}
		lastClosed, err = FindLastClosedRecord(db, worker.OpsID)
		if err != nil {
			return ScanOutcome{}, err
		}
	}

	outcome := EvaluateScan(ScanContext{
		OpsID:      opsID,
		Session:    session,
		Buffer:     buffer,
		Worker:     worker,
		OpenRecord: open,
		LastClosed: lastClosed,
		Now:        now,
	})

	if outcome.AutoClose != nil {
		if err := applyAutoClose(db, outcome.AutoClose); err != nil {
			return outcome, err
		}
	}
	return outcome, nil
}

// FindWorkerByOpsID looks up the registry by canonical ops id. A miss is
// (nil, nil), not an error.
func FindWorkerByOpsID(db *gorm.DB, opsID string) (*model.Worker, error) {
	var worker model.Worker
	err := db.Where("ops_id = ?", model.NormalizeOpsID(opsID)).First(&worker).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch worker: %w", err)
	}
	return &worker, nil
}

// FindOpenRecord returns the worker's newest record without a checkout,
// across all sessions.
func FindOpenRecord(db *gorm.DB, opsID string) (*model.AttendanceRecord, error) {
	var rec model.AttendanceRecord
	err := db.Where("ops_id = ? AND checkout_at IS NULL", model.NormalizeOpsID(opsID)).
		Order("checkin_at DESC").
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch open record: %w", err)
	}
	return &rec, nil
}

// FindLastClosedRecord returns the worker's most recent completed record.
func FindLastClosedRecord(db *gorm.DB, opsID string) (*model.AttendanceRecord, error) {
	var rec model.AttendanceRecord
	err := db.Where("ops_id = ? AND checkout_at IS NOT NULL", model.NormalizeOpsID(opsID)).
		Order("checkout_at DESC").
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch last closed record: %w", err)
	}
	return &rec, nil
}

func applyAutoClose(db *gorm.DB, ac *AutoClose) error {
	err := db.Model(&model.AttendanceRecord{}).
		Where("id = ?", ac.RecordID).
		Updates(map[string]interface{}{
			"checkout_at":   ac.CheckoutAt,
			"auto_checkout": true,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to auto-close record %d: %w", ac.RecordID, err)
	}
	return nil
}
