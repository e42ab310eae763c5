package core

import (
	"errors"
	"fmt"

	"github.com/snnnxs25024-ux/absensi-backend/attendance/model"
	"github.com/snnnxs25024-ux/absensi-backend/utils"
	"gorm.io/gorm"
)

// FinalizeSession persists a draft session and its buffered records in one
// transaction. An empty buffer is a successful no-op: nothing is written and
// the returned session is nil, mirroring a cancel.
func FinalizeSession(db *gorm.DB, info SessionInfo, buffer []BufferedRecord) (*model.AttendanceSession, error) {
	if len(buffer) == 0 {
		return nil, nil
	}

	session := model.AttendanceSession{
		Date:      info.Date,
		Division:  info.Division,
		ShiftTime: info.ShiftTime,
		ShiftCode: info.ShiftCode,
		PlanMpp:   info.PlanMpp,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&session).Error; err != nil {
			return fmt.Errorf("failed to create session: %w", err)
		}

		records := utils.Map(buffer, func(b BufferedRecord) model.AttendanceRecord {
			return model.AttendanceRecord{
				SessionID: session.ID,
				WorkerID:  b.WorkerID,
				OpsID:     model.NormalizeOpsID(b.OpsID),
				FullName:  b.FullName,
				CheckinAt: b.ScannedAt,
			}
		})
		if err := tx.CreateInBatches(records, 100).Error; err != nil {
			return fmt.Errorf("failed to create records: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	fmt.Printf("[INFO] saved session %d (%s %s) with %d records\n",
		session.ID, session.Date.Format("2006-01-02"), session.Division, len(buffer))
	return &session, nil
}

// DeleteSession removes a session and all its records in one transaction.
func DeleteSession(db *gorm.DB, id uint) error {
	var session model.AttendanceSession
	if err := db.First(&session, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return gorm.ErrRecordNotFound
		}
		return fmt.Errorf("failed to fetch session %d: %w", id, err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", id).Delete(&model.AttendanceRecord{}).Error; err != nil {
			return fmt.Errorf("failed to delete records of session %d: %w", id, err)
		}
		if err := tx.Delete(&model.AttendanceSession{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete session %d: %w", id, err)
		}
		return nil
	})
}
