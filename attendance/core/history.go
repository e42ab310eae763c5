package core

import (
	"errors"
	"fmt"

	"github.com/snnnxs25024-ux/absensi-backend/attendance/model"
	"gorm.io/gorm"
)

// LoadSessionDetail fetches a session with its records, newest check-in
// first, the order the operator saw while scanning.
func LoadSessionDetail(db *gorm.DB, id uint) (*model.AttendanceSession, error) {
	var session model.AttendanceSession
	err := db.Preload("Records", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("checkin_at DESC")
	}).First(&session, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, gorm.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch session %d: %w", id, err)
	}
	return &session, nil
}

// LoadSessionsInPeriod fetches every session dated inside the period,
// records included, for the attendance tallies.
func LoadSessionsInPeriod(db *gorm.DB, period Period) ([]model.AttendanceSession, error) {
	var sessions []model.AttendanceSession
	err := db.Preload("Records").
		Where("date BETWEEN ? AND ?", period.Start.Format("2006-01-02"), period.End.Format("2006-01-02")).
		Order("date ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sessions in period: %w", err)
	}
	return sessions, nil
}

// LoadWorkers fetches the whole registry, used for name fallback in tallies
// and for exports.
func LoadWorkers(db *gorm.DB) ([]model.Worker, error) {
	var workers []model.Worker
	if err := db.Order("full_name ASC").Find(&workers).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch workers: %w", err)
	}
	return workers, nil
}
