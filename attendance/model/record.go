package model

import (
	"strings"
	"time"
)

// Manual status overrides an operator can stamp on a record. Take-out is a
// separate flag because it excludes the record from every headcount.
const (
	ManualStatusPartial = "Partial"
	ManualStatusBuffer  = "Buffer"
)

var ManualStatuses = []string{
	ManualStatusPartial,
	ManualStatusBuffer,
}

type AttendanceRecord struct {
	ID        uint `gorm:"primaryKey;column:id" json:"id"`
	SessionID uint `gorm:"column:session_id;not null;index" json:"sessionId"`
	WorkerID  uint `gorm:"column:worker_id;not null;index" json:"workerId"`

	// Identity is embedded so history stays readable after a registry delete.
	OpsID    string `gorm:"column:ops_id;type:varchar(32);not null;index" json:"opsId"`
	FullName string `gorm:"column:full_name;type:varchar(255);not null" json:"fullName"`

	CheckinAt    time.Time  `gorm:"column:checkin_at;type:timestamp;not null" json:"checkinAt"`
	CheckoutAt   *time.Time `gorm:"column:checkout_at;type:timestamp;null" json:"checkoutAt"`
	AutoCheckout bool       `gorm:"column:auto_checkout;not null;default:false" json:"autoCheckout"`
	ManualStatus *string    `gorm:"column:manual_status;type:varchar(16);null" json:"manualStatus"`
	IsTakeout    bool       `gorm:"column:is_takeout;not null;default:false" json:"isTakeout"`
	CreatedAt    time.Time  `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}

func ParseManualStatus(s string) (string, bool) {
	for _, m := range ManualStatuses {
		if strings.EqualFold(strings.TrimSpace(s), m) {
			return m, true
		}
	}
	return "", false
}
