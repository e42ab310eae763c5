package sessions

import (
	"encoding/json"
	"fmt"
	"time"

	attendance "github.com/snnnxs25024-ux/absensi-backend/attendance/core"
	"github.com/snnnxs25024-ux/absensi-backend/attendance/model"
	web "github.com/snnnxs25024-ux/absensi-backend/web/common"
)

// SessionDescriptorDTO is the draft session header the console keeps while
// scanning. It travels with every scan and with the final save.
type SessionDescriptorDTO struct {
	Date      *web.DateOnly `json:"date" binding:"required"`
	Division  string        `json:"division" binding:"required"`
	ShiftTime string        `json:"shiftTime" binding:"required"`
	ShiftCode string        `json:"shiftCode"`
	PlanMpp   int           `json:"planMpp" binding:"required,gt=0"`
}

func (dto SessionDescriptorDTO) ToInfo() (attendance.SessionInfo, error) {
	division, ok := model.ParseDivision(dto.Division)
	if !ok {
		return attendance.SessionInfo{}, fmt.Errorf("unknown division: %s", dto.Division)
	}
	return attendance.SessionInfo{
		Date:      dto.Date.Time,
		Division:  division,
		ShiftTime: dto.ShiftTime,
		ShiftCode: dto.ShiftCode,
		PlanMpp:   dto.PlanMpp,
	}, nil
}

type SessionDTO struct {
	ID          uint      `json:"id"`
	Date        time.Time `json:"-" gorm:"column:date"`
	Division    string    `json:"division" gorm:"column:division"`
	ShiftTime   string    `json:"shiftTime" gorm:"column:shift_time"`
	ShiftCode   string    `json:"shiftCode" gorm:"column:shift_code"`
	PlanMpp     int       `json:"planMpp" gorm:"column:plan_mpp"`
	Actual      int       `json:"actual" gorm:"column:actual"`
	Fulfillment string    `json:"fulfillment" gorm:"-"`
}

func (dto SessionDTO) MarshalJSON() ([]byte, error) {
	type Alias SessionDTO
	return json.Marshal(&struct {
		Date string `json:"date"`
		*Alias
	}{
		Date:  dto.Date.Format("2006-01-02"),
		Alias: (*Alias)(&dto),
	})
}

// RecordDTO is a record with its derived fields resolved: the effective
// checkout, the capped duration label, and the display status.
type RecordDTO struct {
	ID           uint       `json:"id"`
	SessionID    uint       `json:"sessionId"`
	WorkerID     uint       `json:"workerId"`
	OpsID        string     `json:"opsId"`
	FullName     string     `json:"fullName"`
	CheckinAt    time.Time  `json:"checkinAt"`
	CheckoutAt   *time.Time `json:"checkoutAt"`
	AutoCheckout bool       `json:"autoCheckout"`
	Duration     string     `json:"duration"`
	Status       string     `json:"status"`
	IsTakeout    bool       `json:"isTakeout"`
	ManualStatus *string    `json:"manualStatus"`
}

func toRecordDTO(rec model.AttendanceRecord, now time.Time) RecordDTO {
	checkout, auto := attendance.EffectiveCheckout(rec, now)
	duration, ok := attendance.WorkDuration(rec.CheckinAt, checkout)

	return RecordDTO{
		ID:           rec.ID,
		SessionID:    rec.SessionID,
		WorkerID:     rec.WorkerID,
		OpsID:        rec.OpsID,
		FullName:     rec.FullName,
		CheckinAt:    rec.CheckinAt,
		CheckoutAt:   checkout,
		AutoCheckout: auto,
		Duration:     attendance.FormatWorkDuration(duration, ok),
		Status:       attendance.StatusLabel(rec),
		IsTakeout:    rec.IsTakeout,
		ManualStatus: rec.ManualStatus,
	}
}
