package model

import (
	"strings"
	"time"
)

const (
	DivisionTpSunter1 = "TP SUNTER 1"
	DivisionTpSunter2 = "TP SUNTER 2"
	DivisionCache     = "CACHE"
	DivisionReturn    = "RETURN"
	DivisionInventory = "INVENTORY"
)

var Divisions = []string{
	DivisionTpSunter1,
	DivisionTpSunter2,
	DivisionCache,
	DivisionReturn,
	DivisionInventory,
}

type AttendanceSession struct {
	ID        uint      `gorm:"primaryKey;column:id" json:"id"`
	Date      time.Time `gorm:"column:date;type:date;not null;index" json:"date"`
	Division  string    `gorm:"column:division;type:varchar(32);not null" json:"division"`
	ShiftTime string    `gorm:"column:shift_time;type:varchar(32);not null" json:"shiftTime"`
	ShiftCode string    `gorm:"column:shift_code;type:varchar(32);not null" json:"shiftCode"`
	PlanMpp   int       `gorm:"column:plan_mpp;not null" json:"planMpp"`
	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`

	Records []AttendanceRecord `gorm:"foreignKey:SessionID" json:"records,omitempty"`
}

func (AttendanceSession) TableName() string {
	return "attendance_sessions"
}

func ParseDivision(s string) (string, bool) {
	for _, d := range Divisions {
		if strings.EqualFold(strings.TrimSpace(s), d) {
			return d, true
		}
	}
	return "", false
}
