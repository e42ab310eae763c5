package model

import (
	"strings"
	"time"
)

const (
	DepartmentSocOperator = "SOC Operator"
	DepartmentCache       = "Cache"
	DepartmentReturn      = "Return"
	DepartmentInventory   = "Inventory"
)

const (
	StatusActive    = "Active"
	StatusNonActive = "Non Active"
	StatusBlacklist = "Blacklist"
)

// ContractTypeMpp is the only contract arrangement this site hires under.
const ContractTypeMpp = "MPP"

var Departments = []string{
	DepartmentSocOperator,
	DepartmentCache,
	DepartmentReturn,
	DepartmentInventory,
}

var WorkerStatuses = []string{
	StatusActive,
	StatusNonActive,
	StatusBlacklist,
}

type Worker struct {
	ID           uint      `gorm:"primaryKey;column:id" json:"id"`
	OpsID        string    `gorm:"column:ops_id;type:varchar(32);not null;uniqueIndex" json:"opsId"`
	FullName     string    `gorm:"column:full_name;type:varchar(255);not null" json:"fullName"`
	NationalID   string    `gorm:"column:national_id;type:varchar(32)" json:"nationalId"`
	Phone        string    `gorm:"column:phone;type:varchar(32)" json:"phone"`
	ContractType string    `gorm:"column:contract_type;type:varchar(16);not null;default:MPP" json:"contractType"`
	Department   string    `gorm:"column:department;type:varchar(32);not null" json:"department"`
	Status       string    `gorm:"column:status;type:varchar(16);not null;default:Active" json:"status"`
	CreatedAt    time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
}

func (Worker) TableName() string {
	return "workers"
}

// NormalizeOpsID canonicalizes an ops id for storage and matching.
// Scans arrive from handheld readers in mixed case.
func NormalizeOpsID(opsID string) string {
	return strings.ToUpper(strings.TrimSpace(opsID))
}

func ParseDepartment(s string) (string, bool) {
	for _, d := range Departments {
		if strings.EqualFold(strings.TrimSpace(s), d) {
			return d, true
		}
	}
	return "", false
}

func ParseWorkerStatus(s string) (string, bool) {
	for _, st := range WorkerStatuses {
		if strings.EqualFold(strings.TrimSpace(s), st) {
			return st, true
		}
	}
	return "", false
}
