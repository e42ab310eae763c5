package core

import (
	"testing"

	"github.com/snnnxs25024-ux/absensi-backend/attendance/model"
	"github.com/stretchr/testify/assert"
)

func TestParseWorkerRows(t *testing.T) {
	rows := [][]string{
		{"Ops ID", "Full Name", "National ID", "Phone", "Department", "Status"},
		{"jkt001", "Rina Safitri", "3171234567890001", "081234567890", "cache", "active"},
		{"JKT002", "Budi Hartono", "", "", "SOC Operator", ""},
		{"", "No Ops Id", "", "", "Cache", ""},
		{"JKT003", "", "", "", "Cache", ""},
		{"JKT001", "Duplicate Rina", "", "", "Cache", ""},
		{"JKT004", "Bad Dept", "", "", "Gudang", ""},
		{"JKT005", "Bad Status", "", "", "Return", "Resigned"},
		{},
		{"", "", "", "", "", ""},
	}

	parsed, issues, err := ParseWorkerRows(rows)
	assert.NoError(t, err)

	assert.Len(t, parsed, 2)
	assert.Equal(t, 2, parsed[0].Row)
	assert.Equal(t, "JKT001", parsed[0].Worker.OpsID)
	assert.Equal(t, "Rina Safitri", parsed[0].Worker.FullName)
	assert.Equal(t, model.DepartmentCache, parsed[0].Worker.Department)
	assert.Equal(t, model.StatusActive, parsed[0].Worker.Status)
	assert.Equal(t, model.ContractTypeMpp, parsed[0].Worker.ContractType)

	assert.Equal(t, 3, parsed[1].Row)
	assert.Equal(t, "JKT002", parsed[1].Worker.OpsID)
	assert.Equal(t, model.DepartmentSocOperator, parsed[1].Worker.Department)
	assert.Equal(t, model.StatusActive, parsed[1].Worker.Status)

	assert.Len(t, issues, 5)
	assert.Equal(t, 4, issues[0].Row)
	assert.Contains(t, issues[0].Message, "ops id is required")
	assert.Equal(t, 5, issues[1].Row)
	assert.Contains(t, issues[1].Message, "full name is required")
	assert.Equal(t, 6, issues[2].Row)
	assert.Contains(t, issues[2].Message, "duplicate ops id JKT001")
	assert.Contains(t, issues[3].Message, "unknown department")
	assert.Contains(t, issues[4].Message, "unknown status")
}

func TestParseWorkerRowsColumnOrder(t *testing.T) {
	rows := [][]string{
		{"Department", "Ops ID", "Extra", "Full Name"},
		{"Inventory", "jkt010", "ignored", "Sari Lestari"},
	}

	parsed, issues, err := ParseWorkerRows(rows)
	assert.NoError(t, err)
	assert.Empty(t, issues)
	assert.Len(t, parsed, 1)
	assert.Equal(t, "JKT010", parsed[0].Worker.OpsID)
	assert.Equal(t, model.DepartmentInventory, parsed[0].Worker.Department)
}

func TestParseWorkerRowsMissingHeader(t *testing.T) {
	rows := [][]string{
		{"Ops ID", "Full Name"},
		{"JKT001", "Rina Safitri"},
	}

	_, _, err := ParseWorkerRows(rows)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "department")
}
