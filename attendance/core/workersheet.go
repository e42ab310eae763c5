package core

import (
	"fmt"
	"strings"

	"github.com/snnnxs25024-ux/absensi-backend/attendance/model"
)

// RowIssue points an operator at a bad spreadsheet row. Row numbers are
// 1-based as shown in the sheet.
type RowIssue struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ParsedWorkerRow keeps the sheet position with the parsed worker so
// consumers can report later problems against the right row.
type ParsedWorkerRow struct {
	Row    int
	Worker model.Worker
}

// ParseWorkerRows validates registry rows from a worker sheet. rows[0] must
// be the header; columns are located by name so the sheet order does not
// matter and extra columns are ignored. Invalid rows become issues, valid
// ones become workers, and in-file duplicate ops ids are flagged.
func ParseWorkerRows(rows [][]string) ([]ParsedWorkerRow, []RowIssue, error) {
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("sheet is empty")
	}

	col := map[string]int{}
	for i, h := range rows[0] {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"ops id", "full name", "department"} {
		if _, ok := col[required]; !ok {
			return nil, nil, fmt.Errorf("missing required column %q", required)
		}
	}

	cell := func(row []string, name string) string {
		idx, ok := col[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var workers []ParsedWorkerRow
	var issues []RowIssue
	seen := make(map[string]int)

	for r := 1; r < len(rows); r++ {
		row := rows[r]
		if len(row) == 0 {
			continue
		}
		rowNum := r + 1

		opsID := model.NormalizeOpsID(cell(row, "ops id"))
		fullName := cell(row, "full name")
		if opsID == "" && fullName == "" {
			continue
		}
		if opsID == "" {
			issues = append(issues, RowIssue{Row: rowNum, Message: "ops id is required"})
			continue
		}
		if fullName == "" {
			issues = append(issues, RowIssue{Row: rowNum, Message: "full name is required"})
			continue
		}
		if first, dup := seen[opsID]; dup {
			issues = append(issues, RowIssue{Row: rowNum, Message: fmt.Sprintf("duplicate ops id %s (first used on row %d)", opsID, first)})
			continue
		}

		department, ok := model.ParseDepartment(cell(row, "department"))
		if !ok {
			issues = append(issues, RowIssue{Row: rowNum, Message: fmt.Sprintf("unknown department %q", cell(row, "department"))})
			continue
		}

		status := model.StatusActive
		if s := cell(row, "status"); s != "" {
			if status, ok = model.ParseWorkerStatus(s); !ok {
				issues = append(issues, RowIssue{Row: rowNum, Message: fmt.Sprintf("unknown status %q", s)})
				continue
			}
		}

		seen[opsID] = rowNum
		workers = append(workers, ParsedWorkerRow{
			Row: rowNum,
			Worker: model.Worker{
				OpsID:        opsID,
				FullName:     fullName,
				NationalID:   cell(row, "national id"),
				Phone:        cell(row, "phone"),
				ContractType: model.ContractTypeMpp,
				Department:   department,
				Status:       status,
			},
		})
	}

	return workers, issues, nil
}
