package reports

import (
	"fmt"

	attendance "github.com/snnnxs25024-ux/absensi-backend/attendance/core"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

var tallyHeaders = []interface{}{"Ops ID", "Full Name", "Attendance Days"}

func buildHalfMonthWorkbook(db *gorm.DB, periods []attendance.Period) (*excelize.File, error) {
	f := excelize.NewFile()

	for i, period := range periods {
		sheet := period.Label()
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				f.Close()
				return nil, err
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				f.Close()
				return nil, err
			}
		}

		tallies, err := tallyPeriod(db, period)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to tally %s: %w", sheet, err)
		}

		f.SetSheetRow(sheet, "A1", &tallyHeaders)
		for r, t := range tallies {
			cell, _ := excelize.CoordinatesToCellName(1, r+2)
			row := []interface{}{t.OpsID, t.FullName, t.Days}
			f.SetSheetRow(sheet, cell, &row)
		}
	}

	return f, nil
}
