package sessions

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	attendance "github.com/snnnxs25024-ux/absensi-backend/attendance/core"
	"github.com/snnnxs25024-ux/absensi-backend/utils"
	web "github.com/snnnxs25024-ux/absensi-backend/web/common"
	"github.com/xuri/excelize/v2"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	historySheet    = "Attendance"
)

type ExportParams struct {
	StartDate *web.DateOnly `json:"startDate" binding:"required"`
	EndDate   *web.DateOnly `json:"endDate" binding:"required"`
}

// Export streams the attendance history of a date range as a sheet, one row
// per record with its session header and derived fields flattened in.
func (ep *Endpoint) Export(c *gin.Context) {
	var params ExportParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	period := attendance.Period{Start: params.StartDate.Time, End: params.EndDate.Time}
	sessions, err := attendance.LoadSessionsInPeriod(db, period)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	now := utils.JakartaNow()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", historySheet); err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	headers := []interface{}{
		"Date", "Division", "Shift Time", "Shift Code", "Plan MPP",
		"Ops ID", "Full Name", "Check In", "Check Out", "Duration", "Status",
	}
	f.SetSheetRow(historySheet, "A1", &headers)

	rowNum := 2
	for _, s := range sessions {
		for _, rec := range s.Records {
			checkout, _ := attendance.EffectiveCheckout(rec, now)
			duration, ok := attendance.WorkDuration(rec.CheckinAt, checkout)

			checkoutCell := ""
			if checkout != nil {
				checkoutCell = checkout.In(utils.JakartaTZ).Format("2006-01-02 15:04")
			}

			row := []interface{}{
				s.Date.Format("2006-01-02"),
				s.Division,
				s.ShiftTime,
				s.ShiftCode,
				s.PlanMpp,
				rec.OpsID,
				rec.FullName,
				rec.CheckinAt.In(utils.JakartaTZ).Format("2006-01-02 15:04"),
				checkoutCell,
				attendance.FormatWorkDuration(duration, ok),
				attendance.StatusLabel(rec),
			}
			cell, _ := excelize.CoordinatesToCellName(1, rowNum)
			f.SetSheetRow(historySheet, cell, &row)
			rowNum++
		}
	}

	filename := fmt.Sprintf("attendance-%s-%s.xlsx",
		params.StartDate.Format("20060102"), params.EndDate.Format("20060102"))
	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
	}
}
