package reports

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	attendance "github.com/snnnxs25024-ux/absensi-backend/attendance/core"
	"github.com/snnnxs25024-ux/absensi-backend/core"
	web "github.com/snnnxs25024-ux/absensi-backend/web/common"
	"gorm.io/gorm"
)

type Endpoint struct {
	base web.Handler
}

func Register(r *gin.RouterGroup, dm *core.DatabaseManager) {
	endpoint := &Endpoint{base: web.Handler{Dm: dm}}
	r.GET("/reports/halfmonth", endpoint.HalfMonth)
	r.POST("/reports/range", endpoint.Range)
	r.GET("/reports/halfmonth/export", endpoint.ExportHalfMonth)
}

type PeriodReportDTO struct {
	Label     string                       `json:"label"`
	StartDate string                       `json:"startDate"`
	EndDate   string                       `json:"endDate"`
	Tallies   []attendance.AttendanceTally `json:"tallies"`
}

func toPeriodReport(period attendance.Period, tallies []attendance.AttendanceTally) PeriodReportDTO {
	return PeriodReportDTO{
		Label:     period.Label(),
		StartDate: period.Start.Format("2006-01-02"),
		EndDate:   period.End.Format("2006-01-02"),
		Tallies:   tallies,
	}
}

func yearMonthFromQuery(c *gin.Context) (int, time.Month, bool) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Invalid year"))
		return 0, 0, false
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Invalid month"))
		return 0, 0, false
	}
	return year, time.Month(month), true
}

func tallyPeriod(db *gorm.DB, period attendance.Period) ([]attendance.AttendanceTally, error) {
	sessions, err := attendance.LoadSessionsInPeriod(db, period)
	if err != nil {
		return nil, err
	}
	workers, err := attendance.LoadWorkers(db)
	if err != nil {
		return nil, err
	}
	return attendance.CountAttendanceDays(sessions, workers, period), nil
}

// HalfMonth reports both fortnights of a month: days 1-15 and day 16
// through the end.
func (ep *Endpoint) HalfMonth(c *gin.Context) {
	year, month, ok := yearMonthFromQuery(c)
	if !ok {
		return
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	first := attendance.FirstHalf(year, month)
	second := attendance.SecondHalf(year, month)

	firstTallies, err := tallyPeriod(db, first)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	secondTallies, err := tallyPeriod(db, second)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(gin.H{
		"period1": toPeriodReport(first, firstTallies),
		"period2": toPeriodReport(second, secondTallies),
	}))
}

type RangeParams struct {
	StartDate *web.DateOnly `json:"startDate" binding:"required"`
	EndDate   *web.DateOnly `json:"endDate" binding:"required"`
}

// Range reports an arbitrary closed date window.
func (ep *Endpoint) Range(c *gin.Context) {
	var params RangeParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}
	if params.EndDate.Before(params.StartDate.Time) {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("End date is before start date"))
		return
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	period := attendance.Period{Start: params.StartDate.Time, End: params.EndDate.Time}
	tallies, err := tallyPeriod(db, period)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(toPeriodReport(period, tallies)))
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHalfMonth writes both fortnights of a month into one workbook, one
// sheet per period.
func (ep *Endpoint) ExportHalfMonth(c *gin.Context) {
	year, month, ok := yearMonthFromQuery(c)
	if !ok {
		return
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	periods := []attendance.Period{
		attendance.FirstHalf(year, month),
		attendance.SecondHalf(year, month),
	}

	f, err := buildHalfMonthWorkbook(db, periods)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer f.Close()

	filename := "attendance-days-" + periods[0].Start.Format("200601") + ".xlsx"
	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
	}
}
