package sessions

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	attendance "github.com/snnnxs25024-ux/absensi-backend/attendance/core"
	"github.com/snnnxs25024-ux/absensi-backend/attendance/model"
	"github.com/snnnxs25024-ux/absensi-backend/utils"
	web "github.com/snnnxs25024-ux/absensi-backend/web/common"
	"gorm.io/gorm"
)

type SearchParams struct {
	StartDate *web.DateOnly    `json:"startDate" binding:"required"`
	EndDate   *web.DateOnly    `json:"endDate" binding:"required"`
	Divisions []string         `json:"divisions"`
	ShiftCode *string          `json:"shiftCode"`
	Sorts     []web.Sort       `json:"sorts"`
	Filters   *web.FilterGroup `json:"filters"`
}

var sessionFieldMap = map[string]string{
	"id":        "attendance_sessions.id",
	"date":      "attendance_sessions.date",
	"division":  "attendance_sessions.division",
	"shiftTime": "attendance_sessions.shift_time",
	"shiftCode": "attendance_sessions.shift_code",
	"planMpp":   "attendance_sessions.plan_mpp",
	"actual":    "actual",
	"createdAt": "attendance_sessions.created_at",
}

func (ep *Endpoint) Search(c *gin.Context) {
	var params SearchParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	limit := 1000
	offset := 0
	if val, err := strconv.Atoi(c.Query("limit")); err == nil {
		limit = val
	}
	if val, err := strconv.Atoi(c.Query("offset")); err == nil {
		offset = val
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	results, total, err := SearchSessions(db, params, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSearchResponse(results, total))
}

// SearchSessions pages through saved sessions with the actual headcount
// counted in SQL, so the history grid never loads record rows.
func SearchSessions(db *gorm.DB, params SearchParams, limit, offset int) ([]SessionDTO, int64, error) {
	query := db.Model(&model.AttendanceSession{}).
		Where("attendance_sessions.date BETWEEN ? AND ?",
			params.StartDate.Format("2006-01-02"), params.EndDate.Format("2006-01-02"))

	if len(params.Divisions) > 0 {
		query = query.Where("attendance_sessions.division IN ?", utils.Map(params.Divisions, func(s string) string {
			d, _ := model.ParseDivision(s)
			return d
		}))
	}
	if params.ShiftCode != nil && *params.ShiftCode != "" {
		query = query.Where("attendance_sessions.shift_code = ?", *params.ShiftCode)
	}

	query = web.ApplyFilterGroup(query, sessionFieldMap, params.Filters)

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Select(`attendance_sessions.*,
		(SELECT COUNT(*) FROM attendance_records
		 WHERE attendance_records.session_id = attendance_sessions.id
		 AND attendance_records.is_takeout = false) AS actual`)
	query = web.ApplySorts(query, sessionFieldMap, params.Sorts, "attendance_sessions.date DESC, attendance_sessions.id DESC")
	query = query.Limit(limit).Offset(offset)

	var results []SessionDTO
	if err := query.Scan(&results).Error; err != nil {
		return nil, 0, err
	}

	for i := range results {
		results[i].Fulfillment = attendance.Fulfillment(results[i].PlanMpp, results[i].Actual)
	}

	return results, total, nil
}
