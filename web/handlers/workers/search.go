package workers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/snnnxs25024-ux/absensi-backend/attendance/model"
	"github.com/snnnxs25024-ux/absensi-backend/utils"
	web "github.com/snnnxs25024-ux/absensi-backend/web/common"
	"gorm.io/gorm"
)

type SearchParams struct {
	Query       *string          `json:"query"`
	Departments []string         `json:"departments"`
	Statuses    []string         `json:"statuses"`
	Sorts       []web.Sort       `json:"sorts"`
	Filters     *web.FilterGroup `json:"filters"`
}

var workerFieldMap = map[string]string{
	"id":           "id",
	"opsId":        "ops_id",
	"fullName":     "full_name",
	"nationalId":   "national_id",
	"phone":        "phone",
	"contractType": "contract_type",
	"department":   "department",
	"status":       "status",
	"createdAt":    "created_at",
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

	results, total, err := SearchWorkers(db, params, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSearchResponse(results, total))
}

func SearchWorkers(db *gorm.DB, params SearchParams, limit, offset int) ([]model.Worker, int64, error) {
	query := db.Model(&model.Worker{})

	if params.Query != nil && *params.Query != "" {
		like := "%" + *params.Query + "%"
		query = query.Where("ops_id LIKE ? OR full_name LIKE ?", like, like)
	}
	if len(params.Departments) > 0 {
		query = query.Where("department IN ?", utils.Map(params.Departments, func(s string) string {
			d, _ := model.ParseDepartment(s)
			return d
		}))
	}
	if len(params.Statuses) > 0 {
		query = query.Where("status IN ?", utils.Map(params.Statuses, func(s string) string {
			st, _ := model.ParseWorkerStatus(s)
			return st
		}))
	}

	query = web.ApplyFilterGroup(query, workerFieldMap, params.Filters)

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = web.ApplySorts(query, workerFieldMap, params.Sorts, "full_name ASC")
	query = query.Limit(limit).Offset(offset)

	var results []model.Worker
	if err := query.Find(&results).Error; err != nil {
		return nil, 0, err
	}

	return results, total, nil
}
