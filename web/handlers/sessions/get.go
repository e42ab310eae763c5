package sessions

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	attendance "github.com/snnnxs25024-ux/absensi-backend/attendance/core"
	"github.com/snnnxs25024-ux/absensi-backend/attendance/model"
	"github.com/snnnxs25024-ux/absensi-backend/utils"
	web "github.com/snnnxs25024-ux/absensi-backend/web/common"
	"gorm.io/gorm"
)

type SessionDetailDTO struct {
	ID          uint        `json:"id"`
	Date        string      `json:"date"`
	Division    string      `json:"division"`
	ShiftTime   string      `json:"shiftTime"`
	ShiftCode   string      `json:"shiftCode"`
	PlanMpp     int         `json:"planMpp"`
	Actual      int         `json:"actual"`
	Fulfillment string      `json:"fulfillment"`
	Records     []RecordDTO `json:"records"`
}

func (ep *Endpoint) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Invalid id"))
		return
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	session, err := attendance.LoadSessionDetail(db, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, web.NewErrorResponse("Session not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	now := utils.JakartaNow()
	actual := attendance.ActualCount(session.Records)

	res := SessionDetailDTO{
		ID:          session.ID,
		Date:        session.Date.Format("2006-01-02"),
		Division:    session.Division,
		ShiftTime:   session.ShiftTime,
		ShiftCode:   session.ShiftCode,
		PlanMpp:     session.PlanMpp,
		Actual:      actual,
		Fulfillment: attendance.Fulfillment(session.PlanMpp, actual),
		Records:     utils.Map(session.Records, func(rec model.AttendanceRecord) RecordDTO { return toRecordDTO(rec, now) }),
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(res))
}
