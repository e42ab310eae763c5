package sessions

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	attendance "github.com/snnnxs25024-ux/absensi-backend/attendance/core"
	"github.com/snnnxs25024-ux/absensi-backend/core"
	"github.com/snnnxs25024-ux/absensi-backend/utils"
	web "github.com/snnnxs25024-ux/absensi-backend/web/common"
	"gorm.io/gorm"
)

type Endpoint struct {
	base web.Handler
}

func Register(r *gin.RouterGroup, dm *core.DatabaseManager) {
	endpoint := &Endpoint{base: web.Handler{Dm: dm}}

	// the scanning loop
	r.POST("/sessions/scan", endpoint.Scan)
	r.POST("/sessions", endpoint.Save)

	// saved session history
	r.POST("/sessions/search", endpoint.Search)
	r.GET("/sessions/:id", endpoint.Get)
	r.DELETE("/sessions/:id", endpoint.Delete)
	r.POST("/sessions/export", endpoint.Export)

	// record corrections
	r.POST("/records", endpoint.AddRecord)
	r.PUT("/records/:id", endpoint.UpdateRecord)
	r.DELETE("/records/:id", endpoint.DeleteRecord)
}

func (ep *Endpoint) Delete(c *gin.Context) {
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

	if err := attendance.DeleteSession(db, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, web.NewErrorResponse("Session not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(gin.H{}))
}

type RecordAddDTO struct {
	SessionID  uint               `json:"sessionId" binding:"required"`
	OpsID      string             `json:"opsId" binding:"required"`
	CheckinAt  *web.LocalDateTime `json:"checkinAt" binding:"required"`
	CheckoutAt *web.LocalDateTime `json:"checkoutAt"`
}

// AddRecord inserts a correction into an already saved session, for workers
// the operator could not scan at the door.
func (ep *Endpoint) AddRecord(c *gin.Context) {
	var dto RecordAddDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	var checkoutAt *time.Time
	if dto.CheckoutAt != nil {
		checkoutAt = &dto.CheckoutAt.Time
	}

	rec, err := attendance.AddManualRecord(db, dto.SessionID, dto.OpsID, dto.CheckinAt.Time, checkoutAt)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, web.NewErrorResponse("Session not found"))
		case errors.Is(err, attendance.ErrWorkerNotFound),
			errors.Is(err, attendance.ErrAlreadyInSession),
			errors.Is(err, attendance.ErrCheckoutBeforeIn):
			c.JSON(http.StatusUnprocessableEntity, web.NewErrorResponse(err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(toRecordDTO(*rec, utils.JakartaNow())))
}

type RecordUpdateDTO struct {
	CheckoutAt        *web.LocalDateTime `json:"checkoutAt,omitempty"`
	ClearCheckout     bool               `json:"clearCheckout,omitempty"`
	ManualStatus      *string            `json:"manualStatus,omitempty"`
	ClearManualStatus bool               `json:"clearManualStatus,omitempty"`
	IsTakeout         *bool              `json:"isTakeout,omitempty"`
}

func (ep *Endpoint) UpdateRecord(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Invalid id"))
		return
	}

	var dto RecordUpdateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	upd := attendance.RecordUpdate{
		ClearCheckout:     dto.ClearCheckout,
		ManualStatus:      dto.ManualStatus,
		ClearManualStatus: dto.ClearManualStatus,
		IsTakeout:         dto.IsTakeout,
	}
	if dto.CheckoutAt != nil {
		upd.CheckoutAt = &dto.CheckoutAt.Time
	}

	rec, err := attendance.UpdateRecord(db, uint(id), upd)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, web.NewErrorResponse("Record not found"))
		case errors.Is(err, attendance.ErrCheckoutBeforeIn),
			errors.Is(err, attendance.ErrInvalidManualStatus):
			c.JSON(http.StatusUnprocessableEntity, web.NewErrorResponse(err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(toRecordDTO(*rec, utils.JakartaNow())))
}

func (ep *Endpoint) DeleteRecord(c *gin.Context) {
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

	if err := attendance.DeleteRecord(db, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, web.NewErrorResponse("Record not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(gin.H{}))
}
