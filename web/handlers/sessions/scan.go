package sessions

import (
	"net/http"

	"github.com/gin-gonic/gin"
	attendance "github.com/snnnxs25024-ux/absensi-backend/attendance/core"
	"github.com/snnnxs25024-ux/absensi-backend/utils"
	web "github.com/snnnxs25024-ux/absensi-backend/web/common"
)

// ScanDTO carries one scan attempt with the full draft context. The server
// holds nothing between scans; the console owns the buffer.
type ScanDTO struct {
	Session SessionDescriptorDTO        `json:"session" binding:"required"`
	Buffer  []attendance.BufferedRecord `json:"buffer"`
	OpsID   string                      `json:"opsId" binding:"required"`
}

type ScanRejectDTO struct {
	Reason           string `json:"reason"`
	Message          string `json:"message"`
	RemainingMinutes int    `json:"remainingMinutes,omitempty"`
}

// ScanOutcomeDTO is always a 200. A rejection is a normal answer to the
// operator, not a server failure.
type ScanOutcomeDTO struct {
	Admitted           bool                       `json:"admitted"`
	Entry              *attendance.BufferedRecord `json:"entry,omitempty"`
	Reject             *ScanRejectDTO             `json:"reject,omitempty"`
	AutoClosedRecordID uint                       `json:"autoClosedRecordId,omitempty"`
}

func (ep *Endpoint) Scan(c *gin.Context) {
	var dto ScanDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	info, err := dto.Session.ToInfo()
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(err.Error()))
		return
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	outcome, err := attendance.Scan(db, info, dto.Buffer, dto.OpsID, utils.JakartaNow())
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	res := ScanOutcomeDTO{
		Admitted: outcome.Admitted(),
		Entry:    outcome.Entry,
	}
	if outcome.AutoClose != nil {
		res.AutoClosedRecordID = outcome.AutoClose.RecordID
	}
	if outcome.Reject != nil {
		res.Reject = &ScanRejectDTO{
			Reason:           outcome.Reject.Reason,
			Message:          outcome.Reject.Message,
			RemainingMinutes: attendance.CeilMinutes(outcome.Reject.Remaining),
		}
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(res))
}

// Save persists the draft session and its buffer in one transaction. An
// empty buffer saves nothing, same as cancelling the draft.
func (ep *Endpoint) Save(c *gin.Context) {
	var dto struct {
		Session SessionDescriptorDTO        `json:"session" binding:"required"`
		Buffer  []attendance.BufferedRecord `json:"buffer"`
	}
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	info, err := dto.Session.ToInfo()
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(err.Error()))
		return
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	session, err := attendance.FinalizeSession(db, info, dto.Buffer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	if session == nil {
		c.JSON(http.StatusOK, web.NewSuccessResponse(gin.H{"saved": false}))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(gin.H{"saved": true, "id": session.ID}))
}
