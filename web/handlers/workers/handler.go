package workers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/snnnxs25024-ux/absensi-backend/attendance/model"
	"github.com/snnnxs25024-ux/absensi-backend/core"
	web "github.com/snnnxs25024-ux/absensi-backend/web/common"
	"gorm.io/gorm"
)

type Endpoint struct {
	base web.Handler
}

func Register(r *gin.RouterGroup, dm *core.DatabaseManager) {
	endpoint := &Endpoint{base: web.Handler{Dm: dm}}
	r.POST("/workers/search", endpoint.Search)
	r.POST("/workers", endpoint.Create)
	r.PUT("/workers/:id", endpoint.Update)
	r.DELETE("/workers/:id", endpoint.Delete)

	// registry transfer as xlsx
	r.GET("/workers/template", endpoint.Template)
	r.POST("/workers/import", endpoint.Import)
	r.GET("/workers/export", endpoint.Export)
}

type WorkerCreateDTO struct {
	OpsID      string `json:"opsId" binding:"required"`
	FullName   string `json:"fullName" binding:"required"`
	NationalID string `json:"nationalId"`
	Phone      string `json:"phone"`
	Department string `json:"department" binding:"required"`
	Status     string `json:"status"`
}

func (ep *Endpoint) Create(c *gin.Context) {
	var dto WorkerCreateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	department, ok := model.ParseDepartment(dto.Department)
	if !ok {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Unknown department: "+dto.Department))
		return
	}

	status := model.StatusActive
	if dto.Status != "" {
		if status, ok = model.ParseWorkerStatus(dto.Status); !ok {
			c.JSON(http.StatusBadRequest, web.NewErrorResponse("Unknown status: "+dto.Status))
			return
		}
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	opsID := model.NormalizeOpsID(dto.OpsID)
	var count int64
	if err := db.Model(&model.Worker{}).Where("ops_id = ?", opsID).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	if count > 0 {
		c.JSON(http.StatusUnprocessableEntity, web.NewErrorResponse("Ops id "+opsID+" is already registered"))
		return
	}

	worker := model.Worker{
		OpsID:        opsID,
		FullName:     dto.FullName,
		NationalID:   dto.NationalID,
		Phone:        dto.Phone,
		ContractType: model.ContractTypeMpp,
		Department:   department,
		Status:       status,
	}
	if err := db.Create(&worker).Error; err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(worker))
}

type WorkerUpdateDTO struct {
	OpsID      *string `json:"opsId,omitempty"`
	FullName   *string `json:"fullName,omitempty"`
	NationalID *string `json:"nationalId,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Department *string `json:"department,omitempty"`
	Status     *string `json:"status,omitempty"`
}

func (ep *Endpoint) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Invalid id"))
		return
	}

	var dto WorkerUpdateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	changes := map[string]interface{}{}
	if dto.OpsID != nil {
		changes["ops_id"] = model.NormalizeOpsID(*dto.OpsID)
	}
	if dto.FullName != nil {
		changes["full_name"] = *dto.FullName
	}
	if dto.NationalID != nil {
		changes["national_id"] = *dto.NationalID
	}
	if dto.Phone != nil {
		changes["phone"] = *dto.Phone
	}
	if dto.Department != nil {
		department, ok := model.ParseDepartment(*dto.Department)
		if !ok {
			c.JSON(http.StatusBadRequest, web.NewErrorResponse("Unknown department: "+*dto.Department))
			return
		}
		changes["department"] = department
	}
	if dto.Status != nil {
		status, ok := model.ParseWorkerStatus(*dto.Status)
		if !ok {
			c.JSON(http.StatusBadRequest, web.NewErrorResponse("Unknown status: "+*dto.Status))
			return
		}
		changes["status"] = status
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	var worker model.Worker
	if err := db.First(&worker, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, web.NewErrorResponse("Worker not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	if opsID, ok := changes["ops_id"].(string); ok && opsID != worker.OpsID {
		var count int64
		if err := db.Model(&model.Worker{}).Where("ops_id = ? AND id != ?", opsID, id).Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
			return
		}
		if count > 0 {
			c.JSON(http.StatusUnprocessableEntity, web.NewErrorResponse("Ops id "+opsID+" is already registered"))
			return
		}
	}

	if len(changes) > 0 {
		if err := db.Model(&worker).Updates(changes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
			return
		}
		if err := db.First(&worker, id).Error; err != nil {
			c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
			return
		}
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(worker))
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

	res := db.Delete(&model.Worker{}, id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(res.Error.Error()))
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, web.NewErrorResponse("Worker not found"))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(gin.H{}))
}
