package workers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	attendance "github.com/snnnxs25024-ux/absensi-backend/attendance/core"
	"github.com/snnnxs25024-ux/absensi-backend/attendance/model"
	"github.com/snnnxs25024-ux/absensi-backend/utils"
	web "github.com/snnnxs25024-ux/absensi-backend/web/common"
	"github.com/xuri/excelize/v2"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	workerSheet     = "Workers"
	maxImportSize   = 10 << 20 // 10 MB
)

var workerHeaders = []interface{}{"Ops ID", "Full Name", "National ID", "Phone", "Contract Type", "Department", "Status"}

// Template serves an empty registry sheet with one example row, ready to
// fill and re-upload.
func (ep *Endpoint) Template(c *gin.Context) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", workerSheet); err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	f.SetSheetRow(workerSheet, "A1", &workerHeaders)
	example := []interface{}{"JKT001", "Rina Safitri", "3171234567890001", "081234567890", model.ContractTypeMpp, model.DepartmentCache, model.StatusActive}
	f.SetSheetRow(workerSheet, "A2", &example)

	writeXlsx(c, f, "worker-template.xlsx")
}

type ImportResultDTO struct {
	Imported int                  `json:"imported"`
	Issues   []attendance.RowIssue `json:"issues"`
}

// Import takes a filled worker sheet and inserts the valid rows. Rows that
// fail validation or collide with registered ops ids are reported back with
// their sheet row number; the rest are inserted anyway.
func (ep *Endpoint) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Missing file upload"))
		return
	}
	if fileHeader.Size > maxImportSize {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("File too large"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(err.Error()))
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Not a readable xlsx file"))
		return
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Workbook has no sheets"))
		return
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(err.Error()))
		return
	}

	parsed, issues, err := attendance.ParseWorkerRows(rows)
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

	var existing []model.Worker
	if err := db.Select("ops_id").Find(&existing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	registered := make(map[string]bool, len(existing))
	for _, w := range existing {
		registered[w.OpsID] = true
	}

	var toCreate []model.Worker
	for _, p := range parsed {
		if registered[p.Worker.OpsID] {
			issues = append(issues, attendance.RowIssue{Row: p.Row, Message: fmt.Sprintf("ops id %s is already registered", p.Worker.OpsID)})
			continue
		}
		toCreate = append(toCreate, p.Worker)
	}

	if len(toCreate) > 0 {
		if err := db.CreateInBatches(toCreate, 100).Error; err != nil {
			c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
			return
		}
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(ImportResultDTO{
		Imported: len(toCreate),
		Issues:   issues,
	}))
}

// Export streams the whole registry as a sheet in the same column layout
// the import accepts.
func (ep *Endpoint) Export(c *gin.Context) {
	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	list, err := attendance.LoadWorkers(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", workerSheet); err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	f.SetSheetRow(workerSheet, "A1", &workerHeaders)
	for i, w := range list {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{w.OpsID, w.FullName, w.NationalID, w.Phone, w.ContractType, w.Department, w.Status}
		f.SetSheetRow(workerSheet, cell, &row)
	}

	writeXlsx(c, f, fmt.Sprintf("workers-%s.xlsx", utils.JakartaNow().Format("20060102")))
}

func writeXlsx(c *gin.Context, f *excelize.File, filename string) {
	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
	}
}
