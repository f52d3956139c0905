package controllers

import (
	"log"
	"net/http"

	"gaguya-backend/services"

	"github.com/gin-gonic/gin"
)

type ImportController struct {
	service *services.ImportService
}

func NewImportController(service *services.ImportService) *ImportController {
	return &ImportController{service: service}
}

// ImportProducts takes one uploaded spreadsheet (xlsx/xls/csv) and runs the
// bulk pipeline. 200 with a report means the commit finished — the report's
// errors list tells a partial success apart from a clean one. Anything that
// aborts the whole run (unreadable file, empty batch, non-slug DB error)
// comes back as a single error status instead.
func (ic *ImportController) ImportProducts(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "파일을 선택해 주세요."})
		return
	}

	format, err := services.DetectFormat(fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "업로드된 파일을 읽을 수 없습니다."})
		return
	}
	defer f.Close()

	progress := func(current, total int, label, phase string) {
		log.Printf("📦 import [%s] %d/%d %s", phase, current, total, label)
	}

	var report *services.ImportReport
	switch format {
	case "excel":
		report, err = ic.service.ImportExcel(c.Request.Context(), f, progress)
	default:
		report, err = ic.service.ImportCSV(c.Request.Context(), f, progress)
	}
	if err != nil {
		log.Printf("❌ import failed: %v", err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}
