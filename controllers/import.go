// controllers/import.go
package controllers

import (
	"bytes"
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"cashback-backend/models"
	"cashback-backend/services"
	"cashback-backend/utils"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ImportController handles batch imports and the import template download.
type ImportController struct {
	Imports        *services.ImportService
	MaxUploadBytes int64
}

// ImportJSON imports a canonical batch posted as JSON.
func (ic *ImportController) ImportJSON(c *gin.Context) {
	var input models.ImportData
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ImportResult{
			Success: false,
			Message: "invalid JSON body",
			Errors:  []string{err.Error()},
		})
		return
	}

	stats, err := ic.Imports.Import(c.Request.Context(), input)
	if err != nil {
		respondImportError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ImportResult{
		Success: true,
		Message: "Import completed successfully",
		Stats:   &stats,
	})
}

// ImportExcel imports the xlsx workbook sent in the multipart field "file".
func (ic *ImportController) ImportExcel(c *gin.Context) {
	if ic.MaxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, ic.MaxUploadBytes)
	}

	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, models.ImportResult{Success: false, Message: "file too large"})
			return
		}
		c.JSON(http.StatusBadRequest, models.ImportResult{Success: false, Message: "no file uploaded"})
		return
	}

	switch strings.ToLower(filepath.Ext(header.Filename)) {
	case ".xlsx", ".xlsm":
	default:
		c.JSON(http.StatusBadRequest, models.ImportResult{
			Success: false,
			Message: "unsupported file type",
			Errors:  []string{"upload an .xlsx spreadsheet"},
		})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ImportResult{Success: false, Message: "could not read file"})
		return
	}
	defer file.Close()

	result, err := ic.Imports.ImportSheet(c.Request.Context(), file)
	if err != nil {
		respondImportError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ImportResult{
		Success: true,
		Message: services.ImportMessage(result),
		Stats:   &result.Stats,
	})
}

// DownloadTemplate serves the Standard layout workbook.
func (ic *ImportController) DownloadTemplate(c *gin.Context) {
	var buf bytes.Buffer
	if err := services.WriteTemplate(&buf); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate template")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+services.TemplateFileName+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func respondImportError(c *gin.Context, err error) {
	status, message, issues := failure(err, "Failed to import data")
	c.JSON(status, models.ImportResult{Success: false, Message: message, Errors: issues})
}
