package handlers

import (
	"bytes"
	"net/http"

	"github.com/daikiakiyoshi/trivia-api/internal/seed"

	"github.com/gin-gonic/gin"
)

// ExportQuestions godoc
// @Summary      Export categories and questions
// @Description  Same shape the seed command imports
// @Tags         questions
// @Produce      json
// @Produce      text/csv
// @Param        format query string false "json or csv" default(json)
// @Success      200 {object} seed.Data
// @Failure      422 {object} ErrorResponse
// @Router       /questions/export [get]
func (h *QuestionHandler) ExportQuestions(c *gin.Context) {
	data, err := h.triviaService.Export(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	if c.DefaultQuery("format", "json") == "csv" {
		var buf bytes.Buffer
		if err := seed.WriteCSV(&buf, data); err != nil {
			respondError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="trivia.csv"`)
		c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="trivia.json"`)
	c.JSON(http.StatusOK, data)
}
