package handlers

import (
	"net/http"

	"github.com/daikiakiyoshi/trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	triviaService *services.TriviaService
}

func NewCategoryHandler(triviaService *services.TriviaService) *CategoryHandler {
	return &CategoryHandler{triviaService: triviaService}
}

type CategoriesResponse struct {
	Success    bool            `json:"success" example:"true"`
	Categories map[uint]string `json:"categories"`
}

// ListCategories godoc
// @Summary      List categories
// @Description  All categories as an id to type object
// @Tags         categories
// @Produce      json
// @Success      200 {object} CategoriesResponse
// @Failure      404 {object} ErrorResponse
// @Router       /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.triviaService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, CategoriesResponse{Success: true, Categories: categories})
}

// ListCategoryQuestions godoc
// @Summary      List questions of a category
// @Tags         categories
// @Produce      json
// @Param        id path int true "Category ID"
// @Success      200 {object} QuestionsResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /categories/{id}/questions [get]
func (h *CategoryHandler) ListCategoryQuestions(c *gin.Context) {
	categoryID, ok := parseID(c)
	if !ok {
		return
	}

	result, err := h.triviaService.QuestionsByCategory(c.Request.Context(), categoryID)
	if err != nil {
		respondError(c, err)
		return
	}

	current := result.CurrentCategory
	c.JSON(http.StatusOK, QuestionsResponse{
		Success:         true,
		Questions:       result.Questions,
		TotalQuestions:  int64(result.Total),
		CurrentCategory: &current,
	})
}
