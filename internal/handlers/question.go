package handlers

import (
	"net/http"

	"github.com/daikiakiyoshi/trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	triviaService *services.TriviaService
}

func NewQuestionHandler(triviaService *services.TriviaService) *QuestionHandler {
	return &QuestionHandler{triviaService: triviaService}
}

// CreateQuestionRequest fields are all optional; absent ones are stored as
// null.
type CreateQuestionRequest struct {
	Question   *string  `json:"question" example:"Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?"`
	Answer     *string  `json:"answer" example:"Maya Angelou"`
	Category   *FlexInt `json:"category" swaggertype:"integer" example:"4"`
	Difficulty *FlexInt `json:"difficulty" swaggertype:"integer" example:"2"`
}

type SearchRequest struct {
	SearchTerm *string `json:"searchTerm" example:"title"`
}

type QuestionsResponse struct {
	Success         bool                `json:"success" example:"true"`
	Questions       []FormattedQuestion `json:"questions"`
	TotalQuestions  int64               `json:"total_questions" example:"19"`
	CurrentCategory *string             `json:"current_category"`
	Categories      map[uint]string     `json:"categories,omitempty"`
}

type DeleteResponse struct {
	Success bool `json:"success" example:"true"`
	Deleted uint `json:"deleted" example:"5"`
}

type CreateResponse struct {
	Success bool `json:"success" example:"true"`
	Created uint `json:"created" example:"24"`
}

// ListQuestions godoc
// @Summary      List questions
// @Description  Ten questions per page, ordered by id, with every category
// @Tags         questions
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Success      200 {object} QuestionsResponse
// @Failure      404 {object} ErrorResponse
// @Router       /questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	page := services.ParsePage(c.DefaultQuery("page", "1"))

	result, err := h.triviaService.ListQuestions(c.Request.Context(), page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, QuestionsResponse{
		Success:        true,
		Questions:      result.Questions,
		TotalQuestions: result.Total,
		Categories:     result.Categories,
	})
}

// DeleteQuestion godoc
// @Summary      Delete a question
// @Tags         questions
// @Produce      json
// @Param        id path int true "Question ID"
// @Success      200 {object} DeleteResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID, ok := parseID(c)
	if !ok {
		return
	}

	deleted, err := h.triviaService.DeleteQuestion(c.Request.Context(), questionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, DeleteResponse{Success: true, Deleted: deleted})
}

// CreateQuestion godoc
// @Summary      Create a question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body CreateQuestionRequest true "Question data"
// @Success      200 {object} CreateResponse
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /questions [post]
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithStatus(c, http.StatusBadRequest)
		return
	}

	created, err := h.triviaService.CreateQuestion(c.Request.Context(), services.NewQuestion{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category.IntPtr(),
		Difficulty: req.Difficulty.IntPtr(),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, CreateResponse{Success: true, Created: created})
}

// SearchQuestions godoc
// @Summary      Search questions
// @Description  Case-insensitive substring match on the question text. No match is an empty list.
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body SearchRequest true "Search term"
// @Success      200 {object} QuestionsResponse
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /searchQuestions [post]
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithStatus(c, http.StatusBadRequest)
		return
	}

	result, err := h.triviaService.SearchQuestions(c.Request.Context(), req.SearchTerm)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, QuestionsResponse{
		Success:        true,
		Questions:      result.Questions,
		TotalQuestions: int64(result.Total),
	})
}
