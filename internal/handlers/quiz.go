package handlers

import (
	"net/http"

	"github.com/daikiakiyoshi/trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	triviaService *services.TriviaService
}

func NewQuizHandler(triviaService *services.TriviaService) *QuizHandler {
	return &QuizHandler{triviaService: triviaService}
}

type QuizCategory struct {
	ID   FlexInt `json:"id" swaggertype:"integer" example:"0"`
	Type string  `json:"type,omitempty" example:"click"`
}

type QuizRequest struct {
	PreviousQuestions []uint        `json:"previous_questions" example:"2,4"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}

// QuizResponse.Question is a formatted question, or false once the player
// has seen every candidate.
type QuizResponse struct {
	Success  bool `json:"success" example:"true"`
	Question any  `json:"question" swaggertype:"object"`
}

// NextQuestion godoc
// @Summary      Draw the next quiz question
// @Description  Random question not in previous_questions; quiz_category.id 0 means any category
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Param        request body QuizRequest true "Quiz state"
// @Success      200 {object} QuizResponse
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /quizzes [post]
func (h *QuizHandler) NextQuestion(c *gin.Context) {
	var req QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.QuizCategory == nil {
		abortWithStatus(c, http.StatusBadRequest)
		return
	}

	question, err := h.triviaService.NextQuizQuestion(c.Request.Context(), services.QuizRequest{
		PreviousQuestions: req.PreviousQuestions,
		CategoryID:        int(req.QuizCategory.ID),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	if question == nil {
		c.JSON(http.StatusOK, QuizResponse{Success: true, Question: false})
		return
	}
	c.JSON(http.StatusOK, QuizResponse{Success: true, Question: question})
}
