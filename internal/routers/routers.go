package routers

import (
	"github.com/daikiakiyoshi/trivia-api/internal/handlers"
	"github.com/daikiakiyoshi/trivia-api/internal/middleware"
	"github.com/daikiakiyoshi/trivia-api/internal/services"

	_ "github.com/daikiakiyoshi/trivia-api/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// New builds the engine with middleware, fallbacks and every route.
func New(triviaService *services.TriviaService) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(
		middleware.RequestID(),
		gin.Logger(),
		gin.CustomRecovery(handlers.Recovery),
		middleware.CORS(),
	)
	r.NoRoute(handlers.NotFound)
	r.NoMethod(handlers.MethodNotAllowed)

	RoutersInit(r, triviaService)
	return r
}

func RoutersInit(r *gin.Engine, triviaService *services.TriviaService) {
	categoryHandler := handlers.NewCategoryHandler(triviaService)
	questionHandler := handlers.NewQuestionHandler(triviaService)
	quizHandler := handlers.NewQuizHandler(triviaService)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	categories := r.Group("/categories")
	{
		categories.GET("", categoryHandler.ListCategories)
		categories.GET("/:id/questions", categoryHandler.ListCategoryQuestions)
	}

	questions := r.Group("/questions")
	{
		questions.GET("", questionHandler.ListQuestions)
		questions.POST("", questionHandler.CreateQuestion)
		questions.GET("/export", questionHandler.ExportQuestions)
		questions.DELETE("/:id", questionHandler.DeleteQuestion)
	}

	r.POST("/searchQuestions", questionHandler.SearchQuestions)
	r.POST("/quizzes", quizHandler.NextQuestion)
}
