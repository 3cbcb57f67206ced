package router

import (
	"time"

	"github.com/chandu-aravapalli/BetterMind/internal/assessment"
	"github.com/chandu-aravapalli/BetterMind/internal/config"
	"github.com/chandu-aravapalli/BetterMind/internal/handlers"
	"github.com/chandu-aravapalli/BetterMind/internal/models"
	"github.com/chandu-aravapalli/BetterMind/internal/services"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
	"go.uber.org/zap"
)

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}

func errorHandler(c *gin.Context, info ratelimit.Info) {
	c.JSON(429, gin.H{"error": "too many requests, try again later"})
}

func Setup(log *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(log))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     config.Conf.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
	})
	router.Use(func(c *gin.Context) {
		err := secureMiddleware.Process(c.Writer, c.Request)
		if err != nil {
			c.Abort()
			return
		}
	})

	aiConf := config.Conf.AI
	summaryService := services.NewSummaryService(aiConf.APIKey, aiConf.APIURL, aiConf.Model, log)

	userHandler := handlers.NewUserHandler(log)
	assessmentHandler := handlers.NewAssessmentHandler(log)
	doctorHandler := handlers.NewDoctorHandler(log, summaryService)

	// Credential endpoints are rate limited per client IP.
	rateLimitStore := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Minute,
		Limit: 5,
	})
	limiter := ratelimit.RateLimiter(rateLimitStore, &ratelimit.Options{
		ErrorHandler: errorHandler,
		KeyFunc:      keyFunc,
	})

	api := router.Group("/api")

	api.POST("/users", limiter, userHandler.Register)
	api.POST("/users/login", limiter, userHandler.Login)

	authed := api.Group("")
	authed.Use(AuthRequired(log))

	authed.GET("/users/me", userHandler.Me)

	registerAssessmentRoutes(authed, assessmentHandler, "pre-assessment", assessment.TypePre, assessmentHandler.SubmitPre)
	registerAssessmentRoutes(authed, assessmentHandler, "stress-assessment", assessment.TypeStress, assessmentHandler.SubmitStress)
	registerAssessmentRoutes(authed, assessmentHandler, "anxiety-assessment", assessment.TypeAnxiety, assessmentHandler.SubmitAnxiety)
	registerAssessmentRoutes(authed, assessmentHandler, "ptsd-assessment", assessment.TypePTSD, assessmentHandler.SubmitPTSD)

	authed.GET("/pre-assessment/questions", assessmentHandler.PreQuestions)
	authed.GET("/assessments/status/:userId", assessmentHandler.Status)

	doctor := authed.Group("/doctor")
	doctor.Use(RoleRequired(models.RoleDoctor))
	doctor.GET("/patients", doctorHandler.Patients)
	doctor.GET("/patients/:id", doctorHandler.PatientDetails)
	doctor.GET("/patients/:id/ai-summary", doctorHandler.AISummary)

	return router
}

// registerAssessmentRoutes wires the common route shape every assessment
// type shares: submit, per-user listing, single fetch, and the doctor-only
// full results view.
func registerAssessmentRoutes(g *gin.RouterGroup, h *handlers.AssessmentHandler, prefix string, t assessment.Type, submit gin.HandlerFunc) {
	grp := g.Group("/" + prefix)
	grp.POST("/submit", submit)
	grp.GET("/submissions/:userId", h.Submissions(t))
	grp.GET("/submission/:id", h.Submission(t))
	grp.GET("/all-results", RoleRequired(models.RoleDoctor), h.AllResults(t))
}
