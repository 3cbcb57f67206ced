package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/chandu-aravapalli/BetterMind/internal/assessment"
	"github.com/chandu-aravapalli/BetterMind/internal/models"
	"github.com/chandu-aravapalli/BetterMind/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AssessmentHandler struct {
	log *zap.Logger
}

func NewAssessmentHandler(log *zap.Logger) *AssessmentHandler {
	return &AssessmentHandler{log: log}
}

// resolveOwner decides which user a submission belongs to. A missing
// userId means the caller submits for themselves; patients may never
// submit for anyone else.
func resolveOwner(c *gin.Context, declared string) (string, bool) {
	user := CurrentUser(c)
	if declared == "" || declared == user.ID {
		return user.ID, true
	}
	if user.Role != models.RoleDoctor {
		c.JSON(http.StatusForbidden, gin.H{"error": "not authorized to submit for another user"})
		return "", false
	}
	return declared, true
}

// persist stores the scored record and writes the canonical response. The
// engine has already validated and scored; anything failing here is a
// storage problem.
func (h *AssessmentHandler) persist(c *gin.Context, rec *assessment.Record, detail *models.StressDetail) {
	row, err := models.NewAssessmentFromRecord(rec)
	if err != nil {
		h.log.Error("Failed to encode assessment record", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save assessment"})
		return
	}
	row.StressDetail = detail

	if err := repository.CreateAssessment(c.Request.Context(), row); err != nil {
		h.log.Error("Failed to save assessment",
			zap.String("user_id", rec.UserID),
			zap.String("type", string(rec.Type)),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save assessment"})
		return
	}

	h.log.Info("Assessment submitted",
		zap.String("assessment_id", row.ID),
		zap.String("user_id", rec.UserID),
		zap.String("type", string(rec.Type)))
	c.JSON(http.StatusCreated, row)
}

// submissionError maps engine validation failures to HTTP responses.
func submissionError(c *gin.Context, err error) {
	var re *assessment.RangeError
	if errors.As(err, &re) || errors.Is(err, assessment.ErrConsentRequired) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process assessment"})
}

func (h *AssessmentHandler) SubmitStress(c *gin.Context) {
	var req struct {
		assessment.StressForm
		UserID string `json:"userId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	owner, ok := resolveOwner(c, req.UserID)
	if !ok {
		return
	}
	rec, err := assessment.BuildStressRecord(owner, &req.StressForm, time.Now().UTC())
	if err != nil {
		submissionError(c, err)
		return
	}
	h.persist(c, rec, models.NewStressDetail(&req.StressForm))
}

func (h *AssessmentHandler) SubmitAnxiety(c *gin.Context) {
	var req struct {
		assessment.AnxietyForm
		UserID string `json:"userId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	owner, ok := resolveOwner(c, req.UserID)
	if !ok {
		return
	}
	rec, err := assessment.BuildAnxietyRecord(owner, &req.AnxietyForm, time.Now().UTC())
	if err != nil {
		submissionError(c, err)
		return
	}
	h.persist(c, rec, nil)
}

func (h *AssessmentHandler) SubmitPTSD(c *gin.Context) {
	var req struct {
		assessment.PTSDForm
		UserID string `json:"userId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	owner, ok := resolveOwner(c, req.UserID)
	if !ok {
		return
	}
	rec, err := assessment.BuildPTSDRecord(owner, &req.PTSDForm, time.Now().UTC())
	if err != nil {
		submissionError(c, err)
		return
	}
	h.persist(c, rec, nil)
}

func (h *AssessmentHandler) SubmitPre(c *gin.Context) {
	var req struct {
		assessment.PreAssessmentForm
		UserID string `json:"userId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	owner, ok := resolveOwner(c, req.UserID)
	if !ok {
		return
	}
	rec, err := assessment.BuildPreRecord(owner, &req.PreAssessmentForm, time.Now().UTC())
	if err != nil {
		submissionError(c, err)
		return
	}
	h.persist(c, rec, nil)
}

// Submissions lists one user's submissions of a single type. Patients can
// only list their own.
func (h *AssessmentHandler) Submissions(t assessment.Type) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")
		user := CurrentUser(c)
		if user.Role != models.RoleDoctor && user.ID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "not authorized to view these submissions"})
			return
		}
		out, err := repository.GetAssessmentsByUserAndType(c.Request.Context(), userID, t)
		if err != nil {
			h.log.Error("Failed to list submissions", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load submissions"})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// Submission fetches a single submission by id, enforcing ownership for
// patients and that the row is of the requested type.
func (h *AssessmentHandler) Submission(t assessment.Type) gin.HandlerFunc {
	return func(c *gin.Context) {
		row, err := repository.GetAssessmentByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "submission not found"})
				return
			}
			h.log.Error("Failed to load submission", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load submission"})
			return
		}
		if row.AssessmentType != string(t) {
			c.JSON(http.StatusNotFound, gin.H{"error": "submission not found"})
			return
		}
		user := CurrentUser(c)
		if user.Role != models.RoleDoctor && user.ID != row.UserID {
			c.JSON(http.StatusForbidden, gin.H{"error": "not authorized to view this submission"})
			return
		}
		c.JSON(http.StatusOK, row)
	}
}

// AllResults lists every completed submission of one type. The route is
// restricted to doctors by the router.
func (h *AssessmentHandler) AllResults(t assessment.Type) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := repository.GetCompletedByType(c.Request.Context(), t)
		if err != nil {
			h.log.Error("Failed to list results", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load results"})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// Status reports per-type completion for one user.
func (h *AssessmentHandler) Status(c *gin.Context) {
	userID := c.Param("userId")
	user := CurrentUser(c)
	if user.Role != models.RoleDoctor && user.ID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not authorized to view this status"})
		return
	}
	status, err := repository.GetStatusByUser(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("Failed to load assessment status", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load status"})
		return
	}
	c.JSON(http.StatusOK, status)
}

// preQuestion describes one item of the intake questionnaire as presented
// to the client.
type preQuestion struct {
	QuestionText string   `json:"questionText"`
	QuestionType string   `json:"questionType"`
	Options      []string `json:"options,omitempty"`
	Required     bool     `json:"required"`
	Order        int      `json:"order"`
}

var defaultPreQuestions = []preQuestion{
	{
		QuestionText: "How would you rate your overall stress level?",
		QuestionType: "scale",
		Options:      []string{"1", "2", "3", "4", "5"},
		Required:     true,
		Order:        1,
	},
	{
		QuestionText: "How many hours do you sleep on average?",
		QuestionType: "text",
		Required:     true,
		Order:        2,
	},
	{
		QuestionText: "Do you experience anxiety?",
		QuestionType: "multiple_choice",
		Options:      []string{"Never", "Sometimes", "Often", "Always"},
		Required:     true,
		Order:        3,
	},
	{
		QuestionText: "How would you describe your mood lately?",
		QuestionType: "multiple_choice",
		Options:      []string{"Very Happy", "Happy", "Neutral", "Sad", "Very Sad"},
		Required:     true,
		Order:        4,
	},
}

// PreQuestions serves the static intake questionnaire.
func (h *AssessmentHandler) PreQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, defaultPreQuestions)
}
