package handlers

import (
	"errors"
	"net/http"

	"github.com/chandu-aravapalli/BetterMind/internal/models"
	"github.com/chandu-aravapalli/BetterMind/internal/repository"
	"github.com/chandu-aravapalli/BetterMind/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DoctorHandler serves the clinician dashboard: the patient roster, one
// patient's full history, and the AI narrative summary.
type DoctorHandler struct {
	log     *zap.Logger
	summary *services.SummaryService
}

func NewDoctorHandler(log *zap.Logger, summary *services.SummaryService) *DoctorHandler {
	return &DoctorHandler{log: log, summary: summary}
}

// Patients lists every patient with at least one completed assessment.
func (h *DoctorHandler) Patients(c *gin.Context) {
	patients, err := repository.ListPatientsWithAssessments(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to list patients", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load patients"})
		return
	}
	c.JSON(http.StatusOK, patients)
}

// PatientDetails returns one patient's profile and full assessment history.
func (h *DoctorHandler) PatientDetails(c *gin.Context) {
	patient, _ := h.loadPatient(c)
	if patient == nil {
		return
	}
	history, err := repository.GetAssessmentsByUser(c.Request.Context(), patient.ID)
	if err != nil {
		h.log.Error("Failed to load patient history",
			zap.String("patient_id", patient.ID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load patient details"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"patient": patient, "assessments": history})
}

// AISummary generates the narrative summary for one patient. The response
// is always 200 with text; AI backend failures degrade to a fixed message.
func (h *DoctorHandler) AISummary(c *gin.Context) {
	patient, _ := h.loadPatient(c)
	if patient == nil {
		return
	}
	history, err := repository.GetAssessmentsByUser(c.Request.Context(), patient.ID)
	if err != nil {
		h.log.Error("Failed to load history for summary",
			zap.String("patient_id", patient.ID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load patient details"})
		return
	}
	summary := h.summary.GeneratePatientSummary(c.Request.Context(), patient, history)
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

func (h *DoctorHandler) loadPatient(c *gin.Context) (*models.User, error) {
	patient, err := repository.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "patient not found"})
			return nil, err
		}
		h.log.Error("Failed to load patient", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load patient"})
		return nil, err
	}
	if patient.Role != models.RolePatient {
		c.JSON(http.StatusNotFound, gin.H{"error": "patient not found"})
		return nil, gorm.ErrRecordNotFound
	}
	return patient, nil
}
