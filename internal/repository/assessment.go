package repository

import (
	"context"

	"github.com/chandu-aravapalli/BetterMind/internal/assessment"
	"github.com/chandu-aravapalli/BetterMind/internal/database"
	"github.com/chandu-aravapalli/BetterMind/internal/models"
)

// CreateAssessment stores a submission together with its question breakdown
// and, for stress, the raw detail row. GORM creates the associated rows in
// the same transaction, so a failure leaves nothing behind.
func CreateAssessment(ctx context.Context, a *models.Assessment) error {
	return database.DB.WithContext(ctx).Create(a).Error
}

func GetAssessmentByID(ctx context.Context, id string) (*models.Assessment, error) {
	var a models.Assessment
	result := database.DB.WithContext(ctx).
		Preload("Questions").
		Preload("StressDetail").
		First(&a, "id = ?", id)
	return &a, result.Error
}

// GetAssessmentsByUserAndType lists one user's submissions of a single
// type, newest first.
func GetAssessmentsByUserAndType(ctx context.Context, userID string, t assessment.Type) ([]models.Assessment, error) {
	var out []models.Assessment
	result := database.DB.WithContext(ctx).
		Preload("Questions").
		Where("user_id = ? AND assessment_type = ?", userID, string(t)).
		Order("completed_at DESC").
		Find(&out)
	return out, result.Error
}

// GetAssessmentsByUser lists every submission of one user across all types,
// newest first. Used by the doctor detail view and the AI summary.
func GetAssessmentsByUser(ctx context.Context, userID string) ([]models.Assessment, error) {
	var out []models.Assessment
	result := database.DB.WithContext(ctx).
		Preload("Questions").
		Where("user_id = ?", userID).
		Order("completed_at DESC").
		Find(&out)
	return out, result.Error
}

// GetCompletedByType lists every completed submission of one type across
// all users, for the doctor results view.
func GetCompletedByType(ctx context.Context, t assessment.Type) ([]models.Assessment, error) {
	var out []models.Assessment
	result := database.DB.WithContext(ctx).
		Preload("Questions").
		Where("assessment_type = ? AND status = ?", string(t), assessment.StatusCompleted).
		Order("completed_at DESC").
		Find(&out)
	return out, result.Error
}

// GetStatusByUser reports, for each assessment type, whether the user has
// at least one completed submission.
func GetStatusByUser(ctx context.Context, userID string) (map[string]string, error) {
	var completed []string
	result := database.DB.WithContext(ctx).
		Model(&models.Assessment{}).
		Distinct("assessment_type").
		Where("user_id = ? AND status = ?", userID, assessment.StatusCompleted).
		Pluck("assessment_type", &completed)
	if result.Error != nil {
		return nil, result.Error
	}

	status := map[string]string{
		string(assessment.TypePre):     assessment.StatusPending,
		string(assessment.TypeStress):  assessment.StatusPending,
		string(assessment.TypeAnxiety): assessment.StatusPending,
		string(assessment.TypePTSD):    assessment.StatusPending,
	}
	for _, t := range completed {
		status[t] = assessment.StatusCompleted
	}
	return status, nil
}
