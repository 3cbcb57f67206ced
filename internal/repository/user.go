package repository

import (
	"context"

	"github.com/chandu-aravapalli/BetterMind/internal/database"
	"github.com/chandu-aravapalli/BetterMind/internal/models"
)

func CreateUser(ctx context.Context, user *models.User, password string) error {
	if err := user.SetPassword(password); err != nil {
		return err
	}
	return database.DB.WithContext(ctx).Create(user).Error
}

func GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	result := database.DB.WithContext(ctx).First(&user, "email = ?", email)
	return &user, result.Error
}

func GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	result := database.DB.WithContext(ctx).First(&user, "id = ?", id)
	return &user, result.Error
}

// ListPatientsWithAssessments returns every patient who has at least one
// completed assessment, for the doctor dashboard.
func ListPatientsWithAssessments(ctx context.Context) ([]models.User, error) {
	var users []models.User
	result := database.DB.WithContext(ctx).
		Distinct("users.*").
		Joins("JOIN assessments ON assessments.user_id = users.id").
		Where("users.role = ? AND assessments.status = ?", models.RolePatient, "completed").
		Order("users.last_name, users.first_name").
		Find(&users)
	return users, result.Error
}
