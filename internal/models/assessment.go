package models

import (
	"encoding/json"
	"time"

	"github.com/chandu-aravapalli/BetterMind/internal/assessment"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Assessment is one stored submission of any assessment type. Scored types
// (stress, anxiety, ptsd) carry a score, a severity label and a per-question
// breakdown; pre-assessments carry the raw intake responses instead. The
// DSM-5 criteria flags are only populated for PTSD rows.
type Assessment struct {
	ID             string               `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         string               `gorm:"type:uuid;index" json:"userId"`
	AssessmentType string               `gorm:"index" json:"assessmentType"`
	Status         string               `json:"status"`
	Score          *int                 `json:"score,omitempty"`
	Severity       string               `json:"severity,omitempty"`
	CriteriaB      *bool                `json:"criteriaB,omitempty"`
	CriteriaC      *bool                `json:"criteriaC,omitempty"`
	CriteriaD      *bool                `json:"criteriaD,omitempty"`
	CriteriaE      *bool                `json:"criteriaE,omitempty"`
	Responses      datatypes.JSON       `gorm:"type:jsonb" json:"responses,omitempty"`
	Questions      []AssessmentQuestion `gorm:"foreignKey:AssessmentID" json:"questions,omitempty"`
	StressDetail   *StressDetail        `gorm:"foreignKey:AssessmentID" json:"stressDetail,omitempty"`
	StartedAt      time.Time            `json:"startedAt"`
	CompletedAt    *time.Time           `json:"completedAt,omitempty"`
	CreatedAt      time.Time            `json:"-"`
}

func (a *Assessment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// NewAssessmentFromRecord converts a scored engine record into its stored
// form. The criteria flags stay nil unless the record carries them, and the
// verbatim responses of a pre-assessment are serialized to JSONB.
func NewAssessmentFromRecord(rec *assessment.Record) (*Assessment, error) {
	completed := rec.CompletedAt
	a := &Assessment{
		UserID:         rec.UserID,
		AssessmentType: string(rec.Type),
		Status:         rec.Status,
		Score:          rec.Score,
		Severity:       rec.Severity,
		StartedAt:      rec.StartedAt,
		CompletedAt:    &completed,
	}
	if rec.Criteria != nil {
		b, c, d, e := rec.Criteria.B, rec.Criteria.C, rec.Criteria.D, rec.Criteria.E
		a.CriteriaB, a.CriteriaC, a.CriteriaD, a.CriteriaE = &b, &c, &d, &e
	}
	for _, q := range rec.Questions {
		a.Questions = append(a.Questions, AssessmentQuestion{
			QuestionID:   q.QuestionID,
			QuestionText: q.QuestionText,
			Score:        q.Score,
		})
	}
	if rec.Responses != nil {
		raw, err := json.Marshal(rec.Responses)
		if err != nil {
			return nil, err
		}
		a.Responses = datatypes.JSON(raw)
	}
	return a, nil
}

// NewStressDetail keeps the raw stress form alongside the scored row.
func NewStressDetail(f *assessment.StressForm) *StressDetail {
	return &StressDetail{
		PhysicalSymptoms:   f.PhysicalSymptoms,
		EmotionalSymptoms:  f.EmotionalSymptoms,
		BehavioralSymptoms: f.BehavioralSymptoms,
		StressTriggers:     f.StressTriggers,
		CopingStrategies:   f.CopingStrategies,
		StressLevel:        f.StressLevel,
		SleepQuality:       f.SleepQuality,
		ExerciseFrequency:  f.ExerciseFrequency,
		DietQuality:        f.DietQuality,
		SocialSupport:      f.SocialSupport,
		WorkLifeBalance:    f.WorkLifeBalance,
		AdditionalNotes:    f.AdditionalNotes,
	}
}

// AssessmentQuestion is one row of a scored submission's breakdown.
// QuestionID is the 1-based position within the questionnaire.
type AssessmentQuestion struct {
	ID           uint   `gorm:"primaryKey" json:"-"`
	AssessmentID string `gorm:"type:uuid;index" json:"-"`
	QuestionID   int    `json:"questionId"`
	QuestionText string `json:"questionText"`
	Score        int    `json:"score"`
}

// StressDetail keeps the raw stress submission alongside its derived
// sub-scores, so clinicians can see which symptoms and triggers were
// reported rather than just the aggregate.
type StressDetail struct {
	AssessmentID       string         `gorm:"type:uuid;primaryKey" json:"-"`
	PhysicalSymptoms   pq.StringArray `gorm:"type:text[]" json:"physicalSymptoms"`
	EmotionalSymptoms  pq.StringArray `gorm:"type:text[]" json:"emotionalSymptoms"`
	BehavioralSymptoms pq.StringArray `gorm:"type:text[]" json:"behavioralSymptoms"`
	StressTriggers     pq.StringArray `gorm:"type:text[]" json:"stressTriggers"`
	CopingStrategies   pq.StringArray `gorm:"type:text[]" json:"copingStrategies"`
	StressLevel        int            `json:"stressLevel"`
	SleepQuality       int            `json:"sleepQuality"`
	ExerciseFrequency  int            `json:"exerciseFrequency"`
	DietQuality        int            `json:"dietQuality"`
	SocialSupport      int            `json:"socialSupport"`
	WorkLifeBalance    int            `json:"workLifeBalance"`
	AdditionalNotes    string         `json:"additionalNotes,omitempty"`
}
