package assessment

import "time"

// Record builders run the full pipeline for one submission: validate the
// form, score it, classify severity, and assemble the completed record.
// A validation failure aborts before anything is assembled, so a partially
// scored record can never reach persistence.

// BuildStressRecord validates and scores a stress submission.
func BuildStressRecord(userID string, f *StressForm, now time.Time) (*Record, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	total, subs := ScoreStress(f)
	return &Record{
		UserID:      userID,
		Type:        TypeStress,
		Status:      StatusCompleted,
		Questions:   breakdown(stressBank, subs),
		Score:       &total,
		Severity:    StressSeverity(total),
		StartedAt:   now,
		CompletedAt: now,
	}, nil
}

// BuildAnxietyRecord validates and scores a GAD-7 submission.
func BuildAnxietyRecord(userID string, f *AnxietyForm, now time.Time) (*Record, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	total := ScoreAnxiety(f)
	return &Record{
		UserID:      userID,
		Type:        TypeAnxiety,
		Status:      StatusCompleted,
		Questions:   breakdown(anxietyBank, f.items()),
		Score:       &total,
		Severity:    AnxietySeverity(total),
		StartedAt:   now,
		CompletedAt: now,
	}, nil
}

// BuildPTSDRecord validates and scores a PCL-5 submission.
func BuildPTSDRecord(userID string, f *PTSDForm, now time.Time) (*Record, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	total, crit := ScorePTSD(f)
	return &Record{
		UserID:      userID,
		Type:        TypePTSD,
		Status:      StatusCompleted,
		Questions:   breakdown(ptsdBank, f.items()),
		Score:       &total,
		Severity:    PTSDSeverity(total, crit),
		Criteria:    &crit,
		StartedAt:   now,
		CompletedAt: now,
	}, nil
}

// BuildPreRecord validates the consent gate and records the intake
// responses verbatim. Pre-assessments carry no score or severity.
func BuildPreRecord(userID string, f *PreAssessmentForm, now time.Time) (*Record, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &Record{
		UserID:      userID,
		Type:        TypePre,
		Status:      StatusCompleted,
		Responses:   f.responses(),
		StartedAt:   now,
		CompletedAt: now,
	}, nil
}

// breakdown pairs a bank with per-item scores, resolving question text from
// the bank. Both slices are in bank order; IDs are 1-based positions.
func breakdown(bank []bankItem, scores []int) []QuestionResponse {
	out := make([]QuestionResponse, len(bank))
	for i, item := range bank {
		out[i] = QuestionResponse{
			QuestionID:   i + 1,
			QuestionText: item.Text,
			Score:        scores[i],
		}
	}
	return out
}

// PreFieldOrder returns the intake field names in presentation order, for
// callers that need to render the verbatim responses deterministically.
func PreFieldOrder() []string {
	out := make([]string, len(preFields))
	copy(out, preFields)
	return out
}
