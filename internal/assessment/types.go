// Package assessment implements the scoring and severity classification
// engine for the four questionnaire types (pre-assessment intake, stress,
// anxiety/GAD-7, PTSD/PCL-5).
//
// All totals, severity labels and PTSD criteria flags are computed
// server-side from the raw item responses; aggregate values supplied by a
// client are ignored. The numeric contract is fixed so that independent
// implementations agree bit-for-bit:
//
//   - rounding is half-up (round(0.5) == 1),
//   - the 0-10 stress level maps to 0-3 via min(3, round(level/3.33)),
//   - protective factors reverse-score via 3 - min(3, round(rating/1.67)),
//   - PTSD items use the 0-4 PCL-5 scale and an item is "endorsed" when
//     its score is >= 2.
package assessment

import (
	"errors"
	"fmt"
	"time"
)

// Type identifies which questionnaire schema, scorer and severity rule apply.
type Type string

const (
	TypePre     Type = "pre"
	TypeStress  Type = "stress"
	TypeAnxiety Type = "anxiety"
	TypePTSD    Type = "ptsd"
)

// Assessment lifecycle states.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// QuestionResponse pairs a 1-based question position with the question text
// resolved from the static bank and the scored answer.
type QuestionResponse struct {
	QuestionID   int    `json:"questionId"`
	QuestionText string `json:"questionText"`
	Score        int    `json:"score"`
}

// Criteria holds the DSM-5 symptom-cluster flags for a PTSD assessment.
// Each flag is a pure function of its cluster's item scores.
type Criteria struct {
	B bool `json:"criteriaB"`
	C bool `json:"criteriaC"`
	D bool `json:"criteriaD"`
	E bool `json:"criteriaE"`
}

// Met reports whether the joint DSM-5 rule is satisfied: at least one
// endorsed symptom in each of B and C, and at least two in each of D and E.
func (c Criteria) Met() bool {
	return c.B && c.C && c.D && c.E
}

// Record is the completed assessment the engine hands to persistence.
// Score and Criteria are nil for types that do not produce them.
type Record struct {
	UserID      string
	Type        Type
	Status      string
	Questions   []QuestionResponse
	Responses   map[string]string
	Score       *int
	Severity    string
	Criteria    *Criteria
	StartedAt   time.Time
	CompletedAt time.Time
}

// ErrConsentRequired rejects a pre-assessment without affirmative consent.
// It is safe to surface verbatim to the client and no record is written.
var ErrConsentRequired = errors.New("consent is required to submit the assessment")

// RangeError reports a response value outside its declared bound.
type RangeError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s must be between %d and %d, got %d", e.Field, e.Min, e.Max, e.Value)
}
