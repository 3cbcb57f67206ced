package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/chandu-aravapalli/BetterMind/internal/assessment"
)

func TestNewAssessmentFromScoredRecord(t *testing.T) {
	score := 18
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	rec := &assessment.Record{
		UserID:   "user-1",
		Type:     assessment.TypePTSD,
		Status:   assessment.StatusCompleted,
		Score:    &score,
		Severity: assessment.SeverityMinimal,
		Criteria: &assessment.Criteria{B: true, D: true},
		Questions: []assessment.QuestionResponse{
			{QuestionID: 1, QuestionText: "first", Score: 3},
			{QuestionID: 2, QuestionText: "second", Score: 0},
		},
		StartedAt:   now,
		CompletedAt: now,
	}

	a, err := NewAssessmentFromRecord(rec)
	if err != nil {
		t.Fatalf("NewAssessmentFromRecord: %v", err)
	}
	if a.AssessmentType != "ptsd" || a.Status != "completed" {
		t.Fatalf("type/status = %s/%s", a.AssessmentType, a.Status)
	}
	if a.Score == nil || *a.Score != 18 {
		t.Fatal("score not carried over")
	}
	if a.CriteriaB == nil || !*a.CriteriaB || a.CriteriaC == nil || *a.CriteriaC {
		t.Fatal("criteria flags not carried over")
	}
	if len(a.Questions) != 2 || a.Questions[0].QuestionText != "first" {
		t.Fatalf("questions not carried over: %+v", a.Questions)
	}
	if a.CompletedAt == nil || !a.CompletedAt.Equal(now) {
		t.Fatal("completion time not carried over")
	}
	if a.Responses != nil {
		t.Fatal("scored records carry no verbatim responses")
	}
}

func TestNewAssessmentFromPreRecord(t *testing.T) {
	now := time.Now().UTC()
	rec := &assessment.Record{
		UserID:      "user-2",
		Type:        assessment.TypePre,
		Status:      assessment.StatusCompleted,
		Responses:   map[string]string{"consent": "yes", "medications": "none"},
		StartedAt:   now,
		CompletedAt: now,
	}

	a, err := NewAssessmentFromRecord(rec)
	if err != nil {
		t.Fatalf("NewAssessmentFromRecord: %v", err)
	}
	if a.Score != nil || a.Severity != "" || a.CriteriaB != nil {
		t.Fatal("pre-assessment rows carry no score, severity or criteria")
	}
	var got map[string]string
	if err := json.Unmarshal(a.Responses, &got); err != nil {
		t.Fatalf("responses not valid JSON: %v", err)
	}
	if got["consent"] != "yes" || got["medications"] != "none" {
		t.Fatalf("responses not stored verbatim: %v", got)
	}
}

func TestNewStressDetailCopiesForm(t *testing.T) {
	f := &assessment.StressForm{
		PhysicalSymptoms: []string{"headaches", "fatigue"},
		CopingStrategies: []string{"exercise"},
		StressLevel:      7,
		SleepQuality:     3,
		AdditionalNotes:  "busy month",
	}
	d := NewStressDetail(f)
	if len(d.PhysicalSymptoms) != 2 || d.PhysicalSymptoms[0] != "headaches" {
		t.Fatalf("symptoms not copied: %v", d.PhysicalSymptoms)
	}
	if d.StressLevel != 7 || d.SleepQuality != 3 {
		t.Fatal("ratings not copied")
	}
	if d.AdditionalNotes != "busy month" {
		t.Fatal("notes not copied")
	}
}

func TestUserPasswordHashing(t *testing.T) {
	u := &User{}
	if err := u.SetPassword("Sup3r$ecret"); err != nil {
		t.Fatalf("SetPassword: %v", err)
	}
	if u.Password == "Sup3r$ecret" {
		t.Fatal("password stored in plain text")
	}
	if !u.CheckPassword("Sup3r$ecret") {
		t.Fatal("correct password rejected")
	}
	if u.CheckPassword("wrong") {
		t.Fatal("wrong password accepted")
	}
}

func TestUserFullName(t *testing.T) {
	u := &User{FirstName: "Jane", LastName: "Doe"}
	if u.FullName() != "Jane Doe" {
		t.Fatalf("FullName = %q", u.FullName())
	}
	if (&User{}).FullName() != "Unknown" {
		t.Fatal("empty name should fall back to Unknown")
	}
}
