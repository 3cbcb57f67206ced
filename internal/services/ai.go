package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/chandu-aravapalli/BetterMind/internal/assessment"
	"github.com/chandu-aravapalli/BetterMind/internal/models"
	"go.uber.org/zap"
)

// SummaryFallback is returned whenever a summary cannot be produced. The
// endpoint itself never fails because of the AI backend.
const SummaryFallback = "Unable to generate AI summary at this time. Please try again later."

const summarySystemPrompt = "You are a professional mental health expert providing patient summaries."

// SummaryService generates clinician-facing narrative summaries of a
// patient's assessment history through an OpenAI-compatible chat
// completions API.
type SummaryService struct {
	httpClient *http.Client
	apiKey     string
	apiURL     string
	model      string
	log        *zap.Logger
}

func NewSummaryService(apiKey, apiURL, model string, log *zap.Logger) *SummaryService {
	return &SummaryService{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		apiKey:     apiKey,
		apiURL:     apiURL,
		model:      model,
		log:        log,
	}
}

func (s *SummaryService) IsAvailable() bool {
	return s.apiKey != ""
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// GeneratePatientSummary builds the prompt from the patient profile and
// assessment history and asks the model for a summary. Any failure is
// logged and degrades to SummaryFallback; the caller always gets text.
func (s *SummaryService) GeneratePatientSummary(ctx context.Context, patient *models.User, assessments []models.Assessment) string {
	if !s.IsAvailable() {
		s.log.Warn("AI summary requested but no API key is configured")
		return SummaryFallback
	}

	text, err := s.complete(ctx, summaryPrompt(patient, assessments))
	if err != nil {
		s.log.Error("Failed to generate AI summary",
			zap.String("patient_id", patient.ID),
			zap.Error(err))
		return SummaryFallback
	}
	return text
}

func (s *SummaryService) complete(ctx context.Context, prompt string) (string, error) {
	reqBody := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: summarySystemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
		MaxTokens:   500,
	}
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("failed to parse API response: %w", err)
	}
	if chatResp.Error != nil {
		return "", fmt.Errorf("API error: %s", chatResp.Error.Message)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("empty response from AI")
	}
	return strings.TrimSpace(chatResp.Choices[0].Message.Content), nil
}

// summaryPrompt renders the patient profile and full assessment history
// into the instruction the model answers.
func summaryPrompt(patient *models.User, assessments []models.Assessment) string {
	var b strings.Builder

	b.WriteString("As a mental health professional, provide a concise summary of the patient's mental health status based on the following information:\n\n")
	b.WriteString("Patient Information:\n")
	fmt.Fprintf(&b, "- Name: %s\n", patient.FullName())
	fmt.Fprintf(&b, "- Age: %s\n", patientAge(patient))
	fmt.Fprintf(&b, "- Gender: %s\n", orUnspecified(patient.Gender))

	b.WriteString("\nAssessment History:\n")
	if len(assessments) == 0 {
		b.WriteString("No completed assessments on record.\n")
	}
	for _, a := range assessments {
		date := "unknown date"
		if a.CompletedAt != nil {
			date = a.CompletedAt.Format("2006-01-02")
		}
		fmt.Fprintf(&b, "- %s (%s):\n", a.AssessmentType, date)
		if a.Score != nil {
			fmt.Fprintf(&b, "  Score: %d\n", *a.Score)
		}
		if a.Severity != "" {
			fmt.Fprintf(&b, "  Severity: %s\n", a.Severity)
		}
		writeResponses(&b, &a)
	}

	b.WriteString("\nPlease include:\n")
	b.WriteString("1. Overall mental health status\n")
	b.WriteString("2. Key observations from assessments\n")
	b.WriteString("3. Notable patterns or trends\n")
	b.WriteString("4. Areas of concern (if any)\n")
	b.WriteString("5. Positive developments (if any)\n\n")
	b.WriteString("Keep the summary professional and factual.\n")

	return b.String()
}

func writeResponses(b *strings.Builder, a *models.Assessment) {
	if len(a.Questions) > 0 {
		b.WriteString("  Responses:\n")
		for _, q := range a.Questions {
			fmt.Fprintf(b, "    %s: %d\n", q.QuestionText, q.Score)
		}
		return
	}
	if len(a.Responses) > 0 {
		var resp map[string]string
		if err := json.Unmarshal(a.Responses, &resp); err == nil {
			b.WriteString("  Responses:\n")
			for _, field := range assessment.PreFieldOrder() {
				if v, ok := resp[field]; ok && v != "" {
					fmt.Fprintf(b, "    %s: %s\n", field, v)
				}
			}
		}
	}
}

func patientAge(patient *models.User) string {
	if patient.DateOfBirth.IsZero() {
		return "Not specified"
	}
	now := time.Now()
	age := now.Year() - patient.DateOfBirth.Year()
	if now.YearDay() < patient.DateOfBirth.YearDay() {
		age--
	}
	return fmt.Sprintf("%d", age)
}

func orUnspecified(v string) string {
	if strings.TrimSpace(v) == "" {
		return "Not specified"
	}
	return v
}
