package assessment

import "strings"

// Form structs mirror the submission payloads. Aggregate fields a client
// might send (totalScore, severity, criteria flags) are deliberately absent:
// they are recomputed here and anything else in the payload is ignored.

// StressForm is the raw stress questionnaire submission.
type StressForm struct {
	PhysicalSymptoms   []string `json:"physicalSymptoms"`
	EmotionalSymptoms  []string `json:"emotionalSymptoms"`
	BehavioralSymptoms []string `json:"behavioralSymptoms"`
	StressLevel        int      `json:"stressLevel"`
	StressTriggers     []string `json:"stressTriggers"`
	CopingStrategies   []string `json:"copingStrategies"`
	SleepQuality       int      `json:"sleepQuality"`
	ExerciseFrequency  int      `json:"exerciseFrequency"`
	DietQuality        int      `json:"dietQuality"`
	SocialSupport      int      `json:"socialSupport"`
	WorkLifeBalance    int      `json:"workLifeBalance"`
	AdditionalNotes    string   `json:"additionalNotes,omitempty"`
}

// Validate checks every rated field against its declared bound.
func (f *StressForm) Validate() error {
	checks := []struct {
		field    string
		value    int
		min, max int
	}{
		{"stressLevel", f.StressLevel, 0, 10},
		{"sleepQuality", f.SleepQuality, 0, 5},
		{"exerciseFrequency", f.ExerciseFrequency, 0, 7},
		{"dietQuality", f.DietQuality, 0, 5},
		{"socialSupport", f.SocialSupport, 0, 5},
		{"workLifeBalance", f.WorkLifeBalance, 0, 5},
	}
	for _, c := range checks {
		if c.value < c.min || c.value > c.max {
			return &RangeError{Field: c.field, Value: c.value, Min: c.min, Max: c.max}
		}
	}
	return nil
}

// AnxietyForm is the raw GAD-7 submission, one 0-3 rating per item.
type AnxietyForm struct {
	FeelingNervous        int    `json:"feelingNervous"`
	NotAbleToStopWorrying int    `json:"notAbleToStopWorrying"`
	WorryingTooMuch       int    `json:"worryingTooMuch"`
	TroubleRelaxing       int    `json:"troubleRelaxing"`
	BeingSoRestless       int    `json:"beingSoRestless"`
	BecomingEasilyAnnoyed int    `json:"becomingEasilyAnnoyed"`
	FeelingAfraid         int    `json:"feelingAfraid"`
	AdditionalNotes       string `json:"additionalNotes,omitempty"`
}

// items returns the ratings in anxietyBank order.
func (f *AnxietyForm) items() []int {
	return []int{
		f.FeelingNervous,
		f.NotAbleToStopWorrying,
		f.WorryingTooMuch,
		f.TroubleRelaxing,
		f.BeingSoRestless,
		f.BecomingEasilyAnnoyed,
		f.FeelingAfraid,
	}
}

// Validate checks all seven items against the 0-3 GAD-7 scale.
func (f *AnxietyForm) Validate() error {
	for i, v := range f.items() {
		if v < 0 || v > 3 {
			return &RangeError{Field: anxietyBank[i].Field, Value: v, Min: 0, Max: 3}
		}
	}
	return nil
}

// PTSDForm is the raw PCL-5 submission, one 0-4 rating per item.
type PTSDForm struct {
	RepeatedMemories   int `json:"repeatedMemories"`
	DisturbingDreams   int `json:"disturbingDreams"`
	RelivingExperience int `json:"relivingExperience"`
	UpsetByReminders   int `json:"upsetByReminders"`
	PhysicalReactions  int `json:"physicalReactions"`

	AvoidMemories          int `json:"avoidMemories"`
	AvoidExternalReminders int `json:"avoidExternalReminders"`

	TroubleRemembering      int `json:"troubleRemembering"`
	NegativeBeliefs         int `json:"negativeBeliefs"`
	BlamingSelfOrOthers     int `json:"blamingSelfOrOthers"`
	NegativeFeelings        int `json:"negativeFeelings"`
	LossOfInterest          int `json:"lossOfInterest"`
	FeelingDistant          int `json:"feelingDistant"`
	TroublePositiveFeelings int `json:"troublePositiveFeelings"`

	IrritableOrAngry        int `json:"irritableOrAngry"`
	RecklessBehavior        int `json:"recklessBehavior"`
	Hypervigilance          int `json:"hypervigilance"`
	EasilyStartled          int `json:"easilyStartled"`
	DifficultyConcentrating int `json:"difficultyConcentrating"`
	TroubleSleeping         int `json:"troubleSleeping"`

	AdditionalNotes string `json:"additionalNotes,omitempty"`
}

// items returns the ratings in ptsdBank order.
func (f *PTSDForm) items() []int {
	return []int{
		f.RepeatedMemories,
		f.DisturbingDreams,
		f.RelivingExperience,
		f.UpsetByReminders,
		f.PhysicalReactions,
		f.AvoidMemories,
		f.AvoidExternalReminders,
		f.TroubleRemembering,
		f.NegativeBeliefs,
		f.BlamingSelfOrOthers,
		f.NegativeFeelings,
		f.LossOfInterest,
		f.FeelingDistant,
		f.TroublePositiveFeelings,
		f.IrritableOrAngry,
		f.RecklessBehavior,
		f.Hypervigilance,
		f.EasilyStartled,
		f.DifficultyConcentrating,
		f.TroubleSleeping,
	}
}

// Validate checks all twenty items against the 0-4 PCL-5 scale.
func (f *PTSDForm) Validate() error {
	for i, v := range f.items() {
		if v < 0 || v > 4 {
			return &RangeError{Field: ptsdBank[i].Field, Value: v, Min: 0, Max: 4}
		}
	}
	return nil
}

// PreAssessmentForm is the intake questionnaire. Responses are stored
// verbatim; only consent is enforced.
type PreAssessmentForm struct {
	Consent               string `json:"consent"`
	MentalHealthDiagnosis string `json:"mentalHealthDiagnosis"`
	PastChallenges        string `json:"pastChallenges"`
	CurrentTreatment      string `json:"currentTreatment"`
	PreviousTherapy       string `json:"previousTherapy"`
	Medications           string `json:"medications"`
	PrimaryPhysician      string `json:"primaryPhysician"`
	Insurance             string `json:"insurance"`
}

// Validate enforces the consent gate. Anything other than a
// case-insensitive "yes" blocks record creation entirely.
func (f *PreAssessmentForm) Validate() error {
	if !strings.EqualFold(strings.TrimSpace(f.Consent), "yes") {
		return ErrConsentRequired
	}
	return nil
}

// responses returns the intake answers keyed by field name, in no
// particular order; preFields preserves presentation order for callers
// that need it.
func (f *PreAssessmentForm) responses() map[string]string {
	return map[string]string{
		"consent":               f.Consent,
		"mentalHealthDiagnosis": f.MentalHealthDiagnosis,
		"pastChallenges":        f.PastChallenges,
		"currentTreatment":      f.CurrentTreatment,
		"previousTherapy":       f.PreviousTherapy,
		"medications":           f.Medications,
		"primaryPhysician":      f.PrimaryPhysician,
		"insurance":             f.Insurance,
	}
}
