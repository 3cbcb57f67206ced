package assessment

// The static question banks. Question text always comes from these tables,
// never from the client, and bank order defines the 1-based question IDs in
// every per-question breakdown.

// bankItem is one ordered entry of a question bank: the form field it is
// answered by, the canonical question text, and (for PTSD) the DSM-5
// criterion cluster it belongs to.
type bankItem struct {
	Field     string
	Text      string
	Criterion byte
}

// stressBank names the ten scoring categories of the stress assessment in
// scoring order. Each contributes a 0-3 sub-score to the 0-27 total.
var stressBank = []bankItem{
	{Field: "physicalSymptoms", Text: "Physical symptoms of stress experienced recently"},
	{Field: "emotionalSymptoms", Text: "Emotional symptoms of stress experienced recently"},
	{Field: "behavioralSymptoms", Text: "Behavioral symptoms of stress experienced recently"},
	{Field: "stressLevel", Text: "Current overall stress level"},
	{Field: "stressTriggers", Text: "Situations that trigger or worsen stress"},
	{Field: "sleepQuality", Text: "Quality of sleep over the past month"},
	{Field: "exerciseFrequency", Text: "Frequency of physical exercise per week"},
	{Field: "dietQuality", Text: "Overall quality of diet and nutrition"},
	{Field: "socialSupport", Text: "Support available from friends and family"},
	{Field: "workLifeBalance", Text: "Balance between work and personal life"},
}

// anxietyBank holds the seven GAD-7 items. Each is answered on a 0-3 scale.
var anxietyBank = []bankItem{
	{Field: "feelingNervous", Text: "Feeling nervous, anxious, or on edge"},
	{Field: "notAbleToStopWorrying", Text: "Not being able to stop or control worrying"},
	{Field: "worryingTooMuch", Text: "Worrying too much about different things"},
	{Field: "troubleRelaxing", Text: "Trouble relaxing"},
	{Field: "beingSoRestless", Text: "Being so restless that it's hard to sit still"},
	{Field: "becomingEasilyAnnoyed", Text: "Becoming easily annoyed or irritable"},
	{Field: "feelingAfraid", Text: "Feeling afraid as if something awful might happen"},
}

// ptsdBank holds the twenty PCL-5 items partitioned into the DSM-5 criterion
// clusters: B (re-experiencing, 5 items), C (avoidance, 2), D (negative
// cognition and mood, 7), E (arousal and reactivity, 6). Each is answered on
// a 0-4 scale.
var ptsdBank = []bankItem{
	// Criterion B: Re-experiencing
	{Field: "repeatedMemories", Text: "Having repeated, disturbing memories of the stressful experience", Criterion: 'B'},
	{Field: "disturbingDreams", Text: "Having repeated, disturbing dreams of the stressful experience", Criterion: 'B'},
	{Field: "relivingExperience", Text: "Suddenly feeling or acting as if the stressful experience were happening again", Criterion: 'B'},
	{Field: "upsetByReminders", Text: "Feeling very upset when something reminded you of the stressful experience", Criterion: 'B'},
	{Field: "physicalReactions", Text: "Having strong physical reactions when something reminded you of the stressful experience", Criterion: 'B'},

	// Criterion C: Avoidance
	{Field: "avoidMemories", Text: "Avoiding memories, thoughts, or feelings related to the stressful experience", Criterion: 'C'},
	{Field: "avoidExternalReminders", Text: "Avoiding external reminders of the stressful experience", Criterion: 'C'},

	// Criterion D: Negative alterations in cognition and mood
	{Field: "troubleRemembering", Text: "Trouble remembering important parts of the stressful experience", Criterion: 'D'},
	{Field: "negativeBeliefs", Text: "Having strong negative beliefs about yourself, other people, or the world", Criterion: 'D'},
	{Field: "blamingSelfOrOthers", Text: "Blaming yourself or someone else for the stressful experience", Criterion: 'D'},
	{Field: "negativeFeelings", Text: "Having strong negative feelings such as fear, horror, anger, guilt, or shame", Criterion: 'D'},
	{Field: "lossOfInterest", Text: "Loss of interest in activities you used to enjoy", Criterion: 'D'},
	{Field: "feelingDistant", Text: "Feeling distant or cut off from other people", Criterion: 'D'},
	{Field: "troublePositiveFeelings", Text: "Having trouble experiencing positive feelings", Criterion: 'D'},

	// Criterion E: Alterations in arousal and reactivity
	{Field: "irritableOrAngry", Text: "Feeling irritable or having angry outbursts", Criterion: 'E'},
	{Field: "recklessBehavior", Text: "Taking too many risks or doing things that could cause you harm", Criterion: 'E'},
	{Field: "hypervigilance", Text: "Being overly alert or watchful for danger", Criterion: 'E'},
	{Field: "easilyStartled", Text: "Being jumpy or easily startled", Criterion: 'E'},
	{Field: "difficultyConcentrating", Text: "Having difficulty concentrating", Criterion: 'E'},
	{Field: "troubleSleeping", Text: "Having trouble falling or staying asleep", Criterion: 'E'},
}

// preFields lists the intake form fields in presentation order. Responses are
// recorded verbatim; only the consent flag is validated.
var preFields = []string{
	"consent",
	"mentalHealthDiagnosis",
	"pastChallenges",
	"currentTreatment",
	"previousTherapy",
	"medications",
	"primaryPhysician",
	"insurance",
}

// Questions returns the canonical question texts for a type, in bank order.
// It returns nil for the pre-assessment, which has no scored question bank.
func Questions(t Type) []string {
	var bank []bankItem
	switch t {
	case TypeStress:
		bank = stressBank
	case TypeAnxiety:
		bank = anxietyBank
	case TypePTSD:
		bank = ptsdBank
	default:
		return nil
	}
	out := make([]string, len(bank))
	for i, item := range bank {
		out[i] = item.Text
	}
	return out
}
