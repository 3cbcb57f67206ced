package assessment

import "math"

// Scoring constants. These are part of the public contract: changing any of
// them changes every persisted score.
const (
	// stressLevelDivisor maps the 0-10 stress level onto 0-3.
	stressLevelDivisor = 3.33
	// protectiveDivisor maps the 0-5 (or 0-7) protective ratings onto 0-3.
	protectiveDivisor = 1.67
	// endorsedThreshold is the minimum PCL-5 item score that counts a
	// symptom as endorsed for DSM-5 criteria purposes.
	endorsedThreshold = 2

	// MaxStressScore bounds the stress total: ten 0-3 sub-scores, clamped.
	MaxStressScore = 27
	// MaxAnxietyScore bounds the GAD-7 total (7 items x 3).
	MaxAnxietyScore = 21
	// MaxPTSDScore bounds the PCL-5 total (20 items x 4).
	MaxPTSDScore = 80
)

// roundHalfUp rounds to the nearest integer with .5 rounding up. All engine
// inputs are non-negative, so math.Round's half-away-from-zero is identical.
func roundHalfUp(x float64) int {
	return int(math.Round(x))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// countScore converts a symptom or trigger count into a 0-3 contribution.
func countScore(n int) int {
	switch {
	case n >= 6:
		return 3
	case n >= 4:
		return 2
	case n >= 2:
		return 1
	default:
		return 0
	}
}

// levelScore converts the 0-10 stress level into a 0-3 contribution.
func levelScore(level int) int {
	return clamp(roundHalfUp(float64(level)/stressLevelDivisor), 0, 3)
}

// protectiveScore reverse-scores a wellness rating: higher self-reported
// wellness reduces the stress contribution. A rating of 0 contributes 3, a
// full rating contributes 0.
func protectiveScore(rating int) int {
	return 3 - clamp(roundHalfUp(float64(rating)/protectiveDivisor), 0, 3)
}

// subScores returns the ten 0-3 contributions in stressBank order.
func (f *StressForm) subScores() []int {
	return []int{
		countScore(len(f.PhysicalSymptoms)),
		countScore(len(f.EmotionalSymptoms)),
		countScore(len(f.BehavioralSymptoms)),
		levelScore(f.StressLevel),
		countScore(len(f.StressTriggers)),
		protectiveScore(f.SleepQuality),
		protectiveScore(f.ExerciseFrequency),
		protectiveScore(f.DietQuality),
		protectiveScore(f.SocialSupport),
		protectiveScore(f.WorkLifeBalance),
	}
}

// ScoreStress computes the stress total and its per-category sub-scores.
// The total is the sum of the sub-scores clamped to [0, 27].
func ScoreStress(f *StressForm) (int, []int) {
	subs := f.subScores()
	total := 0
	for _, s := range subs {
		total += s
	}
	return clamp(total, 0, MaxStressScore), subs
}

// ScoreAnxiety sums the seven GAD-7 item ratings into a 0-21 total.
func ScoreAnxiety(f *AnxietyForm) int {
	total := 0
	for _, v := range f.items() {
		total += v
	}
	return total
}

// ScorePTSD sums the twenty PCL-5 item ratings into a 0-80 total and
// derives the DSM-5 criteria flags: a cluster counts as satisfied when it
// contains at least one endorsed item (B, C) or at least two (D, E).
func ScorePTSD(f *PTSDForm) (int, Criteria) {
	total := 0
	endorsed := map[byte]int{}
	for i, v := range f.items() {
		total += v
		if v >= endorsedThreshold {
			endorsed[ptsdBank[i].Criterion]++
		}
	}
	crit := Criteria{
		B: endorsed['B'] >= 1,
		C: endorsed['C'] >= 1,
		D: endorsed['D'] >= 2,
		E: endorsed['E'] >= 2,
	}
	return total, crit
}
