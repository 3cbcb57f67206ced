package assessment

import "testing"

func symptoms(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "s"
	}
	return out
}

func TestCountScore(t *testing.T) {
	cases := []struct {
		count int
		want  int
	}{
		{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 2}, {5, 2}, {6, 3}, {12, 3},
	}
	for _, c := range cases {
		if got := countScore(c.count); got != c.want {
			t.Errorf("countScore(%d) = %d, want %d", c.count, got, c.want)
		}
	}
}

func TestLevelScore(t *testing.T) {
	cases := []struct {
		level int
		want  int
	}{
		{0, 0}, {1, 0}, {2, 1}, {3, 1}, {5, 2}, {6, 2}, {7, 2}, {8, 2}, {9, 3}, {10, 3},
	}
	for _, c := range cases {
		if got := levelScore(c.level); got != c.want {
			t.Errorf("levelScore(%d) = %d, want %d", c.level, got, c.want)
		}
	}
}

func TestProtectiveScoreReverses(t *testing.T) {
	// A rating of 0 contributes the full 3; a full 0-5 rating contributes 0.
	cases := []struct {
		rating int
		want   int
	}{
		{0, 3}, {1, 2}, {2, 2}, {3, 1}, {4, 1}, {5, 0},
	}
	for _, c := range cases {
		if got := protectiveScore(c.rating); got != c.want {
			t.Errorf("protectiveScore(%d) = %d, want %d", c.rating, got, c.want)
		}
	}
}

func TestScoreStressBounds(t *testing.T) {
	forms := []*StressForm{
		{}, // everything empty or zero
		{
			PhysicalSymptoms:   symptoms(6),
			EmotionalSymptoms:  symptoms(6),
			BehavioralSymptoms: symptoms(6),
			StressLevel:        10,
			StressTriggers:     symptoms(6),
			// protective factors all 0: each contributes 3
		},
		{
			PhysicalSymptoms:  symptoms(3),
			StressLevel:       5,
			StressTriggers:    symptoms(4),
			SleepQuality:      5,
			ExerciseFrequency: 7,
			DietQuality:       5,
			SocialSupport:     5,
			WorkLifeBalance:   5,
		},
	}
	for i, f := range forms {
		total, subs := ScoreStress(f)
		if len(subs) != len(stressBank) {
			t.Fatalf("form %d: expected %d sub-scores, got %d", i, len(stressBank), len(subs))
		}
		for j, s := range subs {
			if s < 0 || s > 3 {
				t.Errorf("form %d: sub-score %d (%s) = %d out of [0,3]", i, j, stressBank[j].Field, s)
			}
		}
		if total < 0 || total > MaxStressScore {
			t.Errorf("form %d: total %d out of [0,%d]", i, total, MaxStressScore)
		}
	}
}

func TestScoreStressClampsToMax(t *testing.T) {
	// Ten maxed sub-scores sum to 30 but the total must clamp to 27.
	f := &StressForm{
		PhysicalSymptoms:   symptoms(6),
		EmotionalSymptoms:  symptoms(6),
		BehavioralSymptoms: symptoms(6),
		StressLevel:        10,
		StressTriggers:     symptoms(6),
	}
	total, _ := ScoreStress(f)
	if total != MaxStressScore {
		t.Fatalf("expected clamped total %d, got %d", MaxStressScore, total)
	}
}

func TestScoreStressEmptyForm(t *testing.T) {
	// No symptoms and zero wellness ratings: only the reverse-scored
	// protective factors contribute, 3 each.
	total, subs := ScoreStress(&StressForm{})
	if total != 15 {
		t.Fatalf("expected total 15, got %d", total)
	}
	for _, i := range []int{0, 1, 2, 3, 4} {
		if subs[i] != 0 {
			t.Errorf("sub-score %s = %d, want 0", stressBank[i].Field, subs[i])
		}
	}
	for _, i := range []int{5, 6, 7, 8, 9} {
		if subs[i] != 3 {
			t.Errorf("sub-score %s = %d, want 3", stressBank[i].Field, subs[i])
		}
	}
}

func TestScoreStressIdempotent(t *testing.T) {
	f := &StressForm{
		PhysicalSymptoms: symptoms(4),
		StressLevel:      7,
		SleepQuality:     2,
		SocialSupport:    4,
	}
	t1, _ := ScoreStress(f)
	t2, _ := ScoreStress(f)
	if t1 != t2 {
		t.Fatalf("scoring is not idempotent: %d vs %d", t1, t2)
	}
	if StressSeverity(t1) != StressSeverity(t2) {
		t.Fatal("severity is not idempotent")
	}
}

func TestScoreAnxiety(t *testing.T) {
	allMax := &AnxietyForm{
		FeelingNervous:        3,
		NotAbleToStopWorrying: 3,
		WorryingTooMuch:       3,
		TroubleRelaxing:       3,
		BeingSoRestless:       3,
		BecomingEasilyAnnoyed: 3,
		FeelingAfraid:         3,
	}
	if got := ScoreAnxiety(allMax); got != MaxAnxietyScore {
		t.Fatalf("all-max GAD-7 = %d, want %d", got, MaxAnxietyScore)
	}
	if got := ScoreAnxiety(&AnxietyForm{}); got != 0 {
		t.Fatalf("empty GAD-7 = %d, want 0", got)
	}
	if got := ScoreAnxiety(&AnxietyForm{FeelingNervous: 2, TroubleRelaxing: 1}); got != 3 {
		t.Fatalf("partial GAD-7 = %d, want 3", got)
	}
}

func TestScorePTSDTotal(t *testing.T) {
	f := &PTSDForm{}
	total, crit := ScorePTSD(f)
	if total != 0 {
		t.Fatalf("empty PCL-5 total = %d, want 0", total)
	}
	if crit.B || crit.C || crit.D || crit.E {
		t.Fatalf("empty PCL-5 should satisfy no criteria, got %+v", crit)
	}

	allMax := &PTSDForm{
		RepeatedMemories: 4, DisturbingDreams: 4, RelivingExperience: 4,
		UpsetByReminders: 4, PhysicalReactions: 4,
		AvoidMemories: 4, AvoidExternalReminders: 4,
		TroubleRemembering: 4, NegativeBeliefs: 4, BlamingSelfOrOthers: 4,
		NegativeFeelings: 4, LossOfInterest: 4, FeelingDistant: 4,
		TroublePositiveFeelings: 4,
		IrritableOrAngry:        4, RecklessBehavior: 4, Hypervigilance: 4,
		EasilyStartled: 4, DifficultyConcentrating: 4, TroubleSleeping: 4,
	}
	total, crit = ScorePTSD(allMax)
	if total != MaxPTSDScore {
		t.Fatalf("all-max PCL-5 total = %d, want %d", total, MaxPTSDScore)
	}
	if !crit.Met() {
		t.Fatalf("all-max PCL-5 should satisfy every criterion, got %+v", crit)
	}
}

func TestScorePTSDCriteria(t *testing.T) {
	// Exactly one endorsed item in each of B and C, none in D and E.
	f := &PTSDForm{RepeatedMemories: 2, AvoidMemories: 3}
	_, crit := ScorePTSD(f)
	if !crit.B || !crit.C {
		t.Errorf("expected B and C satisfied, got %+v", crit)
	}
	if crit.D || crit.E {
		t.Errorf("expected D and E unsatisfied, got %+v", crit)
	}

	// D and E need two endorsed items each; one is not enough.
	f = &PTSDForm{NegativeBeliefs: 4, IrritableOrAngry: 4}
	_, crit = ScorePTSD(f)
	if crit.D || crit.E {
		t.Errorf("single endorsed item must not satisfy D or E, got %+v", crit)
	}
	f = &PTSDForm{NegativeBeliefs: 4, LossOfInterest: 2, IrritableOrAngry: 4, TroubleSleeping: 2}
	_, crit = ScorePTSD(f)
	if !crit.D || !crit.E {
		t.Errorf("two endorsed items must satisfy D and E, got %+v", crit)
	}
}

func TestScorePTSDEndorsementThreshold(t *testing.T) {
	// A rating of 1 is below the endorsement threshold everywhere.
	f := &PTSDForm{
		RepeatedMemories: 1, AvoidMemories: 1,
		NegativeBeliefs: 1, LossOfInterest: 1,
		IrritableOrAngry: 1, TroubleSleeping: 1,
	}
	total, crit := ScorePTSD(f)
	if total != 6 {
		t.Fatalf("total = %d, want 6", total)
	}
	if crit.B || crit.C || crit.D || crit.E {
		t.Fatalf("sub-threshold ratings must satisfy no criteria, got %+v", crit)
	}
}
