package assessment

import "testing"

func TestStressSeverityBoundaries(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{0, SeverityMinimal},
		{4, SeverityMinimal},
		{5, SeverityMild},
		{9, SeverityMild},
		{10, SeverityModerate},
		{14, SeverityModerate},
		{15, SeverityModeratelySevere},
		{19, SeverityModeratelySevere},
		{20, SeveritySevere},
		{27, SeveritySevere},
	}
	for _, c := range cases {
		if got := StressSeverity(c.score); got != c.want {
			t.Errorf("StressSeverity(%d) = %q, want %q", c.score, got, c.want)
		}
	}
}

func TestStressSeverityPartitionsRange(t *testing.T) {
	// Every score in [0,27] must land in exactly one band.
	for score := 0; score <= MaxStressScore; score++ {
		switch StressSeverity(score) {
		case SeverityMinimal, SeverityMild, SeverityModerate, SeverityModeratelySevere, SeveritySevere:
		default:
			t.Fatalf("StressSeverity(%d) returned unknown label", score)
		}
	}
}

func TestAnxietySeverityBoundaries(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{0, SeverityMinimal},
		{4, SeverityMinimal},
		{5, SeverityMild},
		{9, SeverityMild},
		{10, SeverityModerate},
		{14, SeverityModerate},
		{15, SeveritySevere},
		{21, SeveritySevere},
	}
	for _, c := range cases {
		if got := AnxietySeverity(c.score); got != c.want {
			t.Errorf("AnxietySeverity(%d) = %q, want %q", c.score, got, c.want)
		}
	}
}

func TestPTSDSeverityBands(t *testing.T) {
	none := Criteria{}
	cases := []struct {
		score int
		want  string
	}{
		{0, SeverityMinimal},
		{20, SeverityMinimal},
		{21, SeverityMild},
		{40, SeverityMild},
		{41, SeverityModerate},
		{60, SeverityModerate},
		{61, SeveritySevere},
		{80, SeveritySevere},
	}
	for _, c := range cases {
		if got := PTSDSeverity(c.score, none); got != c.want {
			t.Errorf("PTSDSeverity(%d, none) = %q, want %q", c.score, got, c.want)
		}
	}
}

func TestPTSDSeverityCriteriaFloor(t *testing.T) {
	met := Criteria{B: true, C: true, D: true, E: true}
	// A criteria-positive presentation is never labelled below moderate.
	if got := PTSDSeverity(12, met); got != SeverityModerate {
		t.Errorf("PTSDSeverity(12, met) = %q, want %q", got, SeverityModerate)
	}
	if got := PTSDSeverity(35, met); got != SeverityModerate {
		t.Errorf("PTSDSeverity(35, met) = %q, want %q", got, SeverityModerate)
	}
	// The floor never lowers a higher band.
	if got := PTSDSeverity(70, met); got != SeveritySevere {
		t.Errorf("PTSDSeverity(70, met) = %q, want %q", got, SeveritySevere)
	}
	// A partially satisfied rule does not trigger the floor.
	partial := Criteria{B: true, C: true}
	if got := PTSDSeverity(12, partial); got != SeverityMinimal {
		t.Errorf("PTSDSeverity(12, partial) = %q, want %q", got, SeverityMinimal)
	}
}
