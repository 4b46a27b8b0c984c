package services

import (
	"testing"
	"time"
)

func TestStandardPhases(t *testing.T) {
	phases := StandardPhases()

	if len(phases) != 6 {
		t.Fatalf("expected 6 standard phases, got %d", len(phases))
	}

	total := 0
	for _, p := range phases {
		total += p.Weight
	}
	if total != 100 {
		t.Errorf("standard phase weights sum to %d, expected 100", total)
	}

	expected := []string{"Initiation", "Planning", "Design", "Development", "Testing", "Deployment"}
	for i, name := range expected {
		if phases[i].Name != name {
			t.Errorf("phase %d = %s, expected %s", i, phases[i].Name, name)
		}
	}
}

func TestValidateProjectDates(t *testing.T) {
	day := func(d int) *time.Time {
		t := time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
		return &t
	}

	tests := []struct {
		name    string
		start   *time.Time
		target  *time.Time
		wantErr bool
	}{
		{name: "Target after start", start: day(1), target: day(10), wantErr: false},
		{name: "Target equals start", start: day(5), target: day(5), wantErr: false},
		{name: "Target before start", start: day(10), target: day(1), wantErr: true},
		{name: "Missing start date", start: nil, target: day(1), wantErr: false},
		{name: "Missing target date", start: day(1), target: nil, wantErr: false},
		{name: "Both dates missing", start: nil, target: nil, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProjectDates(tt.start, tt.target)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateProjectDates() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !IsValidationError(err) {
				t.Errorf("expected a validation error, got %T", err)
			}
		})
	}
}
