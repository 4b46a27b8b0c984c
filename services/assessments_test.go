package services

import (
	"testing"
	"time"
)

func TestCheckReviewReady(t *testing.T) {
	tests := []struct {
		name     string
		progress float64
		wantErr  bool
	}{
		{name: "Fully answered", progress: 100, wantErr: false},
		{name: "Almost complete", progress: 99.9, wantErr: true},
		{name: "Untouched", progress: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckReviewReady(tt.progress)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckReviewReady(%v) error = %v, wantErr %v", tt.progress, err, tt.wantErr)
			}
			if err != nil {
				if !IsValidationError(err) {
					t.Errorf("expected a validation error, got %T", err)
				}
				expected := "Please complete all assessment questions before submitting."
				if err.Error() != expected {
					t.Errorf("error message = %q, expected %q", err.Error(), expected)
				}
			}
		})
	}
}

func TestTruncateToDay(t *testing.T) {
	in := time.Date(2025, 6, 15, 14, 30, 45, 123, time.FixedZone("CEST", 2*3600))
	got := truncateToDay(in)

	expected := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(expected) {
		t.Errorf("truncateToDay() = %v, expected %v", got, expected)
	}
}
