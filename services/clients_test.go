package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dtaccel/backend/models"
)

func TestValidateClient(t *testing.T) {
	valid := func() *models.Client {
		return &models.Client{
			Name:         "Acme Manufacturing",
			IndustryType: "manufacturing",
			CompanySize:  "medium",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*models.Client)
		wantMsg string
	}{
		{name: "Valid client", mutate: func(c *models.Client) {}},
		{
			name:    "Missing name",
			mutate:  func(c *models.Client) { c.Name = "" },
			wantMsg: "Company name is required",
		},
		{
			name:    "Missing industry",
			mutate:  func(c *models.Client) { c.IndustryType = "" },
			wantMsg: "Industry is required",
		},
		{
			name:    "Missing company size",
			mutate:  func(c *models.Client) { c.CompanySize = "" },
			wantMsg: "Company size is required",
		},
		{
			name:    "Negative revenue",
			mutate:  func(c *models.Client) { c.AnnualRevenue = -1 },
			wantMsg: "Annual revenue cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := valid()
			tt.mutate(client)
			err := ValidateClient(client)
			if tt.wantMsg == "" {
				if err != nil {
					t.Errorf("ValidateClient() = %v, expected nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("ValidateClient() = nil, expected error")
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("error message = %q, expected %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestValidationErrorDetection(t *testing.T) {
	base := NewValidationError("boom")

	if !IsValidationError(base) {
		t.Error("IsValidationError() = false for a validation error")
	}
	if IsValidationError(errors.New("boom")) {
		t.Error("IsValidationError() = true for a plain error")
	}
	if !IsValidationError(fmt.Errorf("saving failed: %w", base)) {
		t.Error("IsValidationError() = false for a wrapped validation error")
	}
}
