package errors

import (
	"math"
	"testing"
)

func TestValidateFilePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid relative", "scenarios/feed.toml", false},
		{"valid absolute", "/tmp/out.json", false},
		{"valid with spaces", "my scenario.toml", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 5000)), true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFilePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFilePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidateFilePath(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidPath)
			}
		})
	}
}

func TestValidateLength(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"positive", 320.5, false},
		{"negative", -1, true},
		{"NaN", math.NaN(), true},
		{"infinity", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLength("width", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLength(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateCount(t *testing.T) {
	if err := ValidateCount("items", 0); err != nil {
		t.Errorf("ValidateCount(0) error = %v", err)
	}
	err := ValidateCount("items", -3)
	if !Is(err, ErrCodeInvalidScenario) {
		t.Errorf("ValidateCount(-3) error = %v, want %v", err, ErrCodeInvalidScenario)
	}
}

func TestValidateMax(t *testing.T) {
	if err := ValidateMax("items", 10, 10); err != nil {
		t.Errorf("ValidateMax(10, 10) error = %v", err)
	}
	err := ValidateMax("items", 11, 10)
	if !Is(err, ErrCodeInvalidScenario) {
		t.Errorf("ValidateMax(11, 10) error = %v, want %v", err, ErrCodeInvalidScenario)
	}
}

func TestValidateFormat(t *testing.T) {
	allowed := []string{"svg", "png", "json"}
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"svg", false},
		{"PNG", false},
		{" json ", false},
		{"", true},
		{"pdf", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateFormat(tt.input, allowed...)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
