package errors

import "testing"

func TestValidateJurisdiction(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"irc-base", "irc-base", false},
		{"colorado", "colorado", false},
		{"california", "california", false},
		{"texas", "texas", false},
		{"florida", "florida", false},
		{"empty", "", true},
		{"unknown", "nevada", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJurisdiction(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateJurisdiction(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidJurisdiction) {
				t.Errorf("ValidateJurisdiction(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestValidateTargetArea(t *testing.T) {
	tests := []struct {
		name    string
		input   int
		wantErr bool
	}{
		{"minimum", 800, false},
		{"typical", 2400, false},
		{"maximum", 5000, false},
		{"too small", 799, true},
		{"too large", 5001, true},
		{"negative", -100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTargetArea(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTargetArea(%d) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateStories(t *testing.T) {
	tests := []struct {
		name    string
		input   int
		wantErr bool
	}{
		{"one story", 1, false},
		{"two stories", 2, false},
		{"zero", 0, true},
		{"three", 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStories(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStories(%d) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateRoomLabel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "Primary Bedroom", false},
		{"valid with dash", "Kid's Room - North", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 200)), true},
		{"path traversal ..", "foo/../bar", true},
		{"path traversal //", "foo//bar", true},
		{"null byte", "foo\x00bar", true},
		{"backslash", "foo\\bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRoomLabel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRoomLabel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePlanID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid uuid-like", "9f2c9e1a-2b3c-4d5e-8f6a-1b2c3d4e5f6a", false},
		{"valid simple", "plan-001", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 200)), true},
		{"with slash", "plan/001", true},
		{"with backslash", "plan\\001", true},
		{"null byte", "plan\x00001", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePlanID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePlanID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "briefs/ranch.json", false},
		{"valid nested", "examples/briefs/two-story.toml", false},
		{"valid filename only", "brief.json", false},
		{"valid with dots", "v1.2.3/brief.json", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 600)), true},
		{"absolute path", "/etc/passwd", true},
		{"path traversal", "../../../etc/passwd", true},
		{"path traversal middle", "foo/../bar", true},
		{"null byte", "foo\x00bar", true},
		{"backslash", "foo\\bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidatePath(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidBrief,
		ErrCodeInvalidRoom,
		ErrCodeInvalidJurisdiction,
		ErrCodeInvalidPlan,
		ErrCodeInvalidFormat,
		ErrCodeInvalidPath,
		ErrCodeNotFound,
		ErrCodePlanNotFound,
		ErrCodeFileNotFound,
		ErrCodeStore,
		ErrCodeCache,
		ErrCodeTimeout,
		ErrCodeUnauthorized,
		ErrCodeForbidden,
		ErrCodeInternal,
		ErrCodeUnsupported,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
