package commands

import "testing"

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"text", false},
		{"json", false},
		{"yaml", false},
		{"xml", true},
		{"", true},
		{"JSON", true},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

func TestFormatSpecPath(t *testing.T) {
	if got := FormatSpecPath("-"); got != "<stdin>" {
		t.Errorf("FormatSpecPath(\"-\") = %q, want \"<stdin>\"", got)
	}
	if got := FormatSpecPath("openapi.yaml"); got != "openapi.yaml" {
		t.Errorf("FormatSpecPath returned %q, want unchanged path", got)
	}
}

func TestOutputStructured_InvalidFormat(t *testing.T) {
	if err := OutputStructured(map[string]string{"a": "b"}, "text"); err == nil {
		t.Error("expected error for non-structured format")
	}
}
