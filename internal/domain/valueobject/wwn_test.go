package valueobject

import (
	"errors"
	"testing"

	"github.com/sanops/zonectl/internal/domain"
)

func TestParseStrict(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    WWN
		wantErr error
	}{
		{
			name:  "canonical",
			input: "50:06:0e:80:16:50:5c:00",
			want:  "50:06:0e:80:16:50:5c:00",
		},
		{
			name:  "upper case normalized",
			input: "50:06:0E:80:16:50:5C:00",
			want:  "50:06:0e:80:16:50:5c:00",
		},
		{
			name:  "surrounding whitespace",
			input: "  50:06:0e:80:16:50:5c:00 ",
			want:  "50:06:0e:80:16:50:5c:00",
		},
		{
			name:    "too short",
			input:   "50:06:0e:80",
			wantErr: domain.ErrMalformedWWN,
		},
		{
			name:    "wrong separator",
			input:   "50-06-0e-80-16-50-5c-00",
			wantErr: domain.ErrMalformedWWN,
		},
		{
			name:    "non-hex character",
			input:   "50:06:0g:80:16:50:5c:00",
			wantErr: domain.ErrMalformedWWN,
		},
		{
			name:    "colon misplaced",
			input:   "500:60e:80:16:50:5c:000",
			wantErr: domain.ErrMalformedWWN,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: domain.ErrMalformedWWN,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStrict(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseStrict(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStrict(%q) unexpected error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseStrict(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseLoose(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    WWN
		wantErr error
	}{
		{
			name:  "already canonical",
			input: "50:06:0e:80:16:50:5c:00",
			want:  "50:06:0e:80:16:50:5c:00",
		},
		{
			name:  "bare hex",
			input: "50060e8016505c00",
			want:  "50:06:0e:80:16:50:5c:00",
		},
		{
			name:  "vms format",
			input: "5006-0e80-1650-5c00",
			want:  "50:06:0e:80:16:50:5c:00",
		},
		{
			name:  "mixed case with separators",
			input: "50:06:0E:80:16:50:5C:00",
			want:  "50:06:0e:80:16:50:5c:00",
		},
		{
			name:    "noise adds stray hex digits",
			input:   "0x50:06:0e:80:16:50:5c:00",
			wantErr: domain.ErrMalformedWWN,
		},
		{
			name:    "too few hex digits",
			input:   "50:06:0e",
			wantErr: domain.ErrMalformedWWN,
		},
		{
			name:    "too many hex digits",
			input:   "50060e8016505c0001",
			wantErr: domain.ErrMalformedWWN,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLoose(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseLoose(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLoose(%q) unexpected error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseLoose(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestWWNRenderings(t *testing.T) {
	w := WWN("50:06:0e:80:16:50:5c:00")

	if got := w.Bare(); got != "50060e8016505c00" {
		t.Errorf("Bare() = %q", got)
	}
	if got := w.BareUpper(); got != "50060E8016505C00" {
		t.Errorf("BareUpper() = %q", got)
	}
	if got := w.VMS(); got != "5006-0e80-1650-5c00" {
		t.Errorf("VMS() = %q", got)
	}
	if w.IsZero() {
		t.Error("IsZero() = true for non-zero WWN")
	}
	if !WWN("").IsZero() {
		t.Error("IsZero() = false for zero WWN")
	}
}
