package resources

import (
	"errors"
	"math"
	"testing"

	"github.com/stuttgart-things/workspaces/internal/workspace"
)

func TestClamp(t *testing.T) {
	cpu := workspace.ResourceInterval{Min: 1, Max: 4}

	tests := []struct {
		name  string
		value int
		want  int
	}{
		{name: "below min", value: -3, want: 1},
		{name: "at min", value: 1, want: 1},
		{name: "inside", value: 3, want: 3},
		{name: "at max", value: 4, want: 4},
		{name: "above max", value: 99, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.value, cpu); got != tt.want {
				t.Errorf("Clamp(%d) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}

func TestClampAlwaysInRangeAndIdempotent(t *testing.T) {
	intervals := []workspace.ResourceInterval{
		{Min: 1, Max: 4},
		{Min: 4, Max: 16},
		{Min: 1, Max: 32},
		{Min: 0, Max: 0},
		{Min: -5, Max: 5},
	}

	for _, iv := range intervals {
		for v := -100; v <= 100; v++ {
			got := Clamp(v, iv)
			if !IsValid(got, iv) {
				t.Fatalf("Clamp(%d, %v) = %d is outside the interval", v, iv, got)
			}
			if again := Clamp(got, iv); again != got {
				t.Fatalf("Clamp is not idempotent for %d in %v: %d != %d", v, iv, again, got)
			}
		}
	}
}

func TestIsValid(t *testing.T) {
	ram := workspace.ResourceInterval{Min: 4, Max: 16}

	if IsValid(3, ram) {
		t.Error("3 should be invalid for [4,16]")
	}
	if !IsValid(4, ram) || !IsValid(16, ram) {
		t.Error("bounds should be valid")
	}
	if IsValid(17, ram) {
		t.Error("17 should be invalid for [4,16]")
	}
}

func TestCheck(t *testing.T) {
	if err := Check(workspace.ResourceInterval{Min: 1, Max: 1}); err != nil {
		t.Errorf("unexpected error for single-value interval: %v", err)
	}
	if err := Check(workspace.ResourceInterval{Min: 5, Max: 1}); err == nil {
		t.Error("expected error for min > max")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{raw: "4", want: 4},
		{raw: " 12 ", want: 12},
		{raw: "-1", want: -1},
		{raw: "", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "NaN", wantErr: true},
		{raw: "2.5", wantErr: true},
		{raw: "99999999999999999999", want: math.MaxInt},
		{raw: "-99999999999999999999", want: math.MinInt},
		{raw: "1e10", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := Parse(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("Parse(%q) error = %v, want ErrInvalidInput", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestFromFloat(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), 1.5, 1e12 + 0.5} {
		if _, err := FromFloat(f); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("FromFloat(%v) error = %v, want ErrInvalidInput", f, err)
		}
	}

	got, err := FromFloat(8)
	if err != nil {
		t.Fatalf("FromFloat(8) unexpected error: %v", err)
	}
	if got != 8 {
		t.Errorf("FromFloat(8) = %d, want 8", got)
	}

	tests := []struct {
		in   float64
		want int
	}{
		{in: 1e10, want: 10000000000},
		{in: 1e30, want: math.MaxInt},
		{in: -1e30, want: math.MinInt},
	}
	for _, tt := range tests {
		got, err := FromFloat(tt.in)
		if err != nil {
			t.Errorf("FromFloat(%v) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FromFloat(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestClampText(t *testing.T) {
	disk := workspace.ResourceInterval{Min: 1, Max: 32}

	got, err := ClampText("64", disk)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 32 {
		t.Errorf("ClampText(64) = %d, want 32", got)
	}

	got, err = ClampText("99999999999999999999", disk)
	if err != nil || got != 32 {
		t.Errorf("ClampText(huge) = %d, %v, want 32", got, err)
	}

	if _, err := ClampText("lots", disk); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}
