package calc

import (
	"math"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"integer", 2.0, "2"},
		{"zero", 0, "0"},
		{"negative zero", math.Copysign(0, -1), "0"},
		{"tiny negative", -1e-12, "0"},
		{"half", 2.5, "2.5"},
		{"negative", -3.75, "-3.75"},
		{"third", 1.0 / 3.0, "0.3333333333"},
		{"rounds up", 2.0 / 3.0, "0.6666666667"},
		{"float noise", 0.1 + 0.2, "0.3"},
		{"ten digits", 0.0123456789, "0.0123456789"},
		{"below precision", 1e-11, "0"},
		{"large", 1e20, "100000000000000000000"},
		{"shortest decimal", 98765432.1, "98765432.1"},
		{"nine integer digits", 123456789.123456789, "123456789.12345679"},
		{"inexact power of ten", 1e23, "100000000000000000000000"},
		{"huge", 1e40, "1" + strings.Repeat("0", 40)},
		{"small with many digits", 1.0 / 7.0, "0.1428571429"},
		{"large negative", -12345678901234, "-12345678901234"},
		{"positive infinity", math.Inf(1), ErrorDisplay},
		{"negative infinity", math.Inf(-1), ErrorDisplay},
		{"nan", math.NaN(), ErrorDisplay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.in); got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatShape(t *testing.T) {
	values := []float64{0.1 + 0.2, 1.0 / 7.0, 123.456, -9.99999999999, 1e-5, 5e15 + 0.5}
	for _, v := range values {
		got := Format(v)
		if strings.ContainsAny(got, "eE") {
			t.Errorf("Format(%v) = %q uses exponent notation", v, got)
		}
		if i := strings.IndexByte(got, '.'); i >= 0 {
			frac := got[i+1:]
			if len(frac) > MaxFractionDigits {
				t.Errorf("Format(%v) = %q has %d fractional digits", v, got, len(frac))
			}
			if strings.HasSuffix(frac, "0") || frac == "" {
				t.Errorf("Format(%v) = %q has a trailing zero or point", v, got)
			}
		}
	}
}
