package lru

import (
	"errors"
	"testing"
)

func TestParseCapacity(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr error
	}{
		{in: "1", want: 1},
		{in: "256", want: 256},
		{in: " 65536 ", want: 65536},
		{in: "1e3", want: 1000},
		{in: "65537", want: 65537},
		{in: "0", wantErr: ErrInvalidCapacity},
		{in: "-5", wantErr: ErrInvalidCapacity},
		{in: "3.5", wantErr: ErrInvalidCapacity},
		{in: "NaN", wantErr: ErrInvalidCapacity},
		{in: "Inf", wantErr: ErrInvalidCapacity},
		{in: "-Inf", wantErr: ErrInvalidCapacity},
		{in: "ten", wantErr: ErrInvalidCapacity},
		{in: "", wantErr: ErrInvalidCapacity},
		{in: "4294967297", wantErr: ErrCapacityNotSupported},
		{in: "1e20", wantErr: ErrCapacityNotSupported},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCapacity(tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseCapacity(%q) error = %v, want %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseCapacity(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
