package util

import "testing"

func TestNotBlank(t *testing.T) {
	testCases := []struct {
		input string
		want  bool
	}{
		{"hello", true},
		{"  x  ", true},
		{"", false},
		{"   ", false},
		{"\t\n", false},
	}

	for _, tc := range testCases {
		if got := NotBlank(tc.input); got != tc.want {
			t.Errorf("NotBlank(%q) = %v; want %v", tc.input, got, tc.want)
		}
	}
}

func TestIsEmail(t *testing.T) {
	testCases := []struct {
		input string
		want  bool
	}{
		{"ada@example.com", true},
		{"a.b+tag@sub.example.org", true},
		{"no-at-sign", false},
		{"@example.com", false},
		{"ada@", false},
		{"", false},
	}

	for _, tc := range testCases {
		if got := IsEmail(tc.input); got != tc.want {
			t.Errorf("IsEmail(%q) = %v; want %v", tc.input, got, tc.want)
		}
	}
}

func TestValidateStructCoordinates(t *testing.T) {
	type place struct {
		Lat float64 `validate:"latitude"`
		Lon float64 `validate:"longitude"`
	}

	testCases := []struct {
		name    string
		in      place
		wantErr bool
	}{
		{"valid", place{Lat: 35.19, Lon: 33.38}, false},
		{"lat too big", place{Lat: 91, Lon: 0}, true},
		{"lat too small", place{Lat: -91, Lon: 0}, true},
		{"lon too big", place{Lat: 0, Lon: 181}, true},
		{"lon too small", place{Lat: 0, Lon: -181}, true},
		{"edges", place{Lat: 90, Lon: -180}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateStruct(tc.in)
			if (err != nil) != tc.wantErr {
				t.Errorf("ValidateStruct(%+v) error = %v; wantErr %v", tc.in, err, tc.wantErr)
			}
		})
	}
}
