package discovery

import "testing"

func TestParseCityState(t *testing.T) {
	tests := []struct {
		name      string
		address   string
		wantCity  string
		wantState string
	}{
		{
			name:      "us shaped address",
			address:   "3201 S Lamar Blvd, Austin, TX 78704, USA",
			wantCity:  "Austin",
			wantState: "TX",
		},
		{
			name:      "extra leading segments",
			address:   "Suite 5, 1315 Gruene Rd, New Braunfels, TX 78130, USA",
			wantCity:  "New Braunfels",
			wantState: "TX",
		},
		{
			name:      "three segments",
			address:   "Luckenbach, TX 78624, USA",
			wantCity:  "Luckenbach",
			wantState: "TX",
		},
		{
			name:      "two segments fall back",
			address:   "Main Street, Springfield",
			wantCity:  "Fallback City",
			wantState: "FS",
		},
		{
			name:      "empty falls back",
			address:   "",
			wantCity:  "Fallback City",
			wantState: "FS",
		},
		{
			name:      "empty state segment",
			address:   "1 Road, Town, , USA",
			wantCity:  "Town",
			wantState: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			city, state := ParseCityState(tc.address, "Fallback City", "FS")
			if city != tc.wantCity || state != tc.wantState {
				t.Fatalf("ParseCityState(%q) = (%q, %q), want (%q, %q)", tc.address, city, state, tc.wantCity, tc.wantState)
			}
		})
	}
}
