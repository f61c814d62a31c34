package domain

import "testing"

func TestLocationLabel(t *testing.T) {
	site := &Site{ID: 1, Name: "Brno"}
	loc := &Location{ID: 2, Name: "R101", SiteID: 1}

	tests := []struct {
		name   string
		device *Device
		want   string
	}{
		{"no device", nil, ""},
		{"site and location", &Device{Name: "rack-a1", Site: site, Location: loc}, "Brno R101 : rack-a1"},
		{"site only", &Device{Name: "rack-a1", Site: site}, "Brno : rack-a1"},
		{"neither", &Device{Name: "rack-a1"}, "rack-a1"},
		{"location without site", &Device{Name: "rack-a1", Location: loc}, "rack-a1"},
		{"site with empty name", &Device{Name: "rack-a1", Site: &Site{ID: 3}, Location: loc}, "rack-a1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LocationLabel(tt.device); got != tt.want {
				t.Errorf("LocationLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}
