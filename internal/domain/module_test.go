package domain

import "testing"

func TestCustomFieldsString(t *testing.T) {
	cf := CustomFields{
		"rok_zavedeni": float64(2019),
		"merici_bod":   "MB-07",
		"ratio":        1.5,
		"flag":         true,
		"empty":        nil,
		"count":        int64(3),
	}

	tests := []struct {
		key  string
		want string
	}{
		{"rok_zavedeni", "2019"},
		{"merici_bod", "MB-07"},
		{"ratio", "1.5"},
		{"flag", "true"},
		{"empty", ""},
		{"count", "3"},
		{"missing", ""},
	}

	for _, tt := range tests {
		if got := cf.String(tt.key); got != tt.want {
			t.Errorf("CustomFields.String(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestCustomFieldsNilMap(t *testing.T) {
	var cf CustomFields
	if got := cf.String(CustomFieldYearIntroduced); got != "" {
		t.Errorf("expected empty string from nil map, got %q", got)
	}
}

func TestModuleCustomFieldAccessors(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		m := &Module{CustomFields: CustomFields{
			CustomFieldYearIntroduced:   "2021",
			CustomFieldMeasurementPoint: "A-12",
		}}
		if got := m.YearIntroduced(); got != "2021" {
			t.Errorf("YearIntroduced() = %q, want %q", got, "2021")
		}
		if got := m.MeasurementPoint(); got != "A-12" {
			t.Errorf("MeasurementPoint() = %q, want %q", got, "A-12")
		}
	})

	t.Run("absent", func(t *testing.T) {
		m := &Module{CustomFields: CustomFields{"other": "x"}}
		if got := m.YearIntroduced(); got != "" {
			t.Errorf("YearIntroduced() = %q, want empty", got)
		}
		if got := m.MeasurementPoint(); got != "" {
			t.Errorf("MeasurementPoint() = %q, want empty", got)
		}
	})
}

func TestModuleTypeDisplayName(t *testing.T) {
	if got := (ModuleType{Manufacturer: "Cisco", Model: "NIM-2T"}).DisplayName(); got != "Cisco NIM-2T" {
		t.Errorf("DisplayName() = %q", got)
	}
	if got := (ModuleType{Model: "NIM-2T"}).DisplayName(); got != "NIM-2T" {
		t.Errorf("DisplayName() without manufacturer = %q", got)
	}
}
