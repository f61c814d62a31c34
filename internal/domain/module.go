package domain

import (
	"fmt"
	"strconv"
)

// Custom field keys used by the inventory table
const (
	CustomFieldYearIntroduced   = "rok_zavedeni"
	CustomFieldMeasurementPoint = "merici_bod"
)

// ModuleType is the catalogue entry a module is an instance of
type ModuleType struct {
	ID           int64  `json:"id" yaml:"id"`
	Manufacturer string `json:"manufacturer,omitempty" yaml:"manufacturer,omitempty"`
	Model        string `json:"model" yaml:"model"`
}

// DisplayName returns "<manufacturer> <model>", or the bare model
func (t ModuleType) DisplayName() string {
	if t.Manufacturer == "" {
		return t.Model
	}
	return t.Manufacturer + " " + t.Model
}

// Module represents a hardware unit installed in a device
type Module struct {
	ID           int64        `json:"id"`
	Device       *Device      `json:"device,omitempty"`
	ModuleType   ModuleType   `json:"module_type"`
	Serial       string       `json:"serial"`
	AssetTag     string       `json:"asset_tag,omitempty"`
	Comments     string       `json:"comments,omitempty"`
	CustomFields CustomFields `json:"custom_fields,omitempty"`
}

// YearIntroduced returns the "rok_zavedeni" custom field
func (m *Module) YearIntroduced() string {
	return m.CustomFields.String(CustomFieldYearIntroduced)
}

// MeasurementPoint returns the "merici_bod" custom field
func (m *Module) MeasurementPoint() string {
	return m.CustomFields.String(CustomFieldMeasurementPoint)
}

// CustomFields holds the dynamically keyed attributes of a record as decoded
// from JSON. Values are strings, float64 numbers, bools or nil.
type CustomFields map[string]any

// String returns the display form of a custom field.
// Absent keys and null values yield "".
func (cf CustomFields) String(key string) string {
	if cf == nil {
		return ""
	}
	v, ok := cf[key]
	if !ok || v == nil {
		return ""
	}

	switch val := v.(type) {
	case string:
		return val
	case float64:
		// JSON numbers: keep years as "2019", not "2019.000000"
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}
