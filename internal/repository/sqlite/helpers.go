package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"inventoryviewer/internal/domain"
)

// ============================================================================
// Null Type Conversion Helpers
// ============================================================================

// nullToString safely converts sql.NullString to string
func nullToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// stringToNull safely converts string to sql.NullString
func stringToNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// idToNull maps the zero id to NULL
func idToNull(id int64) sql.NullInt64 {
	if id == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: id, Valid: true}
}

// ============================================================================
// JSON Marshaling Helpers
// ============================================================================

// unmarshalJSONField safely unmarshals JSON from nullable string into target
func unmarshalJSONField(ns sql.NullString, target interface{}) error {
	if !ns.Valid || ns.String == "" {
		return nil
	}
	return json.Unmarshal([]byte(ns.String), target)
}

// marshalToNull marshals custom fields to a nullable JSON string
// Returns empty NullString for nil or empty maps
func marshalToNull(v domain.CustomFields) (sql.NullString, error) {
	if len(v) == 0 {
		return sql.NullString{}, nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

// ============================================================================
// Module Row Scanner
// ============================================================================
//
// CRITICAL: Column order must match between:
// - moduleColumns constant
// - scanArgs() return slice

// moduleRow holds all columns from a module query for scanning
type moduleRow struct {
	ID               int64
	Serial           string
	AssetTag         sql.NullString
	Comments         string
	CustomFieldsJSON sql.NullString
	TypeID           int64
	TypeManufacturer sql.NullString
	TypeModel        string
	DeviceID         sql.NullInt64
	DeviceName       sql.NullString
	SiteID           sql.NullInt64
	SiteName         sql.NullString
	LocationID       sql.NullInt64
	LocationName     sql.NullString
}

// scanArgs returns pointers to all fields for sql.Scan()
func (r *moduleRow) scanArgs() []interface{} {
	return []interface{}{
		&r.ID,               // 1
		&r.Serial,           // 2
		&r.AssetTag,         // 3
		&r.Comments,         // 4
		&r.CustomFieldsJSON, // 5
		&r.TypeID,           // 6
		&r.TypeManufacturer, // 7
		&r.TypeModel,        // 8
		&r.DeviceID,         // 9
		&r.DeviceName,       // 10
		&r.SiteID,           // 11
		&r.SiteName,         // 12
		&r.LocationID,       // 13
		&r.LocationName,     // 14
	}
}

// toDomain converts the scanned row to a domain.Module
func (r *moduleRow) toDomain() (*domain.Module, error) {
	module := &domain.Module{
		ID:       r.ID,
		Serial:   r.Serial,
		AssetTag: nullToString(r.AssetTag),
		Comments: r.Comments,
		ModuleType: domain.ModuleType{
			ID:           r.TypeID,
			Manufacturer: nullToString(r.TypeManufacturer),
			Model:        r.TypeModel,
		},
	}

	if r.DeviceID.Valid {
		module.Device = &domain.Device{
			ID:   r.DeviceID.Int64,
			Name: nullToString(r.DeviceName),
		}
		if r.SiteID.Valid {
			module.Device.Site = &domain.Site{ID: r.SiteID.Int64, Name: nullToString(r.SiteName)}
		}
		if r.LocationID.Valid {
			module.Device.Location = &domain.Location{ID: r.LocationID.Int64, Name: nullToString(r.LocationName)}
		}
	}

	if err := unmarshalJSONField(r.CustomFieldsJSON, &module.CustomFields); err != nil {
		return nil, fmt.Errorf("unmarshal custom fields: %w", err)
	}

	return module, nil
}

// moduleColumns returns the SELECT column list for module queries
const moduleColumns = `m.id, m.serial, m.asset_tag, m.comments, m.custom_field_data,
	mt.id, mt.manufacturer, mt.model,
	d.id, d.name, s.id, s.name, l.id, l.name`

// moduleFrom joins everything a module row needs
const moduleFrom = `
	FROM dcim_module m
	JOIN dcim_moduletype mt ON mt.id = m.module_type_id
	LEFT JOIN dcim_device d ON d.id = m.device_id
	LEFT JOIN dcim_site s ON s.id = d.site_id
	LEFT JOIN dcim_location l ON l.id = d.location_id`

// moduleInsertArgs prepares arguments for module INSERT
// Returns: id, device_id, module_type_id, serial, asset_tag, comments, custom_field_data
func moduleInsertArgs(m *domain.ModuleRecord) ([]interface{}, error) {
	cfJSON, err := marshalToNull(m.CustomFields)
	if err != nil {
		return nil, fmt.Errorf("marshal custom fields: %w", err)
	}

	return []interface{}{
		m.ID,
		idToNull(m.DeviceID),
		m.ModuleTypeID,
		m.Serial,
		stringToNull(m.AssetTag),
		m.Comments,
		cfJSON,
	}, nil
}

// ============================================================================
// Cable Termination Row Scanner
// ============================================================================

// terminationRow holds all columns from a termination query for scanning
type terminationRow struct {
	ID       int64
	CableID  int64
	End      string
	Type     string
	ObjectID int64
}

// scanArgs returns pointers to all fields for sql.Scan()
// MUST match terminationColumns order exactly:
// id, cable_id, cable_end, termination_type, termination_id
func (r *terminationRow) scanArgs() []interface{} {
	return []interface{}{
		&r.ID,       // 1
		&r.CableID,  // 2
		&r.End,      // 3
		&r.Type,     // 4
		&r.ObjectID, // 5
	}
}

// toDomain converts the scanned row to a domain.CableTermination
func (r *terminationRow) toDomain() domain.CableTermination {
	return domain.CableTermination{
		ID:       r.ID,
		CableID:  r.CableID,
		End:      domain.CableEnd(r.End),
		Type:     domain.TerminationType(r.Type),
		ObjectID: r.ObjectID,
	}
}

// terminationColumns returns the SELECT column list for termination queries
const terminationColumns = `id, cable_id, cable_end, termination_type, termination_id`
