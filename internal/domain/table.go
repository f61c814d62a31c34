package domain

// Column describes one column of the inventory table
type Column struct {
	Key    string `json:"key" yaml:"key"`
	Header string `json:"header" yaml:"header"`
}

// Columns of the inventory table, in display order
var Columns = []Column{
	{Key: "sn", Header: "SN"},
	{Key: "datum", Header: "Datum"},
	{Key: "ev_cislo", Header: "Ev. č."},
	{Key: "umisteni", Header: "Umístění"},
	{Key: "propojeni", Header: "Propoj"},
	{Key: "poznamka", Header: "Poznámka"},
	{Key: "merici_bod", Header: "Měřicí bod"},
}

// ModuleRow is one rendered line of the inventory table
type ModuleRow struct {
	ModuleID         int64  `json:"module_id" yaml:"module_id"`
	Serial           string `json:"sn" yaml:"sn"`
	YearIntroduced   string `json:"datum" yaml:"datum"`
	AssetTag         string `json:"ev_cislo" yaml:"ev_cislo"`
	Location         string `json:"umisteni" yaml:"umisteni"`
	Connectivity     string `json:"propojeni" yaml:"propojeni"`
	Comments         string `json:"poznamka" yaml:"poznamka"`
	MeasurementPoint string `json:"merici_bod" yaml:"merici_bod"`
}

// Values returns the cells in Columns order
func (r ModuleRow) Values() []string {
	return []string{
		r.Serial,
		r.YearIntroduced,
		r.AssetTag,
		r.Location,
		r.Connectivity,
		r.Comments,
		r.MeasurementPoint,
	}
}

// ModuleTable is the rendered table for one module type
type ModuleTable struct {
	Type ModuleType  `json:"type" yaml:"type"`
	Rows []ModuleRow `json:"rows" yaml:"rows"`
}

// Title returns the table heading
func (t ModuleTable) Title() string {
	return t.Type.DisplayName()
}
