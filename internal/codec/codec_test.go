package codec

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"inventoryviewer/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleTables() []domain.ModuleTable {
	return []domain.ModuleTable{
		{
			Type: domain.ModuleType{ID: 1, Manufacturer: "Cisco", Model: "NIM-2T"},
			Rows: []domain.ModuleRow{
				{ModuleID: 1, Serial: "SN1", YearIntroduced: "2019", Location: "Brno : rack-a1",
					Connectivity: "rack-a1/Gi0/0 <-> sw/eth0; rack-a1/RP1 <-> (nezapojeno)"},
				{ModuleID: 3, Serial: "SN3"},
			},
		},
		{
			Type: domain.ModuleType{ID: 2, Model: "PSU"},
			Rows: []domain.ModuleRow{{ModuleID: 2, Serial: "SN2", Comments: "a, \"quoted\" note"}},
		},
	}
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t, []string{"csv", "json", "yaml"}, r.Formats())

	e, ok := r.Get("yaml")
	require.True(t, ok)
	assert.Equal(t, "application/x-yaml", e.ContentType())

	_, ok = r.Get("xml")
	assert.False(t, ok)
}

func TestJSONExport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONCodec().Export(sampleTables(), &buf))

	var out []struct {
		Type string `json:"type"`
		Rows []struct {
			Serial       string `json:"sn"`
			Connectivity string `json:"propojeni"`
		} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 2)
	assert.Equal(t, "Cisco NIM-2T", out[0].Type)
	assert.Equal(t, "SN1", out[0].Rows[0].Serial)
	assert.Contains(t, out[0].Rows[0].Connectivity, "(nezapojeno)")
}

func TestJSONExportEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONCodec().Export(nil, &buf))
	assert.Equal(t, "[]\n", buf.String())
}

func TestYAMLExport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewYAMLCodec().Export(sampleTables(), &buf))

	var doc struct {
		Tables []struct {
			Type string `yaml:"type"`
			Rows []struct {
				Serial   string `yaml:"sn"`
				Location string `yaml:"umisteni"`
			} `yaml:"rows"`
		} `yaml:"tables"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Tables, 2)
	assert.Equal(t, "PSU", doc.Tables[1].Type)
	assert.Equal(t, "Brno : rack-a1", doc.Tables[0].Rows[0].Location)
}

func TestCSVExport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCSVCodec().Export(sampleTables(), &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, []string{"Typ", "SN", "Datum", "Ev. č.", "Umístění", "Propoj", "Poznámka", "Měřicí bod"}, records[0])
	assert.Equal(t, "Cisco NIM-2T", records[1][0])
	assert.Equal(t, "2019", records[1][2])
	assert.Equal(t, "PSU", records[3][0])
	assert.Equal(t, "a, \"quoted\" note", records[3][6])
}
