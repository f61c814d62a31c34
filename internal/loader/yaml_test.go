package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"inventoryviewer/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	snap, err := LoadFile(filepath.Join("testdata", "inventory.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "brno-lab", snap.Source)
	assert.Len(t, snap.Sites, 1)
	assert.Len(t, snap.Devices, 3)
	assert.Len(t, snap.Modules, 3)
	assert.Len(t, snap.Cables, 5)

	m := snap.Modules[0]
	assert.Equal(t, "SN1", m.Serial)
	assert.Equal(t, "2019", m.CustomFields.String(domain.CustomFieldYearIntroduced))
	assert.Equal(t, "MB-1", m.CustomFields.String(domain.CustomFieldMeasurementPoint))

	c := snap.Cables[3]
	require.Len(t, c.Terminations, 3)
	assert.Equal(t, domain.CableEndA, c.Terminations[0].End)
	assert.Equal(t, domain.CableEndB, c.Terminations[1].End)
	assert.Equal(t, domain.TerminationVMInterface, c.Terminations[1].Type)
	assert.Equal(t, int64(13), c.Terminations[2].CableID)
}

func TestLoadFileDefaultsSourceToPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inv.yaml")
	require.NoError(t, os.WriteFile(path, []byte("module_types:\n  - {id: 1, model: X}\n"), 0644))

	snap, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, snap.Source)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestParseEmpty(t *testing.T) {
	snap, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, snap.Modules)
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse(strings.NewReader("modulez: []\n"))
	require.Error(t, err)
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "duplicate site",
			input:   "sites:\n  - {id: 1, name: A}\n  - {id: 1, name: B}\n",
			wantErr: "site 1: duplicate id",
		},
		{
			name:    "non-positive id",
			input:   "sites:\n  - {id: 0, name: A}\n",
			wantErr: "id must be positive",
		},
		{
			name:    "unknown module type",
			input:   "modules:\n  - {id: 1, module_type_id: 9}\n",
			wantErr: "module 1: unknown module type 9",
		},
		{
			name:    "missing module type",
			input:   "modules:\n  - {id: 1}\n",
			wantErr: "module_type_id is required",
		},
		{
			name:    "module type without model",
			input:   "module_types:\n  - {id: 1}\n",
			wantErr: "model is required",
		},
		{
			name:    "unknown device on port",
			input:   "interfaces:\n  - {id: 1, name: e0, device_id: 4}\n",
			wantErr: "dcim.interface 1: unknown device 4",
		},
		{
			name:    "unsupported termination type",
			input:   "cables:\n  - id: 1\n    a: [{type: dcim.powerport, id: 1}]\n",
			wantErr: `unsupported termination type "dcim.powerport"`,
		},
		{
			name:    "unknown termination target",
			input:   "cables:\n  - id: 1\n    a: [{type: dcim.frontport, id: 3}]\n",
			wantErr: "cable 1: unknown dcim.frontport 3",
		},
		{
			name: "port on two cables",
			input: "interfaces:\n  - {id: 1, name: e0}\n" +
				"cables:\n  - id: 1\n    a: [{type: dcim.interface, id: 1}]\n" +
				"  - id: 2\n    a: [{type: dcim.interface, id: 1}]\n",
			wantErr: "already attached to cable 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	snap := &domain.Snapshot{
		Sites:   []domain.Site{{ID: 1}, {ID: 1}},
		Modules: []domain.ModuleRecord{{ID: 1, ModuleTypeID: 5}},
	}
	err := Validate(snap)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate id")
	assert.Contains(t, err.Error(), "unknown module type 5")
}
