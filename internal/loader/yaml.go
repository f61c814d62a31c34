// Package loader reads inventory snapshots from YAML files.
//
// A snapshot is a flat copy of the records the viewer reads. Cables list
// their terminations per side:
//
//	cables:
//	  - id: 10
//	    a: [{type: dcim.interface, id: 1}]
//	    b: [{type: dcim.frontport, id: 4}]
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"inventoryviewer/internal/domain"

	"gopkg.in/yaml.v3"
)

// InventoryYAML represents the YAML file structure
type InventoryYAML struct {
	Source          string                     `yaml:"source,omitempty"`
	Sites           []domain.Site              `yaml:"sites,omitempty"`
	Locations       []domain.Location          `yaml:"locations,omitempty"`
	Devices         []domain.DeviceRecord      `yaml:"devices,omitempty"`
	VirtualMachines []domain.VirtualMachine    `yaml:"virtual_machines,omitempty"`
	ModuleTypes     []domain.ModuleType        `yaml:"module_types,omitempty"`
	Modules         []domain.ModuleRecord      `yaml:"modules,omitempty"`
	Interfaces      []domain.PortRecord        `yaml:"interfaces,omitempty"`
	FrontPorts      []domain.PortRecord        `yaml:"front_ports,omitempty"`
	RearPorts       []domain.PortRecord        `yaml:"rear_ports,omitempty"`
	VMInterfaces    []domain.VMInterfaceRecord `yaml:"vm_interfaces,omitempty"`
	Cables          []CableYAML                `yaml:"cables,omitempty"`
}

// CableYAML represents a cable and its terminations per side
type CableYAML struct {
	ID    int64             `yaml:"id"`
	Label string            `yaml:"label,omitempty"`
	A     []TerminationYAML `yaml:"a,omitempty"`
	B     []TerminationYAML `yaml:"b,omitempty"`
}

// TerminationYAML references a port or interface by type and id
type TerminationYAML struct {
	Type string `yaml:"type"`
	ID   int64  `yaml:"id"`
}

// LoadFile loads a snapshot from a YAML file. The snapshot source defaults
// to the file path.
func LoadFile(path string) (*domain.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer f.Close()

	snap, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if snap.Source == "" {
		snap.Source = path
	}
	return snap, nil
}

// Parse decodes and validates a YAML snapshot
func Parse(r io.Reader) (*domain.Snapshot, error) {
	var y InventoryYAML
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&y); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	snap := convertYAMLToSnapshot(&y)
	if err := Validate(snap); err != nil {
		return nil, err
	}
	return snap, nil
}

func convertYAMLToSnapshot(y *InventoryYAML) *domain.Snapshot {
	snap := &domain.Snapshot{
		Source:          y.Source,
		Sites:           y.Sites,
		Locations:       y.Locations,
		Devices:         y.Devices,
		VirtualMachines: y.VirtualMachines,
		ModuleTypes:     y.ModuleTypes,
		Modules:         y.Modules,
		Interfaces:      y.Interfaces,
		FrontPorts:      y.FrontPorts,
		RearPorts:       y.RearPorts,
		VMInterfaces:    y.VMInterfaces,
	}

	for _, c := range y.Cables {
		cable := domain.Cable{ID: c.ID, Label: c.Label}
		for _, t := range c.A {
			cable.Terminations = append(cable.Terminations, convertTermination(c.ID, domain.CableEndA, t))
		}
		for _, t := range c.B {
			cable.Terminations = append(cable.Terminations, convertTermination(c.ID, domain.CableEndB, t))
		}
		snap.Cables = append(snap.Cables, cable)
	}

	return snap
}

func convertTermination(cableID int64, end domain.CableEnd, t TerminationYAML) domain.CableTermination {
	return domain.CableTermination{
		CableID:  cableID,
		End:      end,
		Type:     domain.TerminationType(t.Type),
		ObjectID: t.ID,
	}
}
