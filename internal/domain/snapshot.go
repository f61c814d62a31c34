package domain

import "time"

// DeviceRecord is the stored form of a device, with references by id
type DeviceRecord struct {
	ID         int64  `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	SiteID     int64  `json:"site_id,omitempty" yaml:"site_id,omitempty"`
	LocationID int64  `json:"location_id,omitempty" yaml:"location_id,omitempty"`
}

// ModuleRecord is the stored form of a module, with references by id
type ModuleRecord struct {
	ID           int64        `json:"id" yaml:"id"`
	DeviceID     int64        `json:"device_id,omitempty" yaml:"device_id,omitempty"`
	ModuleTypeID int64        `json:"module_type_id" yaml:"module_type_id"`
	Serial       string       `json:"serial,omitempty" yaml:"serial,omitempty"`
	AssetTag     string       `json:"asset_tag,omitempty" yaml:"asset_tag,omitempty"`
	Comments     string       `json:"comments,omitempty" yaml:"comments,omitempty"`
	CustomFields CustomFields `json:"custom_fields,omitempty" yaml:"custom_fields,omitempty"`
}

// PortRecord is the stored form of a device interface, front port or rear
// port. Zero ids mean "not set".
type PortRecord struct {
	ID       int64  `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	DeviceID int64  `json:"device_id,omitempty" yaml:"device_id,omitempty"`
	ModuleID int64  `json:"module_id,omitempty" yaml:"module_id,omitempty"`
}

// VMInterfaceRecord is the stored form of a virtual machine interface
type VMInterfaceRecord struct {
	ID               int64  `json:"id" yaml:"id"`
	Name             string `json:"name" yaml:"name"`
	VirtualMachineID int64  `json:"virtual_machine_id,omitempty" yaml:"virtual_machine_id,omitempty"`
}

// Snapshot is a complete copy of the inventory records the viewer reads
type Snapshot struct {
	Source          string              `json:"source,omitempty"`
	Sites           []Site              `json:"sites,omitempty"`
	Locations       []Location          `json:"locations,omitempty"`
	Devices         []DeviceRecord      `json:"devices,omitempty"`
	VirtualMachines []VirtualMachine    `json:"virtual_machines,omitempty"`
	ModuleTypes     []ModuleType        `json:"module_types,omitempty"`
	Modules         []ModuleRecord      `json:"modules,omitempty"`
	Interfaces      []PortRecord        `json:"interfaces,omitempty"`
	FrontPorts      []PortRecord        `json:"front_ports,omitempty"`
	RearPorts       []PortRecord        `json:"rear_ports,omitempty"`
	VMInterfaces    []VMInterfaceRecord `json:"vm_interfaces,omitempty"`
	Cables          []Cable             `json:"cables,omitempty"`
}

// ImportInfo describes the last snapshot loaded into the store
type ImportInfo struct {
	Source     string    `json:"source"`
	ImportedAt time.Time `json:"imported_at"`
	Modules    int       `json:"modules"`
	Cables     int       `json:"cables"`
}
