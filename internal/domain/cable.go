package domain

import (
	"fmt"
	"strings"
)

// TerminationType identifies the kind of object a cable end is attached to.
// Values follow the host's "<app>.<model>" content type names.
type TerminationType string

const (
	TerminationInterface   TerminationType = "dcim.interface"
	TerminationVMInterface TerminationType = "virtualization.vminterface"
	TerminationFrontPort   TerminationType = "dcim.frontport"
	TerminationRearPort    TerminationType = "dcim.rearport"
)

// TerminationTypes lists every supported termination type
var TerminationTypes = []TerminationType{
	TerminationInterface,
	TerminationVMInterface,
	TerminationFrontPort,
	TerminationRearPort,
}

// Valid reports whether t is one of the supported termination types
func (t TerminationType) Valid() bool {
	for _, known := range TerminationTypes {
		if t == known {
			return true
		}
	}
	return false
}

// CableEnd is the side of a cable a termination sits on
type CableEnd string

const (
	CableEndA CableEnd = "A"
	CableEndB CableEnd = "B"
)

// CableTermination is one endpoint of a cable, referencing a port or
// interface polymorphically by type and id
type CableTermination struct {
	ID       int64           `json:"id"`
	CableID  int64           `json:"cable_id"`
	End      CableEnd        `json:"cable_end"`
	Type     TerminationType `json:"termination_type"`
	ObjectID int64           `json:"termination_id"`
}

// Cable connects up to two terminations
type Cable struct {
	ID           int64              `json:"id"`
	Label        string             `json:"label,omitempty"`
	Terminations []CableTermination `json:"terminations,omitempty"`
}

// Displayable reports whether the cable has one or two terminations.
// Cables with none or more than two are left out of the table.
func (c *Cable) Displayable() bool {
	n := len(c.Terminations)
	return n >= 1 && n <= 2
}

// Placeholders used when an endpoint has no owner
const (
	NoDevicePlaceholder     = "(No device)"
	NoVMPlaceholder         = "(No VM)"
	PortNoDevicePlaceholder = "(Port no device)"

	// Unconnected marks the missing side of a half-terminated cable
	Unconnected = "(nezapojeno)"

	endpointSeparator   = " <-> "
	connectionSeparator = "; "
)

// Endpoint is a resolved cable termination. Kind is the variant tag; Owner
// is the device name for interfaces and ports, or the virtual machine name
// for VM interfaces.
type Endpoint struct {
	Kind     TerminationType `json:"kind"`
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Owner    string          `json:"owner,omitempty"`
	HasOwner bool            `json:"has_owner"`
}

type endpointDescriber func(Endpoint) string

var endpointDescribers = map[TerminationType]endpointDescriber{
	TerminationInterface:   ownedBy(NoDevicePlaceholder),
	TerminationVMInterface: ownedBy(NoVMPlaceholder),
	TerminationFrontPort:   ownedBy(PortNoDevicePlaceholder),
	TerminationRearPort:    ownedBy(PortNoDevicePlaceholder),
}

func ownedBy(placeholder string) endpointDescriber {
	return func(e Endpoint) string {
		if e.HasOwner {
			return e.Owner + "/" + e.Name
		}
		return placeholder + "/" + e.Name
	}
}

// Describe renders the endpoint as "<owner>/<name>"
func (e Endpoint) Describe() string {
	if describe, ok := endpointDescribers[e.Kind]; ok {
		return describe(e)
	}
	if e.Name != "" {
		return e.Name
	}
	return fmt.Sprintf("%s#%d", e.Kind, e.ID)
}

// DescribeCable renders one cable line from its resolved endpoints:
// "A <-> B" for two, "A <-> (nezapojeno)" for one. Any other count
// returns false.
func DescribeCable(endpoints []Endpoint) (string, bool) {
	switch len(endpoints) {
	case 1:
		return endpoints[0].Describe() + endpointSeparator + Unconnected, true
	case 2:
		return endpoints[0].Describe() + endpointSeparator + endpoints[1].Describe(), true
	default:
		return "", false
	}
}

// JoinConnections joins per-cable lines into the "Propoj" column
func JoinConnections(lines []string) string {
	return strings.Join(lines, connectionSeparator)
}
