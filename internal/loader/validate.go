package loader

import (
	"errors"
	"fmt"

	"inventoryviewer/internal/domain"
)

// idSet tracks the ids seen for one record kind
type idSet struct {
	kind string
	ids  map[int64]bool
}

func newIDSet(kind string) *idSet {
	return &idSet{kind: kind, ids: make(map[int64]bool)}
}

func (s *idSet) add(id int64) error {
	if id <= 0 {
		return fmt.Errorf("%s: id must be positive, got %d", s.kind, id)
	}
	if s.ids[id] {
		return fmt.Errorf("%s %d: duplicate id", s.kind, id)
	}
	s.ids[id] = true
	return nil
}

// ref checks an optional reference; zero means unset
func (s *idSet) ref(owner string, id int64) error {
	if id == 0 || s.ids[id] {
		return nil
	}
	return fmt.Errorf("%s: unknown %s %d", owner, s.kind, id)
}

// Validate checks ids and references across the snapshot. All problems are
// reported together.
func Validate(snap *domain.Snapshot) error {
	var errs []error
	check := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	sites := newIDSet("site")
	for _, s := range snap.Sites {
		check(sites.add(s.ID))
	}

	locations := newIDSet("location")
	for _, l := range snap.Locations {
		check(locations.add(l.ID))
		check(sites.ref(fmt.Sprintf("location %d", l.ID), l.SiteID))
	}

	devices := newIDSet("device")
	for _, d := range snap.Devices {
		check(devices.add(d.ID))
		owner := fmt.Sprintf("device %d", d.ID)
		check(sites.ref(owner, d.SiteID))
		check(locations.ref(owner, d.LocationID))
	}

	vms := newIDSet("virtual machine")
	for _, vm := range snap.VirtualMachines {
		check(vms.add(vm.ID))
	}

	moduleTypes := newIDSet("module type")
	for _, mt := range snap.ModuleTypes {
		check(moduleTypes.add(mt.ID))
		if mt.Model == "" {
			errs = append(errs, fmt.Errorf("module type %d: model is required", mt.ID))
		}
	}

	modules := newIDSet("module")
	for _, m := range snap.Modules {
		check(modules.add(m.ID))
		owner := fmt.Sprintf("module %d", m.ID)
		if m.ModuleTypeID == 0 {
			errs = append(errs, fmt.Errorf("%s: module_type_id is required", owner))
		} else {
			check(moduleTypes.ref(owner, m.ModuleTypeID))
		}
		check(devices.ref(owner, m.DeviceID))
	}

	targets := map[domain.TerminationType]*idSet{
		domain.TerminationInterface:   newIDSet(string(domain.TerminationInterface)),
		domain.TerminationFrontPort:   newIDSet(string(domain.TerminationFrontPort)),
		domain.TerminationRearPort:    newIDSet(string(domain.TerminationRearPort)),
		domain.TerminationVMInterface: newIDSet(string(domain.TerminationVMInterface)),
	}

	portSets := []struct {
		kind  domain.TerminationType
		ports []domain.PortRecord
	}{
		{domain.TerminationInterface, snap.Interfaces},
		{domain.TerminationFrontPort, snap.FrontPorts},
		{domain.TerminationRearPort, snap.RearPorts},
	}
	for _, set := range portSets {
		for _, p := range set.ports {
			check(targets[set.kind].add(p.ID))
			owner := fmt.Sprintf("%s %d", set.kind, p.ID)
			check(devices.ref(owner, p.DeviceID))
			check(modules.ref(owner, p.ModuleID))
		}
	}

	for _, vi := range snap.VMInterfaces {
		check(targets[domain.TerminationVMInterface].add(vi.ID))
		check(vms.ref(fmt.Sprintf("%s %d", domain.TerminationVMInterface, vi.ID), vi.VirtualMachineID))
	}

	cables := newIDSet("cable")
	attached := make(map[string]int64)
	for _, c := range snap.Cables {
		check(cables.add(c.ID))
		for _, t := range c.Terminations {
			owner := fmt.Sprintf("cable %d", c.ID)
			set, ok := targets[t.Type]
			if !ok {
				errs = append(errs, fmt.Errorf("%s: unsupported termination type %q", owner, t.Type))
				continue
			}
			if !set.ids[t.ObjectID] {
				errs = append(errs, fmt.Errorf("%s: unknown %s %d", owner, t.Type, t.ObjectID))
				continue
			}
			key := fmt.Sprintf("%s:%d", t.Type, t.ObjectID)
			if other, taken := attached[key]; taken {
				errs = append(errs, fmt.Errorf("%s: %s %d is already attached to cable %d", owner, t.Type, t.ObjectID, other))
				continue
			}
			attached[key] = c.ID
		}
	}

	return errors.Join(errs...)
}
