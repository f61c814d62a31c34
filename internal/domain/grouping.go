package domain

import "sort"

// ModuleGroup holds the modules sharing one module type
type ModuleGroup struct {
	Type    ModuleType `json:"type"`
	Modules []Module   `json:"modules"`
}

// GroupByType partitions modules by module type id. Each module ends up in
// exactly one group, in input order. Groups are sorted by display name,
// then id.
func GroupByType(modules []Module) []ModuleGroup {
	index := make(map[int64]int)
	var groups []ModuleGroup

	for _, m := range modules {
		i, ok := index[m.ModuleType.ID]
		if !ok {
			i = len(groups)
			index[m.ModuleType.ID] = i
			groups = append(groups, ModuleGroup{Type: m.ModuleType})
		}
		groups[i].Modules = append(groups[i].Modules, m)
	}

	sort.SliceStable(groups, func(a, b int) bool {
		na, nb := groups[a].Type.DisplayName(), groups[b].Type.DisplayName()
		if na != nb {
			return na < nb
		}
		return groups[a].Type.ID < groups[b].Type.ID
	})

	return groups
}
