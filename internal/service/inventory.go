package service

import (
	"context"
	"fmt"

	"inventoryviewer/internal/domain"
	"inventoryviewer/internal/repository"

	"go.uber.org/zap"
)

// FieldKeys names the custom fields behind the "Datum" and "Měřicí bod"
// columns
type FieldKeys struct {
	YearIntroduced   string
	MeasurementPoint string
}

// DefaultFieldKeys returns the host's custom field names
func DefaultFieldKeys() FieldKeys {
	return FieldKeys{
		YearIntroduced:   domain.CustomFieldYearIntroduced,
		MeasurementPoint: domain.CustomFieldMeasurementPoint,
	}
}

// Overview is everything the inventory page shows
type Overview struct {
	Tables      []domain.ModuleTable `json:"tables"`
	ModuleCount int                  `json:"module_count"`
	LastImport  *domain.ImportInfo   `json:"last_import,omitempty"`
}

// InventoryService renders modules into per-type tables
type InventoryService struct {
	repo   repository.Reader
	fields FieldKeys
	logger *zap.Logger
}

// NewInventoryService creates a new inventory service
func NewInventoryService(repo repository.Reader, fields FieldKeys, logger *zap.Logger) *InventoryService {
	if fields.YearIntroduced == "" {
		fields.YearIntroduced = domain.CustomFieldYearIntroduced
	}
	if fields.MeasurementPoint == "" {
		fields.MeasurementPoint = domain.CustomFieldMeasurementPoint
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InventoryService{
		repo:   repo,
		fields: fields,
		logger: logger,
	}
}

// Overview loads every module, groups them by type and renders the tables
func (s *InventoryService) Overview(ctx context.Context) (*Overview, error) {
	tables, count, err := s.tables(ctx)
	if err != nil {
		return nil, err
	}

	lastImport, err := s.repo.LastImport(ctx)
	if err != nil {
		return nil, err
	}

	return &Overview{
		Tables:      tables,
		ModuleCount: count,
		LastImport:  lastImport,
	}, nil
}

// Tables returns one rendered table per module type
func (s *InventoryService) Tables(ctx context.Context) ([]domain.ModuleTable, error) {
	tables, _, err := s.tables(ctx)
	return tables, err
}

func (s *InventoryService) tables(ctx context.Context) ([]domain.ModuleTable, int, error) {
	modules, err := s.repo.ListModules(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list modules: %w", err)
	}

	groups := domain.GroupByType(modules)
	tables := make([]domain.ModuleTable, 0, len(groups))
	for _, g := range groups {
		table := domain.ModuleTable{
			Type: g.Type,
			Rows: make([]domain.ModuleRow, 0, len(g.Modules)),
		}
		for i := range g.Modules {
			row, err := s.Row(ctx, &g.Modules[i])
			if err != nil {
				return nil, 0, err
			}
			table.Rows = append(table.Rows, row)
		}
		tables = append(tables, table)
	}

	s.logger.Debug("Rendered inventory tables",
		zap.Int("modules", len(modules)),
		zap.Int("types", len(tables)))

	return tables, len(modules), nil
}

// Row renders the seven table columns for one module
func (s *InventoryService) Row(ctx context.Context, m *domain.Module) (domain.ModuleRow, error) {
	connectivity, err := s.Connectivity(ctx, m)
	if err != nil {
		return domain.ModuleRow{}, fmt.Errorf("module %d: %w", m.ID, err)
	}

	return domain.ModuleRow{
		ModuleID:         m.ID,
		Serial:           m.Serial,
		YearIntroduced:   m.CustomFields.String(s.fields.YearIntroduced),
		AssetTag:         m.AssetTag,
		Location:         domain.LocationLabel(m.Device),
		Connectivity:     connectivity,
		Comments:         m.Comments,
		MeasurementPoint: m.CustomFields.String(s.fields.MeasurementPoint),
	}, nil
}

// Connectivity describes every cable attached to the module's front ports,
// rear ports and interfaces, joined with "; ". Cables with no terminations
// or more than two are skipped.
func (s *InventoryService) Connectivity(ctx context.Context, m *domain.Module) (string, error) {
	if m.Device == nil {
		return "", nil
	}

	cables, err := s.repo.ListModuleCables(ctx, m)
	if err != nil {
		return "", err
	}

	lines := make([]string, 0, len(cables))
	for _, cable := range cables {
		if !cable.Displayable() {
			s.logger.Debug("Skipping cable",
				zap.Int64("module", m.ID),
				zap.Int64("cable", cable.ID),
				zap.Int("terminations", len(cable.Terminations)))
			continue
		}

		endpoints := make([]domain.Endpoint, 0, len(cable.Terminations))
		for _, term := range cable.Terminations {
			endpoint, err := s.repo.ResolveTermination(ctx, term)
			if err != nil {
				return "", fmt.Errorf("cable %d: %w", cable.ID, err)
			}
			endpoints = append(endpoints, endpoint)
		}

		if line, ok := domain.DescribeCable(endpoints); ok {
			lines = append(lines, line)
		}
	}

	return domain.JoinConnections(lines), nil
}
