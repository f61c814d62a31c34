package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"inventoryviewer/internal/domain"
	"inventoryviewer/internal/repository"

	_ "modernc.org/sqlite"
)

// Repository implements repository.Repository using SQLite
type Repository struct {
	db *sql.DB
}

var _ repository.Repository = (*Repository)(nil)

// New opens (or creates) the SQLite store at dbPath and migrates the schema
func New(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One connection: pragmas are per connection and ":memory:" databases
	// are private to the connection that created them.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON; PRAGMA busy_timeout = 5000; PRAGMA journal_mode = WAL;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to configure database: %w", err)
	}

	repo := &Repository{db: db}
	if err := repo.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return repo, nil
}

// Close closes the database connection
func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS dcim_site (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS dcim_location (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		site_id INTEGER REFERENCES dcim_site(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS dcim_device (
		id INTEGER PRIMARY KEY,
		name TEXT,
		site_id INTEGER REFERENCES dcim_site(id) ON DELETE SET NULL,
		location_id INTEGER REFERENCES dcim_location(id) ON DELETE SET NULL
	);

	CREATE TABLE IF NOT EXISTS virtualization_virtualmachine (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS dcim_moduletype (
		id INTEGER PRIMARY KEY,
		manufacturer TEXT,
		model TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS dcim_module (
		id INTEGER PRIMARY KEY,
		device_id INTEGER REFERENCES dcim_device(id) ON DELETE SET NULL,
		module_type_id INTEGER NOT NULL REFERENCES dcim_moduletype(id),
		serial TEXT NOT NULL DEFAULT '',
		asset_tag TEXT,
		comments TEXT NOT NULL DEFAULT '',
		custom_field_data JSON
	);

	CREATE TABLE IF NOT EXISTS dcim_cable (
		id INTEGER PRIMARY KEY,
		label TEXT
	);

	CREATE TABLE IF NOT EXISTS dcim_interface (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		device_id INTEGER REFERENCES dcim_device(id) ON DELETE CASCADE,
		module_id INTEGER REFERENCES dcim_module(id) ON DELETE SET NULL,
		cable_id INTEGER REFERENCES dcim_cable(id) ON DELETE SET NULL
	);

	CREATE TABLE IF NOT EXISTS dcim_frontport (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		device_id INTEGER REFERENCES dcim_device(id) ON DELETE CASCADE,
		module_id INTEGER REFERENCES dcim_module(id) ON DELETE SET NULL,
		cable_id INTEGER REFERENCES dcim_cable(id) ON DELETE SET NULL
	);

	CREATE TABLE IF NOT EXISTS dcim_rearport (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		device_id INTEGER REFERENCES dcim_device(id) ON DELETE CASCADE,
		module_id INTEGER REFERENCES dcim_module(id) ON DELETE SET NULL,
		cable_id INTEGER REFERENCES dcim_cable(id) ON DELETE SET NULL
	);

	CREATE TABLE IF NOT EXISTS virtualization_vminterface (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		virtual_machine_id INTEGER REFERENCES virtualization_virtualmachine(id) ON DELETE CASCADE,
		cable_id INTEGER REFERENCES dcim_cable(id) ON DELETE SET NULL
	);

	CREATE TABLE IF NOT EXISTS dcim_cabletermination (
		id INTEGER PRIMARY KEY,
		cable_id INTEGER NOT NULL REFERENCES dcim_cable(id) ON DELETE CASCADE,
		cable_end TEXT NOT NULL,
		termination_type TEXT NOT NULL,
		termination_id INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS metadata (
		key TEXT PRIMARY KEY,
		value JSON NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_module_type ON dcim_module(module_type_id);
	CREATE INDEX IF NOT EXISTS idx_interface_module ON dcim_interface(device_id, module_id);
	CREATE INDEX IF NOT EXISTS idx_frontport_module ON dcim_frontport(device_id, module_id);
	CREATE INDEX IF NOT EXISTS idx_rearport_module ON dcim_rearport(device_id, module_id);
	CREATE INDEX IF NOT EXISTS idx_cabletermination_cable ON dcim_cabletermination(cable_id);
	`

	_, err := r.db.Exec(schema)
	return err
}

// ListModules returns every module with its relations populated
func (r *Repository) ListModules(ctx context.Context) ([]domain.Module, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+moduleColumns+moduleFrom+` ORDER BY m.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query modules: %w", err)
	}
	defer rows.Close()

	var modules []domain.Module
	for rows.Next() {
		var row moduleRow
		if err := rows.Scan(row.scanArgs()...); err != nil {
			return nil, fmt.Errorf("failed to scan module: %w", err)
		}
		module, err := row.toDomain()
		if err != nil {
			return nil, fmt.Errorf("module %d: %w", row.ID, err)
		}
		modules = append(modules, *module)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating modules: %w", err)
	}

	return modules, nil
}

// GetModule returns a single module by id
func (r *Repository) GetModule(ctx context.Context, id int64) (*domain.Module, error) {
	var row moduleRow
	err := r.db.QueryRowContext(ctx, `SELECT `+moduleColumns+moduleFrom+` WHERE m.id = ?`, id).Scan(row.scanArgs()...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("module %d: %w", id, repository.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get module: %w", err)
	}
	return row.toDomain()
}

// ListModuleCables returns the distinct cables reachable from the module's
// ports and interfaces. Modules without a device have none.
func (r *Repository) ListModuleCables(ctx context.Context, module *domain.Module) ([]domain.Cable, error) {
	if module == nil || module.Device == nil {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, label FROM dcim_cable WHERE id IN (
			SELECT cable_id FROM dcim_frontport
			WHERE device_id = ?1 AND module_id = ?2 AND cable_id IS NOT NULL
			UNION
			SELECT cable_id FROM dcim_rearport
			WHERE device_id = ?1 AND module_id = ?2 AND cable_id IS NOT NULL
			UNION
			SELECT cable_id FROM dcim_interface
			WHERE device_id = ?1 AND module_id = ?2 AND cable_id IS NOT NULL
		)
		ORDER BY id
	`, module.Device.ID, module.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cables: %w", err)
	}

	var cables []domain.Cable
	for rows.Next() {
		var (
			cable domain.Cable
			label sql.NullString
		)
		if err := rows.Scan(&cable.ID, &label); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan cable: %w", err)
		}
		cable.Label = nullToString(label)
		cables = append(cables, cable)
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return nil, fmt.Errorf("error iterating cables: %w", err)
	}

	// Rows must be closed before the next query: the pool holds one connection.
	for i := range cables {
		terms, err := r.listTerminations(ctx, cables[i].ID)
		if err != nil {
			return nil, err
		}
		cables[i].Terminations = terms
	}

	return cables, nil
}

func (r *Repository) listTerminations(ctx context.Context, cableID int64) ([]domain.CableTermination, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+terminationColumns+`
		FROM dcim_cabletermination
		WHERE cable_id = ?
		ORDER BY cable_end, id
	`, cableID)
	if err != nil {
		return nil, fmt.Errorf("failed to query terminations of cable %d: %w", cableID, err)
	}
	defer rows.Close()

	var terms []domain.CableTermination
	for rows.Next() {
		var row terminationRow
		if err := rows.Scan(row.scanArgs()...); err != nil {
			return nil, fmt.Errorf("failed to scan termination: %w", err)
		}
		terms = append(terms, row.toDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating terminations: %w", err)
	}
	return terms, nil
}

// terminationQueries selects (name, owner id, owner name) for each
// supported termination type
var terminationQueries = map[domain.TerminationType]string{
	domain.TerminationInterface: `
		SELECT t.name, d.id, d.name FROM dcim_interface t
		LEFT JOIN dcim_device d ON d.id = t.device_id
		WHERE t.id = ?`,
	domain.TerminationVMInterface: `
		SELECT t.name, v.id, v.name FROM virtualization_vminterface t
		LEFT JOIN virtualization_virtualmachine v ON v.id = t.virtual_machine_id
		WHERE t.id = ?`,
	domain.TerminationFrontPort: `
		SELECT t.name, d.id, d.name FROM dcim_frontport t
		LEFT JOIN dcim_device d ON d.id = t.device_id
		WHERE t.id = ?`,
	domain.TerminationRearPort: `
		SELECT t.name, d.id, d.name FROM dcim_rearport t
		LEFT JOIN dcim_device d ON d.id = t.device_id
		WHERE t.id = ?`,
}

// ResolveTermination loads the port or interface a termination points at.
// Types without a table resolve to a bare endpoint carrying only kind and id.
func (r *Repository) ResolveTermination(ctx context.Context, term domain.CableTermination) (domain.Endpoint, error) {
	endpoint := domain.Endpoint{Kind: term.Type, ID: term.ObjectID}

	query, ok := terminationQueries[term.Type]
	if !ok {
		return endpoint, nil
	}

	var (
		ownerID   sql.NullInt64
		ownerName sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, term.ObjectID).Scan(&endpoint.Name, &ownerID, &ownerName)
	if errors.Is(err, sql.ErrNoRows) {
		return endpoint, fmt.Errorf("%s %d: %w", term.Type, term.ObjectID, repository.ErrNotFound)
	}
	if err != nil {
		return endpoint, fmt.Errorf("failed to resolve %s %d: %w", term.Type, term.ObjectID, err)
	}

	endpoint.HasOwner = ownerID.Valid
	endpoint.Owner = nullToString(ownerName)
	return endpoint, nil
}

const lastImportKey = "last_import"

// LastImport returns the metadata recorded by the most recent import
func (r *Repository) LastImport(ctx context.Context) (*domain.ImportInfo, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, lastImportKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last import: %w", err)
	}

	var info domain.ImportInfo
	if err := json.Unmarshal([]byte(value), &info); err != nil {
		return nil, fmt.Errorf("unmarshal last import: %w", err)
	}
	return &info, nil
}

// inventoryTables in delete order (dependents first)
var inventoryTables = []string{
	"dcim_cabletermination",
	"dcim_interface",
	"dcim_frontport",
	"dcim_rearport",
	"virtualization_vminterface",
	"dcim_cable",
	"dcim_module",
	"dcim_moduletype",
	"dcim_device",
	"dcim_location",
	"dcim_site",
	"virtualization_virtualmachine",
}

// ImportSnapshot replaces every inventory table with the snapshot contents.
// Port cable ids are derived from the cable terminations.
func (r *Repository) ImportSnapshot(ctx context.Context, snap *domain.Snapshot) (*domain.ImportInfo, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range inventoryTables {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return nil, fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for _, s := range snap.Sites {
		if _, err := tx.ExecContext(ctx, `INSERT INTO dcim_site (id, name) VALUES (?, ?)`, s.ID, s.Name); err != nil {
			return nil, fmt.Errorf("failed to insert site %d: %w", s.ID, err)
		}
	}

	for _, l := range snap.Locations {
		if _, err := tx.ExecContext(ctx, `INSERT INTO dcim_location (id, name, site_id) VALUES (?, ?, ?)`,
			l.ID, l.Name, idToNull(l.SiteID)); err != nil {
			return nil, fmt.Errorf("failed to insert location %d: %w", l.ID, err)
		}
	}

	for _, d := range snap.Devices {
		if _, err := tx.ExecContext(ctx, `INSERT INTO dcim_device (id, name, site_id, location_id) VALUES (?, ?, ?, ?)`,
			d.ID, stringToNull(d.Name), idToNull(d.SiteID), idToNull(d.LocationID)); err != nil {
			return nil, fmt.Errorf("failed to insert device %d: %w", d.ID, err)
		}
	}

	for _, vm := range snap.VirtualMachines {
		if _, err := tx.ExecContext(ctx, `INSERT INTO virtualization_virtualmachine (id, name) VALUES (?, ?)`,
			vm.ID, vm.Name); err != nil {
			return nil, fmt.Errorf("failed to insert virtual machine %d: %w", vm.ID, err)
		}
	}

	for _, mt := range snap.ModuleTypes {
		if _, err := tx.ExecContext(ctx, `INSERT INTO dcim_moduletype (id, manufacturer, model) VALUES (?, ?, ?)`,
			mt.ID, stringToNull(mt.Manufacturer), mt.Model); err != nil {
			return nil, fmt.Errorf("failed to insert module type %d: %w", mt.ID, err)
		}
	}

	for _, m := range snap.Modules {
		args, err := moduleInsertArgs(&m)
		if err != nil {
			return nil, fmt.Errorf("module %d: %w", m.ID, err)
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO dcim_module (id, device_id, module_type_id, serial, asset_tag, comments, custom_field_data)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, args...); err != nil {
			return nil, fmt.Errorf("failed to insert module %d: %w", m.ID, err)
		}
	}

	cableOf := make(map[terminationKey]int64)
	for _, c := range snap.Cables {
		if _, err := tx.ExecContext(ctx, `INSERT INTO dcim_cable (id, label) VALUES (?, ?)`,
			c.ID, stringToNull(c.Label)); err != nil {
			return nil, fmt.Errorf("failed to insert cable %d: %w", c.ID, err)
		}
		for _, t := range c.Terminations {
			cableOf[terminationKey{t.Type, t.ObjectID}] = c.ID
		}
	}

	ports := []struct {
		table string
		kind  domain.TerminationType
		rows  []domain.PortRecord
	}{
		{"dcim_interface", domain.TerminationInterface, snap.Interfaces},
		{"dcim_frontport", domain.TerminationFrontPort, snap.FrontPorts},
		{"dcim_rearport", domain.TerminationRearPort, snap.RearPorts},
	}
	for _, set := range ports {
		for _, p := range set.rows {
			if _, err := tx.ExecContext(ctx, `INSERT INTO `+set.table+` (id, name, device_id, module_id, cable_id) VALUES (?, ?, ?, ?, ?)`,
				p.ID, p.Name, idToNull(p.DeviceID), idToNull(p.ModuleID), idToNull(cableOf[terminationKey{set.kind, p.ID}])); err != nil {
				return nil, fmt.Errorf("failed to insert %s %d: %w", set.kind, p.ID, err)
			}
		}
	}

	for _, vi := range snap.VMInterfaces {
		if _, err := tx.ExecContext(ctx, `INSERT INTO virtualization_vminterface (id, name, virtual_machine_id, cable_id) VALUES (?, ?, ?, ?)`,
			vi.ID, vi.Name, idToNull(vi.VirtualMachineID), idToNull(cableOf[terminationKey{domain.TerminationVMInterface, vi.ID}])); err != nil {
			return nil, fmt.Errorf("failed to insert vm interface %d: %w", vi.ID, err)
		}
	}

	for _, c := range snap.Cables {
		for _, t := range c.Terminations {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO dcim_cabletermination (id, cable_id, cable_end, termination_type, termination_id)
				VALUES (?, ?, ?, ?, ?)
			`, idToNull(t.ID), c.ID, string(t.End), string(t.Type), t.ObjectID); err != nil {
				return nil, fmt.Errorf("failed to insert termination of cable %d: %w", c.ID, err)
			}
		}
	}

	info := &domain.ImportInfo{
		Source:     snap.Source,
		ImportedAt: time.Now().UTC(),
		Modules:    len(snap.Modules),
		Cables:     len(snap.Cables),
	}
	value, err := json.Marshal(info)
	if err != nil {
		return nil, fmt.Errorf("marshal import info: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO metadata (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, lastImportKey, string(value)); err != nil {
		return nil, fmt.Errorf("failed to record import: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit import: %w", err)
	}

	return info, nil
}

type terminationKey struct {
	kind domain.TerminationType
	id   int64
}

// Stats returns row counts per inventory table, keyed by table name
func (r *Repository) Stats(ctx context.Context) (map[string]int, error) {
	stats := make(map[string]int, len(inventoryTables))
	for _, table := range inventoryTables {
		var n int
		if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", table, err)
		}
		stats[table] = n
	}
	return stats, nil
}
