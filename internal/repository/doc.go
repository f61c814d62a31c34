// Package repository defines the data access interfaces for the Inventory
// Viewer.
//
// The viewer never writes inventory records while serving requests. Reader
// covers everything the inventory page needs; Repository adds the snapshot
// import used to populate a stand-alone store. The implementation lives in
// the sqlite subpackage.
//
// # SQLite Implementation
//
// Table names mirror the host inventory application (dcim_module,
// dcim_interface, dcim_cabletermination, ...) so a copy of the host's data
// can be queried without translation. Cable terminations are polymorphic:
// each row stores a termination type and an object id, and
// ResolveTermination dispatches on the type to the matching table.
//
// # Testing
//
// The sqlite repository is tested against in-memory databases.
package repository
