// Package service implements the read logic of the Inventory Viewer.
//
// InventoryService turns the modules held by the store into one table per
// module type. For each module it renders the serial number, the custom
// fields, the location label and the connectivity column. Connectivity is
// built by collecting the cables attached to the module's ports, resolving
// each cable termination to an endpoint and describing the endpoints.
//
// SnapshotService loads YAML snapshots into the store. It is used by the
// import command and by the snapshot watcher; the inventory page itself
// never writes.
//
// # Design Principles
//
// - Services depend on repository interfaces, not on SQLite
// - Missing data degrades to empty strings; store failures are returned
// - Context-aware for cancellation and timeouts
package service
