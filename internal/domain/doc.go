// Package domain defines the core domain types for the Inventory Viewer.
//
// The types mirror the records of the host inventory application that the
// viewer reads: sites, locations, devices, virtual machines, module types,
// modules, ports, interfaces and cables. None of them are ever written by the
// viewer itself.
//
// # Core Types
//
// Module is a hardware unit installed in a device. It carries a serial
// number, an asset tag, free-text comments and a CustomFields mapping.
//
// Cable joins up to two CableTermination records. Each termination points at
// a concrete port or interface by a (TerminationType, ID) pair.
//
// Endpoint is the resolved form of a termination. It is a tagged variant:
// the Kind field selects the describer used to format it.
//
// # Formatting
//
// LocationLabel, Endpoint.Describe, DescribeCable and JoinConnections
// produce the strings shown in the inventory table. Missing data always
// degrades to an empty string or a placeholder, never to an error.
//
// # Grouping
//
// GroupByType partitions modules by module type in a single pass.
//
// # Design Principles
//
// - No database or external dependencies
// - Pure formatting functions, easy to test in isolation
// - Rich type system with meaningful constants
package domain
