// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, persistence, broadcast.
//
// Unlike a transactional design, handlers here write to the store and then
// publish to subscribers as two independent steps. A crash between the two
// leaves a committed state change that was never announced; connected
// terminals recover by refetching the order list. This matches the store
// contract, which offers no transaction spanning a write and its broadcast.
package commands
