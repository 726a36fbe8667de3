// Package order provides domain entities and business logic for parcel order
// tracking in the depot-and-delivery system. It implements the Order entity
// together with its lifecycle status and the per-role view of that lifecycle.
//
// The package includes:
//   - Order: The entity keyed by pieza (tracking code) with its storage slot and status
//   - Status: The enumerated lifecycle states with their Spanish wire strings
//   - Role: The depot and delivery terminal roles, each with a visible status
//     subset and the transitions its user actions may trigger
//   - Tracking-code helpers for the 2-letters + 9-digits + "AR" pieza format
//
// Key business rules:
//   - New orders always start in the "Pedido al Deposito" status
//   - The server enforces status enum membership only; the transition graph
//     is a client-side restriction applied by each role terminal
//   - Duplicate pieza values are allowed: every physical arrival is a new row
//
// The package follows the same Domain-Driven Design conventions as the rest
// of the codebase: private fields, constructor validation, and value-object
// status handling.
package order
