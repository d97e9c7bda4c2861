// Package repository provides a generic repository abstraction built on Bun
// for CRUD operations, equality filtering over allow-listed fields, and
// offset/limit pagination with pre-window totals.
package repository
