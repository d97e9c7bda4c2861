// Package database provides connection management, startup table creation,
// configuration types, logging, health checks, SQL error classification,
// and query hooks built on top of Bun.
package database
