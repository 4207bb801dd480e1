// Package persistence implements the operation audit repository with GORM
// over SQLite or PostgreSQL.
package persistence
