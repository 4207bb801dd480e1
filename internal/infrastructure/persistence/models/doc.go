// Package models contains the GORM database models backing the persistence
// repositories, kept apart from the domain entities they map to.
package models
