// FILE: internal/entity/admin_entities.go
package entity

import "time"

// DashboardStats aggregates the back-office landing numbers.
type DashboardStats struct {
	TotalTraders        int
	ActiveAcquisitions  int
	PendingRequests     int
	PendingDocuments    int
}

// SystemLogEntry is an audit sink row surfaced to the admin log screen.
type SystemLogEntry struct {
	Id        string
	Data      map[string]interface{}
	CreatedAt time.Time
	ExpiresAt time.Time
}
