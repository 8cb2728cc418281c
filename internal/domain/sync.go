package domain

import (
	"time"
)

type (
	SyncStatus string

	// SyncMetadata is the singleton watermark row (fixed key 1). Its status
	// column doubles as a cooperative lock between sync runs.
	SyncMetadata struct {
		LastSyncAt    *time.Time
		LastChangedAt *time.Time
		SyncStatus    SyncStatus
		CreatedAt     time.Time
		UpdatedAt     time.Time
	}
)

const (
	SyncStatusPending    SyncStatus = "pending"
	SyncStatusInProgress SyncStatus = "in_progress"
	SyncStatusSuccess    SyncStatus = "success"
	SyncStatusFailed     SyncStatus = "failed"
)
