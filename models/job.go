package models

import "time"

// SyncJob is one row of the durable delivery queue. Jobs survive process
// restarts and are retried until delivery succeeds, giving the configuration
// path its at-least-once guarantee.
type SyncJob struct {
	// ID is the UUID assigned when the job was enqueued.
	ID string `json:"id"`

	// Message is the outbound unit to deliver.
	Message SyncMessage `json:"message"`

	// Attempts counts how many delivery attempts have been made so far.
	Attempts int `json:"attempts"`

	// CreatedAt is the enqueue timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table backing SyncJob rows.
func (j *SyncJob) TableName() string {
	return "sync_jobs"
}
