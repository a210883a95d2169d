package domain

import "time"

// WorkerStatus is the idle-timer state of a hired hand.
type WorkerStatus string

const (
	WorkerFree    WorkerStatus = "free"
	WorkerWorking WorkerStatus = "working"
)

// Worker is an idle-timer entity. It transitions back to Free lazily once
// current time reaches EndsAt; no callback is ever scheduled for it.
type Worker struct {
	ID        int          `json:"id"`
	Status    WorkerStatus `json:"status"`
	StartedAt time.Time    `json:"started_at,omitzero"`
	EndsAt    time.Time    `json:"ends_at,omitzero"`
	Wage      int64        `json:"wage,omitempty"`
}

// NewWorker returns a free worker with the given id.
func NewWorker(id int) Worker {
	return Worker{ID: id, Status: WorkerFree}
}

// ShiftDone reports whether a working shift has lapsed at now.
func (w *Worker) ShiftDone(now time.Time) bool {
	return w.Status == WorkerWorking && !now.Before(w.EndsAt)
}

// Release clears shift state and returns the worker to Free.
func (w *Worker) Release() {
	w.Status = WorkerFree
	w.StartedAt = time.Time{}
	w.EndsAt = time.Time{}
	w.Wage = 0
}
