// Package jobs tracks the state of per-file processing jobs.
package jobs

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Status represents the lifecycle of one report job.
type Status string

const (
	Queued    Status = "queued"
	Running   Status = "running"
	Completed Status = "completed"
	Skipped   Status = "skipped"
	Failed    Status = "failed"
)

// Job keeps track of one input file while it is processed.
type Job struct {
	ID        string
	Sample    string
	Name      string
	Status    Status
	Rows      int
	Unmatched int
	Error     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Manager stores job states indexed by job ID. Safe for concurrent use.
type Manager struct {
	mu   sync.RWMutex
	jobs map[string]*Job
}

// NewManager constructs a job manager with no jobs.
func NewManager() *Manager {
	return &Manager{
		jobs: make(map[string]*Job),
	}
}

// NewJob registers a queued job for a sample's input file.
func (m *Manager) NewJob(sample, name string) *Job {
	now := time.Now()
	job := &Job{
		ID:        uuid.New().String(),
		Sample:    sample,
		Name:      name,
		Status:    Queued,
		CreatedAt: now,
		UpdatedAt: now,
	}

	m.mu.Lock()
	m.jobs[job.ID] = job
	m.mu.Unlock()
	return job
}

// SetRunning marks the job as running.
func (m *Manager) SetRunning(jobID string) {
	m.updateJob(jobID, func(job *Job) {
		job.Status = Running
	})
}

// Complete stores row counts and marks the job complete.
func (m *Manager) Complete(jobID string, rows, unmatched int) {
	m.updateJob(jobID, func(job *Job) {
		job.Status = Completed
		job.Rows = rows
		job.Unmatched = unmatched
	})
}

// Skip marks a job that produced nothing to write.
func (m *Manager) Skip(jobID string, reason string) {
	m.updateJob(jobID, func(job *Job) {
		job.Status = Skipped
		job.Error = reason
	})
}

// Fail records a failure.
func (m *Manager) Fail(jobID string, err error) {
	m.updateJob(jobID, func(job *Job) {
		job.Status = Failed
		job.Error = err.Error()
	})
}

// Get fetches a copy of a job by ID.
func (m *Manager) Get(jobID string) (Job, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	job, ok := m.jobs[jobID]
	if !ok {
		return Job{}, false
	}
	return *job, true
}

// Summary counts jobs per status.
func (m *Manager) Summary() map[Status]int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	counts := make(map[Status]int)
	for _, job := range m.jobs {
		counts[job.Status]++
	}
	return counts
}

// Jobs returns copies of every job ordered by sample then name.
func (m *Manager) Jobs() []Job {
	m.mu.RLock()
	out := make([]Job, 0, len(m.jobs))
	for _, job := range m.jobs {
		out = append(out, *job)
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Sample != out[j].Sample {
			return out[i].Sample < out[j].Sample
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func (m *Manager) updateJob(jobID string, update func(job *Job)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.jobs[jobID]
	if !ok {
		return
	}

	update(job)
	job.UpdatedAt = time.Now()
}
