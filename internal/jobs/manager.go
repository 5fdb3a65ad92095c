package jobs

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/arkodas/mediatrack/internal/catalog"
	"github.com/arkodas/mediatrack/internal/config"
	"github.com/arkodas/mediatrack/internal/store"
	"github.com/arkodas/mediatrack/internal/websocket"
)

// JobContext provides the dependencies a background job needs to run.
// The core.App struct implements this interface.
type JobContext interface {
	Store() store.Store
	Config() *config.Config
	WsHub() *websocket.Hub
	JobManager() *JobManager
	Catalog() *catalog.Client
}

type jobTask func(ctx JobContext)

type JobStatus struct {
	Name      string    `json:"name"`
	Status    string    `json:"status"` // "idle", "running", "success", "failed"
	Message   string    `json:"message"`
	StartTime time.Time `json:"start_time,omitempty"`
	EndTime   time.Time `json:"end_time,omitempty"`
}

type JobManager struct {
	mu      sync.Mutex
	jobs    map[string]jobTask
	status  map[string]*JobStatus
	running bool
}

func NewManager() *JobManager {
	return &JobManager{
		jobs:   make(map[string]jobTask),
		status: make(map[string]*JobStatus),
	}
}

func (jm *JobManager) Register(name string, task jobTask) {
	jm.mu.Lock()
	defer jm.mu.Unlock()
	jm.jobs[name] = task
	jm.status[name] = &JobStatus{Name: name, Status: "idle"}
}

// RunJob starts the named job in the background. Only one job may run at a
// time; a second submission is rejected instead of queued.
func (jm *JobManager) RunJob(name string, ctx JobContext) error {
	jm.mu.Lock()
	if jm.running {
		jm.mu.Unlock()
		return fmt.Errorf("a job is already running")
	}

	task, ok := jm.jobs[name]
	if !ok {
		jm.mu.Unlock()
		return fmt.Errorf("job '%s' not found", name)
	}

	jm.running = true
	status := jm.status[name]
	status.Status = "running"
	status.StartTime = time.Now()
	status.Message = "Job started..."
	jm.mu.Unlock()

	log.Printf("Starting job: %s", name)
	go func() {
		defer func() {
			// Always release the manager and settle the status, even when
			// the task panics.
			r := recover()
			if r != nil {
				log.Printf("Job '%s' panicked: %v", name, r)
			}

			jm.mu.Lock()
			if r != nil {
				status.Status = "failed"
				status.Message = fmt.Sprintf("Job panicked: %v", r)
			}
			status.EndTime = time.Now()
			if status.Status == "running" {
				status.Status = "success"
				status.Message = "Job completed successfully."
			}
			jm.running = false
			jm.mu.Unlock()
			log.Printf("Finished job: %s", name)
		}()

		task(ctx)
	}()
	return nil
}

// GetStatus returns a snapshot of every registered job's status. Entries are
// copies, so callers can read them without racing running jobs.
func (jm *JobManager) GetStatus() []*JobStatus {
	jm.mu.Lock()
	defer jm.mu.Unlock()

	statuses := make([]*JobStatus, 0, len(jm.status))
	for _, s := range jm.status {
		snapshot := *s
		statuses = append(statuses, &snapshot)
	}
	return statuses
}
