package jobs_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/arkodas/mediatrack/internal/catalog"
	"github.com/arkodas/mediatrack/internal/config"
	"github.com/arkodas/mediatrack/internal/jobs"
	"github.com/arkodas/mediatrack/internal/store"
	"github.com/arkodas/mediatrack/internal/websocket"
)

type fakeJobContext struct {
	st     store.Store
	cfg    *config.Config
	ws     *websocket.Hub
	jobMgr *jobs.JobManager
	cat    *catalog.Client
}

func (f *fakeJobContext) Store() store.Store           { return f.st }
func (f *fakeJobContext) Config() *config.Config       { return f.cfg }
func (f *fakeJobContext) WsHub() *websocket.Hub        { return f.ws }
func (f *fakeJobContext) JobManager() *jobs.JobManager { return f.jobMgr }
func (f *fakeJobContext) Catalog() *catalog.Client     { return f.cat }

func newFakeContext() *fakeJobContext {
	return &fakeJobContext{
		st:  store.NewMemory(),
		cfg: &config.Config{},
		ws:  websocket.NewHub(),
	}
}

func TestManagerNewManager(t *testing.T) {
	mgr := jobs.NewManager()
	assert.NotNil(t, mgr)
	assert.Empty(t, mgr.GetStatus())
}

func TestManagerRegisterAndGetStatus(t *testing.T) {
	mgr := jobs.NewManager()
	mgr.Register("jobA", func(ctx jobs.JobContext) {})
	mgr.Register("jobB", func(ctx jobs.JobContext) {})
	statuses := mgr.GetStatus()
	assert.Len(t, statuses, 2)
	var foundA, foundB bool
	for _, s := range statuses {
		if s.Name == "jobA" {
			foundA = true
			assert.Equal(t, "idle", s.Status)
		}
		if s.Name == "jobB" {
			foundB = true
		}
	}
	assert.True(t, foundA && foundB)
}

func TestManagerRunJobSuccessAndStatus(t *testing.T) {
	ctx := newFakeContext()
	mgr := jobs.NewManager()
	ctx.jobMgr = mgr
	var called bool
	mgr.Register("jobX", func(ctx jobs.JobContext) { called = true })
	err := mgr.RunJob("jobX", ctx)
	assert.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
	assert.True(t, called)
	statuses := mgr.GetStatus()
	assert.Equal(t, "success", statuses[0].Status)
}

func TestManagerGetStatusReturnsCopies(t *testing.T) {
	mgr := jobs.NewManager()
	mgr.Register("jobZ", func(ctx jobs.JobContext) {})
	statuses := mgr.GetStatus()
	statuses[0].Status = "clobbered"
	statuses[0].Message = "clobbered"
	fresh := mgr.GetStatus()
	assert.Equal(t, "idle", fresh[0].Status)
	assert.Empty(t, fresh[0].Message)
}

func TestManagerStatusSafeToReadDuringJob(t *testing.T) {
	ctx := newFakeContext()
	mgr := jobs.NewManager()
	ctx.jobMgr = mgr
	block := make(chan struct{})
	mgr.Register("slowJob", func(ctx jobs.JobContext) { <-block })
	assert.NoError(t, mgr.RunJob("slowJob", ctx))

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			_ = mgr.GetStatus()
		}
		close(done)
	}()
	close(block)
	<-done
	time.Sleep(50 * time.Millisecond)
	statuses := mgr.GetStatus()
	assert.Equal(t, "success", statuses[0].Status)
}

func TestManagerRunJobAlreadyRunning(t *testing.T) {
	ctx := newFakeContext()
	mgr := jobs.NewManager()
	ctx.jobMgr = mgr
	block := make(chan struct{})
	mgr.Register("jobY", func(ctx jobs.JobContext) { <-block })
	_ = mgr.RunJob("jobY", ctx)
	err := mgr.RunJob("jobY", ctx)
	assert.Error(t, err)
	close(block)
}

func TestManagerRunJobNotFound(t *testing.T) {
	mgr := jobs.NewManager()
	err := mgr.RunJob("nojob", newFakeContext())
	assert.Error(t, err)
}

func TestManagerRunJobPanic(t *testing.T) {
	ctx := newFakeContext()
	mgr := jobs.NewManager()
	ctx.jobMgr = mgr
	mgr.Register("panicJob", func(ctx jobs.JobContext) { panic("fail") })
	err := mgr.RunJob("panicJob", ctx)
	assert.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
	statuses := mgr.GetStatus()
	assert.Equal(t, "failed", statuses[0].Status)
	assert.Contains(t, statuses[0].Message, "panicked")
}

func TestManagerConcurrency(t *testing.T) {
	ctx := newFakeContext()
	mgr := jobs.NewManager()
	ctx.jobMgr = mgr
	var mu sync.Mutex
	var count int
	mgr.Register("jobC", func(ctx jobs.JobContext) {
		mu.Lock()
		count++
		mu.Unlock()
	})
	wg := sync.WaitGroup{}
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			_ = mgr.RunJob("jobC", ctx)
			wg.Done()
		}()
	}
	wg.Wait()
	time.Sleep(50 * time.Millisecond)
	mu.Lock()
	assert.Equal(t, 1, count, "job should only run once concurrently")
	mu.Unlock()
}
