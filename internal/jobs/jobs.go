package jobs

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"
)

// StartJobs registers the background jobs and starts the scheduler.
func StartJobs(app JobContext) {
	app.JobManager().Register(airingCheckJobID, RunAiringCheck)

	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()

	startAiringCheckJob(s, app)

	log.Println("Starting background job scheduler...")
	s.StartAsync()
}

func startAiringCheckJob(s *gocron.Scheduler, app JobContext) {
	interval := app.Config().AiringCheckInterval
	if interval == 0 {
		log.Println("Airing check interval is 0, scheduled checks are disabled.")
		return
	}

	log.Printf("Scheduling job: '%s' to run every %d minutes.", airingCheckJobID, interval)

	_, err := s.Every(interval).Minutes().Do(func() {
		log.Println("Scheduler is triggering job:", airingCheckJobID)
		// Submit through the manager so scheduled runs cannot collide with
		// manually triggered ones.
		err := app.JobManager().RunJob(airingCheckJobID, app)
		if err != nil {
			log.Printf("Scheduled job '%s' could not start: %v", airingCheckJobID, err)
		}
	})
	if err != nil {
		log.Printf("Error scheduling '%s' job: %v", airingCheckJobID, err)
	}
}
