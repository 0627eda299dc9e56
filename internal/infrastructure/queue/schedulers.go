package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	borrowingJob "library-backend/internal/domains/borrowing/job"
	"library-backend/internal/shared"
	"library-backend/pkg/logger"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
}

func NewScheduler(redisAddress string) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: redisAddress},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{scheduler: scheduler}
}

// RegisterJobs wires up all periodic tasks.
func (s *Scheduler) RegisterJobs() error {
	return s.registerOverdueScanJob()
}

// The scan is cheap (one indexed query), so hourly keeps the report fresh
// without load concerns.
func (s *Scheduler) registerOverdueScanJob() error {
	payload, err := json.Marshal(borrowingJob.OverdueScanPayload{})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypeOverdueScan, payload)

	_, err = s.scheduler.Register(
		"0 * * * *", // hourly
		task,
		asynq.Queue(shared.QueueLow),
		asynq.MaxRetry(2),
		asynq.Timeout(5*time.Minute),
	)
	if err != nil {
		logger.Error("Failed to register OverdueScan job", err)
		return err
	}

	logger.Info("Registered OverdueScan: hourly", map[string]interface{}{})
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
