package scheduler

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"recruit_portal_backend/internal/leads/insights"
	"recruit_portal_backend/internal/leads/service"
	"recruit_portal_backend/internal/notify"
	"recruit_portal_backend/platform/config"
	"recruit_portal_backend/platform/logger"
)

// Worker runs the asynq server and its periodic schedule in one process.
type Worker struct {
	server    *asynq.Server
	scheduler *asynq.Scheduler
	mux       *asynq.ServeMux

	scoring  *service.ScoringService
	insights *insights.Service
	digest   *notify.DigestSender
	log      *logger.Logger
}

const (
	// Nightly at 03:15, after the messaging platforms finish their syncs.
	rescoreCron = "15 3 * * *"
	// Monday mornings before the team standup.
	digestCron = "0 7 * * 1"
)

func NewWorker(cfg config.SchedulerConfig, scoring *service.ScoringService, ins *insights.Service, digest *notify.DigestSender, log *logger.Logger) (*Worker, error) {
	opt, queue, err := connection(cfg)
	if err != nil {
		return nil, err
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 10
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queue: 1,
		},
	})

	scheduler := asynq.NewScheduler(opt, &asynq.SchedulerOpts{})

	w := &Worker{
		server:    server,
		scheduler: scheduler,
		mux:       asynq.NewServeMux(),
		scoring:   scoring,
		insights:  ins,
		digest:    digest,
		log:       log,
	}

	w.mux.HandleFunc(TaskLeadsRescore, w.handleRescore)
	w.mux.HandleFunc(TaskInsightsDigest, w.handleDigest)

	if err := w.registerPeriodic(queue); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *Worker) registerPeriodic(queue string) error {
	rescore, err := NewLeadsRescoreTask(LeadsRescorePayload{Reason: "nightly"})
	if err != nil {
		return err
	}
	if _, err := w.scheduler.Register(rescoreCron, rescore, asynq.Queue(queue)); err != nil {
		return fmt.Errorf("register rescore schedule: %w", err)
	}

	digest, err := NewInsightsDigestTask(InsightsDigestPayload{Reason: "weekly"})
	if err != nil {
		return err
	}
	if _, err := w.scheduler.Register(digestCron, digest, asynq.Queue(queue)); err != nil {
		return fmt.Errorf("register digest schedule: %w", err)
	}
	return nil
}

func (w *Worker) handleRescore(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseLeadsRescorePayload(task)
	if err != nil {
		return err
	}

	result, err := w.scoring.UpdateScores(ctx, nil)
	if err != nil {
		w.log.TaskEvent(TaskLeadsRescore, false, err.Error())
		return err
	}
	w.log.TaskEvent(TaskLeadsRescore, true,
		fmt.Sprintf("reason=%s updated=%d total=%d", payload.Reason, result.Updated, result.Total))
	return nil
}

func (w *Worker) handleDigest(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseInsightsDigestPayload(task)
	if err != nil {
		return err
	}

	summary, err := w.insights.Summary(ctx)
	if err != nil {
		w.log.TaskEvent(TaskInsightsDigest, false, err.Error())
		return err
	}
	if err := w.digest.SendDigest(ctx, summary); err != nil {
		w.log.TaskEvent(TaskInsightsDigest, false, err.Error())
		return err
	}
	w.log.TaskEvent(TaskInsightsDigest, true, "reason="+payload.Reason)
	return nil
}

// Run starts the scheduler and blocks serving tasks until ctx is canceled.
func (w *Worker) Run(ctx context.Context) error {
	if err := w.scheduler.Start(); err != nil {
		return fmt.Errorf("start scheduler: %w", err)
	}

	go func() {
		<-ctx.Done()
		w.scheduler.Shutdown()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		return fmt.Errorf("run worker: %w", err)
	}
	return nil
}
