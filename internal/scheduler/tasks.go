// Package scheduler defines the asynq background tasks: the nightly batch
// rescore and the weekly recruiter digest.
package scheduler

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TaskLeadsRescore = "leads.rescore"

const TaskInsightsDigest = "insights.digest"

type LeadsRescorePayload struct {
	// Reason records what triggered the run, for task logs.
	Reason string `json:"reason"`
}

type InsightsDigestPayload struct {
	Reason string `json:"reason"`
}

func NewLeadsRescoreTask(payload LeadsRescorePayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskLeadsRescore, data), nil
}

func ParseLeadsRescorePayload(task *asynq.Task) (LeadsRescorePayload, error) {
	var payload LeadsRescorePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return LeadsRescorePayload{}, err
	}
	return payload, nil
}

func NewInsightsDigestTask(payload InsightsDigestPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskInsightsDigest, data), nil
}

func ParseInsightsDigestPayload(task *asynq.Task) (InsightsDigestPayload, error) {
	var payload InsightsDigestPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return InsightsDigestPayload{}, err
	}
	return payload, nil
}
