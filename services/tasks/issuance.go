package tasks

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeIssuanceDeliver = "issuance:deliver"

type IssuancePayload struct {
	OrderID string `json:"orderId"`
}

func NewIssuanceTask(orderID string) (*asynq.Task, error) {
	b, err := json.Marshal(IssuancePayload{OrderID: orderID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeIssuanceDeliver, b), nil
}

// Enqueuer queues issuance delivery tasks after an order is confirmed.
type Enqueuer struct {
	Client *asynq.Client
}

func NewEnqueuer(client *asynq.Client) *Enqueuer {
	return &Enqueuer{Client: client}
}

func (e *Enqueuer) Dispatch(ctx context.Context, orderID string) error {
	task, err := NewIssuanceTask(orderID)
	if err != nil {
		return err
	}
	_, err = e.Client.Enqueue(task, asynq.MaxRetry(3))
	return err
}
