package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/streadway/amqp"
	"golang.org/x/sync/errgroup"

	"github.com/pollosrrj/pos/internal/dal/interfaces/ioutboxrepo"
	"github.com/pollosrrj/pos/internal/dal/rabbitmq"
	"github.com/pollosrrj/pos/internal/service/models/auditevent"
	"github.com/pollosrrj/pos/internal/service/models/outbox"
)

const queueName = "pos.order.events"

const defaultMaxRetries = 5

// AuditRabbitMQRepository publishes order lifecycle events. A failed
// publish is parked in the outbox table and retried by the outbox worker.
type AuditRabbitMQRepository struct {
	client     *rabbitmq.Client
	queue      amqp.Queue
	outboxRepo ioutboxrepo.IOutboxRepository
}

func NewAuditRabbitMQRepository(
	client *rabbitmq.Client,
	outboxRepo ioutboxrepo.IOutboxRepository,
) *AuditRabbitMQRepository {
	queue, err := client.DeclareQueue(rabbitmq.DeclareQueueConfig{
		Name:       queueName,
		Durable:    true,
		Exclusive:  false,
		AutoDelete: false,
	})
	if err != nil {
		panic(err)
	}

	return &AuditRabbitMQRepository{
		client:     client,
		queue:      queue,
		outboxRepo: outboxRepo,
	}
}

// LogEvents publishes every event, at most three in flight at a time.
func (r *AuditRabbitMQRepository) LogEvents(ctx context.Context, events []auditevent.Event) error {
	auditCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	g, ctx := errgroup.WithContext(auditCtx)
	g.SetLimit(3)

	for _, ev := range events {
		ev := ev
		g.Go(func() error {
			payload, err := json.Marshal(ev)
			if err != nil {
				return err
			}

			pubErr := r.client.Channel().Publish(
				"",
				r.queue.Name,
				false,
				false,
				amqp.Publishing{
					ContentType: "application/json",
					Body:        payload,
				},
			)
			if pubErr == nil {
				return nil
			}

			now := time.Now()

			return r.outboxRepo.Insert(ctx, outbox.OutboxMessage{
				QueueName:   r.queue.Name,
				RoutingKey:  r.queue.Name,
				Payload:     payload,
				ContentType: "application/json",
				MaxRetries:  defaultMaxRetries,
				LastError:   pubErr.Error(),
				CreatedAt:   now,
				UpdatedAt:   now,
				NextRetryAt: now,
			})
		})
	}

	return g.Wait()
}
