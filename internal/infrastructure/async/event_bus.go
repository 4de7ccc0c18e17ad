package async

import (
	"context"

	"go.uber.org/zap"

	"signupservice/internal/domain"
)

// DispatchRecorder counts events once a worker has handled them.
type DispatchRecorder interface {
	EventDispatched(t domain.EventType)
}

// AsyncEventBus logs roster events off the request path.
type AsyncEventBus struct {
	pool    *WorkerPool
	log     *zap.Logger
	metrics DispatchRecorder
}

func NewAsyncEventBus(ctx context.Context, poolSize int, log *zap.Logger, metrics DispatchRecorder) *AsyncEventBus {
	return &AsyncEventBus{
		pool:    NewWorkerPool(ctx, poolSize, poolSize*16, log),
		log:     log,
		metrics: metrics,
	}
}

func (b *AsyncEventBus) Publish(ctx context.Context, e domain.Event) {
	ok := b.pool.Submit(context.WithoutCancel(ctx), func(_ context.Context) {
		b.log.Info("roster_event",
			zap.String("type", string(e.Type)),
			zap.String("activity", e.Activity),
			zap.Any("payload", e.Payload),
		)
		if b.metrics != nil {
			b.metrics.EventDispatched(e.Type)
		}
	})
	if !ok {
		b.log.Warn("roster_event dropped", zap.String("type", string(e.Type)))
	}
}

func (b *AsyncEventBus) Close() {
	b.pool.Shutdown()
}
