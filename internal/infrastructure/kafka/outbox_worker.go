package kafka

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/thuli-tech/style-backend/internal/usecase"
	"github.com/thuli-tech/style-backend/pkg/e"
	"github.com/thuli-tech/style-backend/pkg/logger"
)

const (
	outboxChannel   = "outbox_pending"
	outboxBatchSize = 10

	// fallbackPollInterval страхует от пропущенных NOTIFY (обрыв соединения слушателя).
	fallbackPollInterval = time.Minute
	notifyWaitTimeout    = 30 * time.Second
)

// OutboxWorker доставляет события из таблицы outbox в Kafka.
// Просыпается по NOTIFY от репозитория и по фоновому таймеру.
type OutboxWorker struct {
	repo      usecase.OutboxRepository
	producer  usecase.MessageProducer
	logger    logger.Logger
	dbConnStr string

	wake chan struct{}
	stop chan struct{}
	wg   sync.WaitGroup
}

func NewOutboxWorker(
	repo usecase.OutboxRepository,
	logger logger.Logger,
	producer usecase.MessageProducer,
	dbConnStr string,
) *OutboxWorker {
	return &OutboxWorker{
		repo:      repo,
		producer:  producer,
		logger:    logger,
		dbConnStr: dbConnStr,
		wake:      make(chan struct{}, 1),
		stop:      make(chan struct{}),
	}
}

func (w *OutboxWorker) Start(ctx context.Context) {
	w.wg.Add(2)
	go func() {
		defer w.wg.Done()
		w.drainLoop(ctx)
	}()
	go func() {
		defer w.wg.Done()
		w.listen(ctx)
	}()
}

func (w *OutboxWorker) Stop() {
	close(w.stop)
	w.wg.Wait()
}

// drainLoop выгребает отложенные события: сразу при старте,
// затем по сигналу слушателя или по таймеру.
func (w *OutboxWorker) drainLoop(ctx context.Context) {
	w.logger.Infof("outbox: draining pending events on startup")
	w.drain(ctx)

	ticker := time.NewTicker(fallbackPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Infof("outbox: drain loop stopped")
			return
		case <-w.stop:
			return
		case <-w.wake:
			w.drain(ctx)
		case <-ticker.C:
			w.drain(ctx)
		}
	}
}

func (w *OutboxWorker) drain(ctx context.Context) {
	for {
		events, err := w.repo.GetAndMarkAsProcessing(ctx, outboxBatchSize)
		if err != nil {
			w.logger.Warnf("outbox: batch claim failed: %v", err)
			return
		}
		if len(events) == 0 {
			return
		}

		for _, event := range events {
			if err := w.publish(ctx, event); err != nil {
				w.logger.Warnf("outbox: publish event %s failed: %v", event.EventID, err)
				continue
			}
			if err := w.repo.MarkAsProcessed(ctx, event.ID); err != nil {
				w.logger.Warnf("outbox: mark processed %d failed: %v", event.ID, err)
			}
		}
	}
}

func (w *OutboxWorker) publish(ctx context.Context, event *usecase.OutboxEvent) error {
	err := w.producer.WriteRawMessage(ctx, usecase.NewWriteRawMessageReq(event.UserID, event.Payload))
	if err != nil {
		if isRetryableError(err) {
			// Событие останется в статусе processing и будет добрано позже.
			return e.Wrap("temporary kafka failure", err)
		}
		return e.Wrap("permanent kafka failure", err)
	}
	return nil
}

// listen держит выделенное соединение с LISTEN и будит drainLoop на каждое уведомление.
func (w *OutboxWorker) listen(ctx context.Context) {
	var conn *pgx.Conn

	connect := func() error {
		var err error
		conn, err = pgx.Connect(ctx, w.dbConnStr)
		if err != nil {
			return e.Wrap("connect for LISTEN", err)
		}
		if _, err = conn.Exec(ctx, "LISTEN "+outboxChannel); err != nil {
			conn.Close(ctx)
			return e.Wrap("LISTEN "+outboxChannel, err)
		}
		w.logger.Infof("outbox: subscribed to %q", outboxChannel)
		return nil
	}

	if err := connect(); err != nil {
		w.logger.Warnf("outbox: listener disabled, initial connect failed: %v", err)
		return
	}
	defer conn.Close(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stop:
			return
		default:
		}

		waitCtx, cancel := context.WithTimeout(ctx, notifyWaitTimeout)
		notif, err := conn.WaitForNotification(waitCtx)
		cancel()

		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
				continue
			}
			w.logger.Warnf("outbox: listener connection lost: %v", err)
			conn.Close(ctx)
			time.Sleep(2 * time.Second)
			if err := connect(); err != nil {
				w.logger.Warnf("outbox: reconnect failed: %v", err)
				time.Sleep(5 * time.Second)
			}
			continue
		}

		if notif != nil && notif.Channel == outboxChannel {
			select {
			case w.wake <- struct{}{}:
			default: // drain уже запланирован
			}
		}
	}
}

var retryablePhrases = []string{
	"connection refused",
	"i/o timeout",
	"network is unreachable",
	"broker not available",
	"connection reset",
	"broken pipe",
	"no such host",
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, phrase := range retryablePhrases {
		if strings.Contains(msg, phrase) {
			return true
		}
	}
	return false
}
