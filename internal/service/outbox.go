package service

import (
	"context"
	"log/slog"
	"time"

	"Social_Feed/internal/config"
	"Social_Feed/internal/model"
	"Social_Feed/internal/pkg"
	"Social_Feed/internal/repository/gormdb"

	"gorm.io/gorm"
)

type Sender func(ctx context.Context, ob *model.Outbox) error

// OutboxRelayer 从 outbox 表读取事件异步投递
type OutboxRelayer struct {
	repo      *gormdb.OutboxRepository
	batchSize int
	interval  time.Duration
	maxRetry  int
	sender    Sender
}

func NewOutboxRelayer(db *gorm.DB, cfg config.OutboxConfig, sender Sender) *OutboxRelayer {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 200
	}
	if cfg.Interval <= 0 {
		cfg.Interval = time.Second
	}
	if sender == nil {
		sender = LogSender
	}
	return &OutboxRelayer{
		repo:      &gormdb.OutboxRepository{DB: db},
		batchSize: cfg.BatchSize,
		interval:  cfg.Interval,
		maxRetry:  cfg.MaxRetry,
		sender:    sender,
	}
}

// Run outbox启动器，ctx 取消后返回
func (r *OutboxRelayer) Run(ctx context.Context) {
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.DrainOnce(ctx)
		}
	}
}

// DrainOnce 投递一批，返回成功条数
func (r *OutboxRelayer) DrainOnce(ctx context.Context) int {
	rows, err := r.repo.ListPending(ctx, r.batchSize, r.maxRetry)
	if err != nil {
		slog.Error("outbox query failed", "err", err)
		return 0
	}
	sent := 0
	for i := range rows {
		ob := rows[i]
		if err := r.sender(ctx, &ob); err != nil {
			slog.Warn("outbox send failed", "id", ob.ID, "type", ob.EventType, "retry", ob.Retry, "err", err)
			if err := r.repo.MarkFailed(ctx, ob.ID); err != nil {
				slog.Error("outbox mark failed", "id", ob.ID, "err", err)
			}
			continue
		}
		if err := r.repo.MarkSent(ctx, ob.ID); err != nil {
			slog.Error("outbox mark sent", "id", ob.ID, "err", err)
			continue
		}
		sent++
	}
	return sent
}

func LogSender(_ context.Context, ob *model.Outbox) error {
	slog.Info("outbox send", "type", ob.EventType, "post_id", ob.PostID, "username", ob.Username, "payload", ob.Payload)
	return nil
}

// KafkaSender 以 post_id 作为消息 key
func KafkaSender(p *pkg.KafkaProducer) Sender {
	return func(ctx context.Context, ob *model.Outbox) error {
		return p.Send(ctx, ob.PostID, []byte(ob.Payload))
	}
}
