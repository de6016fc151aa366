package service

import (
	"context"
	"database/sql"
	"time"

	"Social_Feed/internal/pkg"

	"gorm.io/gorm"
)

// deps 三个服务共享的依赖
type deps struct {
	db     *gorm.DB
	locker Locker
	events EventRecorder
	now    func() time.Time
	newID  func() string
}

type Option func(*deps)

// WithLocker 多实例部署时传入 redis.DistLock
func WithLocker(l Locker) Option {
	return func(d *deps) { d.locker = l }
}

// WithEvents 开启 outbox 事件写入
func WithEvents(r EventRecorder) Option {
	return func(d *deps) { d.events = r }
}

func WithClock(now func() time.Time) Option {
	return func(d *deps) { d.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(d *deps) { d.newID = newID }
}

func newDeps(db *gorm.DB, opts []Option) deps {
	d := deps{
		db:     db,
		locker: NewLocalLocker(),
		events: NopRecorder{},
		now:    func() time.Time { return time.Now().UTC() },
		newID:  pkg.NewID,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

func (d *deps) readTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return d.db.WithContext(ctx).Transaction(fn, &sql.TxOptions{ReadOnly: true})
}

func (d *deps) writeTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return d.db.WithContext(ctx).Transaction(fn)
}

// advance 保证 updatedAt 严格递增，即使时钟精度不足
func (d *deps) advance(prev time.Time) time.Time {
	next := d.now()
	if !next.After(prev) {
		next = prev.Add(time.Millisecond)
	}
	return next
}
