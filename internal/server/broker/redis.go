package broker

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrijs2005/userdir/internal/logging"
)

// DefaultChannel is the Redis pub/sub channel directory changes travel on.
const DefaultChannel = "userdir:directory:changed"

// NewRedisClient connects to dsn (redis://...) and pings it.
func NewRedisClient(ctx context.Context, dsn string) (*redis.Client, error) {
	opts, err := redis.ParseURL(dsn)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = 10
	opts.MinIdleConns = 2
	opts.ConnMaxIdleTime = 5 * time.Minute
	opts.ConnMaxLifetime = 30 * time.Minute

	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}

type redisPublisher interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
}

// RedisRelay publishes changes to Redis and feeds changes seen on Redis,
// including its own, into a local Hub. Several server instances sharing one
// database stay in sync this way.
type RedisRelay struct {
	hub       *Hub
	pub       redisPublisher
	channel   string
	logger    logging.Logger
	subscribe func(ctx context.Context) (<-chan *redis.Message, func() error)
}

func NewRedisRelay(rdb *redis.Client, hub *Hub, logger logging.Logger) *RedisRelay {
	r := &RedisRelay{
		hub:     hub,
		pub:     rdb,
		channel: DefaultChannel,
		logger:  logger.With("module", "broker"),
	}
	r.subscribe = func(ctx context.Context) (<-chan *redis.Message, func() error) {
		ps := rdb.Subscribe(ctx, r.channel)
		return ps.Channel(), ps.Close
	}
	return r
}

// Publish sends a change notification through Redis. When Redis rejects it
// the local hub is signalled directly so this instance's watchers still see
// the change.
func (r *RedisRelay) Publish(ctx context.Context) error {
	if err := r.pub.Publish(ctx, r.channel, "changed").Err(); err != nil {
		r.hub.signal()
		return err
	}
	return nil
}

func (r *RedisRelay) Subscribe() (<-chan struct{}, func()) {
	return r.hub.Subscribe()
}

// Run relays Redis messages into the hub until ctx is done.
func (r *RedisRelay) Run(ctx context.Context) error {
	msgs, closeFn := r.subscribe(ctx)
	defer func() {
		if err := closeFn(); err != nil {
			r.logger.Warn(ctx, "redis unsubscribe failed", "error", err)
		}
	}()

	r.logger.Info(ctx, "relaying directory changes through redis", "channel", r.channel)
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-msgs:
			if !ok {
				return nil
			}
			r.hub.signal()
		}
	}
}
