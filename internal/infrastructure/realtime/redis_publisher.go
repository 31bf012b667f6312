// Package realtime notifica a los clientes del dashboard que hay datos nuevos.
// Los eventos se publican en un canal Redis; un gateway de sockets los reenvía.
package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/container-sales-api/internal/application/ports"
	"github.com/jhoicas/container-sales-api/pkg/config"
	"github.com/jhoicas/container-sales-api/pkg/metrics"
)

var _ ports.EventPublisher = (*RedisPublisher)(nil)

// DefaultChannel canal usado si REDIS_CHANNEL está vacío.
const DefaultChannel = "dashboard:events"

type publishCmdable interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// Envelope mensaje que recibe el gateway.
type Envelope struct {
	Event   string    `json:"event"`
	Payload any       `json:"payload"`
	SentAt  time.Time `json:"sentAt"`
}

// RedisPublisher implementa ports.EventPublisher sobre PUBLISH.
type RedisPublisher struct {
	store   publishCmdable
	raw     *redis.Client
	channel string
	metrics *metrics.HTTPMetrics
	now     func() time.Time
}

// NewRedisPublisher conecta y verifica Redis con un ping.
func NewRedisPublisher(ctx context.Context, cfg config.RedisConfig, m *metrics.HTTPMetrics) (*RedisPublisher, error) {
	opts, err := optionsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	raw := redis.NewClient(opts)
	if err := raw.Ping(ctx).Err(); err != nil {
		_ = raw.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	p := newPublisher(raw, cfg.Channel, m)
	p.raw = raw
	return p, nil
}

func newPublisher(store publishCmdable, channel string, m *metrics.HTTPMetrics) *RedisPublisher {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisPublisher{store: store, channel: channel, metrics: m, now: time.Now}
}

func optionsFromConfig(cfg config.RedisConfig) (*redis.Options, error) {
	if !cfg.Enabled() {
		return nil, errors.New("redis url or address is required")
	}
	if cfg.URL != "" {
		opts, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("parsing redis url: %w", err)
		}
		if opts.DB == 0 {
			opts.DB = cfg.DB
		}
		return opts, nil
	}
	return &redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	}, nil
}

// Channel canal de publicación.
func (p *RedisPublisher) Channel() string { return p.channel }

// Publish serializa el evento y lo publica. Que no haya suscriptores no es un error.
func (p *RedisPublisher) Publish(ctx context.Context, event string, payload any) error {
	err := p.publish(ctx, event, payload)
	p.metrics.ObservePublish(event, err)
	return err
}

func (p *RedisPublisher) publish(ctx context.Context, event string, payload any) error {
	body, err := json.Marshal(Envelope{Event: event, Payload: payload, SentAt: p.now().UTC()})
	if err != nil {
		return fmt.Errorf("serializar evento %s: %w", event, err)
	}
	if err := p.store.Publish(ctx, p.channel, body).Err(); err != nil {
		return fmt.Errorf("publicar evento %s: %w", event, err)
	}
	return nil
}

// Close libera la conexión.
func (p *RedisPublisher) Close() error {
	if p.raw == nil {
		return nil
	}
	return p.raw.Close()
}
