// Package redis provides a Redis-backed candidate-record store via rueidis.
// Records are plain JSON values under kind-prefixed keys; listing is a
// SCAN + MGET full scan per kind. There is no server-side index — the
// engine scans whatever the store returns.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/rueidis"

	"github.com/quorumhq/minutesearch/internal/domain/record"
)

// Key segments per record kind.
const (
	keyMeeting    = "meeting:"
	keyMinutes    = "minutes:"
	keyTranscript = "transcript:"
	keyActionItem = "action_item:"
)

// Config holds connection parameters for a Redis store.
type Config struct {
	Addrs     []string
	Username  string
	Password  string
	DB        int
	KeyPrefix string
}

// Store reads and writes candidate records in Redis.
type Store struct {
	client rueidis.Client
	prefix string
}

// NewStore creates a Redis store via rueidis.
func NewStore(cfg Config) (*Store, error) {
	if len(cfg.Addrs) == 0 {
		return nil, fmt.Errorf("addrs is required")
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "minutesearch:"
	}

	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  cfg.Addrs,
		Username:     cfg.Username,
		Password:     cfg.Password,
		SelectDB:     cfg.DB,
		DisableCache: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return &Store{client: client, prefix: cfg.KeyPrefix}, nil
}

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	cmd := s.client.B().Ping().Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Close shuts down the client.
func (s *Store) Close() {
	s.client.Close()
}

// WaitForReady polls Ping until the store responds or timeout expires.
func (s *Store) WaitForReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for database: %w", ctx.Err())
		case <-ticker.C:
			if err := s.Ping(ctx); err == nil {
				return nil
			}
		}
	}
}

// Meetings loads every meeting record.
func (s *Store) Meetings(ctx context.Context) ([]record.Meeting, error) {
	return loadAll[record.Meeting](ctx, s, keyMeeting)
}

// Minutes loads every minutes record.
func (s *Store) Minutes(ctx context.Context) ([]record.Minutes, error) {
	return loadAll[record.Minutes](ctx, s, keyMinutes)
}

// Transcripts loads every transcript segment.
func (s *Store) Transcripts(ctx context.Context) ([]record.TranscriptSegment, error) {
	return loadAll[record.TranscriptSegment](ctx, s, keyTranscript)
}

// ActionItems loads every action item.
func (s *Store) ActionItems(ctx context.Context) ([]record.ActionItem, error) {
	return loadAll[record.ActionItem](ctx, s, keyActionItem)
}

// SaveMeeting upserts a meeting record.
func (s *Store) SaveMeeting(ctx context.Context, m record.Meeting) error {
	return s.save(ctx, keyMeeting+m.ID, m)
}

// SaveMinutes upserts a minutes record.
func (s *Store) SaveMinutes(ctx context.Context, m record.Minutes) error {
	return s.save(ctx, keyMinutes+m.ID, m)
}

// SaveTranscript upserts a transcript segment.
func (s *Store) SaveTranscript(ctx context.Context, seg record.TranscriptSegment) error {
	return s.save(ctx, keyTranscript+seg.ID, seg)
}

// SaveActionItem upserts an action item.
func (s *Store) SaveActionItem(ctx context.Context, a record.ActionItem) error {
	return s.save(ctx, keyActionItem+a.ID, a)
}

func (s *Store) save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	cmd := s.client.B().Set().Key(s.prefix + key).Value(string(data)).Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// scanKeys lists all keys under the given kind segment.
func (s *Store) scanKeys(ctx context.Context, kindKey string) ([]string, error) {
	pattern := s.prefix + kindKey + "*"

	var keys []string
	var cursor uint64
	for {
		cmd := s.client.B().Scan().Cursor(cursor).Match(pattern).Count(100).Build()
		res, err := s.client.Do(ctx, cmd).AsScanEntry()
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", pattern, err)
		}
		keys = append(keys, res.Elements...)
		cursor = res.Cursor
		if cursor == 0 {
			break
		}
	}
	return keys, nil
}

// loadAll fetches and decodes every record of one kind. Keys deleted
// between SCAN and MGET decode as nil and are skipped.
func loadAll[T any](ctx context.Context, s *Store, kindKey string) ([]T, error) {
	keys, err := s.scanKeys(ctx, kindKey)
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, nil
	}

	cmd := s.client.B().Mget().Key(keys...).Build()
	msgs, err := s.client.Do(ctx, cmd).ToArray()
	if err != nil {
		return nil, fmt.Errorf("mget: %w", err)
	}

	out := make([]T, 0, len(msgs))
	for i, msg := range msgs {
		raw, err := msg.ToString()
		if err != nil {
			if rueidis.IsRedisNil(err) {
				continue
			}
			return nil, fmt.Errorf("read %s: %w", keys[i], err)
		}
		var rec T
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return nil, fmt.Errorf("decode %s: %w", keys[i], err)
		}
		out = append(out, rec)
	}
	return out, nil
}
