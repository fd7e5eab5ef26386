package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/harborview/insightdeck-backend/internal/logger"
)

// ImportanceStore persists the device-local set of "important" insight ids.
// It is deliberately independent of the record store: the whole set lives as
// one JSON array under a fixed key, read at load and rewritten on every
// mark/unmark.
type ImportanceStore interface {
	Add(ctx context.Context, id uuid.UUID) error
	Remove(ctx context.Context, id uuid.UUID) error
	Contains(ctx context.Context, id uuid.UUID) (bool, error)
	List(ctx context.Context) ([]uuid.UUID, error)
	Close() error
}

type importanceStore struct {
	log *logger.Logger
	rdb *goredis.Client
	key string
}

func NewImportanceStore(log *logger.Logger) (ImportanceStore, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}
	key := strings.TrimSpace(os.Getenv("IMPORTANCE_KEY"))
	if key == "" {
		key = "importance:marks"
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &importanceStore{
		log: log.With("service", "ImportanceStore"),
		rdb: rdb,
		key: key,
	}, nil
}

func (s *importanceStore) load(ctx context.Context) ([]uuid.UUID, error) {
	raw, err := s.rdb.Get(ctx, s.key).Result()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("importance load: %w", err)
	}

	var ids []uuid.UUID
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		// A corrupt value is recoverable: start from an empty set.
		s.log.Warn("importance set unreadable, resetting", "error", err)
		return nil, nil
	}
	return ids, nil
}

func (s *importanceStore) save(ctx context.Context, ids []uuid.UUID) error {
	if ids == nil {
		ids = []uuid.UUID{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, s.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("importance save: %w", err)
	}
	return nil
}

func (s *importanceStore) Add(ctx context.Context, id uuid.UUID) error {
	ids, err := s.load(ctx)
	if err != nil {
		return err
	}
	for _, existing := range ids {
		if existing == id {
			return nil
		}
	}
	return s.save(ctx, append(ids, id))
}

func (s *importanceStore) Remove(ctx context.Context, id uuid.UUID) error {
	ids, err := s.load(ctx)
	if err != nil {
		return err
	}
	kept := ids[:0]
	for _, existing := range ids {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	if len(kept) == len(ids) {
		return nil
	}
	return s.save(ctx, kept)
}

func (s *importanceStore) Contains(ctx context.Context, id uuid.UUID) (bool, error) {
	ids, err := s.load(ctx)
	if err != nil {
		return false, err
	}
	for _, existing := range ids {
		if existing == id {
			return true, nil
		}
	}
	return false, nil
}

func (s *importanceStore) List(ctx context.Context) ([]uuid.UUID, error) {
	return s.load(ctx)
}

func (s *importanceStore) Close() error {
	if s == nil || s.rdb == nil {
		return nil
	}
	return s.rdb.Close()
}
