package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"fundraising-backend/internal/usecase/assignment"

	"github.com/redis/go-redis/v9"
)

const wizardKeyPrefix = "assign:wizard:"

// WizardStore keeps assignment-wizard sessions in redis so state
// survives across requests without living in the URL.
type WizardStore struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ assignment.Store = (*WizardStore)(nil)

func NewWizardStore(rdb *redis.Client, ttl time.Duration) *WizardStore {
	return &WizardStore{rdb: rdb, ttl: ttl}
}

func (s *WizardStore) Put(ctx context.Context, sess *assignment.Session) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, wizardKeyPrefix+sess.Token, payload, s.ttl).Err()
}

func (s *WizardStore) Get(ctx context.Context, token string) (*assignment.Session, error) {
	v, err := s.rdb.Get(ctx, wizardKeyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, assignment.ErrSessionNotFound
		}
		return nil, err
	}
	var sess assignment.Session
	if err := json.Unmarshal(v, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *WizardStore) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, wizardKeyPrefix+token).Err()
}
