package memstore

import (
	"context"
	"time"

	"flight-booking/models"
	"flight-booking/repositories"
)

// Sessions 는 *repositories.SessionRepository 의 메모리 구현이다.
type Sessions struct {
	byToken map[string]models.Session
}

func NewSessions() *Sessions {
	return &Sessions{byToken: map[string]models.Session{}}
}

func (f *Sessions) Create(_ context.Context, s *models.Session) error {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
	f.byToken[s.Token] = *s
	return nil
}

func (f *Sessions) FindValid(_ context.Context, token string, now time.Time) (*models.Session, error) {
	s, ok := f.byToken[token]
	if !ok || !s.ExpiresAt.After(now) {
		return nil, repositories.ErrNotFound
	}
	return &s, nil
}

func (f *Sessions) Delete(_ context.Context, token string) error {
	delete(f.byToken, token)
	return nil
}

func (f *Sessions) DeleteByUser(_ context.Context, userID int64) (int64, error) {
	var n int64
	for token, s := range f.byToken {
		if s.UserID == userID {
			delete(f.byToken, token)
			n++
		}
	}
	return n, nil
}

func (f *Sessions) Has(token string) bool {
	_, ok := f.byToken[token]
	return ok
}

func (f *Sessions) Len() int { return len(f.byToken) }
