package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"flight-booking/db"
	"flight-booking/models"
)

type SessionRepository struct {
	col *mongo.Collection
}

func NewSessionRepository(d *mongo.Database) *SessionRepository {
	return &SessionRepository{col: d.Collection(db.CollectionSessions)}
}

// Create stores a new session document.
func (r *SessionRepository) Create(ctx context.Context, s *models.Session) error {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
	_, err := r.col.InsertOne(ctx, s)
	return err
}

// FindValid 는 만료되지 않은 세션을 토큰으로 찾는다.
// TTL 인덱스는 주기적으로만 지우므로 expires_at 을 직접 비교한다.
func (r *SessionRepository) FindValid(ctx context.Context, token string, now time.Time) (*models.Session, error) {
	var s models.Session
	err := r.col.FindOne(ctx, bson.M{
		"token":      token,
		"expires_at": bson.M{"$gt": now},
	}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Delete removes a session by token. Deleting a missing session is not an error.
func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"token": token})
	return err
}

// DeleteByUser 는 비활성화된 사용자의 모든 세션을 정리한다.
func (r *SessionRepository) DeleteByUser(ctx context.Context, userID int64) (int64, error) {
	res, err := r.col.DeleteMany(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
