package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"flight-booking/db"
	"flight-booking/listquery"
	"flight-booking/models"
	"flight-booking/pagination"
)

type BookingEventRepository struct {
	col *mongo.Collection
}

func NewBookingEventRepository(d *mongo.Database) *BookingEventRepository {
	return &BookingEventRepository{col: d.Collection(db.CollectionBookingEvents)}
}

// Insert 는 감사 로그를 기록한다. 같은 event_id 가 이미 있으면 (false, nil) 을 반환해
// 재시도/재주입으로 중복 전달된 이벤트를 무시할 수 있게 한다.
func (r *BookingEventRepository) Insert(ctx context.Context, e *models.BookingEvent) (bool, error) {
	if e.RecordedAt.IsZero() {
		e.RecordedAt = time.Now()
	}
	if _, err := r.col.InsertOne(ctx, e); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// List returns events newest first.
func (r *BookingEventRepository) List(ctx context.Context, page pagination.Request) (pagination.Page[models.BookingEvent], error) {
	if page.Number < 1 {
		return pagination.Page[models.BookingEvent]{}, &listquery.InvalidPageError{Page: page.Number}
	}

	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return pagination.Page[models.BookingEvent]{}, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "occurred_at", Value: -1}}).
		SetSkip(int64(page.Offset())).
		SetLimit(int64(page.PageSize()))
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return pagination.Page[models.BookingEvent]{}, err
	}
	defer cur.Close(ctx)

	var items []models.BookingEvent
	if err := cur.All(ctx, &items); err != nil {
		return pagination.Page[models.BookingEvent]{}, err
	}
	return pagination.NewPage(items, page, total), nil
}
