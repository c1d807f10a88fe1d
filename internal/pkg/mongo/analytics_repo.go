package mongo

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type AnalyticsRepo interface {
	Insert(ctx context.Context, event *AnalyticsEvent) error
	CountByType(ctx context.Context) (map[string]int64, error)
}

type analyticsRepoImpl struct {
	col *mongo.Collection
}

func NewAnalyticsRepo(db *mongo.Database) AnalyticsRepo {
	return &analyticsRepoImpl{
		col: db.Collection(AnalyticsCollection),
	}
}

// Insert 追加一条行为事件
func (s *analyticsRepoImpl) Insert(ctx context.Context, event *AnalyticsEvent) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	_, err := s.col.InsertOne(ctx, event)
	if err != nil {
		return errors.Wrapf(err, "insert %s event", event.Type)
	}
	return nil
}

// CountByType 按事件类型统计总数
func (s *analyticsRepoImpl) CountByType(ctx context.Context) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$type"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrap(err, "aggregate analytics events")
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var rows []struct {
		Type  string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, errors.Wrap(err, "decode analytics counts")
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Type] = r.Count
	}
	return counts, nil
}
