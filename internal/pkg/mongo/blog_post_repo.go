package mongo

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrInvalidPostID 非法的文章 ID
var ErrInvalidPostID = errors.New("invalid blog post id")

type BlogPostRepo interface {
	FindAll(ctx context.Context) ([]*BlogPost, error)
	FindByCategory(ctx context.Context, category string) ([]*BlogPost, error)
	FindByID(ctx context.Context, id string) (*BlogPost, error)
	FindTopByViews(ctx context.Context, limit int64) ([]*BlogPost, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, post *BlogPost) error
	Update(ctx context.Context, id string, fields map[string]any) (*BlogPost, error)
	Delete(ctx context.Context, id string) (bool, error)
	Increment(ctx context.Context, id string, field string) error
}

type blogPostRepoImpl struct {
	col *mongo.Collection
}

func NewBlogPostRepo(db *mongo.Database) BlogPostRepo {
	return &blogPostRepoImpl{
		col: db.Collection(BlogPostCollection),
	}
}

// FindAll 获取全部文章 (按创建时间倒序)
func (s *blogPostRepoImpl) FindAll(ctx context.Context) ([]*BlogPost, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return s.find(ctx, bson.M{}, opts)
}

// FindByCategory 数据库侧按分类过滤已发布文章
func (s *blogPostRepoImpl) FindByCategory(ctx context.Context, category string) ([]*BlogPost, error) {
	filter := bson.M{"published": true, "category": category}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return s.find(ctx, filter, opts)
}

// FindByID 文档不存在时返回 nil, nil
func (s *blogPostRepoImpl) FindByID(ctx context.Context, id string) (*BlogPost, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidPostID
	}

	var post BlogPost
	err = s.col.FindOne(ctx, bson.M{"_id": objectID}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "find blog post %s", id)
	}
	return &post, nil
}

// FindTopByViews 浏览量最高的文章
func (s *blogPostRepoImpl) FindTopByViews(ctx context.Context, limit int64) ([]*BlogPost, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: FieldViews, Value: -1}}).
		SetLimit(limit).
		SetProjection(bson.M{"title": 1, FieldViews: 1})
	return s.find(ctx, bson.M{}, opts)
}

func (s *blogPostRepoImpl) Count(ctx context.Context) (int64, error) {
	n, err := s.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, errors.Wrap(err, "count blog posts")
	}
	return n, nil
}

// Create 写入新文章，时间戳由服务端生成
func (s *blogPostRepoImpl) Create(ctx context.Context, post *BlogPost) error {
	now := time.Now().UTC()
	post.ID = primitive.NilObjectID
	post.CreatedAt = now
	post.UpdatedAt = now
	if post.Tags == nil {
		post.Tags = []string{}
	}

	res, err := s.col.InsertOne(ctx, post)
	if err != nil {
		return errors.Wrap(err, "insert blog post")
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		post.ID = oid
	}
	return nil
}

// Update 合并字段并刷新 updated_at，返回写入后重新读取的文档
func (s *blogPostRepoImpl) Update(ctx context.Context, id string, fields map[string]any) (*BlogPost, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidPostID
	}

	set := bson.M{}
	for k, v := range fields {
		switch k {
		case "_id", "created_at", FieldViews, FieldLikes, FieldComments, FieldShares:
			continue
		}
		set[k] = v
	}
	set["updated_at"] = time.Now().UTC()

	result, err := s.col.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": set})
	if err != nil {
		return nil, errors.Wrapf(err, "update blog post %s", id)
	}
	if result.MatchedCount == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return s.FindByID(ctx, id)
}

// Delete 物理删除
func (s *blogPostRepoImpl) Delete(ctx context.Context, id string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, ErrInvalidPostID
	}
	result, err := s.col.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return false, errors.Wrapf(err, "delete blog post %s", id)
	}
	return result.DeletedCount > 0, nil
}

// Increment 计数字段原子 +1，同时刷新 updated_at
func (s *blogPostRepoImpl) Increment(ctx context.Context, id string, field string) error {
	switch field {
	case FieldViews, FieldLikes, FieldComments, FieldShares:
	default:
		return errors.Errorf("field %q is not a counter", field)
	}

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidPostID
	}

	update := bson.M{
		"$inc": bson.M{field: 1},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	}
	result, err := s.col.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return errors.Wrapf(err, "increment %s of blog post %s", field, id)
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (s *blogPostRepoImpl) find(ctx context.Context, filter any, opts *options.FindOptions) ([]*BlogPost, error) {
	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Wrap(err, "find blog posts")
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	list := make([]*BlogPost, 0)
	if err = cursor.All(ctx, &list); err != nil {
		return nil, errors.Wrap(err, "decode blog posts")
	}
	return list, nil
}
