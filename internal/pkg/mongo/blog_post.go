package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	BlogPostCollection  = "blog_posts"
	AnalyticsCollection = "blog_analytics"
)

// 计数字段，只允许通过 $inc 递增
const (
	FieldViews    = "views"
	FieldLikes    = "likes"
	FieldComments = "comments"
	FieldShares   = "shares"
)

// BlogPost 博客文章文档
type BlogPost struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Excerpt     string             `bson:"excerpt" json:"excerpt"`
	Content     string             `bson:"content" json:"content"` // HTML
	Author      Author             `bson:"author" json:"author"`
	PublishDate string             `bson:"publish_date" json:"publishDate"` // YYYY-MM-DD，与创建时间无关
	ReadTime    string             `bson:"read_time" json:"readTime"`       // 如 "5 min read"
	Category    string             `bson:"category" json:"category"`
	Image       string             `bson:"image" json:"image"` // 封面图 URL
	Tags        []string           `bson:"tags" json:"tags"`
	Views       int64              `bson:"views" json:"views"`
	Likes       int64              `bson:"likes" json:"likes"`
	Comments    int64              `bson:"comments" json:"comments"`
	Shares      int64              `bson:"shares" json:"shares"`
	Featured    bool               `bson:"featured" json:"featured"`
	Published   bool               `bson:"published" json:"published"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}

// Author 作者信息
type Author struct {
	Name  string `bson:"name" json:"name"`
	Bio   string `bson:"bio,omitempty" json:"bio,omitempty"`
	Image string `bson:"image,omitempty" json:"image,omitempty"`
}

// AnalyticsEvent 文章行为事件，只追加不修改
type AnalyticsEvent struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PostID    string             `bson:"post_id" json:"postId"`
	Type      string             `bson:"type" json:"type"` // view / like / share / comment
	UserAgent string             `bson:"user_agent,omitempty" json:"userAgent,omitempty"`
	Referrer  string             `bson:"referrer,omitempty" json:"referrer,omitempty"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}

const (
	EventView    = "view"
	EventLike    = "like"
	EventShare   = "share"
	EventComment = "comment"
)
