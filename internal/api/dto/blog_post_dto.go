package dto

import "time"

// BlogPostDTO 文章对外结构
type BlogPostDTO struct {
	ID          string    `json:"id" copier:"-"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
	Author      AuthorDTO `json:"author" copier:"-"`
	PublishDate string    `json:"publishDate"`
	ReadTime    string    `json:"readTime"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Tags        []string  `json:"tags"`
	Views       int64     `json:"views"`
	Likes       int64     `json:"likes"`
	Comments    int64     `json:"comments"`
	Shares      int64     `json:"shares"`
	Featured    bool      `json:"featured"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type AuthorDTO struct {
	Name  string `json:"name" validate:"required,max=128"`
	Bio   string `json:"bio,omitempty" validate:"max=1000"`
	Image string `json:"image,omitempty" validate:"omitempty,url"`
}

// CreatePostDTO 新建文章
type CreatePostDTO struct {
	Title       string    `json:"title" binding:"required" validate:"min=1,max=255"`
	Excerpt     string    `json:"excerpt" validate:"max=1000"`
	Content     string    `json:"content" binding:"required" validate:"min=1"`
	Author      AuthorDTO `json:"author"`
	PublishDate string    `json:"publishDate" validate:"omitempty,datetime=2006-01-02"`
	ReadTime    string    `json:"readTime" validate:"max=32"`
	Category    string    `json:"category" binding:"required" validate:"min=1,max=64"`
	Image       string    `json:"image" validate:"omitempty,url"`
	Tags        []string  `json:"tags" validate:"max=20,dive,min=1,max=64"`
	Featured    bool      `json:"featured"`
	Published   bool      `json:"published"`
}

// UpdatePostDTO 部分更新，nil 字段不修改
type UpdatePostDTO struct {
	Title       *string    `json:"title" validate:"omitempty,min=1,max=255"`
	Excerpt     *string    `json:"excerpt" validate:"omitempty,max=1000"`
	Content     *string    `json:"content" validate:"omitempty,min=1"`
	Author      *AuthorDTO `json:"author"`
	PublishDate *string    `json:"publishDate" validate:"omitempty,datetime=2006-01-02"`
	ReadTime    *string    `json:"readTime" validate:"omitempty,max=32"`
	Category    *string    `json:"category" validate:"omitempty,min=1,max=64"`
	Image       *string    `json:"image" validate:"omitempty,url"`
	Tags        []string   `json:"tags" validate:"omitempty,max=20,dive,min=1,max=64"`
	Featured    *bool      `json:"featured"`
	Published   *bool      `json:"published"`
}

// CategoryDTO 分类及已发布文章数
type CategoryDTO struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
