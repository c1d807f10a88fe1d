package dto

// LegacyPostDTO 旧版本地存储中的文章结构
type LegacyPostDTO struct {
	ID        any             `json:"id"`
	Title     string          `json:"title"`
	Excerpt   string          `json:"excerpt"`
	Content   string          `json:"content"`
	Author    LegacyAuthorDTO `json:"author"`
	Date      string          `json:"date"`
	ReadTime  string          `json:"readTime"`
	Category  string          `json:"category"`
	Image     string          `json:"image"`
	Tags      []string        `json:"tags"`
	Featured  bool            `json:"featured"`
	Published bool            `json:"published"`
	Views     int64           `json:"views"`
	Likes     int64           `json:"likes"`
}

type LegacyAuthorDTO struct {
	Name  string `json:"name"`
	Bio   string `json:"bio"`
	Image string `json:"image"`
}

// MigrationResultDTO 迁移结果
type MigrationResultDTO struct {
	Success  bool     `json:"success"`
	Migrated int      `json:"migrated"`
	Errors   []string `json:"errors,omitempty"`
}
