package dto

// AnalyticsSummaryDTO 后台统计概览
type AnalyticsSummaryDTO struct {
	TotalViews    int64         `json:"total_views"`
	TotalLikes    int64         `json:"total_likes"`
	TotalShares   int64         `json:"total_shares"`
	TotalComments int64         `json:"total_comments"`
	TopPosts      []*TopPostDTO `json:"top_posts"`
	GeneratedAt   int64         `json:"generated_at"`
}

type TopPostDTO struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Views int64  `json:"views"`
}

// EventMetaDTO 行为事件附带的请求信息
type EventMetaDTO struct {
	UserAgent string
	Referrer  string
}
