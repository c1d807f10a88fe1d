package consts

const (
	// LegacyPostsKey 旧版本浏览器本地存储导出的文章 JSON
	LegacyPostsKey = "blog:legacy:posts"
	// MigrationCompletedKey 迁移完成标记
	MigrationCompletedKey = "blog:legacy:migration_completed"
	// AnalyticsSummaryKey 后台统计概览缓存
	AnalyticsSummaryKey = "blog:analytics:summary"
	// TokenRevokedKey 已登出 token 的签名
	TokenRevokedKey = "auth:token:revoked:"
	// MediaUploadKey 已上传封面图的元数据
	MediaUploadKey = "blog:media:uploads"
)
