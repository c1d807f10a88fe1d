package consts

const (
	MimePrefixImage = "image"
)

const (
	AllPostsCategory = "All Posts"
	// UncategorizedCategory 未填写分类的文章归入此项
	UncategorizedCategory = "Uncategorized"
	DefaultRelated        = 3
	TopPostsLimit         = 5
	WordsPerMinute        = 200
)
