package service

import (
	"Brightline/internal/api/dto"
	"Brightline/internal/pkg/consts"
	"Brightline/internal/pkg/mongo"
	"Brightline/internal/pkg/util"
	"context"
	"errors"
	log "log/slog"
	"sort"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
	driver "go.mongodb.org/mongo-driver/mongo"
)

// AnalyticsSummaryTTL 统计概览缓存时长
const AnalyticsSummaryTTL = 10 * time.Minute

type BlogService interface {
	ListAll(ctx context.Context) []*dto.BlogPostDTO
	ListPublished(ctx context.Context) []*dto.BlogPostDTO
	ListFeatured(ctx context.Context) []*dto.BlogPostDTO
	GetByID(ctx context.Context, id string) *dto.BlogPostDTO
	ListByCategory(ctx context.Context, category string) []*dto.BlogPostDTO
	ListRelated(ctx context.Context, id string, limit int) []*dto.BlogPostDTO
	Create(ctx context.Context, req *dto.CreatePostDTO) (*dto.BlogPostDTO, error)
	Update(ctx context.Context, id string, req *dto.UpdatePostDTO) (*dto.BlogPostDTO, error)
	Delete(ctx context.Context, id string) bool
	IncrementViews(ctx context.Context, id string, meta *dto.EventMetaDTO)
	IncrementLikes(ctx context.Context, id string, meta *dto.EventMetaDTO)
	IncrementShares(ctx context.Context, id string, meta *dto.EventMetaDTO)
	ListCategories(ctx context.Context) []*dto.CategoryDTO
	Search(ctx context.Context, query string) []*dto.BlogPostDTO
	AnalyticsSummary(ctx context.Context) (*dto.AnalyticsSummaryDTO, error)
	RefreshAnalyticsSummary(ctx context.Context) (*dto.AnalyticsSummaryDTO, error)
	InitializeDefaultPosts(ctx context.Context) error
	IsEmpty(ctx context.Context) (bool, error)
}

type blogServiceImpl struct {
	postRepo      mongo.BlogPostRepo
	analyticsRepo mongo.AnalyticsRepo
	kv            KVStore
}

func NewBlogService(postRepo mongo.BlogPostRepo, analyticsRepo mongo.AnalyticsRepo, kv KVStore) BlogService {
	return &blogServiceImpl{
		postRepo:      postRepo,
		analyticsRepo: analyticsRepo,
		kv:            kv,
	}
}

// ListAll 全部文章 (含草稿)，读取失败时返回空列表
func (s *blogServiceImpl) ListAll(ctx context.Context) []*dto.BlogPostDTO {
	return toPostDTOs(s.loadAll(ctx))
}

// ListPublished 已发布文章
func (s *blogServiceImpl) ListPublished(ctx context.Context) []*dto.BlogPostDTO {
	return toPostDTOs(filterPosts(s.loadAll(ctx), func(p *mongo.BlogPost) bool {
		return p.Published
	}))
}

// ListFeatured 已发布且精选的文章
func (s *blogServiceImpl) ListFeatured(ctx context.Context) []*dto.BlogPostDTO {
	return toPostDTOs(filterPosts(s.loadAll(ctx), func(p *mongo.BlogPost) bool {
		return p.Published && p.Featured
	}))
}

// GetByID 文章不存在、ID 非法或读取失败时返回 nil
func (s *blogServiceImpl) GetByID(ctx context.Context, id string) *dto.BlogPostDTO {
	post := s.findByID(ctx, id)
	if post == nil {
		return nil
	}
	return toPostDTO(post)
}

// ListByCategory 分类下的已发布文章
func (s *blogServiceImpl) ListByCategory(ctx context.Context, category string) []*dto.BlogPostDTO {
	if category == consts.AllPostsCategory {
		return s.ListPublished(ctx)
	}
	if category == consts.UncategorizedCategory {
		return toPostDTOs(filterPosts(s.loadAll(ctx), func(p *mongo.BlogPost) bool {
			return p.Published && categoryName(p.Category) == consts.UncategorizedCategory
		}))
	}
	posts, err := s.postRepo.FindByCategory(ctx, category)
	if err != nil {
		log.ErrorContext(ctx, "list posts by category failed", "category", category, "err", err)
		return []*dto.BlogPostDTO{}
	}
	return toPostDTOs(posts)
}

// ListRelated 与源文章同分类的其他已发布文章，至多 limit 篇
func (s *blogServiceImpl) ListRelated(ctx context.Context, id string, limit int) []*dto.BlogPostDTO {
	if limit <= 0 {
		limit = consts.DefaultRelated
	}
	source := s.findByID(ctx, id)
	if source == nil {
		return []*dto.BlogPostDTO{}
	}

	posts, err := s.postRepo.FindByCategory(ctx, source.Category)
	if err != nil {
		log.ErrorContext(ctx, "list related posts failed", "post_id", id, "err", err)
		return []*dto.BlogPostDTO{}
	}

	related := make([]*mongo.BlogPost, 0, limit)
	for _, p := range posts {
		if p.ID == source.ID {
			continue
		}
		related = append(related, p)
		if len(related) == limit {
			break
		}
	}
	return toPostDTOs(related)
}

// Create 新建文章，计数清零；阅读时长缺省时按正文估算
func (s *blogServiceImpl) Create(ctx context.Context, req *dto.CreatePostDTO) (*dto.BlogPostDTO, error) {
	post := &mongo.BlogPost{}
	if err := copier.Copy(post, req); err != nil {
		return nil, err
	}
	post.Author = mongo.Author{Name: req.Author.Name, Bio: req.Author.Bio, Image: req.Author.Image}
	post.Views, post.Likes, post.Comments, post.Shares = 0, 0, 0, 0
	if strings.TrimSpace(post.ReadTime) == "" {
		post.ReadTime = util.ReadTime(post.Content)
	}
	if post.PublishDate == "" {
		post.PublishDate = time.Now().UTC().Format(time.DateOnly)
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		log.ErrorContext(ctx, "create post failed", "title", post.Title, "err", err)
		return nil, err
	}
	return toPostDTO(post), nil
}

// Update 合并非空字段并返回写入后的文章
func (s *blogServiceImpl) Update(ctx context.Context, id string, req *dto.UpdatePostDTO) (*dto.BlogPostDTO, error) {
	fields := updateFields(req)

	post, err := s.postRepo.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, mongo.ErrInvalidPostID) || errors.Is(err, driver.ErrNoDocuments) {
			return nil, ErrPostNotFound
		}
		log.ErrorContext(ctx, "update post failed", "post_id", id, "err", err)
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return toPostDTO(post), nil
}

// Delete 物理删除，返回是否删除成功
func (s *blogServiceImpl) Delete(ctx context.Context, id string) bool {
	ok, err := s.postRepo.Delete(ctx, id)
	if err != nil {
		if !errors.Is(err, mongo.ErrInvalidPostID) {
			log.ErrorContext(ctx, "delete post failed", "post_id", id, "err", err)
		}
		return false
	}
	return ok
}

func (s *blogServiceImpl) IncrementViews(ctx context.Context, id string, meta *dto.EventMetaDTO) {
	s.increment(ctx, id, mongo.FieldViews, mongo.EventView, meta)
}

func (s *blogServiceImpl) IncrementLikes(ctx context.Context, id string, meta *dto.EventMetaDTO) {
	s.increment(ctx, id, mongo.FieldLikes, mongo.EventLike, meta)
}

func (s *blogServiceImpl) IncrementShares(ctx context.Context, id string, meta *dto.EventMetaDTO) {
	s.increment(ctx, id, mongo.FieldShares, mongo.EventShare, meta)
}

// increment 计数 +1 与事件追加相互独立，任一失败只记录日志；文章不存在时不追加事件
func (s *blogServiceImpl) increment(ctx context.Context, id, field, eventType string, meta *dto.EventMetaDTO) {
	if err := s.postRepo.Increment(ctx, id, field); err != nil {
		if errors.Is(err, mongo.ErrInvalidPostID) || errors.Is(err, driver.ErrNoDocuments) {
			log.WarnContext(ctx, "increment skipped, post not found", "post_id", id, "field", field)
			return
		}
		log.WarnContext(ctx, "increment counter failed", "post_id", id, "field", field, "err", err)
	}

	event := &mongo.AnalyticsEvent{
		PostID:    id,
		Type:      eventType,
		Timestamp: time.Now().UTC(),
	}
	if meta != nil {
		event.UserAgent = meta.UserAgent
		event.Referrer = meta.Referrer
	}
	if err := s.analyticsRepo.Insert(ctx, event); err != nil {
		log.WarnContext(ctx, "track analytics event failed", "post_id", id, "type", eventType, "err", err)
	}
}

// ListCategories "All Posts" 在首位，其余按文章数降序、名称升序
func (s *blogServiceImpl) ListCategories(ctx context.Context) []*dto.CategoryDTO {
	published := filterPosts(s.loadAll(ctx), func(p *mongo.BlogPost) bool {
		return p.Published
	})

	counts := make(map[string]int)
	for _, p := range published {
		counts[categoryName(p.Category)]++
	}

	categories := make([]*dto.CategoryDTO, 0, len(counts))
	for name, count := range counts {
		categories = append(categories, &dto.CategoryDTO{Name: name, Count: count})
	}
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Count != categories[j].Count {
			return categories[i].Count > categories[j].Count
		}
		return categories[i].Name < categories[j].Name
	})

	all := &dto.CategoryDTO{Name: consts.AllPostsCategory, Count: len(published)}
	return append([]*dto.CategoryDTO{all}, categories...)
}

func categoryName(category string) string {
	if strings.TrimSpace(category) == "" {
		return consts.UncategorizedCategory
	}
	return category
}

// Search 标题、摘要、标签的大小写不敏感子串匹配，空查询返回全部已发布文章
func (s *blogServiceImpl) Search(ctx context.Context, query string) []*dto.BlogPostDTO {
	query = strings.TrimSpace(query)
	return toPostDTOs(filterPosts(s.loadAll(ctx), func(p *mongo.BlogPost) bool {
		if !p.Published {
			return false
		}
		if query == "" {
			return true
		}
		if util.ContainsFold(p.Title, query) || util.ContainsFold(p.Excerpt, query) {
			return true
		}
		for _, tag := range p.Tags {
			if util.ContainsFold(tag, query) {
				return true
			}
		}
		return false
	}))
}

// AnalyticsSummary 优先读缓存，未命中时实时计算并回填
func (s *blogServiceImpl) AnalyticsSummary(ctx context.Context) (*dto.AnalyticsSummaryDTO, error) {
	cached, err := s.kv.GetValue(ctx, consts.AnalyticsSummaryKey)
	if err != nil {
		log.WarnContext(ctx, "read analytics summary cache failed", "err", err)
	}
	if cached != "" {
		summary := &dto.AnalyticsSummaryDTO{}
		if err = json.Unmarshal([]byte(cached), summary); err == nil {
			return summary, nil
		}
		log.WarnContext(ctx, "decode analytics summary cache failed", "err", err)
	}
	return s.RefreshAnalyticsSummary(ctx)
}

// RefreshAnalyticsSummary 重新统计并写入缓存
func (s *blogServiceImpl) RefreshAnalyticsSummary(ctx context.Context) (*dto.AnalyticsSummaryDTO, error) {
	counts, err := s.analyticsRepo.CountByType(ctx)
	if err != nil {
		log.ErrorContext(ctx, "count analytics events failed", "err", err)
		return nil, err
	}

	top, err := s.postRepo.FindTopByViews(ctx, consts.TopPostsLimit)
	if err != nil {
		log.ErrorContext(ctx, "find top posts failed", "err", err)
		return nil, err
	}

	summary := &dto.AnalyticsSummaryDTO{
		TotalViews:    counts[mongo.EventView],
		TotalLikes:    counts[mongo.EventLike],
		TotalShares:   counts[mongo.EventShare],
		TotalComments: counts[mongo.EventComment],
		TopPosts:      make([]*dto.TopPostDTO, 0, len(top)),
		GeneratedAt:   time.Now().Unix(),
	}
	for _, p := range top {
		summary.TopPosts = append(summary.TopPosts, &dto.TopPostDTO{
			ID:    p.ID.Hex(),
			Title: p.Title,
			Views: p.Views,
		})
	}

	if data, err := json.Marshal(summary); err == nil {
		if err = s.kv.SetWithExpiration(ctx, consts.AnalyticsSummaryKey, data, AnalyticsSummaryTTL); err != nil {
			log.WarnContext(ctx, "write analytics summary cache failed", "err", err)
		}
	}
	return summary, nil
}

// InitializeDefaultPosts 文章库为空时写入一篇示例文章
func (s *blogServiceImpl) InitializeDefaultPosts(ctx context.Context) error {
	empty, err := s.IsEmpty(ctx)
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}

	_, err = s.Create(ctx, defaultPost())
	if err == nil {
		log.InfoContext(ctx, "default blog post created")
	}
	return err
}

func (s *blogServiceImpl) IsEmpty(ctx context.Context) (bool, error) {
	n, err := s.postRepo.Count(ctx)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

func (s *blogServiceImpl) loadAll(ctx context.Context) []*mongo.BlogPost {
	posts, err := s.postRepo.FindAll(ctx)
	if err != nil {
		log.ErrorContext(ctx, "list posts failed", "err", err)
		return []*mongo.BlogPost{}
	}
	return posts
}

func (s *blogServiceImpl) findByID(ctx context.Context, id string) *mongo.BlogPost {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, mongo.ErrInvalidPostID) {
			log.ErrorContext(ctx, "get post failed", "post_id", id, "err", err)
		}
		return nil
	}
	return post
}

func filterPosts(posts []*mongo.BlogPost, keep func(p *mongo.BlogPost) bool) []*mongo.BlogPost {
	out := make([]*mongo.BlogPost, 0, len(posts))
	for _, p := range posts {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func updateFields(req *dto.UpdatePostDTO) map[string]any {
	fields := make(map[string]any)
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Excerpt != nil {
		fields["excerpt"] = *req.Excerpt
	}
	if req.Content != nil {
		fields["content"] = *req.Content
		if req.ReadTime == nil || strings.TrimSpace(*req.ReadTime) == "" {
			fields["read_time"] = util.ReadTime(*req.Content)
		}
	}
	if req.ReadTime != nil && strings.TrimSpace(*req.ReadTime) != "" {
		fields["read_time"] = *req.ReadTime
	}
	if req.Author != nil {
		fields["author"] = mongo.Author{Name: req.Author.Name, Bio: req.Author.Bio, Image: req.Author.Image}
	}
	if req.PublishDate != nil {
		fields["publish_date"] = *req.PublishDate
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}
	if req.Tags != nil {
		fields["tags"] = req.Tags
	}
	if req.Featured != nil {
		fields["featured"] = *req.Featured
	}
	if req.Published != nil {
		fields["published"] = *req.Published
	}
	return fields
}

func toPostDTO(post *mongo.BlogPost) *dto.BlogPostDTO {
	out := &dto.BlogPostDTO{}
	_ = copier.Copy(out, post)
	out.ID = post.ID.Hex()
	out.Author = dto.AuthorDTO{Name: post.Author.Name, Bio: post.Author.Bio, Image: post.Author.Image}
	if out.Tags == nil {
		out.Tags = []string{}
	}
	return out
}

func toPostDTOs(posts []*mongo.BlogPost) []*dto.BlogPostDTO {
	list := make([]*dto.BlogPostDTO, 0, len(posts))
	for _, p := range posts {
		list = append(list, toPostDTO(p))
	}
	return list
}

func defaultPost() *dto.CreatePostDTO {
	return &dto.CreatePostDTO{
		Title:   "Welcome to the Brightline Blog",
		Excerpt: "Insights on growth marketing, brand strategy and digital campaigns from the Brightline team.",
		Content: "<p>Welcome to our blog. Here we share what we learn running campaigns for our clients: " +
			"practical playbooks on SEO, paid media, content strategy and conversion optimization.</p>" +
			"<p>Check back regularly for new articles, or get in touch if you want to talk about your next project.</p>",
		Author: dto.AuthorDTO{
			Name: "Brightline Team",
			Bio:  "The strategists, designers and engineers behind Brightline.",
		},
		Category:  "Marketing Strategy",
		Tags:      []string{"announcement", "marketing"},
		Featured:  true,
		Published: true,
	}
}
