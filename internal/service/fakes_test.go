package service

import (
	"Brightline/internal/model"
	"Brightline/internal/pkg/mongo"
	"Brightline/internal/pkg/notify"
	"context"
	"errors"
	"io"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"
)

var errStoreDown = errors.New("store unavailable")

type fakePostRepo struct {
	mu        sync.Mutex
	posts     map[primitive.ObjectID]*mongo.BlogPost
	clock     time.Time
	failFind  bool
	failIncr  bool
	failTitle string
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{
		posts: make(map[primitive.ObjectID]*mongo.BlogPost),
		clock: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (f *fakePostRepo) sorted(keep func(p *mongo.BlogPost) bool) []*mongo.BlogPost {
	list := make([]*mongo.BlogPost, 0, len(f.posts))
	for _, p := range f.posts {
		if keep(p) {
			cp := *p
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list
}

func (f *fakePostRepo) FindAll(_ context.Context) ([]*mongo.BlogPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFind {
		return nil, errStoreDown
	}
	return f.sorted(func(*mongo.BlogPost) bool { return true }), nil
}

func (f *fakePostRepo) FindByCategory(_ context.Context, category string) ([]*mongo.BlogPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFind {
		return nil, errStoreDown
	}
	return f.sorted(func(p *mongo.BlogPost) bool { return p.Published && p.Category == category }), nil
}

func (f *fakePostRepo) FindByID(_ context.Context, id string) (*mongo.BlogPost, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrInvalidPostID
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFind {
		return nil, errStoreDown
	}
	p, ok := f.posts[oid]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakePostRepo) FindTopByViews(_ context.Context, limit int64) ([]*mongo.BlogPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := f.sorted(func(*mongo.BlogPost) bool { return true })
	sort.SliceStable(list, func(i, j int) bool { return list[i].Views > list[j].Views })
	if int64(len(list)) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (f *fakePostRepo) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.posts)), nil
}

func (f *fakePostRepo) Create(_ context.Context, post *mongo.BlogPost) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failTitle != "" && post.Title == f.failTitle {
		return errStoreDown
	}
	f.clock = f.clock.Add(time.Minute)
	post.ID = primitive.NewObjectID()
	post.CreatedAt = f.clock
	post.UpdatedAt = f.clock
	cp := *post
	f.posts[post.ID] = &cp
	return nil
}

func (f *fakePostRepo) Update(_ context.Context, id string, fields map[string]any) (*mongo.BlogPost, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrInvalidPostID
	}
	f.mu.Lock()
	p, ok := f.posts[oid]
	if !ok {
		f.mu.Unlock()
		return nil, driver.ErrNoDocuments
	}
	for k, v := range fields {
		switch k {
		case "title":
			p.Title = v.(string)
		case "excerpt":
			p.Excerpt = v.(string)
		case "content":
			p.Content = v.(string)
		case "read_time":
			p.ReadTime = v.(string)
		case "category":
			p.Category = v.(string)
		case "published":
			p.Published = v.(bool)
		case "featured":
			p.Featured = v.(bool)
		case "tags":
			p.Tags = v.([]string)
		}
	}
	p.UpdatedAt = p.UpdatedAt.Add(time.Second)
	f.mu.Unlock()
	return f.FindByID(context.Background(), id)
}

func (f *fakePostRepo) Delete(_ context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, mongo.ErrInvalidPostID
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.posts[oid]; !ok {
		return false, nil
	}
	delete(f.posts, oid)
	return true, nil
}

func (f *fakePostRepo) Increment(_ context.Context, id string, field string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrInvalidPostID
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failIncr {
		return errStoreDown
	}
	p, ok := f.posts[oid]
	if !ok {
		return driver.ErrNoDocuments
	}
	switch field {
	case mongo.FieldViews:
		p.Views++
	case mongo.FieldLikes:
		p.Likes++
	case mongo.FieldShares:
		p.Shares++
	case mongo.FieldComments:
		p.Comments++
	}
	return nil
}

type fakeAnalyticsRepo struct {
	mu     sync.Mutex
	events []*mongo.AnalyticsEvent
}

func (f *fakeAnalyticsRepo) Insert(_ context.Context, event *mongo.AnalyticsEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

func (f *fakeAnalyticsRepo) CountByType(_ context.Context) (map[string]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	counts := make(map[string]int64)
	for _, e := range f.events {
		counts[e.Type]++
	}
	return counts, nil
}

func (f *fakeAnalyticsRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.events)
}

type fakeKV struct {
	mu     sync.Mutex
	values map[string]string
	hashes map[string]map[string]string
	ttls   map[string]time.Duration
}

func newFakeKV() *fakeKV {
	return &fakeKV{
		values: make(map[string]string),
		hashes: make(map[string]map[string]string),
		ttls:   make(map[string]time.Duration),
	}
}

func toString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	default:
		return ""
	}
}

func (f *fakeKV) GetValue(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values[key], nil
}

func (f *fakeKV) SetValue(_ context.Context, key string, value interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = toString(value)
	return nil
}

func (f *fakeKV) SetWithExpiration(_ context.Context, key string, value interface{}, expiration time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = toString(value)
	f.ttls[key] = expiration
	return nil
}

func (f *fakeKV) HSet(_ context.Context, key string, field string, value interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.hashes[key] == nil {
		f.hashes[key] = make(map[string]string)
	}
	f.hashes[key][field] = toString(value)
	return nil
}

type fakeLegacy struct {
	blob      string
	completed bool
}

func (f *fakeLegacy) LoadPosts(_ context.Context) (string, error) {
	return f.blob, nil
}

func (f *fakeLegacy) MigrationCompleted(_ context.Context) (bool, error) {
	return f.completed, nil
}

func (f *fakeLegacy) MarkMigrationCompleted(_ context.Context) error {
	f.completed = true
	return nil
}

type fakeSubmissionRepo struct {
	mu       sync.Mutex
	contacts []*model.Contact
	bookings []*model.Booking
	fail     bool
}

func (f *fakeSubmissionRepo) CreateContact(_ context.Context, c *model.Contact) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errStoreDown
	}
	_ = c.BeforeCreate(nil)
	f.contacts = append(f.contacts, c)
	return nil
}

func (f *fakeSubmissionRepo) CreateBooking(_ context.Context, b *model.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errStoreDown
	}
	_ = b.BeforeCreate(nil)
	f.bookings = append(f.bookings, b)
	return nil
}

func (f *fakeSubmissionRepo) ListContacts(_ context.Context) ([]*model.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*model.Contact, 0, len(f.contacts))
	for i := len(f.contacts) - 1; i >= 0; i-- {
		out = append(out, f.contacts[i])
	}
	return out, nil
}

func (f *fakeSubmissionRepo) ListBookings(_ context.Context) ([]*model.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*model.Booking, 0, len(f.bookings))
	for i := len(f.bookings) - 1; i >= 0; i-- {
		out = append(out, f.bookings[i])
	}
	return out, nil
}

type recordingDispatcher struct {
	mu   sync.Mutex
	subs []*notify.Submission
}

func (r *recordingDispatcher) Dispatch(_ context.Context, sub *notify.Submission) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs = append(r.subs, sub)
}

type fakeObjectStore struct {
	objects map[string][]byte
}

func (f *fakeObjectStore) UploadFile(_ context.Context, objectName string, reader io.Reader, _ int64, _ string) (string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	f.objects[objectName] = data
	return objectName, nil
}

func (f *fakeObjectStore) GetPublicURL(objectName string) string {
	return "http://cdn.test/blog-media/" + objectName
}

func ptr(s string) *string {
	return &s
}
