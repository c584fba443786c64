package services

import (
	"context"
	"errors"
	"io"
	"sort"
	"sync"

	"github.com/google/uuid"
	"vdpcza/internal/models/db_models"
	"vdpcza/internal/repositories"
	"vdpcza/pkg/realtime"
)

var errStore = errors.New("connection refused")

// ---------------------------------------------------------------------------
// accounts / profiles
// ---------------------------------------------------------------------------

type fakeAccountRepo struct {
	mu       sync.Mutex
	accounts map[string]*db_models.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[string]*db_models.Account{}}
}

func (f *fakeAccountRepo) InsertTx(_ context.Context, a *db_models.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	cp := *a
	f.accounts[a.Email] = &cp
	return nil
}

func (f *fakeAccountRepo) FindById(_ context.Context, id uuid.UUID) (*db_models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.accounts {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*db_models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a, ok := f.accounts[email]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeAccountRepo) UpdatePasswordHash(_ context.Context, id uuid.UUID, hash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.accounts {
		if a.ID == id {
			a.PasswordHash = hash
		}
	}
	return nil
}

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]*db_models.Profile
	err      error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[uuid.UUID]*db_models.Profile{}}
}

func (f *fakeProfileRepo) FindById(_ context.Context, id uuid.UUID) (*db_models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if p, ok := f.profiles[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeProfileRepo) Create(_ context.Context, p *db_models.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.profiles[p.ID]; !ok {
		cp := *p
		f.profiles[p.ID] = &cp
	}
	return nil
}

func (f *fakeProfileRepo) UpdateFields(_ context.Context, id uuid.UUID, fields map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[id]
	if !ok {
		return nil
	}
	for k, v := range fields {
		switch k {
		case "full_name":
			p.FullName = v.(string)
		case "bio":
			p.Bio = v.(string)
		case "avatar_url":
			p.AvatarURL = v.(string)
		case "role":
			p.Role = v.(string)
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// trips
// ---------------------------------------------------------------------------

type fakeTripRepo struct {
	mu    sync.Mutex
	trips []db_models.Trip
	err   error
}

func (f *fakeTripRepo) List(context.Context) ([]db_models.Trip, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := append([]db_models.Trip(nil), f.trips...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

func (f *fakeTripRepo) Count(context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.trips)), nil
}

func (f *fakeTripRepo) FindById(_ context.Context, id uuid.UUID) (*db_models.Trip, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.trips {
		if f.trips[i].ID == id {
			cp := f.trips[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeTripRepo) Create(_ context.Context, t *db_models.Trip) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	t.ID = uuid.New()
	f.trips = append(f.trips, *t)
	return nil
}

func (f *fakeTripRepo) Save(_ context.Context, t *db_models.Trip) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.trips {
		if f.trips[i].ID == t.ID {
			f.trips[i] = *t
		}
	}
	return nil
}

func (f *fakeTripRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.trips {
		if f.trips[i].ID == id {
			f.trips = append(f.trips[:i], f.trips[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeTripRepo) ToggleReveal(_ context.Context, id uuid.UUID) (*db_models.Trip, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.trips {
		if f.trips[i].ID == id {
			f.trips[i].IsRevealed = !f.trips[i].IsRevealed
			cp := f.trips[i]
			return &cp, nil
		}
	}
	return nil, nil
}

// ---------------------------------------------------------------------------
// gifts
// ---------------------------------------------------------------------------

type fakeGiftRepo struct {
	mu    sync.Mutex
	gifts []db_models.Gift
	views map[uuid.UUID]map[uuid.UUID]bool
	err   error
}

func newFakeGiftRepo(gifts ...db_models.Gift) *fakeGiftRepo {
	return &fakeGiftRepo{gifts: gifts, views: map[uuid.UUID]map[uuid.UUID]bool{}}
}

func (f *fakeGiftRepo) List(context.Context) ([]db_models.Gift, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return append([]db_models.Gift(nil), f.gifts...), nil
}

func (f *fakeGiftRepo) FindById(_ context.Context, id uuid.UUID) (*db_models.Gift, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.gifts {
		if f.gifts[i].ID == id {
			cp := f.gifts[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeGiftRepo) Create(_ context.Context, g *db_models.Gift) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	g.ID = uuid.New()
	f.gifts = append([]db_models.Gift{*g}, f.gifts...)
	return nil
}

func (f *fakeGiftRepo) Save(_ context.Context, g *db_models.Gift) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.gifts {
		if f.gifts[i].ID == g.ID {
			f.gifts[i] = *g
		}
	}
	return nil
}

func (f *fakeGiftRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.gifts {
		if f.gifts[i].ID == id {
			f.gifts = append(f.gifts[:i], f.gifts[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeGiftRepo) ToggleReceived(_ context.Context, id uuid.UUID) (*db_models.Gift, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.gifts {
		if f.gifts[i].ID == id {
			f.gifts[i].IsReceived = !f.gifts[i].IsReceived
			cp := f.gifts[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeGiftRepo) MarkViewed(_ context.Context, userID, giftID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.views[userID] == nil {
		f.views[userID] = map[uuid.UUID]bool{}
	}
	f.views[userID][giftID] = true
	return nil
}

func (f *fakeGiftRepo) ViewedGiftIDs(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var ids []uuid.UUID
	for id := range f.views[userID] {
		ids = append(ids, id)
	}
	return ids, nil
}

// ---------------------------------------------------------------------------
// moods
// ---------------------------------------------------------------------------

type fakeMoodRepo struct {
	mu        sync.Mutex
	moods     []db_models.Mood // newest first
	insertErr error
	readErr   error
}

func (f *fakeMoodRepo) Insert(_ context.Context, m *db_models.Mood) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return f.insertErr
	}
	f.moods = append([]db_models.Mood{*m}, f.moods...)
	return nil
}

func (f *fakeMoodRepo) Recent(_ context.Context, limit int) ([]db_models.Mood, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return nil, f.readErr
	}
	if len(f.moods) < limit {
		limit = len(f.moods)
	}
	return append([]db_models.Mood(nil), f.moods[:limit]...), nil
}

func (f *fakeMoodRepo) LatestForUser(_ context.Context, userID uuid.UUID) (*db_models.Mood, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return nil, f.readErr
	}
	for _, m := range f.moods {
		if m.UserID == userID {
			cp := m
			return &cp, nil
		}
	}
	return nil, nil
}

// ---------------------------------------------------------------------------
// capsules, quotes, trivia, bucket list
// ---------------------------------------------------------------------------

type fakeCapsuleRepo struct {
	capsules []db_models.Capsule
}

func (f *fakeCapsuleRepo) List(context.Context) ([]db_models.Capsule, error) {
	return append([]db_models.Capsule(nil), f.capsules...), nil
}

func (f *fakeCapsuleRepo) FindById(_ context.Context, id uuid.UUID) (*db_models.Capsule, error) {
	for i := range f.capsules {
		if f.capsules[i].ID == id {
			cp := f.capsules[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCapsuleRepo) Create(_ context.Context, c *db_models.Capsule) error {
	c.ID = uuid.New()
	f.capsules = append(f.capsules, *c)
	return nil
}

func (f *fakeCapsuleRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	for i := range f.capsules {
		if f.capsules[i].ID == id {
			f.capsules = append(f.capsules[:i], f.capsules[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeQuoteRepo struct {
	quotes []db_models.Quote
	err    error
}

func (f *fakeQuoteRepo) List(context.Context) ([]db_models.Quote, error) {
	return f.quotes, f.err
}

func (f *fakeQuoteRepo) Random(context.Context) (*db_models.Quote, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.quotes) == 0 {
		return nil, nil
	}
	cp := f.quotes[0]
	return &cp, nil
}

func (f *fakeQuoteRepo) Create(_ context.Context, q *db_models.Quote) error {
	q.ID = uuid.New()
	f.quotes = append(f.quotes, *q)
	return nil
}

func (f *fakeQuoteRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	for i := range f.quotes {
		if f.quotes[i].ID == id {
			f.quotes = append(f.quotes[:i], f.quotes[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeTriviaRepo struct {
	questions []db_models.TriviaQuestion
	err       error
}

func (f *fakeTriviaRepo) ListOrdered(context.Context) ([]db_models.TriviaQuestion, error) {
	return f.questions, f.err
}

func (f *fakeTriviaRepo) FindById(_ context.Context, id uuid.UUID) (*db_models.TriviaQuestion, error) {
	for i := range f.questions {
		if f.questions[i].ID == id {
			cp := f.questions[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeTriviaRepo) Create(_ context.Context, q *db_models.TriviaQuestion) error {
	q.ID = uuid.New()
	f.questions = append(f.questions, *q)
	return nil
}

func (f *fakeTriviaRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	for i := range f.questions {
		if f.questions[i].ID == id {
			f.questions = append(f.questions[:i], f.questions[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeBucketListRepo struct {
	items []db_models.BucketListItem
}

func (f *fakeBucketListRepo) List(context.Context) ([]db_models.BucketListItem, error) {
	return append([]db_models.BucketListItem(nil), f.items...), nil
}

func (f *fakeBucketListRepo) Create(_ context.Context, item *db_models.BucketListItem) error {
	item.ID = uuid.New()
	f.items = append([]db_models.BucketListItem{*item}, f.items...)
	return nil
}

func (f *fakeBucketListRepo) ToggleCompleted(_ context.Context, id uuid.UUID) (*db_models.BucketListItem, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].IsCompleted = !f.items[i].IsCompleted
			cp := f.items[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeBucketListRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// ---------------------------------------------------------------------------
// memories / restaurants
// ---------------------------------------------------------------------------

type fakeMemoryRepo struct {
	albums    []db_models.Album
	memories  []db_models.Memory
	createErr error
}

func (f *fakeMemoryRepo) ListAlbums(context.Context) ([]db_models.Album, error) {
	return f.albums, nil
}

func (f *fakeMemoryRepo) FindAlbumById(_ context.Context, id uuid.UUID) (*db_models.Album, error) {
	for i := range f.albums {
		if f.albums[i].ID == id {
			cp := f.albums[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeMemoryRepo) CreateAlbum(_ context.Context, a *db_models.Album) error {
	a.ID = uuid.New()
	f.albums = append(f.albums, *a)
	return nil
}

func (f *fakeMemoryRepo) ListMemories(_ context.Context, albumID *uuid.UUID) ([]db_models.Memory, error) {
	var out []db_models.Memory
	for _, m := range f.memories {
		if albumID == nil || (m.AlbumID != nil && *m.AlbumID == *albumID) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMemoryRepo) CreateMemory(_ context.Context, m *db_models.Memory) error {
	if f.createErr != nil {
		return f.createErr
	}
	m.ID = uuid.New()
	f.memories = append(f.memories, *m)
	return nil
}

func (f *fakeMemoryRepo) DeleteMemory(_ context.Context, id uuid.UUID) (bool, error) {
	for i := range f.memories {
		if f.memories[i].ID == id {
			f.memories = append(f.memories[:i], f.memories[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeRestaurantRepo struct {
	restaurants []db_models.Restaurant
	reviews     []db_models.RestaurantReview
}

func (f *fakeRestaurantRepo) ListWithStats(context.Context) ([]repositories.RestaurantWithStats, error) {
	var out []repositories.RestaurantWithStats
	for _, r := range f.restaurants {
		row := repositories.RestaurantWithStats{Restaurant: r}
		sum := 0
		for _, rv := range f.reviews {
			if rv.RestaurantID == r.ID {
				row.ReviewCount++
				sum += rv.Rating
			}
		}
		if row.ReviewCount > 0 {
			row.AvgRating = float64(sum) / float64(row.ReviewCount)
		}
		out = append(out, row)
	}
	return out, nil
}

func (f *fakeRestaurantRepo) FindById(_ context.Context, id uuid.UUID) (*db_models.Restaurant, error) {
	for i := range f.restaurants {
		if f.restaurants[i].ID == id {
			cp := f.restaurants[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeRestaurantRepo) Create(_ context.Context, r *db_models.Restaurant) error {
	r.ID = uuid.New()
	f.restaurants = append(f.restaurants, *r)
	return nil
}

func (f *fakeRestaurantRepo) Save(_ context.Context, r *db_models.Restaurant) error {
	for i := range f.restaurants {
		if f.restaurants[i].ID == r.ID {
			f.restaurants[i] = *r
		}
	}
	return nil
}

func (f *fakeRestaurantRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	for i := range f.restaurants {
		if f.restaurants[i].ID == id {
			f.restaurants = append(f.restaurants[:i], f.restaurants[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRestaurantRepo) ListReviews(_ context.Context, restaurantID uuid.UUID) ([]db_models.RestaurantReview, error) {
	var out []db_models.RestaurantReview
	for _, rv := range f.reviews {
		if rv.RestaurantID == restaurantID {
			out = append(out, rv)
		}
	}
	return out, nil
}

func (f *fakeRestaurantRepo) CreateReview(_ context.Context, rv *db_models.RestaurantReview) error {
	rv.ID = uuid.New()
	f.reviews = append(f.reviews, *rv)
	return nil
}

func (f *fakeRestaurantRepo) DeleteReview(_ context.Context, id uuid.UUID) (bool, error) {
	for i := range f.reviews {
		if f.reviews[i].ID == id {
			f.reviews = append(f.reviews[:i], f.reviews[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// ---------------------------------------------------------------------------
// collaborators
// ---------------------------------------------------------------------------

type sentMail struct {
	to, link, code string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (f *fakeMailer) SendSignInLink(to, link, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, link: link, code: code})
	return nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []realtime.Event
}

func (f *fakePublisher) Publish(channel, eventType string, p interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, realtime.Event{Channel: channel, Type: eventType, Payload: p})
}

func (f *fakePublisher) types() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, e := range f.events {
		out = append(out, e.Type)
	}
	return out
}

type fakeStorage struct {
	uploaded map[string][]byte
	err      error
}

func (f *fakeStorage) Upload(_ context.Context, key string, body io.Reader, _ int64, _ string) error {
	if f.err != nil {
		return f.err
	}
	b, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	if f.uploaded == nil {
		f.uploaded = map[string][]byte{}
	}
	f.uploaded[key] = b
	return nil
}

func (f *fakeStorage) PublicURL(key string) string {
	return "https://cdn.test/" + key
}

type fakeChatClient struct {
	reply string
	err   error
}

func (f *fakeChatClient) Reply(context.Context, string, string) (string, error) {
	return f.reply, f.err
}

func (f *fakeChatClient) Name() string { return "fake" }

func (f *fakeChatClient) Close() error { return nil }
