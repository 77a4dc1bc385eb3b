package repositories

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vinculo-app/backend/internal/models"
)

// PostRepository defines the interface for post data operations. Approved
// listings are newest first; the like set is flipped atomically by ToggleLike;
// the denormalized counters are adjusted only through the increment/decrement
// methods (comment decrements floor at zero).
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	FindByID(ctx context.Context, id string) (*models.Post, error)
	FindByUserID(ctx context.Context, userID string) ([]models.Post, error)
	FindApproved(ctx context.Context, offset, limit int) ([]models.Post, error)
	CountApproved(ctx context.Context) (int, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id string) error
	ToggleLike(ctx context.Context, postID, userID string) (*models.Post, bool, error)
	IncrementComments(ctx context.Context, postID string) error
	DecrementComments(ctx context.Context, postID string) error
	IncrementShares(ctx context.Context, postID string) error
}

// MemoryPostRepository implements PostRepository on an in-process slice.
type MemoryPostRepository struct {
	mu    sync.RWMutex
	posts []models.Post
}

// NewMemoryPostRepository creates a new MemoryPostRepository
func NewMemoryPostRepository() *MemoryPostRepository {
	return &MemoryPostRepository{}
}

func clonePost(p models.Post) *models.Post {
	cp := p
	cp.MediaURLs = slices.Clone(p.MediaURLs)
	cp.Likes = slices.Clone(p.Likes)
	return &cp
}

func (r *MemoryPostRepository) Create(_ context.Context, post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	if post.Likes == nil {
		post.Likes = []string{}
	}
	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now
	r.posts = append(r.posts, *clonePost(*post))
	return nil
}

func (r *MemoryPostRepository) FindByID(_ context.Context, id string) (*models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexOf(id); i >= 0 {
		return clonePost(r.posts[i]), nil
	}
	return nil, ErrNotFound
}

func (r *MemoryPostRepository) FindByUserID(_ context.Context, userID string) ([]models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Post
	for i := range r.posts {
		if r.posts[i].UserID == userID {
			out = append(out, *clonePost(r.posts[i]))
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *MemoryPostRepository) FindApproved(_ context.Context, offset, limit int) ([]models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var approved []models.Post
	for i := range r.posts {
		if r.posts[i].Status == models.PostApproved {
			approved = append(approved, *clonePost(r.posts[i]))
		}
	}
	sortNewestFirst(approved)
	if offset >= len(approved) {
		return []models.Post{}, nil
	}
	approved = approved[offset:]
	if limit > 0 && limit < len(approved) {
		approved = approved[:limit]
	}
	return approved, nil
}

func (r *MemoryPostRepository) CountApproved(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for i := range r.posts {
		if r.posts[i].Status == models.PostApproved {
			count++
		}
	}
	return count, nil
}

func (r *MemoryPostRepository) Update(_ context.Context, post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i := r.indexOf(post.ID); i >= 0 {
		post.UpdatedAt = time.Now()
		r.posts[i] = *clonePost(*post)
		return nil
	}
	return ErrNotFound
}

func (r *MemoryPostRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i := r.indexOf(id); i >= 0 {
		r.posts = append(r.posts[:i], r.posts[i+1:]...)
		return nil
	}
	return ErrNotFound
}

func (r *MemoryPostRepository) ToggleLike(_ context.Context, postID, userID string) (*models.Post, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(postID)
	if i < 0 {
		return nil, false, ErrNotFound
	}
	post := &r.posts[i]
	liked := false
	if j := slices.Index(post.Likes, userID); j >= 0 {
		post.Likes = append(post.Likes[:j], post.Likes[j+1:]...)
	} else {
		post.Likes = append(post.Likes, userID)
		liked = true
	}
	post.UpdatedAt = time.Now()
	return clonePost(*post), liked, nil
}

func (r *MemoryPostRepository) IncrementComments(_ context.Context, postID string) error {
	return r.adjust(postID, func(p *models.Post) { p.CommentsCount++ })
}

func (r *MemoryPostRepository) DecrementComments(_ context.Context, postID string) error {
	return r.adjust(postID, func(p *models.Post) {
		if p.CommentsCount > 0 {
			p.CommentsCount--
		}
	})
}

func (r *MemoryPostRepository) IncrementShares(_ context.Context, postID string) error {
	return r.adjust(postID, func(p *models.Post) { p.SharesCount++ })
}

func (r *MemoryPostRepository) adjust(postID string, fn func(*models.Post)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(postID)
	if i < 0 {
		return ErrNotFound
	}
	fn(&r.posts[i])
	r.posts[i].UpdatedAt = time.Now()
	return nil
}

// indexOf must be called with the lock held.
func (r *MemoryPostRepository) indexOf(id string) int {
	for i := range r.posts {
		if r.posts[i].ID == id {
			return i
		}
	}
	return -1
}

func sortNewestFirst(posts []models.Post) {
	slices.SortStableFunc(posts, func(a, b models.Post) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}

// MongoPostRepository implements PostRepository for MongoDB.
type MongoPostRepository struct {
	collection *mongo.Collection
}

// NewMongoPostRepository creates a new MongoPostRepository
func NewMongoPostRepository(db *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{collection: db.Collection("posts")}
}

func (r *MongoPostRepository) Create(ctx context.Context, post *models.Post) error {
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	if post.Likes == nil {
		post.Likes = []string{}
	}
	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now
	_, err := r.collection.InsertOne(ctx, post)
	return err
}

func (r *MongoPostRepository) FindByID(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *MongoPostRepository) FindByUserID(ctx context.Context, userID string) ([]models.Post, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return r.findAll(ctx, bson.M{"user_id": userID}, findOptions)
}

func (r *MongoPostRepository) FindApproved(ctx context.Context, offset, limit int) ([]models.Post, error) {
	findOptions := options.Find().
		SetSkip(int64(offset)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "created_at", Value: -1}})
	return r.findAll(ctx, bson.M{"status": models.PostApproved}, findOptions)
}

func (r *MongoPostRepository) CountApproved(ctx context.Context) (int, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"status": models.PostApproved})
	return int(count), err
}

func (r *MongoPostRepository) Update(ctx context.Context, post *models.Post) error {
	post.UpdatedAt = time.Now()
	update := bson.M{
		"$set": bson.M{
			"content":          post.Content,
			"media_urls":       post.MediaURLs,
			"media_type":       post.MediaType,
			"status":           post.Status,
			"rejection_reason": post.RejectionReason,
			"updated_at":       post.UpdatedAt,
		},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": post.ID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoPostRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoPostRepository) ToggleLike(ctx context.Context, postID, userID string) (*models.Post, bool, error) {
	post, err := r.FindByID(ctx, postID)
	if err != nil {
		return nil, false, err
	}
	var update bson.M
	liked := !post.LikedBy(userID)
	if liked {
		update = bson.M{"$addToSet": bson.M{"likes": userID}, "$set": bson.M{"updated_at": time.Now()}}
	} else {
		update = bson.M{"$pull": bson.M{"likes": userID}, "$set": bson.M{"updated_at": time.Now()}}
	}
	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)
	var updated models.Post
	if err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": postID}, update, opts).Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, false, ErrNotFound
		}
		return nil, false, err
	}
	return &updated, liked, nil
}

func (r *MongoPostRepository) IncrementComments(ctx context.Context, postID string) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": postID}, bson.M{"$inc": bson.M{"comments_count": 1}})
	return err
}

func (r *MongoPostRepository) DecrementComments(ctx context.Context, postID string) error {
	// Guarded filter keeps the counter from going negative.
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": postID, "comments_count": bson.M{"$gt": 0}},
		bson.M{"$inc": bson.M{"comments_count": -1}})
	return err
}

func (r *MongoPostRepository) IncrementShares(ctx context.Context, postID string) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": postID}, bson.M{"$inc": bson.M{"shares_count": 1}})
	return err
}

func (r *MongoPostRepository) findAll(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Post, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}
