// internal/app/store/posts/poststore.go
package poststore

import (
	"context"
	"time"

	"github.com/codeit-toyproject-five/zogakzip/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("posts")}
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Post, error) {
	var p models.Post
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return models.Post{}, err
	}
	return p, nil
}

func (s *Store) Create(ctx context.Context, p models.Post) (models.Post, error) {
	p.ID = primitive.NewObjectID()
	p.LikeCount = 0
	p.CommentCount = 0
	if p.Tags == nil {
		p.Tags = []string{}
	}
	p.CreatedAt = time.Now().UTC()
	if _, err := s.c.InsertOne(ctx, p); err != nil {
		return models.Post{}, err
	}
	return p, nil
}

// Update applies a partial update and returns the resulting post.
// Returns mongo.ErrNoDocuments when id does not resolve.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (models.Post, error) {
	var p models.Post
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&p)
	if err != nil {
		return models.Post{}, err
	}
	return p, nil
}

// Delete removes a post by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *Store) List(ctx context.Context, filter bson.M, sort bson.D, skip, limit int64) ([]models.Post, error) {
	cur, err := s.c.Find(ctx, filter, options.Find().
		SetSort(sort).
		SetSkip(skip).
		SetLimit(limit))
	if err != nil {
		return nil, err
	}
	posts := []models.Post{}
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}

// IncLikeCount atomically increments likeCount and returns the post as
// it stands after the increment; see groupstore.IncLikeCount.
func (s *Store) IncLikeCount(ctx context.Context, id primitive.ObjectID) (models.Post, error) {
	var p models.Post
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"likeCount": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&p)
	if err != nil {
		return models.Post{}, err
	}
	return p, nil
}

// IncCommentCount adjusts commentCount by delta (+1 on comment create,
// -1 on comment delete).
func (s *Store) IncCommentCount(ctx context.Context, id primitive.ObjectID, delta int64) error {
	res, err := s.c.UpdateByID(ctx, id, bson.M{"$inc": bson.M{"commentCount": delta}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
