// internal/app/store/comments/commentstore.go
package commentstore

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
	return &Store{c: db.Collection("comments")}
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Comment, error) {
	var cm models.Comment
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&cm); err != nil {
		return models.Comment{}, err
	}
	return cm, nil
}

func (s *Store) Create(ctx context.Context, cm models.Comment) (models.Comment, error) {
	cm.ID = primitive.NewObjectID()
	cm.CreatedAt = time.Now().UTC()
	if _, err := s.c.InsertOne(ctx, cm); err != nil {
		return models.Comment{}, err
	}
	return cm, nil
}

// UpdateContent replaces a comment's nickname and content and returns
// the resulting comment.
func (s *Store) UpdateContent(ctx context.Context, id primitive.ObjectID, nickname, content string) (models.Comment, error) {
	var cm models.Comment
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"nickname": nickname, "content": content}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&cm)
	if err != nil {
		return models.Comment{}, err
	}
	return cm, nil
}

// Delete removes a comment by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// ListByPost returns one page of a post's comments in insertion order
// (_id ascending, as the original API does).
func (s *Store) ListByPost(ctx context.Context, postID primitive.ObjectID, skip, limit int64) ([]models.Comment, error) {
	cur, err := s.c.Find(ctx, bson.M{"postId": postID}, options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(skip).
		SetLimit(limit))
	if err != nil {
		return nil, err
	}
	comments := []models.Comment{}
	if err := cur.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *Store) CountByPost(ctx context.Context, postID primitive.ObjectID) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"postId": postID})
}
