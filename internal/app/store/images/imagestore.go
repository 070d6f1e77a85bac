// internal/app/store/images/imagestore.go
package imagestore

import (
	"context"

	"github.com/codeit-toyproject-five/zogakzip/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("images")}
}

func (s *Store) Create(ctx context.Context, img models.Image) (models.Image, error) {
	img.ID = primitive.NewObjectID()
	if _, err := s.c.InsertOne(ctx, img); err != nil {
		return models.Image{}, err
	}
	return img, nil
}
