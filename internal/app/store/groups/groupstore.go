// internal/app/store/groups/groupstore.go
package groupstore

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
	return &Store{c: db.Collection("groups")}
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Group, error) {
	var g models.Group
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&g); err != nil {
		return models.Group{}, err
	}
	return g, nil
}

func (s *Store) Create(ctx context.Context, g models.Group) (models.Group, error) {
	g.ID = primitive.NewObjectID()
	g.LikeCount = 0
	g.BadgeCount = 0
	g.Badges = []string{}
	g.PostCount = 0
	g.CreatedAt = time.Now().UTC()
	if _, err := s.c.InsertOne(ctx, g); err != nil {
		return models.Group{}, err
	}
	return g, nil
}

// UpdateInfo applies a partial update and returns the resulting group.
// Returns mongo.ErrNoDocuments when id does not resolve.
func (s *Store) UpdateInfo(ctx context.Context, id primitive.ObjectID, set bson.M) (models.Group, error) {
	var g models.Group
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&g)
	if err != nil {
		return models.Group{}, err
	}
	return g, nil
}

// Delete removes a group by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *Store) List(ctx context.Context, filter bson.M, sort bson.D, skip, limit int64) ([]models.Group, error) {
	cur, err := s.c.Find(ctx, filter, options.Find().
		SetSort(sort).
		SetSkip(skip).
		SetLimit(limit))
	if err != nil {
		return nil, err
	}
	groups := []models.Group{}
	if err := cur.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}

// IncLikeCount atomically increments likeCount and returns the group as
// it stands after the increment. Exactly one caller observes each value,
// which is what makes the equality badge threshold reliable under
// concurrent likes.
func (s *Store) IncLikeCount(ctx context.Context, id primitive.ObjectID) (models.Group, error) {
	var g models.Group
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"likeCount": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&g)
	if err != nil {
		return models.Group{}, err
	}
	return g, nil
}

// IncPostCount adjusts postCount by delta (+1 on post create, -1 on
// post delete). Returns mongo.ErrNoDocuments when id does not resolve.
func (s *Store) IncPostCount(ctx context.Context, id primitive.ObjectID, delta int64) error {
	res, err := s.c.UpdateByID(ctx, id, bson.M{"$inc": bson.M{"postCount": delta}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// AwardBadge appends the badge and bumps badgeCount in one write, so
// badgeCount == len(badges) holds after every award path.
func (s *Store) AwardBadge(ctx context.Context, id primitive.ObjectID, badge string) error {
	res, err := s.c.UpdateByID(ctx, id, bson.M{
		"$push": bson.M{"badges": badge},
		"$inc":  bson.M{"badgeCount": 1},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// FindCreatedBetween returns groups with createdAt in [start, end),
// used by the anniversary sweep.
func (s *Store) FindCreatedBetween(ctx context.Context, start, end time.Time) ([]models.Group, error) {
	cur, err := s.c.Find(ctx, bson.M{
		"createdAt": bson.M{"$gte": start, "$lt": end},
	})
	if err != nil {
		return nil, err
	}
	groups := []models.Group{}
	if err := cur.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}
