package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/codeit-toyproject-five/zogakzip/internal/app/system/secrets"
	"github.com/codeit-toyproject-five/zogakzip/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateGroup creates a test group with the given name and plaintext
// password (stored hashed, as the service does).
func (f *Fixtures) CreateGroup(ctx context.Context, name, password string) models.Group {
	f.t.Helper()
	return f.CreateGroupAt(ctx, name, password, time.Now().UTC())
}

// CreateGroupAt creates a test group with an explicit createdAt, which
// the anniversary sweep tests need.
func (f *Fixtures) CreateGroupAt(ctx context.Context, name, password string, createdAt time.Time) models.Group {
	f.t.Helper()

	hash, err := secrets.Hash(password)
	if err != nil {
		f.t.Fatalf("failed to hash fixture password: %v", err)
	}
	g := models.Group{
		ID:           primitive.NewObjectID(),
		Name:         name,
		ImageURL:     "http://example.com/group.jpg",
		IsPublic:     true,
		Introduction: "test group",
		Password:     hash,
		Badges:       []string{},
		CreatedAt:    createdAt,
	}
	if _, err := f.db.Collection("groups").InsertOne(ctx, g); err != nil {
		f.t.Fatalf("failed to create test group: %v", err)
	}
	return g
}

// CreatePost creates a test post in the given group and bumps the
// group's postCount, keeping the fixture data consistent with the
// invariant the service maintains.
func (f *Fixtures) CreatePost(ctx context.Context, groupID primitive.ObjectID, title, password string) models.Post {
	f.t.Helper()

	hash, err := secrets.Hash(password)
	if err != nil {
		f.t.Fatalf("failed to hash fixture password: %v", err)
	}
	p := models.Post{
		ID:           primitive.NewObjectID(),
		GroupID:      groupID,
		Nickname:     "tester",
		Title:        title,
		Content:      "test content",
		PostPassword: hash,
		ImageURL:     "http://example.com/post.jpg",
		Tags:         []string{"test"},
		Location:     "Seoul",
		Moment:       "2024-01-01",
		IsPublic:     true,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := f.db.Collection("posts").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("failed to create test post: %v", err)
	}
	if _, err := f.db.Collection("groups").UpdateByID(ctx, groupID,
		bson.M{"$inc": bson.M{"postCount": 1}}); err != nil {
		f.t.Fatalf("failed to bump fixture postCount: %v", err)
	}
	return p
}

// CreateComment creates a test comment on the given post and bumps the
// post's commentCount.
func (f *Fixtures) CreateComment(ctx context.Context, postID primitive.ObjectID, content, password string) models.Comment {
	f.t.Helper()

	hash, err := secrets.Hash(password)
	if err != nil {
		f.t.Fatalf("failed to hash fixture password: %v", err)
	}
	cm := models.Comment{
		ID:        primitive.NewObjectID(),
		PostID:    postID,
		Nickname:  "commenter",
		Content:   content,
		Password:  hash,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("comments").InsertOne(ctx, cm); err != nil {
		f.t.Fatalf("failed to create test comment: %v", err)
	}
	if _, err := f.db.Collection("posts").UpdateByID(ctx, postID,
		bson.M{"$inc": bson.M{"commentCount": 1}}); err != nil {
		f.t.Fatalf("failed to bump fixture commentCount: %v", err)
	}
	return cm
}
