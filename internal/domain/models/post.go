// internal/domain/models/post.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is a memory entry owned by exactly one group.
//
// GroupID is a plain reference, not an enforced foreign key: deleting a
// group does not cascade to its posts, and deleting a post does not
// cascade to its comments.
type Post struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	GroupID      primitive.ObjectID `bson:"groupId" json:"groupId"`
	Nickname     string             `bson:"nickname" json:"nickname"`
	Title        string             `bson:"title" json:"title"`
	Content      string             `bson:"content" json:"content"`
	PostPassword string             `bson:"postPassword" json:"-"`
	ImageURL     string             `bson:"imageUrl" json:"imageUrl"`
	Tags         []string           `bson:"tags" json:"tags"`
	Location     string             `bson:"location" json:"location"`
	// Moment is a free-form date string supplied by the client; it is
	// stored and returned verbatim.
	Moment   string `bson:"moment" json:"moment"`
	IsPublic bool   `bson:"isPublic" json:"isPublic"`

	LikeCount    int64 `bson:"likeCount" json:"likeCount"`
	CommentCount int64 `bson:"commentCount" json:"commentCount"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
