// internal/domain/models/comment.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment belongs to a post. Password is the bcrypt hash of the
// comment's edit/delete secret.
type Comment struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	PostID    primitive.ObjectID `bson:"postId" json:"postId"`
	Nickname  string             `bson:"nickname" json:"nickname"`
	Content   string             `bson:"content" json:"content"`
	Password  string             `bson:"password" json:"-"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
