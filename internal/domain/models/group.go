// internal/domain/models/group.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Group is a top-level community that owns posts and accrues its own
// likes and badges.
//
// NOTE:
//   - Badges is an append-only list; insertion order is award order.
//   - BadgeCount mirrors len(Badges) and PostCount mirrors the number of
//     live posts referencing this group. Both are maintained incrementally
//     by the engagement rules, never recomputed.
//   - Password holds a bcrypt hash of the group's shared secret. Clients
//     still send the plaintext secret; only the at-rest form changed.
type Group struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	Name         string             `bson:"name" json:"name"`
	ImageURL     string             `bson:"imageUrl" json:"imageUrl"`
	IsPublic     bool               `bson:"isPublic" json:"isPublic"`
	Introduction string             `bson:"introduction" json:"introduction"`
	Password     string             `bson:"password" json:"-"`

	LikeCount  int64    `bson:"likeCount" json:"likeCount"`
	BadgeCount int64    `bson:"badgeCount" json:"badgeCount"`
	Badges     []string `bson:"badges" json:"badges"`
	PostCount  int64    `bson:"postCount" json:"postCount"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
