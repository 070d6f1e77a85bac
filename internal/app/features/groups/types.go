// internal/app/features/groups/types.go
package groups

import (
	"time"

	"github.com/codeit-toyproject-five/zogakzip/internal/domain/models"
)

// createGroupRequest is the body of POST /api/groups. IsPublic is a
// pointer so that an omitted field can be told apart from false.
type createGroupRequest struct {
	Name         string `json:"name"`
	Password     string `json:"password"`
	ImageURL     string `json:"imageUrl"`
	IsPublic     *bool  `json:"isPublic"`
	Introduction string `json:"introduction"`
}

// updateGroupRequest is the body of PATCH /api/groups/{groupId}.
// Password authorizes the change; nil fields are left untouched.
type updateGroupRequest struct {
	Password     string  `json:"password"`
	Name         *string `json:"name"`
	ImageURL     *string `json:"imageUrl"`
	IsPublic     *bool   `json:"isPublic"`
	Introduction *string `json:"introduction"`
}

type passwordRequest struct {
	Password string `json:"password"`
}

// groupResponse is the detail-shaped group body returned by create,
// detail, and update.
type groupResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ImageURL     string    `json:"imageUrl"`
	IsPublic     bool      `json:"isPublic"`
	LikeCount    int64     `json:"likeCount"`
	BadgeCount   int64     `json:"badgeCount"`
	Badges       []string  `json:"badges"`
	PostCount    int64     `json:"postCount"`
	CreatedAt    time.Time `json:"createdAt"`
	Introduction string    `json:"introduction"`
}

// groupListItem is the row shape of GET /api/groups; it carries
// badgeCount but not the badge list itself.
type groupListItem struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ImageURL     string    `json:"imageUrl"`
	IsPublic     bool      `json:"isPublic"`
	LikeCount    int64     `json:"likeCount"`
	BadgeCount   int64     `json:"badgeCount"`
	PostCount    int64     `json:"postCount"`
	CreatedAt    time.Time `json:"createdAt"`
	Introduction string    `json:"introduction"`
}

type isPublicResponse struct {
	ID       string `json:"id"`
	IsPublic bool   `json:"isPublic"`
}

func toGroupResponse(g models.Group) groupResponse {
	badges := g.Badges
	if badges == nil {
		badges = []string{}
	}
	return groupResponse{
		ID:           g.ID.Hex(),
		Name:         g.Name,
		ImageURL:     g.ImageURL,
		IsPublic:     g.IsPublic,
		LikeCount:    g.LikeCount,
		BadgeCount:   g.BadgeCount,
		Badges:       badges,
		PostCount:    g.PostCount,
		CreatedAt:    g.CreatedAt,
		Introduction: g.Introduction,
	}
}

func toGroupListItem(g models.Group) groupListItem {
	return groupListItem{
		ID:           g.ID.Hex(),
		Name:         g.Name,
		ImageURL:     g.ImageURL,
		IsPublic:     g.IsPublic,
		LikeCount:    g.LikeCount,
		BadgeCount:   g.BadgeCount,
		PostCount:    g.PostCount,
		CreatedAt:    g.CreatedAt,
		Introduction: g.Introduction,
	}
}
