// internal/app/features/posts/types.go
package posts

import (
	"time"

	"github.com/codeit-toyproject-five/zogakzip/internal/domain/models"
)

// createPostRequest is the body of POST /api/groups/{groupId}/posts.
type createPostRequest struct {
	Nickname     string   `json:"nickname"`
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	PostPassword string   `json:"postPassword"`
	ImageURL     string   `json:"imageUrl"`
	Tags         []string `json:"tags"`
	Location     string   `json:"location"`
	Moment       string   `json:"moment"`
	IsPublic     *bool    `json:"isPublic"`
}

// updatePostRequest is the body of PATCH /api/posts/{postId}.
// PostPassword authorizes the change; nil fields are left untouched.
type updatePostRequest struct {
	PostPassword string    `json:"postPassword"`
	Nickname     *string   `json:"nickname"`
	Title        *string   `json:"title"`
	Content      *string   `json:"content"`
	ImageURL     *string   `json:"imageUrl"`
	Tags         *[]string `json:"tags"`
	Location     *string   `json:"location"`
	Moment       *string   `json:"moment"`
	IsPublic     *bool     `json:"isPublic"`
}

type deletePostRequest struct {
	PostPassword string `json:"postPassword"`
}

type passwordRequest struct {
	Password string `json:"password"`
}

type postResponse struct {
	ID           string    `json:"id"`
	GroupID      string    `json:"groupId"`
	Nickname     string    `json:"nickname"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	ImageURL     string    `json:"imageUrl"`
	Tags         []string  `json:"tags"`
	Location     string    `json:"location"`
	Moment       string    `json:"moment"`
	IsPublic     bool      `json:"isPublic"`
	LikeCount    int64     `json:"likeCount"`
	CommentCount int64     `json:"commentCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

type isPublicResponse struct {
	ID       string `json:"id"`
	IsPublic bool   `json:"isPublic"`
}

func toPostResponse(p models.Post) postResponse {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return postResponse{
		ID:           p.ID.Hex(),
		GroupID:      p.GroupID.Hex(),
		Nickname:     p.Nickname,
		Title:        p.Title,
		Content:      p.Content,
		ImageURL:     p.ImageURL,
		Tags:         tags,
		Location:     p.Location,
		Moment:       p.Moment,
		IsPublic:     p.IsPublic,
		LikeCount:    p.LikeCount,
		CommentCount: p.CommentCount,
		CreatedAt:    p.CreatedAt,
	}
}
