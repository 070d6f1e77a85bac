// internal/app/features/comments/types.go
package comments

import (
	"time"

	"github.com/codeit-toyproject-five/zogakzip/internal/domain/models"
)

// createCommentRequest is the body of POST /api/posts/{postId}/comments.
type createCommentRequest struct {
	Nickname string `json:"nickname"`
	Content  string `json:"content"`
	Password string `json:"password"`
}

// updateCommentRequest is the body of PUT /api/comments/{commentId};
// the replacement is whole, not partial.
type updateCommentRequest struct {
	Nickname string `json:"nickname"`
	Content  string `json:"content"`
	Password string `json:"password"`
}

type passwordRequest struct {
	Password string `json:"password"`
}

type commentResponse struct {
	ID        string    `json:"id"`
	Nickname  string    `json:"nickname"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// commentListItem is the row shape of the comment listing; postTitle is
// joined from the owning post.
type commentListItem struct {
	ID        string    `json:"id"`
	Nickname  string    `json:"nickname"`
	Content   string    `json:"content"`
	PostTitle string    `json:"postTitle"`
	CreatedAt time.Time `json:"createdAt"`
}

func toCommentResponse(cm models.Comment) commentResponse {
	return commentResponse{
		ID:        cm.ID.Hex(),
		Nickname:  cm.Nickname,
		Content:   cm.Content,
		CreatedAt: cm.CreatedAt,
	}
}

func toCommentListItem(cm models.Comment, postTitle string) commentListItem {
	return commentListItem{
		ID:        cm.ID.Hex(),
		Nickname:  cm.Nickname,
		Content:   cm.Content,
		PostTitle: postTitle,
		CreatedAt: cm.CreatedAt,
	}
}
