package handler

import (
	"time"

	"socialnet/internal/domain/entity"
)

// UserResponse is the public shape of a user account. The password hash never
// leaves the service.
type UserResponse struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	FollowerCount  int       `json:"follower_count"`
	FollowingCount int       `json:"following_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// PostResponse is the public shape of a post.
type PostResponse struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Privacy   string    `json:"privacy"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CommentResponse is the public shape of a comment.
type CommentResponse struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	AuthorID  string    `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReactionResponse is the public shape of a reaction.
type ReactionResponse struct {
	ID         string    `json:"id"`
	AuthorID   string    `json:"author_id"`
	TargetID   string    `json:"target_id"`
	TargetType string    `json:"target_type"`
	Type       string    `json:"type"`
	CreatedAt  time.Time `json:"created_at"`
}

func toUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:             user.ID.String(),
		Username:       user.Username,
		Email:          user.Email,
		FollowerCount:  len(user.Followers),
		FollowingCount: len(user.Following),
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}
}

func toPostResponse(post *entity.Post) *PostResponse {
	return &PostResponse{
		ID:        post.ID.String(),
		AuthorID:  post.AuthorID.String(),
		Title:     post.Title,
		Content:   post.Content,
		Privacy:   string(post.Privacy),
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

func toPostResponses(posts []*entity.Post) []*PostResponse {
	out := make([]*PostResponse, 0, len(posts))
	for _, post := range posts {
		out = append(out, toPostResponse(post))
	}

	return out
}

func toCommentResponse(comment *entity.Comment) *CommentResponse {
	return &CommentResponse{
		ID:        comment.ID.String(),
		PostID:    comment.PostID.String(),
		AuthorID:  comment.AuthorID.String(),
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}

func toCommentResponses(comments []*entity.Comment) []*CommentResponse {
	out := make([]*CommentResponse, 0, len(comments))
	for _, comment := range comments {
		out = append(out, toCommentResponse(comment))
	}

	return out
}

func toReactionResponse(reaction *entity.Reaction) *ReactionResponse {
	return &ReactionResponse{
		ID:         reaction.ID.String(),
		AuthorID:   reaction.AuthorID.String(),
		TargetID:   reaction.TargetID.String(),
		TargetType: string(reaction.TargetType),
		Type:       string(reaction.ReactionType),
		CreatedAt:  reaction.CreatedAt,
	}
}
