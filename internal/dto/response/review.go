package response

import (
	"time"

	"yamdb-api/internal/data/entity"
)

type ReviewResponse struct {
	ID      string    `json:"id"`
	Author  string    `json:"author"`
	PubDate time.Time `json:"pub_date"`
	Text    string    `json:"text"`
	Score   int       `json:"score"`
}

type CommentResponse struct {
	ID      string    `json:"id"`
	Author  string    `json:"author"`
	PubDate time.Time `json:"pub_date"`
	Text    string    `json:"text"`
}

func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:      review.ID.String(),
		Author:  review.AuthorUsername,
		PubDate: review.PubDate,
		Text:    review.Text,
		Score:   review.Score,
	}
}

func CommentToResponse(comment *entity.Comment) CommentResponse {
	return CommentResponse{
		ID:      comment.ID.String(),
		Author:  comment.AuthorUsername,
		PubDate: comment.PubDate,
		Text:    comment.Text,
	}
}
