package response

import (
	"time"

	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type CommentResponse struct {
	ID         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	CreatedAt  time.Time `json:"created"`
}

func FromCommentView(v *queries.CommentView) *CommentResponse {
	res := &CommentResponse{}
	copyView(res, v)
	return res
}

type ItemResponse struct {
	ID          uuid.UUID             `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Available   bool                  `json:"available"`
	RequestID   *uuid.UUID            `json:"requestId"`
	LastBooking *BookingShortResponse `json:"lastBooking"`
	NextBooking *BookingShortResponse `json:"nextBooking"`
	Comments    []*CommentResponse    `json:"comments"`
}

func FromItemView(v *queries.ItemView) *ItemResponse {
	comments := make([]*CommentResponse, len(v.Comments))
	for i, c := range v.Comments {
		comments[i] = FromCommentView(c)
	}
	return &ItemResponse{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Available:   v.Available,
		RequestID:   v.RequestID,
		LastBooking: fromBookingShort(v.LastBooking),
		NextBooking: fromBookingShort(v.NextBooking),
		Comments:    comments,
	}
}

func FromItemViews(views []*queries.ItemView) []*ItemResponse {
	res := make([]*ItemResponse, len(views))
	for i, v := range views {
		res[i] = FromItemView(v)
	}
	return res
}
