package response

import (
	"time"

	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type RequestedItemResponse struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"ownerId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Available   bool      `json:"available"`
}

type ItemRequestResponse struct {
	ID          uuid.UUID                `json:"id"`
	Description string                   `json:"description"`
	CreatedAt   time.Time                `json:"created"`
	Items       []*RequestedItemResponse `json:"items" copier:"-"`
}

func FromRequestView(v *queries.RequestView) *ItemRequestResponse {
	res := &ItemRequestResponse{}
	copyView(res, v)
	res.Items = make([]*RequestedItemResponse, len(v.Items))
	for i, it := range v.Items {
		item := &RequestedItemResponse{}
		copyView(item, it)
		res.Items[i] = item
	}
	return res
}

func FromRequestViews(views []*queries.RequestView) []*ItemRequestResponse {
	res := make([]*ItemRequestResponse, len(views))
	for i, v := range views {
		res[i] = FromRequestView(v)
	}
	return res
}
