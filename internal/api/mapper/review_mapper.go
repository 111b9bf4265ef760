package mapper

import (
	"github.com/mjbconsultora/website/internal/api/dto/v1/review"
	"github.com/mjbconsultora/website/internal/service"
)

// ToReviewResponse converts a service Review to its DTO
func ToReviewResponse(r service.Review) review.Response {
	return review.Response{
		Name:   r.Name,
		Date:   r.Date,
		Rating: r.Rating,
		Text:   r.Text,
	}
}

// ToReviewResponses converts a slice of reviews. The result is never nil so it
// always encodes as a JSON array.
func ToReviewResponses(reviews []service.Review) []review.Response {
	result := make([]review.Response, len(reviews))
	for i, r := range reviews {
		result[i] = ToReviewResponse(r)
	}
	return result
}
