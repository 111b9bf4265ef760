package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/mjbconsultora/website/internal/api/validation"
	"github.com/mjbconsultora/website/internal/logging"
)

// Review is one entry of the static review-data file
type Review struct {
	Name   string `json:"name" validate:"required,max=100"`
	Date   string `json:"date" validate:"required,max=50"`
	Rating int    `json:"rating" validate:"min=1,max=5"`
	Text   string `json:"text" validate:"required,max=2000"`
}

// ReviewIssue reports why an entry of the file was rejected
type ReviewIssue struct {
	Index  int                          `json:"index"`
	Errors []validation.ValidationError `json:"errors"`
}

func (i ReviewIssue) String() string {
	return fmt.Sprintf("review #%d: %v", i.Index, i.Errors)
}

// ParseReviews decodes data and splits it into valid entries and issues
func ParseReviews(v *validator.Validate, data []byte) ([]Review, []ReviewIssue, error) {
	var all []Review
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, nil, fmt.Errorf("failed to parse reviews: %w", err)
	}

	valid := make([]Review, 0, len(all))
	var issues []ReviewIssue
	for i, r := range all {
		if err := v.Struct(r); err != nil {
			issues = append(issues, ReviewIssue{Index: i, Errors: validation.FormatValidationError(err)})
			continue
		}
		valid = append(valid, r)
	}
	return valid, issues, nil
}

// ReviewService serves the review file, re-reading it when it changes on disk
type ReviewService struct {
	path     string
	validate *validator.Validate

	mu      sync.Mutex
	modTime time.Time
	reviews []Review
}

// NewReviewService creates a review service reading path
func NewReviewService(path string) *ReviewService {
	return &ReviewService{
		path:     path,
		validate: validation.New(),
		reviews:  []Review{},
	}
}

// List returns the valid reviews. A missing file yields an empty list.
func (s *ReviewService) List() ([]Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	info, err := os.Stat(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.reviews, s.modTime = []Review{}, time.Time{}
		return s.reviews, nil
	}
	if err != nil {
		return nil, logging.WrapError(err, "failed to stat reviews file")
	}

	if info.ModTime().Equal(s.modTime) {
		return s.reviews, nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, logging.WrapError(err, "failed to read reviews file")
	}

	reviews, issues, err := ParseReviews(s.validate, data)
	if err != nil {
		return nil, err
	}
	for _, issue := range issues {
		logging.GetGlobalLogger().Warn("Reviews: skipping %s", issue)
	}

	s.reviews, s.modTime = reviews, info.ModTime()
	return s.reviews, nil
}
