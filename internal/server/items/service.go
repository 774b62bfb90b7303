// Package items implements item reporting and browsing.
package items

import (
	"context"
	"errors"
	"strings"

	"github.com/Asad-NCS/lostandfound/internal/domain"
	"github.com/Asad-NCS/lostandfound/internal/server/users"
)

var (
	ErrMissingFields = errors.New("Title, category and location are required.")
	ErrInvalidStatus = errors.New("Invalid status filter.")
)

type Service struct {
	repo  Repository
	users users.Repository
}

func NewService(repo Repository, userRepo users.Repository) *Service {
	return &Service{repo: repo, users: userRepo}
}

// Create reports a new item for the given user. imageURL points to an
// already stored upload and may be empty.
func (s *Service) Create(ctx context.Context, in domain.NewItem, imageURL string) (*domain.Item, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Category = strings.TrimSpace(in.Category)
	in.Location = strings.TrimSpace(in.Location)
	if in.Title == "" || in.Category == "" || in.Location == "" {
		return nil, ErrMissingFields
	}

	reporter, err := s.users.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, &domain.Item{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Location:    in.Location,
		IsLost:      in.IsLost,
		ImageURL:    imageURL,
		User:        &domain.UserRef{ID: reporter.ID, Username: reporter.Username},
	})
}

// List returns items, optionally filtered to "lost" or "found".
func (s *Service) List(ctx context.Context, status string) ([]domain.Item, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	switch status {
	case "", "lost", "found":
	default:
		return nil, ErrInvalidStatus
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if status == "" {
		return items, nil
	}

	wantLost := status == "lost"
	filtered := items[:0]
	for _, item := range items {
		if item.IsLost == wantLost {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Item, error) {
	return s.repo.GetByID(ctx, id)
}
