package services

import (
	"context"
	"errors"
	"strings"

	"github.com/Asad-NCS/lostandfound/internal/client/api"
	"github.com/Asad-NCS/lostandfound/internal/client/session"
	"github.com/Asad-NCS/lostandfound/internal/domain"
)

var ErrMissingItemFields = errors.New("title, category and location are required")

// Statuses accepted by List. An empty status means all items.
const (
	StatusLost  = "lost"
	StatusFound = "found"
)

// ItemService lists, loads and reports items.
type ItemService struct {
	client api.Client
	store  *session.Store
}

func NewItemService(client api.Client, store *session.Store) *ItemService {
	return &ItemService{client: client, store: store}
}

func (s *ItemService) List(ctx context.Context, status string) ([]domain.Item, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if status != "" && status != StatusLost && status != StatusFound {
		return nil, errors.New("status must be lost or found")
	}
	return s.client.Items(ctx, status)
}

func (s *ItemService) Get(ctx context.Context, id int64) (*domain.Item, error) {
	return s.client.Item(ctx, id)
}

// Report creates a new item for the logged-in user, optionally attaching an
// image read from imagePath.
func (s *ItemService) Report(ctx context.Context, item domain.NewItem, imagePath string) (string, error) {
	user := s.store.User()
	if user == nil {
		return "", domain.ErrNotAuthenticated
	}

	item.Title = strings.TrimSpace(item.Title)
	item.Category = strings.TrimSpace(item.Category)
	item.Location = strings.TrimSpace(item.Location)
	if item.Title == "" || item.Category == "" || item.Location == "" {
		return "", ErrMissingItemFields
	}
	item.UserID = user.ID

	return s.client.CreateItem(ctx, item, imagePath)
}
