package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/cardkeeper/internal/client/models"
)

// CardAPI is the part of the API client the card service needs.
// *api.Client implements it.
type CardAPI interface {
	ListCards(ctx context.Context, userID models.ID) ([]models.Card, error)
	CreateCard(ctx context.Context, userID models.ID, payload models.CardPayload) (models.Card, error)
	UpdateCard(ctx context.Context, userID, cardID models.ID, payload models.CardPayload) (models.Card, error)
	DeleteCard(ctx context.Context, userID, cardID models.ID) error
	GetCard(ctx context.Context, cardID models.ID) (models.Card, error)
	SearchCards(ctx context.Context, query string) ([]models.Card, error)
}

// CardService manages the business cards of the logged-in user.
//
// Create and update take the form shape and send its backend translation;
// update is a full replacement. Lists keep the backend order and are never
// nil. Errors from the API client are wrapped, so errors.Is against the api
// sentinels keeps working.
type CardService interface {
	ListCards(ctx context.Context, userID models.ID) ([]models.Card, error)
	CreateCard(ctx context.Context, userID models.ID, form models.CardForm) (models.Card, error)
	UpdateCard(ctx context.Context, userID, cardID models.ID, form models.CardForm) (models.Card, error)
	DeleteCard(ctx context.Context, userID, cardID models.ID) error
	GetCard(ctx context.Context, cardID models.ID) (models.Card, error)
	SearchCards(ctx context.Context, query string) ([]models.Card, error)
}

type cardService struct {
	api CardAPI
}

func NewCardService(c CardAPI) CardService {
	return &cardService{api: c}
}

func (s *cardService) ListCards(ctx context.Context, userID models.ID) ([]models.Card, error) {
	cards, err := s.api.ListCards(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	if cards == nil {
		cards = []models.Card{}
	}
	return cards, nil
}

func (s *cardService) CreateCard(ctx context.Context, userID models.ID, form models.CardForm) (models.Card, error) {
	form = form.Trimmed()
	if errs := form.Validate(); len(errs) > 0 {
		return models.Card{}, errs
	}

	card, err := s.api.CreateCard(ctx, userID, models.ToBackend(form))
	if err != nil {
		return models.Card{}, fmt.Errorf("create card: %w", err)
	}
	return card, nil
}

func (s *cardService) UpdateCard(ctx context.Context, userID, cardID models.ID, form models.CardForm) (models.Card, error) {
	form = form.Trimmed()
	if errs := form.Validate(); len(errs) > 0 {
		return models.Card{}, errs
	}

	card, err := s.api.UpdateCard(ctx, userID, cardID, models.ToBackend(form))
	if err != nil {
		return models.Card{}, fmt.Errorf("update card %s: %w", cardID, err)
	}
	return card, nil
}

func (s *cardService) DeleteCard(ctx context.Context, userID, cardID models.ID) error {
	if err := s.api.DeleteCard(ctx, userID, cardID); err != nil {
		return fmt.Errorf("delete card %s: %w", cardID, err)
	}
	return nil
}

func (s *cardService) GetCard(ctx context.Context, cardID models.ID) (models.Card, error) {
	card, err := s.api.GetCard(ctx, cardID)
	if err != nil {
		return models.Card{}, fmt.Errorf("get card %s: %w", cardID, err)
	}
	return card, nil
}

func (s *cardService) SearchCards(ctx context.Context, query string) ([]models.Card, error) {
	cards, err := s.api.SearchCards(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search cards: %w", err)
	}
	if cards == nil {
		cards = []models.Card{}
	}
	return cards, nil
}
