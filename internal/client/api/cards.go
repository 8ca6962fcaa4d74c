package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/cardkeeper/internal/client/models"
)

func (c *Client) ListCards(ctx context.Context, userID models.ID) ([]models.Card, error) {
	var cards []models.Card
	r := c.request(ctx).
		SetPathParam("userId", userID.String()).
		SetResult(&cards)
	if err := c.execute(r, http.MethodGet, "/{userId}/cards/my-cards"); err != nil {
		return nil, err
	}
	return cards, nil
}

func (c *Client) CreateCard(ctx context.Context, userID models.ID, p models.CardPayload) (models.Card, error) {
	var card models.Card
	r := c.request(ctx).
		SetPathParam("userId", userID.String()).
		SetBody(p).
		SetResult(&card)
	if err := c.execute(r, http.MethodPost, "/{userId}/cards/create"); err != nil {
		return models.Card{}, err
	}
	return card, nil
}

func (c *Client) UpdateCard(ctx context.Context, userID, cardID models.ID, p models.CardPayload) (models.Card, error) {
	var card models.Card
	r := c.request(ctx).
		SetPathParams(map[string]string{"userId": userID.String(), "cardId": cardID.String()}).
		SetBody(p).
		SetResult(&card)
	if err := c.execute(r, http.MethodPut, "/{userId}/cards/my-cards/{cardId}"); err != nil {
		return models.Card{}, err
	}
	return card, nil
}

func (c *Client) DeleteCard(ctx context.Context, userID, cardID models.ID) error {
	r := c.request(ctx).
		SetPathParams(map[string]string{"userId": userID.String(), "cardId": cardID.String()})
	return c.execute(r, http.MethodDelete, "/{userId}/cards/my-cards/{cardId}")
}

// GetCard fetches a card through the public endpoint.
func (c *Client) GetCard(ctx context.Context, cardID models.ID) (models.Card, error) {
	var card models.Card
	r := c.request(ctx).
		SetPathParam("cardId", cardID.String()).
		SetResult(&card)
	if err := c.execute(r, http.MethodGet, "/cards/{cardId}"); err != nil {
		return models.Card{}, err
	}
	return card, nil
}

func (c *Client) SearchCards(ctx context.Context, query string) ([]models.Card, error) {
	var cards []models.Card
	r := c.request(ctx).
		SetQueryParam("query", query).
		SetResult(&cards)
	if err := c.execute(r, http.MethodGet, "/cards/search"); err != nil {
		return nil, err
	}
	return cards, nil
}
