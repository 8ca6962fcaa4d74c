package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/cardkeeper/internal/client/api"
	"github.com/dmitrijs2005/cardkeeper/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCardAPI implements CardAPI for unit tests.
type fakeCardAPI struct {
	ListRet   []models.Card
	ListErr   error
	CardRet   models.Card
	CardErr   error
	DeleteErr error

	Calls       []string
	LastUserID  models.ID
	LastCardID  models.ID
	LastPayload models.CardPayload
	LastQuery   string
}

func (f *fakeCardAPI) ListCards(_ context.Context, userID models.ID) ([]models.Card, error) {
	f.Calls = append(f.Calls, "list")
	f.LastUserID = userID
	return f.ListRet, f.ListErr
}

func (f *fakeCardAPI) CreateCard(_ context.Context, userID models.ID, p models.CardPayload) (models.Card, error) {
	f.Calls = append(f.Calls, "create")
	f.LastUserID, f.LastPayload = userID, p
	return f.CardRet, f.CardErr
}

func (f *fakeCardAPI) UpdateCard(_ context.Context, userID, cardID models.ID, p models.CardPayload) (models.Card, error) {
	f.Calls = append(f.Calls, "update")
	f.LastUserID, f.LastCardID, f.LastPayload = userID, cardID, p
	return f.CardRet, f.CardErr
}

func (f *fakeCardAPI) DeleteCard(_ context.Context, userID, cardID models.ID) error {
	f.Calls = append(f.Calls, "delete")
	f.LastUserID, f.LastCardID = userID, cardID
	return f.DeleteErr
}

func (f *fakeCardAPI) GetCard(_ context.Context, cardID models.ID) (models.Card, error) {
	f.Calls = append(f.Calls, "get")
	f.LastCardID = cardID
	return f.CardRet, f.CardErr
}

func (f *fakeCardAPI) SearchCards(_ context.Context, query string) ([]models.Card, error) {
	f.Calls = append(f.Calls, "search")
	f.LastQuery = query
	return f.ListRet, f.ListErr
}

func TestCardService_ListCards_KeepsOrder(t *testing.T) {
	cards := []models.Card{{ID: "2", FullName: "B"}, {ID: "1", FullName: "A"}}
	fc := &fakeCardAPI{ListRet: cards}

	got, err := NewCardService(fc).ListCards(context.Background(), "5")
	require.NoError(t, err)
	assert.Equal(t, cards, got)
	assert.Equal(t, models.ID("5"), fc.LastUserID)
}

func TestCardService_ListCards_EmptyIsNotNil(t *testing.T) {
	got, err := NewCardService(&fakeCardAPI{}).ListCards(context.Background(), "5")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCardService_ListCards_WrapsError(t *testing.T) {
	fc := &fakeCardAPI{ListErr: api.ErrUnauthorized}

	_, err := NewCardService(fc).ListCards(context.Background(), "5")
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrUnauthorized)
}

func TestCardService_CreateCard_SendsBackendShape(t *testing.T) {
	fc := &fakeCardAPI{CardRet: models.Card{ID: "10", FullName: "Jane Doe", Phone: "555-1234"}}

	got, err := NewCardService(fc).CreateCard(context.Background(), "5",
		models.CardForm{Title: " Jane Doe ", Phone: "555-1234"})
	require.NoError(t, err)

	assert.Equal(t, models.CardPayload{FullName: "Jane Doe", Phone: "555-1234"}, fc.LastPayload)
	assert.Equal(t, models.ID("10"), got.ID)
}

func TestCardService_CreateCard_InvalidFormSkipsCall(t *testing.T) {
	fc := &fakeCardAPI{}

	_, err := NewCardService(fc).CreateCard(context.Background(), "5", models.CardForm{Title: "  ", Name: "CTO"})

	var fieldErrs models.FieldErrors
	require.True(t, errors.As(err, &fieldErrs))
	assert.Equal(t, "Name is required", fieldErrs.Get("title"))
	assert.Equal(t, "Phone number is required", fieldErrs.Get("phone"))
	assert.Empty(t, fc.Calls)
}

func TestCardService_UpdateCard_FullReplacement(t *testing.T) {
	fc := &fakeCardAPI{CardRet: models.Card{ID: "3"}}
	form := models.CardForm{Title: "Jane", Name: "", Phone: "1", Email: "", Address: "Main St"}

	_, err := NewCardService(fc).UpdateCard(context.Background(), "5", "3", form)
	require.NoError(t, err)

	assert.Equal(t, []string{"update"}, fc.Calls)
	assert.Equal(t, models.ID("5"), fc.LastUserID)
	assert.Equal(t, models.ID("3"), fc.LastCardID)
	assert.Equal(t, models.CardPayload{FullName: "Jane", Phone: "1", Address: "Main St"}, fc.LastPayload)
}

func TestCardService_DeleteCard(t *testing.T) {
	fc := &fakeCardAPI{}
	require.NoError(t, NewCardService(fc).DeleteCard(context.Background(), "5", "3"))
	assert.Equal(t, models.ID("3"), fc.LastCardID)

	fc.DeleteErr = &api.Error{StatusCode: 404, Message: "Card not found"}
	err := NewCardService(fc).DeleteCard(context.Background(), "5", "3")
	require.Error(t, err)
	assert.Equal(t, "Card not found", api.MessageOf(err, ""))
}

func TestCardService_GetAndSearch(t *testing.T) {
	fc := &fakeCardAPI{CardRet: models.Card{ID: "3", FullName: "Jane"}}
	svc := NewCardService(fc)

	card, err := svc.GetCard(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, "Jane", card.FullName)

	found, err := svc.SearchCards(context.Background(), "jan")
	require.NoError(t, err)
	assert.Equal(t, "jan", fc.LastQuery)
	assert.NotNil(t, found)
}
