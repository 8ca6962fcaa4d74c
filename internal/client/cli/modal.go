package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/cardkeeper/internal/client/api"
	"github.com/dmitrijs2005/cardkeeper/internal/client/models"
)

var errCancelled = errors.New("cancelled")

// Add opens the card editor for a new card.
func (a *App) Add(ctx context.Context) error {
	return a.cardModal(ctx, nil)
}

// Edit opens the card editor pre-filled with an existing card.
func (a *App) Edit(ctx context.Context, args []string) error {
	card, ok := a.cardArg(args, "edit <n|id>")
	if !ok {
		return nil
	}
	return a.cardModal(ctx, &card)
}

// cardModal runs the editor until the card is saved or the user gives up.
// Invalid forms never reach the backend; a failed save keeps the entered
// values for another attempt.
func (a *App) cardModal(ctx context.Context, editing *models.Card) error {
	title := "Add card"
	form := models.CardForm{}
	if editing != nil {
		title = "Edit card"
		form = models.FromBackend(*editing)
	}

	fmt.Fprintln(a.out, title)
	fmt.Fprintln(a.out, "(* required; Enter keeps the value in brackets, '-' clears it)")

	for {
		var err error
		form, err = a.fillCardForm(form)
		if err != nil {
			return err
		}
		form = form.Trimmed()

		if errs := form.Validate(); len(errs) > 0 {
			a.printFieldErrors(errs)
			if !a.confirmOrCancel("Fix the form?") {
				return errCancelled
			}
			continue
		}

		fmt.Fprintln(a.out, "Saving...")
		err = a.saveCard(ctx, editing, form)
		if err == nil {
			fmt.Fprintln(a.out, "Card saved.")
			return a.List(ctx)
		}
		if errors.Is(err, api.ErrUnauthorized) {
			return err
		}

		a.logger.Error(ctx, "error saving card", "error", err)
		a.dialogs.Notify("Failed to save card: " + api.MessageOf(err, "Unknown error"))
		if !a.confirmOrCancel("Try again?") {
			return err
		}
	}
}

func (a *App) saveCard(ctx context.Context, editing *models.Card, form models.CardForm) error {
	user, ok := a.session.User()
	if !ok {
		return api.ErrUnauthorized
	}

	cctx, cancel := a.callCtx(ctx)
	defer cancel()

	var err error
	if editing == nil {
		_, err = a.cardService.CreateCard(cctx, user.ID, form)
	} else {
		_, err = a.cardService.UpdateCard(cctx, user.ID, editing.ID, form)
	}
	return err
}

func (a *App) fillCardForm(f models.CardForm) (models.CardForm, error) {
	fields := []struct {
		prompt string
		value  *string
	}{
		{"Name*", &f.Title},
		{"Job title", &f.Name},
		{"Phone*", &f.Phone},
		{"Email", &f.Email},
		{"Address", &f.Address},
	}

	for _, fld := range fields {
		v, err := GetTextWithDefault(a.reader, fld.prompt, *fld.value, a.out)
		if err != nil {
			return f, err
		}
		*fld.value = v
	}
	return f, nil
}

// confirmOrCancel asks prompt and prints "Cancelled." on a no.
func (a *App) confirmOrCancel(prompt string) bool {
	ok, err := a.dialogs.Confirm(prompt)
	if err != nil || !ok {
		fmt.Fprintln(a.out, "Cancelled.")
		return false
	}
	return true
}
