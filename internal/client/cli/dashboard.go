package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/cardkeeper/internal/client/api"
	"github.com/dmitrijs2005/cardkeeper/internal/client/models"
)

const emptyStateCTA = "No business cards yet. Create your first business card to get started: type 'add'."

// loadCards re-lists the cards of the current user. On failure the error is
// shown and the previously loaded list is kept.
func (a *App) loadCards(ctx context.Context) error {
	a.needReload = false

	user, ok := a.session.User()
	if !ok {
		return api.ErrUnauthorized
	}

	fmt.Fprintln(a.out, "Loading your business cards...")
	cctx, cancel := a.callCtx(ctx)
	defer cancel()

	cards, err := a.cardService.ListCards(cctx, user.ID)
	if err != nil {
		if !errors.Is(err, api.ErrUnauthorized) {
			a.logger.Error(ctx, "error loading cards", "user_id", user.ID, "error", err)
			fmt.Fprintln(a.out, "Error: Failed to load cards")
		}
		return err
	}

	a.cards = cards
	return nil
}

func (a *App) renderCards() {
	if len(a.cards) == 0 {
		fmt.Fprintln(a.out, emptyStateCTA)
		return
	}
	printCards(a.out, a.cards)
}

func printCards(w io.Writer, cards []models.Card) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tID\tNAME\tJOB TITLE\tPHONE\tEMAIL\tADDRESS")
	for i, c := range cards {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			i+1, c.ID, c.FullName, dash(c.JobTitle), c.Phone, dash(c.Email), dash(c.Address))
	}
	_ = tw.Flush()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// List reloads the cards from the backend and prints them.
func (a *App) List(ctx context.Context) error {
	if err := a.loadCards(ctx); err != nil {
		return err
	}
	a.renderCards()
	return nil
}

// resolveCard finds a card of the loaded list by its 1-based position or,
// failing that, by its id.
func (a *App) resolveCard(ref string) (models.Card, bool) {
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(a.cards) {
		return a.cards[n-1], true
	}
	for _, c := range a.cards {
		if c.ID.String() == ref {
			return c, true
		}
	}
	return models.Card{}, false
}

func (a *App) cardArg(args []string, usage string) (models.Card, bool) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage:", usage)
		return models.Card{}, false
	}
	card, ok := a.resolveCard(args[0])
	if !ok {
		fmt.Fprintf(a.out, "No card %q in the list. Type 'list' to see your cards.\n", args[0])
	}
	return card, ok
}

// Delete removes a card after confirmation and reloads the list.
// Declining the confirmation does nothing.
func (a *App) Delete(ctx context.Context, args []string) error {
	card, ok := a.cardArg(args, "delete <n|id>")
	if !ok {
		return nil
	}

	confirmed, err := a.dialogs.Confirm(fmt.Sprintf("Delete the card of %s?", card.FullName))
	if err != nil || !confirmed {
		return err
	}

	user, ok := a.session.User()
	if !ok {
		return api.ErrUnauthorized
	}

	fmt.Fprintln(a.out, "Deleting...")
	cctx, cancel := a.callCtx(ctx)
	err = a.cardService.DeleteCard(cctx, user.ID, card.ID)
	cancel()
	if err != nil {
		if !errors.Is(err, api.ErrUnauthorized) {
			a.logger.Error(ctx, "error deleting card", "card_id", card.ID, "error", err)
			a.dialogs.Notify("Failed to delete card: " + api.MessageOf(err, "Unknown error"))
		}
		return err
	}

	fmt.Fprintln(a.out, "Card deleted.")
	return a.List(ctx)
}

// Show prints a single card fetched from the public card endpoint.
func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: show <id>")
		return nil
	}

	id := models.ID(args[0])
	if card, ok := a.resolveCard(args[0]); ok {
		id = card.ID
	}

	cctx, cancel := a.callCtx(ctx)
	card, err := a.cardService.GetCard(cctx, id)
	cancel()
	if err != nil {
		if !errors.Is(err, api.ErrUnauthorized) {
			fmt.Fprintln(a.out, "Error:", api.MessageOf(err, "Failed to load card"))
		}
		return err
	}

	fmt.Fprintf(a.out, "Name:      %s\n", card.FullName)
	fmt.Fprintf(a.out, "Job title: %s\n", dash(card.JobTitle))
	fmt.Fprintf(a.out, "Phone:     %s\n", card.Phone)
	fmt.Fprintf(a.out, "Email:     %s\n", dash(card.Email))
	fmt.Fprintf(a.out, "Address:   %s\n", dash(card.Address))
	return nil
}

// Search prints the cards matching the query. The dashboard list is left
// untouched.
func (a *App) Search(ctx context.Context, args []string) error {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		fmt.Fprintln(a.out, "Usage: search <query>")
		return nil
	}

	fmt.Fprintln(a.out, "Searching...")
	cctx, cancel := a.callCtx(ctx)
	cards, err := a.cardService.SearchCards(cctx, query)
	cancel()
	if err != nil {
		if !errors.Is(err, api.ErrUnauthorized) {
			fmt.Fprintln(a.out, "Error:", api.MessageOf(err, "Search failed"))
		}
		return err
	}

	if len(cards) == 0 {
		fmt.Fprintf(a.out, "No cards match %q.\n", query)
		return nil
	}
	printCards(a.out, cards)
	return nil
}
