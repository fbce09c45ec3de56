package deck

import (
	"context"
	"fmt"

	"github.com/stoker-console/stoker"
)

// Command returns the `card` command managing d. Output goes to logger.
func Command(d *Deck, logger stoker.Logger) *stoker.Command {
	return stoker.NewBuilder("card").
		WithDescription("Manage cards").
		SubCommand("add").
		WithDescription("Add a card to the deck").
		StringArgument("name").
		WithDescription("The name of the card to add").
		WithSuggestions(d.Catalog).
		Parent().
		Handle(func(ctx context.Context, args *stoker.ParsedArgs) error {
			name, err := stoker.RequireNonEmptyArgument(args, "name")
			if err != nil {
				return err
			}
			card, err := d.Add(name)
			if err != nil {
				return err
			}
			logger.Log("Adding card: " + card)
			return nil
		}).
		UseHelp(logger).
		Parent().
		SubCommand("add-random").
		WithDescription("Add an amount of random cards to the deck").
		IntArgument("amount").
		WithDescription("The amount of cards to add").
		WithDefaultValue("1").
		Parent().
		Handle(func(ctx context.Context, args *stoker.ParsedArgs) error {
			amount, err := stoker.RequireArgument[int](args, "amount")
			if err != nil {
				return err
			}
			added, err := d.AddRandom(amount)
			if err != nil {
				return err
			}
			logger.Log(fmt.Sprintf("Adding %d random cards to the deck", amount))
			for _, card := range added {
				logger.Log(fmt.Sprintf("Adding %s to hand.", card))
			}
			return nil
		}).
		UseHelp(logger).
		Parent().
		SubCommand("remove").
		WithDescription("Remove a card from the deck").
		StringArgument("name").
		WithDescription("The name of the card to remove").
		WithSuggestions(d.Cards).
		Parent().
		Handle(func(ctx context.Context, args *stoker.ParsedArgs) error {
			name, err := stoker.RequireNonEmptyArgument(args, "name")
			if err != nil {
				return err
			}
			card, err := d.Remove(name)
			if err != nil {
				return err
			}
			logger.Log("Removing card: " + card)
			return nil
		}).
		UseHelp(logger).
		Parent().
		SubCommand("list").
		WithDescription("List all cards in the deck").
		IntOption("page").
		WithDescription("The page number to list").
		WithDefaultValue("1").
		WithAliases("p").
		Parent().
		IntOption("page-size").
		WithDescription("The number of cards to list per page").
		WithDefaultValue("10").
		WithAliases("ps").
		Parent().
		Handle(func(ctx context.Context, args *stoker.ParsedArgs) error {
			var opts struct {
				Page     int
				PageSize int
			}
			if err := args.Bind(&opts); err != nil {
				return err
			}
			cards, err := d.Page(opts.Page, opts.PageSize)
			if err != nil {
				return err
			}
			logger.Log("Cards:")
			for _, card := range cards {
				logger.Log("  " + card)
			}
			return nil
		}).
		UseHelp(logger).
		Parent().
		UseHelp(logger).
		Build()
}
