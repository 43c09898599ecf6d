package cli

import (
	"context"
	"errors"
	"os"

	"github.com/avasiljevs/accountkeeper/internal/common"
)

// Upgrade creates a hosted checkout session for a paid plan and prints its
// URL. Navigation is left to the user; entitlements catch up via sync once
// the payment settles.
func (a *App) Upgrade(ctx context.Context) error {
	priceID, err := getSimpleText(a.reader, "Enter the price id of the plan", os.Stdout)
	if err != nil {
		return err
	}
	productID, err := getSimpleText(a.reader, "Enter the product id of the plan", os.Stdout)
	if err != nil {
		return err
	}

	url, err := a.billing.CreateCheckoutSession(ctx, priceID, productID)
	if err != nil {
		if errors.Is(err, common.ErrNoToken) {
			printlnFn("Not logged in.")
			return err
		}
		printlnFn("Could not create a checkout session:", err.Error())
		return err
	}

	printlnFn("Open this link to complete the purchase:")
	printlnFn(url)
	return nil
}

// Portal creates a billing portal session and prints its URL.
func (a *App) Portal(ctx context.Context) error {
	url, err := a.billing.CreatePortalSession(ctx)
	if err != nil {
		if errors.Is(err, common.ErrNoToken) {
			printlnFn("Not logged in.")
			return err
		}
		printlnFn("Could not create a billing portal session:", err.Error())
		return err
	}

	printlnFn("Manage your subscription here:")
	printlnFn(url)
	return nil
}
