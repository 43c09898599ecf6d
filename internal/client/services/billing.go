package services

import (
	"context"

	"github.com/avasiljevs/accountkeeper/internal/client/client"
	"github.com/avasiljevs/accountkeeper/internal/client/session"
	"github.com/avasiljevs/accountkeeper/internal/common"
	"github.com/avasiljevs/accountkeeper/internal/logging"
)

// BillingService brokers hosted billing sessions with the payment
// provider. Both operations return a URL for the caller to open; the
// service itself never navigates and never mutates the session store.
// Entitlement changes land later, through the regular account sync.
type BillingService interface {
	CreateCheckoutSession(ctx context.Context, priceID, productID string) (string, error)
	CreatePortalSession(ctx context.Context) (string, error)
}

type billingService struct {
	client client.Client
	store  *session.Store
	log    logging.Logger
}

func NewBillingService(apiClient client.Client, store *session.Store, log logging.Logger) BillingService {
	return &billingService{
		client: apiClient,
		store:  store,
		log:    log.With("component", "billing"),
	}
}

func (s *billingService) CreateCheckoutSession(ctx context.Context, priceID, productID string) (string, error) {
	tok := s.store.Token()
	if tok == "" {
		return "", common.ErrNoToken
	}
	url, err := s.client.CreateCheckoutSession(ctx, tok, priceID, productID)
	if err != nil {
		return "", err
	}
	s.log.Debug(ctx, "checkout session created", "priceId", priceID)
	return url, nil
}

func (s *billingService) CreatePortalSession(ctx context.Context) (string, error) {
	tok := s.store.Token()
	if tok == "" {
		return "", common.ErrNoToken
	}
	url, err := s.client.CreatePortalSession(ctx, tok)
	if err != nil {
		return "", err
	}
	s.log.Debug(ctx, "portal session created")
	return url, nil
}
