package entitlement

import (
	"testing"

	"github.com/avasiljevs/accountkeeper/internal/client/models"
	"github.com/stretchr/testify/require"
)

func TestIsPremium(t *testing.T) {
	tests := []struct {
		name string
		sub  *models.Subscription
		want bool
	}{
		{"absent subscription", nil, false},
		{"free tier", &models.Subscription{Tier: models.TierFree}, false},
		{"starter tier", &models.Subscription{Tier: models.TierStarter}, true},
		{"scale tier", &models.Subscription{Tier: models.TierScale}, true},
		{"beast tier", &models.Subscription{Tier: models.TierBeast}, true},
		{"unknown future tier", &models.Subscription{Tier: "enterprise"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsPremium(tt.sub))
		})
	}
}

func TestRedirectTarget(t *testing.T) {
	require.Equal(t, RedirectPayment, RedirectTarget(nil))
	require.Equal(t, RedirectPayment, RedirectTarget(&models.Subscription{Tier: models.TierFree}))
	require.Equal(t, RedirectDashboard, RedirectTarget(&models.Subscription{Tier: models.TierScale}))
}
