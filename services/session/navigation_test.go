package session

import (
	"testing"

	"wukala/models"

	"github.com/stretchr/testify/assert"
)

func TestNavigationDecisionOrder(t *testing.T) {
	cases := []struct {
		name string
		rec  *models.SessionRecord
		want []NavItem
	}{
		{"unauthenticated", nil, publicNav},
		{"lawyer", &models.SessionRecord{Role: models.RoleLawyer}, lawyerNav},
		{"admin", &models.SessionRecord{Role: models.RoleAdmin}, adminNav},
		{"client", &models.SessionRecord{Role: models.RoleClient}, clientNav},
		{"unrecognized role degrades to client", &models.SessionRecord{Role: "moderator"}, clientNav},
		{"empty role degrades to client", &models.SessionRecord{}, clientNav},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NavigationFor(tc.rec))
		})
	}
}
