package guard

import (
	"testing"

	"github.com/dmitrijs2005/recruit/internal/client/models"
	"github.com/stretchr/testify/assert"
)

func TestCheck(t *testing.T) {
	employerOnly := []models.Role{models.RoleEmployer}

	tests := []struct {
		name    string
		state   State
		allowed []models.Role
		want    Decision
	}{
		{"loading anonymous", State{Loading: true}, employerOnly, Decision{Outcome: Pending}},
		{"loading authenticated", State{Loading: true, Authenticated: true, Role: models.RoleEmployer}, employerOnly, Decision{Outcome: Pending}},
		{"loading wrong role", State{Loading: true, Authenticated: true, Role: models.RoleCandidate}, employerOnly, Decision{Outcome: Pending}},
		{"anonymous", State{}, employerOnly, Decision{Outcome: Redirect, Target: RouteLogin}},
		{"anonymous any role", State{}, nil, Decision{Outcome: Redirect, Target: RouteLogin}},
		{"wrong role", State{Authenticated: true, Role: models.RoleCandidate}, employerOnly, Decision{Outcome: Redirect, Target: RouteRoot}},
		{"allowed role", State{Authenticated: true, Role: models.RoleEmployer}, employerOnly, Decision{Outcome: Allow}},
		{"any role", State{Authenticated: true, Role: models.RoleCandidate}, nil, Decision{Outcome: Allow}},
		{"one of several", State{Authenticated: true, Role: models.RoleCandidate},
			[]models.Role{models.RoleEmployer, models.RoleCandidate}, Decision{Outcome: Allow}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Check(tt.state, tt.allowed...))
		})
	}
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "pending", Pending.String())
	assert.Equal(t, "redirect", Redirect.String())
	assert.Equal(t, "allow", Allow.String())
	assert.Equal(t, "unknown", Outcome(42).String())
}
