package security

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ChethanSPY1817/Survey-Management-Assignment/model"
)

func TestOwnershipPolicyAllows(t *testing.T) {
	tests := []struct {
		name   string
		policy OwnershipPolicy
		owner  string
		caller string
		role   string
		want   bool
	}{
		{"strict owner allows owner", StrictOwner, "u1", "u1", model.RoleAdmin, true},
		{"strict owner rejects admin", StrictOwner, "u1", "u2", model.RoleAdmin, false},
		{"owner-or-admin allows owner", OwnerOrAdmin, "u1", "u1", model.RoleRespondent, true},
		{"owner-or-admin allows admin", OwnerOrAdmin, "u1", "u2", model.RoleAdmin, true},
		{"owner-or-admin rejects stranger", OwnerOrAdmin, "u1", "u2", model.RoleRespondent, false},
		{"hide-existence allows owner", HideExistence, "u1", "u1", model.RoleAdmin, true},
		{"hide-existence rejects other admin", HideExistence, "u1", "u2", model.RoleAdmin, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.policy.Allows(tt.owner, tt.caller, tt.role))
		})
	}
}

func TestOwnershipPolicyDeny(t *testing.T) {
	err := StrictOwner.Deny("Survey", "s1", "update")
	assert.Equal(t, model.KindUnauthorized, err.Kind)
	assert.Equal(t, "You are not authorized to update this survey.", err.Message)

	err = OwnerOrAdmin.Deny("User", "u1", "access")
	assert.Equal(t, model.KindUnauthorized, err.Kind)

	// 隐藏存在性：拒绝时伪装成记录不存在
	err = HideExistence.Deny("UserSurvey", "us1", "delete")
	assert.Equal(t, model.KindNotFound, err.Kind)
	assert.Equal(t, "UserSurvey with ID 'us1' not found.", err.Message)
}
