package authz

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// NewEnforcer builds an in-memory enforcer with the fixed authority set.
// The role catalogue is static (ROLE_USER, ROLE_ADMIN), so policies are
// declared here rather than loaded from storage.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	policies := [][]string{
		{RoleUser, "clockin", "read"},
		{RoleUser, "clockin", "write"},
		{RoleUser, "workday", "read"},
		{RoleUser, "employee", "read"},
		{RoleAdmin, "clockin", "delete"},
		{RoleAdmin, "employee", "write"},
		{RoleAdmin, "employee", "delete"},
	}
	if _, err := e.AddPolicies(policies); err != nil {
		return nil, err
	}

	// Admins inherit every ROLE_USER permission.
	if _, err := e.AddGroupingPolicy(RoleAdmin, RoleUser); err != nil {
		return nil, err
	}

	return e, nil
}
