package auth

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// Objects and actions checked by the HTTP layer.
const (
	ObjOrders    = "orders"
	ObjPayments  = "payments"
	ObjFiles     = "files"
	ObjAnalytics = "analytics"
	ObjReconcile = "reconcile"

	ActRead  = "read"
	ActWrite = "write"
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

// Admins inherit every designer permission.
var (
	designerPolicies = [][]string{
		{string(RoleDesigner), ObjOrders, ActRead},
		{string(RoleDesigner), ObjOrders, ActWrite},
		{string(RoleDesigner), ObjPayments, ActRead},
		{string(RoleDesigner), ObjPayments, ActWrite},
		{string(RoleDesigner), ObjFiles, ActRead},
		{string(RoleDesigner), ObjFiles, ActWrite},
	}
	adminPolicies = [][]string{
		{string(RoleAdmin), ObjAnalytics, ActRead},
		{string(RoleAdmin), ObjReconcile, ActWrite},
	}
)

type Authorizer interface {
	IsAuthorized(role Role, obj, act string) (bool, error)
}

// Policy is a casbin RBAC enforcer loaded with the built-in role policies.
type Policy struct {
	enforcer *casbin.Enforcer
}

func NewPolicy() (*Policy, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RBAC model: %w", err)
	}
	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize RBAC enforcer: %w", err)
	}
	if _, err := enforcer.AddPolicies(append(designerPolicies, adminPolicies...)); err != nil {
		return nil, fmt.Errorf("failed to load policies: %w", err)
	}
	if _, err := enforcer.AddGroupingPolicy(string(RoleAdmin), string(RoleDesigner)); err != nil {
		return nil, fmt.Errorf("failed to load role hierarchy: %w", err)
	}
	return &Policy{enforcer: enforcer}, nil
}

func (p *Policy) IsAuthorized(role Role, obj, act string) (bool, error) {
	allowed, err := p.enforcer.Enforce(string(role), obj, act)
	if err != nil {
		return false, fmt.Errorf("RBAC permission check failed: %w", err)
	}
	return allowed, nil
}
