package model

import "strings"

// Principal is the capability surface every authenticated actor exposes,
// regardless of whether it was resolved from the local user table or from the
// ERP identity provider. Resolution happens once, in the auth service; nothing
// downstream branches on the concrete shape.
type Principal interface {
	ID() uint
	IsActive() bool
	IsElevated() bool
}

// LocalPrincipal adapts a locally stored user record.
type LocalPrincipal struct {
	User *User
}

func (p LocalPrincipal) ID() uint         { return p.User.ID }
func (p LocalPrincipal) IsActive() bool   { return p.User.IsActive }
func (p LocalPrincipal) IsElevated() bool { return p.User.IsSuperuser }

// ExternalPrincipal adapts the loosely typed attribute record returned by the
// ERP. The elevated predicate is normalized here, once, instead of being
// re-derived per call site.
type ExternalPrincipal struct {
	UID        uint
	Name       string
	Login      string
	Email      string
	Attributes map[string]any

	active   bool
	elevated bool
}

// NewExternalPrincipal builds a principal from an ERP user-info record. The
// ERP has no single admin flag; any of the historical signals (the reserved
// admin login, the administrator display name, an admin role label) marks the
// principal as elevated.
func NewExternalPrincipal(uid uint, info map[string]any) ExternalPrincipal {
	p := ExternalPrincipal{
		UID:        uid,
		Name:       stringAttr(info, "name"),
		Login:      stringAttr(info, "login"),
		Email:      stringAttr(info, "email"),
		Attributes: info,
		active:     true,
	}
	if v, ok := info["active"].(bool); ok {
		p.active = v
	}
	role := stringAttr(info, "role")
	p.elevated = p.Login == "admin" ||
		p.Name == "Administrator" ||
		strings.EqualFold(role, "admin")
	return p
}

func (p ExternalPrincipal) ID() uint         { return p.UID }
func (p ExternalPrincipal) IsActive() bool   { return p.active }
func (p ExternalPrincipal) IsElevated() bool { return p.elevated }

func stringAttr(info map[string]any, key string) string {
	if v, ok := info[key].(string); ok {
		return v
	}
	return ""
}
