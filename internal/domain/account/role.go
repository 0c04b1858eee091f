package account

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role is the closed set of account variants. The string values are the wire
// values carried in session tokens.
type Role string

const (
	RoleOperator      Role = "ADMIN_CUPONERA"
	RoleMerchantAdmin Role = "ADMIN_EMPRESA"
	RoleEmployee      Role = "EMPLEADO"
	RoleConsumer      Role = "CLIENTE"
)

// Roles lists every variant in lookup order.
var Roles = []Role{RoleOperator, RoleMerchantAdmin, RoleEmployee, RoleConsumer}

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

func (r Role) IsValid() bool {
	switch r {
	case RoleOperator, RoleMerchantAdmin, RoleEmployee, RoleConsumer:
		return true
	default:
		return false
	}
}

func (r Role) String() string {
	return string(r)
}

// In reports whether r is one of allowed.
func (r Role) In(allowed ...Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}

// HasMerchantScope reports whether accounts of this variant act on behalf of a merchant.
func (r Role) HasMerchantScope() bool {
	return r == RoleMerchantAdmin || r == RoleEmployee
}
