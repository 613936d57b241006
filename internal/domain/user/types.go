package user

// Role is platform-wide. Buyer, seller and owner are relations to a
// listing or conversation and never stored on the account.
type Role string

const (
	RoleMember   Role = "member"
	RoleOperator Role = "operator"
	RoleAdmin    Role = "admin"
)

// rank orders roles for RequireRoleAtLeast style checks; zero is unknown.
func (r Role) rank() int {
	switch r {
	case RoleMember:
		return 1
	case RoleOperator:
		return 2
	case RoleAdmin:
		return 3
	}
	return 0
}

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool { return r.rank() > 0 }

// AtLeast reports whether r grants everything min grants. Unknown roles
// never satisfy and are never satisfied.
func (r Role) AtLeast(min Role) bool {
	return r.rank() > 0 && min.rank() > 0 && r.rank() >= min.rank()
}

// CanSettle is true for staff who may record cash and card settlements.
func (r Role) CanSettle() bool { return r.AtLeast(RoleOperator) }

func NewRole(s string) (Role, error) {
	if role := Role(s); role.IsValid() {
		return role, nil
	}
	return "", ErrInvalidRole
}
