package documents

import (
	"strings"

	"github.com/samverms/Kadouri-sub002/internal/domain/shared"
)

// Role identifies which party's point of view a confirmation document is
// prepared for. It affects labeling and styling only, never the order facts.
type Role string

const (
	RoleSeller Role = "SELLER"
	RoleBuyer  Role = "BUYER"
)

// IsValid checks if the role is a known value
func (r Role) IsValid() bool {
	return r == RoleSeller || r == RoleBuyer
}

// KeyName returns the lowercase role name used in storage keys and filenames
func (r Role) KeyName() string {
	return strings.ToLower(string(r))
}

// Counterpart returns the opposite role
func (r Role) Counterpart() Role {
	if r == RoleSeller {
		return RoleBuyer
	}
	return RoleSeller
}

// ParseRole parses a role from user input, accepting any casing
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	if !r.IsValid() {
		return "", shared.NewDomainError("INVALID_INPUT", "Document role must be seller or buyer")
	}
	return r, nil
}
