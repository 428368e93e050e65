package constant

// UserRole is the studio-wide role stored on a profile. It drives the
// row-level policy checks, so the set is closed and enforced by a DB check
// constraint as well.
type UserRole string

const (
	UserRolePhotographer UserRole = "photographer"
	UserRoleDesigner     UserRole = "designer"
	UserRoleAdmin        UserRole = "admin"
)

func (r UserRole) Valid() bool {
	switch r {
	case UserRolePhotographer, UserRoleDesigner, UserRoleAdmin:
		return true
	}
	return false
}

// MemberRole is the role a user holds on a single project. Admin is not a
// member role; admins see everything through the policy layer instead.
type MemberRole string

const (
	MemberRolePhotographer MemberRole = "photographer"
	MemberRoleDesigner     MemberRole = "designer"
)

func (r MemberRole) Valid() bool {
	return r == MemberRolePhotographer || r == MemberRoleDesigner
}
