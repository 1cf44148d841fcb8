package models

// Member roles
const (
	RoleMember     = "MEMBER"
	RoleAdmin      = "ADMIN"
	RoleAccounting = "ACCOUNTING"
)

// MemberRequest - registration and authentication model, comes from outside
type MemberRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=6"`
}

// MemberData - member model from the storage
type MemberData struct {
	MemberID     string
	Username     string
	PasswordHash string
	Role         string
	Active       bool
}
