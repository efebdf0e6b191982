package domain

// DefaultRole is assigned to users created without an explicit role.
const DefaultRole = "user"

// User is an identity and credential record. The password is stored as
// given by the configured password verifier and is never serialized.
type User struct {
	ID             int64   `json:"id"`
	Username       string  `json:"username"`
	Password       string  `json:"-"`
	DisplayName    string  `json:"displayName"`
	Email          string  `json:"email"`
	ProfilePicture *string `json:"profilePicture"`
	Role           string  `json:"role"`
}

