package models

// UserRole enumerates platform roles. Role checks gate mutation flows
// at the routing layer.
type UserRole string

const (
	RoleUser    UserRole = "user"
	RoleBuyer   UserRole = "buyer"
	RoleManager UserRole = "manager"
	RoleAdmin   UserRole = "admin"
)

// User represents a platform user.
type User struct {
	ID        string   `json:"id"`
	Email     string   `json:"email"`
	Name      string   `json:"name"`
	Role      UserRole `json:"role"`
	Avatar    string   `json:"avatar,omitempty"`
	Phone     string   `json:"phone,omitempty"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt,omitempty"`
}

// RegisterData carries the fields needed to create an account.
type RegisterData struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Phone    string   `json:"phone,omitempty"`
	Role     UserRole `json:"role,omitempty"`
}

// AuthResponse is returned by login and register.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
