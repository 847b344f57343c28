package entity

import (
	"strings"
	"time"
)

type Role int

const (
	RoleNone Role = iota
	RoleFarmer
	RoleVendor
	RoleExpert
)

func (r Role) String() string {
	switch r {
	case RoleFarmer:
		return "Farmer"
	case RoleVendor:
		return "Vendor"
	case RoleExpert:
		return "Agricultural Expert"
	case RoleNone:
		return ""
	}
	return ""
}

func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(text []byte) error {
	*r = ParseRole(string(text))
	return nil
}

// ParseRole is case-insensitive. Unknown values map to RoleNone.
func ParseRole(value string) Role {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "farmer":
		return RoleFarmer
	case "vendor":
		return RoleVendor
	case "agricultural expert", "expert":
		return RoleExpert
	default:
		return RoleNone
	}
}

// Identity is the authenticated user as seen by the rest of the system.
// Role is RoleNone when the profile record could not be resolved.
type Identity struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
}

func (i Identity) HasRole() bool {
	return i.Role != RoleNone
}

// User is the profile record stored in the users collection.
type User struct {
	UID       string    `json:"uid" firestore:"uid"`
	Name      string    `json:"name" firestore:"name"`
	Email     string    `json:"email" firestore:"email"`
	Role      string    `json:"role" firestore:"role"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

func (u *User) Identity() Identity {
	return Identity{
		ID:          u.UID,
		DisplayName: u.Name,
		Email:       u.Email,
		Role:        ParseRole(u.Role),
	}
}

var userSchema = schema{"uid", "name", "email", "role", "createdAt"}

func DecodeUser(id string, data map[string]interface{}) (*User, error) {
	r := newFieldReader("users", id, data, userSchema)
	u := &User{
		UID:       r.String("uid"),
		Name:      r.String("name"),
		Email:     r.String("email"),
		Role:      r.String("role"),
		CreatedAt: r.Time("createdAt"),
	}
	if u.UID == "" {
		u.UID = id
	}
	return u, r.Done()
}
