package entity

// AuthSession is what the identity provider returns after a successful
// sign-in.
type AuthSession struct {
	UID          string `json:"uid"`
	Email        string `json:"email"`
	DisplayName  string `json:"display_name"`
	IDToken      string `json:"id_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    string `json:"expires_in"`
	IsNewUser    bool   `json:"is_new_user"`
}

// ProviderUser is the raw account as the identity provider knows it, without
// any profile record.
type ProviderUser struct {
	UID         string
	Email       string
	DisplayName string
}

func (u ProviderUser) Identity() Identity {
	return Identity{
		ID:          u.UID,
		DisplayName: u.DisplayName,
		Email:       u.Email,
		Role:        RoleNone,
	}
}
