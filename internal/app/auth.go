package app

import "stay_directory/internal/domain"

// Auth performs the admin password check. Plain string equality against
// a configured value; do not use this scheme for a real deployment.
type Auth struct {
	adminPassword string
}

func NewAuth(adminPassword string) *Auth { return &Auth{adminPassword: adminPassword} }

func (a *Auth) AdminLogin(password string) error {
	if password != a.adminPassword {
		return domain.ErrInvalidCredentials
	}
	return nil
}
