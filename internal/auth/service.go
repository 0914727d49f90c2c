package auth

import "context"

// Credentials is the slice of the account store the login flow needs.
type Credentials interface {
	AuthenticateTeacher(ctx context.Context, name, password string) error
	AuthenticateAdmin(ctx context.Context, name, password string) error
}

type Service struct {
	store         Credentials
	tokens        *TokenService
	superName     string
	superPassword string
}

func NewService(store Credentials, tokens *TokenService, superName, superPassword string) *Service {
	return &Service{
		store:         store,
		tokens:        tokens,
		superName:     superName,
		superPassword: superPassword,
	}
}

func (s *Service) LoginTeacher(ctx context.Context, name, password string) (string, error) {
	if err := s.store.AuthenticateTeacher(ctx, name, password); err != nil {
		return "", err
	}
	return s.tokens.Issue(RoleTeacher, name)
}

// LoginAdmin issues an admin token, except for the one distinguished account
// whose name and password match the configured super-admin pair.
func (s *Service) LoginAdmin(ctx context.Context, name, password string) (string, error) {
	if err := s.store.AuthenticateAdmin(ctx, name, password); err != nil {
		return "", err
	}
	role := RoleAdmin
	if name == s.superName && password == s.superPassword {
		role = RoleSuperAdmin
	}
	return s.tokens.Issue(role, name)
}
