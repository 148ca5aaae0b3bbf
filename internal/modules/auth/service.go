package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"servicehub/internal/domain"
	"servicehub/internal/pkg/apikey"
)

// Service owns registration, login and profile editing. Registration is the
// single place a role profile is created, which keeps the "exactly one
// profile, matching role" invariant out of the handlers.
type Service struct {
	users         UserRepository
	customers     CustomerReader
	professionals ProfessionalRepository
	jwt           tokenIssuer
}

func NewService(users UserRepository, customers CustomerReader, professionals ProfessionalRepository, jwt tokenIssuer) *Service {
	return &Service{
		users:         users,
		customers:     customers,
		professionals: professionals,
		jwt:           jwt,
	}
}

type LoginResult struct {
	User        *domain.User
	AccessToken string
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)

	if taken, err := s.users.ExistsByUsername(ctx, username, 0); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrUsernameTaken
	}
	if taken, err := s.users.ExistsByEmail(ctx, email, 0); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// New accounts get an API key immediately; the apikeys command exists
	// only for accounts that predate this.
	key, err := apikey.Generate()
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.UserRole(req.Role),
		Address:      req.Address,
		Pin:          req.Pin,
		IsActive:     true,
		APIKey:       &key,
	}

	var customer *domain.Customer
	var professional *domain.Professional
	switch user.Role {
	case domain.RoleCustomer:
		customer = &domain.Customer{}
	case domain.RoleProfessional:
		if req.ServiceID <= 0 {
			return nil, ErrServiceRequired
		}
		professional = &domain.Professional{
			ServiceID:   req.ServiceID,
			Description: req.Description,
			Experience:  req.Experience,
			Document:    req.Document,
		}
	}

	if err := s.users.CreateWithProfile(ctx, user, customer, professional); err != nil {
		return nil, err
	}

	user.Customer = customer
	user.Professional = professional
	return user, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	blocked, err := s.isBlocked(ctx, user)
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, ErrAccountBlocked
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: user, AccessToken: token}, nil
}

func (s *Service) isBlocked(ctx context.Context, user *domain.User) (bool, error) {
	switch user.Role {
	case domain.RoleCustomer:
		c, err := s.customers.GetByUserID(ctx, user.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return false, nil
			}
			return false, err
		}
		return c.AdminBlocked, nil
	case domain.RoleProfessional:
		p, err := s.professionals.GetByUserID(ctx, user.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return false, nil
			}
			return false, err
		}
		return p.AdminBlocked, nil
	}
	return false, nil
}

// Me returns the user with its role profile attached.
func (s *Service) Me(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	switch user.Role {
	case domain.RoleCustomer:
		if c, err := s.customers.GetByUserID(ctx, userID); err == nil {
			user.Customer = c
		}
	case domain.RoleProfessional:
		if p, err := s.professionals.GetByUserID(ctx, userID); err == nil {
			user.Professional = p
		}
	}
	return user, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)

	if username != "" && username != user.Username {
		taken, err := s.users.ExistsByUsername(ctx, username, userID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrUsernameTaken
		}
		user.Username = username
	}
	if email != "" && email != user.Email {
		taken, err := s.users.ExistsByEmail(ctx, email, userID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrEmailTaken
		}
		user.Email = email
	}
	if req.Address != "" {
		user.Address = req.Address
	}
	if req.Pin != "" {
		user.Pin = req.Pin
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	if user.Role == domain.RoleProfessional && (req.Description != "" || req.Experience != nil) {
		prof, err := s.professionals.GetByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if req.Description != "" {
			prof.Description = req.Description
		}
		if req.Experience != nil {
			prof.Experience = *req.Experience
		}
		if err := s.professionals.Update(ctx, prof); err != nil {
			return nil, err
		}
		user.Professional = prof
	}

	return user, nil
}
