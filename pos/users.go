package pos

import (
	"strings"

	"restaurant-pos-api/models"
	"restaurant-pos-api/storage"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func (s *Service) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadUsers()
}

func (s *Service) Roles() []models.Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadRoles()
}

// Role returns a role by id.
func (s *Service) Role(id string) (models.Role, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return findRole(s.loadRoles(), id)
}

func (s *Service) CreateUser(name, email, password, roleID string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.loadUsers()
	for _, existing := range users {
		if strings.EqualFold(existing.Email, email) {
			return models.User{}, ErrEmailTaken
		}
	}
	if _, ok := findRole(s.loadRoles(), roleID); !ok {
		return models.User{}, ErrUserNotFound
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	user := models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		RoleID:       roleID,
		IsActive:     true,
		CreatedAt:    s.now(),
	}
	users = append(users, user)
	if err := s.store.Save(storage.KeyUsers, users); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *Service) DeleteUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.loadUsers()
	for i, user := range users {
		if user.ID == id {
			users = append(users[:i], users[i+1:]...)
			return s.store.Save(storage.KeyUsers, users)
		}
	}
	return ErrUserNotFound
}

// Authenticate checks credentials by user name or email and returns the user
// together with their role. Inactive accounts are refused with a distinct
// error so the login screen can say so.
func (s *Service) Authenticate(nameOrEmail, password string) (models.User, models.Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.loadUsers() {
		if !strings.EqualFold(user.Name, nameOrEmail) && !strings.EqualFold(user.Email, nameOrEmail) {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
			continue
		}
		if !user.IsActive {
			return models.User{}, models.Role{}, ErrAccountInactive
		}
		role, ok := findRole(s.loadRoles(), user.RoleID)
		if !ok {
			return models.User{}, models.Role{}, ErrInvalidCredentials
		}
		return user, role, nil
	}
	return models.User{}, models.Role{}, ErrInvalidCredentials
}

func findRole(roles []models.Role, id string) (models.Role, bool) {
	for _, role := range roles {
		if role.ID == id {
			return role, true
		}
	}
	return models.Role{}, false
}
