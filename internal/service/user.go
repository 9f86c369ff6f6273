package service

import (
	"EventKeeper/internal/model"
	"EventKeeper/internal/repo"
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService инкапсулирует аутентификацию и выдачу списка пользователей.
type UserService struct {
	repo repo.UserRepository
}

func NewUserService(r repo.UserRepository) *UserService {
	return &UserService{repo: r}
}

// Authenticate проверяет пару логин/пароль. Неизвестный логин, неактивная
// учётка и неверный пароль дают одинаковую ErrInvalidCredentials.
// При успехе обновляет LastLogin и возвращает пользователя.
func (s *UserService) Authenticate(ctx context.Context, login, password string) (*model.User, error) {
	user, err := s.repo.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.repo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, err
	}
	user.LastLogin = &now
	return user, nil
}

// List возвращает всех пользователей.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

// EnsureAdmin создаёт seed-учётку при пустой таблице users.
// Без явно заданных логина и пароля ничего не создаёт — захардкоженных
// дефолтных учёток нет; created=true, если учётка создана этим вызовом.
func (s *UserService) EnsureAdmin(ctx context.Context, login, password string) (created bool, err error) {
	if login == "" || password == "" {
		return false, nil
	}
	n, err := s.repo.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}
	_, err = s.repo.CreateUser(ctx, &model.User{
		Login:    login,
		Password: string(hash),
		IsActive: true,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
