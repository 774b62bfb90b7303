package users

import (
	"time"

	"github.com/Asad-NCS/lostandfound/internal/domain"
)

type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

func (u *User) ToDomain() *domain.User {
	return &domain.User{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}
