//go:build unit || e2e

package builder

import (
	reqdto "wallet-console/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "test@example.com",
		Password: "password123",
	}
}

func (b *AuthBuilder) WithEmail(email string) *AuthBuilder {
	b.Email = email
	return b
}

func (b *AuthBuilder) WithPassword(password string) *AuthBuilder {
	b.Password = password
	return b
}

func (b *AuthBuilder) BuildLoginDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    b.Email,
		Password: b.Password,
	}
}

func (b *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Email:       b.Email,
		Password:    b.Password,
		FullName:    "Test Account",
		CompanyName: "Test Company",
	}
}
