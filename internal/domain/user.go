package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Operator é o único usuário do back-office, definido por configuração
type Operator struct {
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// OAuthStateClaims carrega o state assinado enviado ao Mercado Libre
type OAuthStateClaims struct {
	Nonce string `json:"nonce"`
	jwt.RegisteredClaims
}
