package models

import (
	"github.com/golang-jwt/jwt/v5"
)

type Usuario struct {
	ID            int64  `db:"id" json:"id"`
	Email         string `db:"email" json:"email"`
	Senha         string `db:"senha" json:"-"` // bcrypt hash, never serialized
	FuncionarioID *int64 `db:"funcionario_id" json:"funcionario_id,omitempty"`
}

// UsuarioView is the listing shape with the linked employee resolved to its name.
type UsuarioView struct {
	ID          int64   `db:"id" json:"id"`
	Email       string  `db:"email" json:"email"`
	Funcionario *string `db:"funcionario" json:"funcionario"`
}

// Claims defines the structure of the JWT claims.
type Claims struct {
	UsuarioID     int64  `json:"id"`
	FuncionarioID *int64 `json:"funcionario_id"`
	jwt.RegisteredClaims
}
