package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin é o único perfil com acesso à administração
const RoleAdmin = 1

type Claims struct {
	UserName   string
	UserRoleID int
	jwt.RegisteredClaims
}
