package tokens

import (
	"errors"
	"time"

	jwt "github.com/form3tech-oss/jwt-go"
)

const RoleAdmin = "admin"

var ErrInvalid = errors.New("invalid token")

// Sign issues an HS256 token carrying claims, valid for ttl.
func Sign(secret []byte, claims jwt.MapClaims, ttl time.Duration) (string, error) {
	claims["exp"] = time.Now().Add(ttl).Unix()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func Parse(secret []byte, raw string) (jwt.MapClaims, error) {
	if raw == "" {
		return nil, ErrInvalid
	}
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalid
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalid
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalid
	}
	return claims, nil
}

func IsAdmin(claims jwt.MapClaims) bool {
	return claims["role"] == RoleAdmin
}

// CanPlay lets through tokens issued for gameId, and admins.
func CanPlay(claims jwt.MapClaims, gameId string) bool {
	return IsAdmin(claims) || (gameId != "" && claims["game_id"] == gameId)
}
