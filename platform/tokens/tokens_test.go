package tokens

import (
	"testing"
	"time"

	jwt "github.com/form3tech-oss/jwt-go"
)

var secret = []byte("test-secret")

func TestSignAndParse(t *testing.T) {
	raw, err := Sign(secret, jwt.MapClaims{"game_id": "g1"}, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	claims, err := Parse(secret, raw)
	if err != nil {
		t.Fatal(err)
	}
	if !CanPlay(claims, "g1") || CanPlay(claims, "g2") || IsAdmin(claims) {
		t.Fatalf("unexpected claims %v", claims)
	}
}

func TestParseRejects(t *testing.T) {
	expired, _ := Sign(secret, jwt.MapClaims{"game_id": "g1"}, -time.Minute)
	forged, _ := Sign([]byte("other"), jwt.MapClaims{"role": RoleAdmin}, time.Hour)
	cases := map[string]string{
		"empty":   "",
		"garbage": "not.a.token",
		"expired": expired,
		"forged":  forged,
	}
	for name, raw := range cases {
		if _, err := Parse(secret, raw); err != ErrInvalid {
			t.Errorf("%s: expected ErrInvalid, got %v", name, err)
		}
	}
}

func TestAdminCanPlayAnyGame(t *testing.T) {
	claims := jwt.MapClaims{"role": RoleAdmin}
	if !CanPlay(claims, "whatever") {
		t.Fatalf("admin should reach every game")
	}
	if CanPlay(jwt.MapClaims{}, "") {
		t.Fatalf("empty claims must not match an empty game id")
	}
}
