package auth

import (
	"testing"

	"github.com/LeakhenaSok/StudioFlow/internal/config"
	"github.com/LeakhenaSok/StudioFlow/internal/constant"
)

// Perform token generation and verify the generated tokens to ensure VerifyJwtToken is correct
func TestJWT(t *testing.T) {
	cfg := config.AuthConfig{JWT_SECRET: "test-secret"}

	jwtService := NewJwt(cfg, nil)
	refreshToken, accessToken, err := jwtService.GenerateRefreshAndAccessToken(JWTPayload{
		ID:    "id1234",
		Email: "test@studioflow.local",
		Name:  "Test User",
	})
	if err != nil {
		t.Fatalf("An error occurred during refresh token and access token generation. Error: %v", err)
	}

	refreshClaims, err := jwtService.VerifyJwtToken(*refreshToken)
	if err != nil {
		t.Errorf("An error occurred during refresh token verification. Error: %v", err)
	}
	if refreshClaims.Type != constant.JWT_TYPE_REFRESH {
		t.Errorf("Expected refresh token type %q, got %q", constant.JWT_TYPE_REFRESH, refreshClaims.Type)
	}

	accessClaims, err := jwtService.VerifyJwtToken(*accessToken)
	if err != nil {
		t.Errorf("An error occurred during access token verification. Error: %v", err)
	}
	if accessClaims.Type != constant.JWT_TYPE_ACCESS {
		t.Errorf("Expected access token type %q, got %q", constant.JWT_TYPE_ACCESS, accessClaims.Type)
	}
	if accessClaims.User.ID != "id1234" || accessClaims.User.Email != "test@studioflow.local" {
		t.Errorf("Claims payload mismatch: %+v", accessClaims.User)
	}
}

func TestVerifyJwtTokenWrongSecret(t *testing.T) {
	jwtService := NewJwt(config.AuthConfig{JWT_SECRET: "secret-a"}, nil)
	_, accessToken, err := jwtService.GenerateRefreshAndAccessToken(JWTPayload{ID: "id1"})
	if err != nil {
		t.Fatalf("Token generation failed: %v", err)
	}

	other := NewJwt(config.AuthConfig{JWT_SECRET: "secret-b"}, nil)
	if _, err := other.VerifyJwtToken(*accessToken); err == nil {
		t.Error("Expected verification with a different secret to fail")
	}
}
