package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DeviceTokenIssuer is the iss claim of every device token.
const DeviceTokenIssuer = "outbox-client"

// GenerateDeviceToken creates a signed HMAC-SHA256 JWT identifying deviceID.
//
// The token includes the following standard claims:
//   - Issuer    (iss): [DeviceTokenIssuer]
//   - Subject   (sub): the device ID
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// Returns an error if any parameter is empty or zero.
func GenerateDeviceToken(deviceID string, tokenDuration time.Duration, signKey string) (string, error) {
	if deviceID == "" || tokenDuration <= 0 || signKey == "" {
		return "", errors.New("invalid params for generating device token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    DeviceTokenIssuer,
		Subject:   deviceID,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during singing device token: %w", err)
	}

	return tokenString, nil
}

// ValidateDeviceToken verifies the signature, issuer and expiry of
// tokenString and returns the device ID from its subject.
func ValidateDeviceToken(tokenString, signKey string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithIssuer(DeviceTokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	deviceID, err := token.Claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if deviceID == "" {
		return "", errors.New("empty subject error")
	}

	return deviceID, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <t>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
