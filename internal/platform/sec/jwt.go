// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides cryptographic primitives for the admin gate.
//
// # Architecture
//
// This package isolates security-sensitive code (password hashing, marker
// signing) from the domain logic. The auth package composes these primitives
// into the login and authorization flows.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretLength is the shortest HMAC secret accepted for signing markers.
const MinSecretLength = 32

// MarkerClaims is the payload of a signed admin marker.
//
// The revocation epoch lets every outstanding marker be invalidated at once
// without per-session state: verification compares it against the current
// epoch held by the epoch store.
type MarkerClaims struct {
	jwt.RegisteredClaims

	Role  string `json:"rol"`
	Epoch int64  `json:"epc"`
}

// TokenService signs and verifies HS256 markers.
type TokenService struct {
	secret     []byte
	issuer     string
	timeToLive time.Duration
	now        func() time.Time
}

// NewTokenService creates a TokenService. The secret must be at least
// [MinSecretLength] bytes.
func NewTokenService(secret, issuer string, timeToLive time.Duration) (*TokenService, error) {
	if len(secret) < MinSecretLength {
		return nil, fmt.Errorf("sec: token secret must be at least %d bytes", MinSecretLength)
	}
	if timeToLive <= 0 {
		return nil, errors.New("sec: token ttl must be positive")
	}

	return &TokenService{
		secret:     []byte(secret),
		issuer:     issuer,
		timeToLive: timeToLive,
		now:        time.Now,
	}, nil
}

// Issue signs a marker for identity bound to the given revocation epoch.
func (service *TokenService) Issue(identity *Identity, epoch int64) (string, time.Time, error) {
	issuedAt := service.now()
	expiresAt := issuedAt.Add(service.timeToLive)

	claims := MarkerClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.Email,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Role:  string(identity.Role),
		Epoch: epoch,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(service.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sec: failed to sign marker: %w", err)
	}

	return signed, expiresAt, nil
}

// Verify checks signature, issuer and expiry, and returns the claims.
// Epoch comparison is left to the caller.
func (service *TokenService) Verify(marker string) (*MarkerClaims, error) {
	claims := &MarkerClaims{}

	_, err := jwt.ParseWithClaims(marker, claims,
		func(token *jwt.Token) (any, error) { return service.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(service.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(service.now),
	)
	if err != nil {
		return nil, fmt.Errorf("sec: invalid marker: %w", err)
	}

	return claims, nil
}
