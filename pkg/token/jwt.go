// Package token issues and parses the HS256 access/refresh pairs handed out
// after a successful confirmation-code exchange.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Type string

const (
	TypeAccess  Type = "access"
	TypeRefresh Type = "refresh"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
	ErrWrongType    = errors.New("wrong token type")
)

// Claims carries the user identity plus the registered JWT claims.
type Claims struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	TokenType Type   `json:"token_type"`
	jwt.RegisteredClaims
}

// Identity is the minimal user data embedded in a token.
type Identity struct {
	UserID   uuid.UUID
	Username string
}

// Pair is a freshly minted refresh/access token couple.
type Pair struct {
	Access  string
	Refresh string
}

type Issuer struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewIssuer(secret, issuer string, accessTTL, refreshTTL time.Duration) *Issuer {
	return &Issuer{
		secret:     []byte(secret),
		issuer:     issuer,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// IssuePair signs a refresh token and the access token derived from it.
func (i *Issuer) IssuePair(id Identity) (*Pair, error) {
	refresh, err := i.sign(id, TypeRefresh, i.refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}

	access, err := i.sign(id, TypeAccess, i.accessTTL)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	return &Pair{Access: access, Refresh: refresh}, nil
}

// IssueForUser returns the wire mapping exposed by the token endpoint.
func (i *Issuer) IssueForUser(id Identity) (map[string]string, error) {
	pair, err := i.IssuePair(id)
	if err != nil {
		return nil, err
	}
	return map[string]string{"token": pair.Access}, nil
}

// ParseAccess validates signature, expiry and type of an access token.
func (i *Issuer) ParseAccess(tokenString string) (*Claims, error) {
	return i.parse(tokenString, TypeAccess)
}

// ParseRefresh validates signature, expiry and type of a refresh token.
func (i *Issuer) ParseRefresh(tokenString string) (*Claims, error) {
	return i.parse(tokenString, TypeRefresh)
}

func (i *Issuer) sign(id Identity, typ Type, ttl time.Duration) (string, error) {
	now := i.now()
	claims := Claims{
		UserID:    id.UserID.String(),
		Username:  id.Username,
		TokenType: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    i.issuer,
			Subject:   id.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

func (i *Issuer) parse(tokenString string, want Type) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != want {
		return nil, ErrWrongType
	}

	return claims, nil
}
