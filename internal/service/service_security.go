package service

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/storegate/gateway/internal/config"
	"github.com/storegate/gateway/internal/logger"
	"github.com/storegate/gateway/internal/metrics"
	"github.com/storegate/gateway/models"
)

const saltSize = 64

type securityService struct {
	tokenSignKey  []byte
	tokenIssuer   string
	tokenDuration time.Duration
	logger        *logger.Logger
}

// NewSecurityService returns the credential and token service configured
// from the application settings.
func NewSecurityService(cfg config.App, log *logger.Logger) SecurityService {
	return &securityService{
		tokenSignKey:  []byte(cfg.TokenSignKey),
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        componentLogger(log, "security"),
	}
}

func (s *securityService) HashPassword(password string) (models.Credential, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return models.Credential{}, fmt.Errorf("generate salt: %w", err)
	}
	return models.Credential{
		Hash: keyedHash(password, salt),
		Salt: salt,
	}, nil
}

func (s *securityService) VerifyPassword(password string, storedHash, storedSalt []byte) bool {
	return hmac.Equal(keyedHash(password, storedSalt), storedHash)
}

// keyedHash computes HMAC-SHA512 of the password keyed with salt.
func keyedHash(password string, salt []byte) []byte {
	mac := hmac.New(sha512.New, salt)
	mac.Write([]byte(password))
	return mac.Sum(nil)
}

func (s *securityService) IssueToken(user models.User) (string, error) {
	now := time.Now()
	claims := models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.tokenIssuer,
			Subject:   strconv.Itoa(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenDuration)),
		},
		Username: user.Username,
		Role:     user.Role.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.tokenSignKey)
	if err != nil {
		s.logger.Error().Err(err).Msg("token signing failed")
		return "", ErrTokenCreationFailed
	}

	metrics.TokensIssuedTotal.Inc()
	return signed, nil
}

func (s *securityService) ParseToken(tokenString string) (models.TokenClaims, error) {
	claims := models.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return s.tokenSignKey, nil
		},
		jwt.WithIssuer(s.tokenIssuer),
	)
	if err != nil || !token.Valid {
		return models.TokenClaims{}, ErrTokenIsExpiredOrInvalid
	}
	return claims, nil
}
