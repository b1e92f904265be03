package auth

import (
	"errors"
	"fmt"
	"time"

	"quiz-platform-backend/internal/config"
	"quiz-platform-backend/internal/database/models"
	apperrors "quiz-platform-backend/internal/errors"
	"quiz-platform-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthClaims represents JWT token claims
type AuthClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// AuthService verifies bearer credentials and resolves them to a platform
// user. Tokens issued by this service must reference an existing account;
// tokens from a configured external issuer provision the account on first
// sight, the way a federated identity provider would.
type AuthService struct {
	secret          []byte
	issuer          string
	expiry          time.Duration
	externalIssuers map[string]bool
	userRepo        repository.UserRepositoryInterface
}

// NewAuthService creates a new authentication service
func NewAuthService(cfg *config.Config, userRepo repository.UserRepositoryInterface) *AuthService {
	external := make(map[string]bool, len(cfg.ExternalIssuers))
	for _, issuer := range cfg.ExternalIssuers {
		external[issuer] = true
	}
	return &AuthService{
		secret:          []byte(cfg.JWTSecret),
		issuer:          cfg.JWTIssuer,
		expiry:          cfg.JWTExpiry,
		externalIssuers: external,
		userRepo:        userRepo,
	}
}

// HashPassword hashes a plaintext credential with bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext credential against its bcrypt hash
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// CreateAccessToken issues a signed token for the given user
func (s *AuthService) CreateAccessToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Login verifies an email and password pair and issues an access token.
// Unknown emails and wrong passwords fail identically.
func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrInvalidCredentials
		}
		return "", fmt.Errorf("login: %w", err)
	}
	if !VerifyPassword(password, user.Password) {
		return "", apperrors.ErrInvalidCredentials
	}
	return s.CreateAccessToken(user)
}

// ValidateToken parses and verifies a bearer token
func (s *AuthService) ValidateToken(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || claims.Email == "" {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}

// ResolveUser maps validated claims to a platform user. Unknown emails fail
// for own-service tokens and are provisioned with a random credential for
// tokens from a recognized external issuer.
func (s *AuthService) ResolveUser(claims *AuthClaims) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(claims.Email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("resolve user: %w", err)
	}

	if !s.externalIssuers[claims.Issuer] {
		return nil, apperrors.ErrUserNotFound
	}

	password, err := HashPassword(uuid.NewString())
	if err != nil {
		return nil, err
	}
	provisioned := &models.User{
		Username: usernameFromEmail(claims.Email),
		Email:    claims.Email,
		Password: password,
	}
	if err := s.userRepo.Create(provisioned); err != nil {
		return nil, fmt.Errorf("provision external user: %w", err)
	}
	return provisioned, nil
}

func usernameFromEmail(email string) string {
	for i, r := range email {
		if r == '@' {
			return email[:i]
		}
	}
	return email
}
