package auth

import (
	"fmt"
	"strings"
	"unicode"

	"cashmemo/config"
	domainerrors "cashmemo/internal/domain/errors"
	"cashmemo/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy config.PasswordStrengthConfig
}

// NewBcryptHasher builds a hasher from the auth and password-strength configuration.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	policy := defaultPasswordPolicy()
	if cfg != nil && cfg.PasswordStrength != nil {
		policy = *cfg.PasswordStrength
	}

	return &bcryptHasher{cost: cost, policy: policy}
}

// NewBcryptHasherWithCost uses the default password policy with a custom cost.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return &bcryptHasher{cost: cost, policy: defaultPasswordPolicy()}
}

func defaultPasswordPolicy() config.PasswordStrengthConfig {
	return config.PasswordStrengthConfig{
		MinLength:        8,
		MaxLength:        72,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
	}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength returns ErrPasswordStrength carrying the first failed rule.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	p := h.policy
	length := len([]rune(password))

	switch {
	case p.MinLength > 0 && length < p.MinLength:
		return weak(fmt.Sprintf("must be at least %d characters long", p.MinLength))
	case p.MaxLength > 0 && len(password) > p.MaxLength:
		return weak(fmt.Sprintf("must be at most %d bytes long", p.MaxLength))
	case p.RequireLowercase && !hasRune(password, unicode.IsLower):
		return weak("must contain at least one lowercase letter")
	case p.RequireUppercase && !hasRune(password, unicode.IsUpper):
		return weak("must contain at least one uppercase letter")
	case p.RequireNumbers && !hasRune(password, unicode.IsDigit):
		return weak("must contain at least one number")
	case p.RequireSpecial && !hasRune(password, isSpecial):
		return weak("must contain at least one special character")
	case containsForbiddenWords(password, p.ForbiddenWords):
		return weak("contains forbidden words")
	}

	return nil
}

func weak(details string) error {
	return domainerrors.ErrPasswordStrength.WithDetails("password " + details)
}

func hasRune(s string, pred func(rune) bool) bool {
	return strings.IndexFunc(s, pred) >= 0
}

func isSpecial(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

func containsForbiddenWords(password string, words []string) bool {
	lowered := strings.ToLower(password)
	for _, word := range words {
		if word != "" && strings.Contains(lowered, strings.ToLower(word)) {
			return true
		}
	}

	return false
}
