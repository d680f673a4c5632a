package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gromeuse/internal/entity"
	"gromeuse/internal/repository"
	"gromeuse/internal/utils"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Cost-equivalent hash compared against when the email is unknown, so a
// failed login takes the same time either way.
const dummyPasswordHash = "$2a$10$CwTycUXWue0Thq9StjUM0uJ8yQbWc1x9uxw2sQ2sXUNx5x9xJ9F2S"

type AuthService struct {
	users  repository.UserRepository
	tokens repository.VerificationTokenRepository

	emailSender  EmailSender
	passwordHash PasswordHasher
	sessions     SessionMinter
	clock        Clock
	config       AuthConfig
}

func NewAuthService(
	users repository.UserRepository,
	tokens repository.VerificationTokenRepository,
	emailSender EmailSender,
	passwordHash PasswordHasher,
	sessions SessionMinter,
	clock Clock,
	config AuthConfig,
) *AuthService {
	return &AuthService{
		users:        users,
		tokens:       tokens,
		emailSender:  emailSender,
		passwordHash: passwordHash,
		sessions:     sessions,
		clock:        clock,
		config:       config,
	}
}

type LoginResult struct {
	Token     string
	ExpiresIn int64
	User      *entity.User
}

// Register creates an unverified account and emails a verification token.
// Re-registering an unverified email rotates both the password hash and the
// token; a verified email is a conflict. The account row is kept even when
// delivery fails, so a later re-registration can retry the email.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (uuid.UUID, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Email) == "" || strings.TrimSpace(input.Password) == "" {
		return uuid.Nil, ErrInvalidInput
	}

	email := utils.NormalizeEmail(input.Email)
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return uuid.Nil, err
	}

	hash, err := s.passwordHash.Hash(input.Password)
	if err != nil {
		return uuid.Nil, err
	}

	if user != nil {
		if user.IsVerified {
			return uuid.Nil, ErrAccountExists
		}
		user.PasswordHash = &hash
		if err := s.users.Update(ctx, user); err != nil {
			return uuid.Nil, err
		}
	} else {
		user = &entity.User{
			Name:         strings.TrimSpace(input.Name),
			Email:        email,
			PasswordHash: &hash,
			Roles:        datatypes.NewJSONSlice([]entity.Role{entity.RoleUser}),
		}
		if err := s.users.Create(ctx, user); err != nil {
			// The unique index on email decides concurrent registrations.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return uuid.Nil, ErrAccountExists
			}
			return uuid.Nil, err
		}
	}

	if err := s.issueAndSendToken(ctx, user); err != nil {
		return user.ID, err
	}
	return user.ID, nil
}

// VerifyToken consumes a verification token. Unknown tokens are invalid,
// consumed tokens of a verified account answer "already verified"
// idempotently, live unexpired tokens flip the account to verified and are
// consumed in the same store operation.
func (s *AuthService) VerifyToken(ctx context.Context, token string) (VerifyStatus, error) {
	if strings.TrimSpace(token) == "" {
		return "", ErrInvalidInput
	}

	row, err := s.tokens.FindByHash(ctx, utils.HashToken(token), entity.EmailVerify)
	if err != nil {
		return "", err
	}
	if row == nil {
		return "", ErrInvalidToken
	}

	user, err := s.users.FindByID(ctx, row.UserID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrInvalidToken
	}

	if user.IsVerified {
		if row.ConsumedAt == nil {
			// Verified through another path (e.g. OAuth) while a token was
			// pending; retire the stale token.
			if err := s.users.VerifyWithToken(ctx, user.ID, row.ID); err != nil {
				return "", err
			}
		}
		return VerifyStatusAlreadyVerified, nil
	}
	if row.ConsumedAt != nil {
		return "", ErrInvalidToken
	}
	if !row.ExpiresAt.After(s.now()) {
		return "", ErrExpiredToken
	}

	if err := s.users.VerifyWithToken(ctx, user.ID, row.ID); err != nil {
		return "", err
	}
	return VerifyStatusVerified, nil
}

// Authenticate checks credentials and returns the account. Unknown email
// and wrong password collapse into one error so login does not reveal
// which emails are registered.
func (s *AuthService) Authenticate(ctx context.Context, creds Credentials) (*entity.User, error) {
	if strings.TrimSpace(creds.Email) == "" || strings.TrimSpace(creds.Password) == "" {
		return nil, ErrInvalidInput
	}

	user, err := s.users.FindByEmail(ctx, utils.NormalizeEmail(creds.Email))
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash == nil {
		_ = s.passwordHash.Verify(dummyPasswordHash, creds.Password)
		return nil, ErrInvalidCredentials
	}
	if !s.passwordHash.Verify(*user.PasswordHash, creds.Password) {
		return nil, ErrInvalidCredentials
	}
	if !user.IsVerified {
		return nil, ErrNotVerified
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, creds Credentials) (*LoginResult, error) {
	user, err := s.Authenticate(ctx, creds)
	if err != nil {
		return nil, err
	}
	return s.mintSession(user)
}

// LoginWithProvider maps an OAuth-supplied identity onto the account table.
// The provider already proved control of the email, so the account is
// verified on the spot and any pending verification token is dropped.
func (s *AuthService) LoginWithProvider(ctx context.Context, identity ProviderIdentity) (*LoginResult, error) {
	if strings.TrimSpace(identity.Email) == "" {
		return nil, ErrInvalidInput
	}

	email := utils.NormalizeEmail(identity.Email)
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if user == nil {
		name := strings.TrimSpace(identity.Name)
		if name == "" {
			name = email
		}
		user = &entity.User{
			Name:       name,
			Email:      email,
			Roles:      datatypes.NewJSONSlice([]entity.Role{entity.RoleUser}),
			IsVerified: true,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, err
		}
	} else if !user.IsVerified {
		user.IsVerified = true
		if err := s.users.Update(ctx, user); err != nil {
			return nil, err
		}
		if err := s.tokens.DeleteForUser(ctx, user.ID, entity.EmailVerify); err != nil {
			return nil, err
		}
	}

	return s.mintSession(user)
}

// EmailRegistered reports whether an account exists for the email. Sign-up
// already discloses existence through its conflict response, so this check
// answers honestly.
func (s *AuthService) EmailRegistered(ctx context.Context, email string) (bool, error) {
	if strings.TrimSpace(email) == "" {
		return false, ErrInvalidInput
	}
	user, err := s.users.FindByEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		return false, err
	}
	return user != nil, nil
}

func (s *AuthService) ClaimsFor(user *entity.User) SessionClaims {
	roles := make([]string, 0, len(user.Roles))
	for _, r := range user.Roles {
		roles = append(roles, string(r))
	}
	return SessionClaims{
		UserID:     user.ID,
		Name:       user.Name,
		Roles:      roles,
		IsVerified: user.IsVerified,
	}
}

func (s *AuthService) mintSession(user *entity.User) (*LoginResult, error) {
	token, ttl, err := s.sessions.IssueSessionToken(user)
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		Token:     token,
		ExpiresIn: int64(ttl.Seconds()),
		User:      user,
	}, nil
}

func (s *AuthService) issueAndSendToken(ctx context.Context, user *entity.User) error {
	if err := s.tokens.DeleteForUser(ctx, user.ID, entity.EmailVerify); err != nil {
		return err
	}

	rawToken, err := utils.GenerateRandomToken(32)
	if err != nil {
		return err
	}
	row := &entity.VerificationToken{
		UserID:    user.ID,
		TokenHash: utils.HashToken(rawToken),
		Type:      entity.EmailVerify,
		ExpiresAt: s.now().Add(s.verificationTokenTTL()),
	}
	if err := s.tokens.Create(ctx, row); err != nil {
		return err
	}

	if s.emailSender == nil {
		return nil
	}
	if err := s.emailSender.SendVerificationEmail(ctx, user.Email, user.Name, rawToken); err != nil {
		return fmt.Errorf("%w: %v", ErrEmailDelivery, err)
	}
	return nil
}

func (s *AuthService) now() time.Time {
	if s.clock == nil {
		return time.Now()
	}
	return s.clock.Now()
}

func (s *AuthService) verificationTokenTTL() time.Duration {
	if s.config.VerificationTokenTTL > 0 {
		return s.config.VerificationTokenTTL
	}
	return time.Hour
}
