package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"gromeuse/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// memStore backs the fake user and token repositories so the
// verify-and-consume transaction can touch both tables.
type memStore struct {
	mu     sync.Mutex
	users  map[uuid.UUID]*entity.User
	tokens map[uuid.UUID]*entity.VerificationToken
}

func newMemStore() *memStore {
	return &memStore{
		users:  make(map[uuid.UUID]*entity.User),
		tokens: make(map[uuid.UUID]*entity.VerificationToken),
	}
}

type fakeUserRepo struct {
	store *memStore
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.users {
		if existing.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = uuid.New()
	copied := *user
	r.store.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	user, ok := r.store.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, user := range r.store.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *user
	r.store.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.users, id)
	return nil
}

func (r *fakeUserRepo) List(_ context.Context, _, _ int) ([]entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	users := make([]entity.User, 0, len(r.store.users))
	for _, user := range r.store.users {
		users = append(users, *user)
	}
	return users, nil
}

func (r *fakeUserRepo) VerifyWithToken(_ context.Context, userID uuid.UUID, tokenID uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	user, ok := r.store.users[userID]
	if !ok {
		return errors.New("user not found")
	}
	token, ok := r.store.tokens[tokenID]
	if !ok {
		return errors.New("token not found")
	}
	user.IsVerified = true
	now := time.Now()
	token.ConsumedAt = &now
	return nil
}

type fakeTokenRepo struct {
	store *memStore
}

func (r *fakeTokenRepo) Create(_ context.Context, token *entity.VerificationToken) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	token.ID = uuid.New()
	copied := *token
	r.store.tokens[token.ID] = &copied
	return nil
}

func (r *fakeTokenRepo) FindByHash(_ context.Context, hash string, tokenType entity.VerificationType) (*entity.VerificationToken, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, token := range r.store.tokens {
		if token.TokenHash == hash && token.Type == tokenType {
			copied := *token
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeTokenRepo) DeleteForUser(_ context.Context, userID uuid.UUID, tokenType entity.VerificationType) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for id, token := range r.store.tokens {
		if token.UserID == userID && token.Type == tokenType {
			delete(r.store.tokens, id)
		}
	}
	return nil
}

type fakeEmailSender struct {
	mu     sync.Mutex
	sent   []sentEmail
	broken bool
}

type sentEmail struct {
	email    string
	username string
	token    string
}

func (s *fakeEmailSender) SendVerificationEmail(_ context.Context, email, username, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.broken {
		return errors.New("smtp down")
	}
	s.sent = append(s.sent, sentEmail{email: email, username: username, token: token})
	return nil
}

func (s *fakeEmailSender) lastToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.sent) == 0 {
		return ""
	}
	return s.sent[len(s.sent)-1].token
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fakeMinter struct{}

func (fakeMinter) IssueSessionToken(user *entity.User) (string, time.Duration, error) {
	return "session-" + user.ID.String(), 24 * time.Hour, nil
}

type authFixture struct {
	service *AuthService
	store   *memStore
	sender  *fakeEmailSender
	clock   *fakeClock
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	store := newMemStore()
	sender := &fakeEmailSender{}
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	svc := NewAuthService(
		&fakeUserRepo{store: store},
		&fakeTokenRepo{store: store},
		sender,
		BcryptPasswordHasher{Cost: 4},
		fakeMinter{},
		clock,
		AuthConfig{VerificationTokenTTL: time.Hour},
	)
	return &authFixture{service: svc, store: store, sender: sender, clock: clock}
}

func (f *authFixture) register(t *testing.T, name, email, password string) uuid.UUID {
	t.Helper()
	userID, err := f.service.Register(context.Background(), RegisterInput{
		Name:     name,
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	return userID
}

func (f *authFixture) userByEmail(t *testing.T, email string) *entity.User {
	t.Helper()
	user, err := f.service.users.FindByEmail(context.Background(), email)
	require.NoError(t, err)
	require.NotNil(t, user)
	return user
}

func TestRegister_CreatesUnverifiedAccountWithToken(t *testing.T) {
	f := newAuthFixture(t)

	userID := f.register(t, "Alice", "alice@example.com", "Passw0rd!")
	require.NotEqual(t, uuid.Nil, userID)

	user := f.userByEmail(t, "alice@example.com")
	assert.False(t, user.IsVerified)
	assert.True(t, user.HasRole(entity.RoleUser))
	require.NotNil(t, user.PasswordHash)

	require.Len(t, f.sender.sent, 1)
	assert.Equal(t, "alice@example.com", f.sender.sent[0].email)
	assert.Equal(t, "Alice", f.sender.sent[0].username)

	require.Len(t, f.store.tokens, 1)
	for _, row := range f.store.tokens {
		assert.Equal(t, f.clock.Now().Add(time.Hour), row.ExpiresAt)
		assert.Nil(t, row.ConsumedAt)
	}
}

func TestRegister_NormalizesEmail(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t, "Alice", "  Alice@Example.COM ", "Passw0rd!")
	f.userByEmail(t, "alice@example.com")
}

func TestRegister_VerifiedAccountConflicts(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t, "Alice", "alice@example.com", "Passw0rd!")

	_, err := f.service.VerifyToken(context.Background(), f.sender.lastToken())
	require.NoError(t, err)

	_, err = f.service.Register(context.Background(), RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "Another1!",
	})
	assert.ErrorIs(t, err, ErrAccountExists)
}

// blindUserRepo never finds by email, standing in for the window where a
// concurrent registration inserts the row after this request's lookup ran.
type blindUserRepo struct {
	*fakeUserRepo
}

func (blindUserRepo) FindByEmail(context.Context, string) (*entity.User, error) {
	return nil, nil
}

func TestRegister_DuplicateEmailRaceSurfacesConflict(t *testing.T) {
	store := newMemStore()
	svc := NewAuthService(
		blindUserRepo{&fakeUserRepo{store: store}},
		&fakeTokenRepo{store: store},
		&fakeEmailSender{},
		BcryptPasswordHasher{Cost: 4},
		fakeMinter{},
		&fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
		AuthConfig{VerificationTokenTTL: time.Hour},
	)

	_, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "Passw0rd!",
	})
	require.NoError(t, err)

	// The unique index on email decides the race: the loser's insert
	// conflicts and the caller sees the account-exists error.
	_, err = svc.Register(context.Background(), RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "Another1!",
	})
	assert.ErrorIs(t, err, ErrAccountExists)
	assert.Len(t, store.users, 1)
}

func TestRegister_UnverifiedReuseRotatesTokenAndPassword(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t, "Carol", "carol@example.com", "Passw0rd!")
	original := f.sender.lastToken()
	originalHash := *f.userByEmail(t, "carol@example.com").PasswordHash

	f.register(t, "Carol", "carol@example.com", "NewPassw0rd!")
	rotated := f.sender.lastToken()

	assert.NotEqual(t, original, rotated)
	assert.NotEqual(t, originalHash, *f.userByEmail(t, "carol@example.com").PasswordHash)
	assert.Len(t, f.store.users, 1)
	assert.Len(t, f.store.tokens, 1)

	// The overwritten token is gone, not merely expired.
	_, err := f.service.VerifyToken(context.Background(), original)
	assert.ErrorIs(t, err, ErrInvalidToken)

	status, err := f.service.VerifyToken(context.Background(), rotated)
	require.NoError(t, err)
	assert.Equal(t, VerifyStatusVerified, status)
}

func TestRegister_DeliveryFailureKeepsAccount(t *testing.T) {
	f := newAuthFixture(t)
	f.sender.broken = true

	userID, err := f.service.Register(context.Background(), RegisterInput{
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "Passw0rd!",
	})
	assert.ErrorIs(t, err, ErrEmailDelivery)
	assert.NotEqual(t, uuid.Nil, userID)

	// The row stays so a later re-registration can retry delivery.
	f.userByEmail(t, "bob@example.com")
	assert.Len(t, f.store.tokens, 1)

	f.sender.broken = false
	f.register(t, "Bob", "bob@example.com", "Passw0rd!")
	assert.NotEmpty(t, f.sender.lastToken())
}

func TestVerifyToken_HappyPathThenIdempotent(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t, "Alice", "alice@example.com", "Passw0rd!")
	token := f.sender.lastToken()

	status, err := f.service.VerifyToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, VerifyStatusVerified, status)

	user := f.userByEmail(t, "alice@example.com")
	assert.True(t, user.IsVerified)
	for _, row := range f.store.tokens {
		assert.NotNil(t, row.ConsumedAt)
	}

	// Replaying the consumed token answers "already verified", repeatedly.
	for i := 0; i < 3; i++ {
		status, err = f.service.VerifyToken(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, VerifyStatusAlreadyVerified, status)
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t, "Bob", "bob@example.com", "Passw0rd!")
	token := f.sender.lastToken()

	f.clock.Advance(61 * time.Minute)

	_, err := f.service.VerifyToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrExpiredToken)
	assert.False(t, f.userByEmail(t, "bob@example.com").IsVerified)
}

func TestVerifyToken_ExpiryBoundary(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t, "Bob", "bob@example.com", "Passw0rd!")
	token := f.sender.lastToken()

	// Exactly at the expiry instant counts as expired.
	f.clock.Advance(time.Hour)

	_, err := f.service.VerifyToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerifyToken_Unknown(t *testing.T) {
	f := newAuthFixture(t)
	_, err := f.service.VerifyToken(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthenticate_Success(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t, "Alice", "alice@example.com", "Passw0rd!")
	_, err := f.service.VerifyToken(context.Background(), f.sender.lastToken())
	require.NoError(t, err)

	user, err := f.service.Authenticate(context.Background(), Credentials{
		Email:    "alice@example.com",
		Password: "Passw0rd!",
	})
	require.NoError(t, err)

	claims := f.service.ClaimsFor(user)
	assert.Equal(t, "Alice", claims.Name)
	assert.Equal(t, []string{"USER"}, claims.Roles)
	assert.True(t, claims.IsVerified)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t, "Alice", "alice@example.com", "Passw0rd!")
	_, err := f.service.VerifyToken(context.Background(), f.sender.lastToken())
	require.NoError(t, err)

	_, err = f.service.Authenticate(context.Background(), Credentials{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_UnknownEmailSameError(t *testing.T) {
	f := newAuthFixture(t)
	_, err := f.service.Authenticate(context.Background(), Credentials{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_UnverifiedIsDistinct(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t, "Bob", "bob@example.com", "Passw0rd!")

	// The password is right; the account just is not verified yet.
	_, err := f.service.Authenticate(context.Background(), Credentials{
		Email:    "bob@example.com",
		Password: "Passw0rd!",
	})
	assert.ErrorIs(t, err, ErrNotVerified)
}

func TestLogin_MintsSession(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t, "Alice", "alice@example.com", "Passw0rd!")
	_, err := f.service.VerifyToken(context.Background(), f.sender.lastToken())
	require.NoError(t, err)

	result, err := f.service.Login(context.Background(), Credentials{
		Email:    "alice@example.com",
		Password: "Passw0rd!",
	})
	require.NoError(t, err)
	assert.Contains(t, result.Token, "session-")
	assert.Equal(t, int64((24 * time.Hour).Seconds()), result.ExpiresIn)
}

func TestLoginWithProvider_CreatesVerifiedAccount(t *testing.T) {
	f := newAuthFixture(t)

	result, err := f.service.LoginWithProvider(context.Background(), ProviderIdentity{
		Provider: "google",
		Email:    "oauth@example.com",
		Name:     "OAuth User",
	})
	require.NoError(t, err)

	user := f.userByEmail(t, "oauth@example.com")
	assert.True(t, user.IsVerified)
	assert.Nil(t, user.PasswordHash)
	assert.True(t, user.HasRole(entity.RoleUser))
	assert.Contains(t, result.Token, "session-")
}

func TestLoginWithProvider_VerifiesPendingAccount(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t, "Alice", "alice@example.com", "Passw0rd!")
	pending := f.sender.lastToken()

	_, err := f.service.LoginWithProvider(context.Background(), ProviderIdentity{
		Provider: "github",
		Email:    "alice@example.com",
		Name:     "Alice",
	})
	require.NoError(t, err)

	assert.True(t, f.userByEmail(t, "alice@example.com").IsVerified)

	// The pending email token was dropped with the provider verification.
	_, err = f.service.VerifyToken(context.Background(), pending)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestEmailRegistered(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t, "Alice", "alice@example.com", "Passw0rd!")

	registered, err := f.service.EmailRegistered(context.Background(), "Alice@Example.com")
	require.NoError(t, err)
	assert.True(t, registered)

	registered, err = f.service.EmailRegistered(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.False(t, registered)
}
