package user

import (
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"sync"

	c "newsdesk/internal/core/domain/common"
)

type FakePasswordHasher struct{}

func NewFakePasswordHasher() *FakePasswordHasher {
	return &FakePasswordHasher{}
}

func (h *FakePasswordHasher) HashPassword(password RawPassword) (PasswordHash, error) {
	hash := md5.New()
	io.WriteString(hash, string(password))
	return PasswordHash(fmt.Sprintf("%x", hash.Sum(nil))), nil
}

func (h *FakePasswordHasher) ValidatePassword(password RawPassword, hash PasswordHash) bool {
	actualHash, err := h.HashPassword(password)
	if err != nil {
		return false
	}
	return actualHash == hash
}

type FakeValidationCodeGenerator struct {
	Code        ValidationCode
	ReturnError bool
}

func NewFakeValidationCodeGenerator(code string) *FakeValidationCodeGenerator {
	return &FakeValidationCodeGenerator{Code: ValidationCode(code)}
}

func (g *FakeValidationCodeGenerator) GenerateValidationCode() (ValidationCode, error) {
	if g.ReturnError {
		return "", fmt.Errorf("could not generate validation code")
	}
	return g.Code, nil
}

type FakePasswordGenerator struct {
	Password    RawPassword
	ReturnError bool
}

func NewFakePasswordGenerator(password string) *FakePasswordGenerator {
	return &FakePasswordGenerator{Password: RawPassword(password)}
}

func (g *FakePasswordGenerator) GeneratePassword() (RawPassword, error) {
	if g.ReturnError {
		return "", fmt.Errorf("could not generate password")
	}
	return g.Password, nil
}

type FakeSessionTokenGenerator struct {
	Token string
}

func NewFakeSessionTokenGenerator(token string) *FakeSessionTokenGenerator {
	return &FakeSessionTokenGenerator{Token: token}
}

func (g *FakeSessionTokenGenerator) GenerateToken() SessionToken {
	return SessionToken(g.Token)
}

type SentValidationCode struct {
	To   User
	Code ValidationCode
}

type SentPassword struct {
	To       User
	Password RawPassword
}

type FakePasswordResetNotifier struct {
	SentCodes     []SentValidationCode
	SentPasswords []SentPassword
	ReturnError   bool
	lock          sync.Mutex
}

func NewFakePasswordResetNotifier() *FakePasswordResetNotifier {
	return &FakePasswordResetNotifier{}
}

func (n *FakePasswordResetNotifier) SendValidationCode(ctx context.Context, u User, code ValidationCode) error {
	if n.ReturnError {
		return fmt.Errorf("could not send validation code to %s", u.Mail)
	}
	n.lock.Lock()
	defer n.lock.Unlock()
	n.SentCodes = append(n.SentCodes, SentValidationCode{To: u, Code: code})
	return nil
}

func (n *FakePasswordResetNotifier) SendNewPassword(ctx context.Context, u User, password RawPassword) error {
	if n.ReturnError {
		return fmt.Errorf("could not send new password to %s", u.Mail)
	}
	n.lock.Lock()
	defer n.lock.Unlock()
	n.SentPasswords = append(n.SentPasswords, SentPassword{To: u, Password: password})
	return nil
}

func (n *FakePasswordResetNotifier) SentCount() int {
	n.lock.Lock()
	defer n.lock.Unlock()
	return len(n.SentCodes) + len(n.SentPasswords)
}

type FakeUserRepository struct {
	Users       []User
	SaveCount   int
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{Users: make([]User, 0, 10)}
}

func (r *FakeUserRepository) GetByID(ctx context.Context, id ID) (User, error) {
	return r.find(func(u User) bool { return u.ID == id })
}

func (r *FakeUserRepository) GetByUsername(ctx context.Context, username Username) (User, error) {
	return r.find(func(u User) bool { return u.Username == username })
}

func (r *FakeUserRepository) GetByMail(ctx context.Context, mail c.Email) (User, error) {
	return r.find(func(u User) bool { return u.Mail == mail })
}

func (r *FakeUserRepository) GetByValidationCodeAndMail(
	ctx context.Context,
	code ValidationCode,
	mail c.Email,
) (User, error) {
	return r.find(func(u User) bool {
		return u.Mail == mail && u.ValidationCode.IsPresent && u.ValidationCode.Value == code
	})
}

func (r *FakeUserRepository) Save(ctx context.Context, u User) (User, error) {
	if r.ReturnError {
		return User{}, fmt.Errorf("could not save user %d", u.ID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.SaveCount++

	maxID := ID(0)
	position := -1
	for ix, existing := range r.Users {
		if existing.ID > maxID {
			maxID = existing.ID
		}
		if existing.ID == u.ID {
			position = ix
			continue
		}
		if existing.Username == u.Username {
			return User{}, &DuplicateKeyError{Key: "username"}
		}
		if existing.Mail == u.Mail {
			return User{}, &DuplicateKeyError{Key: "mail"}
		}
	}

	u.Roles = append([]Role(nil), u.Roles...)
	if u.ID == 0 {
		u.ID = maxID + 1
		r.Users = append(r.Users, u)
		return u, nil
	}
	if position < 0 {
		return User{}, ErrUserDoesNotExist
	}
	r.Users[position] = u
	return u, nil
}

func (r *FakeUserRepository) Delete(ctx context.Context, id ID) error {
	if r.ReturnError {
		return fmt.Errorf("could not delete user %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == id {
			r.Users = append(r.Users[:ix], r.Users[ix+1:]...)
			return nil
		}
	}
	return ErrUserDoesNotExist
}

func (r *FakeUserRepository) find(match func(u User) bool) (User, error) {
	if r.ReturnError {
		return User{}, fmt.Errorf("could not get user")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if match(u) {
			u.Roles = append([]Role(nil), u.Roles...)
			return u, nil
		}
	}
	return User{}, ErrUserDoesNotExist
}

type FakeSessionRepository struct {
	UserIdByToken  map[SessionToken]ID
	UserRepository UserRepository
	ReturnError    bool
	lock           sync.Mutex
}

func NewFakeSessionRepository(userRepository UserRepository) *FakeSessionRepository {
	return &FakeSessionRepository{
		UserIdByToken:  make(map[SessionToken]ID),
		UserRepository: userRepository,
	}
}

func (r *FakeSessionRepository) Create(ctx context.Context, input CreateSessionInput) error {
	if r.ReturnError {
		return fmt.Errorf("could not create session for user %d", input.UserID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.UserIdByToken[input.Token] = input.UserID
	return nil
}

func (r *FakeSessionRepository) GetUserByToken(ctx context.Context, token SessionToken) (u User, err error) {
	r.lock.Lock()
	userID, ok := r.UserIdByToken[token]
	r.lock.Unlock()
	if !ok {
		return u, ErrUserDoesNotExist
	}
	return r.UserRepository.GetByID(ctx, userID)
}

func (r *FakeSessionRepository) Delete(ctx context.Context, token SessionToken) (ID, error) {
	if r.ReturnError {
		return ID(0), fmt.Errorf("could not delete session")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	userID, ok := r.UserIdByToken[token]
	if !ok {
		return ID(0), ErrSessionDoesNotExist
	}
	delete(r.UserIdByToken, token)
	return userID, nil
}
