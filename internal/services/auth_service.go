package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"vdpcza/internal/models/db_models"
	"vdpcza/internal/models/request_models"
	"vdpcza/internal/models/response_models"
	"vdpcza/internal/repositories"
	mem "vdpcza/pkg/memcache"
	"vdpcza/pkg/utils"
)

const (
	otpKeyPrefix     = "otp:"
	magicKeyPrefix   = "magic:"
	revokedKeyPrefix = "revoked:"
)

type AuthServiceInterface interface {
	SignIn(ctx context.Context, req request_models.SignInRequest) error
	VerifyOtp(ctx context.Context, req request_models.VerifyOtpRequest) (*response_models.AuthResponse, error)
	SignInWithPassword(ctx context.Context, req request_models.PasswordSignInRequest) (*response_models.AuthResponse, error)
	SignOut(ctx context.Context, session *utils.Session) error

	// Authenticate validates a bearer token and resolves it into a session.
	Authenticate(ctx context.Context, token string) (*utils.Session, error)
	Resolve(ctx context.Context, accountID uuid.UUID, email string) (*utils.Session, error)

	SetPassword(ctx context.Context, email, password string) error
	Promote(ctx context.Context, email string) error
}

type AuthSettings struct {
	Whitelist  []string
	AdminEmail string
	OTPTTL     time.Duration
	AppBaseURL string
}

type AuthService struct {
	accountRepo repositories.AccountRepository
	profileRepo repositories.ProfileRepository
	mailService IMailService
	tokens      mem.TokenStore
	issuer      *utils.TokenIssuer
	settings    AuthSettings
	log         *zap.Logger
	now         func() time.Time
}

func NewAuthService(
	accountRepo repositories.AccountRepository,
	profileRepo repositories.ProfileRepository,
	mailService IMailService,
	tokens mem.TokenStore,
	issuer *utils.TokenIssuer,
	settings AuthSettings,
	log *zap.Logger,
) *AuthService {
	return &AuthService{
		accountRepo: accountRepo,
		profileRepo: profileRepo,
		mailService: mailService,
		tokens:      tokens,
		issuer:      issuer,
		settings:    settings,
		log:         log.Named("auth"),
		now:         time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// allowed reports whether email may hold a session. An empty list admits everyone.
func (a *AuthService) allowed(email string) bool {
	if len(a.settings.Whitelist) == 0 {
		return true
	}
	for _, e := range a.settings.Whitelist {
		if e == email {
			return true
		}
	}
	return false
}

func (a *AuthService) SignIn(ctx context.Context, req request_models.SignInRequest) error {
	email := normalizeEmail(req.Email)
	if !a.allowed(email) {
		a.log.Info("sign-in refused", zap.String("email", email))
		return utils.ErrEmailNotAllowed
	}

	code, err := utils.GenerateOtpCode(6)
	if err != nil {
		return fmt.Errorf("generate otp: %w", err)
	}
	magic, err := utils.GenerateSecureToken(32)
	if err != nil {
		return fmt.Errorf("generate magic token: %w", err)
	}

	a.tokens.Set(otpKeyPrefix+email, code, a.settings.OTPTTL)
	a.tokens.Set(magicKeyPrefix+magic, email, a.settings.OTPTTL)

	if err := a.mailService.SendSignInLink(email, a.magicLink(magic, req.Next), code); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrMailFailed, err)
	}
	return nil
}

func (a *AuthService) magicLink(token, next string) string {
	q := url.Values{}
	q.Set("token", token)
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		q.Set("next", next)
	}
	return strings.TrimRight(a.settings.AppBaseURL, "/") + "/auth/callback?" + q.Encode()
}

func (a *AuthService) VerifyOtp(ctx context.Context, req request_models.VerifyOtpRequest) (*response_models.AuthResponse, error) {
	var email string
	switch {
	case req.Token != "":
		email = a.tokens.Consume(magicKeyPrefix + req.Token)
		if email == "" {
			return nil, utils.ErrInvalidOtp
		}
	case req.Email != "" && req.Code != "":
		email = normalizeEmail(req.Email)
		// A wrong guess burns the code.
		stored := a.tokens.Consume(otpKeyPrefix + email)
		if stored == "" || subtle.ConstantTimeCompare([]byte(stored), []byte(req.Code)) != 1 {
			return nil, utils.ErrInvalidOtp
		}
	default:
		return nil, utils.ErrInvalidInput
	}

	if !a.allowed(email) {
		return nil, utils.ErrEmailNotAllowed
	}

	account, err := a.findOrCreateAccount(ctx, email)
	if err != nil {
		return nil, err
	}
	return a.issue(ctx, account)
}

func (a *AuthService) SignInWithPassword(ctx context.Context, req request_models.PasswordSignInRequest) (*response_models.AuthResponse, error) {
	email := normalizeEmail(req.Email)
	if !a.allowed(email) {
		return nil, utils.ErrEmailNotAllowed
	}

	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, dbError(err)
	}
	if account == nil || account.PasswordHash == "" {
		return nil, utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(account.PasswordHash, req.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return a.issue(ctx, account)
}

func (a *AuthService) issue(ctx context.Context, account *db_models.Account) (*response_models.AuthResponse, error) {
	session, err := a.Resolve(ctx, account.ID, account.Email)
	if err != nil {
		return nil, err
	}

	token, claims, err := a.issuer.CreateToken(account.ID, account.Email)
	if err != nil {
		return nil, err
	}

	return &response_models.AuthResponse{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Unix(),
		Session:   ToSessionResponse(session),
	}, nil
}

func (a *AuthService) SignOut(ctx context.Context, session *utils.Session) error {
	if session == nil || session.TokenID == "" {
		return utils.ErrUnauthorized
	}
	ttl := time.Unix(session.ExpiresAt, 0).Sub(a.now())
	if ttl > 0 {
		a.tokens.Set(revokedKeyPrefix+session.TokenID, session.UserID.String(), ttl)
	}
	return nil
}

func (a *AuthService) Authenticate(ctx context.Context, token string) (*utils.Session, error) {
	claims, err := a.issuer.ValidateToken(token)
	if err != nil {
		return nil, err
	}
	if _, revoked := a.tokens.Peek(revokedKeyPrefix + claims.ID); revoked {
		return nil, utils.ErrUnauthorized
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, utils.ErrUnauthorized
	}

	session, err := a.Resolve(ctx, userID, claims.Email)
	if err != nil {
		return nil, err
	}
	session.TokenID = claims.ID
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Unix()
	}
	return session, nil
}

func (a *AuthService) Resolve(ctx context.Context, accountID uuid.UUID, email string) (*utils.Session, error) {
	email = normalizeEmail(email)
	if !a.allowed(email) {
		return nil, utils.ErrEmailNotAllowed
	}

	profile, err := a.profileRepo.FindById(ctx, accountID)
	if err != nil {
		return nil, dbError(err)
	}
	if profile == nil {
		profile = &db_models.Profile{ID: accountID, Role: db_models.RoleUser}
		if err := a.profileRepo.Create(ctx, profile); err != nil {
			return nil, dbError(err)
		}
	}

	if a.settings.AdminEmail != "" && strings.EqualFold(email, a.settings.AdminEmail) && profile.Role != db_models.RoleAdmin {
		if err := a.profileRepo.UpdateFields(ctx, accountID, map[string]interface{}{"role": db_models.RoleAdmin}); err != nil {
			return nil, dbError(err)
		}
		profile.Role = db_models.RoleAdmin
	}

	return &utils.Session{
		UserID:      accountID,
		Email:       email,
		Role:        profile.Role,
		DisplayName: utils.DisplayNameFor(profile.FullName, email),
		AvatarURL:   profile.AvatarURL,
	}, nil
}

func (a *AuthService) findOrCreateAccount(ctx context.Context, email string) (*db_models.Account, error) {
	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, dbError(err)
	}
	if account != nil {
		return account, nil
	}

	account = &db_models.Account{Email: email}
	if err := a.accountRepo.InsertTx(ctx, account); err != nil {
		return nil, dbError(err)
	}
	a.log.Info("account created", zap.String("account_id", account.ID.String()))
	return account, nil
}

func (a *AuthService) SetPassword(ctx context.Context, email, password string) error {
	if len(password) < 6 {
		return fmt.Errorf("%w: password must have at least 6 characters", utils.ErrInvalidInput)
	}
	account, err := a.findOrCreateAccount(ctx, normalizeEmail(email))
	if err != nil {
		return err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := a.accountRepo.UpdatePasswordHash(ctx, account.ID, hash); err != nil {
		return dbError(err)
	}
	return nil
}

func (a *AuthService) Promote(ctx context.Context, email string) error {
	account, err := a.accountRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return dbError(err)
	}
	if account == nil {
		return utils.ErrProfileNotFound
	}

	profile, err := a.profileRepo.FindById(ctx, account.ID)
	if err != nil {
		return dbError(err)
	}
	if profile == nil {
		return dbErrorOrNil(a.profileRepo.Create(ctx, &db_models.Profile{ID: account.ID, Role: db_models.RoleAdmin}))
	}
	return dbErrorOrNil(a.profileRepo.UpdateFields(ctx, account.ID, map[string]interface{}{"role": db_models.RoleAdmin}))
}

func ToSessionResponse(s *utils.Session) response_models.SessionResponse {
	return response_models.SessionResponse{
		UserID:      s.UserID.String(),
		Email:       s.Email,
		Role:        s.Role,
		DisplayName: s.DisplayName,
	}
}
