package user

import (
	"context"
	"log/slog"
	"time"

	"github.com/snapspot-api/internal/domain/identity"
	"github.com/snapspot-api/internal/infrastructure/google"
	"github.com/snapspot-api/internal/infrastructure/smtp"
	"github.com/snapspot-api/internal/persistence"
	"github.com/snapspot-api/internal/pkg/id"
	pkgtoken "github.com/snapspot-api/internal/pkg/token"
	"golang.org/x/crypto/bcrypt"
)

// DynamoDB attribute names used in partial update maps.
const (
	fieldEmailVerified = "email_verified"
	fieldGoogleSub     = "google_sub"
)

const verificationTTL = 24 * time.Hour

type Service interface {
	Register(ctx context.Context, req identity.CreateUserRequest) (*identity.User, error)
	Login(ctx context.Context, req identity.LoginRequest) (*identity.LoginResponse, error)
	LoginWithGoogle(ctx context.Context, req identity.GoogleLoginRequest) (*identity.LoginResponse, error)
	VerifyEmail(ctx context.Context, token string) (*identity.VerifyEmailResponse, error)
	ResendVerification(ctx context.Context, req identity.ResendVerificationRequest) error
	Get(ctx context.Context, userID string) (*identity.User, error)
}

type userStore interface {
	Create(ctx context.Context, u *identity.User) error
	GetByEmail(ctx context.Context, email string) (*identity.User, error)
	GetByID(ctx context.Context, userID string) (*identity.User, error)
	Update(ctx context.Context, email string, updates map[string]interface{}) error
}

type verificationStore interface {
	Create(ctx context.Context, v *identity.Verification) error
	GetByToken(ctx context.Context, token string) (*identity.Verification, error)
	MarkUsed(ctx context.Context, token string, usedAt time.Time) error
}

type jwtSigner interface {
	Sign(userID, email string) (string, error)
}

type googleVerifier interface {
	Verify(ctx context.Context, token string) (*google.Payload, error)
}

type service struct {
	repo             userStore
	verificationRepo verificationStore
	mailer           smtp.Mailer
	jwtProvider      jwtSigner
	googleVerifier   googleVerifier
	frontendURL      string
}

type ServiceDeps struct {
	UserRepo         userStore
	VerificationRepo verificationStore
	Mailer           smtp.Mailer
	JWTProvider      jwtSigner
	GoogleVerifier   googleVerifier
	FrontendURL      string
}

func NewService(deps ServiceDeps) Service {
	return &service{
		repo:             deps.UserRepo,
		verificationRepo: deps.VerificationRepo,
		mailer:           deps.Mailer,
		jwtProvider:      deps.JWTProvider,
		googleVerifier:   deps.GoogleVerifier,
		frontendURL:      deps.FrontendURL,
	}
}

func (s *service) Register(ctx context.Context, req identity.CreateUserRequest) (*identity.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, identity.Internal("Failed to hash password")
	}
	now := time.Now().UTC()
	u := &identity.User{
		UserID:       id.New(),
		Email:        req.Email,
		DisplayName:  req.DisplayName,
		PasswordHash: string(hash),
		AuthProvider: identity.ProviderLocal,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	// A duplicate email fails the conditional put and surfaces through the
	// storage conversion as an internal failure, not a conflict.
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, identity.FromStorage(err)
	}
	if err := s.sendVerification(ctx, u); err != nil {
		slog.Warn("could not send verification email", "email", u.Email, "err", err)
	}
	return u, nil
}

func (s *service) Login(ctx context.Context, req identity.LoginRequest) (*identity.LoginResponse, error) {
	u, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if persistence.IsNoRows(err) {
			return nil, identity.Unauthorized("Invalid email or password")
		}
		return nil, identity.FromStorage(err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, identity.Unauthorized("Invalid email or password")
	}
	if !u.EmailVerified {
		return nil, identity.Unauthorized("Email not verified")
	}
	return s.issueToken(u)
}

func (s *service) LoginWithGoogle(ctx context.Context, req identity.GoogleLoginRequest) (*identity.LoginResponse, error) {
	if s.googleVerifier == nil {
		return nil, identity.ValidationFailed("Google sign-in is not configured")
	}
	p, err := s.googleVerifier.Verify(ctx, req.IDToken)
	if err != nil {
		return nil, identity.Unauthorized("Invalid Google token")
	}

	u, err := s.repo.GetByEmail(ctx, p.Email)
	switch {
	case err == nil:
		if u.GoogleSub == "" {
			updates := map[string]interface{}{
				fieldGoogleSub:     p.Sub,
				fieldEmailVerified: true,
			}
			if err := s.repo.Update(ctx, u.Email, updates); err != nil {
				return nil, identity.FromStorage(err)
			}
			u.GoogleSub = p.Sub
			u.EmailVerified = true
		}
	case persistence.IsNoRows(err):
		now := time.Now().UTC()
		u = &identity.User{
			UserID:        id.New(),
			Email:         p.Email,
			DisplayName:   p.Name,
			EmailVerified: p.EmailVerified,
			AuthProvider:  identity.ProviderGoogle,
			GoogleSub:     p.Sub,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := s.repo.Create(ctx, u); err != nil {
			return nil, identity.FromStorage(err)
		}
	default:
		return nil, identity.FromStorage(err)
	}

	return s.issueToken(u)
}

func (s *service) VerifyEmail(ctx context.Context, token string) (*identity.VerifyEmailResponse, error) {
	v, err := s.verificationRepo.GetByToken(ctx, token)
	if err != nil {
		if persistence.IsNoRows(err) {
			return nil, identity.InvalidToken("Invalid verification token")
		}
		return nil, identity.FromStorage(err)
	}
	if v.Used() {
		return nil, identity.TokenAlreadyUsed("Verification token has already been used")
	}
	now := time.Now().UTC()
	if v.Expired(now) {
		return nil, identity.TokenExpired("Verification token has expired")
	}

	u, err := s.repo.GetByID(ctx, v.UserID)
	if err != nil {
		return nil, identity.FromStorage(err)
	}

	// The conditional update makes consumption single-shot; losing the race
	// surfaces through the storage conversion.
	if err := s.verificationRepo.MarkUsed(ctx, token, now); err != nil {
		return nil, identity.FromStorage(err)
	}
	if err := s.repo.Update(ctx, u.Email, map[string]interface{}{fieldEmailVerified: true}); err != nil {
		return nil, identity.FromStorage(err)
	}

	return &identity.VerifyEmailResponse{
		Message: "Email verified successfully",
		Email:   u.Email,
	}, nil
}

func (s *service) ResendVerification(ctx context.Context, req identity.ResendVerificationRequest) error {
	u, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if persistence.IsNoRows(err) {
			return identity.NotFound("User not found")
		}
		return identity.FromStorage(err)
	}
	if u.EmailVerified {
		return identity.ValidationFailed("Email is already verified")
	}
	return s.sendVerification(ctx, u)
}

func (s *service) Get(ctx context.Context, userID string) (*identity.User, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, identity.FromStorage(err)
	}
	return u, nil
}

func (s *service) issueToken(u *identity.User) (*identity.LoginResponse, error) {
	token, err := s.jwtProvider.Sign(u.UserID, u.Email)
	if err != nil {
		return nil, identity.Internal("Failed to sign token")
	}
	return &identity.LoginResponse{
		Token:       token,
		UserID:      u.UserID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
	}, nil
}

func (s *service) sendVerification(ctx context.Context, u *identity.User) error {
	tok, err := pkgtoken.NewVerificationToken()
	if err != nil {
		return identity.Internal("Failed to generate verification token")
	}
	now := time.Now().UTC()
	v := &identity.Verification{
		Token:     tok,
		UserID:    u.UserID,
		ExpiresAt: now.Add(verificationTTL).Unix(),
		CreatedAt: now,
	}
	if err := s.verificationRepo.Create(ctx, v); err != nil {
		return identity.FromStorage(err)
	}
	body := smtp.VerificationEmailBody(s.frontendURL, tok)
	if err := s.mailer.SendEmail(u.Email, smtp.VerificationSubject, body); err != nil {
		return identity.Internal("Failed to send verification email")
	}
	return nil
}
