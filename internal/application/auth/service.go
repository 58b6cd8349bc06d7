package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"github.com/institute-cms/internal/domain"
	"github.com/institute-cms/internal/infrastructure/smtp"
	"github.com/institute-cms/internal/pkg/id"
	"golang.org/x/crypto/bcrypt"
)

const defaultOTPTTL = 5 * time.Minute

// LoginResult is returned by a successful login. The handler turns Token into
// the session cookie.
type LoginResult struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type Service interface {
	Register(ctx context.Context, req domain.RegisterRequest, callerRole string) (*domain.User, error)
	RequestOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, code string) error
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

type userStore interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type otpStore interface {
	Put(ctx context.Context, rec *domain.OTPRecord) error
	Get(ctx context.Context, email string) (*domain.OTPRecord, error)
	Consume(ctx context.Context, email, code string) error
}

type jwtSigner interface {
	Sign(userID, name, role string) (string, error)
}

type service struct {
	userRepo    userStore
	otpRepo     otpStore
	mailer      smtp.Mailer
	jwtProvider jwtSigner
	siteName    string
	otpTTL      time.Duration
	now         func() time.Time
}

type ServiceDeps struct {
	UserRepo    userStore
	OTPRepo     otpStore
	Mailer      smtp.Mailer
	JWTProvider jwtSigner
	SiteName    string
	OTPTTL      time.Duration
}

func NewService(deps ServiceDeps) Service {
	ttl := deps.OTPTTL
	if ttl <= 0 {
		ttl = defaultOTPTTL
	}
	return &service{
		userRepo:    deps.UserRepo,
		otpRepo:     deps.OTPRepo,
		mailer:      deps.Mailer,
		jwtProvider: deps.JWTProvider,
		siteName:    deps.SiteName,
		otpTTL:      ttl,
		now:         time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register stores a new user. Email uniqueness is enforced by the store, so
// two concurrent registrations for one address cannot both succeed.
// callerRole is the role of the session making the request, empty when
// anonymous; only an admin may create another admin.
func (s *service) Register(ctx context.Context, req domain.RegisterRequest, callerRole string) (*domain.User, error) {
	role := req.Role
	switch role {
	case "":
		role = domain.RoleUser
	case domain.RoleUser:
	case domain.RoleAdmin:
		if callerRole != domain.RoleAdmin {
			return nil, fmt.Errorf("only an admin can register an admin: %w", domain.ErrForbidden)
		}
	default:
		return nil, fmt.Errorf("invalid role: %w", domain.ErrBadRequest)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	u := &domain.User{
		UserID:       id.New(),
		Name:         strings.TrimSpace(req.Name),
		Email:        normalizeEmail(req.Email),
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}
	slog.Info("user registered", "user_id", u.UserID, "role", u.Role)
	return u, nil
}

// RequestOTP issues a fresh code for an unregistered address, replacing any
// earlier one, and emails it.
func (s *service) RequestOTP(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	_, err := s.userRepo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return fmt.Errorf("email already registered: %w", domain.ErrConflict)
	case !errors.Is(err, domain.ErrNotFound):
		return err
	}

	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return err
	}
	code := fmt.Sprintf("%06d", n.Int64())

	rec := &domain.OTPRecord{
		Email:     email,
		Code:      code,
		ExpiresAt: s.now().Add(s.otpTTL).Unix(),
	}
	if err := s.otpRepo.Put(ctx, rec); err != nil {
		return err
	}

	msg, err := smtp.RenderOTPEmail(s.siteName, code, s.otpTTL)
	if err != nil {
		return err
	}
	if err := s.mailer.SendEmail(email, msg.Subject, msg.Text, msg.HTML); err != nil {
		slog.Error("otp email not sent", "err", err)
		// A code the user never received must not stay redeemable.
		if derr := s.otpRepo.Consume(context.WithoutCancel(ctx), email, code); derr != nil && !errors.Is(derr, domain.ErrNotFound) {
			slog.Warn("undelivered otp not removed", "err", derr)
		}
		return fmt.Errorf("send verification email: %v: %w", err, domain.ErrDelivery)
	}
	return nil
}

// VerifyOTP checks the code and consumes it. A code verifies at most once.
func (s *service) VerifyOTP(ctx context.Context, email, code string) error {
	email = normalizeEmail(email)
	rec, err := s.otpRepo.Get(ctx, email)
	if err != nil {
		return err
	}
	if rec.Code != code {
		return fmt.Errorf("invalid otp: %w", domain.ErrBadRequest)
	}
	if rec.ExpiresAt < s.now().Unix() {
		return fmt.Errorf("otp expired: %w", domain.ErrExpired)
	}
	return s.otpRepo.Consume(ctx, email, code)
}

func (s *service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	u, err := s.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", domain.ErrBadRequest)
	}
	token, err := s.jwtProvider.Sign(u.UserID, u.Name, u.Role)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, User: u}, nil
}
