package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/Deepsoni5/kucash-sub001/internal/cache"
	"github.com/Deepsoni5/kucash-sub001/internal/db"
)

var (
	ErrOTPThrottled = errors.New("otp_throttled")
	ErrOTPInvalid   = errors.New("otp_invalid")
	ErrOTPExpired   = errors.New("otp_expired")
	ErrOTPExhausted = errors.New("otp_too_many_attempts")
)

type Repository interface {
	UpsertUserByMobile(ctx context.Context, mobileNumber string) (*db.User, error)
	UpsertUserByIDPSubject(ctx context.Context, idpSubject, email string) (*db.User, error)
	GetUserByID(ctx context.Context, userID string) (*db.User, error)
	CreateSession(ctx context.Context, userID, refreshHash, userAgent, ipAddress string, expiresAt time.Time) (*db.Session, error)
	GetSessionByID(ctx context.Context, sessionID string) (*db.Session, error)
	RevokeSession(ctx context.Context, sessionID string) error
	UpdateSessionRefreshHash(ctx context.Context, sessionID, refreshHash string) error
}

type OTPRepository interface {
	Create(ctx context.Context, mobileNumber, codeHash string, expiresAt time.Time) (*db.OTPRecord, error)
	LatestByMobile(ctx context.Context, mobileNumber string) (*db.OTPRecord, error)
	IncrementAttempts(ctx context.Context, id string) (int32, error)
	MarkVerified(ctx context.Context, id string) error
}

// OTPDispatcher hands the code off for delivery. The implementation enqueues
// an outbox job; the worker owns the actual WhatsApp call.
type OTPDispatcher interface {
	DispatchOTP(ctx context.Context, mobileNumber, code string) error
}

type Service struct {
	repo          Repository
	otpRepo       OTPRepository
	dispatcher    OTPDispatcher
	jwt           *JWTManager
	verifier      IDPVerifier
	throttle      *ResendThrottle
	profiles      *cache.Store[*db.User]
	accessTTL     time.Duration
	refreshTTL    time.Duration
	otpTTL        time.Duration
	otpMaxAttempt int32
	now           func() time.Time
}

type AuthTokens struct {
	AccessToken  string
	RefreshToken string
	SessionID    string
	User         *db.User
}

type ServiceConfig struct {
	AccessTTL      time.Duration
	RefreshTTL     time.Duration
	OTPTTL         time.Duration
	OTPMaxAttempts int32
}

func NewService(repo Repository, otpRepo OTPRepository, dispatcher OTPDispatcher, jwt *JWTManager, verifier IDPVerifier, throttle *ResendThrottle, profiles *cache.Store[*db.User], cfg ServiceConfig) *Service {
	if cfg.OTPMaxAttempts <= 0 {
		cfg.OTPMaxAttempts = 5
	}
	return &Service{
		repo:          repo,
		otpRepo:       otpRepo,
		dispatcher:    dispatcher,
		jwt:           jwt,
		verifier:      verifier,
		throttle:      throttle,
		profiles:      profiles,
		accessTTL:     cfg.AccessTTL,
		refreshTTL:    cfg.RefreshTTL,
		otpTTL:        cfg.OTPTTL,
		otpMaxAttempt: cfg.OTPMaxAttempts,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// RequestOTP generates and stores a fresh code for the mobile number and
// hands it off for WhatsApp delivery.
func (s *Service) RequestOTP(ctx context.Context, mobileNumber string) error {
	mobile := NormalizeMobile(mobileNumber)
	if mobile == "" {
		return errors.New("missing_mobile_number")
	}
	if !s.throttle.Allow(ctx, mobile) {
		return ErrOTPThrottled
	}

	code, err := GenerateOTPCode()
	if err != nil {
		return err
	}
	if _, err := s.otpRepo.Create(ctx, mobile, HashOTPCode(mobile, code), s.now().Add(s.otpTTL)); err != nil {
		return err
	}
	return s.dispatcher.DispatchOTP(ctx, mobile, code)
}

// VerifyOTP checks the submitted code against the latest issued one and, on
// success, upserts the user and opens a session.
func (s *Service) VerifyOTP(ctx context.Context, mobileNumber, code, userAgent, ipAddress string) (*AuthTokens, error) {
	mobile := NormalizeMobile(mobileNumber)
	rec, err := s.otpRepo.LatestByMobile(ctx, mobile)
	if err != nil {
		return nil, ErrOTPInvalid
	}
	if rec.VerifiedAt != nil {
		return nil, ErrOTPInvalid
	}
	if s.now().After(rec.ExpiresAt) {
		return nil, ErrOTPExpired
	}
	if rec.Attempts >= s.otpMaxAttempt {
		return nil, ErrOTPExhausted
	}
	if rec.CodeHash != HashOTPCode(mobile, code) {
		attempts, incErr := s.otpRepo.IncrementAttempts(ctx, rec.ID)
		if incErr == nil && attempts >= s.otpMaxAttempt {
			return nil, ErrOTPExhausted
		}
		return nil, ErrOTPInvalid
	}

	if err := s.otpRepo.MarkVerified(ctx, rec.ID); err != nil {
		return nil, err
	}
	user, err := s.repo.UpsertUserByMobile(ctx, mobile)
	if err != nil {
		return nil, err
	}

	bundle, err := s.createSessionAndTokens(ctx, user, userAgent, ipAddress)
	if err != nil {
		return nil, err
	}
	return &AuthTokens{AccessToken: bundle.AccessToken, RefreshToken: bundle.RefreshToken, SessionID: bundle.SessionID, User: user}, nil
}

// ExchangeIDPToken trades a magic-link access token from the external
// identity provider for a first-party session.
func (s *Service) ExchangeIDPToken(ctx context.Context, idpAccessToken, userAgent, ipAddress string) (*AuthTokens, error) {
	if s.verifier == nil {
		return nil, errors.New("idp_exchange_disabled")
	}
	identity, err := s.verifier.VerifyAccessToken(ctx, idpAccessToken)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.UpsertUserByIDPSubject(ctx, identity.Subject, identity.Email)
	if err != nil {
		return nil, err
	}

	bundle, err := s.createSessionAndTokens(ctx, user, userAgent, ipAddress)
	if err != nil {
		return nil, err
	}
	return &AuthTokens{AccessToken: bundle.AccessToken, RefreshToken: bundle.RefreshToken, SessionID: bundle.SessionID, User: user}, nil
}

type sessionBundle struct {
	AccessToken  string
	RefreshToken string
	SessionID    string
}

func (s *Service) Refresh(ctx context.Context, refreshToken, userAgent, ipAddress string) (*AuthTokens, error) {
	claims, err := s.jwt.Parse(refreshToken)
	if err != nil {
		return nil, err
	}
	if claims.Type != "refresh" {
		return nil, errors.New("invalid token type")
	}

	session, err := s.repo.GetSessionByID(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if session.RevokedAt != nil {
		return nil, errors.New("session revoked")
	}
	if s.now().After(session.ExpiresAt) {
		return nil, errors.New("session expired")
	}
	if session.RefreshTokenHash != hashToken(refreshToken) {
		return nil, errors.New("refresh token mismatch")
	}

	if err := s.repo.RevokeSession(ctx, session.ID); err != nil {
		return nil, err
	}

	user, err := s.repo.GetUserByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	bundle, err := s.createSessionAndTokens(ctx, user, userAgent, ipAddress)
	if err != nil {
		return nil, err
	}
	return &AuthTokens{AccessToken: bundle.AccessToken, RefreshToken: bundle.RefreshToken, SessionID: bundle.SessionID, User: user}, nil
}

func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.jwt.Parse(refreshToken)
	if err != nil {
		return nil
	}
	if claims.Type != "refresh" || claims.SessionID == "" {
		return nil
	}
	if s.profiles != nil {
		s.profiles.Delete(claims.UserID)
	}
	return s.repo.RevokeSession(ctx, claims.SessionID)
}

// Me resolves the authenticated user, serving repeat lookups from the TTL
// profile cache.
func (s *Service) Me(ctx context.Context, userID string) (*db.User, error) {
	if s.profiles != nil {
		if user, ok := s.profiles.Get(userID); ok {
			return user, nil
		}
	}
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if s.profiles != nil {
		s.profiles.Put(userID, user)
	}
	return user, nil
}

func (s *Service) createSessionAndTokens(ctx context.Context, user *db.User, userAgent, ipAddress string) (*sessionBundle, error) {
	expiresAt := s.now().Add(s.refreshTTL)
	session, err := s.repo.CreateSession(ctx, user.ID, "", userAgent, ipAddress, expiresAt)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.jwt.Mint(user.ID, user.Role, session.ID, "access", s.accessTTL)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwt.Mint(user.ID, user.Role, session.ID, "refresh", s.refreshTTL)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateSessionRefreshHash(ctx, session.ID, hashToken(refreshToken)); err != nil {
		return nil, err
	}

	return &sessionBundle{AccessToken: accessToken, RefreshToken: refreshToken, SessionID: session.ID}, nil
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

func ClientIP(r *http.Request) string {
	xff := strings.TrimSpace(r.Header.Get("X-Forwarded-For"))
	if xff != "" {
		parts := strings.Split(xff, ",")
		if len(parts) > 0 {
			return strings.TrimSpace(parts[0])
		}
	}

	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil {
		return host
	}
	return r.RemoteAddr
}
