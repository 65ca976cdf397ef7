package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"linkhop/config"
	"linkhop/internal/jwt"
	"linkhop/internal/models"
	"linkhop/internal/producer"
	"linkhop/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 6

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

//go:generate mockgen -destination=../mocks/email_sender_mock.go -package=mocks linkhop/internal/service EmailSender

// EmailSender publishes outgoing email requests.
type EmailSender interface {
	Send(ctx context.Context, msg producer.EmailMessage) error
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type UserService struct {
	repo   *repository.UserRepository
	rtRepo *repository.RefreshTokenRepository
	mailer EmailSender
	cfg    *config.JWTConfig
	log    *zap.Logger
}

func NewUserService(
	repo *repository.UserRepository,
	rtRepo *repository.RefreshTokenRepository,
	mailer EmailSender,
	cfg *config.JWTConfig,
	log *zap.Logger,
) *UserService {
	if mailer == nil {
		mailer = producer.Nop{}
	}
	return &UserService{
		repo:   repo,
		rtRepo: rtRepo,
		mailer: mailer,
		cfg:    cfg,
		log:    log,
	}
}

// Register creates a free-plan user owning domain, then queues a welcome email.
// Email delivery failures are logged and do not fail the registration.
func (s *UserService) Register(ctx context.Context, name, email, password, domain string) (*models.User, error) {
	name, email, domain = strings.TrimSpace(name), strings.TrimSpace(email), strings.TrimSpace(domain)
	if name == "" || email == "" || password == "" || domain == "" {
		return nil, ErrValidation
	}
	if !emailRe.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	if !validDomain(domain) {
		return nil, ErrInvalidDomain
	}
	if len(password) < minPasswordLen {
		return nil, ErrWeakPassword
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, s.internal("user.register", err)
	}
	taken, err := s.repo.DomainExists(ctx, domain)
	if err != nil {
		return nil, s.internal("user.register", err)
	}
	if taken {
		return nil, ErrDomainTaken
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, s.internal("user.register", err)
	}
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Plan:         models.PlanFree,
	}
	if err := s.repo.CreateWithDomain(ctx, user, domain); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// Lost a race on either unique key; report the one that is now taken.
			if _, ferr := s.repo.FindByEmail(ctx, email); ferr == nil {
				return nil, ErrUserExists
			}
			return nil, ErrDomainTaken
		}
		return nil, s.internal("user.register", err)
	}

	if err := s.mailer.Send(ctx, producer.EmailMessage{
		To:       user.Email,
		Subject:  "Welcome to linkhop",
		Template: "welcome",
		Data: map[string]any{
			"name":   user.Name,
			"domain": domain,
		},
	}); err != nil {
		s.log.Warn("failed to queue welcome email", zap.String("email", user.Email), zap.Error(err))
	}

	return user, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	user, err := s.repo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, s.internal("user.login", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user.ID)
}

// Refresh exchanges a live refresh token for a new pair and revokes the old one.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := jwt.ParseRefreshToken(refreshToken, s.cfg.Refresh)
	if err != nil {
		return nil, ErrInvalidToken
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	rt, err := s.rtRepo.FindByJTI(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, s.internal("user.refresh", err)
	}
	if !rt.Active(time.Now(), userID) {
		return nil, ErrInvalidToken
	}
	revoked, err := s.rtRepo.RevokeByJTI(ctx, claims.ID)
	if err != nil {
		return nil, s.internal("user.refresh", err)
	}
	if !revoked {
		return nil, ErrInvalidToken
	}

	return s.issueTokens(ctx, userID)
}

func (s *UserService) issueTokens(ctx context.Context, userID uuid.UUID) (*TokenPair, error) {
	access, _, err := jwt.GenerateAccessToken(userID.String(), s.cfg)
	if err != nil {
		return nil, s.internal("user.tokens", err)
	}
	refresh, refreshClaims, err := jwt.GenerateRefreshToken(userID.String(), s.cfg)
	if err != nil {
		return nil, s.internal("user.tokens", err)
	}
	if err := s.rtRepo.Create(ctx, &models.RefreshToken{
		JTI:       refreshClaims.ID,
		UserID:    userID,
		ExpiresAt: refreshClaims.ExpiresAt.Time,
	}); err != nil {
		return nil, s.internal("user.tokens", err)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *UserService) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := s.rtRepo.RevokeAllForUser(ctx, userID); err != nil {
		return s.internal("user.logout", err)
	}
	return nil
}

// CurrentUser loads the user with its domains for an authenticated request.
func (s *UserService) CurrentUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, s.internal("user.current", err)
	}
	return user, nil
}

func (s *UserService) ChangePassword(ctx context.Context, user *models.User, current, next string) error {
	if user == nil {
		return ErrUnauthenticated
	}
	if current == "" || next == "" {
		return ErrValidation
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)); err != nil {
		return ErrIncorrectPassword
	}
	if len(next) < minPasswordLen {
		return ErrWeakPassword
	}

	hash, err := hashPassword(next)
	if err != nil {
		return s.internal("user.change_password", err)
	}
	if err := s.repo.UpdatePassword(ctx, user.ID, hash); err != nil {
		return s.internal("user.change_password", err)
	}
	user.PasswordHash = hash
	return nil
}

// UpdatePlan switches the user's plan. No payment is taken.
func (s *UserService) UpdatePlan(ctx context.Context, user *models.User, plan models.Plan) error {
	if user == nil {
		return ErrUnauthenticated
	}
	if !plan.Valid() {
		return ErrInvalidPlan
	}
	if err := s.repo.UpdatePlan(ctx, user.ID, plan); err != nil {
		return s.internal("user.update_plan", err)
	}
	user.Plan = plan
	return nil
}

func (s *UserService) internal(op string, err error) error {
	s.log.Error("user operation failed", zap.String("op", op), zap.Error(err))
	return ErrInternal
}
