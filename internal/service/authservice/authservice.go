package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/caredesk/referral-ledger/internal/domain"
	"github.com/caredesk/referral-ledger/pkg/auth"
	"go.uber.org/zap"
)

//go:generate mockgen -source=authservice.go -destination=authservice_mock.go -package=authservice

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type WalletService interface {
	GetOrCreate(ctx context.Context, userID int) (*domain.Wallet, error)
}

type ReferralService interface {
	IssueCode(ctx context.Context, userID int) (string, error)
	Bind(ctx context.Context, referralCode string, refereeID int, refereeRole string) (*domain.Referral, error)
}

var ErrInvalidRole = errors.New("role must be patient or doctor")

type Service struct {
	userRepo        Repo
	walletService   WalletService
	referralService ReferralService
	hashService     auth.HashServiceInterface
	jwtService      auth.JWTServiceInterface
}

func New(repo Repo, walletService WalletService, referralService ReferralService, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:        repo,
		walletService:   walletService,
		referralService: referralService,
		hashService:     hashService,
		jwtService:      jwtService,
	}
}

// Register creates the user with a zeroed wallet and a referral code, and
// binds an inbound referral code when one was supplied. Bind failures are
// logged but never fail the registration.
func (s *Service) Register(ctx context.Context, login, password, fullName, role, referralCode string) (*domain.User, error) {
	if role != domain.RolePatient && role != domain.RoleDoctor {
		return nil, ErrInvalidRole
	}

	existingUser, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists, login: ", zap.String("login", login))
		return nil, errors.New("username already taken")
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		Login:        login,
		PasswordHash: hashedPassword,
		FullName:     fullName,
		Role:         role,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	code, err := s.referralService.IssueCode(ctx, newUser.ID)
	if err != nil {
		zap.L().Error("can't issue referral code: ", zap.Error(err))
		return nil, err
	}
	newUser.ReferralCode = code

	if _, err := s.walletService.GetOrCreate(ctx, newUser.ID); err != nil {
		zap.L().Error("can't create wallet: ", zap.Error(err))
		return nil, err
	}

	if _, err := s.referralService.Bind(ctx, referralCode, newUser.ID, role); err != nil {
		zap.L().Error("can't bind referral, registration continues", zap.Error(err))
	}

	zap.L().Info("user successfully registered", zap.String("login", login))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, errors.New("invalid credentials")
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, errors.New("invalid credentials")
	}
	zap.L().Info("user successfully authenticated", zap.String("login", login))
	return user, nil
}

func (s *Service) GenerateToken(userID int, role string) (string, error) {
	expirationTime := time.Now().Add(15 * time.Minute)

	token, err := s.jwtService.GenerateJWT(userID, role, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
