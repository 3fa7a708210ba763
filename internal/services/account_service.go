package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"tripweaver/internal/models/db_models"
	"tripweaver/internal/models/request_models"
	"tripweaver/internal/models/response_models"
	"tripweaver/internal/repositories"
	"tripweaver/pkg/logger"
	"tripweaver/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, req request_models.RegisterRequest) (*response_models.LoginResponse, error)
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error)
	CheckEmail(ctx context.Context, email string) (*response_models.CheckEmailResponse, error)
}

type AccountService struct {
	accounts repositories.AccountRepository
	tokens   *utils.TokenMaker
}

func NewAccountService(accounts repositories.AccountRepository, tokens *utils.TokenMaker) AccountServiceInterface {
	return &AccountService{accounts: accounts, tokens: tokens}
}

func (s *AccountService) Register(ctx context.Context, req request_models.RegisterRequest) (*response_models.LoginResponse, error) {
	email := normalizeEmail(req.Email)
	if email == "" || len(req.Password) < 8 {
		return nil, fmt.Errorf("%w: email and a password of at least 8 characters are required", utils.ErrInvalidInput)
	}

	existing, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		logger.Get().Error("account lookup failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailTaken
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	account := &db_models.Account{
		Email:        email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		logger.Get().Error("account creation failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	return s.loginResponse(account)
}

func (s *AccountService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", utils.ErrInvalidInput)
	}

	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		logger.Get().Error("account lookup failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if account == nil || utils.ComparePasswords(account.PasswordHash, req.Password) != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return s.loginResponse(account)
}

func (s *AccountService) CheckEmail(ctx context.Context, email string) (*response_models.CheckEmailResponse, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", utils.ErrInvalidInput)
	}

	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		logger.Get().Error("account lookup failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return &response_models.CheckEmailResponse{Exists: account != nil}, nil
}

func (s *AccountService) loginResponse(account *db_models.Account) (*response_models.LoginResponse, error) {
	token, err := s.tokens.CreateToken(account.ID, account.Email)
	if err != nil {
		return nil, err
	}
	return &response_models.LoginResponse{
		Token: token,
		Account: response_models.AccountResponse{
			ID:        account.ID.String(),
			Email:     account.Email,
			FirstName: account.FirstName,
			LastName:  account.LastName,
		},
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
