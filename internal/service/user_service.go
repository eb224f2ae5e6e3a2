package service

import (
	"Lumina/internal/api/dto"
	"Lumina/internal/model"
	"Lumina/internal/pkg/security"
	"Lumina/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

type UserService interface {
	Register(ctx context.Context, regDTO *dto.RegisterDTO) (*dto.TokenDTO, error)
	Login(ctx context.Context, loginDTO *dto.LoginDTO) (*dto.TokenDTO, error)
	GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error)
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, regDTO *dto.RegisterDTO) (*dto.TokenDTO, error) {
	findUser, err := s.userRepo.GetUserByEmail(ctx, regDTO.Email)
	if err != nil {
		return nil, err
	}
	if findUser != nil {
		return nil, ErrEmailExist
	}

	passwordHash, err := security.HashPassword(regDTO.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:          regDTO.Email,
		HashedPassword: passwordHash,
		FullName:       regDTO.FullName,
	}

	err = s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

func (s *UserServiceImpl) Login(ctx context.Context, loginDTO *dto.LoginDTO) (*dto.TokenDTO, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, loginDTO.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrCredentialsIncorrect
	}

	err = security.CheckPasswordHash(loginDTO.Password, user.HashedPassword)
	if err != nil {
		return nil, ErrCredentialsIncorrect
	}

	return s.issueToken(user)
}

func (s *UserServiceImpl) GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	userDTO := &dto.UserDTO{}
	err = copier.Copy(userDTO, user)
	if err != nil {
		return nil, err
	}
	return userDTO, nil
}

// issueToken 签发令牌并组装响应体
func (s *UserServiceImpl) issueToken(user *model.User) (*dto.TokenDTO, error) {
	token, err := security.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	userDTO := &dto.UserDTO{}
	err = copier.Copy(userDTO, user)
	if err != nil {
		return nil, err
	}

	return &dto.TokenDTO{
		AccessToken: token,
		TokenType:   "bearer",
		User:        userDTO,
	}, nil
}
