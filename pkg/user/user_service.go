package user

import (
	"context"
	"cooking-half/domain"
	"cooking-half/entities"
	"cooking-half/internal/utils/storage"
	"cooking-half/pkg/jwt"
	"cooking-half/pkg/password"
	"errors"
	"mime/multipart"

	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.UserResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		GetUser(ctx context.Context, id uint) (domain.UserResponse, error)
		UpdateUser(ctx context.Context, id uint, req domain.UpdateUserRequest, actorID uint) (domain.UserResponse, error)
		UploadProfileImage(ctx context.Context, userID uint, file *multipart.FileHeader) (string, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		uploader       storage.Gateway
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, uploader storage.Gateway) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		uploader:       uploader,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.UserResponse, error) {
	taken, err := s.userRepository.ExistsEmail(ctx, req.Email, 0)
	if err != nil {
		return domain.UserResponse{}, err
	}
	if taken {
		return domain.UserResponse{}, domain.ErrEmailRegistered
	}

	taken, err = s.userRepository.ExistsUsername(ctx, req.Username, 0)
	if err != nil {
		return domain.UserResponse{}, err
	}
	if taken {
		return domain.UserResponse{}, domain.ErrUsernameTaken
	}

	digest, err := password.Hash(req.Password)
	if err != nil {
		return domain.UserResponse{}, err
	}

	user := &entities.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: digest,
	}
	if err := s.userRepository.Create(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}

	return toUserResponse(user), nil
}

// Login reports the same error for an unknown email and a wrong password
// so account existence does not leak.
func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{}, err
	}

	if !password.Check(req.Password, user.PasswordHash) {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	return domain.LoginResponse{
		Token: s.jwtService.GenerateToken(user.ID),
		User:  toUserResponse(user),
	}, nil
}

func (s *userService) GetUser(ctx context.Context, id uint) (domain.UserResponse, error) {
	user, err := s.userRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) UpdateUser(ctx context.Context, id uint, req domain.UpdateUserRequest, actorID uint) (domain.UserResponse, error) {
	user, err := s.userRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	if !entities.IsOwner(user, actorID) {
		return domain.UserResponse{}, domain.ErrUserNotAllowed
	}

	if req.Username != nil {
		taken, err := s.userRepository.ExistsUsername(ctx, *req.Username, user.ID)
		if err != nil {
			return domain.UserResponse{}, err
		}
		if taken {
			return domain.UserResponse{}, domain.ErrUsernameTaken
		}
		user.Username = *req.Username
	}

	if req.Email != nil {
		taken, err := s.userRepository.ExistsEmail(ctx, *req.Email, user.ID)
		if err != nil {
			return domain.UserResponse{}, err
		}
		if taken {
			return domain.UserResponse{}, domain.ErrEmailRegistered
		}
		user.Email = *req.Email
	}

	if req.Password != nil {
		digest, err := password.Hash(*req.Password)
		if err != nil {
			return domain.UserResponse{}, err
		}
		user.PasswordHash = digest
	}

	if req.ProfileImage.Present {
		user.ProfileImage = req.ProfileImage.Value
	}

	if err := s.userRepository.Update(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) UploadProfileImage(ctx context.Context, userID uint, file *multipart.FileHeader) (string, error) {
	user, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrUserNotFound
		}
		return "", err
	}

	url, err := s.uploader.UploadProfileImage(ctx, file)
	if err != nil {
		return "", err
	}

	if user.ProfileImage != nil && *user.ProfileImage != "" {
		_ = s.uploader.DeleteByURL(ctx, *user.ProfileImage)
	}

	user.ProfileImage = &url
	if err := s.userRepository.Update(ctx, user); err != nil {
		return "", err
	}
	return url, nil
}

func toUserResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		UserID:       user.ID,
		Username:     user.Username,
		Email:        user.Email,
		ProfileImage: user.ProfileImage,
	}
}
