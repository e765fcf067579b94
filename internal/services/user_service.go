package services

import (
	"terek_backend/internal/appErrors"
	"terek_backend/internal/models"
	"terek_backend/internal/repositories"
	"terek_backend/internal/services/dto"
)

type UserService interface {
	GetProfile(userID string) (*dto.UserProfile, error)
	UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*dto.UserProfile, error)

	// Admin operations
	ListAll(limit, offset int) (*dto.UserListResponse, error)
	AdminUpdate(id string, req *dto.AdminUpdateUserRequest) (*dto.UserProfile, error)
	Delete(id, actorID string) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) GetProfile(userID string) (*dto.UserProfile, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}
	return userProfile(user), nil
}

func (s *UserServiceImpl) UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*dto.UserProfile, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != user.Email {
		taken, err := s.userRepo.EmailTakenByOther(*req.Email, user.ID)
		if err != nil {
			return nil, appErrors.InternalError(err)
		}
		if taken {
			return nil, appErrors.ErrEmailConflict
		}
		user.Email = *req.Email
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.CompanyName != nil {
		user.CompanyName = *req.CompanyName
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return userProfile(user), nil
}

func (s *UserServiceImpl) ListAll(limit, offset int) (*dto.UserListResponse, error) {
	users, err := s.userRepo.FindAll(limit, offset)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	total, err := s.userRepo.CountAll()
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	profiles := make([]dto.UserProfile, 0, len(users))
	for i := range users {
		profiles = append(profiles, *userProfile(&users[i]))
	}

	return &dto.UserListResponse{Users: profiles, Total: total}, nil
}

func (s *UserServiceImpl) AdminUpdate(id string, req *dto.AdminUpdateUserRequest) (*dto.UserProfile, error) {
	user, err := s.findUser(id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != user.Email {
		taken, err := s.userRepo.EmailTakenByOther(*req.Email, user.ID)
		if err != nil {
			return nil, appErrors.InternalError(err)
		}
		if taken {
			return nil, appErrors.ErrEmailConflict
		}
		user.Email = *req.Email
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.CompanyName != nil {
		user.CompanyName = *req.CompanyName
	}
	if req.Role != nil {
		user.Role = models.UserRole(*req.Role)
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return userProfile(user), nil
}

func (s *UserServiceImpl) Delete(id, actorID string) error {
	if id == actorID {
		return appErrors.ErrCannotModifySelf
	}

	if err := s.userRepo.Delete(id); err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return appErrors.ErrUserNotFound
		}
		return appErrors.InternalError(err)
	}
	return nil
}

func (s *UserServiceImpl) findUser(id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	return user, nil
}
