package services

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"interioai-backend/internal/models"
	"interioai-backend/internal/repository"
)

type IUserService interface {
	Signup(name, email, password string) (*models.User, error)
	Login(email, password string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
}

type UserService struct {
	userRepo   repository.IUserRepository
	designRepo repository.IDesignRepository
}

func NewUserService(userRepo repository.IUserRepository, designRepo repository.IDesignRepository) IUserService {
	return &UserService{
		userRepo:   userRepo,
		designRepo: designRepo,
	}
}

func (s *UserService) Signup(name, email, password string) (*models.User, error) {
	if existing, _ := s.userRepo.GetUserByEmail(email); existing != nil {
		return nil, fmt.Errorf("email already registered")
	}

	newUser := models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: password,
	}
	if err := s.userRepo.CreateUser(&newUser); err != nil {
		return nil, fmt.Errorf("error creating new user: %s", err)
	}

	return &newUser, nil
}

func (s *UserService) Login(email, password string) (*models.User, error) {
	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		log.Printf("user searching failed: %s", err)
		return nil, fmt.Errorf("invalid email or password")
	}

	if !s.userRepo.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("invalid email or password")
	}

	s.fillDesignsCount(user)
	return user, nil
}

func (s *UserService) GetUserByID(id string) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	s.fillDesignsCount(user)
	return user, nil
}

func (s *UserService) fillDesignsCount(user *models.User) {
	count, err := s.designRepo.CountDesignsByUserID(user.ID)
	if err != nil {
		log.Printf("failed to count designs for user %s: %v", user.ID, err)
		return
	}
	user.DesignsCount = count
}
