package usecase

import (
	"context"
	"errors"

	"court-booking-backend/internal/converter"
	"court-booking-backend/internal/delivery/dto"
	"court-booking-backend/internal/delivery/http/middleware"
	"court-booking-backend/internal/domain/entity"
	"court-booking-backend/internal/domain/repository"
	"court-booking-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type UserAdminUsecase interface {
	ListUsers(ctx context.Context) (*dto.UserListResponse, error)
	SetUserActive(ctx context.Context, userID uuid.UUID, active bool) error
}

type userAdminUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	auditService service.AuditService
}

func NewUserAdminUsecase(db *gorm.DB, log *logrus.Logger, userRepo repository.UserRepository, auditService service.AuditService) UserAdminUsecase {
	return &userAdminUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		auditService: auditService,
	}
}

func (u *userAdminUsecase) ListUsers(ctx context.Context) (*dto.UserListResponse, error) {
	users, err := u.userRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list users: %+v", err)
		return nil, err
	}

	return &dto.UserListResponse{
		Users: converter.UsersToResponses(users),
		Total: len(users),
	}, nil
}

// SetUserActive suspends or reinstates an account. Suspended users keep their
// data but fail the login activity check.
func (u *userAdminUsecase) SetUserActive(ctx context.Context, userID uuid.UUID, active bool) error {
	adminID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	rows, err := u.userRepo.SetActive(u.db.WithContext(ctx), userID, active)
	if err != nil {
		u.log.Warnf("Failed to set active=%t for user %s: %+v", active, userID, err)
		return err
	}
	if rows == 0 {
		return ErrUserNotFound
	}

	action := entity.AuditActionUserActivate
	if !active {
		action = entity.AuditActionUserDeactivate
	}
	u.auditService.LogUpdate(ctx, u.db.WithContext(ctx), &adminID, action, "user", userID.String(), !active, active)

	return nil
}
