package service

import (
	"context"

	"warbler/internal/models"
	"warbler/internal/policy"
	"warbler/internal/repository"
	"warbler/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// UserService provides profile and follow-graph business logic.
type UserService struct {
	userRepo repository.UserRepository
}

// UpdateProfileInput carries the editable profile fields plus the
// current password, which must be re-confirmed before any edit.
type UpdateProfileInput struct {
	UserID         uint
	Username       string
	Email          string
	ImageURL       string
	HeaderImageURL string
	Bio            string
	Location       string
	Password       string
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetProfile returns the user with their most recent messages preloaded.
func (s *UserService) GetProfile(ctx context.Context, id uint, messageLimit int) (*models.User, error) {
	return s.userRepo.GetByIDWithMessages(ctx, id, messageLimit)
}

// ListUsers returns users matching the query, or a page of all users
// when the query is empty.
func (s *UserService) ListUsers(ctx context.Context, query string, limit, offset int) ([]models.User, error) {
	if query == "" {
		return s.userRepo.List(ctx, limit, offset)
	}
	return s.userRepo.Search(ctx, query)
}

// Follow adds a follow edge from userID to targetID. Following an
// already-followed user is a no-op.
func (s *UserService) Follow(ctx context.Context, userID, targetID uint) error {
	if err := policy.Decide(userID, policy.ActionFollow, targetID); err != nil {
		return err
	}
	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return err
	}
	return s.userRepo.Follow(ctx, userID, targetID)
}

// Unfollow removes the follow edge from userID to targetID.
func (s *UserService) Unfollow(ctx context.Context, userID, targetID uint) error {
	if err := policy.Decide(userID, policy.ActionUnfollow, targetID); err != nil {
		return err
	}
	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return err
	}
	return s.userRepo.Unfollow(ctx, userID, targetID)
}

// IsFollowing reports whether userID follows targetID.
func (s *UserService) IsFollowing(ctx context.Context, userID, targetID uint) (bool, error) {
	return s.userRepo.IsFollowing(ctx, userID, targetID)
}

// Following returns the users that userID follows. Follow lists require
// a logged-in viewer.
func (s *UserService) Following(ctx context.Context, viewerID, userID uint) ([]models.User, error) {
	if err := policy.Decide(viewerID, policy.ActionViewFollowing, userID); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.userRepo.Following(ctx, userID)
}

// Followers returns the users that follow userID. Follow lists require
// a logged-in viewer.
func (s *UserService) Followers(ctx context.Context, viewerID, userID uint) ([]models.User, error) {
	if err := policy.Decide(viewerID, policy.ActionViewFollowers, userID); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.userRepo.Followers(ctx, userID)
}

// UpdateProfile edits the user's profile after re-confirming their
// password. Empty fields are left unchanged, except the image URLs,
// which reset to the defaults when cleared.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	if err := policy.Decide(in.UserID, policy.ActionEditProfile, in.UserID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)) != nil {
		return nil, models.NewUnauthorizedError("Wrong password, please try again.")
	}

	if in.Username != "" {
		if err := validation.ValidateUsername(in.Username); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Username = in.Username
	}
	if in.Email != "" {
		if err := validation.ValidateEmail(in.Email); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Email = in.Email
	}

	user.ImageURL = in.ImageURL
	if user.ImageURL == "" {
		user.ImageURL = models.DefaultImageURL
	}
	user.HeaderImageURL = in.HeaderImageURL
	if user.HeaderImageURL == "" {
		user.HeaderImageURL = models.DefaultHeaderImageURL
	}
	user.Bio = in.Bio
	user.Location = in.Location

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteAccount removes the user and all of their data.
func (s *UserService) DeleteAccount(ctx context.Context, userID uint) error {
	if err := policy.Decide(userID, policy.ActionDeleteAccount, userID); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, userID)
}
