package service

import (
	"context"

	"warbler/internal/models"
)

type userRepoStub struct {
	createFn              func(context.Context, *models.User) error
	getByIDFn             func(context.Context, uint) (*models.User, error)
	getByIDWithMessagesFn func(context.Context, uint, int) (*models.User, error)
	getByUsernameFn       func(context.Context, string) (*models.User, error)
	getByEmailFn          func(context.Context, string) (*models.User, error)
	updateFn              func(context.Context, *models.User) error
	deleteFn              func(context.Context, uint) error
	listFn                func(context.Context, int, int) ([]models.User, error)
	searchFn              func(context.Context, string) ([]models.User, error)
	followFn              func(context.Context, uint, uint) error
	unfollowFn            func(context.Context, uint, uint) error
	isFollowingFn         func(context.Context, uint, uint) (bool, error)
	isFollowedByFn        func(context.Context, uint, uint) (bool, error)
	followingFn           func(context.Context, uint) ([]models.User, error)
	followersFn           func(context.Context, uint) ([]models.User, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByIDWithMessages(ctx context.Context, id uint, limit int) (*models.User, error) {
	return s.getByIDWithMessagesFn(ctx, id, limit)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *userRepoStub) Search(ctx context.Context, query string) ([]models.User, error) {
	return s.searchFn(ctx, query)
}
func (s *userRepoStub) Follow(ctx context.Context, followerID, followedID uint) error {
	return s.followFn(ctx, followerID, followedID)
}
func (s *userRepoStub) Unfollow(ctx context.Context, followerID, followedID uint) error {
	return s.unfollowFn(ctx, followerID, followedID)
}
func (s *userRepoStub) IsFollowing(ctx context.Context, followerID, followedID uint) (bool, error) {
	return s.isFollowingFn(ctx, followerID, followedID)
}
func (s *userRepoStub) IsFollowedBy(ctx context.Context, userID, otherID uint) (bool, error) {
	return s.isFollowedByFn(ctx, userID, otherID)
}
func (s *userRepoStub) Following(ctx context.Context, userID uint) ([]models.User, error) {
	return s.followingFn(ctx, userID)
}
func (s *userRepoStub) Followers(ctx context.Context, userID uint) ([]models.User, error) {
	return s.followersFn(ctx, userID)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:              func(context.Context, *models.User) error { return nil },
		getByIDFn:             func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByIDWithMessagesFn: func(context.Context, uint, int) (*models.User, error) { return &models.User{}, nil },
		getByUsernameFn:       func(context.Context, string) (*models.User, error) { return nil, nil },
		getByEmailFn:          func(context.Context, string) (*models.User, error) { return nil, nil },
		updateFn:              func(context.Context, *models.User) error { return nil },
		deleteFn:              func(context.Context, uint) error { return nil },
		listFn:                func(context.Context, int, int) ([]models.User, error) { return nil, nil },
		searchFn:              func(context.Context, string) ([]models.User, error) { return nil, nil },
		followFn:              func(context.Context, uint, uint) error { return nil },
		unfollowFn:            func(context.Context, uint, uint) error { return nil },
		isFollowingFn:         func(context.Context, uint, uint) (bool, error) { return false, nil },
		isFollowedByFn:        func(context.Context, uint, uint) (bool, error) { return false, nil },
		followingFn:           func(context.Context, uint) ([]models.User, error) { return nil, nil },
		followersFn:           func(context.Context, uint) ([]models.User, error) { return nil, nil },
	}
}

type messageRepoStub struct {
	createFn      func(context.Context, *models.Message) error
	getByIDFn     func(context.Context, uint, uint) (*models.Message, error)
	getByUserIDFn func(context.Context, uint, uint) ([]*models.Message, error)
	deleteFn      func(context.Context, uint) error
}

func (s *messageRepoStub) Create(ctx context.Context, message *models.Message) error {
	return s.createFn(ctx, message)
}
func (s *messageRepoStub) GetByID(ctx context.Context, id, currentUserID uint) (*models.Message, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}
func (s *messageRepoStub) GetByUserID(ctx context.Context, userID, currentUserID uint) ([]*models.Message, error) {
	return s.getByUserIDFn(ctx, userID, currentUserID)
}
func (s *messageRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopMessageRepo() *messageRepoStub {
	return &messageRepoStub{
		createFn:      func(context.Context, *models.Message) error { return nil },
		getByIDFn:     func(context.Context, uint, uint) (*models.Message, error) { return &models.Message{}, nil },
		getByUserIDFn: func(context.Context, uint, uint) ([]*models.Message, error) { return nil, nil },
		deleteFn:      func(context.Context, uint) error { return nil },
	}
}

type likeRepoStub struct {
	isLikedFn         func(context.Context, uint, uint) (bool, error)
	likeFn            func(context.Context, uint, uint) error
	unlikeFn          func(context.Context, uint, uint) error
	listMessagesForFn func(context.Context, uint) ([]*models.Message, error)
}

func (s *likeRepoStub) IsLiked(ctx context.Context, userID, messageID uint) (bool, error) {
	return s.isLikedFn(ctx, userID, messageID)
}
func (s *likeRepoStub) Like(ctx context.Context, userID, messageID uint) error {
	return s.likeFn(ctx, userID, messageID)
}
func (s *likeRepoStub) Unlike(ctx context.Context, userID, messageID uint) error {
	return s.unlikeFn(ctx, userID, messageID)
}
func (s *likeRepoStub) ListMessagesFor(ctx context.Context, userID uint) ([]*models.Message, error) {
	return s.listMessagesForFn(ctx, userID)
}

func noopLikeRepo() *likeRepoStub {
	return &likeRepoStub{
		isLikedFn:         func(context.Context, uint, uint) (bool, error) { return false, nil },
		likeFn:            func(context.Context, uint, uint) error { return nil },
		unlikeFn:          func(context.Context, uint, uint) error { return nil },
		listMessagesForFn: func(context.Context, uint) ([]*models.Message, error) { return nil, nil },
	}
}
