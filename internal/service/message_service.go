package service

import (
	"context"
	"strings"

	"warbler/internal/models"
	"warbler/internal/policy"
	"warbler/internal/repository"
)

// MessageService provides message and like business logic.
type MessageService struct {
	messageRepo repository.MessageRepository
	likeRepo    repository.LikeRepository
	userRepo    repository.UserRepository
}

// NewMessageService returns a new MessageService.
func NewMessageService(messageRepo repository.MessageRepository, likeRepo repository.LikeRepository, userRepo repository.UserRepository) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		likeRepo:    likeRepo,
		userRepo:    userRepo,
	}
}

// CreateMessage stores a new message owned by userID.
func (s *MessageService) CreateMessage(ctx context.Context, userID uint, text string) (*models.Message, error) {
	if err := policy.Decide(userID, policy.ActionCreateMessage, userID); err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, models.NewValidationError("Message text is required")
	}
	if len([]rune(text)) > models.MaxMessageLen {
		return nil, models.NewValidationError("Message too long (max 140 characters)")
	}

	message := &models.Message{Text: text, UserID: userID}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}
	return s.messageRepo.GetByID(ctx, message.ID, userID)
}

// GetMessage returns the message with like details computed for the
// requesting user.
func (s *MessageService) GetMessage(ctx context.Context, id, currentUserID uint) (*models.Message, error) {
	if err := policy.Decide(currentUserID, policy.ActionViewMessage, 0); err != nil {
		return nil, err
	}
	return s.messageRepo.GetByID(ctx, id, currentUserID)
}

// DeleteMessage removes the message if userID owns it.
func (s *MessageService) DeleteMessage(ctx context.Context, userID, messageID uint) error {
	message, err := s.messageRepo.GetByID(ctx, messageID, 0)
	if err != nil {
		return err
	}
	if err := policy.Decide(userID, policy.ActionDeleteMessage, message.UserID); err != nil {
		return err
	}
	return s.messageRepo.Delete(ctx, messageID)
}

// ToggleLike flips userID's like on the message and reports the
// resulting state: true when the message is now liked.
func (s *MessageService) ToggleLike(ctx context.Context, userID, messageID uint) (bool, error) {
	if err := policy.Decide(userID, policy.ActionToggleLike, 0); err != nil {
		return false, err
	}
	if _, err := s.messageRepo.GetByID(ctx, messageID, 0); err != nil {
		return false, err
	}

	liked, err := s.likeRepo.IsLiked(ctx, userID, messageID)
	if err != nil {
		return false, err
	}
	if liked {
		if err := s.likeRepo.Unlike(ctx, userID, messageID); err != nil {
			return false, err
		}
		return false, nil
	}
	if err := s.likeRepo.Like(ctx, userID, messageID); err != nil {
		return false, err
	}
	return true, nil
}

// LikedMessages returns the messages userID has liked, as seen by
// viewerID. Like lists require a logged-in viewer.
func (s *MessageService) LikedMessages(ctx context.Context, viewerID, userID uint) ([]*models.Message, error) {
	if err := policy.Decide(viewerID, policy.ActionViewLikes, userID); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.likeRepo.ListMessagesFor(ctx, userID)
}
