package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"warbler/internal/models"
)

func TestMessageServiceCreateValidation(t *testing.T) {
	svc := NewMessageService(noopMessageRepo(), noopLikeRepo(), noopUserRepo())

	_, err := svc.CreateMessage(context.Background(), 1, "   ")
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != models.CodeValidation {
		t.Fatalf("expected validation error for blank text, got %#v", err)
	}

	_, err = svc.CreateMessage(context.Background(), 1, strings.Repeat("a", 141))
	if !errors.As(err, &appErr) || appErr.Code != models.CodeValidation {
		t.Fatalf("expected validation error for long text, got %#v", err)
	}
}

func TestMessageServiceCreateRequiresLogin(t *testing.T) {
	repo := noopMessageRepo()
	repo.createFn = func(context.Context, *models.Message) error {
		t.Fatal("create must not run for an anonymous user")
		return nil
	}

	svc := NewMessageService(repo, noopLikeRepo(), noopUserRepo())
	_, err := svc.CreateMessage(context.Background(), 0, "hello")
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != models.CodeUnauthenticated {
		t.Fatalf("expected unauthenticated app error, got %#v", err)
	}
}

func TestMessageServiceCreateTrimsAndStores(t *testing.T) {
	repo := noopMessageRepo()
	var created *models.Message
	repo.createFn = func(_ context.Context, message *models.Message) error {
		message.ID = 7
		created = message
		return nil
	}
	repo.getByIDFn = func(_ context.Context, id, currentUserID uint) (*models.Message, error) {
		if id != 7 {
			t.Fatalf("expected reload of message 7, got %d", id)
		}
		return created, nil
	}

	svc := NewMessageService(repo, noopLikeRepo(), noopUserRepo())
	message, err := svc.CreateMessage(context.Background(), 3, "  Hello  ")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if message.Text != "Hello" {
		t.Fatalf("expected trimmed text, got %q", message.Text)
	}
	if message.UserID != 3 {
		t.Fatalf("expected owner 3, got %d", message.UserID)
	}
}

func TestMessageServiceCreateAcceptsMaxLength(t *testing.T) {
	repo := noopMessageRepo()
	repo.getByIDFn = func(_ context.Context, id, currentUserID uint) (*models.Message, error) {
		return &models.Message{ID: id}, nil
	}

	svc := NewMessageService(repo, noopLikeRepo(), noopUserRepo())
	if _, err := svc.CreateMessage(context.Background(), 1, strings.Repeat("a", 140)); err != nil {
		t.Fatalf("expected 140 characters to be accepted, got %v", err)
	}
}

func TestMessageServiceDeleteNotOwner(t *testing.T) {
	repo := noopMessageRepo()
	repo.getByIDFn = func(context.Context, uint, uint) (*models.Message, error) {
		return &models.Message{ID: 5, UserID: 10}, nil
	}
	repo.deleteFn = func(context.Context, uint) error {
		t.Fatal("delete must not run for a non-owner")
		return nil
	}

	svc := NewMessageService(repo, noopLikeRepo(), noopUserRepo())
	err := svc.DeleteMessage(context.Background(), 11, 5)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != models.CodeForbidden {
		t.Fatalf("expected forbidden app error, got %#v", err)
	}
}

func TestMessageServiceDeleteAnonymous(t *testing.T) {
	repo := noopMessageRepo()
	repo.getByIDFn = func(context.Context, uint, uint) (*models.Message, error) {
		return &models.Message{ID: 5, UserID: 10}, nil
	}

	svc := NewMessageService(repo, noopLikeRepo(), noopUserRepo())
	err := svc.DeleteMessage(context.Background(), 0, 5)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != models.CodeUnauthenticated {
		t.Fatalf("expected unauthenticated app error, got %#v", err)
	}
}

func TestMessageServiceDeleteOwner(t *testing.T) {
	repo := noopMessageRepo()
	repo.getByIDFn = func(context.Context, uint, uint) (*models.Message, error) {
		return &models.Message{ID: 5, UserID: 10}, nil
	}
	deleted := false
	repo.deleteFn = func(_ context.Context, id uint) error {
		deleted = id == 5
		return nil
	}

	svc := NewMessageService(repo, noopLikeRepo(), noopUserRepo())
	if err := svc.DeleteMessage(context.Background(), 10, 5); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !deleted {
		t.Fatal("expected message 5 to be deleted")
	}
}

func TestMessageServiceToggleLike(t *testing.T) {
	likeRepo := noopLikeRepo()
	liked := false
	likeRepo.isLikedFn = func(context.Context, uint, uint) (bool, error) { return liked, nil }
	likeRepo.likeFn = func(context.Context, uint, uint) error {
		liked = true
		return nil
	}
	likeRepo.unlikeFn = func(context.Context, uint, uint) error {
		liked = false
		return nil
	}

	svc := NewMessageService(noopMessageRepo(), likeRepo, noopUserRepo())

	nowLiked, err := svc.ToggleLike(context.Background(), 1, 5)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !nowLiked {
		t.Fatal("first toggle should like")
	}

	nowLiked, err = svc.ToggleLike(context.Background(), 1, 5)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if nowLiked {
		t.Fatal("second toggle should unlike")
	}
}

func TestMessageServiceToggleLikeRequiresLogin(t *testing.T) {
	likeRepo := noopLikeRepo()
	likeRepo.likeFn = func(context.Context, uint, uint) error {
		t.Fatal("like must not run for an anonymous user")
		return nil
	}

	svc := NewMessageService(noopMessageRepo(), likeRepo, noopUserRepo())
	_, err := svc.ToggleLike(context.Background(), 0, 5)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != models.CodeUnauthenticated {
		t.Fatalf("expected unauthenticated app error, got %#v", err)
	}
}

func TestMessageServiceGetRequiresLogin(t *testing.T) {
	svc := NewMessageService(noopMessageRepo(), noopLikeRepo(), noopUserRepo())
	_, err := svc.GetMessage(context.Background(), 5, 0)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != models.CodeUnauthenticated {
		t.Fatalf("expected unauthenticated app error, got %#v", err)
	}
}

func TestMessageServiceLikedMessagesRequireViewer(t *testing.T) {
	likeRepo := noopLikeRepo()
	likeRepo.listMessagesForFn = func(context.Context, uint) ([]*models.Message, error) {
		t.Fatal("list must not run for an anonymous viewer")
		return nil, nil
	}

	svc := NewMessageService(noopMessageRepo(), likeRepo, noopUserRepo())
	_, err := svc.LikedMessages(context.Background(), 0, 1)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != models.CodeUnauthenticated {
		t.Fatalf("expected unauthenticated app error, got %#v", err)
	}
}

func TestMessageServiceToggleLikeMissingMessage(t *testing.T) {
	repo := noopMessageRepo()
	repo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Message, error) {
		return nil, models.NewNotFoundError("Message", id)
	}

	svc := NewMessageService(repo, noopLikeRepo(), noopUserRepo())
	_, err := svc.ToggleLike(context.Background(), 1, 99)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != models.CodeNotFound {
		t.Fatalf("expected not-found app error, got %#v", err)
	}
}
