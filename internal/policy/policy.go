// Package policy holds the authorization rule set consumed by the HTTP
// handlers. Decide is a pure function over the current session and the
// target's owner; it never touches the database and is always consulted
// before a mutation so a denial can never partially apply.
package policy

import (
	"warbler/internal/models"
)

// Action enumerates every operation gated by an authorization rule.
type Action string

const (
	ActionCreateMessage Action = "create_message"
	ActionDeleteMessage Action = "delete_message"
	ActionToggleLike    Action = "toggle_like"
	ActionFollow        Action = "follow"
	ActionUnfollow      Action = "unfollow"
	ActionViewFollowing Action = "view_following"
	ActionViewFollowers Action = "view_followers"
	ActionViewLikes     Action = "view_likes"
	ActionViewMessage   Action = "view_message"
	ActionViewProfile   Action = "view_profile"
	ActionSearchUsers   Action = "search_users"
	ActionEditProfile   Action = "edit_profile"
	ActionDeleteAccount Action = "delete_account"
)

// AnonymousID is the "no current user" sentinel. User ids start at 1.
const AnonymousID uint = 0

// UnauthorizedMessage is the single flash message the original application
// renders for every denied request.
const UnauthorizedMessage = "Access unauthorized"

// Decide returns nil when currentUserID may perform action against a target
// owned by ownerID, and an AppError (UNAUTHENTICATED or FORBIDDEN) otherwise.
// ownerID is ignored for actions that are not ownership-sensitive.
func Decide(currentUserID uint, action Action, ownerID uint) error {
	switch action {
	case ActionViewProfile, ActionSearchUsers:
		// Public.
		return nil
	case ActionDeleteMessage:
		if currentUserID == AnonymousID {
			return models.NewUnauthorizedError(UnauthorizedMessage)
		}
		if currentUserID != ownerID {
			return models.NewForbiddenError(UnauthorizedMessage)
		}
		return nil
	case ActionEditProfile, ActionDeleteAccount:
		if currentUserID == AnonymousID {
			return models.NewUnauthorizedError(UnauthorizedMessage)
		}
		if currentUserID != ownerID {
			return models.NewForbiddenError(UnauthorizedMessage)
		}
		return nil
	case ActionCreateMessage, ActionToggleLike, ActionFollow, ActionUnfollow,
		ActionViewFollowing, ActionViewFollowers, ActionViewLikes, ActionViewMessage:
		// Login required; viewing another user's lists is allowed once
		// authenticated, matching the original application.
		if currentUserID == AnonymousID {
			return models.NewUnauthorizedError(UnauthorizedMessage)
		}
		return nil
	default:
		return models.NewForbiddenError(UnauthorizedMessage)
	}
}
