package server

import (
	"warbler/internal/middleware"
	"warbler/internal/models"
	"warbler/internal/policy"
	"warbler/internal/service"
	"warbler/internal/session"

	"github.com/gofiber/fiber/v2"
)

// GetUsers handles GET /api/users. An optional q parameter filters by
// username substring, case-insensitively.
func (s *Server) GetUsers(c *fiber.Ctx) error {
	viewerID, _ := s.optionalUserID(c)
	if err := policy.Decide(viewerID, policy.ActionSearchUsers, 0); err != nil {
		return respondError(c, err)
	}

	p := parsePagination(c, 50)
	users, err := s.userService.ListUsers(c.Context(), c.Query("q"), p.Limit, p.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"users": users})
}

// GetUserProfile handles GET /api/users/:id. Profiles are public; the
// response includes the user's most recent messages.
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	viewerID, viewerOk := s.optionalUserID(c)
	if err := policy.Decide(viewerID, policy.ActionViewProfile, id); err != nil {
		return respondError(c, err)
	}

	user, err := s.userService.GetProfile(c.Context(), id, c.QueryInt("limit", 20))
	if err != nil {
		return respondError(c, err)
	}

	// is_following is only meaningful for a logged-in viewer.
	response := fiber.Map{"user": user}
	if viewerOk && viewerID != id {
		following, err := s.userService.IsFollowing(c.Context(), viewerID, id)
		if err != nil {
			return respondError(c, err)
		}
		response["is_following"] = following
	}

	return c.JSON(response)
}

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	user, err := s.userService.GetProfile(c.Context(), currentUserID(c), c.QueryInt("limit", 20))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"user": user})
}

// UpdateMyProfile handles PUT /api/users/me. Every edit re-confirms the
// account password.
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	var req struct {
		Username       string `json:"username"`
		Email          string `json:"email"`
		ImageURL       string `json:"image_url"`
		HeaderImageURL string `json:"header_image_url"`
		Bio            string `json:"bio"`
		Location       string `json:"location"`
		Password       string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID:         currentUserID(c),
		Username:       req.Username,
		Email:          req.Email,
		ImageURL:       req.ImageURL,
		HeaderImageURL: req.HeaderImageURL,
		Bio:            req.Bio,
		Location:       req.Location,
		Password:       req.Password,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"user": user})
}

// DeleteMyAccount handles DELETE /api/users/me. The current token is
// revoked alongside the account so it cannot keep resolving to a user id.
func (s *Server) DeleteMyAccount(c *fiber.Ctx) error {
	if err := s.userService.DeleteAccount(c.Context(), currentUserID(c)); err != nil {
		return respondError(c, err)
	}

	if jti, ttl, ok := s.tokenRevocationClaims(c); ok {
		if err := session.Revoke(c.Context(), jti, ttl); err != nil {
			middleware.Logger.ErrorContext(c.UserContext(),
				"failed to revoke token for deleted account", "error", err)
		}
	}

	return c.JSON(fiber.Map{"message": "Account deleted"})
}

// FollowUser handles POST /api/users/follow/:id
func (s *Server) FollowUser(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.userService.Follow(c.Context(), currentUserID(c), targetID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"following": true})
}

// UnfollowUser handles POST /api/users/stop-following/:id
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.userService.Unfollow(c.Context(), currentUserID(c), targetID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"following": false})
}

// GetFollowing handles GET /api/users/:id/following
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	users, err := s.userService.Following(c.Context(), currentUserID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"users": users})
}

// GetFollowers handles GET /api/users/:id/followers
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	users, err := s.userService.Followers(c.Context(), currentUserID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"users": users})
}

// GetLikedMessages handles GET /api/users/:id/likes
func (s *Server) GetLikedMessages(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	messages, err := s.messageService.LikedMessages(c.Context(), currentUserID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"messages": messages})
}
