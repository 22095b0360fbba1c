package server

import (
	"github.com/gofiber/fiber/v2"
)

// FollowUser handles POST /api/social/follow/:id
func (s *Server) FollowUser(c *fiber.Ctx) error {
	followingID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.socialService.FollowUser(c.Context(), currentUserID(c), followingID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// UnfollowUser handles POST /api/social/unfollow/:id
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	followingID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.socialService.UnfollowUser(c.Context(), currentUserID(c), followingID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// GetNotifications handles GET /api/social/notifications
func (s *Server) GetNotifications(c *fiber.Ctx) error {
	notifs, err := s.socialService.ListNotifications(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(notifs)
}

// MarkNotificationRead handles POST /api/social/notifications/:id/read
func (s *Server) MarkNotificationRead(c *fiber.Ctx) error {
	notifID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.socialService.MarkNotificationRead(c.Context(), currentUserID(c), notifID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// GetFollowing handles GET /api/social/following
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	ids, err := s.socialService.FollowingIDs(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(ids)
}

// GetFollowingDetails handles GET /api/social/following/details
func (s *Server) GetFollowingDetails(c *fiber.Ctx) error {
	details, err := s.socialService.FollowingDetails(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(details)
}

// GetFollowersDetails handles GET /api/social/followers/details
func (s *Server) GetFollowersDetails(c *fiber.Ctx) error {
	details, err := s.socialService.FollowersDetails(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(details)
}
