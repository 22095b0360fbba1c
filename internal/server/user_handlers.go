package server

import (
	"hobbyverse/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetMe handles GET /api/user/me
func (s *Server) GetMe(c *fiber.Ctx) error {
	user, err := s.userService.GetUser(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}

// UpdateMe handles PUT /api/user/me
func (s *Server) UpdateMe(c *fiber.Ctx) error {
	var req struct {
		Name           string `json:"name"`
		ProfilePicture string `json:"profile_picture"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), currentUserID(c), req.Name, req.ProfilePicture)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}

// GetMyStats handles GET /api/user/me/stats
func (s *Server) GetMyStats(c *fiber.Ctx) error {
	stats, err := s.userService.Stats(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(stats)
}

// GetPublicProfile handles GET /api/user/:id (no auth required)
func (s *Server) GetPublicProfile(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	summary, svcErr := s.userService.PublicProfile(c.Context(), userID)
	if svcErr != nil {
		return respondServiceError(c, svcErr)
	}
	return c.JSON(summary)
}

// GetMyHobbies handles GET /api/user/me/hobbies
func (s *Server) GetMyHobbies(c *fiber.Ctx) error {
	hobbies, err := s.userService.ListHobbies(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(hobbies)
}

// AddHobby handles POST /api/user/me/hobbies
func (s *Server) AddHobby(c *fiber.Ctx) error {
	var req struct {
		Hobby string `json:"hobby"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Hobby is required."))
	}

	hobbies, err := s.userService.AddHobby(c.Context(), currentUserID(c), req.Hobby)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(hobbies)
}

// RemoveHobby handles DELETE /api/user/me/hobbies
func (s *Server) RemoveHobby(c *fiber.Ctx) error {
	var req struct {
		Hobby string `json:"hobby"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Hobby is required."))
	}

	hobbies, err := s.userService.RemoveHobby(c.Context(), currentUserID(c), req.Hobby)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(hobbies)
}

// FindUsersByHobby handles GET /api/user/find?hobby=
func (s *Server) FindUsersByHobby(c *fiber.Ctx) error {
	users, err := s.userService.FindByHobby(c.Context(), c.Query("hobby"), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(users)
}
