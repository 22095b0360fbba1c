package server

import (
	"hobbyverse/internal/models"
	"hobbyverse/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Content string   `json:"content"`
		Image   string   `json:"image"`
		Hobbies []string `json:"hobbies"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.Context(), currentUserID(c), req.Content, req.Image, req.Hobbies)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPosts handles GET /api/posts with optional user_id and hobby filters.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	filter := repository.PostFilter{
		Hobby: c.Query("hobby"),
	}
	if userID := c.QueryInt("user_id", 0); userID > 0 {
		filter.UserID = uint(userID)
	}

	posts, err := s.postService.ListPosts(c.Context(), filter)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(posts)
}

// LikePost handles POST /api/posts/:id/like
func (s *Server) LikePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.LikePost(c.Context(), currentUserID(c), postID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// CreateComment handles POST /api/posts/:id/comment
func (s *Server) CreateComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, svcErr := s.postService.CommentOnPost(c.Context(), currentUserID(c), postID, req.Content)
	if svcErr != nil {
		return respondServiceError(c, svcErr)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// GetComments handles GET /api/posts/:id/comments
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comments, svcErr := s.postService.ListComments(c.Context(), postID)
	if svcErr != nil {
		return respondServiceError(c, svcErr)
	}
	return c.JSON(comments)
}

// SharePost handles POST /api/posts/:id/share
func (s *Server) SharePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	shared, svcErr := s.postService.SharePost(c.Context(), currentUserID(c), postID)
	if svcErr != nil {
		return respondServiceError(c, svcErr)
	}
	return c.Status(fiber.StatusCreated).JSON(shared)
}

// batchIDs is the request body shared by the batch count endpoints.
type batchIDs struct {
	IDs []uint `json:"ids"`
}

// GetLikesCount handles POST /api/posts/likes-count
func (s *Server) GetLikesCount(c *fiber.Ctx) error {
	var req batchIDs
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	counts, err := s.postService.LikesCount(c.Context(), req.IDs)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(counts)
}

// GetCommentsCount handles POST /api/posts/comments-count
func (s *Server) GetCommentsCount(c *fiber.Ctx) error {
	var req batchIDs
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	counts, err := s.postService.CommentsCount(c.Context(), req.IDs)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(counts)
}

// GetSharesCount handles POST /api/posts/shares-count
func (s *Server) GetSharesCount(c *fiber.Ctx) error {
	var req batchIDs
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	counts, err := s.postService.SharesCount(c.Context(), req.IDs)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(counts)
}

// GetLikedPosts handles POST /api/posts/liked
func (s *Server) GetLikedPosts(c *fiber.Ctx) error {
	var req batchIDs
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	liked, err := s.postService.LikedByUser(c.Context(), currentUserID(c), req.IDs)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(liked)
}
