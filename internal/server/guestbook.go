package server

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/guestbook"
	"github.com/Zachkp/portfolio/internal/model"
	"github.com/Zachkp/portfolio/internal/store"
)

const maxCommentLength = 2000

// storeSource lets a guestbook cycle read straight from the store.
type storeSource struct {
	st store.CommentStore
}

func (s storeSource) Comments(ctx context.Context, sel guestbook.Selector) ([]model.Comment, error) {
	return s.st.ListComments(ctx, sel.Max())
}

func (s storeSource) DeleteAll(ctx context.Context) error {
	_, err := s.st.DeleteAllComments(ctx)
	return err
}

func (s *Server) setupGuestbookRoutes(r *gin.Engine) {
	r.GET("/data", s.handleListComments)
	r.POST("/data", s.handleCreateComment)
	r.POST("/delete-data", s.handleDeleteComments)
}

// selectorParam reads max-comments, falling back to all when it is missing
// or malformed.
func (s *Server) selectorParam(c *gin.Context) guestbook.Selector {
	raw := c.Query("max-comments")
	if raw == "" {
		return guestbook.All()
	}
	sel, err := guestbook.ParseSelector(raw)
	if err != nil {
		s.logger.Warn("bad max-comments, returning all", "value", raw, "error", err)
		return guestbook.All()
	}
	return sel
}

func (s *Server) handleListComments(c *gin.Context) {
	sel := s.selectorParam(c)
	comments, err := s.store.ListComments(c.Request.Context(), sel.Max())
	if err != nil {
		s.logger.Error("list comments", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load comments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

func (s *Server) handleCreateComment(c *gin.Context) {
	mood, err := strconv.ParseFloat(strings.TrimSpace(c.PostForm("mood")), 64)
	if err != nil || math.IsNaN(mood) || mood < 0 || mood > guestbook.GaugeMax {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mood must be a number between 0 and 100"})
		return
	}
	text := strings.TrimSpace(c.PostForm("comment"))
	if len(text) > maxCommentLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "comment is too long"})
		return
	}

	comment := model.Comment{
		Name:       strings.TrimSpace(c.PostForm("user")),
		Mood:       mood,
		Text:       text,
		Timestamp:  time.Now().UnixMilli(),
		AuthorHash: s.admin.hashIP(c.ClientIP()),
	}
	if _, err := s.store.CreateComment(c.Request.Context(), &comment); err != nil {
		s.logger.Error("create comment", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save comment"})
		return
	}

	s.logger.Info("comment posted", "id", comment.ID, "author", comment.AuthorHash)
	c.Redirect(http.StatusFound, "/contact#connect")
}

func (s *Server) handleDeleteComments(c *gin.Context) {
	n, err := s.store.DeleteAllComments(c.Request.Context())
	if err != nil {
		s.logger.Error("delete comments", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete comments"})
		return
	}
	s.logger.Info("comments deleted", "count", n, "by", s.admin.hashIP(c.ClientIP()))
	c.JSON(http.StatusOK, gin.H{})
}
