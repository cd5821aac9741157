package server

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/guestbook"
	"github.com/Zachkp/portfolio/internal/model"
	"github.com/Zachkp/portfolio/internal/store"
)

const (
	adminCookie      = "admin_token"
	devAdminPassword = "admin123"
	recentComments   = 50
)

// admin guards the moderation pages. The session token and the IP hashing
// salt are regenerated on every start, so restarts log everyone out.
type admin struct {
	username     string
	passwordHash []byte // nil disables login
	token        string
	salt         string
	cookieMaxAge int
	logger       *slog.Logger
}

func newAdmin(cfg config.AdminConfig, debug bool, logger *slog.Logger) (*admin, error) {
	token, err := generateToken()
	if err != nil {
		return nil, err
	}
	salt, err := generateToken()
	if err != nil {
		return nil, err
	}

	a := &admin{
		username:     cfg.Username,
		token:        token,
		salt:         salt,
		cookieMaxAge: int(cfg.SessionTTL.Seconds()),
		logger:       logger,
	}

	switch {
	case cfg.PasswordHash != "":
		a.passwordHash = []byte(cfg.PasswordHash)
	case cfg.Password != "":
		a.passwordHash, err = bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	case debug:
		logger.Warn("using default admin password, set ADMIN_PASSWORD")
		a.passwordHash, err = bcrypt.GenerateFromPassword([]byte(devAdminPassword), bcrypt.DefaultCost)
	default:
		logger.Warn("no admin password configured, admin login disabled")
	}
	if err != nil {
		return nil, err
	}

	logger.Info("admin access available at /admin/login")
	return a, nil
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// hashIP returns a salted, truncated hash so commenters can be told apart
// without storing addresses.
func (a *admin) hashIP(ip string) string {
	h := sha256.New()
	h.Write([]byte(ip + a.salt))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

func (a *admin) checkCredentials(username, password string) bool {
	if a.passwordHash == nil {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)) == nil
	return userOK && passOK
}

func (a *admin) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *Server) commentStats(c *gin.Context) (model.CommentStats, error) {
	comments, err := s.store.ListComments(c.Request.Context(), -1)
	if err != nil {
		return model.CommentStats{}, err
	}
	stats := guestbook.Stats(comments)
	if len(comments) > recentComments {
		comments = comments[:recentComments]
	}
	stats.Recent = comments
	return stats, nil
}

func (s *Server) setupAdminRoutes(r *gin.Engine) {
	a := s.admin

	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		if a.checkCredentials(c.PostForm("username"), c.PostForm("password")) {
			c.SetCookie(adminCookie, a.token, a.cookieMaxAge, "/admin", "", false, true)
			s.logger.Info("admin login", "from", a.hashIP(c.ClientIP()))
			c.Redirect(http.StatusFound, "/admin/dashboard")
			return
		}
		s.logger.Warn("failed admin login", "from", a.hashIP(c.ClientIP()))
		c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
			"error": "Invalid credentials",
		})
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	g := r.Group("/admin")
	g.Use(a.authMiddleware())

	g.GET("/dashboard", func(c *gin.Context) {
		stats, err := s.commentStats(c)
		if err != nil {
			s.logger.Error("loading admin stats", "error", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load statistics",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{"stats": stats})
	})

	g.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.commentStats(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	g.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.commentStats(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=guestbook-stats.json")
		c.JSON(http.StatusOK, stats)
	})

	g.GET("/api/comments/:id", func(c *gin.Context) {
		comment, err := s.store.GetComment(c.Request.Context(), c.Param("id"))
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
		case err != nil:
			s.logger.Error("loading comment", "id", c.Param("id"), "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load comment"})
		default:
			c.JSON(http.StatusOK, gin.H{"comment": comment, "author": comment.AuthorHash})
		}
	})

	g.DELETE("/comments/:id", func(c *gin.Context) {
		id := c.Param("id")
		err := s.store.DeleteComment(c.Request.Context(), id)
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
		case err != nil:
			s.logger.Error("deleting comment", "id", id, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete comment"})
		default:
			s.logger.Info("comment deleted by admin", "id", id, "from", a.hashIP(c.ClientIP()))
			c.JSON(http.StatusOK, gin.H{"message": "comment deleted"})
		}
	})
}
