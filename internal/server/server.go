package server

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/store"
)

// Server serves the portfolio pages, the guestbook API and the admin area.
type Server struct {
	cfg    *config.Config
	store  store.Store
	mailer Mailer
	admin  *admin
	logger *slog.Logger
	engine *gin.Engine
	loc    *time.Location
}

type Option func(*Server)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithMailer(m Mailer) Option {
	return func(s *Server) { s.mailer = m }
}

// WithLocation sets the zone guestbook dates are rendered in.
func WithLocation(loc *time.Location) Option {
	return func(s *Server) { s.loc = loc }
}

func New(st store.Store, cfg *config.Config, opts ...Option) (*Server, error) {
	s := &Server{
		cfg:    cfg,
		store:  st,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		loc:    time.Local,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.mailer == nil {
		s.mailer = NewSMTPMailer(cfg.SMTP)
	}

	adm, err := newAdmin(cfg.Admin, cfg.Debug, s.logger)
	if err != nil {
		return nil, err
	}
	s.admin = adm

	tmpl, err := loadTemplates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger))
	r.SetHTMLTemplate(tmpl)

	r.Static("/images", cfg.ImagesDir)
	r.Static("/static", cfg.StaticDir)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.setupPageRoutes(r)
	s.setupGuestbookRoutes(r)
	s.setupFragmentRoutes(r)
	s.setupAdminRoutes(r)

	s.engine = r
	return s, nil
}

// Handler returns the server wrapped in CORS handling when origins are
// configured.
func (s *Server) Handler() http.Handler {
	if len(s.cfg.AllowedOrigins) == 0 {
		return s.engine
	}
	return cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "HX-Request", "HX-Target", "HX-Trigger", "HX-Current-URL"},
		AllowCredentials: false,
		MaxAge:           300,
	})(s.engine)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}

func (s *Server) setupPageRoutes(r *gin.Engine) {
	nav := content.Pages()
	page := func(tmpl string, p content.Page) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.HTML(http.StatusOK, tmpl, gin.H{
				"title": p.Title,
				"path":  p.Path,
				"nav":   nav,
				"page":  p,
			})
		}
	}

	r.GET("/", page("index.html", content.Home()))
	r.GET("/work", page("work.html", content.Work()))
	r.GET("/projects", page("projects.html", content.Projects()))
	r.GET("/contact", page("contact.html", content.Contact()))
	r.POST("/contact", s.handleContact)
}

// quietPrefixes are not request-logged.
var quietPrefixes = []string{"/static/", "/images/", "/favicon", "/healthz"}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, p := range quietPrefixes {
			if strings.HasPrefix(path, p) {
				c.Next()
				return
			}
		}

		start := time.Now()
		c.Next()
		logger.Info("request",
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
