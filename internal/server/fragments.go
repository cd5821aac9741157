package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/guestbook"
)

// Fragment routes run a guestbook cycle against the store with the
// response standing in for the page regions. Errors return a non-2xx
// status so HTMX keeps what is already on the page.
func (s *Server) setupFragmentRoutes(r *gin.Engine) {
	f := r.Group("/fragments")
	f.GET("/comments", s.handleCommentsFragment)
	f.GET("/mood", s.handleMoodFragment)
	f.POST("/delete-comments", s.handleDeleteFragment)
}

type fragmentRegions struct {
	display, chart, feedback guestbook.Buffer
}

func (s *Server) newCycle(maxComments string, regions *fragmentRegions) (*guestbook.Cycle, error) {
	return guestbook.NewCycle(
		storeSource{st: s.store},
		guestbook.NewHTMLRenderer(s.loc),
		guestbook.Bindings{
			MaxComments: guestbook.StaticInput(maxComments),
			Display:     &regions.display,
			Chart:       &regions.chart,
			Feedback:    &regions.feedback,
		},
		guestbook.WithLogger(s.logger),
	)
}

func (s *Server) handleCommentsFragment(c *gin.Context) {
	var regions fragmentRegions
	cycle, err := s.newCycle(c.Query("max-comments"), &regions)
	if err != nil {
		s.fragmentError(c, err)
		return
	}
	if res := cycle.Refresh(c.Request.Context()); !res.OK() {
		s.fragmentError(c, res.Err)
		return
	}
	s.fragment(c, regions.display.String())
}

func (s *Server) handleMoodFragment(c *gin.Context) {
	var regions fragmentRegions
	cycle, err := s.newCycle("", &regions)
	if err != nil {
		s.fragmentError(c, err)
		return
	}
	if res := cycle.RenderMoodGauge(c.Request.Context()); !res.OK() {
		s.fragmentError(c, res.Err)
		return
	}
	s.fragment(c, `<div id="chart-div">`+regions.chart.String()+`</div>`+
		"\n"+`<p id="mood-feedback">`+regions.feedback.String()+`</p>`)
}

func (s *Server) handleDeleteFragment(c *gin.Context) {
	var regions fragmentRegions
	cycle, err := s.newCycle(c.PostForm("max-comments"), &regions)
	if err != nil {
		s.fragmentError(c, err)
		return
	}
	res := cycle.DeleteAll(c.Request.Context())
	if !res.OK() {
		s.fragmentError(c, res.Err)
		return
	}
	s.logger.Info("comments deleted", "by", s.admin.hashIP(c.ClientIP()))
	c.Header("HX-Trigger", "guestbook-cleared")
	s.fragment(c, regions.display.String())
}

func (s *Server) fragment(c *gin.Context, html string) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (s *Server) fragmentError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	msg := "Could not load comments right now."
	if errors.Is(err, guestbook.ErrInvalidSelector) {
		status = http.StatusBadRequest
		msg = "Pick a number of comments or all."
	}
	s.logger.Error("guestbook fragment", "path", c.Request.URL.Path, "error", err)
	c.HTML(status, "fragment-error.html", gin.H{"error": msg})
}
