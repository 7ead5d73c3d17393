package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rownak648/storyline/internal/render"
	"github.com/rownak648/storyline/internal/repositories"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// PageHandler serves the public post pages.
type PageHandler struct {
	linkRepository repositories.LinkRepository
	siteURL        string
	log            zerolog.Logger
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(linkRepo repositories.LinkRepository, siteURL string, log zerolog.Logger) *PageHandler {
	return &PageHandler{
		linkRepository: linkRepo,
		siteURL:        siteURL,
		log:            log,
	}
}

// RegisterPageRoutes registers the public routes
func (h *PageHandler) RegisterPageRoutes(e *echo.Echo) {
	e.GET("/post/:code", h.GetPostPage)
}

// GetPostPage resolves a link by its short code and renders the post page.
// An unknown code gets the dedicated not-found page, not an error toast.
func (h *PageHandler) GetPostPage(c echo.Context) error {
	code := c.Param("code")

	link, err := h.linkRepository.GetLinkByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Render(http.StatusNotFound, "notfound.html", nil)
		}
		h.log.Error().Err(err).Str("code", code).Msg("link lookup failed")
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if link.Post.ID == uuid.Nil {
		// Link without a post; the cascade rule should make this impossible.
		return c.Render(http.StatusNotFound, "notfound.html", nil)
	}

	page := render.BuildPage(&link.Post, link.LinkID, h.siteURL)
	return c.Render(http.StatusOK, "post.html", page)
}
