package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rownak648/storyline/internal/models"
	"github.com/rownak648/storyline/internal/repositories"
	"github.com/rownak648/storyline/internal/shortcode"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Short-code collision retries before the store error is surfaced.
const maxCodeAttempts = 3

// Bounded page size for the link history list.
const linkListLimit = 10

// LinkHandler handles the admin link CRUD: create a post with its public
// link, list recent links, delete a post (and its link) again.
type LinkHandler struct {
	postRepository repositories.PostRepository
	linkRepository repositories.LinkRepository
	siteURL        string
	log            zerolog.Logger
}

// NewLinkHandler creates a new LinkHandler
func NewLinkHandler(postRepo repositories.PostRepository, linkRepo repositories.LinkRepository, siteURL string, log zerolog.Logger) *LinkHandler {
	return &LinkHandler{
		postRepository: postRepo,
		linkRepository: linkRepo,
		siteURL:        siteURL,
		log:            log,
	}
}

// RegisterLinkRoutes registers link-related admin routes
func (h *LinkHandler) RegisterLinkRoutes(g *echo.Group) {
	g.POST("/links", h.CreateLink)
	g.GET("/links", h.ListLinks)
	g.DELETE("/links/:id", h.DeleteLink)
}

// CreateLink validates the form input, creates the post and then mints its
// public link. The two writes are sequential; if the link insert fails after
// the post insert succeeded, the orphaned post stays behind and is logged.
func (h *LinkHandler) CreateLink(c echo.Context) error {
	var req models.CreateLinkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post := &models.Post{
		Title:        strings.TrimSpace(req.Title),
		Description:  strings.TrimSpace(req.Description),
		EmbedCode:    strings.TrimSpace(req.EmbedCode),
		MediaURL:     req.MediaURL,
		MediaType:    req.MediaType,
		ThumbnailURL: req.ThumbnailURL,
		RedirectLink: strings.TrimSpace(req.RedirectLink),
		PopunderAd:   strings.TrimSpace(req.PopunderAd),
	}

	if err := h.postRepository.CreatePost(post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	displayTitle := post.Title
	if displayTitle == "" {
		displayTitle = post.Description
	}
	if displayTitle == "" {
		displayTitle = "Untitled"
	}

	var link *models.Link
	var err error
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		link = &models.Link{
			PostID: post.ID,
			LinkID: shortcode.New(),
			Title:  displayTitle,
		}
		err = h.linkRepository.CreateLink(link)
		if err == nil || !errors.Is(err, gorm.ErrDuplicatedKey) {
			break
		}
		h.log.Warn().Str("link_id", link.LinkID).Msg("short code collision, regenerating")
	}
	if err != nil {
		h.log.Error().Err(err).Str("post_id", post.ID.String()).Msg("link insert failed, post left orphaned")
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, h.linkResponse(link))
}

// ListLinks returns the most recently generated links, newest first.
func (h *LinkHandler) ListLinks(c echo.Context) error {
	links, err := h.linkRepository.ListLinks(linkListLimit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]models.LinkResponse, 0, len(links))
	for i := range links {
		resp = append(resp, h.linkResponse(&links[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// DeleteLink deletes the post owning the link; the link itself is removed by
// the store's cascade rule.
func (h *LinkHandler) DeleteLink(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid link ID format")
	}

	link, err := h.linkRepository.GetLinkByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Link not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.postRepository.DeletePost(link.PostID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *LinkHandler) linkResponse(link *models.Link) models.LinkResponse {
	return models.LinkResponse{
		ID:        link.ID,
		PostID:    link.PostID,
		LinkID:    link.LinkID,
		Title:     link.Title,
		URL:       h.siteURL + "/post/" + link.LinkID,
		CreatedAt: link.CreatedAt,
	}
}
