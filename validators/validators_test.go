package validators

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rownak648/storyline/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertBadRequest(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %T", err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestCreateLinkRequestRules(t *testing.T) {
	v := NewValidator()

	t.Run("title plus redirect is enough", func(t *testing.T) {
		assert.NoError(t, v.Validate(&models.CreateLinkRequest{
			Title:        "Hello",
			RedirectLink: "https://sponsor.example/offer",
		}))
	})

	t.Run("description plus popunder is enough", func(t *testing.T) {
		assert.NoError(t, v.Validate(&models.CreateLinkRequest{
			Description: "Something to watch",
			PopunderAd:  "<script src='https://ads.example/p.js'></script>",
		}))
	})

	t.Run("no title and no description is rejected", func(t *testing.T) {
		assertBadRequest(t, v.Validate(&models.CreateLinkRequest{
			RedirectLink: "https://sponsor.example/offer",
		}))
	})

	t.Run("whitespace-only title does not count", func(t *testing.T) {
		assertBadRequest(t, v.Validate(&models.CreateLinkRequest{
			Title:        "   ",
			RedirectLink: "https://sponsor.example/offer",
		}))
	})

	t.Run("no redirect and no popunder is rejected", func(t *testing.T) {
		assertBadRequest(t, v.Validate(&models.CreateLinkRequest{
			Title: "Hello",
		}))
	})

	t.Run("bad media type is rejected", func(t *testing.T) {
		assertBadRequest(t, v.Validate(&models.CreateLinkRequest{
			Title:        "Hello",
			RedirectLink: "https://sponsor.example/offer",
			MediaURL:     "https://cdn.example.com/x.gif",
			MediaType:    "gif",
		}))
	})

	t.Run("bad redirect URL is rejected", func(t *testing.T) {
		assertBadRequest(t, v.Validate(&models.CreateLinkRequest{
			Title:        "Hello",
			RedirectLink: "not-a-url",
		}))
	})
}
