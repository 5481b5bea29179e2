package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/khalsafoundry/pothi/internal/search"
)

const (
	defaultSearchLimit = 50
	maxSearchLimit     = 200
)

// SearchController serves the two line search entry points: the phonetic
// first-letter index and the full line text.
type SearchController struct {
	store SearchStore
}

func NewSearchController(store SearchStore) *SearchController {
	return &SearchController{store: store}
}

// SearchText handles GET /api/search/text
func (controller *SearchController) SearchText(c *gin.Context) {
	controller.search(c, search.ByText)
}

// SearchFirstLetters handles GET /api/search/first-letters
func (controller *SearchController) SearchFirstLetters(c *gin.Context) {
	controller.search(c, search.ByFirstLetters)
}

func (controller *SearchController) search(c *gin.Context, build func(term string, rank bool) search.Directive) {
	query := c.Query("q")
	if query == "" {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": "q query parameter is required"})
		return
	}

	rank, err := strconv.ParseBool(c.DefaultQuery("rank", "true"))
	if err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": "rank must be true or false"})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultSearchLimit)))
	if err != nil || limit < 1 {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
		return
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	lines, err := controller.store.SearchLines(c.Request.Context(), build(query, rank), limit)
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{
		"query":   query,
		"count":   len(lines),
		"results": lines,
	})
}
