package headerutil

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// Alert headers follow the fixed clockinApp naming scheme consumed by the
// frontend: success alerts carry a message key plus a parameter, failure
// alerts carry an error key plus the entity name.
const (
	alertHeader  = "X-clockinApp-alert"
	paramsHeader = "X-clockinApp-params"
	errorHeader  = "X-clockinApp-error"
)

func CreateAlert(c *gin.Context, message, param string) {
	c.Header(alertHeader, message)
	c.Header(paramsHeader, param)
}

func CreateEntityCreationAlert(c *gin.Context, entityName, param string) {
	CreateAlert(c, fmt.Sprintf("clockinApp.%s.created", entityName), param)
}

func CreateEntityUpdateAlert(c *gin.Context, entityName, param string) {
	CreateAlert(c, fmt.Sprintf("clockinApp.%s.updated", entityName), param)
}

func CreateEntityDeletionAlert(c *gin.Context, entityName, param string) {
	CreateAlert(c, fmt.Sprintf("clockinApp.%s.deleted", entityName), param)
}

func CreateFailureAlert(c *gin.Context, entityName, errorKey string) {
	c.Header(errorHeader, "error."+errorKey)
	c.Header(paramsHeader, entityName)
}

// GeneratePaginationHeaders writes X-Total-Count plus a Link header with
// first/prev/next/last rels for the given zero-based page.
func GeneratePaginationHeaders(c *gin.Context, baseURL string, page, size int, total int64) {
	writePaginationHeaders(c, baseURL, "", page, size, total)
}

// GenerateSearchPaginationHeaders is the search variant: every Link target
// carries the original query string.
func GenerateSearchPaginationHeaders(c *gin.Context, baseURL, query string, page, size int, total int64) {
	writePaginationHeaders(c, baseURL, query, page, size, total)
}

func writePaginationHeaders(c *gin.Context, baseURL, query string, page, size int, total int64) {
	c.Header("X-Total-Count", strconv.FormatInt(total, 10))

	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}
	lastPage := totalPages - 1
	if lastPage < 0 {
		lastPage = 0
	}

	links := make([]string, 0, 4)
	if page < lastPage {
		links = append(links, pageLink(baseURL, query, page+1, size, "next"))
	}
	if page > 0 {
		links = append(links, pageLink(baseURL, query, page-1, size, "prev"))
	}
	links = append(links,
		pageLink(baseURL, query, lastPage, size, "last"),
		pageLink(baseURL, query, 0, size, "first"),
	)

	c.Header("Link", strings.Join(links, ","))
}

func pageLink(baseURL, query string, page, size int, rel string) string {
	v := url.Values{}
	if query != "" {
		v.Set("query", query)
	}
	v.Set("page", strconv.Itoa(page))
	v.Set("size", strconv.Itoa(size))
	return fmt.Sprintf("<%s?%s>; rel=\"%s\"", baseURL, v.Encode(), rel)
}
