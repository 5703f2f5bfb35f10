package clockin

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type ClockinRequest struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	DateTime   string `json:"date_time" binding:"required"`
}

type ClockinResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	DateTime     string `json:"date_time"`
	Date         string `json:"date"`
}

// PageParams is the caller-supplied page/size/sort specification shared by
// the paged list and search endpoints. Pages are zero-based.
type PageParams struct {
	Page int
	Size int
	Sort string
}

var sortableColumns = map[string]string{
	"id":          "id",
	"date_time":   "date_time",
	"date":        "date",
	"employee_id": "employee_id",
}

func ParsePageParams(c *gin.Context) PageParams {
	p := PageParams{Page: 0, Size: 20, Sort: "id,asc"}

	if v, err := strconv.Atoi(c.DefaultQuery("page", "0")); err == nil && v >= 0 {
		p.Page = v
	}
	if v, err := strconv.Atoi(c.DefaultQuery("size", "20")); err == nil && v > 0 {
		p.Size = v
	}
	if p.Size > 100 {
		p.Size = 100
	}
	if sort := c.Query("sort"); sort != "" {
		p.Sort = sort
	}
	return p
}

// OrderClause renders the sort spec as a safe ORDER BY fragment; unknown
// columns fall back to id so the clause can never carry raw input.
func (p PageParams) OrderClause() string {
	field, dir, _ := strings.Cut(p.Sort, ",")
	column, ok := sortableColumns[strings.TrimSpace(field)]
	if !ok {
		column = "id"
	}
	if strings.EqualFold(strings.TrimSpace(dir), "desc") {
		return column + " DESC"
	}
	return column + " ASC"
}

func (p PageParams) Offset() int {
	return p.Page * p.Size
}
