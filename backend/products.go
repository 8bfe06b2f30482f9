package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/DipakSrm/style-home-direct/models"
)

// ProductQuery carries the catalog search filters understood by
// GET /products/search.
type ProductQuery struct {
	Search      string
	Category    string
	Subcategory string
	MinPrice    float64
	MaxPrice    float64
	Sort        string
	Page        int
	Limit       int
	IsFeatured  *bool
	IsTrending  *bool
}

func (q ProductQuery) values() url.Values {
	v := url.Values{}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.Subcategory != "" {
		v.Set("subcategory", q.Subcategory)
	}
	if q.MinPrice > 0 {
		v.Set("minPrice", strconv.FormatFloat(q.MinPrice, 'f', -1, 64))
	}
	if q.MaxPrice > 0 {
		v.Set("maxPrice", strconv.FormatFloat(q.MaxPrice, 'f', -1, 64))
	}
	if q.Sort != "" {
		v.Set("sort", q.Sort)
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.IsFeatured != nil {
		v.Set("isFeatured", strconv.FormatBool(*q.IsFeatured))
	}
	if q.IsTrending != nil {
		v.Set("isTrending", strconv.FormatBool(*q.IsTrending))
	}
	return v
}

type SearchResult struct {
	Products []models.Product `json:"products"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	Pages    int              `json:"pages"`
}

func (c *Client) SearchProducts(ctx context.Context, q ProductQuery) (*SearchResult, error) {
	path := "/products/search"
	if encoded := q.values().Encode(); encoded != "" {
		path += "?" + encoded
	}
	var result SearchResult
	if err := c.do(ctx, http.MethodGet, path, "", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Product(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodGet, "/products/"+id, "", nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.do(ctx, http.MethodGet, "/categories", "", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
