package models

import "time"

// Product mirrors the backend catalog document. The gateway never mutates
// products; stock and price here are a snapshot from the last fetch.
type Product struct {
	ID            string       `json:"_id"`
	Name          string       `json:"name"`
	Slug          string       `json:"slug"`
	Description   string       `json:"description"`
	Features      []string     `json:"features,omitempty"`
	Dimensions    Dimensions   `json:"dimensions"`
	Materials     []string     `json:"materials,omitempty"`
	CategoryID    Category     `json:"categoryId"`
	SubcategoryID *Subcategory `json:"subcategoryId,omitempty"`
	Price         float64      `json:"price"`
	PreviousPrice float64      `json:"previousPrice,omitempty"`
	Stock         int          `json:"stock"`
	Images        []string     `json:"images,omitempty"`
	Tags          []string     `json:"tags,omitempty"`
	IsFeatured    bool         `json:"isFeatured"`
	IsTrending    bool         `json:"isTrending"`
	RatingAverage float64      `json:"ratingAverage"`
	RatingCount   int          `json:"ratingCount"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type Category struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	RefImage    string `json:"ref_image"`
	Count       int    `json:"count"`
}

type Subcategory struct {
	ID         string `json:"_id"`
	CategoryID string `json:"categoryId"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
}
