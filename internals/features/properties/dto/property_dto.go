package dto

import (
	"time"

	"github.com/Candratama/four-best-website-sub000/internals/features/properties/model"
)

type PropertyDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	Location    string    `json:"location"`
	Bedrooms    int       `json:"bedrooms"`
	Bathrooms   int       `json:"bathrooms"`
	AreaM2      int       `json:"area_m2"`
	ImageURL    string    `json:"image_url"`
	ThumbURL    string    `json:"thumb_url"`
	Gallery     []string  `json:"gallery"`
	Featured    bool      `json:"featured"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreatePropertyRequest struct {
	Title       string `form:"title" json:"title" validate:"required,min=3,max=160"`
	Description string `form:"description" json:"description"`
	Price       int64  `form:"price" json:"price" validate:"gte=0"`
	Location    string `form:"location" json:"location" validate:"max=255"`
	Bedrooms    int    `form:"bedrooms" json:"bedrooms" validate:"gte=0"`
	Bathrooms   int    `form:"bathrooms" json:"bathrooms" validate:"gte=0"`
	AreaM2      int    `form:"area_m2" json:"area_m2" validate:"gte=0"`
	Featured    bool   `form:"featured" json:"featured"`
	Published   *bool  `form:"published" json:"published"`
}

type UpdatePropertyRequest struct {
	Title       *string `form:"title" json:"title" validate:"omitempty,min=3,max=160"`
	Description *string `form:"description" json:"description"`
	Price       *int64  `form:"price" json:"price" validate:"omitempty,gte=0"`
	Location    *string `form:"location" json:"location" validate:"omitempty,max=255"`
	Bedrooms    *int    `form:"bedrooms" json:"bedrooms" validate:"omitempty,gte=0"`
	Bathrooms   *int    `form:"bathrooms" json:"bathrooms" validate:"omitempty,gte=0"`
	AreaM2      *int    `form:"area_m2" json:"area_m2" validate:"omitempty,gte=0"`
	Featured    *bool   `form:"featured" json:"featured"`
	Published   *bool   `form:"published" json:"published"`
}

func ToPropertyDTO(m model.PropertyModel) PropertyDTO {
	return PropertyDTO{
		ID:          m.PropertyID,
		Title:       m.PropertyTitle,
		Slug:        m.PropertySlug,
		Description: m.PropertyDescription,
		Price:       m.PropertyPrice,
		Location:    m.PropertyLocation,
		Bedrooms:    m.PropertyBedrooms,
		Bathrooms:   m.PropertyBathrooms,
		AreaM2:      m.PropertyAreaM2,
		ImageURL:    m.PropertyImageURL,
		ThumbURL:    m.PropertyThumbURL,
		Gallery:     m.PropertyGallery,
		Featured:    m.PropertyFeatured,
		Published:   m.PropertyPublished,
		CreatedAt:   m.PropertyCreatedAt,
	}
}
