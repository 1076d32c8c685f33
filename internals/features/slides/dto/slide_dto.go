package dto

import (
	"time"

	"github.com/Candratama/four-best-website-sub000/internals/features/slides/model"
)

type SlideDTO struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle"`
	ImageURL  string    `json:"image_url"`
	CTALabel  string    `json:"cta_label"`
	CTALink   string    `json:"cta_link"`
	Order     int       `json:"order"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateSlideRequest struct {
	Title    string `form:"title" json:"title" validate:"required,min=2,max=160"`
	Subtitle string `form:"subtitle" json:"subtitle" validate:"max=255"`
	CTALabel string `form:"cta_label" json:"cta_label" validate:"max=80"`
	CTALink  string `form:"cta_link" json:"cta_link" validate:"max=255"`
	Order    int    `form:"order" json:"order"`
	Active   *bool  `form:"active" json:"active"`
}

type UpdateSlideRequest struct {
	Title    *string `form:"title" json:"title" validate:"omitempty,min=2,max=160"`
	Subtitle *string `form:"subtitle" json:"subtitle" validate:"omitempty,max=255"`
	CTALabel *string `form:"cta_label" json:"cta_label" validate:"omitempty,max=80"`
	CTALink  *string `form:"cta_link" json:"cta_link" validate:"omitempty,max=255"`
	Order    *int    `form:"order" json:"order"`
	Active   *bool   `form:"active" json:"active"`
}

func ToSlideDTO(m model.SlideModel) SlideDTO {
	return SlideDTO{
		ID:        m.SlideID,
		Title:     m.SlideTitle,
		Subtitle:  m.SlideSubtitle,
		ImageURL:  m.SlideImageURL,
		CTALabel:  m.SlideCTALabel,
		CTALink:   m.SlideCTALink,
		Order:     m.SlideOrder,
		Active:    m.SlideActive,
		CreatedAt: m.SlideCreatedAt,
	}
}
