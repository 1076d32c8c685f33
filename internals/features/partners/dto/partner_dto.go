package dto

import (
	"time"

	"github.com/Candratama/four-best-website-sub000/internals/features/partners/model"
)

type PartnerDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Website   string    `json:"website"`
	LogoURL   string    `json:"logo_url"`
	LogoKey   string    `json:"logo_key"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
}

type CreatePartnerRequest struct {
	Name    string `form:"name" json:"name" validate:"required,min=2,max=120"`
	Website string `form:"website" json:"website" validate:"omitempty,url,max=255"`
	Order   int    `form:"order" json:"order"`
}

type UpdatePartnerRequest struct {
	Name    *string `form:"name" json:"name" validate:"omitempty,min=2,max=120"`
	Website *string `form:"website" json:"website" validate:"omitempty,url,max=255"`
	Order   *int    `form:"order" json:"order"`
}

func ToPartnerDTO(m model.PartnerModel) PartnerDTO {
	return PartnerDTO{
		ID:        m.PartnerID,
		Name:      m.PartnerName,
		Website:   m.PartnerWebsite,
		LogoURL:   m.PartnerLogoURL,
		LogoKey:   m.PartnerLogoKey,
		Order:     m.PartnerOrder,
		CreatedAt: m.PartnerCreatedAt,
	}
}
