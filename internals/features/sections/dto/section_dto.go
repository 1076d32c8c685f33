package dto

import (
	"time"

	"gorm.io/datatypes"

	"github.com/Candratama/four-best-website-sub000/internals/features/sections/model"
)

type SectionDTO struct {
	ID        string         `json:"id"`
	Page      string         `json:"page"`
	Key       string         `json:"key"`
	Content   datatypes.JSON `json:"content"`
	Order     int            `json:"order"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type UpsertSectionRequest struct {
	Page    string         `json:"page" validate:"required,min=1,max=80"`
	Key     string         `json:"key" validate:"required,min=1,max=80"`
	Content datatypes.JSON `json:"content" validate:"required"`
	Order   int            `json:"order"`
}

func ToSectionDTO(m model.SectionModel) SectionDTO {
	return SectionDTO{
		ID:        m.SectionID,
		Page:      m.SectionPage,
		Key:       m.SectionKey,
		Content:   m.SectionContent,
		Order:     m.SectionOrder,
		UpdatedAt: m.SectionUpdatedAt,
	}
}
