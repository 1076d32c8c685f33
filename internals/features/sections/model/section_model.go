package model

import (
	"time"

	"gorm.io/datatypes"
)

// Konten fleksibel per halaman, satu baris per kombinasi page+key.
type SectionModel struct {
	SectionID        string         `gorm:"column:section_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"section_id"`
	SectionPage      string         `gorm:"column:section_page;type:varchar(80);not null;uniqueIndex:idx_sections_page_key" json:"section_page"`
	SectionKey       string         `gorm:"column:section_key;type:varchar(80);not null;uniqueIndex:idx_sections_page_key" json:"section_key"`
	SectionContent   datatypes.JSON `gorm:"column:section_content;type:jsonb" json:"section_content"`
	SectionOrder     int            `gorm:"column:section_order;not null;default:0" json:"section_order"`
	SectionCreatedAt time.Time      `gorm:"column:section_created_at;autoCreateTime" json:"section_created_at"`
	SectionUpdatedAt time.Time      `gorm:"column:section_updated_at;autoUpdateTime" json:"section_updated_at"`
}

func (SectionModel) TableName() string {
	return "page_sections"
}
