package model

import "time"

type SlideModel struct {
	SlideID        string    `gorm:"column:slide_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"slide_id"`
	SlideTitle     string    `gorm:"column:slide_title;type:varchar(160);not null" json:"slide_title"`
	SlideSubtitle  string    `gorm:"column:slide_subtitle;type:varchar(255)" json:"slide_subtitle"`
	SlideImageURL  string    `gorm:"column:slide_image_url;type:text" json:"slide_image_url"`
	SlideImageKey  string    `gorm:"column:slide_image_key;type:text" json:"slide_image_key"`
	SlideCTALabel  string    `gorm:"column:slide_cta_label;type:varchar(80)" json:"slide_cta_label"`
	SlideCTALink   string    `gorm:"column:slide_cta_link;type:varchar(255)" json:"slide_cta_link"`
	SlideOrder     int       `gorm:"column:slide_order;not null;default:0" json:"slide_order"`
	SlideActive    bool      `gorm:"column:slide_is_active;not null;default:true" json:"slide_is_active"`
	SlideCreatedAt time.Time `gorm:"column:slide_created_at;autoCreateTime" json:"slide_created_at"`
	SlideUpdatedAt time.Time `gorm:"column:slide_updated_at;autoUpdateTime" json:"slide_updated_at"`
}

func (SlideModel) TableName() string {
	return "hero_slides"
}
