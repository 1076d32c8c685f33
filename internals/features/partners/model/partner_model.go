package model

import "time"

type PartnerModel struct {
	PartnerID        string    `gorm:"column:partner_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"partner_id"`
	PartnerName      string    `gorm:"column:partner_name;type:varchar(120);not null" json:"partner_name"`
	PartnerWebsite   string    `gorm:"column:partner_website;type:varchar(255)" json:"partner_website"`
	PartnerLogoURL   string    `gorm:"column:partner_logo_url;type:text" json:"partner_logo_url"`
	PartnerLogoKey   string    `gorm:"column:partner_logo_key;type:text" json:"partner_logo_key"`
	PartnerOrder     int       `gorm:"column:partner_order;not null;default:0" json:"partner_order"`
	PartnerCreatedAt time.Time `gorm:"column:partner_created_at;autoCreateTime" json:"partner_created_at"`
	PartnerUpdatedAt time.Time `gorm:"column:partner_updated_at;autoUpdateTime" json:"partner_updated_at"`
}

func (PartnerModel) TableName() string {
	return "partners"
}
