package model

import (
	"time"

	"github.com/lib/pq"
)

type PropertyModel struct {
	PropertyID          string         `gorm:"column:property_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"property_id"`
	PropertyTitle       string         `gorm:"column:property_title;type:varchar(160);not null" json:"property_title"`
	PropertySlug        string         `gorm:"column:property_slug;type:varchar(180);uniqueIndex;not null" json:"property_slug"`
	PropertyDescription string         `gorm:"column:property_description;type:text" json:"property_description"`
	PropertyPrice       int64          `gorm:"column:property_price;not null;default:0" json:"property_price"`
	PropertyLocation    string         `gorm:"column:property_location;type:varchar(255)" json:"property_location"`
	PropertyBedrooms    int            `gorm:"column:property_bedrooms;not null;default:0" json:"property_bedrooms"`
	PropertyBathrooms   int            `gorm:"column:property_bathrooms;not null;default:0" json:"property_bathrooms"`
	PropertyAreaM2      int            `gorm:"column:property_area_m2;not null;default:0" json:"property_area_m2"`
	PropertyImageURL    string         `gorm:"column:property_image_url;type:text" json:"property_image_url"`
	PropertyImageKey    string         `gorm:"column:property_image_key;type:text" json:"property_image_key"`
	PropertyThumbURL    string         `gorm:"column:property_thumb_url;type:text" json:"property_thumb_url"`
	PropertyThumbKey    string         `gorm:"column:property_thumb_key;type:text" json:"property_thumb_key"`
	PropertyGallery     pq.StringArray `gorm:"column:property_gallery;type:text[]" json:"property_gallery"`
	PropertyFeatured    bool           `gorm:"column:property_is_featured;not null;default:false" json:"property_is_featured"`
	PropertyPublished   bool           `gorm:"column:property_is_published;not null;default:true" json:"property_is_published"`
	PropertyCreatedAt   time.Time      `gorm:"column:property_created_at;autoCreateTime" json:"property_created_at"`
	PropertyUpdatedAt   time.Time      `gorm:"column:property_updated_at;autoUpdateTime" json:"property_updated_at"`
}

func (PropertyModel) TableName() string {
	return "properties"
}
