package model

import "time"

type AdminUserModel struct {
	UserID        string    `gorm:"column:user_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"user_id"`
	UserName      string    `gorm:"column:user_name;type:varchar(100);not null" json:"user_name"`
	UserEmail     string    `gorm:"column:user_email;type:varchar(255);not null;uniqueIndex" json:"user_email"`
	UserPassword  string    `gorm:"column:user_password;type:text" json:"-"`
	UserGoogleID  *string   `gorm:"column:user_google_id;type:varchar(64);uniqueIndex" json:"-"`
	UserIsActive  bool      `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`
	UserCreatedAt time.Time `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
}

func (AdminUserModel) TableName() string {
	return "admin_users"
}
