package models

type User struct {
	ID        uint64 `gorm:"primarykey" json:"id"`
	Name      string `gorm:"type:varchar(255);not null" json:"name"`
	Email     string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Role      string `gorm:"type:varchar(100);not null" json:"role"`
	CompanyID uint64 `gorm:"not null;index" json:"company_id"`

	// Constraint only; never preloaded.
	Company *Company `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}
