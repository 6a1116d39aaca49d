package models

type Team struct {
	ID        uint64 `gorm:"primarykey" json:"id"`
	Name      string `gorm:"type:varchar(255);not null" json:"name"`
	CompanyID uint64 `gorm:"not null;index" json:"company_id"`

	// Constraint only; never preloaded.
	Company *Company `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}
