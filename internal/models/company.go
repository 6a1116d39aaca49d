package models

// Company is the top-level tenant. Teams and Users reference it by CompanyID.
type Company struct {
	ID               uint64 `gorm:"primarykey" json:"id"`
	Name             string `gorm:"type:varchar(255);not null" json:"name"`
	SubscriptionPlan string `gorm:"type:varchar(255);not null" json:"subscription_plan"`
}
