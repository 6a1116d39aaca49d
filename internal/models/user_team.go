package models

// Membership flag values for UserTeam.IsActive.
const (
	MembershipInactive int16 = 0
	MembershipActive   int16 = 1
)

// UserTeam is the junction row between User and Team.
type UserTeam struct {
	ID       uint64 `gorm:"primarykey" json:"id"`
	UserID   uint64 `gorm:"not null;index" json:"user_id"`
	TeamID   uint64 `gorm:"not null;index" json:"team_id"`
	IsActive int16  `gorm:"type:smallint;not null;default:1" json:"is_active"`

	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Team *Team `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}
