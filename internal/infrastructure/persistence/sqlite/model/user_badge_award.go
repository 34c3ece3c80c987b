package model

// UserBadgeAward is append-only. The composite unique index enforces the
// at-most-once award invariant even under concurrent delivery.
type UserBadgeAward struct {
	ID             uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	UsersID        uint64 `gorm:"column:users_id;not null;uniqueIndex:idx_award_user_code"`
	Code           string `gorm:"column:code;type:text;not null;uniqueIndex:idx_award_user_code"`
	AchievedAt     string `gorm:"column:achieved_at;type:text;not null"`
	AchievedReason string `gorm:"column:achieved_reason;type:text;not null;default:''"`
}

func (UserBadgeAward) TableName() string {
	return "user_badge_award"
}
