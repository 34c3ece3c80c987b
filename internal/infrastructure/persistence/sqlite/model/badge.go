package model

// Badge is the per-(user, code) progress row. The composite unique index is
// the one-progress-per-pair invariant.
type Badge struct {
	ID           uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	UsersID      uint64 `gorm:"column:users_id;not null;uniqueIndex:idx_badge_user_code"`
	Code         string `gorm:"column:code;type:text;not null;uniqueIndex:idx_badge_user_code"`
	Title        string `gorm:"column:title;type:text;not null"`
	Description  string `gorm:"column:description;type:text;not null"`
	Status       string `gorm:"column:status;type:text;not null"`
	CurrentValue int    `gorm:"column:current_value;not null;default:0"`
	GoalValue    int    `gorm:"column:goal_value;not null"`

	LastProgressDate *string `gorm:"column:last_progress_date;type:text"`
	WeekStart        *string `gorm:"column:week_start;type:text"`
	LastDistinctKey  string  `gorm:"column:last_distinct_key;type:text;not null;default:''"`

	AchievedAt *string `gorm:"column:achieved_at;type:text"`
	IsNew      bool    `gorm:"column:is_new;not null;default:0"`
}

func (Badge) TableName() string {
	return "badge"
}
