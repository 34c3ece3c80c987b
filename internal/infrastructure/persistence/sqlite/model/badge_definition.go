package model

type BadgeDefinition struct {
	ID            uint64  `gorm:"column:id;primaryKey;autoIncrement"`
	Code          string  `gorm:"column:code;type:text;not null;uniqueIndex"`
	Title         string  `gorm:"column:title;type:text;not null"`
	Description   string  `gorm:"column:description;type:text;not null"`
	Category      string  `gorm:"column:category;type:text;not null"`
	Enabled       bool    `gorm:"column:enabled;not null;default:1"`
	SortOrder     int     `gorm:"column:sort_order;not null;default:0"`
	EvaluatorType string  `gorm:"column:evaluator_type;type:text;not null"`
	EventType     string  `gorm:"column:event_type;type:text;not null"`
	GoalValue     int     `gorm:"column:goal_value;not null"`
	ParamsJSON    string  `gorm:"column:params_json;type:text;not null;default:''"`
	StartAt       *string `gorm:"column:start_at;type:text"`
	EndAt         *string `gorm:"column:end_at;type:text"`
}

func (BadgeDefinition) TableName() string {
	return "badge_definition"
}
