package model

type User struct {
	UsersID   uint64 `gorm:"column:users_id;primaryKey;autoIncrement"`
	Nickname  string `gorm:"column:nickname;type:text;not null"`
	CreatedAt string `gorm:"column:created_at;type:text;not null"`
}

func (User) TableName() string {
	return "users"
}
