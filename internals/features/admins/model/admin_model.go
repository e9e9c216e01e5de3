package model

type AdminModel struct {
	ID       int    `gorm:"column:id;primaryKey" json:"id"`
	Username string `gorm:"column:username" json:"username"`
	Password string `gorm:"column:password" json:"-"`
}

func (AdminModel) TableName() string {
	return "admins"
}
