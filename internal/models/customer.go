package models

// Customer is a person placing orders. The phone number is used as lookup key.
type Customer struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:60;not null" json:"name"`
	Address     string `gorm:"size:100;not null" json:"address"`
	Email       string `gorm:"size:50;not null" json:"email"`
	PhoneNumber string `gorm:"size:20;not null;index" json:"phone_number"`
}

func (Customer) TableName() string {
	return "customers"
}
