package models

type Person struct {
	UUIDMixin
	TimeStampedMixin
	FullName string `gorm:"not null;size:255;index" json:"full_name" example:"Stanley Kubrick"`
}

func (Person) TableName() string {
	return "person"
}

// PersonOrder is the default listing order.
const PersonOrder = "full_name ASC"
