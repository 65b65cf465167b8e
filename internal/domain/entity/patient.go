package entity

import (
	"time"
)

// Patient represents a patient record in the clinic.
//
// Email is optional; uniqueness is only enforced for non-empty values
// (partial index), so any number of patients may have no email.
type Patient struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Phone     string    `gorm:"type:varchar(20);not null;uniqueIndex" json:"phone"`
	Email     string    `gorm:"type:varchar(100);index:idx_patients_email,unique,where:email <> ''" json:"email,omitempty"`
	Address   string    `gorm:"type:text" json:"address,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Patient) TableName() string {
	return "patients"
}
