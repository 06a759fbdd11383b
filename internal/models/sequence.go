package models

// Sequence is a named counter row. The members sequence holds the last issued
// serial number.
type Sequence struct {
	Name  string `gorm:"primaryKey;type:varchar(50)"`
	Value int64  `gorm:"not null"`
}
