package models

import "time"

type Todo struct {
	ID        int        `gorm:"primaryKey" json:"id"`
	Title     string     `gorm:"type:varchar(255);not null" json:"title"`
	Completed bool       `gorm:"not null;default:false" json:"completed"`
	CreatedAt time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	DueDate   *time.Time `gorm:"type:date" json:"due_date"`
}

func (Todo) TableName() string {
	return "todos"
}

// CreateTodoRequest is the POST /api/todos payload. DueDate, when
// present, must be a YYYY-MM-DD date string.
type CreateTodoRequest struct {
	Title   string `json:"title"`
	DueDate string `json:"due_date,omitempty"`
}

// ColumnInfo mirrors one information_schema.columns row for the
// database structure endpoint.
type ColumnInfo struct {
	ColumnName    string  `gorm:"column:column_name" json:"column_name"`
	DataType      string  `gorm:"column:data_type" json:"data_type"`
	IsNullable    string  `gorm:"column:is_nullable" json:"is_nullable"`
	ColumnDefault *string `gorm:"column:column_default" json:"column_default"`
}
