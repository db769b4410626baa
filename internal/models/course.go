package models

import "time"

// Course represents a course offered by a teacher. Optional attributes are
// nullable in the store and stay nil until a client sets them.
type Course struct {
	ID          int64     `db:"id" json:"id"`
	TeacherID   int64     `db:"teacher_id" json:"teacher_id"`
	Name        string    `db:"name" json:"name"`
	Time        time.Time `db:"time" json:"time"`
	Description *string   `db:"description" json:"description"`
	Format      *string   `db:"format" json:"format"`
	Structure   *string   `db:"structure" json:"structure"`
	Duration    *string   `db:"duration" json:"duration"`
	Price       *int      `db:"price" json:"price"`
	Language    *string   `db:"language" json:"language"`
	Level       *string   `db:"level" json:"level"`
}
