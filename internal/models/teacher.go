package models

// Teacher represents an instructor record.
type Teacher struct {
	ID         int64  `db:"id" json:"id"`
	Name       string `db:"name" json:"name"`
	PictureURL string `db:"picture_url" json:"picture_url"`
	Profile    string `db:"profile" json:"profile"`
}
