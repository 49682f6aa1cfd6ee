package models

type Cargo struct {
	ID   int64  `db:"id" json:"id"`
	Nome string `db:"nome" json:"nome"`
}
