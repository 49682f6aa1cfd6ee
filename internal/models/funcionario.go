package models

type Funcionario struct {
	ID      int64  `db:"id" json:"id"`
	Nome    string `db:"nome" json:"nome"`
	CargoID *int64 `db:"cargo_id" json:"cargo_id"`
}

// FuncionarioView is the read shape: the role is resolved to its name and is
// nil when the employee has no role or the role row is gone.
type FuncionarioView struct {
	ID    int64   `db:"id" json:"id"`
	Nome  string  `db:"nome" json:"nome"`
	Cargo *string `db:"cargo" json:"cargo"`
}
