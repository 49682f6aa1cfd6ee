package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"horas-api/internal/models"
)

// sqliteSchema mirrors the MySQL migrations in SQLite syntax.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS cargos (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    nome VARCHAR(100) NOT NULL
);
CREATE TABLE IF NOT EXISTS funcionarios (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    nome VARCHAR(100) NOT NULL,
    cargo_id INT,
    FOREIGN KEY (cargo_id) REFERENCES cargos(id)
);
CREATE TABLE IF NOT EXISTS usuarios (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    email VARCHAR(100) NOT NULL UNIQUE,
    senha VARCHAR(255) NOT NULL,
    funcionario_id INT,
    FOREIGN KEY (funcionario_id) REFERENCES funcionarios(id)
);
`

var dbSeq atomic.Int64

// OpenInMemoryDB opens a private in-memory SQLite database with foreign keys
// enforced and the application tables created. It is closed on test cleanup.
func OpenInMemoryDB(t *testing.T) *sqlx.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", dbSeq.Add(1))
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	// A single connection keeps PRAGMA changes made by tests in effect.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	for _, stmt := range strings.Split(sqliteSchema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("create test schema: %v", err)
		}
	}
	return db
}

// InsertCargo adds a role row directly and returns its id.
func InsertCargo(t *testing.T, db *sqlx.DB, nome string) int64 {
	t.Helper()
	res, err := db.Exec(`INSERT INTO cargos (nome) VALUES (?)`, nome)
	if err != nil {
		t.Fatalf("insert cargo: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("insert cargo id: %v", err)
	}
	return id
}

// SignToken returns an HS256 token for the given claims, expiring at exp.
func SignToken(t *testing.T, secret string, usuarioID int64, funcionarioID *int64, exp time.Time) string {
	t.Helper()
	claims := &models.Claims{
		UsuarioID:     usuarioID,
		FuncionarioID: funcionarioID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(exp.Add(-time.Hour)),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

// Int64 returns a pointer to v.
func Int64(v int64) *int64 { return &v }
