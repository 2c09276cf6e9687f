package devserver

import (
	"context"
	"database/sql"
	"errors"

	"github.com/avelasco/productos-client/internal/model"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Store backs the stand-in server with a sqlite table shaped like the remote
// collection. Use ":memory:" for throwaway instances in tests.
type Store struct {
	DB *sqlx.DB
}

func NewStore(path string) (*Store, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, err
	}
	s := &Store{DB: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
        CREATE TABLE IF NOT EXISTS productos (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            nombre TEXT NOT NULL,
            precio REAL NOT NULL,
            imagen_url TEXT
        )
    `
	_, err := s.DB.Exec(schema)
	return err
}

func (s *Store) Close() error {
	return s.DB.Close()
}

func (s *Store) List(ctx context.Context, nameFilter string) ([]model.Product, error) {
	products := []model.Product{}
	if nameFilter != "" {
		query := `SELECT * FROM productos WHERE nombre LIKE ? ORDER BY id`
		if err := s.DB.SelectContext(ctx, &products, query, "%"+nameFilter+"%"); err != nil {
			return nil, err
		}
		return products, nil
	}
	query := `SELECT * FROM productos ORDER BY id`
	if err := s.DB.SelectContext(ctx, &products, query); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Store) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	var p model.Product
	query := `SELECT * FROM productos WHERE id = ? LIMIT 1`
	err := s.DB.GetContext(ctx, &p, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *Store) Insert(ctx context.Context, p *model.Product) (int64, error) {
	query := `INSERT INTO productos (nombre, precio, imagen_url) VALUES (:nombre, :precio, :imagen_url)`
	res, err := s.DB.NamedExecContext(ctx, query, p)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update replaces the full record. Returns false when the id is unknown.
func (s *Store) Update(ctx context.Context, p *model.Product) (bool, error) {
	query := `UPDATE productos SET nombre = :nombre, precio = :precio, imagen_url = :imagen_url WHERE id = :id`
	res, err := s.DB.NamedExecContext(ctx, query, p)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Store) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM productos WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
