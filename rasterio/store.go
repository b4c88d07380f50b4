// SPDX-License-Identifier: MIT

package rasterio

import (
	"bytes"
	"compress/gzip"
	"context"
	"database/sql"
	_ "embed"
	"encoding/gob"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/rasterdist/raster"
	_ "modernc.org/sqlite"
)

// schema.sql creates the grids table. Statements are idempotent.
//
//go:embed schema.sql
var schemaSQL string

// Store archives grids in a SQLite database.
type Store struct {
	db *sql.DB
}

// Record describes one archived grid without its cells.
type Record struct {
	ID        string
	Name      string
	Rows      int
	Cols      int
	Metadata  []string
	CreatedAt time.Time
}

// snapshot is the gob payload of the cells column. The header travels inside
// the blob so NaN sentinels and infinite values are preserved bit for bit.
type snapshot struct {
	Header raster.Header
	Values []float64
}

// OpenStore opens (or creates) the database at path and applies the schema.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()

		return nil, fmt.Errorf("rasterio: apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save archives g under name and returns the generated grid id.
func (s *Store) Save(ctx context.Context, name string, g *raster.Grid) (string, error) {
	blob, err := encodeSnapshot(snapshot{Header: g.Header(), Values: g.Values()})
	if err != nil {
		return "", fmt.Errorf("rasterio: encode grid: %w", err)
	}
	meta := g.Metadata
	if meta == nil {
		meta = []string{}
	}
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("rasterio: encode metadata: %w", err)
	}

	id := uuid.New().String()
	query := `
		INSERT INTO grids (grid_id, name, rows, cols, metadata, cells, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	if _, err := s.db.ExecContext(ctx, query, id, name, g.Rows(), g.Cols(), string(metaJSON), blob, time.Now().UnixNano()); err != nil {
		return "", fmt.Errorf("rasterio: insert grid: %w", err)
	}

	return id, nil
}

// Load restores the grid archived under id.
// Returns ErrNotFound when no row matches.
func (s *Store) Load(ctx context.Context, id string) (*raster.Grid, error) {
	var (
		blob     []byte
		metaJSON string
	)
	row := s.db.QueryRowContext(ctx, `SELECT cells, metadata FROM grids WHERE grid_id = ?`, id)
	if err := row.Scan(&blob, &metaJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", id, ErrNotFound)
		}

		return nil, fmt.Errorf("rasterio: load grid %s: %w", id, err)
	}

	snap, err := decodeSnapshot(blob)
	if err != nil {
		return nil, fmt.Errorf("rasterio: decode grid %s: %w", id, err)
	}
	g, err := raster.NewGrid(snap.Header)
	if err != nil {
		return nil, err
	}
	if err := g.SetValues(snap.Values); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(metaJSON), &g.Metadata); err != nil {
		return nil, fmt.Errorf("rasterio: decode metadata %s: %w", id, err)
	}
	if len(g.Metadata) == 0 {
		g.Metadata = nil
	}

	return g, nil
}

// List returns all archived grids, newest first.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT grid_id, name, rows, cols, metadata, created_at
		FROM grids
		ORDER BY created_at DESC, grid_id
	`)
	if err != nil {
		return nil, fmt.Errorf("rasterio: list grids: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var (
			rec      Record
			metaJSON string
			created  int64
		)
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Rows, &rec.Cols, &metaJSON, &created); err != nil {
			return nil, fmt.Errorf("rasterio: scan grid row: %w", err)
		}
		if err := json.Unmarshal([]byte(metaJSON), &rec.Metadata); err != nil {
			return nil, fmt.Errorf("rasterio: decode metadata %s: %w", rec.ID, err)
		}
		rec.CreatedAt = time.Unix(0, created)
		out = append(out, rec)
	}

	return out, rows.Err()
}

// encodeSnapshot compresses a snapshot using gob encoding and gzip compression.
func encodeSnapshot(s snapshot) ([]byte, error) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if err := gob.NewEncoder(gz).Encode(s); err != nil {
		gz.Close()

		return nil, err
	}
	if err := gz.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// decodeSnapshot reverses encodeSnapshot.
func decodeSnapshot(blob []byte) (snapshot, error) {
	var s snapshot
	if len(blob) == 0 {
		return s, errors.New("empty grid blob")
	}
	gz, err := gzip.NewReader(bytes.NewReader(blob))
	if err != nil {
		return s, fmt.Errorf("gzip reader: %w", err)
	}
	defer gz.Close()

	if err := gob.NewDecoder(gz).Decode(&s); err != nil {
		return s, err
	}

	return s, nil
}
