package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/rocalc/internal/model"
)

const itemColumns = `id, name_kr, slots, parsed_data, updated_at`

// ItemRepository управляет каталогом предметов в PostgreSQL.
type ItemRepository struct {
	db *pgxpool.Pool
}

// NewItemRepository создаёт новый ItemRepository.
func NewItemRepository(db *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{db: db}
}

// ItemByName ищет предмет по точному имени, затем по первому вхождению подстроки.
// Возвращает nil, nil если ничего не найдено.
func (r *ItemRepository) ItemByName(ctx context.Context, name string) (*model.ItemRecord, error) {
	item, err := r.queryOne(ctx,
		`SELECT `+itemColumns+` FROM items WHERE name_kr = $1 ORDER BY id LIMIT 1`, name)
	if err != nil || item != nil {
		return item, err
	}
	return r.queryOne(ctx,
		`SELECT `+itemColumns+` FROM items WHERE strpos(name_kr, $1) > 0 ORDER BY id LIMIT 1`, name)
}

// ItemByID возвращает предмет по id.
func (r *ItemRepository) ItemByID(ctx context.Context, id int32) (*model.ItemRecord, error) {
	return r.queryOne(ctx, `SELECT `+itemColumns+` FROM items WHERE id = $1`, id)
}

// UpsertItem вставляет или обновляет предмет.
func (r *ItemRepository) UpsertItem(ctx context.Context, item *model.ItemRecord) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO items (id, name_kr, slots, parsed_data, updated_at)
		VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP)
		ON CONFLICT (id) DO UPDATE SET
			name_kr = EXCLUDED.name_kr,
			slots = EXCLUDED.slots,
			parsed_data = EXCLUDED.parsed_data,
			updated_at = EXCLUDED.updated_at
	`, item.ID, item.NameKr, item.Slots, nullText(item.ParsedData))
	if err != nil {
		return fmt.Errorf("upserting item %d: %w", item.ID, err)
	}
	return nil
}

func (r *ItemRepository) queryOne(ctx context.Context, query string, arg any) (*model.ItemRecord, error) {
	var (
		item   model.ItemRecord
		parsed *string
	)
	err := r.db.QueryRow(ctx, query, arg).Scan(&item.ID, &item.NameKr, &item.Slots, &parsed, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying item %v: %w", arg, err)
	}
	if parsed != nil {
		item.ParsedData = []byte(*parsed)
	}
	return &item, nil
}

// nullText maps an empty payload to NULL.
func nullText(b []byte) *string {
	if len(b) == 0 {
		return nil
	}
	s := string(b)
	return &s
}
