package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/udisondev/rocalc/internal/model"
)

// sqlitePragmas are applied to every new SQLite catalog connection.
var sqlitePragmas = []string{
	"PRAGMA foreign_keys = ON",
	"PRAGMA journal_mode = WAL",
	"PRAGMA busy_timeout = 5000",
}

// SQLite is an offline catalog stored in a local SQLite file.
type SQLite struct {
	db *sql.DB
}

var _ Catalog = (*SQLite)(nil)

// OpenSQLite opens (or creates) the catalog file at path.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite %s: %w", path, err)
	}
	// один writer: SQLite сериализует запись
	db.SetMaxOpenConns(1)

	for _, pragma := range sqlitePragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying %q: %w", pragma, err)
		}
	}
	return &SQLite{db: db}, nil
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

const sqliteItemSelect = `SELECT id, name_kr, slots, parsed_data, updated_at FROM items `

// ItemByName looks up the exact name first, then the first substring match.
func (s *SQLite) ItemByName(ctx context.Context, name string) (*model.ItemRecord, error) {
	item, err := s.queryItem(ctx, sqliteItemSelect+`WHERE name_kr = ? ORDER BY id LIMIT 1`, name)
	if err != nil || item != nil {
		return item, err
	}
	return s.queryItem(ctx, sqliteItemSelect+`WHERE instr(name_kr, ?) > 0 ORDER BY id LIMIT 1`, name)
}

// ItemByID returns the item with id.
func (s *SQLite) ItemByID(ctx context.Context, id int32) (*model.ItemRecord, error) {
	return s.queryItem(ctx, sqliteItemSelect+`WHERE id = ?`, id)
}

// UpsertItem inserts or replaces an item row.
func (s *SQLite) UpsertItem(ctx context.Context, item *model.ItemRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO items (id, name_kr, slots, parsed_data, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name_kr = excluded.name_kr,
			slots = excluded.slots,
			parsed_data = excluded.parsed_data,
			updated_at = excluded.updated_at
	`, item.ID, item.NameKr, item.Slots, nullText(item.ParsedData), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("upserting item %d: %w", item.ID, err)
	}
	return nil
}

func (s *SQLite) queryItem(ctx context.Context, query string, arg any) (*model.ItemRecord, error) {
	var (
		item   model.ItemRecord
		parsed sql.NullString
	)
	err := s.db.QueryRowContext(ctx, query, arg).Scan(&item.ID, &item.NameKr, &item.Slots, &parsed, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying item %v: %w", arg, err)
	}
	if parsed.Valid {
		item.ParsedData = []byte(parsed.String)
	}
	return &item, nil
}

const sqliteSkillSelect = `SELECT eng_name, name_kr, max_level, damage_percent, hits FROM skills `

// Skill returns the skill with the english id.
func (s *SQLite) Skill(ctx context.Context, engName string) (*model.SkillRecord, error) {
	rows, err := s.querySkills(ctx, sqliteSkillSelect+`WHERE eng_name = ?`, engName)
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return rows[0], nil
}

// SkillsWithDamage lists attack skills (damage_percent > 100).
func (s *SQLite) SkillsWithDamage(ctx context.Context) ([]*model.SkillRecord, error) {
	return s.querySkills(ctx, sqliteSkillSelect+`WHERE damage_percent > 100 ORDER BY eng_name`)
}

// SearchSkills lists attack skills whose Korean name contains keyword.
func (s *SQLite) SearchSkills(ctx context.Context, keyword string) ([]*model.SkillRecord, error) {
	return s.querySkills(ctx,
		sqliteSkillSelect+`WHERE damage_percent > 100 AND instr(name_kr, ?) > 0 ORDER BY eng_name`, keyword)
}

// UpsertSkill inserts or replaces a skill row.
func (s *SQLite) UpsertSkill(ctx context.Context, sk *model.SkillRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO skills (eng_name, name_kr, max_level, damage_percent, hits)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (eng_name) DO UPDATE SET
			name_kr = excluded.name_kr,
			max_level = excluded.max_level,
			damage_percent = excluded.damage_percent,
			hits = excluded.hits
	`, sk.EngName, sk.NameKr, sk.MaxLevel, nullInt(sk.DamagePercent), nullInt(sk.Hits))
	if err != nil {
		return fmt.Errorf("upserting skill %q: %w", sk.EngName, err)
	}
	return nil
}

func (s *SQLite) querySkills(ctx context.Context, query string, args ...any) ([]*model.SkillRecord, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying skills: %w", err)
	}
	defer rows.Close()

	var skills []*model.SkillRecord
	for rows.Next() {
		var (
			sk            model.SkillRecord
			percent, hits sql.NullInt64
		)
		if err := rows.Scan(&sk.EngName, &sk.NameKr, &sk.MaxLevel, &percent, &hits); err != nil {
			return nil, fmt.Errorf("scanning skill row: %w", err)
		}
		sk.DamagePercent = DefaultDamagePercent
		if percent.Valid {
			sk.DamagePercent = int(percent.Int64)
		}
		sk.Hits = DefaultHits
		if hits.Valid {
			sk.Hits = int(hits.Int64)
		}
		skills = append(skills, &sk)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating skill rows: %w", err)
	}
	return skills, nil
}
