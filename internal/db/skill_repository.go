package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/rocalc/internal/model"
)

// skillColumns подставляет значения по умолчанию для NULL (100% / 1 удар).
const skillColumns = `eng_name, name_kr, max_level, COALESCE(damage_percent, 100), COALESCE(hits, 1)`

// SkillRepository управляет каталогом скиллов в PostgreSQL.
type SkillRepository struct {
	db *pgxpool.Pool
}

// NewSkillRepository создаёт новый SkillRepository.
func NewSkillRepository(db *pgxpool.Pool) *SkillRepository {
	return &SkillRepository{db: db}
}

// Skill возвращает скилл по английскому идентификатору.
// Возвращает nil, nil если скилл не найден.
func (r *SkillRepository) Skill(ctx context.Context, engName string) (*model.SkillRecord, error) {
	var s model.SkillRecord
	err := r.db.QueryRow(ctx,
		`SELECT `+skillColumns+` FROM skills WHERE eng_name = $1`, engName,
	).Scan(&s.EngName, &s.NameKr, &s.MaxLevel, &s.DamagePercent, &s.Hits)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying skill %q: %w", engName, err)
	}
	return &s, nil
}

// SkillsWithDamage возвращает атакующие скиллы (damage_percent > 100).
func (r *SkillRepository) SkillsWithDamage(ctx context.Context) ([]*model.SkillRecord, error) {
	return r.list(ctx,
		`SELECT `+skillColumns+` FROM skills WHERE damage_percent > 100 ORDER BY eng_name`)
}

// SearchSkills ищет атакующие скиллы по подстроке корейского имени.
func (r *SkillRepository) SearchSkills(ctx context.Context, keyword string) ([]*model.SkillRecord, error) {
	return r.list(ctx,
		`SELECT `+skillColumns+` FROM skills
		 WHERE damage_percent > 100 AND strpos(name_kr, $1) > 0
		 ORDER BY eng_name`, keyword)
}

// UpsertSkill вставляет или обновляет скилл.
func (r *SkillRepository) UpsertSkill(ctx context.Context, s *model.SkillRecord) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO skills (eng_name, name_kr, max_level, damage_percent, hits)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (eng_name) DO UPDATE SET
			name_kr = EXCLUDED.name_kr,
			max_level = EXCLUDED.max_level,
			damage_percent = EXCLUDED.damage_percent,
			hits = EXCLUDED.hits
	`, s.EngName, s.NameKr, s.MaxLevel, nullInt(s.DamagePercent), nullInt(s.Hits))
	if err != nil {
		return fmt.Errorf("upserting skill %q: %w", s.EngName, err)
	}
	return nil
}

func (r *SkillRepository) list(ctx context.Context, query string, args ...any) ([]*model.SkillRecord, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying skills: %w", err)
	}
	defer rows.Close()

	skills := make([]*model.SkillRecord, 0, 32)
	for rows.Next() {
		var s model.SkillRecord
		if err := rows.Scan(&s.EngName, &s.NameKr, &s.MaxLevel, &s.DamagePercent, &s.Hits); err != nil {
			return nil, fmt.Errorf("scanning skill row: %w", err)
		}
		skills = append(skills, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating skill rows: %w", err)
	}
	return skills, nil
}

// nullInt maps 0 (unknown) to NULL.
func nullInt(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}
