package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v4/pgxpool"

	"resume-studio/internal/model"
)

// TemplatesRepo serves the template catalog. With a nil pool it falls back
// to the built-in seed catalog, so the service runs without a database.
type TemplatesRepo struct {
	pool *pgxpool.Pool
}

func NewTemplatesRepo(pool *pgxpool.Pool) *TemplatesRepo {
	return &TemplatesRepo{pool: pool}
}

// EnsureSchema creates the catalog table and seeds it on startup.
func (r *TemplatesRepo) EnsureSchema(ctx context.Context) error {
	if r.pool == nil {
		return nil
	}
	slog.Info("ensuring template catalog schema")

	_, err := r.pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS resume_templates (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		template_type TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		preview_image TEXT NOT NULL DEFAULT '',
		ats_score INT NOT NULL DEFAULT 0,
		is_premium BOOLEAN NOT NULL DEFAULT FALSE,
		css_styles JSONB NOT NULL DEFAULT '{}'::jsonb,
		layout_config JSONB NOT NULL DEFAULT '{}'::jsonb
	)`)
	if err != nil {
		return fmt.Errorf("create resume_templates: %w", err)
	}

	for _, t := range model.SeedTemplates() {
		stylesB, _ := json.Marshal(t.CSSStyles)
		layoutB, _ := json.Marshal(t.LayoutConfig)
		if _, err := r.pool.Exec(ctx, `INSERT INTO resume_templates
			(id, name, template_type, description, preview_image, ats_score, is_premium, css_styles, layout_config)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
			ON CONFLICT (name) DO NOTHING`,
			t.ID, t.Name, t.TemplateType, t.Description, t.PreviewImage, t.ATSScore, t.IsPremium, stylesB, layoutB); err != nil {
			slog.Warn("unable to seed template (non-fatal)", "name", t.Name, "error", err)
		}
	}
	return nil
}

func (r *TemplatesRepo) List(ctx context.Context) ([]model.Template, error) {
	if r.pool == nil {
		return model.SeedTemplates(), nil
	}

	rows, err := r.pool.Query(ctx, `SELECT id, name, template_type, description, preview_image, ats_score, is_premium, css_styles, layout_config
		FROM resume_templates ORDER BY ats_score DESC, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Template
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TemplatesRepo) GetByID(ctx context.Context, id string) (*model.Template, error) {
	if r.pool == nil {
		for _, t := range model.SeedTemplates() {
			if t.ID == id {
				return &t, nil
			}
		}
		return nil, nil
	}

	rows, err := r.pool.Query(ctx, `SELECT id, name, template_type, description, preview_image, ats_score, is_premium, css_styles, layout_config
		FROM resume_templates WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	t, err := scanTemplate(rows)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTemplate(row rowScanner) (model.Template, error) {
	var t model.Template
	var stylesB, layoutB []byte
	if err := row.Scan(&t.ID, &t.Name, &t.TemplateType, &t.Description, &t.PreviewImage, &t.ATSScore, &t.IsPremium, &stylesB, &layoutB); err != nil {
		return t, err
	}
	if len(stylesB) > 0 {
		if err := json.Unmarshal(stylesB, &t.CSSStyles); err != nil {
			slog.Warn("invalid css_styles payload", "template", t.Name, "error", err)
		}
	}
	if len(layoutB) > 0 {
		if err := json.Unmarshal(layoutB, &t.LayoutConfig); err != nil {
			slog.Warn("invalid layout_config payload", "template", t.Name, "error", err)
		}
	}
	return t, nil
}
