package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"procurement-authoring-api/internal/common"
	"procurement-authoring-api/internal/entity"
	"procurement-authoring-api/internal/repo/repo_errors"
	"procurement-authoring-api/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type RfpRepo struct {
	*postgres.Postgres
}

func NewRfpRepo(pgdb *postgres.Postgres) *RfpRepo {
	return &RfpRepo{pgdb}
}

const rfpColumns = "id, title, description, status, due_date, responses, created_at, last_edited, completeness, rfp_text"

func (r *RfpRepo) AddRfp(ctx context.Context, input *entity.CreateRfpInput) (uuid.UUID, error) {
	now := time.Now()
	createRfpSql, args, _ := r.SqlBuilder.
		Insert("rfp").
		Columns("title", "description", "status", "due_date", "responses", "created_at", "last_edited", "completeness", "rfp_text").
		Values(input.Title, input.Description, common.Active,
			now.AddDate(0, 0, 30).Format(common.DueDateLayout), 0,
			now.Format(common.DueDateLayout), "", 0, input.RfpText).
		Suffix("RETURNING id").
		ToSql()

	var rfpId uuid.UUID
	err := r.Database.QueryRowContext(ctx, createRfpSql, args...).Scan(&rfpId)
	if err != nil {
		return uuid.Nil, err
	}

	return rfpId, nil
}

func (r *RfpRepo) AddDraft(ctx context.Context, input *entity.CreateDraftInput) (uuid.UUID, error) {
	now := time.Now().Format(common.DueDateLayout)
	createDraftSql, args, _ := r.SqlBuilder.
		Insert("rfp").
		Columns("title", "description", "status", "due_date", "responses", "created_at", "last_edited", "completeness", "rfp_text").
		Values(input.Title, input.Description, common.Draft, common.NotPublished, 0, now, now, input.Completeness, input.RfpText).
		Suffix("RETURNING id").
		ToSql()

	var draftId uuid.UUID
	err := r.Database.QueryRowContext(ctx, createDraftSql, args...).Scan(&draftId)
	if err != nil {
		return uuid.Nil, err
	}

	return draftId, nil
}

func (r *RfpRepo) GetRfpById(ctx context.Context, id string) (*entity.RfpItem, error) {
	getRfpSql, args, _ := r.SqlBuilder.
		Select(rfpColumns).
		From("rfp").
		Where("id = ?", id).
		ToSql()

	row := r.Database.QueryRowContext(ctx, getRfpSql, args...)

	return scanRfp(row)
}

func (r *RfpRepo) UpdateRfp(ctx context.Context, id string, patch *entity.RfpPatch) error {
	return r.update(ctx, id, common.Active, patch, false)
}

func (r *RfpRepo) UpdateDraft(ctx context.Context, id string, patch *entity.RfpPatch) error {
	return r.update(ctx, id, common.Draft, patch, true)
}

func (r *RfpRepo) update(ctx context.Context, id string, status string, patch *entity.RfpPatch, refreshLastEdited bool) error {
	builder := r.SqlBuilder.Update("rfp")
	changed := false

	if patch.Title != nil {
		builder, changed = builder.Set("title", *patch.Title), true
	}
	if patch.Description != nil {
		builder, changed = builder.Set("description", *patch.Description), true
	}
	if patch.DueDate != nil {
		builder, changed = builder.Set("due_date", *patch.DueDate), true
	}
	if patch.Responses != nil {
		builder, changed = builder.Set("responses", *patch.Responses), true
	}
	if patch.Completeness != nil {
		builder, changed = builder.Set("completeness", *patch.Completeness), true
	}
	if patch.RfpText != nil {
		builder, changed = builder.Set("rfp_text", *patch.RfpText), true
	}
	if refreshLastEdited {
		builder, changed = builder.Set("last_edited", time.Now().Format(common.DueDateLayout)), true
	}
	if !changed {
		return nil
	}

	var statusCond squirrel.Sqlizer = squirrel.NotEq{"status": common.Draft}
	if status == common.Draft {
		statusCond = squirrel.Eq{"status": common.Draft}
	}

	updateSql, args, _ := builder.
		Where("id = ?", id).
		Where(statusCond).
		ToSql()

	result, err := r.Database.ExecContext(ctx, updateSql, args...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repo_errors.ErrNotFound
	}

	return nil
}

// PublishDraft flips the draft row to active inside one transaction, so the
// promotion and the draft's disappearance are observed together.
func (r *RfpRepo) PublishDraft(ctx context.Context, id string, now time.Time) (*entity.RfpItem, error) {
	tx, err := r.Database.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	publishSql, args, _ := r.SqlBuilder.
		Update("rfp").
		Set("status", common.Active).
		Set("due_date", now.AddDate(0, 0, 30).Format(common.DueDateLayout)).
		Where("id = ?", id).
		Where(squirrel.Eq{"status": common.Draft}).
		Suffix("RETURNING " + rfpColumns).
		RunWith(tx).
		ToSql()

	item, err := scanRfp(tx.QueryRow(publishSql, args...))
	if err != nil {
		if e := tx.Rollback(); e != nil {
			return nil, e
		}

		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	return item, nil
}

func (r *RfpRepo) GetActive(ctx context.Context, pg *entity.PaginationInput) ([]entity.RfpItem, error) {
	return r.list(ctx, squirrel.NotEq{"status": common.Draft}, pg)
}

func (r *RfpRepo) GetDrafts(ctx context.Context, pg *entity.PaginationInput) ([]entity.RfpItem, error) {
	return r.list(ctx, squirrel.Eq{"status": common.Draft}, pg)
}

func (r *RfpRepo) list(ctx context.Context, cond squirrel.Sqlizer, pg *entity.PaginationInput) ([]entity.RfpItem, error) {
	builder := r.SqlBuilder.
		Select(rfpColumns).
		From("rfp").
		Where(cond).
		OrderBy("inserted_seq DESC")

	if pg != nil {
		builder = builder.Limit(uint64(pg.Limit)).Offset(uint64(pg.Offset))
	}

	listSql, args, _ := builder.ToSql()
	rows, err := r.Database.QueryContext(ctx, listSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]entity.RfpItem, 0)
	for rows.Next() {
		var item entity.RfpItem
		err = rows.Scan(&item.Id, &item.Title, &item.Description, &item.Status, &item.DueDate,
			&item.Responses, &item.CreatedAt, &item.LastEdited, &item.Completeness, &item.RfpText)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRfp(row rowScanner) (*entity.RfpItem, error) {
	var item entity.RfpItem
	err := row.Scan(&item.Id, &item.Title, &item.Description, &item.Status, &item.DueDate,
		&item.Responses, &item.CreatedAt, &item.LastEdited, &item.Completeness, &item.RfpText)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return &item, nil
}
