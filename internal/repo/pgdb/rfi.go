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

	"github.com/google/uuid"
)

type RfiResponseRepo struct {
	*postgres.Postgres
}

func NewRfiResponseRepo(pgdb *postgres.Postgres) *RfiResponseRepo {
	return &RfiResponseRepo{pgdb}
}

const rfiColumns = "id, vendor_name, email, contact_email, subject, received_date, status, category, company_id, llm_score, user_score"

func (r *RfiResponseRepo) CreateResponse(ctx context.Context, input *entity.CreateRfiResponseInput) (uuid.UUID, error) {
	createSql, args, _ := r.SqlBuilder.
		Insert("rfi_response").
		Columns("vendor_name", "email", "contact_email", "subject", "received_date", "status", "category", "company_id").
		Values(input.VendorName, input.Email, input.ContactEmail, input.Subject,
			time.Now().Format(common.DueDateLayout), input.Status, input.Category, input.CompanyId).
		Suffix("RETURNING id").
		ToSql()

	var responseId uuid.UUID
	err := r.Database.QueryRowContext(ctx, createSql, args...).Scan(&responseId)
	if err != nil {
		return uuid.Nil, err
	}

	return responseId, nil
}

func (r *RfiResponseRepo) GetResponseById(ctx context.Context, id string) (*entity.RfiResponse, error) {
	getSql, args, _ := r.SqlBuilder.
		Select(rfiColumns).
		From("rfi_response").
		Where("id = ?", id).
		ToSql()

	var response entity.RfiResponse
	row := r.Database.QueryRowContext(ctx, getSql, args...)
	err := row.Scan(&response.Id, &response.VendorName, &response.Email, &response.ContactEmail,
		&response.Subject, &response.ReceivedDate, &response.Status, &response.Category,
		&response.CompanyId, &response.LlmScore, &response.UserScore)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return &response, nil
}

func (r *RfiResponseRepo) GetResponses(ctx context.Context, pg *entity.PaginationInput) ([]entity.RfiResponse, error) {
	builder := r.SqlBuilder.
		Select(rfiColumns).
		From("rfi_response").
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

	responses := make([]entity.RfiResponse, 0)
	for rows.Next() {
		var response entity.RfiResponse
		err = rows.Scan(&response.Id, &response.VendorName, &response.Email, &response.ContactEmail,
			&response.Subject, &response.ReceivedDate, &response.Status, &response.Category,
			&response.CompanyId, &response.LlmScore, &response.UserScore)
		if err != nil {
			return nil, err
		}
		responses = append(responses, response)
	}

	return responses, rows.Err()
}

func (r *RfiResponseRepo) UpdateResponseStatus(ctx context.Context, id string, status string) error {
	updateSql, args, _ := r.SqlBuilder.
		Update("rfi_response").
		Set("status", status).
		Where("id = ?", id).
		ToSql()

	return r.exec(ctx, updateSql, args)
}

func (r *RfiResponseRepo) UpdateResponseScores(ctx context.Context, id string, llmScore, userScore *int) error {
	builder := r.SqlBuilder.Update("rfi_response")
	changed := false

	if llmScore != nil {
		builder, changed = builder.Set("llm_score", *llmScore), true
	}
	if userScore != nil {
		builder, changed = builder.Set("user_score", *userScore), true
	}
	if !changed {
		return nil
	}

	updateSql, args, _ := builder.Where("id = ?", id).ToSql()

	return r.exec(ctx, updateSql, args)
}

func (r *RfiResponseRepo) exec(ctx context.Context, query string, args []interface{}) error {
	result, err := r.Database.ExecContext(ctx, query, args...)
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
