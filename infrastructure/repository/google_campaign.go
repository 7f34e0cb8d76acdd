package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/adsight/bi-ads-api/infrastructure/database/postgres"
	"github.com/adsight/bi-ads-api/internal/domain"
	"github.com/adsight/bi-ads-api/pkg/log"
)

const (
	googleCampaignsTable = "fact_google_campaigns"
)

type GoogleCampaignRepository interface {
	ReplaceWindow(ctx context.Context, records []*domain.GoogleCampaignRecord, startDate, endDate time.Time) (int, error)
	InsertChunked(ctx context.Context, records []*domain.GoogleCampaignRecord) (int, error)
	DeleteByDateRange(ctx context.Context, startDate, endDate time.Time) (int64, error)
	ListByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.GoogleCampaignRecord, error)
}

type googleCampaignRepository struct {
	conn      postgres.Conn
	chunkSize int
}

func NewGoogleCampaignRepository(conn postgres.Conn, chunkSize int) GoogleCampaignRepository {
	if chunkSize <= 0 {
		chunkSize = 1000
	}

	return &googleCampaignRepository{
		conn:      conn,
		chunkSize: chunkSize,
	}
}

// ReplaceWindow apaga as linhas da janela e insere os registros em chunks,
// um por transação. Busca vazia ainda limpa a janela.
func (r *googleCampaignRepository) ReplaceWindow(
	ctx context.Context,
	records []*domain.GoogleCampaignRecord,
	startDate, endDate time.Time,
) (int, error) {
	deleted, err := r.DeleteByDateRange(ctx, startDate, endDate)
	if err != nil {
		return 0, fmt.Errorf("erro ao limpar a janela de datas: %w", err)
	}

	log.L.WithField("records", len(records)).Debugf("Janela %s..%s limpa: %d linhas removidas",
		startDate.Format("2006-01-02"), endDate.Format("2006-01-02"), deleted)

	return r.InsertChunked(ctx, records)
}

func (r *googleCampaignRepository) DeleteByDateRange(
	ctx context.Context,
	startDate, endDate time.Time,
) (int64, error) {
	query, args, err := squirrel.StatementBuilder.
		Delete(googleCampaignsTable).
		Where(squirrel.GtOrEq{"date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"date": endDate.Format("2006-01-02")}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a deleção: %w", err)
	}

	return result.RowsAffected()
}

func (r *googleCampaignRepository) InsertChunked(ctx context.Context, records []*domain.GoogleCampaignRecord) (int, error) {
	committed := 0

	for start := 0; start < len(records); start += r.chunkSize {
		end := start + r.chunkSize
		if end > len(records) {
			end = len(records)
		}
		chunk := records[start:end]

		err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
			query, args, err := r.buildInsert(chunk)
			if err != nil {
				return err
			}

			_, err = tx.ExecContext(ctx, query, args...)
			return err
		})
		if err != nil {
			return committed, &domain.PartialWriteError{
				Committed: committed,
				Total:     len(records),
				Err:       err,
			}
		}

		committed += len(chunk)
	}

	return committed, nil
}

func (r *googleCampaignRepository) buildInsert(chunk []*domain.GoogleCampaignRecord) (string, []interface{}, error) {
	builder := squirrel.StatementBuilder.
		Insert(googleCampaignsTable).
		Columns(
			"campaign_id", "campaign_name",
			"impressions", "conversions", "cost", "clicks", "conversion_value",
			"date",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, rec := range chunk {
		builder = builder.Values(
			rec.CampaignID, rec.CampaignName,
			rec.Impressions, rec.Conversions, rec.Cost, rec.Clicks, rec.ConversionValue,
			rec.Date.Format("2006-01-02"),
		)
	}

	builder = builder.Suffix(`ON CONFLICT (campaign_id, date) DO UPDATE SET
		campaign_name = EXCLUDED.campaign_name,
		impressions = EXCLUDED.impressions,
		conversions = EXCLUDED.conversions,
		cost = EXCLUDED.cost,
		clicks = EXCLUDED.clicks,
		conversion_value = EXCLUDED.conversion_value`)

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return query, args, nil
}

func (r *googleCampaignRepository) ListByDateRange(
	ctx context.Context,
	startDate, endDate time.Time,
) ([]*domain.GoogleCampaignRecord, error) {
	query, args, err := squirrel.
		Select(
			"campaign_id", "campaign_name",
			"impressions", "conversions", "cost", "clicks", "conversion_value",
			"date",
		).
		From(googleCampaignsTable).
		Where(squirrel.GtOrEq{"date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"date": endDate.Format("2006-01-02")}).
		OrderBy("date ASC", "cost DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.GoogleCampaignRecord, 0)
	for rows.Next() {
		rec := &domain.GoogleCampaignRecord{}
		err := rows.Scan(
			&rec.CampaignID, &rec.CampaignName,
			&rec.Impressions, &rec.Conversions, &rec.Cost, &rec.Clicks, &rec.ConversionValue,
			&rec.Date,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registro: %w", err)
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}
