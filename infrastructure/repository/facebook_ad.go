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
	facebookAdsTable = "fact_facebook_ads"
)

type FacebookAdRepository interface {
	ReplaceWindow(ctx context.Context, records []*domain.FacebookAdRecord, startDate, endDate time.Time, accountID string) (int, error)
	InsertChunked(ctx context.Context, records []*domain.FacebookAdRecord) (int, error)
	DeleteByDateRange(ctx context.Context, startDate, endDate time.Time, accountID string) (int64, error)
	ListByDateRange(ctx context.Context, accountID string, startDate, endDate time.Time) ([]*domain.FacebookAdRecord, error)
}

type facebookAdRepository struct {
	conn      postgres.Conn
	chunkSize int
}

func NewFacebookAdRepository(conn postgres.Conn, chunkSize int) FacebookAdRepository {
	if chunkSize <= 0 {
		chunkSize = 1000
	}

	return &facebookAdRepository{
		conn:      conn,
		chunkSize: chunkSize,
	}
}

// ReplaceWindow apaga as linhas da janela (restritas à conta) e insere os
// registros em chunks, um por transação. A deleção acontece mesmo com zero
// registros novos: uma busca bem-sucedida vazia limpa a janela.
func (r *facebookAdRepository) ReplaceWindow(
	ctx context.Context,
	records []*domain.FacebookAdRecord,
	startDate, endDate time.Time,
	accountID string,
) (int, error) {
	deleted, err := r.DeleteByDateRange(ctx, startDate, endDate, accountID)
	if err != nil {
		return 0, fmt.Errorf("erro ao limpar a janela de datas: %w", err)
	}

	log.L.WithFields(log.Fields{
		"account_id": accountID,
		"records":    len(records),
	}).Debugf("Janela %s..%s limpa: %d linhas removidas",
		startDate.Format("2006-01-02"), endDate.Format("2006-01-02"), deleted)

	return r.InsertChunked(ctx, records)
}

func (r *facebookAdRepository) DeleteByDateRange(
	ctx context.Context,
	startDate, endDate time.Time,
	accountID string,
) (int64, error) {
	builder := squirrel.StatementBuilder.
		Delete(facebookAdsTable).
		Where(squirrel.GtOrEq{"date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"date": endDate.Format("2006-01-02")}).
		PlaceholderFormat(squirrel.Dollar)

	if accountID != "" {
		builder = builder.Where(squirrel.Eq{"account_id": accountID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a deleção: %w", err)
	}

	return result.RowsAffected()
}

// InsertChunked insere os registros em chunks com uma transação por chunk.
// Se um chunk falha, os anteriores permanecem confirmados e o erro devolve a
// contagem já gravada.
func (r *facebookAdRepository) InsertChunked(ctx context.Context, records []*domain.FacebookAdRecord) (int, error) {
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

func (r *facebookAdRepository) buildInsert(chunk []*domain.FacebookAdRecord) (string, []interface{}, error) {
	builder := squirrel.StatementBuilder.
		Insert(facebookAdsTable).
		Columns(
			"campaign_id", "adset_id", "ad_id", "account_id",
			"campaign_name", "adset_name", "ad_name",
			"impressions", "spend", "clicks",
			"purchase_roas", "purchase_conversion_value",
			"reach", "unique_link_clicks",
			"adds_to_cart", "adds_payment_info", "purchases",
			"image_url", "preview_url", "date",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, rec := range chunk {
		builder = builder.Values(
			rec.CampaignID, rec.AdsetID, rec.AdID, rec.AccountID,
			rec.CampaignName, rec.AdsetName, rec.AdName,
			rec.Impressions, rec.Spend, rec.Clicks,
			rec.PurchaseRoas, rec.PurchaseConversionValue,
			rec.Reach, rec.UniqueLinkClicks,
			rec.AddsToCart, rec.AddsPaymentInfo, rec.Purchases,
			rec.ImageURL, rec.PreviewURL, rec.Date.Format("2006-01-02"),
		)
	}

	// A janela já foi limpa; o conflito só acontece em reexecuções sem limpeza
	builder = builder.Suffix(`ON CONFLICT (ad_id, account_id, date) DO UPDATE SET
		campaign_id = EXCLUDED.campaign_id,
		adset_id = EXCLUDED.adset_id,
		campaign_name = EXCLUDED.campaign_name,
		adset_name = EXCLUDED.adset_name,
		ad_name = EXCLUDED.ad_name,
		impressions = EXCLUDED.impressions,
		spend = EXCLUDED.spend,
		clicks = EXCLUDED.clicks,
		purchase_roas = EXCLUDED.purchase_roas,
		purchase_conversion_value = EXCLUDED.purchase_conversion_value,
		reach = EXCLUDED.reach,
		unique_link_clicks = EXCLUDED.unique_link_clicks,
		adds_to_cart = EXCLUDED.adds_to_cart,
		adds_payment_info = EXCLUDED.adds_payment_info,
		purchases = EXCLUDED.purchases,
		image_url = EXCLUDED.image_url,
		preview_url = EXCLUDED.preview_url`)

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return query, args, nil
}

func (r *facebookAdRepository) ListByDateRange(
	ctx context.Context,
	accountID string,
	startDate, endDate time.Time,
) ([]*domain.FacebookAdRecord, error) {
	builder := squirrel.
		Select(
			"campaign_id", "adset_id", "ad_id", "account_id",
			"campaign_name", "adset_name", "ad_name",
			"impressions", "spend", "clicks",
			"purchase_roas", "purchase_conversion_value",
			"reach", "unique_link_clicks",
			"adds_to_cart", "adds_payment_info", "purchases",
			"image_url", "preview_url", "date",
		).
		From(facebookAdsTable).
		Where(squirrel.GtOrEq{"date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"date": endDate.Format("2006-01-02")}).
		OrderBy("date ASC", "spend DESC").
		PlaceholderFormat(squirrel.Dollar)

	if accountID != "" {
		builder = builder.Where(squirrel.Eq{"account_id": accountID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.FacebookAdRecord, 0)
	for rows.Next() {
		rec := &domain.FacebookAdRecord{}
		err := rows.Scan(
			&rec.CampaignID, &rec.AdsetID, &rec.AdID, &rec.AccountID,
			&rec.CampaignName, &rec.AdsetName, &rec.AdName,
			&rec.Impressions, &rec.Spend, &rec.Clicks,
			&rec.PurchaseRoas, &rec.PurchaseConversionValue,
			&rec.Reach, &rec.UniqueLinkClicks,
			&rec.AddsToCart, &rec.AddsPaymentInfo, &rec.Purchases,
			&rec.ImageURL, &rec.PreviewURL, &rec.Date,
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
