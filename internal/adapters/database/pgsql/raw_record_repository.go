package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zoneline/fx_rates_backend/internal/core/ports"
	"github.com/zoneline/fx_rates_backend/internal/models"
)

type PgxRawRecordRepository struct {
	BaseRepository
}

// NewRawRecordRepository creates a new repository for scraped raw records.
func NewRawRecordRepository(pool *pgxpool.Pool) ports.RawRecordRepository {
	return &PgxRawRecordRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// ReplaceBatch deletes any earlier scrape for the publication dates present
// in the batch and inserts the new rows, all in one transaction. This is how
// a re-scrape of the same day replaces its predecessor without ever leaving
// the feed half-written.
func (r *PgxRawRecordRepository) ReplaceBatch(ctx context.Context, zoneID string, records []models.RawRecord) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	seen := make(map[time.Time]struct{})
	for _, rec := range records {
		if rec.PublicationDate == nil {
			continue
		}
		d := *rec.PublicationDate
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		_, err = tx.Exec(ctx,
			`DELETE FROM raw_records WHERE zone_id = $1 AND publication_date = $2;`,
			zoneID, d,
		)
		if err != nil {
			return fmt.Errorf("failed to clear raw records for zone %s on %s: %w", zoneID, d.Format("2006-01-02"), err)
		}
	}

	for _, rec := range records {
		_, err = tx.Exec(ctx, `
			INSERT INTO raw_records (
				raw_record_id, zone_id, publication_date, raw_name, raw_code,
				raw_value, raw_multiplier, scraped_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
			rec.RawRecordID, zoneID, rec.PublicationDate, rec.RawName, rec.RawCode,
			rec.RawValue, rec.RawMultiplier, rec.ScrapedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert raw record %q: %w", rec.RawName, mapPgError(err))
		}
	}

	return r.Commit(ctx, tx)
}

// FindLatestPublicationDate returns the most recent dated scrape for a zone,
// or nil when the zone has no dated raw records at all.
func (r *PgxRawRecordRepository) FindLatestPublicationDate(ctx context.Context, zoneID string) (*time.Time, error) {
	query := `
		SELECT publication_date
		FROM raw_records
		WHERE zone_id = $1 AND publication_date IS NOT NULL
		ORDER BY publication_date DESC, scraped_at DESC
		LIMIT 1;
	`
	var date time.Time
	err := r.Pool.QueryRow(ctx, query, zoneID).Scan(&date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find latest publication date for zone %s: %w", zoneID, err)
	}
	return &date, nil
}

// ListByPublicationDate returns the rows scraped for one exact publication
// date, keeping only the latest scrape per (raw_name, raw_code) in case a
// re-scrape raced the replace.
func (r *PgxRawRecordRepository) ListByPublicationDate(ctx context.Context, zoneID string, date time.Time) ([]models.RawRecord, error) {
	query := `
		SELECT DISTINCT ON (raw_name, raw_code)
			raw_record_id, zone_id, publication_date, raw_name, raw_code,
			raw_value, raw_multiplier, scraped_at
		FROM raw_records
		WHERE zone_id = $1 AND publication_date = $2
		ORDER BY raw_name, raw_code, scraped_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, zoneID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query raw records for zone %s: %w", zoneID, err)
	}
	defer rows.Close()

	return collectRawRecords(rows)
}

// ListRecent returns the newest raw records for a zone, most recent scrape
// first.
func (r *PgxRawRecordRepository) ListRecent(ctx context.Context, zoneID string, limit int) ([]models.RawRecord, error) {
	query := `
		SELECT raw_record_id, zone_id, publication_date, raw_name, raw_code,
			raw_value, raw_multiplier, scraped_at
		FROM raw_records
		WHERE zone_id = $1
		ORDER BY scraped_at DESC
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, zoneID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent raw records for zone %s: %w", zoneID, err)
	}
	defer rows.Close()

	return collectRawRecords(rows)
}

func collectRawRecords(rows pgx.Rows) ([]models.RawRecord, error) {
	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.RawRecord, error) {
		var rec models.RawRecord
		err := row.Scan(
			&rec.RawRecordID, &rec.ZoneID, &rec.PublicationDate, &rec.RawName, &rec.RawCode,
			&rec.RawValue, &rec.RawMultiplier, &rec.ScrapedAt,
		)
		return rec, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan raw records: %w", err)
	}
	return records, nil
}
