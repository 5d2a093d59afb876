// Package duckdb loads raw Tardis-format rows from a local DuckDB
// dataset and streams them through the normalization boundary.
package duckdb

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/marcboeker/go-duckdb"

	"github.com/meridianfx/meridian/pkg/common"
	"github.com/meridianfx/meridian/pkg/exchange/tardis"
)

type Reader struct {
	dataSourceName string
	db             *sql.DB
}

func NewReader(dataSourceName string) *Reader {
	return &Reader{
		dataSourceName: dataSourceName,
	}
}

func (r *Reader) Connect() error {
	db, err := sql.Open("duckdb", r.dataSourceName)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	r.db = db
	return nil
}

func (r *Reader) Close() {
	_ = r.db.Close()
}

// LoadTrades streams normalized trades for one raw symbol between from
// and to (microsecond timestamps). Rows that fail normalization abort
// the load; the caller decides whether to retry or reject the dataset.
func (r *Reader) LoadTrades(ctx context.Context, exchange tardis.Exchange, symbol string,
	from, to time.Time, pricePrecision, sizePrecision uint8,
	handler func(trade common.Trade) error) error {

	query := `SELECT timestamp, local_timestamp, id, side, price, amount
		FROM trades WHERE exchange = ? AND symbol = ? AND timestamp BETWEEN ? AND ?
		ORDER BY timestamp`

	rows, err := r.db.QueryContext(ctx, query, string(exchange), symbol,
		from.UnixMicro(), to.UnixMicro())
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	for rows.Next() {
		record := tardis.TradeRecord{Exchange: exchange, Symbol: symbol}
		if err := rows.Scan(&record.TimestampUs, &record.LocalTimestampUs,
			&record.Id, &record.Side, &record.Price, &record.Amount); err != nil {
			return fmt.Errorf("error scanning row: %w", err)
		}

		trade, err := record.Normalize(pricePrecision, sizePrecision)
		if err != nil {
			return fmt.Errorf("error normalizing trade: %w", err)
		}
		if err := handler(trade); err != nil {
			return fmt.Errorf("error processing trade: %w", err)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error scanning rows: %w", err)
	}

	return nil
}

// LoadBookChanges streams normalized book updates for one raw symbol.
func (r *Reader) LoadBookChanges(ctx context.Context, exchange tardis.Exchange, symbol string,
	from, to time.Time, pricePrecision, sizePrecision uint8,
	handler func(update common.BookUpdate) error) error {

	query := `SELECT timestamp, local_timestamp, is_snapshot, side, price, amount
		FROM incremental_book WHERE exchange = ? AND symbol = ? AND timestamp BETWEEN ? AND ?
		ORDER BY timestamp`

	rows, err := r.db.QueryContext(ctx, query, string(exchange), symbol,
		from.UnixMicro(), to.UnixMicro())
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	for rows.Next() {
		record := tardis.BookChangeRecord{Exchange: exchange, Symbol: symbol}
		if err := rows.Scan(&record.TimestampUs, &record.LocalTimestampUs,
			&record.IsSnapshot, &record.Side, &record.Price, &record.Amount); err != nil {
			return fmt.Errorf("error scanning row: %w", err)
		}

		update, err := record.Normalize(pricePrecision, sizePrecision)
		if err != nil {
			return fmt.Errorf("error normalizing book change: %w", err)
		}
		if err := handler(update); err != nil {
			return fmt.Errorf("error processing book change: %w", err)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error scanning rows: %w", err)
	}

	return nil
}
