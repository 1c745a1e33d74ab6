package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"recifi/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

const uniqueViolationCode = "23505"

var (
	// ErrConflict is returned when a guarded update found the trade in an
	// unexpected state, another claimer won the race.
	ErrConflict = errors.New("trade is not in the expected state")

	// ErrInvalidState is returned when a cancel hits a trade that is no
	// longer open.
	ErrInvalidState = errors.New("trade is not open")
)

type TradeRepository struct {
	conn *sqlx.DB
}

func NewTradeRepository(conn *sqlx.DB) *TradeRepository {
	return &TradeRepository{
		conn: conn,
	}
}

// ClaimOpenOrders moves every currently open trade to in_process and returns
// the claimed set. The claim runs as a single statement over a SKIP LOCKED
// sub-select, so concurrent claimers partition the open set disjointly and
// never block each other.
func (r *TradeRepository) ClaimOpenOrders() ([]models.Trade, error) {
	var trades []models.Trade

	if err := r.conn.Select(&trades, `
		UPDATE trades SET status = $1, updated_at = now()
		WHERE id IN (
			SELECT id FROM trades
			WHERE status = $2
			FOR UPDATE SKIP LOCKED
		)
		RETURNING *;`,
		models.TradeStatusInProcess,
		models.TradeStatusOpen,
	); err != nil {
		return nil, err
	}

	return trades, nil
}

// Resolve finishes one execution attempt: in_process -> open|closed|failed.
// Quantity and target price are written back untouched on reopen.
func (r *TradeRepository) Resolve(id string, status string) error {
	res, err := r.conn.Exec(
		"UPDATE trades SET status = $1, updated_at = now() WHERE id = $2 AND status = $3;",
		status, id, models.TradeStatusInProcess,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return ErrConflict
	}

	return nil
}

// UpsertOpenOrder keeps at most one open trade per user and trade type: an
// existing open trade is updated in place, otherwise a new row is created.
func (r *TradeRepository) UpsertOpenOrder(m *models.Trade) (*models.Trade, error) {
	tx, err := r.conn.Beginx()
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var existing models.Trade
	err = tx.QueryRowx(
		"SELECT * FROM trades WHERE telegram_user_id = $1 AND trade_type = $2 AND status = $3 LIMIT 1 FOR UPDATE;",
		m.TelegramUserID, m.TradeType, models.TradeStatusOpen,
	).StructScan(&existing)

	switch {
	case err == nil:
		if _, err := tx.Exec(
			"UPDATE trades SET quantity = $1, target_price = $2, updated_at = now() WHERE id = $3;",
			m.Quantity, m.TargetPrice, existing.ID,
		); err != nil {
			return nil, err
		}

		existing.Quantity = m.Quantity
		existing.TargetPrice = m.TargetPrice

		if err := tx.Commit(); err != nil {
			return nil, err
		}

		return &existing, nil
	case errors.Is(err, sql.ErrNoRows):
		m.ID = uuid.NewString()
		m.Status = models.TradeStatusOpen
		m.CreatedAt = time.Now().UTC()
		m.UpdatedAt = m.CreatedAt

		if _, err := tx.NamedExec(`
			INSERT INTO trades (id,telegram_user_id,wallet_address,private_key,trade_type,quantity,target_price,status,created_at,updated_at)
			VALUES (:id,:telegram_user_id,:wallet_address,:private_key,:trade_type,:quantity,:target_price,:status,:created_at,:updated_at);`,
			m,
		); err != nil {
			// The partial unique index rejects a second open trade for the
			// same user and type when two inserters raced past the select.
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
				return nil, ErrConflict
			}

			return nil, err
		}

		if err := tx.Commit(); err != nil {
			return nil, err
		}

		return m, nil
	default:
		return nil, err
	}
}

// Cancel transitions open -> cancelled. A trade that is already claimed or
// terminal is left untouched.
func (r *TradeRepository) Cancel(id string) error {
	res, err := r.conn.Exec(
		"UPDATE trades SET status = $1, updated_at = now() WHERE id = $2 AND status = $3;",
		models.TradeStatusCancelled, id, models.TradeStatusOpen,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return ErrInvalidState
	}

	return nil
}

func (r *TradeRepository) GetByID(id string) (*models.Trade, error) {
	var trade models.Trade

	if err := r.conn.QueryRowx("SELECT * FROM trades WHERE id = $1 LIMIT 1;", id).StructScan(&trade); err != nil {
		return nil, err
	}

	return &trade, nil
}

func (r *TradeRepository) GetByUserAndStatus(telegramUserID int64, status string) ([]models.Trade, error) {
	var trades []models.Trade

	if err := r.conn.Select(&trades,
		"SELECT * FROM trades WHERE telegram_user_id = $1 AND status = $2 ORDER BY created_at DESC;",
		telegramUserID, status,
	); err != nil {
		return nil, err
	}

	return trades, nil
}

func (r *TradeRepository) countByStatus(status string) (int, error) {
	var count int

	if err := r.conn.Get(&count, "SELECT count(*) FROM trades WHERE status = $1;", status); err != nil {
		return 0, err
	}

	return count, nil
}

// Stat returns per-status trade counts for the bot /stat command.
func (r *TradeRepository) Stat() (map[string]int, error) {
	out := make(map[string]int)

	for _, status := range []string{
		models.TradeStatusOpen,
		models.TradeStatusInProcess,
		models.TradeStatusClosed,
		models.TradeStatusFailed,
		models.TradeStatusCancelled,
	} {
		count, err := r.countByStatus(status)
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", status, err)
		}

		out[status] = count
	}

	return out, nil
}
