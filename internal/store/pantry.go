package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/VougishTiger/MealSmith/internal/model"
)

// Sentinel results for owner-scoped deletes.
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
)

// ExpiresOnFormat is the only accepted expiration date format. Input in any
// other shape is stored as no date; the rest of the item still goes through.
const ExpiresOnFormat = "2006-01-02"

type PantryStore struct {
	db *sql.DB
}

func NewPantryStore(db *sql.DB) *PantryStore {
	return &PantryStore{db: db}
}

func scanPantryItem(scanner interface{ Scan(...any) error }) (*model.PantryItem, error) {
	var item model.PantryItem
	var expiresOn sql.NullTime

	err := scanner.Scan(
		&item.ID, &item.UserID, &item.Name, &item.Quantity, &item.Unit,
		&expiresOn, &item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if expiresOn.Valid {
		item.ExpiresOn = &expiresOn.Time
	}
	return &item, nil
}

const pantryItemCols = `id, user_id, name, quantity, unit, expires_on, created_at`

// CreateItem adds a pantry item for the user. A name that trims to empty is
// rejected silently: nothing is written and (nil, nil) is returned. The raw
// expiration date is parsed best-effort; unparseable input stores no date.
func (s *PantryStore) CreateItem(userID int64, name, quantity, unit, expiresOnRaw string) (*model.PantryItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	quantity = strings.TrimSpace(quantity)
	unit = strings.TrimSpace(unit)

	var exp sql.NullTime
	if raw := strings.TrimSpace(expiresOnRaw); raw != "" {
		if parsed, err := time.Parse(ExpiresOnFormat, raw); err == nil {
			exp = sql.NullTime{Time: parsed, Valid: true}
		}
	}

	result, err := s.db.Exec(
		`INSERT INTO pantry_items (user_id, name, quantity, unit, expires_on) VALUES (?, ?, ?, ?, ?)`,
		userID, name, quantity, unit, exp,
	)
	if err != nil {
		return nil, fmt.Errorf("insert pantry item: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetItem(id)
}

func (s *PantryStore) GetItem(id int64) (*model.PantryItem, error) {
	row := s.db.QueryRow(`SELECT `+pantryItemCols+` FROM pantry_items WHERE id = ?`, id)
	item, err := scanPantryItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get pantry item: %w", err)
	}
	return item, nil
}

// ListItems returns the user's pantry with dated items first in ascending
// expiration order, undated items after, insertion order as tie-break.
func (s *PantryStore) ListItems(userID int64) ([]model.PantryItem, error) {
	rows, err := s.db.Query(
		`SELECT `+pantryItemCols+` FROM pantry_items WHERE user_id = ? ORDER BY expires_on IS NULL, expires_on ASC, id ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list pantry items: %w", err)
	}
	defer rows.Close()

	var items []model.PantryItem
	for rows.Next() {
		item, err := scanPantryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pantry item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// DeleteItem removes the user's item. It returns ErrNotFound for an unknown
// id and ErrForbidden when the item belongs to someone else; in the
// forbidden case nothing is mutated.
func (s *PantryStore) DeleteItem(userID, id int64) error {
	item, err := s.GetItem(id)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrNotFound
	}
	if item.UserID != userID {
		return ErrForbidden
	}

	if _, err := s.db.Exec(`DELETE FROM pantry_items WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete pantry item: %w", err)
	}
	return nil
}
