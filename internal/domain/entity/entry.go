// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Entry type values as stored in the tipo column.
const (
	EntryTypeIncome  = "receita"
	EntryTypeExpense = "despesa"
)

// Entry is a single income or expense record (a "lançamento"), owned by
// exactly one user and scoped to a calendar month.
type Entry struct {
	ID        uuid.UUID // Unique identifier for this entry.
	UserID    uuid.UUID // Owner of the entry; all queries filter on this.
	Tipo      string    // Entry kind: "receita" (income) or "despesa" (expense).
	Descricao string    // Free-form description.
	Valor     float64   // Monetary amount.
	Data      string    // Entry date in ISO form, YYYY-MM-DD. Listing orders by it descending.
	MesAno    string    // Month bucket in YYYY-MM form, used for month filtering.
	CreatedAt time.Time // Timestamp of when the entry was recorded.
}
