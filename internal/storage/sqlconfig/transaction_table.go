package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

const transactionsTableName = "transactions"

var _ ITransactionTable = (*TransactionsTable)(nil)

var transactionColumns = []any{
	psql.Quote("id"),
	psql.Quote("user_id"),
	psql.Quote("vendor"),
	psql.Quote("category"),
	psql.Quote("amount"),
	psql.Quote("date"),
	psql.Quote("description"),
	psql.Quote("created_at"),
}

type TransactionsTable struct {
	exec bob.Executor
}

func NewTransactionsTable(db *sql.DB) *TransactionsTable {
	return &TransactionsTable{exec: bob.NewDB(db)}
}

// Insert creates a transaction and returns the stored row.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	query := psql.Insert(
		im.Into(transactionsTableName, "user_id", "vendor", "category", "amount", "date", "description"),
		im.Values(psql.Arg(
			create.UserID,
			create.Vendor,
			create.Category,
			create.Amount,
			create.Date,
			create.Description,
		)),
		im.Returning(transactionColumns...),
	)

	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[*Transaction]())
	if err != nil {
		return nil, fmt.Errorf("insert transaction: %w", err)
	}
	return row, nil
}

// Update overwrites the editable columns of one transaction.
func (t *TransactionsTable) Update(ctx context.Context, id uuid.UUID, update *TransactionUpdate) (*Transaction, error) {
	query := psql.Update(
		um.Table(transactionsTableName),
		um.Set(
			psql.Quote("vendor").EQ(psql.Arg(update.Vendor)),
			psql.Quote("category").EQ(psql.Arg(update.Category)),
			psql.Quote("amount").EQ(psql.Arg(update.Amount)),
			psql.Quote("date").EQ(psql.Arg(update.Date)),
			psql.Quote("description").EQ(psql.Arg(update.Description)),
		),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning(transactionColumns...),
	)

	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[*Transaction]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTransactionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update transaction %s: %w", id, err)
	}
	return row, nil
}

// Delete removes a transaction. Deleting an unknown ID is not an error.
func (t *TransactionsTable) Delete(ctx context.Context, id uuid.UUID) error {
	query := psql.Delete(
		dm.From(transactionsTableName),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	if _, err := bob.Exec(ctx, t.exec, query); err != nil {
		return fmt.Errorf("delete transaction %s: %w", id, err)
	}
	return nil
}

// List returns transactions matching the filter ordered by date, with
// created_at breaking ties. Nil filter returns all rows newest first.
func (t *TransactionsTable) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(transactionColumns...),
		sm.From(transactionsTableName),
	}

	ascending := false
	if filter != nil {
		if filter.UserID != "" {
			queryMods = append(queryMods, sm.Where(psql.Quote("user_id").EQ(psql.Arg(filter.UserID))))
		}
		ascending = filter.Ascending
	}

	if ascending {
		queryMods = append(queryMods,
			sm.OrderBy(psql.Quote("date")).Asc(),
			sm.OrderBy(psql.Quote("created_at")).Asc(),
		)
	} else {
		queryMods = append(queryMods,
			sm.OrderBy(psql.Quote("date")).Desc(),
			sm.OrderBy(psql.Quote("created_at")).Desc(),
		)
	}

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Transaction]())
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return rows, nil
}
