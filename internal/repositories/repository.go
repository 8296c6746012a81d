package repositories

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"mainthub/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Repository is the CRUD, search and write contract shared by every entity kind.
type Repository[T any] interface {
	GetAll(ctx context.Context) ([]*T, error)
	GetByID(ctx context.Context, id uuid.UUID) (*T, error)
	Search(ctx context.Context, query string) ([]*T, error)
	Create(ctx context.Context, fields models.Fields) (*T, error)
	Update(ctx context.Context, id uuid.UUID, fields models.Fields) (*T, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Kind() *Kind[T]
}

type entityRepo[T any] struct {
	db        Database
	kind      *Kind[T]
	selectSQL string
	orderSQL  string
	returning string
}

func NewRepository[T any](db Database, kind *Kind[T]) Repository[T] {
	r := &entityRepo[T]{db: db, kind: kind}

	cols := []string{"id", "created_at", "updated_at"}
	for _, c := range kind.Columns {
		cols = append(cols, c.Name)
	}
	r.returning = strings.Join(cols, ", ")

	selected := make([]string, 0, len(cols)+len(kind.Relations))
	for _, c := range cols {
		selected = append(selected, "t."+c)
	}
	var joins strings.Builder
	for _, rel := range kind.Relations {
		alias := "r_" + rel.Name
		selected = append(selected, fmt.Sprintf("CASE WHEN %s.id IS NULL THEN NULL ELSE to_jsonb(%s.*) END AS %s", alias, alias, rel.Name))
		fmt.Fprintf(&joins, " LEFT JOIN %s %s ON %s.id = t.%s", rel.Table, alias, alias, rel.ForeignKey)
	}
	r.selectSQL = fmt.Sprintf("SELECT %s FROM %s t%s", strings.Join(selected, ", "), kind.Table, joins.String())

	direction := "ASC"
	if kind.Descending {
		direction = "DESC"
	}
	r.orderSQL = fmt.Sprintf(" ORDER BY t.%s %s", kind.OrderBy, direction)

	return r
}

func (r *entityRepo[T]) Kind() *Kind[T] {
	return r.kind
}

func (r *entityRepo[T]) GetAll(ctx context.Context) ([]*T, error) {
	return r.list(ctx, "get_all", r.selectSQL+r.orderSQL)
}

func (r *entityRepo[T]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	query := r.selectSQL + " WHERE t.id = $1"
	entity, err := r.scan(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, &FetchError{Kind: r.kind.Name, Op: "get_by_id", Err: err}
	}
	return entity, nil
}

func (r *entityRepo[T]) Search(ctx context.Context, query string) ([]*T, error) {
	query = strings.TrimSpace(query)
	if query == "" || len(r.kind.SearchColumns) == 0 {
		all, err := r.GetAll(ctx)
		if err != nil {
			return nil, err
		}
		if r.kind.SearchLimit > 0 && len(all) > r.kind.SearchLimit {
			all = all[:r.kind.SearchLimit]
		}
		return all, nil
	}

	conds := make([]string, len(r.kind.SearchColumns))
	for i, c := range r.kind.SearchColumns {
		conds[i] = fmt.Sprintf("t.%s ILIKE $1", c)
	}
	sql := r.selectSQL + " WHERE (" + strings.Join(conds, " OR ") + ")" + r.orderSQL
	if r.kind.SearchLimit > 0 {
		sql += fmt.Sprintf(" LIMIT %d", r.kind.SearchLimit)
	}
	return r.list(ctx, "search", sql, "%"+escapeLike(query)+"%")
}

func (r *entityRepo[T]) Create(ctx context.Context, fields models.Fields) (*T, error) {
	if err := r.kind.ValidateRequired(fields); err != nil {
		return nil, err
	}
	values, err := r.kind.normalize(fields)
	if err != nil {
		return nil, err
	}

	names := sortedKeys(values)
	args := make([]any, 0, len(names))
	placeholders := make([]string, 0, len(names)+2)
	for i, name := range names {
		args = append(args, values[name])
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+1))
	}
	names = append(names, "created_at", "updated_at")
	placeholders = append(placeholders, "NOW()", "NOW()")

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		r.kind.Table, strings.Join(names, ", "), strings.Join(placeholders, ", "), r.returning)

	entity := new(T)
	if err := r.db.QueryRow(ctx, query, args...).Scan(r.kind.Targets(entity)...); err != nil {
		return nil, newPersistError(r.kind.Name, "create", err)
	}
	return entity, nil
}

func (r *entityRepo[T]) Update(ctx context.Context, id uuid.UUID, fields models.Fields) (*T, error) {
	for _, name := range r.kind.Required {
		if v, ok := fields[name]; ok && blank(v) {
			return nil, &ValidationError{Kind: r.kind.Name, Field: name, Message: "cannot be cleared"}
		}
	}
	values, err := r.kind.normalize(fields)
	if err != nil {
		return nil, err
	}

	names := sortedKeys(values)
	args := make([]any, 0, len(names)+1)
	sets := make([]string, 0, len(names)+1)
	for i, name := range names {
		args = append(args, values[name])
		sets = append(sets, fmt.Sprintf("%s = $%d", name, i+1))
	}
	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		r.kind.Table, strings.Join(sets, ", "), len(args), r.returning)

	entity := new(T)
	if err := r.db.QueryRow(ctx, query, args...).Scan(r.kind.Targets(entity)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound(r.kind.Name, "update")
		}
		return nil, newPersistError(r.kind.Name, "update", err)
	}
	return entity, nil
}

func (r *entityRepo[T]) Delete(ctx context.Context, id uuid.UUID) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", r.kind.Table)
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return newPersistError(r.kind.Name, "delete", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound(r.kind.Name, "delete")
	}
	return nil
}

func (r *entityRepo[T]) list(ctx context.Context, op, query string, args ...any) ([]*T, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, &FetchError{Kind: r.kind.Name, Op: op, Err: err}
	}
	defer rows.Close()

	entities := make([]*T, 0)
	for rows.Next() {
		entity, err := r.scan(rows)
		if err != nil {
			return nil, &FetchError{Kind: r.kind.Name, Op: op, Err: err}
		}
		entities = append(entities, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, &FetchError{Kind: r.kind.Name, Op: op, Err: err}
	}
	return entities, nil
}

func (r *entityRepo[T]) scan(row pgx.Row) (*T, error) {
	entity := new(T)
	targets := r.kind.Targets(entity)
	related := make([][]byte, len(r.kind.Relations))
	for i := range related {
		targets = append(targets, &related[i])
	}
	if err := row.Scan(targets...); err != nil {
		return nil, err
	}
	for i, rel := range r.kind.Relations {
		if err := rel.attach(entity, related[i]); err != nil {
			return nil, err
		}
	}
	return entity, nil
}

func sortedKeys(fields models.Fields) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
