package db

import (
	"fmt"
	"reflect"
	"strings"
)

// Query builder for the parameterized statements the managers issue.
// Values are always bound through placeholders.
//
// SECURITY: Table and column names are NOT escaped. Only pass validated,
// trusted identifiers - never user input.

// Operator represents SQL comparison operators
type Operator string

const (
	Equal              Operator = "="
	NotEqual           Operator = "!="
	GreaterThan        Operator = ">"
	GreaterThanOrEqual Operator = ">="
	LessThan           Operator = "<"
	LessThanOrEqual    Operator = "<="
	Like               Operator = "LIKE"
	NotLike            Operator = "NOT LIKE"
	In                 Operator = "IN"
	NotIn              Operator = "NOT IN"
	IsNull             Operator = "IS NULL"
	IsNotNull          Operator = "IS NOT NULL"
	Between            Operator = "BETWEEN"
)

// LogicalOperator for combining conditions
type LogicalOperator string

const (
	And LogicalOperator = "AND"
	Or  LogicalOperator = "OR"
)

// Condition represents a single WHERE clause condition
type Condition struct {
	Field    string
	Operator Operator
	Value    interface{}

	// connective joins this condition to the previous one
	connective LogicalOperator
}

// Builder helps build parameterized SQL queries
type Builder struct {
	table      string
	selectCols []string
	distinct   bool
	conditions []Condition
	orderBy    []string
	limit      int
	offset     int
}

// NewBuilder creates a new query builder for the given table
func NewBuilder(table string) *Builder {
	return &Builder{
		table:      table,
		selectCols: []string{"*"},
	}
}

// Select sets the columns to select
func (b *Builder) Select(cols ...string) *Builder {
	b.selectCols = cols
	return b
}

// Distinct enables DISTINCT selection
func (b *Builder) Distinct() *Builder {
	b.distinct = true
	return b
}

// Where adds a condition joined with AND
func (b *Builder) Where(field string, operator Operator, value interface{}) *Builder {
	b.conditions = append(b.conditions, Condition{
		Field:      field,
		Operator:   operator,
		Value:      value,
		connective: And,
	})
	return b
}

// OrWhere adds a condition joined with OR
func (b *Builder) OrWhere(field string, operator Operator, value interface{}) *Builder {
	b.conditions = append(b.conditions, Condition{
		Field:      field,
		Operator:   operator,
		Value:      value,
		connective: Or,
	})
	return b
}

// OrderBy appends an ORDER BY column
func (b *Builder) OrderBy(field string, desc bool) *Builder {
	direction := "ASC"
	if desc {
		direction = "DESC"
	}
	b.orderBy = append(b.orderBy, field+" "+direction)
	return b
}

// Limit sets the LIMIT clause. Negative values are normalized to 0 (no limit).
func (b *Builder) Limit(limit int) *Builder {
	if limit < 0 {
		limit = 0
	}
	b.limit = limit
	return b
}

// Offset sets the OFFSET clause. Negative values are normalized to 0.
func (b *Builder) Offset(offset int) *Builder {
	if offset < 0 {
		offset = 0
	}
	b.offset = offset
	return b
}

// BuildSelect builds the complete SELECT statement with its arguments
func (b *Builder) BuildSelect() (string, []interface{}) {
	var query strings.Builder
	var args []interface{}

	query.WriteString("SELECT ")
	if b.distinct {
		query.WriteString("DISTINCT ")
	}
	query.WriteString(strings.Join(b.selectCols, ", "))
	query.WriteString(" FROM ")
	query.WriteString(b.table)

	if whereSQL, whereArgs := b.BuildWhere(); whereSQL != "" {
		query.WriteString(" WHERE ")
		query.WriteString(whereSQL)
		args = append(args, whereArgs...)
	}

	if len(b.orderBy) > 0 {
		query.WriteString(" ORDER BY ")
		query.WriteString(strings.Join(b.orderBy, ", "))
	}

	if b.limit > 0 {
		query.WriteString(fmt.Sprintf(" LIMIT %d", b.limit))
	}
	if b.offset > 0 {
		query.WriteString(fmt.Sprintf(" OFFSET %d", b.offset))
	}

	return query.String(), args
}

// BuildWhere builds just the WHERE clause body with its arguments, for use
// with query APIs that accept a condition fragment. Returns "" when no
// conditions were added.
func (b *Builder) BuildWhere() (string, []interface{}) {
	if len(b.conditions) == 0 {
		return "", nil
	}

	var clause strings.Builder
	var args []interface{}

	for i, cond := range b.conditions {
		condSQL, condArgs := buildCondition(cond)
		if i > 0 {
			clause.WriteString(" " + string(cond.connective) + " ")
		}
		clause.WriteString(condSQL)
		args = append(args, condArgs...)
	}

	return clause.String(), args
}

// BuildInsert builds an INSERT statement for the given columns and returns
// the statement plus the expected number of bind arguments
func (b *Builder) BuildInsert(columns []string) (string, int) {
	placeholders := make([]string, len(columns))
	for i := range placeholders {
		placeholders[i] = "?"
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		b.table,
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
	)
	return query, len(columns)
}

// BuildUpdate builds an UPDATE statement setting the given columns, keyed
// by whereField, and returns the statement plus the expected number of
// bind arguments (set values followed by the key)
func (b *Builder) BuildUpdate(columns []string, whereField string) (string, int) {
	assignments := make([]string, len(columns))
	for i, col := range columns {
		assignments[i] = col + " = ?"
	}

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE %s = ?",
		b.table,
		strings.Join(assignments, ", "),
		whereField,
	)
	return query, len(columns) + 1
}

// BuildDelete builds a DELETE statement keyed by whereField
func (b *Builder) BuildDelete(whereField string) string {
	return fmt.Sprintf("DELETE FROM %s WHERE %s = ?", b.table, whereField)
}

// buildCondition builds SQL for a single condition
func buildCondition(cond Condition) (string, []interface{}) {
	switch cond.Operator {
	case IsNull, IsNotNull:
		return fmt.Sprintf("%s %s", cond.Field, cond.Operator), nil
	case In, NotIn:
		return buildInCondition(cond)
	case Between:
		return buildBetweenCondition(cond)
	default:
		return fmt.Sprintf("%s %s ?", cond.Field, cond.Operator), []interface{}{cond.Value}
	}
}

// buildInCondition expands IN/NOT IN values into placeholders
func buildInCondition(cond Condition) (string, []interface{}) {
	v := reflect.ValueOf(cond.Value)
	if cond.Value == nil || (v.Kind() != reflect.Slice && v.Kind() != reflect.Array) || v.Len() == 0 {
		// Nothing to match against: IN never matches, NOT IN always does
		if cond.Operator == In {
			return "1 = 0", nil
		}
		return "1 = 1", nil
	}

	placeholders := make([]string, v.Len())
	args := make([]interface{}, v.Len())
	for i := 0; i < v.Len(); i++ {
		placeholders[i] = "?"
		args[i] = v.Index(i).Interface()
	}

	sql := fmt.Sprintf("%s %s (%s)", cond.Field, cond.Operator, strings.Join(placeholders, ", "))
	return sql, args
}

// buildBetweenCondition builds a BETWEEN condition from a two-element slice
func buildBetweenCondition(cond Condition) (string, []interface{}) {
	if cond.Value == nil {
		return "1 = 0", nil
	}

	v := reflect.ValueOf(cond.Value)
	if (v.Kind() != reflect.Slice && v.Kind() != reflect.Array) || v.Len() != 2 {
		// BETWEEN requires exactly two bounds; emit a condition that never matches
		return "1 = 0", nil
	}

	sql := fmt.Sprintf("%s %s ? AND ?", cond.Field, cond.Operator)
	return sql, []interface{}{v.Index(0).Interface(), v.Index(1).Interface()}
}
