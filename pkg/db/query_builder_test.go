package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSelectBasic(t *testing.T) {
	query, args := NewBuilder("products").BuildSelect()
	assert.Equal(t, "SELECT * FROM products", query)
	assert.Empty(t, args)
}

func TestBuildSelectWithColumns(t *testing.T) {
	query, _ := NewBuilder("products").Select("name", "price").BuildSelect()
	assert.Equal(t, "SELECT name, price FROM products", query)
}

func TestBuildSelectDistinct(t *testing.T) {
	query, _ := NewBuilder("customers").Select("email").Distinct().BuildSelect()
	assert.Equal(t, "SELECT DISTINCT email FROM customers", query)
}

func TestBuildSelectWithConditions(t *testing.T) {
	query, args := NewBuilder("products").
		Where("quantity", GreaterThan, 0).
		Where("price", LessThanOrEqual, 100.0).
		BuildSelect()

	assert.Equal(t, "SELECT * FROM products WHERE quantity > ? AND price <= ?", query)
	assert.Equal(t, []interface{}{0, 100.0}, args)
}

func TestBuildSelectWithOrCondition(t *testing.T) {
	query, args := NewBuilder("products").
		Where("name", Like, "%Hammer%").
		OrWhere("name", Like, "%Schrauben%").
		BuildSelect()

	assert.Equal(t, "SELECT * FROM products WHERE name LIKE ? OR name LIKE ?", query)
	assert.Len(t, args, 2)
}

func TestBuildSelectOrderLimitOffset(t *testing.T) {
	query, _ := NewBuilder("products").
		OrderBy("price", true).
		OrderBy("name", false).
		Limit(10).
		Offset(20).
		BuildSelect()

	assert.Equal(t, "SELECT * FROM products ORDER BY price DESC, name ASC LIMIT 10 OFFSET 20", query)
}

func TestBuildSelectNegativeLimitIgnored(t *testing.T) {
	query, _ := NewBuilder("products").Limit(-5).Offset(-1).BuildSelect()
	assert.Equal(t, "SELECT * FROM products", query)
}

func TestBuildWhere(t *testing.T) {
	cond, args := NewBuilder("products").
		Where("name", Like, "%Hammer%").
		BuildWhere()

	assert.Equal(t, "name LIKE ?", cond)
	assert.Equal(t, []interface{}{"%Hammer%"}, args)
}

func TestBuildWhereEmpty(t *testing.T) {
	cond, args := NewBuilder("products").BuildWhere()
	assert.Empty(t, cond)
	assert.Nil(t, args)
}

func TestBuildWhereInExpansion(t *testing.T) {
	cond, args := NewBuilder("products").
		Where("product_id", In, []uint{1, 2, 3}).
		BuildWhere()

	assert.Equal(t, "product_id IN (?, ?, ?)", cond)
	assert.Len(t, args, 3)
}

func TestBuildWhereEmptyIn(t *testing.T) {
	cond, args := NewBuilder("products").
		Where("product_id", In, []uint{}).
		BuildWhere()

	assert.Equal(t, "1 = 0", cond)
	assert.Empty(t, args)

	cond, _ = NewBuilder("products").
		Where("product_id", NotIn, []uint{}).
		BuildWhere()
	assert.Equal(t, "1 = 1", cond)
}

func TestBuildWhereNullOperators(t *testing.T) {
	cond, args := NewBuilder("customers").
		Where("phone", IsNull, nil).
		BuildWhere()

	assert.Equal(t, "phone IS NULL", cond)
	assert.Empty(t, args)
}

func TestBuildWhereBetween(t *testing.T) {
	cond, args := NewBuilder("products").
		Where("price", Between, []float64{10, 50}).
		BuildWhere()

	assert.Equal(t, "price BETWEEN ? AND ?", cond)
	assert.Equal(t, []interface{}{10.0, 50.0}, args)
}

func TestBuildWhereBetweenWrongArity(t *testing.T) {
	cond, args := NewBuilder("products").
		Where("price", Between, []float64{10}).
		BuildWhere()

	assert.Equal(t, "1 = 0", cond)
	assert.Empty(t, args)
}

func TestBuildInsert(t *testing.T) {
	query, argCount := NewBuilder("products").BuildInsert([]string{"name", "price", "quantity"})
	assert.Equal(t, "INSERT INTO products (name, price, quantity) VALUES (?, ?, ?)", query)
	assert.Equal(t, 3, argCount)
}

func TestBuildUpdate(t *testing.T) {
	query, argCount := NewBuilder("products").BuildUpdate([]string{"price", "quantity"}, "product_id")
	assert.Equal(t, "UPDATE products SET price = ?, quantity = ? WHERE product_id = ?", query)
	assert.Equal(t, 3, argCount)
}

func TestBuildDelete(t *testing.T) {
	query := NewBuilder("customers").BuildDelete("customer_id")
	assert.Equal(t, "DELETE FROM customers WHERE customer_id = ?", query)
}
