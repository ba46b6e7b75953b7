package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSalaryQueryRange(t *testing.T) {
	predicate, ok := parseSalaryQuery("90000-100000")
	require.True(t, ok)

	// Число внутри диапазона
	assert.True(t, predicate("90000"))
	assert.True(t, predicate("95000"))
	assert.True(t, predicate("100000"))

	// Дословное совпадение диапазона
	assert.True(t, predicate("90000-100000"))

	// Мимо
	assert.False(t, predicate("89999"))
	assert.False(t, predicate("100001"))
	assert.False(t, predicate("80000-110000"))
	assert.False(t, predicate("negotiable"))
	assert.False(t, predicate(""))
}

func TestParseSalaryQuerySingleNumber(t *testing.T) {
	predicate, ok := parseSalaryQuery("90000")
	require.True(t, ok)

	assert.True(t, predicate("90000"))
	assert.True(t, predicate("90000-100000"))
	assert.True(t, predicate("80000-90000"))
	// Совпадение по подстроке, без разбора числа
	assert.True(t, predicate("1900000"))

	assert.False(t, predicate("95000"))
	assert.False(t, predicate(""))
}

func TestParseSalaryQueryInvalid(t *testing.T) {
	for _, query := range []string{"abc", "100k", "100-", "-100", "100-200-300", "100 - 200", ""} {
		_, ok := parseSalaryQuery(query)
		assert.False(t, ok, "запрос %q не должен разбираться", query)
	}
}
