package services

import (
	"regexp"
	"strconv"
	"strings"
)

// salaryRangeRe распознает диапазон вида "90000-100000".
// Якоря обязательны: "x100-200y" диапазоном не считается.
var salaryRangeRe = regexp.MustCompile(`^(\d+)-(\d+)$`)

// salaryPredicate проверяет сохраненное значение salary_expectation
// против поискового запроса.
type salaryPredicate func(stored string) bool

// parseSalaryQuery разбирает поисковое значение salary_expectation.
// Допустимы целое число и диапазон "min-max"; все остальное - ошибка.
func parseSalaryQuery(query string) (salaryPredicate, bool) {
	if m := salaryRangeRe.FindStringSubmatch(query); m != nil {
		min, _ := strconv.Atoi(m[1])
		max, _ := strconv.Atoi(m[2])

		return func(stored string) bool {
			// Точное совпадение диапазона строкой
			if stored == query {
				return true
			}
			// Либо одиночное число внутри диапазона
			n, err := strconv.Atoi(strings.TrimSpace(stored))
			if err != nil {
				return false
			}
			return n >= min && n <= max
		}, true
	}

	if _, err := strconv.Atoi(query); err == nil {
		return func(stored string) bool {
			return strings.Contains(stored, query) ||
				strings.Contains(stored, query+"-") ||
				strings.Contains(stored, "-"+query)
		}, true
	}

	return nil, false
}
