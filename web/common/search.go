package common

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Grid search plumbing shared by the list endpoints. Field names arrive as
// the JSON names the console uses; each endpoint supplies its own fieldMap
// to translate them to columns, so nothing user-supplied reaches the SQL.

type Sort struct {
	Field string `json:"field"`
	Dir   string `json:"dir"`
}

type Filter struct {
	Field    string      `json:"field"`
	Operator string      `json:"operator"`
	Value    interface{} `json:"value"`
}

type FilterGroup struct {
	Logic   string   `json:"logic"` // "and" or "or"
	Filters []Filter `json:"filters"`
}

func ApplyFilterGroup(query *gorm.DB, fieldMap map[string]string, group *FilterGroup) *gorm.DB {
	if group == nil || len(group.Filters) == 0 {
		return query
	}

	logic := strings.ToLower(group.Logic)
	if logic != "and" && logic != "or" {
		logic = "and" // default to AND
	}

	var conditions []string
	var values []interface{}

	for _, f := range group.Filters {
		dbField, ok := fieldMap[f.Field]
		if !ok {
			continue
		}

		var condition string
		switch strings.ToLower(f.Operator) {
		case "eq":
			condition = fmt.Sprintf("%s = ?", dbField)
			values = append(values, f.Value)
		case "neq":
			condition = fmt.Sprintf("%s != ?", dbField)
			values = append(values, f.Value)
		case "gt":
			condition = fmt.Sprintf("%s > ?", dbField)
			values = append(values, f.Value)
		case "gte":
			condition = fmt.Sprintf("%s >= ?", dbField)
			values = append(values, f.Value)
		case "lt":
			condition = fmt.Sprintf("%s < ?", dbField)
			values = append(values, f.Value)
		case "lte":
			condition = fmt.Sprintf("%s <= ?", dbField)
			values = append(values, f.Value)
		case "contains":
			condition = fmt.Sprintf("%s LIKE ?", dbField)
			values = append(values, fmt.Sprintf("%%%v%%", f.Value))
		case "in":
			condition = fmt.Sprintf("%s IN ?", dbField)
			values = append(values, f.Value)
		default:
			continue
		}

		conditions = append(conditions, condition)
	}

	if len(conditions) == 0 {
		return query
	}

	if logic == "or" {
		return query.Where(strings.Join(conditions, " OR "), values...)
	}
	for i, condition := range conditions {
		query = query.Where(condition, values[i])
	}
	return query
}

func ApplySorts(query *gorm.DB, fieldMap map[string]string, sorts []Sort, fallback string) *gorm.DB {
	applied := false
	for _, s := range sorts {
		dbField, ok := fieldMap[s.Field]
		if !ok {
			continue
		}
		direction := "ASC"
		if strings.EqualFold(s.Dir, "desc") {
			direction = "DESC"
		}
		query = query.Order(fmt.Sprintf("%s %s", dbField, direction))
		applied = true
	}
	if !applied && fallback != "" {
		query = query.Order(fallback)
	}
	return query
}
