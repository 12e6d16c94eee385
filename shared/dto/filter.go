package dto

import (
	"fmt"
	"maps"
	"reflect"
	"regexp"
	"stay/shared/constant"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

const documentIDField = "_id"

const (
	FilterOperatorEq        = "eq"
	FilterOperatorLike      = "like"
	FilterOperatorIn        = "in"
	FilterOperatorNotEq     = "not_eq"
	FilterOperatorLessEq    = "less_eq"
	FilterOperatorGreaterEq = "greater_eq"
	FilterPlainQuery        = "plan"
	FilterIsNotNull         = "is_not_null"
	FilterIsNull            = "is_null"
	FilterOperatorContains  = "contains"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

type Filter struct {
	ArgName  string
	Field    string
	Value    any
	Operator string `validate:"required,oneof=eq like in not_eq less_eq greater_eq contains"`
	Table    string
}

func (f *Filter) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}

	column := f.Field
	if f.Table != "" {
		column = fmt.Sprintf("%s.%s", f.Table, f.Field)
	}

	argName := f.ArgName
	if argName == "" {
		argName = f.Field
	}

	switch f.Operator {
	case FilterOperatorEq:
		args[argName] = f.Value

		return fmt.Sprintf("%s = :%s", column, argName), args
	case FilterOperatorLike:
		args[argName] = fmt.Sprintf("%%%s%%", f.Value)

		return fmt.Sprintf("LOWER(%s) LIKE LOWER(:%s) ", column, argName), args
	case FilterOperatorIn:
		val := reflect.ValueOf(f.Value)
		vType := val.Type()

		switch vType.Kind() {
		case reflect.Array, reflect.Slice:
			named := make([]string, val.Len())

			for idx := range val.Len() {
				args[fmt.Sprintf("%s_%d", argName, idx)] = val.Index(idx).Interface()

				named[idx] = fmt.Sprintf(":%s_%d", argName, idx)
			}

			return fmt.Sprintf("%s IN (%s) ", column, strings.Join(named, ", ")), args
		default:
			return fmt.Sprintf("%s IN (%s) ", column, f.Value), args
		}
	case FilterOperatorNotEq:
		args[argName] = f.Value

		return fmt.Sprintf("%s != :%s", column, argName), args
	case FilterOperatorLessEq:
		args[argName] = f.Value

		return fmt.Sprintf("%s <= :%s", column, argName), args
	case FilterOperatorGreaterEq:
		args[argName] = f.Value

		return fmt.Sprintf("%s >= :%s", column, argName), args
	case FilterOperatorContains:
		args[argName] = f.Value

		return fmt.Sprintf(":%s = ANY(%s)", argName, column), args
	case FilterPlainQuery:
		query, _ := f.Value.(string)

		return fmt.Sprintf("(%s)", query), args
	case FilterIsNotNull:
		return column + " IS NOT NULL", args
	case FilterIsNull:
		return column + " IS NULL", args
	default:
		return "", args
	}
}

// GetBSON renders the filter as a document store predicate. Plain SQL filters have no
// document equivalent and render as nil.
func (f *Filter) GetBSON() bson.M {
	field := f.Field
	if field == constant.FieldID {
		field = documentIDField
	}

	switch f.Operator {
	case FilterOperatorEq, FilterOperatorContains:
		return bson.M{field: f.Value}
	case FilterOperatorLike:
		pattern := regexp.QuoteMeta(fmt.Sprintf("%v", f.Value))

		return bson.M{field: bson.M{"$regex": pattern, "$options": "i"}}
	case FilterOperatorIn:
		return bson.M{field: bson.M{"$in": f.Value}}
	case FilterOperatorNotEq:
		return bson.M{field: bson.M{"$ne": f.Value}}
	case FilterOperatorLessEq:
		return bson.M{field: bson.M{"$lte": f.Value}}
	case FilterOperatorGreaterEq:
		return bson.M{field: bson.M{"$gte": f.Value}}
	case FilterIsNotNull:
		return bson.M{field: bson.M{"$ne": nil}}
	case FilterIsNull:
		return bson.M{field: nil}
	default:
		return nil
	}
}

type FilterGroup struct {
	Filters  []any
	Operator string
}

func (f *FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	whereClause := []string{}

	for _, filter := range f.Filters {
		switch fill := filter.(type) {
		case Filter:
			where, arg := fill.GetWhereClause()
			whereClause = append(whereClause, where)

			maps.Copy(args, arg)
		case FilterGroup:
			where, arg := fill.GetWhereClause()
			whereClause = append(whereClause, where)

			maps.Copy(args, arg)
		}
	}

	if len(whereClause) == 0 {
		return "", args
	}

	return fmt.Sprintf("(%s)", strings.Join(whereClause, " "+f.Operator+" ")), args
}

func (f *FilterGroup) GetBSON() bson.M {
	clauses := bson.A{}

	for _, filter := range f.Filters {
		var clause bson.M

		switch fill := filter.(type) {
		case Filter:
			clause = fill.GetBSON()
		case FilterGroup:
			clause = fill.GetBSON()
		}

		if len(clause) > 0 {
			clauses = append(clauses, clause)
		}
	}

	switch len(clauses) {
	case 0:
		return bson.M{}
	case 1:
		return clauses[0].(bson.M) //nolint:forcetypeassert
	}

	if f.Operator == FilterGroupOperatorOr {
		return bson.M{"$or": clauses}
	}

	return bson.M{"$and": clauses}
}

func (f *FilterGroup) IsEmpty() bool {
	return len(f.Filters) == 0
}
