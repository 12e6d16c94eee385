package shared

import (
	"context"
	"fmt"
	"math"
	"reflect"
	"stay/shared/cache"
	"stay/shared/constant"
	"stay/shared/dto"
	"stay/shared/timezone"

	"github.com/rs/zerolog/log"
)

func CalculateTotalPage(total, limit int) (res int) {
	if total <= 0 || limit <= 0 {
		return 0
	}

	return int(math.Ceil(float64(total) / float64(limit)))
}

// TransformFields converts the populated fields of a request struct into a map of updated
// columns keyed by their db tag. Nil pointers and zero values are skipped, pointers are
// dereferenced so an explicit zero such as a price of 0 is still written.
func TransformFields(data any) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		if field.Kind() == reflect.Pointer {
			if field.IsNil() {
				continue
			}

			updatedFields[fieldName] = field.Elem().Interface()

			continue
		}

		if field.IsZero() {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// FilterByReference selects documents whose reference list field contains id.
// An empty id selects everything.
func FilterByReference(id, field, table string) dto.FilterGroup {
	if id == constant.Empty {
		return dto.FilterGroup{}
	}

	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    field,
				Value:    id,
				Operator: dto.FilterOperatorContains,
				Table:    table,
			},
		},
	}
}

func BuildCacheKey(prefix, id string) string {
	return fmt.Sprintf("%s:%s", prefix, id)
}

// BuildCacheKeyWithQuery derives a list cache key from the page window and the filter.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	key := fmt.Sprintf("%s:page:%d:limit:%d", prefix, params.Page, params.Limit)

	if !filter.IsEmpty() {
		key = fmt.Sprintf("%s:filter:%v", key, filter.GetBSON())
	}

	return key
}

// InvalidateCaches removes every key starting with prefix.
func InvalidateCaches(ctx context.Context, c cache.RedisCache, prefix string) {
	if err := c.Clear(ctx, prefix+"*"); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
