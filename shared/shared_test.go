package shared_test

import (
	"context"
	"errors"
	"reflect"
	"stay/shared"
	"stay/shared/cache"
	"stay/shared/constant"
	"stay/shared/dto"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{
			name:     "zero total returns 0",
			total:    0,
			limit:    10,
			expected: 0,
		},
		{
			name:     "zero limit returns 0",
			total:    100,
			limit:    0,
			expected: 0,
		},
		{
			name:     "negative limit returns 0",
			total:    100,
			limit:    -5,
			expected: 0,
		},
		{
			name:     "exact division",
			total:    100,
			limit:    10,
			expected: 10,
		},
		{
			name:     "division with remainder",
			total:    101,
			limit:    10,
			expected: 11,
		},
		{
			name:     "single item",
			total:    1,
			limit:    10,
			expected: 1,
		},
		{
			name:     "limit greater than total",
			total:    5,
			limit:    10,
			expected: 1,
		},
		{
			name:     "large numbers",
			total:    1000000,
			limit:    7,
			expected: 142858,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.CalculateTotalPage(tt.total, tt.limit)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type TestStruct struct {
		Name       string `db:"name"`
		Email      string `db:"email"`
		EmptyField string `db:"empty_field"`
		NoDBTag    string
		IgnoredTag string `db:"-"`
	}

	tests := []struct {
		name     string
		data     any
		expected map[string]any
	}{
		{
			name: "struct with populated fields",
			data: TestStruct{
				Name:       "John Doe",
				Email:      "john@example.com",
				NoDBTag:    "ignored",
				IgnoredTag: "ignored",
			},
			expected: map[string]any{
				"name":  "John Doe",
				"email": "john@example.com",
			},
		},
		{
			name:     "struct with all zero values",
			data:     TestStruct{},
			expected: map[string]any{},
		},
		{
			name:     "struct with partial fields",
			data:     TestStruct{Name: "Jane Doe"},
			expected: map[string]any{"name": "Jane Doe"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.TransformFields(tt.data)

			if _, ok := result[constant.FieldModifiedAt].(time.Time); !ok {
				t.Error("expected modified_at to be a time.Time")
			}

			for key, expectedValue := range tt.expected {
				if actualValue, exists := result[key]; !exists {
					t.Errorf("expected field %s to exist", key)
				} else if !reflect.DeepEqual(actualValue, expectedValue) {
					t.Errorf("expected field %s to be %v, got %v", key, expectedValue, actualValue)
				}
			}

			for key := range result {
				if key == constant.FieldModifiedAt {
					continue
				}

				if _, expected := tt.expected[key]; !expected {
					t.Errorf("unexpected field %s in result", key)
				}
			}
		})
	}
}

func TestTransformFieldsWithPointers(t *testing.T) {
	type TestStructWithPointers struct {
		Name  *string `db:"name"`
		Count *int    `db:"count"`
		Skip  *string `db:"skip"`
	}

	name := "John"
	count := 0

	result := shared.TransformFields(TestStructWithPointers{Name: &name, Count: &count})

	assert.Equal(t, "John", result["name"])
	assert.Equal(t, 0, result["count"])
	assert.NotContains(t, result, "skip")
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID("550e8400-e29b-41d4-a716-446655440000", "id", "guests")

	expected := dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    "id",
				Value:    "550e8400-e29b-41d4-a716-446655440000",
				Operator: dto.FilterOperatorEq,
				Table:    "guests",
			},
		},
	}

	assert.Equal(t, expected, result)
}

func TestFilterByReference(t *testing.T) {
	empty := shared.FilterByReference("", "booking_ids", "guests")
	assert.True(t, empty.IsEmpty())

	result := shared.FilterByReference("b1", "booking_ids", "guests")
	assert.Len(t, result.Filters, 1)

	filter, ok := result.Filters[0].(dto.Filter)
	assert.True(t, ok)
	assert.Equal(t, dto.FilterOperatorContains, filter.Operator)
	assert.Equal(t, "booking_ids", filter.Field)
	assert.Equal(t, "b1", filter.Value)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "guest:get:g1", shared.BuildCacheKey("guest:get", "g1"))

	params := dto.QueryParams{Page: 2, Limit: 5}
	assert.Equal(t, "guest:gets:page:2:limit:5", shared.BuildCacheKeyWithQuery("guest:gets", params, dto.FilterGroup{}))

	first := shared.BuildCacheKeyWithQuery("guest:gets", params, shared.FilterByReference("b1", "booking_ids", ""))
	second := shared.BuildCacheKeyWithQuery("guest:gets", params, shared.FilterByReference("b2", "booking_ids", ""))

	assert.True(t, strings.HasPrefix(first, "guest:gets:page:2:limit:5:filter:"))
	assert.NotEqual(t, first, second)
}

type clearRecorder struct {
	cache.RedisCache
	prefixes []string
	err      error
}

func (c *clearRecorder) Clear(_ context.Context, prefix string) error {
	c.prefixes = append(c.prefixes, prefix)

	return c.err
}

func TestInvalidateCaches(t *testing.T) {
	recorder := &clearRecorder{}
	shared.InvalidateCaches(context.Background(), recorder, "guest:gets")
	assert.Equal(t, []string{"guest:gets*"}, recorder.prefixes)

	failing := &clearRecorder{err: errors.New("redis down")}
	assert.NotPanics(t, func() {
		shared.InvalidateCaches(context.Background(), failing, "booking:gets")
	})
}
