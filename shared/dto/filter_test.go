package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stay/shared/dto"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "eq with table",
			filter:    dto.Filter{Field: "id", Value: "abc", Operator: dto.FilterOperatorEq, Table: "bookings"},
			wantWhere: "bookings.id = :id",
			wantArgs:  map[string]any{"id": "abc"},
		},
		{
			name:      "in with slice",
			filter:    dto.Filter{Field: "booking_id", Value: []string{"b1", "b2"}, Operator: dto.FilterOperatorIn},
			wantWhere: "booking_id IN (:booking_id_0, :booking_id_1) ",
			wantArgs:  map[string]any{"booking_id_0": "b1", "booking_id_1": "b2"},
		},
		{
			name:      "greater eq with arg name",
			filter:    dto.Filter{ArgName: "from", Field: "check_in", Value: "2025-12-01", Operator: dto.FilterOperatorGreaterEq},
			wantWhere: "check_in >= :from",
			wantArgs:  map[string]any{"from": "2025-12-01"},
		},
		{
			name:      "unknown operator",
			filter:    dto.Filter{Field: "id", Value: "abc", Operator: "like"},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "hotel_id", Value: "h1", Operator: dto.FilterOperatorEq},
			dto.Filter{Field: "user_id", Value: "u1", Operator: dto.FilterOperatorEq},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(hotel_id = :hotel_id AND user_id = :user_id)", where)
	assert.Equal(t, map[string]any{"hotel_id": "h1", "user_id": "u1"}, args)
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	where, _ := group.GetWhereClause()

	assert.Empty(t, where)
}
