package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrSearchOrdersQueryIsNotConstructed = errors.New(
	"SearchOrdersQuery must be created via NewSearchOrdersQuery constructor",
)

// SearchCriteria are the optional staff search filters. Zero values do not filter.
type SearchCriteria struct {
	Number string
	Phone  string
	Status order.Status
	Begin  time.Time
	End    time.Time
}

// SearchOrdersQuery is the staff order search. Number and phone match by
// substring, Begin and End bound the order time inclusively.
type SearchOrdersQuery struct {
	criteria SearchCriteria
	paging   Paging

	guard guard.ConstructorGuard
}

func NewSearchOrdersQuery(criteria SearchCriteria, page, pageSize int) (SearchOrdersQuery, error) {
	if criteria.Status != order.Unknown {
		if err := criteria.Status.Validate(); err != nil {
			return SearchOrdersQuery{}, err
		}
	}
	if !criteria.Begin.IsZero() && !criteria.End.IsZero() && criteria.End.Before(criteria.Begin) {
		return SearchOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"endTime",
			errors.New("end is before begin"),
		)
	}
	paging, err := NewPaging(page, pageSize)
	if err != nil {
		return SearchOrdersQuery{}, err
	}
	return SearchOrdersQuery{criteria: criteria, paging: paging, guard: guard.NewConstructorGuard()}, nil
}

func (q SearchOrdersQuery) Validate() error {
	return q.guard.Validate(ErrSearchOrdersQueryIsNotConstructed)
}

func (q SearchOrdersQuery) Criteria() SearchCriteria { return q.criteria }
func (q SearchOrdersQuery) Paging() Paging           { return q.paging }
