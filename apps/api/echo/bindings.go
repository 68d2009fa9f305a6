package echoapi

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/masomo-lms/portal/core"
)

var orderingParam = "ordering"

type Ordering struct {
	Orderings []core.Ordering
}

// Bind parses `?ordering=field,-other`. Fields not in allowed are rejected.
func (ord *Ordering) Bind(ctx echo.Context, allowed []string) error {
	data := ctx.QueryParams()
	if len(data) == 0 {
		return nil
	}
	val, ok := data[orderingParam]
	if !ok || len(val) == 0 || val[0] == "" {
		return nil
	}

	for _, field := range strings.Split(val[0], ",") {
		field = strings.TrimSpace(field)
		descending := strings.HasPrefix(field, "-")
		if descending {
			field = field[1:] // drop "-"
		}
		if !contains(allowed, field) {
			return core.NewValidationError(nil, core.FieldError{
				Field: orderingParam,
				Error: "cannot order by " + strings.TrimSpace(field) + "; allowed: " + strings.Join(allowed, ", "),
			})
		}
		ord.Orderings = append(ord.Orderings, core.Ordering{Field: field, Ascending: !descending})
	}
	return nil
}

func contains(vals []string, s string) bool {
	for _, v := range vals {
		if v == s {
			return true
		}
	}
	return false
}
