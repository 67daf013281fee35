package vocabulary

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/polyglot-backend/internal/domain"
	"github.com/heartmarshall/polyglot-backend/internal/listview"
)

// ToggleInput is a glossary item the user wants to bookmark or un-bookmark.
type ToggleInput struct {
	Word          string
	Meaning       string
	Pronunciation *string
	Language      domain.Language
}

func (i ToggleInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Word) == "" {
		errs = append(errs, domain.FieldError{Field: "word", Message: "required"})
	}
	if !i.Language.IsValid() {
		errs = append(errs, domain.FieldError{Field: "language", Message: "must be one of ko, th, en"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput selects one page of saved words.
type ListInput struct {
	Language domain.Language
	Search   string
	Column   domain.SortColumn
	Order    domain.SortOrder
	Page     int
	PageSize int
}

func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if !i.Language.IsValid() {
		errs = append(errs, domain.FieldError{Field: "language", Message: "must be one of ko, th, en"})
	}
	if i.Column != "" && !i.Column.IsValid() {
		errs = append(errs, domain.FieldError{Field: "sort", Message: "unknown column"})
	}
	if i.Order != "" && !i.Order.IsValid() {
		errs = append(errs, domain.FieldError{Field: "order", Message: "must be asc or desc"})
	}
	if i.PageSize < 0 || i.PageSize > MaxPageSize {
		errs = append(errs, domain.FieldError{Field: "page_size", Message: "must be between 1 and 200"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ListInput) query() listview.Query {
	q := listview.Query{
		Search:   i.Search,
		Column:   i.Column,
		Order:    i.Order,
		Page:     i.Page,
		PageSize: i.PageSize,
	}
	if q.PageSize == 0 {
		q.PageSize = DefaultPageSize
	}
	if q.Column != "" && q.Order == "" {
		q.Order = domain.SortOrderAsc
	}
	return q
}

// DeleteManyInput lists saved words to remove.
type DeleteManyInput struct {
	IDs []uuid.UUID
}

func (i DeleteManyInput) Validate() error {
	if len(i.IDs) == 0 {
		return domain.NewValidationError("ids", "at least one id is required")
	}
	if len(i.IDs) > MaxBulkDelete {
		return domain.NewValidationError("ids", "too many ids")
	}
	for _, id := range i.IDs {
		if id == uuid.Nil {
			return domain.NewValidationError("ids", "must not contain an empty id")
		}
	}
	return nil
}
