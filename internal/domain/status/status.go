// Package status owns the service order status vocabulary.
//
// A status has two projections: the human label shown in lists and the
// looser filter label used by the search form. Both are explicit tables keyed
// by Code; they are not interchangeable strings.
package status

import (
	"fmt"
	"strings"

	"mecanica_os/internal/domain"
)

type Code string

const (
	Request        Code = "request"
	PendingProduct Code = "pending_product"
	Budget         Code = "budget"
	InProgress     Code = "in_progress"
	Completed      Code = "completed"
	Canceled       Code = "canceled"
)

// UnknownLabel is shown for codes outside the vocabulary.
const UnknownLabel = "—"

// FilterAll is the filter label meaning "no status filter".
const FilterAll = "todos"

var all = []Code{Request, PendingProduct, Budget, InProgress, Completed, Canceled}

var labels = map[Code]string{
	Request:        "Solicitação",
	PendingProduct: "Pendente de Produto",
	Budget:         "Orçamento",
	InProgress:     "Em Progresso",
	Completed:      "Concluído",
	Canceled:       "Cancelado",
}

var filterLabels = map[string]Code{
	"analise":          Request,
	"pendente-produto": PendingProduct,
	"pendente":         Budget,
	"emprogresso":      InProgress,
	"concluido":        Completed,
	"cancelado":        Canceled,
}

// All returns the canonical codes in workflow order.
func All() []Code {
	out := make([]Code, len(all))
	copy(out, all)
	return out
}

// LabelOf never fails: unknown codes get UnknownLabel.
func LabelOf(c Code) string {
	if l, ok := labels[c]; ok {
		return l
	}
	return UnknownLabel
}

func (c Code) Label() string { return LabelOf(c) }

func (c Code) Valid() bool {
	_, ok := labels[c]
	return ok
}

// Terminal reports whether the order no longer accepts edits.
func (c Code) Terminal() bool {
	return c == Completed || c == Canceled
}

// Validate is applied before a status is persisted.
func Validate(c Code) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidStatus, string(c))
	}
	return nil
}

// CodeFromFilterLabel maps a search-form label to a canonical code.
// ok is false for an empty label and for FilterAll: the caller must omit the
// status key entirely. A label that is already a canonical code is accepted
// as-is; anything else fails with ErrInvalidStatus.
func CodeFromFilterLabel(filterLabel string) (code Code, ok bool, err error) {
	l := strings.ToLower(strings.TrimSpace(filterLabel))
	if l == "" || l == FilterAll {
		return "", false, nil
	}
	if c, found := filterLabels[l]; found {
		return c, true, nil
	}
	if c := Code(l); c.Valid() {
		return c, true, nil
	}
	return "", false, fmt.Errorf("%w: unknown filter label %q", domain.ErrInvalidStatus, filterLabel)
}

// FilterLabelOf is the inverse projection, used to render the search form.
func FilterLabelOf(c Code) (string, bool) {
	for l, code := range filterLabels {
		if code == c {
			return l, true
		}
	}
	return "", false
}
