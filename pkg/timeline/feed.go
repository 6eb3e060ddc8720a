// Package timeline renders acquired-plan history entries into the feed the
// client screens display. Rendering is pure: attachment URLs are resolved
// elsewhere, when an entry is actually opened.
package timeline

import (
	"time"

	"traderhub-be/internal/entity"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var brPrinter = message.NewPrinter(language.BrazilianPortuguese)

var statusLabels = map[entity.RequestStatus]string{
	entity.RequestStatusPending:  "Pendente",
	entity.RequestStatusApproved: "Aprovado",
	entity.RequestStatusExecuted: "Efetuado",
	entity.RequestStatusRefused:  "Negado - Fora do ciclo",
	entity.RequestStatusDenied:   "Negado - Sem saldo",
}

var eventLabels = map[entity.EventType]string{
	entity.EventTypeApprovalRequested: "Aprovação solicitada",
}

// Item is one rendered feed entry.
type Item struct {
	Id              uuid.UUID
	DisplayText     string
	EventType       string
	StatusLabel     string
	RequestedAmount string
	FinalAmount     string
	Origin          string
	HasAttachment   bool
	CreatedAt       time.Time
}

// StatusLabel maps a stored status onto its display label. Unmapped values
// pass through unchanged.
func StatusLabel(s entity.RequestStatus) string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// EventLabel maps an event type onto its display label, or "" when the type
// has no label of its own.
func EventLabel(t entity.EventType) string {
	return eventLabels[t]
}

// FormatBRL renders an amount in pt-BR currency notation. Nil and zero
// amounts both render as the "-" placeholder; a stored zero means the
// value was never set.
func FormatBRL(v *float64) string {
	if v == nil || *v == 0 {
		return "-"
	}
	return brPrinter.Sprintf("R$ %v", number.Decimal(*v,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// displayText picks the entry's note when present, otherwise the event
// label. Both may be empty.
func displayText(e *entity.HistoryEntry) string {
	if e.Note != "" {
		return e.Note
	}
	return EventLabel(e.EventType)
}

// hasAmount reports whether a stored amount is actually set. Zero counts
// as absent, same as FormatBRL.
func hasAmount(v *float64) bool {
	return v != nil && *v != 0
}

// suppressed reports whether an entry carries nothing worth showing: no
// display text, no amounts, no attachment.
func suppressed(e *entity.HistoryEntry) bool {
	return displayText(e) == "" &&
		!hasAmount(e.RequestedAmount) &&
		!hasAmount(e.FinalAmount) &&
		e.AttachmentRef == nil
}

// Build renders entries into feed items, dropping suppressed ones. The input
// is expected already ordered newest first; Build preserves the order.
func Build(entries []*entity.HistoryEntry) []Item {
	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		if suppressed(e) {
			continue
		}
		items = append(items, Item{
			Id:              e.Id,
			DisplayText:     displayText(e),
			EventType:       string(e.EventType),
			StatusLabel:     StatusLabel(e.Status),
			RequestedAmount: FormatBRL(e.RequestedAmount),
			FinalAmount:     FormatBRL(e.FinalAmount),
			Origin:          string(e.Origin),
			HasAttachment:   e.AttachmentRef != nil && *e.AttachmentRef != "",
			CreatedAt:       e.CreatedAt,
		})
	}
	return items
}
