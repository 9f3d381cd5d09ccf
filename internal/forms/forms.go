// Package forms describes the two site forms and the delivery seam behind
// them. Nothing here transmits or stores anything unless a Submitter that
// does so is configured.
package forms

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind names one of the site forms.
type Kind string

const (
	KindContact Kind = "contact"
	KindApply   Kind = "apply"
)

var kindFields = map[Kind][]string{
	KindContact: {"name", "email", "topic", "message"},
	KindApply:   {"name", "email", "major", "motivation"},
}

// Kinds lists the forms in page order.
func Kinds() []Kind {
	return []Kind{KindContact, KindApply}
}

// ParseKind maps a raw form name to a Kind.
func ParseKind(value string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := kindFields[kind]; !ok {
		return "", fmt.Errorf("unknown form %q", value)
	}
	return kind, nil
}

// Fields lists the field names of the form in display order.
func (k Kind) Fields() []string {
	return append([]string(nil), kindFields[k]...)
}

// Payload is one submitted form.
type Payload struct {
	Receipt     string
	Kind        Kind
	Fields      map[string]string
	SubmittedAt time.Time
}

// NewPayload keeps only the known fields of kind, trimmed, and stamps a
// receipt id.
func NewPayload(kind Kind, values map[string]string, now time.Time) Payload {
	fields := make(map[string]string, len(kindFields[kind]))
	for _, name := range kindFields[kind] {
		fields[name] = strings.TrimSpace(values[name])
	}
	return Payload{
		Receipt:     uuid.NewString(),
		Kind:        kind,
		Fields:      fields,
		SubmittedAt: now.UTC(),
	}
}

// Submitter delivers a submitted form.
type Submitter interface {
	Submit(ctx context.Context, payload Payload) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(context.Context, Payload) error

// Submit calls f.
func (f SubmitterFunc) Submit(ctx context.Context, payload Payload) error {
	return f(ctx, payload)
}

type discard struct{}

func (discard) Submit(context.Context, Payload) error { return nil }

// Discard drops every payload.
var Discard Submitter = discard{}

// LogSubmitter records that a form arrived without logging field values.
type LogSubmitter struct {
	Logger *log.Logger
}

// Submit logs the form kind and receipt.
func (s LogSubmitter) Submit(_ context.Context, payload Payload) error {
	filled := 0
	for _, value := range payload.Fields {
		if value != "" {
			filled++
		}
	}
	logf := log.Printf
	if s.Logger != nil {
		logf = s.Logger.Printf
	}
	logf("form submitted kind=%s receipt=%s filled=%d/%d", payload.Kind, payload.Receipt, filled, len(payload.Fields))
	return nil
}
