// Package content routes decoded document payloads to pluggable content
// handlers. Every document goes to the default unstructured handler; a
// discrete handler registered for the document's type and format codes is
// invoked additionally when present.
package content

import (
	"context"

	"github.com/openhie/xds-repository/internal/domain/encounter"
	"github.com/openhie/xds-repository/internal/domain/patient"
	"github.com/openhie/xds-repository/internal/domain/provider"
)

// CodedValue pairs a code with the coding scheme it belongs to.
type CodedValue struct {
	Code   string `json:"code"`
	Scheme string `json:"scheme,omitempty"`
}

// Content is one document's decoded payload plus the codes that select its
// handlers.
type Content struct {
	UniqueID    string
	Payload     string
	TypeCode    CodedValue
	FormatCode  CodedValue
	ContentType string
}

// Handler persists document content against the clinical store. Handler
// invocations are not transactional with the entity resolvers: a failure
// here leaves already-created entities in place.
type Handler interface {
	SaveContent(ctx context.Context, pat *patient.Patient, byRole provider.ProvidersByRole, encType *encounter.EncounterType, c Content) error
}

type handlerKey struct {
	typeCode   CodedValue
	formatCode CodedValue
}

// HandlerService is the content-handler registry. The default handler is
// mandatory and returned for every type/format pair; discrete handlers are
// optional per-pair registrations.
type HandlerService struct {
	fallback Handler
	discrete map[handlerKey]Handler
}

func NewHandlerService(defaultHandler Handler) *HandlerService {
	return &HandlerService{
		fallback: defaultHandler,
		discrete: make(map[handlerKey]Handler),
	}
}

// RegisterDiscrete installs a discrete handler for a type/format pair.
func (s *HandlerService) RegisterDiscrete(typeCode, formatCode CodedValue, h Handler) {
	s.discrete[handlerKey{typeCode, formatCode}] = h
}

// DefaultHandler returns the default unstructured handler. By contract it
// is never nil.
func (s *HandlerService) DefaultHandler(typeCode, formatCode CodedValue) Handler {
	return s.fallback
}

// DiscreteHandler returns the discrete handler registered for the pair, or
// nil when none exists.
func (s *HandlerService) DiscreteHandler(typeCode, formatCode CodedValue) Handler {
	return s.discrete[handlerKey{typeCode, formatCode}]
}
