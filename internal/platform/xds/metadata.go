// Package xds models the subset of the XDS.b registry information model that
// a Document Repository actor needs: extrinsic objects (document metadata
// records), their classifications and slots, and the registry response
// envelope returned to the Document Source.
package xds

import "errors"

// ErrClassificationNotFound is returned when an expected classification
// scheme is not present on an extrinsic object. Callers must branch on it
// explicitly rather than receive a nil classification.
var ErrClassificationNotFound = errors.New("classification not found on extrinsic object")

// Classification scheme identifiers from the XDS.b registry model.
const (
	SchemeTypeCode   = "urn:uuid:f0306f51-975f-434e-a61c-c59651d33983"
	SchemeFormatCode = "urn:uuid:a09d5840-386c-46f2-b5ad-9c3699a4309d"
	SchemeClassCode  = "urn:uuid:41a5887f-8865-4c09-adf7-e362475b143a"
	SchemeAuthor     = "urn:uuid:93606bcf-9494-43ec-9b4e-a7748d1a838d"

	// External identifier schemes.
	SchemePatientID = "urn:uuid:58a6f841-87b3-4a3e-92fd-a8ffeff98427"
	SchemeUniqueID  = "urn:uuid:2e82c1f6-a085-4c72-9da3-8640a32e42ab"
)

// Well-known slot names used by the Provide and Register metadata.
const (
	SlotAuthorPerson      = "authorPerson"
	SlotAuthorRole        = "authorRole"
	SlotAuthorInstitution = "authorInstitution"
	SlotAuthorSpecialty   = "authorSpecialty"
	SlotAuthorTelecom     = "authorTelecommunication"
	SlotCodingScheme      = "codingScheme"
	SlotSourcePatientInfo = "sourcePatientInfo"
)

// Slot is a named, multi-valued metadata attribute.
type Slot struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// Classification is a coded metadata facet attached to an extrinsic object,
// tagged by its classification scheme.
type Classification struct {
	Scheme             string `json:"scheme"`
	NodeRepresentation string `json:"nodeRepresentation"`
	Slots              []Slot `json:"slots,omitempty"`
}

// ExternalIdentifier is a scheme-tagged identifier value on an extrinsic
// object, e.g. the XDSDocumentEntry.patientId or uniqueId.
type ExternalIdentifier struct {
	Scheme string `json:"scheme"`
	Value  string `json:"value"`
}

// ExtrinsicObject is a document's metadata record in the registry model.
type ExtrinsicObject struct {
	ID                  string               `json:"id"`
	MimeType            string               `json:"mimeType"`
	ObjectType          string               `json:"objectType,omitempty"`
	Classifications     []Classification     `json:"classifications,omitempty"`
	ExternalIdentifiers []ExternalIdentifier `json:"externalIdentifiers,omitempty"`
	Slots               []Slot               `json:"slots,omitempty"`
}

// SlotMap keys a classification instance's slots by slot name.
type SlotMap map[string]Slot

// Values returns the ordered value list of a named slot, or nil if the slot
// is absent.
func (m SlotMap) Values(name string) []string {
	s, ok := m[name]
	if !ok {
		return nil
	}
	return s.Values
}

// FirstValue returns the first value of a named slot, or "" if the slot is
// absent or empty.
func (m SlotMap) FirstValue(name string) string {
	v := m.Values(name)
	if len(v) == 0 {
		return ""
	}
	return v[0]
}

// Has reports whether a named slot is present.
func (m SlotMap) Has(name string) bool {
	_, ok := m[name]
	return ok
}

// Classification returns the first classification tagged with the given
// scheme. Multiple classifications of the same scheme are tolerated and the
// first match wins; absence is reported as ErrClassificationNotFound.
func (eo *ExtrinsicObject) Classification(scheme string) (*Classification, error) {
	for i := range eo.Classifications {
		if eo.Classifications[i].Scheme == scheme {
			return &eo.Classifications[i], nil
		}
	}
	return nil, ErrClassificationNotFound
}

// ClassificationSlots returns one SlotMap per classification instance of the
// given scheme, preserving document order. An instance with no slots yields
// an empty map.
func (eo *ExtrinsicObject) ClassificationSlots(scheme string) []SlotMap {
	var maps []SlotMap
	for _, c := range eo.Classifications {
		if c.Scheme != scheme {
			continue
		}
		m := make(SlotMap, len(c.Slots))
		for _, s := range c.Slots {
			m[s.Name] = s
		}
		maps = append(maps, m)
	}
	return maps
}

// ExternalIdentifierValue returns the value of the external identifier
// tagged with the given scheme.
func (eo *ExtrinsicObject) ExternalIdentifierValue(scheme string) (string, bool) {
	for _, ei := range eo.ExternalIdentifiers {
		if ei.Scheme == scheme {
			return ei.Value, true
		}
	}
	return "", false
}

// SlotMap returns the extrinsic object's own slots keyed by name.
func (eo *ExtrinsicObject) SlotMap() SlotMap {
	m := make(SlotMap, len(eo.Slots))
	for _, s := range eo.Slots {
		m[s.Name] = s
	}
	return m
}

// SubmitObjectsRequest carries the full metadata set of one submission.
type SubmitObjectsRequest struct {
	ExtrinsicObjects []ExtrinsicObject `json:"extrinsicObjects"`
}
