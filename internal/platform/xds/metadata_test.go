package xds

import (
	"errors"
	"testing"
)

func sampleExtrinsicObject() ExtrinsicObject {
	return ExtrinsicObject{
		ID:       "Document01",
		MimeType: "text/xml",
		Classifications: []Classification{
			{
				Scheme:             SchemeClassCode,
				NodeRepresentation: "History and Physical",
			},
			{
				Scheme:             SchemeAuthor,
				NodeRepresentation: "",
				Slots: []Slot{
					{Name: SlotAuthorPerson, Values: []string{"pro111^Dopplemeyer^Sherry"}},
					{Name: SlotAuthorRole, Values: []string{"Attending", "Primary Surgeon"}},
				},
			},
			{
				Scheme:             SchemeAuthor,
				NodeRepresentation: "",
				Slots: []Slot{
					{Name: SlotAuthorPerson, Values: []string{"pro222^Smitty^Gerald"}},
				},
			},
		},
		ExternalIdentifiers: []ExternalIdentifier{
			{Scheme: SchemePatientID, Value: "889^^^&1.2.4&ISO"},
			{Scheme: SchemeUniqueID, Value: "1.42.20130403134532.123"},
		},
		Slots: []Slot{
			{Name: SlotSourcePatientInfo, Values: []string{"PID-5|Doe^John", "PID-8|M"}},
		},
	}
}

func TestClassification(t *testing.T) {
	eo := sampleExtrinsicObject()

	t.Run("Found", func(t *testing.T) {
		c, err := eo.Classification(SchemeClassCode)
		if err != nil {
			t.Fatalf("Classification: %v", err)
		}
		if c.NodeRepresentation != "History and Physical" {
			t.Errorf("unexpected node representation %q", c.NodeRepresentation)
		}
	})

	t.Run("FirstMatchWins", func(t *testing.T) {
		c, err := eo.Classification(SchemeAuthor)
		if err != nil {
			t.Fatalf("Classification: %v", err)
		}
		m := make(SlotMap)
		for _, s := range c.Slots {
			m[s.Name] = s
		}
		if got := m.FirstValue(SlotAuthorPerson); got != "pro111^Dopplemeyer^Sherry" {
			t.Errorf("expected first author classification, got %q", got)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := eo.Classification(SchemeFormatCode)
		if !errors.Is(err, ErrClassificationNotFound) {
			t.Fatalf("expected ErrClassificationNotFound, got %v", err)
		}
	})
}

func TestClassificationSlots(t *testing.T) {
	eo := sampleExtrinsicObject()

	maps := eo.ClassificationSlots(SchemeAuthor)
	if len(maps) != 2 {
		t.Fatalf("expected 2 author instances, got %d", len(maps))
	}
	if got := maps[0].FirstValue(SlotAuthorPerson); got != "pro111^Dopplemeyer^Sherry" {
		t.Errorf("unexpected first author %q", got)
	}
	if got := maps[1].FirstValue(SlotAuthorPerson); got != "pro222^Smitty^Gerald" {
		t.Errorf("unexpected second author %q", got)
	}
	if maps[1].Has(SlotAuthorRole) {
		t.Error("second author instance should have no role slot")
	}
	if got := maps[0].Values(SlotAuthorRole); len(got) != 2 {
		t.Errorf("expected 2 role values, got %v", got)
	}

	if got := eo.ClassificationSlots(SchemeFormatCode); got != nil {
		t.Errorf("expected nil for absent scheme, got %v", got)
	}
}

func TestExternalIdentifierValue(t *testing.T) {
	eo := sampleExtrinsicObject()

	v, ok := eo.ExternalIdentifierValue(SchemePatientID)
	if !ok || v != "889^^^&1.2.4&ISO" {
		t.Errorf("unexpected patient id value %q (%v)", v, ok)
	}

	if _, ok := eo.ExternalIdentifierValue("urn:uuid:unknown"); ok {
		t.Error("expected absent scheme to report !ok")
	}
}

func TestSlotMap(t *testing.T) {
	eo := sampleExtrinsicObject()
	m := eo.SlotMap()

	if !m.Has(SlotSourcePatientInfo) {
		t.Fatal("expected sourcePatientInfo slot")
	}
	if got := m.Values(SlotSourcePatientInfo); len(got) != 2 {
		t.Errorf("expected 2 values, got %v", got)
	}
	if got := m.FirstValue("missing"); got != "" {
		t.Errorf("expected empty first value for absent slot, got %q", got)
	}
	if got := m.Values("missing"); got != nil {
		t.Errorf("expected nil values for absent slot, got %v", got)
	}
}
