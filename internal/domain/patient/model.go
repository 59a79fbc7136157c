package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient maps to the patient table. Identity is (identifier value,
// identifier type); exactly one patient may exist per identity.
type Patient struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	Gender    *string    `db:"gender" json:"gender,omitempty"`
	BirthDate *time.Time `db:"birth_date" json:"birth_date,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`

	Identifiers []PatientIdentifier `json:"identifiers,omitempty"`
	Names       []PersonName        `json:"names,omitempty"`
	Addresses   []PersonAddress     `json:"addresses,omitempty"`
}

// PatientIdentifier maps to the patient_identifier table.
type PatientIdentifier struct {
	ID               uuid.UUID `db:"id" json:"id"`
	PatientID        uuid.UUID `db:"patient_id" json:"patient_id"`
	IdentifierTypeID uuid.UUID `db:"identifier_type_id" json:"identifier_type_id"`
	Value            string    `db:"value" json:"value"`
	Location         *string   `db:"location" json:"location,omitempty"`
}

// PatientIdentifierType maps to the patient_identifier_type table. The name
// doubles as the assigning-authority string of the submitting ID scheme.
type PatientIdentifierType struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// PersonName maps to the person_name table.
type PersonName struct {
	ID         uuid.UUID `db:"id" json:"id"`
	PatientID  uuid.UUID `db:"patient_id" json:"patient_id"`
	FamilyName *string   `db:"family_name" json:"family_name,omitempty"`
	GivenName  *string   `db:"given_name" json:"given_name,omitempty"`
	MiddleName *string   `db:"middle_name" json:"middle_name,omitempty"`
	Suffix     *string   `db:"suffix" json:"suffix,omitempty"`
	Prefix     *string   `db:"prefix" json:"prefix,omitempty"`
	Degree     *string   `db:"degree" json:"degree,omitempty"`
}

// PersonAddress maps to the person_address table.
type PersonAddress struct {
	ID            uuid.UUID `db:"id" json:"id"`
	PatientID     uuid.UUID `db:"patient_id" json:"patient_id"`
	Address1      *string   `db:"address1" json:"address1,omitempty"`
	Address2      *string   `db:"address2" json:"address2,omitempty"`
	CityVillage   *string   `db:"city_village" json:"city_village,omitempty"`
	StateProvince *string   `db:"state_province" json:"state_province,omitempty"`
	PostalCode    *string   `db:"postal_code" json:"postal_code,omitempty"`
	Country       *string   `db:"country" json:"country,omitempty"`
}
