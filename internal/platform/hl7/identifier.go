// Package hl7 parses the HL7 composite encodings carried inside XDS
// metadata: CX patient identifiers, XCN person identifiers, and the
// pipe-tagged PID segments of the sourcePatientInfo slot.
package hl7

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrMalformedIdentifier is returned when a composite identifier is
	// missing a required delimiter.
	ErrMalformedIdentifier = errors.New("malformed composite identifier")

	// ErrUnsupportedGender is returned for PID-8 codes other than M or F.
	ErrUnsupportedGender = errors.New("unsupported gender code, only male or female are accepted")
)

// CX is a decomposed HL7 composite patient identifier,
// e.g. "889^^^Good Health Hospital&1.2.4&ISO".
type CX struct {
	ID                 string
	AssigningAuthority string
}

// ParseCX decodes a CX-encoded patient identifier. Ampersand escapes are
// normalized before splitting: the id is everything before the first caret
// and the assigning authority sits between the first and last ampersand.
func ParseCX(raw string) (CX, error) {
	raw = strings.ReplaceAll(raw, "&amp;", "&")

	caret := strings.Index(raw, "^")
	if caret < 0 {
		return CX{}, fmt.Errorf("%w: no component separator in %q", ErrMalformedIdentifier, raw)
	}
	first := strings.Index(raw, "&")
	last := strings.LastIndex(raw, "&")
	if first < 0 || first == last {
		return CX{}, fmt.Errorf("%w: no assigning authority in %q", ErrMalformedIdentifier, raw)
	}

	return CX{
		ID:                 raw[:caret],
		AssigningAuthority: raw[first+1 : last],
	}, nil
}

// XCN is a decomposed HL7 extended person identifier,
// e.g. "pro111^Dopplemeyer^Sherry^^^Dr".
type XCN struct {
	ID         string
	FamilyName string
	GivenName  string
	MiddleName string
	Suffix     string
	Prefix     string
	Degree     string
}

// ParseXCN decodes an XCN-encoded person identifier. Missing trailing
// components are treated as absent, never as an error.
func ParseXCN(raw string) XCN {
	parts := strings.Split(raw, "^")
	get := func(i int) string {
		if i < len(parts) {
			return parts[i]
		}
		return ""
	}
	return XCN{
		ID:         get(0),
		FamilyName: get(1),
		GivenName:  get(2),
		MiddleName: get(3),
		Suffix:     get(4),
		Prefix:     get(5),
		Degree:     get(6),
	}
}

// PersonName holds the name components of a PID-5 payload.
type PersonName struct {
	FamilyName string
	GivenName  string
	MiddleName string
	Suffix     string
	Prefix     string
	Degree     string
}

// Address holds the components of a PID-11 payload.
type Address struct {
	Address1      string
	Address2      string
	CityVillage   string
	StateProvince string
	PostalCode    string
	Country       string
}

// SourcePatientInfo is the demographic payload of the sourcePatientInfo
// slot. The source patient id (PID-3) is ignored in favour of the
// enterprise patient id carried by the patientId external identifier.
type SourcePatientInfo struct {
	Name      *PersonName
	BirthDate *time.Time
	Gender    string
	Address   *Address

	// UnknownTags collects values with unrecognized PID tags so callers
	// can log them; they are never an error.
	UnknownTags []string
}

const birthDateLayout = "20060102"

// ParseSourcePatientInfo decodes the pipe-tagged PID segments of a
// sourcePatientInfo slot value list. Gender codes other than M/F fail with
// ErrUnsupportedGender; accepted codes are kept verbatim.
func ParseSourcePatientInfo(values []string) (*SourcePatientInfo, error) {
	info := &SourcePatientInfo{}

	for _, val := range values {
		switch {
		case strings.HasPrefix(val, "PID-3|"):
			// source patient id, superseded by the enterprise patient id

		case strings.HasPrefix(val, "PID-5|"):
			name := parsePersonName(strings.TrimPrefix(val, "PID-5|"))
			info.Name = &name

		case strings.HasPrefix(val, "PID-7|"):
			raw := strings.TrimPrefix(val, "PID-7|")
			dob, err := time.Parse(birthDateLayout, raw)
			if err != nil {
				return nil, fmt.Errorf("parse birth date %q: %w", raw, err)
			}
			info.BirthDate = &dob

		case strings.HasPrefix(val, "PID-8|"):
			gender := strings.TrimPrefix(val, "PID-8|")
			switch strings.ToUpper(gender) {
			case "M", "F":
				info.Gender = gender
			default:
				return nil, fmt.Errorf("%w: %q", ErrUnsupportedGender, gender)
			}

		case strings.HasPrefix(val, "PID-11|"):
			addr := parseAddress(strings.TrimPrefix(val, "PID-11|"))
			info.Address = &addr

		default:
			info.UnknownTags = append(info.UnknownTags, val)
		}
	}

	return info, nil
}

func parsePersonName(raw string) PersonName {
	parts := strings.Split(raw, "^")
	get := func(i int) string {
		if i < len(parts) {
			return parts[i]
		}
		return ""
	}
	return PersonName{
		FamilyName: get(0),
		GivenName:  get(1),
		MiddleName: get(2),
		Suffix:     get(3),
		Prefix:     get(4),
		Degree:     get(5),
	}
}

func parseAddress(raw string) Address {
	parts := strings.Split(raw, "^")
	get := func(i int) string {
		if i < len(parts) {
			return parts[i]
		}
		return ""
	}
	return Address{
		Address1:      get(0),
		Address2:      get(1),
		CityVillage:   get(2),
		StateProvince: get(3),
		PostalCode:    get(4),
		Country:       get(5),
	}
}
