package directory

import (
	"strings"

	"github.com/brunohpsv/medagendar/internal/schedule"
)

// PriceType describes how a doctor charges for a consult.
type PriceType string

const (
	PriceFixed    PriceType = "fixed"
	PriceCombined PriceType = "combined"
	PriceClinic   PriceType = "clinic"
)

// Doctor is a provider record in the marketplace directory.
type Doctor struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	Specialties   []string               `json:"specialties"`
	Rating        float64                `json:"rating"`
	Reviews       int                    `json:"reviews"`
	Location      string                 `json:"location"`
	ClinicAddress string                 `json:"clinicAddress"`
	Image         string                 `json:"image"`
	Bio           string                 `json:"bio"`
	FullBio       string                 `json:"fullBio"`
	Price         int                    `json:"price"`
	PriceType     PriceType              `json:"priceType"`
	AcceptsOnline bool                   `json:"acceptsOnline"`
	Education     []string               `json:"education"`
	Schedule      []schedule.DaySchedule `json:"schedule"`
	WorkConfig    schedule.WorkConfig    `json:"workConfig"`
}

// HasSpecialty reports whether the doctor carries the exact specialty tag.
func (d Doctor) HasSpecialty(specialty string) bool {
	for _, s := range d.Specialties {
		if s == specialty {
			return true
		}
	}
	return false
}

// DayFor returns the schedule entry for the given ISO date, or nil.
func (d *Doctor) DayFor(date string) *schedule.DaySchedule {
	for i := range d.Schedule {
		if d.Schedule[i].Date == date {
			return &d.Schedule[i]
		}
	}
	return nil
}

// Search filters doctors by a free-text query and an optional exact specialty
// tag. The match is a case-insensitive substring test against the name and
// every specialty; input order is preserved.
func Search(doctors []Doctor, query, specialty string) []Doctor {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]Doctor, 0, len(doctors))
	for _, doc := range doctors {
		if specialty != "" && !doc.HasSpecialty(specialty) {
			continue
		}
		if q != "" && !matchesQuery(doc, q) {
			continue
		}
		out = append(out, doc)
	}
	return out
}

func matchesQuery(doc Doctor, q string) bool {
	if strings.Contains(strings.ToLower(doc.Name), q) {
		return true
	}
	for _, s := range doc.Specialties {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}
