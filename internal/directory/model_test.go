package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchMatchesSpecialtyCaseInsensitive(t *testing.T) {
	doctors := SeedDoctors()
	doctors = append(doctors, Doctor{ID: "3", Name: "Dr. Otávio Ramos", Specialties: []string{"Cardiologia"}})

	got := Search(doctors, "cardio", "")
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)

	got = Search(doctors, "CARDIO", "")
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)
}

func TestSearchMatchesName(t *testing.T) {
	got := Search(SeedDoctors(), "beatriz", "")
	require.Len(t, got, 1)
	assert.Equal(t, "Dra. Beatriz Menezes", got[0].Name)
}

func TestSearchIntersectsSpecialtyFilter(t *testing.T) {
	doctors := SeedDoctors()

	// Query matches both seeds ("dr"), the filter narrows to one.
	got := Search(doctors, "dr", "Ortopedia")
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	// Exact specialty filter does not substring-match.
	got = Search(doctors, "", "Orto")
	assert.Empty(t, got)
}

func TestSearchPreservesInputOrder(t *testing.T) {
	doctors := SeedDoctors()
	got := Search(doctors, "", "")
	require.Len(t, got, len(doctors))
	for i := range doctors {
		assert.Equal(t, doctors[i].ID, got[i].ID)
	}
}

func TestDayFor(t *testing.T) {
	doc := SeedDoctors()[0]
	assert.Nil(t, doc.DayFor("2024-10-28"))
}
