package ui

import (
	"testing"

	"github.com/cheeku2609/FilmInsight4/internal/models"
)

func baseSpec() models.FilterSpec {
	return models.FilterSpec{
		YearMin: 1990, YearMax: 2020,
		RatingMin: 0, RatingMax: 10,
		RuntimeMin: 60, RuntimeMax: 240,
	}
}

// TestFilterFormSpec verifies edited values parse back and unparsable
// fields fall back to the previous spec
func TestFilterFormSpec(t *testing.T) {
	prev := baseSpec()
	f := NewFilterForm(prev, []string{"Action", "Drama"})

	f.yearMin = "2000"
	f.yearMax = "garbage"
	f.ratingMin = "6.5"
	f.genres = []string{"Drama"}

	spec := f.Spec(prev)

	if spec.YearMin != 2000 {
		t.Errorf("YearMin = %d, want 2000", spec.YearMin)
	}
	if spec.YearMax != 2020 {
		t.Errorf("YearMax = %d, want previous value 2020 for unparsable input", spec.YearMax)
	}
	if spec.RatingMin != 6.5 {
		t.Errorf("RatingMin = %f, want 6.5", spec.RatingMin)
	}
	if len(spec.Genres) != 1 || spec.Genres[0] != "Drama" {
		t.Errorf("Genres = %v, want [Drama]", spec.Genres)
	}
}

func TestFilterFormSpecSwappedBounds(t *testing.T) {
	prev := baseSpec()
	f := NewFilterForm(prev, nil)

	f.yearMin = "2015"
	f.yearMax = "2005"
	f.runtimeMin = "200"
	f.runtimeMax = "100"

	spec := f.Spec(prev)

	if spec.YearMin != 2005 || spec.YearMax != 2015 {
		t.Errorf("year bounds = %d..%d, want swapped into 2005..2015", spec.YearMin, spec.YearMax)
	}
	if spec.RuntimeMin != 100 || spec.RuntimeMax != 200 {
		t.Errorf("runtime bounds = %f..%f, want swapped into 100..200", spec.RuntimeMin, spec.RuntimeMax)
	}
}

func TestFilterFormPrefill(t *testing.T) {
	prev := baseSpec()
	prev.Genres = []string{"Action"}
	f := NewFilterForm(prev, []string{"Action", "Drama"})

	if f.yearMin != "1990" || f.yearMax != "2020" {
		t.Errorf("year fields = %q..%q, want prefilled from the spec", f.yearMin, f.yearMax)
	}
	if f.ratingMax != "10" {
		t.Errorf("ratingMax field = %q, want %q", f.ratingMax, "10")
	}
	if len(f.genres) != 1 || f.genres[0] != "Action" {
		t.Errorf("genres = %v, want the active selection carried in", f.genres)
	}
}
