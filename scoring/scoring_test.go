package scoring

import (
	"testing"

	"github.com/erikamanning/poker-planning/models"
)

func TestCalculatePoints_AllCombinations(t *testing.T) {
	cases := []struct {
		uncertainty models.Size
		complexity  models.Size
		effort      models.Size
		want        int
	}{
		{"S", "S", "S", 1},
		{"S", "S", "M", 2},
		{"S", "S", "L", 5},
		{"S", "M", "S", 2},
		{"S", "M", "M", 3},
		{"S", "M", "L", 5},
		{"S", "L", "S", 3},
		{"S", "L", "M", 5},
		{"S", "L", "L", 8},
		{"M", "S", "S", 3},
		{"M", "S", "M", 5},
		{"M", "S", "L", 8},
		{"M", "M", "S", 5},
		{"M", "M", "M", 5},
		{"M", "M", "L", 8},
		{"M", "L", "S", 8},
		{"M", "L", "M", 8},
		{"M", "L", "L", 13},
		{"L", "S", "S", 5},
		{"L", "S", "M", 8},
		{"L", "S", "L", 13},
		{"L", "M", "S", 8},
		{"L", "M", "M", 8},
		{"L", "M", "L", 13},
		{"L", "L", "S", 8},
		{"L", "L", "M", 13},
		{"L", "L", "L", 13},
	}

	for _, tc := range cases {
		vote := models.Vote{
			Uncertainty: tc.uncertainty,
			Complexity:  tc.complexity,
			Effort:      tc.effort,
		}
		got, ok := CalculatePoints(vote)
		if !ok {
			t.Errorf("%s-%s-%s: expected points, got incomplete", tc.uncertainty, tc.complexity, tc.effort)
			continue
		}
		if got != tc.want {
			t.Errorf("%s-%s-%s: expected %d points, got %d", tc.uncertainty, tc.complexity, tc.effort, tc.want, got)
		}
	}
}

func TestCalculatePoints_Incomplete(t *testing.T) {
	votes := []models.Vote{
		{},
		{Uncertainty: models.SizeSmall},
		{Complexity: models.SizeMedium},
		{Effort: models.SizeLarge},
		{Uncertainty: models.SizeSmall, Complexity: models.SizeMedium},
		{Uncertainty: models.SizeSmall, Effort: models.SizeLarge},
		{Complexity: models.SizeMedium, Effort: models.SizeLarge},
	}

	for _, vote := range votes {
		if _, ok := CalculatePoints(vote); ok {
			t.Errorf("expected incomplete for vote %+v", vote)
		}
	}
}

func TestIsVoteComplete(t *testing.T) {
	complete := models.Vote{
		Uncertainty: models.SizeLarge,
		Complexity:  models.SizeSmall,
		Effort:      models.SizeMedium,
	}
	if !IsVoteComplete(complete) {
		t.Error("expected complete vote to be complete")
	}

	partial := models.Vote{Uncertainty: models.SizeLarge, Effort: models.SizeMedium}
	if IsVoteComplete(partial) {
		t.Error("expected partial vote to be incomplete")
	}

	if IsVoteComplete(models.Vote{}) {
		t.Error("expected empty vote to be incomplete")
	}
}

func TestRoundToFinalEstimate(t *testing.T) {
	cases := []struct {
		average float64
		want    int
	}{
		{1.0, 1},
		{1.4, 1},
		{1.5, 1}, // equidistant from 1 and 2, lower candidate wins
		{1.6, 2},
		{2.5, 2}, // equidistant from 2 and 3
		{3.0, 3},
		{4.0, 3}, // equidistant from 3 and 5
		{4.1, 5},
		{6.5, 5}, // equidistant from 5 and 8
		{7.0, 8},
		{10.5, 8}, // equidistant from 8 and 13
		{11.0, 13},
		{17.0, 13}, // equidistant from 13 and 21
		{18.0, 21},
		{100.0, 21},
		{0.0, 1},
	}

	for _, tc := range cases {
		if got := RoundToFinalEstimate(tc.average); got != tc.want {
			t.Errorf("RoundToFinalEstimate(%v): expected %d, got %d", tc.average, tc.want, got)
		}
	}
}

func TestSizeLabel(t *testing.T) {
	cases := []struct {
		size models.Size
		want string
	}{
		{models.SizeSmall, "Small"},
		{models.SizeMedium, "Medium"},
		{models.SizeLarge, "Large"},
		{models.SizeUnset, ""},
	}

	for _, tc := range cases {
		if got := SizeLabel(tc.size); got != tc.want {
			t.Errorf("SizeLabel(%q): expected %q, got %q", tc.size, tc.want, got)
		}
	}
}
