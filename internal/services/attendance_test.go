package services

import (
	"testing"

	"github.com/evermore-apps/evermore-backend/internal/data/repos"
)

func TestPeakArrivalHour_PicksHighestCount(t *testing.T) {
	hours := []repos.HourCount{
		{Hour: 14, Count: 3},
		{Hour: 15, Count: 9},
		{Hour: 16, Count: 4},
	}
	peak := peakArrivalHour(hours)
	if peak == nil || *peak != 15 {
		t.Fatalf("expected peak=15 got %v", peak)
	}
}

func TestPeakArrivalHour_TieBreaksToEarlierHour(t *testing.T) {
	hours := []repos.HourCount{
		{Hour: 18, Count: 5},
		{Hour: 13, Count: 5},
		{Hour: 20, Count: 5},
	}
	peak := peakArrivalHour(hours)
	if peak == nil || *peak != 13 {
		t.Fatalf("expected peak=13 got %v", peak)
	}
}

func TestPeakArrivalHour_NilWhenNoCheckIns(t *testing.T) {
	if peak := peakArrivalHour(nil); peak != nil {
		t.Fatalf("expected nil peak for empty input, got %d", *peak)
	}
	if peak := peakArrivalHour([]repos.HourCount{{Hour: 10, Count: 0}}); peak != nil {
		t.Fatalf("expected nil peak when all counts are zero, got %d", *peak)
	}
}
