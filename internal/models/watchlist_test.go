package models

import (
	"testing"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func TestPatchApplyMergesOnlyPresentFields(t *testing.T) {
	item := &WatchlistItem{
		ID:        "abc",
		Title:     "Old Title",
		MediaType: MediaTypeMovie,
		MediaID:   "603",
		Creator:   "Someone",
	}

	patch := WatchlistPatch{Title: strPtr("New Title")}
	patch.Apply(item)

	if item.Title != "New Title" {
		t.Errorf("Expected title to change, got %q", item.Title)
	}
	if item.Creator != "Someone" {
		t.Errorf("Creator should be untouched, got %q", item.Creator)
	}
	if item.Progress != nil {
		t.Errorf("Progress should stay unset, got %v", *item.Progress)
	}
}

func TestPatchApplyDerivesProgressFromEpisodes(t *testing.T) {
	testCases := []struct {
		name          string
		totalEpisodes *int
		patch         WatchlistPatch
		wantEpisode   *int
		wantProgress  *float64
	}{
		{
			name:          "halfway",
			totalEpisodes: intPtr(12),
			patch:         WatchlistPatch{CurrentEpisode: intPtr(6)},
			wantEpisode:   intPtr(6),
			wantProgress:  floatPtr(50),
		},
		{
			name:          "rounding",
			totalEpisodes: intPtr(3),
			patch:         WatchlistPatch{CurrentEpisode: intPtr(1)},
			wantEpisode:   intPtr(1),
			wantProgress:  floatPtr(33),
		},
		{
			name:          "overshoot clamps to total",
			totalEpisodes: intPtr(12),
			patch:         WatchlistPatch{CurrentEpisode: intPtr(20)},
			wantEpisode:   intPtr(12),
			wantProgress:  floatPtr(100),
		},
		{
			name:          "negative clamps to zero",
			totalEpisodes: intPtr(12),
			patch:         WatchlistPatch{CurrentEpisode: intPtr(-3)},
			wantEpisode:   intPtr(0),
			wantProgress:  floatPtr(0),
		},
		{
			name:          "episode update wins over direct progress",
			totalEpisodes: intPtr(10),
			patch:         WatchlistPatch{CurrentEpisode: intPtr(5), Progress: floatPtr(99)},
			wantEpisode:   intPtr(5),
			wantProgress:  floatPtr(50),
		},
		{
			name:         "direct progress without episodes",
			patch:        WatchlistPatch{Progress: floatPtr(42.5)},
			wantProgress: floatPtr(42.5),
		},
		{
			name:         "direct progress clamps above 100",
			patch:        WatchlistPatch{Progress: floatPtr(150)},
			wantProgress: floatPtr(100),
		},
		{
			name:          "episode without known total keeps progress unset",
			totalEpisodes: nil,
			patch:         WatchlistPatch{CurrentEpisode: intPtr(4)},
			wantEpisode:   intPtr(4),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			item := &WatchlistItem{Title: "x", MediaType: MediaTypeTV, MediaID: "1", TotalEpisodes: tc.totalEpisodes}
			tc.patch.Apply(item)

			if tc.wantEpisode != nil {
				if item.CurrentEpisode == nil || *item.CurrentEpisode != *tc.wantEpisode {
					t.Errorf("Expected current episode %d, got %v", *tc.wantEpisode, item.CurrentEpisode)
				}
			}
			if tc.wantProgress == nil {
				if item.Progress != nil {
					t.Errorf("Expected no progress, got %v", *item.Progress)
				}
			} else if item.Progress == nil || *item.Progress != *tc.wantProgress {
				t.Errorf("Expected progress %v, got %v", *tc.wantProgress, item.Progress)
			}
		})
	}
}

func TestPatchApplyClampsRating(t *testing.T) {
	item := &WatchlistItem{Title: "x", MediaType: MediaTypeMovie, MediaID: "1"}

	WatchlistPatch{Rating: floatPtr(9)}.Apply(item)
	if item.Rating == nil || *item.Rating != 5 {
		t.Errorf("Expected rating clamped to 5, got %v", item.Rating)
	}

	WatchlistPatch{Rating: floatPtr(-2)}.Apply(item)
	if item.Rating == nil || *item.Rating != 0 {
		t.Errorf("Expected rating clamped to 0, got %v", item.Rating)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	item := &WatchlistItem{
		ID:            "abc",
		Title:         "Original",
		Progress:      floatPtr(10),
		TotalEpisodes: intPtr(24),
		Genres:        []string{"18", "35"},
	}

	c := item.Clone()
	*c.Progress = 90
	c.Genres[0] = "changed"
	c.Title = "Copy"

	if *item.Progress != 10 {
		t.Errorf("Clone mutated original progress: %v", *item.Progress)
	}
	if item.Genres[0] != "18" {
		t.Errorf("Clone mutated original genres: %v", item.Genres)
	}
	if item.Title != "Original" {
		t.Errorf("Clone mutated original title: %q", item.Title)
	}
}

func TestMediaTypeValid(t *testing.T) {
	for _, mt := range []MediaType{MediaTypeMovie, MediaTypeTV, MediaTypeAnime, MediaTypeBook} {
		if !mt.Valid() {
			t.Errorf("Expected %q to be valid", mt)
		}
	}
	if MediaType("podcast").Valid() {
		t.Error("Expected unknown media type to be invalid")
	}
}
