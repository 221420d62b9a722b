package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecentCanteens_Touch(t *testing.T) {
	tests := []struct {
		name  string
		start RecentCanteens
		touch RecentCanteen
		want  RecentCanteens
	}{
		{
			name:  "Should insert into empty list",
			start: nil,
			touch: RecentCanteen{CanteenID: 42, Name: "Mensa X"},
			want:  RecentCanteens{{CanteenID: 42, Name: "Mensa X"}},
		},
		{
			name:  "Should move existing id to front without growing",
			start: RecentCanteens{{CanteenID: 1, Name: "A"}, {CanteenID: 42, Name: "Mensa X"}, {CanteenID: 2, Name: "B"}},
			touch: RecentCanteen{CanteenID: 42, Name: "Mensa X"},
			want:  RecentCanteens{{CanteenID: 42, Name: "Mensa X"}, {CanteenID: 1, Name: "A"}, {CanteenID: 2, Name: "B"}},
		},
		{
			name:  "Should drop the oldest entry above the limit",
			start: RecentCanteens{{CanteenID: 5}, {CanteenID: 4}, {CanteenID: 3}, {CanteenID: 2}, {CanteenID: 1}},
			touch: RecentCanteen{CanteenID: 6},
			want:  RecentCanteens{{CanteenID: 6}, {CanteenID: 5}, {CanteenID: 4}, {CanteenID: 3}, {CanteenID: 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.start.Touch(tt.touch, 5)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecentCanteens_Touch_Invariants(t *testing.T) {
	var recent RecentCanteens
	views := []int64{1, 2, 3, 1, 4, 5, 6, 2, 7, 7, 3, 8, 1}

	for _, id := range views {
		recent = recent.Touch(RecentCanteen{CanteenID: id}, 5)

		assert.LessOrEqual(t, len(recent), 5)
		assert.Equal(t, id, recent[0].CanteenID)

		seen := make(map[int64]bool)
		for _, r := range recent {
			assert.False(t, seen[r.CanteenID], "duplicate id %d", r.CanteenID)
			seen[r.CanteenID] = true
		}
	}

	ids := make([]int64, 0, len(recent))
	for _, r := range recent {
		ids = append(ids, r.CanteenID)
	}
	assert.Equal(t, []int64{1, 8, 3, 7, 2}, ids)
}

func TestRecentCanteens_Touch_DoesNotMutateReceiver(t *testing.T) {
	start := RecentCanteens{{CanteenID: 1}, {CanteenID: 2}}
	_ = start.Touch(RecentCanteen{CanteenID: 2}, 5)

	assert.Equal(t, RecentCanteens{{CanteenID: 1}, {CanteenID: 2}}, start)
}
