package vision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractHints(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantHR   *int
		wantMins *int
	}{
		{
			name:     "bpm suffix",
			text:     "Avg 142 bpm over the session",
			wantHR:   intPtr(142),
			wantMins: nil,
		},
		{
			name:     "bpm attached",
			text:     "140bpm",
			wantHR:   intPtr(140),
			wantMins: nil,
		},
		{
			name:     "hr prefix",
			text:     "HR 138 steady",
			wantHR:   intPtr(138),
			wantMins: nil,
		},
		{
			name:     "duration mm:ss",
			text:     "Workout 30:45 total",
			wantHR:   nil,
			wantMins: intPtr(30),
		},
		{
			name:     "both tokens",
			text:     "DURATION 45:10  HEART RATE 131",
			wantHR:   intPtr(131),
			wantMins: intPtr(45),
		},
		{
			name:     "no matches degrades to manual entry",
			text:     "a blurry photo of a treadmill",
			wantHR:   nil,
			wantMins: nil,
		},
		{
			name:     "empty text",
			text:     "",
			wantHR:   nil,
			wantMins: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hints := ExtractHints(tt.text)

			if tt.wantHR == nil {
				assert.Nil(t, hints.HeartRate)
			} else {
				require.NotNil(t, hints.HeartRate)
				assert.Equal(t, *tt.wantHR, *hints.HeartRate)
			}
			if tt.wantMins == nil {
				assert.Nil(t, hints.Minutes)
			} else {
				require.NotNil(t, hints.Minutes)
				assert.Equal(t, *tt.wantMins, *hints.Minutes)
			}
		})
	}
}

func intPtr(v int) *int { return &v }
