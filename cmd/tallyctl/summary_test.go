package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
	"github.com/MrJamesThe3rd/tally/internal/savings"
	"github.com/MrJamesThe3rd/tally/internal/summary"
)

func TestWindow(t *testing.T) {
	now := time.Date(2024, 2, 14, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		start, end string
		want       summary.Window
		wantErr    error
	}{
		{
			name: "DefaultsToCurrentMonth",
			want: summary.Window{Start: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), End: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		},
		{
			name:  "ExplicitRange",
			start: "2024-01-10",
			end:   "2024-01-20",
			want:  summary.Window{Start: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), End: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)},
		},
		{
			name:    "BadDate",
			start:   "10/01/2024",
			wantErr: ledger.ErrInvalidDate,
		},
		{
			name:    "Reversed",
			start:   "2024-02-20",
			end:     "2024-02-10",
			wantErr: ledger.ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := window(tt.start, tt.end, now)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.True(t, tt.want.Start.Equal(got.Start))
			assert.True(t, tt.want.End.Equal(got.End))
		})
	}
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer

	printReport(&buf, &savings.Report{})
	assert.Contains(t, buf.String(), "All goals match")

	buf.Reset()

	goal := uuid.New()
	printReport(&buf, &savings.Report{Repaired: []savings.Drift{{
		GoalID:   goal,
		Recorded: decimal.RequireFromString("120"),
		Expected: decimal.RequireFromString("100"),
	}}})
	assert.Contains(t, buf.String(), goal.String()+": 120.00 -> 100.00")
}
