package userinput

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCronScheduleValid(t *testing.T) {
	t.Parallel()

	tests := []string{"0 3 * * *", "0 */6 * * *", "0 0 * * 0", "*/15 * * * *"}
	for _, raw := range tests {
		_, err := NewCronSchedule(raw)
		require.NoErrorf(t, err, "expected %q to be valid", raw)
	}
}

func TestNewCronScheduleRejectsWrongFieldCount(t *testing.T) {
	t.Parallel()

	_, err := NewCronSchedule("0 3 * *")
	require.Error(t, err)
}

func TestDefaultCronScheduleValueMatchesConstant(t *testing.T) {
	t.Parallel()

	require.Equal(t, DefaultCronSchedule, DefaultCronScheduleValue().String())
}

func TestNewRetentionDaysRejectsZero(t *testing.T) {
	t.Parallel()

	_, err := NewRetentionDays(0)
	require.Error(t, err)
}

func TestDefaultRetentionDaysValueMatchesConstant(t *testing.T) {
	t.Parallel()

	require.Equal(t, uint32(DefaultRetentionDays), DefaultRetentionDaysValue().Uint32())
}
