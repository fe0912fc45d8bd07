package idx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/goalpost/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestNewAndParse(t *testing.T) {
	id := idx.New()
	require.False(t, id.IsZero())
	require.Len(t, id.String(), 26)

	parsed, err := idx.Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "   ", "not-a-ulid", "u1@example.com"} {
		_, err := idx.Parse(in)
		require.ErrorIs(t, err, idx.ErrInvalid, "input %q", in)
	}
}

func TestSameMillisecondOrdering(t *testing.T) {
	at := time.Unix(1_700_000_000, 0).UTC()
	a := idx.NewAt(at)
	b := idx.NewAt(at)

	// Monotonic entropy keeps ids minted in the same millisecond sorted.
	require.Less(t, a.String(), b.String())
}

func TestTimeExtraction(t *testing.T) {
	tm := time.Unix(1_700_000_000, 0).UTC()
	id := idx.NewAt(tm)
	require.WithinDuration(t, tm, id.Time(), time.Millisecond)

	require.True(t, idx.Zero.Time().IsZero())
}
