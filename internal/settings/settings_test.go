package settings

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"desktop-clock/internal/storage"
)

func TestDefaults(t *testing.T) {
	d := Defaults()

	assert.Equal(t, Digital, d.ClockType)
	assert.Equal(t, Format12, d.ClockFormat)
	assert.Equal(t, Dark, d.Theme)
	assert.Equal(t, Medium, d.DigitalSize)
	assert.Equal(t, 100, d.Opacity)
	assert.Equal(t, Medium, d.AnalogSize)
	assert.Equal(t, 100, d.AnalogRoundness)
	assert.True(t, d.DraggingEnabled)
}

func TestSize_Diameter(t *testing.T) {
	tests := []struct {
		size Size
		want int
	}{
		{Small, 150},
		{Medium, 300},
		{Large, 500},
		{Size("huge"), 300},
		{Size(""), 300},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.size.Diameter(), "size %q", tc.size)
	}
}

func TestSize_Multiplier(t *testing.T) {
	assert.Equal(t, 0.8, Small.Multiplier())
	assert.Equal(t, 1.0, Medium.Multiplier())
	assert.Equal(t, 1.2, Large.Multiplier())
	assert.Equal(t, 1.0, Size("7").Multiplier())
}

func TestNormalize(t *testing.T) {
	c := ClockSettings{
		ClockType:       "sundial",
		ClockFormat:     "36",
		Theme:           "neon",
		DigitalSize:     "tiny",
		Opacity:         140,
		AnalogSize:      "",
		AnalogRoundness: -20,
	}.Normalize()

	assert.Equal(t, Digital, c.ClockType)
	assert.Equal(t, Format12, c.ClockFormat)
	assert.Equal(t, Dark, c.Theme)
	assert.Equal(t, Medium, c.DigitalSize)
	assert.Equal(t, Medium, c.AnalogSize)
	assert.Equal(t, 100, c.Opacity)
	assert.Equal(t, 0, c.AnalogRoundness)
}

func TestDecode_LegacyWebBlob(t *testing.T) {
	blob := `{"clockType":"analog","clockFormat":"24","theme":"light","size":"3",
		"opacity":"55","analogSize":"1","analogRoundness":"30","draggingEnabled":false}`

	c, err := Decode([]byte(blob))
	require.NoError(t, err)

	assert.Equal(t, ClockSettings{
		ClockType:       Analog,
		ClockFormat:     Format24,
		Theme:           Light,
		DigitalSize:     Large,
		Opacity:         55,
		AnalogSize:      Small,
		AnalogRoundness: 30,
		DraggingEnabled: false,
	}, c)
}

func TestDecode_CorruptFieldsFallBack(t *testing.T) {
	c, err := Decode([]byte(`{"analogSize":"9","opacity":"lots","analogRoundness":250,"clockType":"analog"}`))
	require.NoError(t, err)

	assert.Equal(t, Analog, c.ClockType)
	assert.Equal(t, Medium, c.AnalogSize)
	assert.Equal(t, 300, c.Diameter())
	assert.Equal(t, 100, c.Opacity)
	assert.Equal(t, 100, c.AnalogRoundness)
}

func TestDecode_HugeNumbersClampToBounds(t *testing.T) {
	tests := []struct {
		blob      string
		opacity   int
		roundness int
	}{
		{`{"opacity":1e20,"analogRoundness":1e300}`, 100, 100},
		{`{"opacity":"99999999999999999999","analogRoundness":"1e400"}`, 100, 100},
		{`{"opacity":"inf","analogRoundness":"-inf"}`, 100, 0},
		{`{"opacity":-1e20,"analogRoundness":-99999999999}`, 0, 0},
		{`{"opacity":"nan","analogRoundness":40.9}`, 100, 40},
	}

	for _, tt := range tests {
		c, err := Decode([]byte(tt.blob))
		require.NoError(t, err, tt.blob)
		assert.Equal(t, tt.opacity, c.Opacity, tt.blob)
		assert.Equal(t, tt.roundness, c.AnalogRoundness, tt.blob)
	}
}

func TestDecode_Malformed(t *testing.T) {
	for _, blob := range []string{"", "{", "[1,2]", "null", `"clock"`} {
		c, err := Decode([]byte(blob))
		assert.Error(t, err, "blob %q", blob)
		assert.Equal(t, Defaults(), c, "blob %q", blob)
	}
}

func TestService_RoundTrip(t *testing.T) {
	store := storage.NewMemory()
	svc := New(store)

	want := ClockSettings{
		ClockType:       Analog,
		ClockFormat:     Format24,
		Theme:           Light,
		DigitalSize:     Small,
		Opacity:         42,
		AnalogSize:      Large,
		AnalogRoundness: 63,
		DraggingEnabled: false,
	}
	require.NoError(t, svc.Save(want))

	reloaded := New(store)
	assert.Equal(t, want, reloaded.Load())
	assert.Equal(t, want, reloaded.Get())
}

func TestService_LoadEmpty(t *testing.T) {
	svc := New(storage.NewMemory())
	assert.Equal(t, Defaults(), svc.Load())
}

func TestService_LoadCorrupt(t *testing.T) {
	store := storage.NewMemory()
	require.NoError(t, store.Put(Key, []byte("{not json")))

	svc := New(store)
	assert.Equal(t, Defaults(), svc.Load())
}

func TestService_SetDoesNotPersist(t *testing.T) {
	store := storage.NewMemory()
	svc := New(store)

	c := Defaults()
	c.DraggingEnabled = false
	svc.Set(c)

	assert.False(t, svc.Get().DraggingEnabled)
	_, err := store.Get(Key)
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

type failingStore struct{ storage.Memory }

func (failingStore) Put(string, []byte) error { return errors.New("disk full") }

func TestService_SaveFailureKeepsCurrent(t *testing.T) {
	svc := New(&failingStore{Memory: *storage.NewMemory()})

	c := Defaults()
	c.Theme = Light
	err := svc.Save(c)

	require.Error(t, err)
	assert.Equal(t, Dark, svc.Get().Theme)
}
