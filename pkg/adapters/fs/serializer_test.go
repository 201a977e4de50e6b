package fs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notes/pkg/core"
)

func TestSerializers_EmptyInput(t *testing.T) {
	for ext, s := range DefaultSerializers() {
		t.Run(ext, func(t *testing.T) {
			for _, input := range []string{"", "  \n"} {
				notes, err := s.Parse([]byte(input))
				require.NoError(t, err)
				assert.NotNil(t, notes)
				assert.Empty(t, notes)
			}
		})
	}
}

func TestJSONSerializer_Null(t *testing.T) {
	notes, err := NewJSONSerializer().Parse([]byte("null"))
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestYAMLSerializer_QuotesAmbiguousScalars(t *testing.T) {
	s := NewYAMLSerializer()
	in := []core.Note{{ID: 7, Title: "123", Body: "true", Timestamp: "2024-01-01 10:00:00"}}

	data, err := s.Serialize(in)
	require.NoError(t, err)

	out, err := s.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
