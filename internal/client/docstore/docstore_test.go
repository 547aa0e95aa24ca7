package docstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/pagekeeper/internal/models"
)

func TestDecodeContent(t *testing.T) {
	tests := []struct {
		want    models.Snapshot
		name    string
		data    string
		wantErr bool
	}{
		{name: "empty", data: "", want: models.Snapshot{}},
		{name: "null", data: "null", want: models.Snapshot{}},
		{name: "fields", data: `{"hero-title":"New Title"}`, want: models.Snapshot{"hero-title": "New Title"}},
		{name: "not an object", data: `[1,2]`, wantErr: true},
		{name: "non-string value", data: `{"a":1}`, wantErr: true},
		{name: "broken", data: `{"a":`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeContent([]byte(tt.data))
			if tt.wantErr {
				require.ErrorIs(t, err, ErrMalformed)
				assert.NotNil(t, got)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeContent(t *testing.T) {
	data, err := EncodeContent(nil)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))

	data, err = EncodeContent(models.Snapshot{"a": "<b>x</b>"})
	require.NoError(t, err)

	got, err := DecodeContent(data)
	require.NoError(t, err)
	assert.Equal(t, models.Snapshot{"a": "<b>x</b>"}, got)
}
