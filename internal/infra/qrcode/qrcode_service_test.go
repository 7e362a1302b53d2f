package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJoinQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	png, err := svc.GenerateJoinQR("GRAVITY24")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestParseJoinQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	t.Run("round trip", func(t *testing.T) {
		code, err := svc.ParseJoinQR(`{"join_code":"GRAVITY24","type":"challenge_join"}`)
		require.NoError(t, err)
		assert.Equal(t, "GRAVITY24", code)
	})

	t.Run("wrong type", func(t *testing.T) {
		_, err := svc.ParseJoinQR(`{"join_code":"GRAVITY24","type":"subscription"}`)
		assert.Error(t, err)
	})

	t.Run("missing code", func(t *testing.T) {
		_, err := svc.ParseJoinQR(`{"join_code":"  ","type":"challenge_join"}`)
		assert.Error(t, err)
	})

	t.Run("not json", func(t *testing.T) {
		_, err := svc.ParseJoinQR("GRAVITY24")
		assert.Error(t, err)
	})
}
