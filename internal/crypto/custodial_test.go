package crypto

import (
	"testing"

	"github.com/MKhiriev/go-keyplace/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAgentKey(t *testing.T) *AgentKey {
	t.Helper()
	k, err := GenerateAgentKey(nil)
	require.NoError(t, err)
	t.Cleanup(k.Destroy)
	return k
}

func TestCustodialKey_RoundTrip(t *testing.T) {
	d := newTestDerivation(t)
	key := newTestAgentKey(t)
	pk := derive(t, d, "correct horse battery staple")
	email := "bob@example.com"

	ck, err := key.CustodialKey(pk, &email)
	require.NoError(t, err)

	assert.Equal(t, key.PubKey(), ck.PubKey)
	require.NotNil(t, ck.Email)
	assert.Equal(t, email, *ck.Email)

	got, err := FromCustodialKey(ck, pk)
	require.NoError(t, err)
	defer got.Destroy()

	assert.True(t, key.Equal(got))
	assert.Equal(t, key.ID(), got.ID())
}

func TestCustodialKey_Deterministic(t *testing.T) {
	d := newTestDerivation(t)
	key := newTestAgentKey(t)
	pk := derive(t, d, "same")

	a, err := key.CustodialKey(pk, nil)
	require.NoError(t, err)
	b, err := key.CustodialKey(pk, nil)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Nil(t, a.Email)
}

func TestFromCustodialKey_WrongPassphrase(t *testing.T) {
	d := newTestDerivation(t)
	key := newTestAgentKey(t)

	ck, err := key.CustodialKey(derive(t, d, "right"), nil)
	require.NoError(t, err)

	got, err := FromCustodialKey(ck, derive(t, d, "wrong"))
	assert.ErrorIs(t, err, ErrMac)
	assert.Nil(t, got)
}

func TestFromCustodialKey_Tampered(t *testing.T) {
	d := newTestDerivation(t)
	key := newTestAgentKey(t)
	other := newTestAgentKey(t)
	pk := derive(t, d, "tamper")

	ck, err := key.CustodialKey(pk, nil)
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(ck *models.CustodialKey)
	}{
		{"mask bit flip", func(ck *models.CustodialKey) { ck.Mask[0] ^= 0x01 }},
		{"check bit flip", func(ck *models.CustodialKey) { ck.Check[31] ^= 0x80 }},
		{"foreign pubkey", func(ck *models.CustodialKey) { ck.PubKey = other.PubKey() }},
		{"zero record", func(ck *models.CustodialKey) { *ck = models.CustodialKey{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tampered := ck
			tt.mutate(&tampered)

			_, err := FromCustodialKey(tampered, pk)
			assert.ErrorIs(t, err, ErrMac)
		})
	}
}

func TestCustodialKey_EmailDoesNotAffectUnmask(t *testing.T) {
	d := newTestDerivation(t)
	key := newTestAgentKey(t)
	pk := derive(t, d, "meta")

	ck, err := key.CustodialKey(pk, nil)
	require.NoError(t, err)

	changed := "someone-else@example.com"
	ck.Email = &changed

	got, err := FromCustodialKey(ck, pk)
	require.NoError(t, err)
	got.Destroy()
}

func TestCustodialKey_DestroyedInputs(t *testing.T) {
	d := newTestDerivation(t)
	key := newTestAgentKey(t)

	pk, err := d.Derive(NewPassphrase("x"))
	require.NoError(t, err)
	ck, err := key.CustodialKey(pk, nil)
	require.NoError(t, err)
	pk.Destroy()

	_, err = key.CustodialKey(pk, nil)
	assert.ErrorIs(t, err, ErrSecretDestroyed)

	_, err = FromCustodialKey(ck, pk)
	assert.ErrorIs(t, err, ErrSecretDestroyed)

	live := derive(t, d, "y")
	dead, err := GenerateAgentKey(nil)
	require.NoError(t, err)
	dead.Destroy()

	_, err = dead.CustodialKey(live, nil)
	assert.ErrorIs(t, err, ErrSecretDestroyed)
}

func TestCustodialKey_FixedSecrets(t *testing.T) {
	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = byte(i)
	}
	key, err := AgentKeyFromSeed(seed)
	require.NoError(t, err)
	defer key.Destroy()

	var maskSecret, authSecret models.Key32
	for i := range maskSecret {
		maskSecret[i] = 0xff
		authSecret[i] = 0x11
	}
	pk := NewPassKey(maskSecret, authSecret)
	defer pk.Destroy()

	ck, err := key.CustodialKey(pk, nil)
	require.NoError(t, err)

	for i := range ck.Mask {
		assert.Equal(t, seed[i]^0xff, ck.Mask[i])
	}
	assert.Equal(t, authSecret, pk.Auth().Auth)
}
