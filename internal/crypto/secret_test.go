package crypto

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSecret_DestroyWipes(t *testing.T) {
	buf := []byte("super secret")
	s := NewSecret(buf)

	s.Destroy()

	assert.Equal(t, make([]byte, len(buf)), buf)
	assert.True(t, s.Destroyed())
	assert.Nil(t, s.Bytes())
	assert.Zero(t, s.Len())
}

func TestSecret_NilAndEmpty(t *testing.T) {
	var nilSecret *Secret
	nilSecret.Destroy()

	empty := NewSecret(nil)
	assert.False(t, empty.Destroyed())
	assert.Zero(t, empty.Len())

	assert.False(t, NewPassphrase("").Destroyed())
}

func TestSecret_ConcurrentDestroy(t *testing.T) {
	s := NewPassphrase("race")

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Destroy()
		}()
	}
	wg.Wait()

	assert.True(t, s.Destroyed())
}

func TestWithSecret(t *testing.T) {
	buf := []byte("scoped")
	errBoom := errors.New("boom")

	err := WithSecret(buf, func(s *Secret) error {
		assert.Equal(t, "scoped", string(s.Bytes()))
		return errBoom
	})

	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, make([]byte, 6), buf)
}

func TestWithSecret_Panic(t *testing.T) {
	buf := []byte("panics")

	assert.Panics(t, func() {
		_ = WithSecret(buf, func(*Secret) error { panic("boom") })
	})
	assert.Equal(t, make([]byte, 6), buf)
}
