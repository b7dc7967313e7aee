package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/MKhiriev/go-keyplace/internal/logger"
	"github.com/MKhiriev/go-keyplace/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord(label string, fill byte) models.KeyRecord {
	var rec models.KeyRecord
	rec.Label = label
	for i := range rec.UserAuthKey.Auth {
		rec.UserAuthKey.Auth[i] = fill
		rec.CustodialKey.PubKey[i] = fill + 1
		rec.CustodialKey.Mask[i] = fill + 2
		rec.CustodialKey.Check[i] = fill + 3
	}
	return rec
}

func newMemoryRepo(t *testing.T) CustodianRepository {
	t.Helper()
	return NewMemoryCustodianRepository(logger.Nop())
}

func TestMemory_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo(t)

	email := "alice@example.com"
	primary := testRecord("primary", 1)
	primary.CustodialKey.Email = &email

	require.NoError(t, repo.CreateAccount(ctx, models.Account{ID: "alice", Name: "Alice"},
		[]models.KeyRecord{primary, testRecord("backup", 10)}))

	got, err := repo.FindKeyRecord(ctx, "alice", "primary")
	require.NoError(t, err)
	assert.Equal(t, primary, got)

	all, err := repo.FindKeyRecords(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "primary", all[0].Label)
	assert.Equal(t, "backup", all[1].Label)
}

func TestMemory_CreateAccount_AlreadyExists(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo(t)

	require.NoError(t, repo.CreateAccount(ctx, models.Account{ID: "bob"}, []models.KeyRecord{testRecord("a", 1)}))
	err := repo.CreateAccount(ctx, models.Account{ID: "bob"}, []models.KeyRecord{testRecord("b", 2)})
	assert.ErrorIs(t, err, ErrAccountAlreadyExists)

	// original records untouched
	all, err := repo.FindKeyRecords(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "a", all[0].Label)
}

func TestMemory_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo(t)
	require.NoError(t, repo.CreateAccount(ctx, models.Account{ID: "carol"}, []models.KeyRecord{testRecord("a", 1)}))

	_, err := repo.FindKeyRecord(ctx, "nobody", "a")
	assert.ErrorIs(t, err, ErrKeyRecordNotFound)

	_, err = repo.FindKeyRecord(ctx, "carol", "missing")
	assert.ErrorIs(t, err, ErrKeyRecordNotFound)

	_, err = repo.FindKeyRecords(ctx, "nobody")
	assert.ErrorIs(t, err, ErrAccountNotFound)

	err = repo.UpsertKeyRecords(ctx, "nobody", []models.KeyRecord{testRecord("a", 1)})
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestMemory_UpsertOverwritesInPlaceAndAppends(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo(t)
	require.NoError(t, repo.CreateAccount(ctx, models.Account{ID: "dave"},
		[]models.KeyRecord{testRecord("one", 1), testRecord("two", 2)}))

	require.NoError(t, repo.UpsertKeyRecords(ctx, "dave",
		[]models.KeyRecord{testRecord("three", 3), testRecord("one", 100)}))

	all, err := repo.FindKeyRecords(ctx, "dave")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"one", "two", "three"}, []string{all[0].Label, all[1].Label, all[2].Label})
	assert.Equal(t, testRecord("one", 100), all[0])
}

func TestMemory_UpsertDuplicateLabelsInBatch(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo(t)
	require.NoError(t, repo.CreateAccount(ctx, models.Account{ID: "erin"}, []models.KeyRecord{testRecord("a", 1)}))

	require.NoError(t, repo.UpsertKeyRecords(ctx, "erin",
		[]models.KeyRecord{testRecord("b", 2), testRecord("b", 3)}))

	got, err := repo.FindKeyRecord(ctx, "erin", "b")
	require.NoError(t, err)
	assert.Equal(t, testRecord("b", 3), got)

	all, err := repo.FindKeyRecords(ctx, "erin")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestMemory_ReturnedRecordsDoNotAlias(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo(t)

	email := "frank@example.com"
	rec := testRecord("a", 1)
	rec.CustodialKey.Email = &email
	require.NoError(t, repo.CreateAccount(ctx, models.Account{ID: "frank"}, []models.KeyRecord{rec}))

	email = "changed@example.com"
	got, err := repo.FindKeyRecord(ctx, "frank", "a")
	require.NoError(t, err)
	assert.Equal(t, "frank@example.com", *got.CustodialKey.Email)

	*got.CustodialKey.Email = "mutated"
	again, err := repo.FindKeyRecord(ctx, "frank", "a")
	require.NoError(t, err)
	assert.Equal(t, "frank@example.com", *again.CustodialKey.Email)
}

func TestMemory_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	repo := newMemoryRepo(t)

	assert.ErrorIs(t, repo.CreateAccount(ctx, models.Account{ID: "x"}, nil), context.Canceled)
	_, err := repo.FindKeyRecords(ctx, "x")
	assert.ErrorIs(t, err, context.Canceled)
}

// TestMemory_ConcurrentUpsertsAreAtomic checks that a reader only ever sees
// whole batches: every batch writes the same fill byte to both labels.
func TestMemory_ConcurrentUpsertsAreAtomic(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo(t)
	require.NoError(t, repo.CreateAccount(ctx, models.Account{ID: "grace"},
		[]models.KeyRecord{testRecord("left", 0), testRecord("right", 0)}))

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(fill byte) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				_ = repo.UpsertKeyRecords(ctx, "grace",
					[]models.KeyRecord{testRecord("left", fill), testRecord("right", fill)})
			}
		}(byte(w * 10))
	}

	errs := make(chan error, 200)
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				all, err := repo.FindKeyRecords(ctx, "grace")
				if err != nil {
					errs <- err
					return
				}
				if all[0].UserAuthKey != all[1].UserAuthKey {
					errs <- fmt.Errorf("torn read: %v vs %v", all[0].UserAuthKey.Auth[0], all[1].UserAuthKey.Auth[0])
					return
				}
			}
		}()
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestMemory_ConcurrentCreateSameAccount(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo(t)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := repo.CreateAccount(ctx, models.Account{ID: "race"}, []models.KeyRecord{testRecord(fmt.Sprint(i), byte(i))})
			if err == nil {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, created)
}
