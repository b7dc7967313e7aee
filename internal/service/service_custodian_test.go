package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-keyplace/internal/config"
	"github.com/MKhiriev/go-keyplace/internal/crypto"
	"github.com/MKhiriev/go-keyplace/internal/logger"
	"github.com/MKhiriev/go-keyplace/internal/metrics"
	"github.com/MKhiriev/go-keyplace/internal/mock"
	"github.com/MKhiriev/go-keyplace/internal/ratelimit"
	"github.com/MKhiriev/go-keyplace/internal/store"
	"github.com/MKhiriev/go-keyplace/internal/utils"
	"github.com/MKhiriev/go-keyplace/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

var testAppConfig = config.App{
	TokenSignKey:  "test-sign-key",
	TokenIssuer:   "keyplace-test",
	TokenDuration: time.Minute,
}

var (
	testKDFOnce sync.Once
	testKDF     *crypto.KeyDerivation
)

// fastKDF keeps scrypt cheap enough for unit tests.
func fastKDF(t *testing.T) *crypto.KeyDerivation {
	t.Helper()
	testKDFOnce.Do(func() {
		var err error
		testKDF, err = crypto.NewKeyDerivation(crypto.KDFParams{N: 1 << 10, R: 8, P: 1})
		if err != nil {
			panic(err)
		}
	})
	return testKDF
}

func derive(t *testing.T, passphrase string) *crypto.PassKey {
	t.Helper()
	pk, err := fastKDF(t).Derive(crypto.NewPassphrase(passphrase))
	require.NoError(t, err)
	t.Cleanup(pk.Destroy)
	return pk
}

func newAgentKey(t *testing.T) *crypto.AgentKey {
	t.Helper()
	key, err := crypto.GenerateAgentKey(nil)
	require.NoError(t, err)
	t.Cleanup(key.Destroy)
	return key
}

// keyRecord masks key under passphrase and returns the record registered
// under label.
func keyRecord(t *testing.T, key *crypto.AgentKey, label, passphrase string) models.KeyRecord {
	t.Helper()
	pk := derive(t, passphrase)
	ck, err := key.CustodialKey(pk, nil)
	require.NoError(t, err)
	return models.KeyRecord{Label: label, UserAuthKey: pk.Auth(), CustodialKey: ck}
}

func query(t *testing.T, label, passphrase string) models.AuthQuery {
	t.Helper()
	return models.AuthQuery{Label: label, UserAuthKey: derive(t, passphrase).Auth()}
}

func newTestCustodian(t *testing.T) (CustodianService, store.CustodianRepository) {
	t.Helper()
	repo := store.NewMemoryCustodianRepository(logger.Nop())
	return NewCustodianService(repo, testAppConfig, nil, nil, logger.Nop()), repo
}

func signRecords(t *testing.T, key *crypto.AgentKey, accountID string, records []models.KeyRecord) crypto.Signature {
	t.Helper()
	sig, err := crypto.Sign(key, crypto.String(accountID), crypto.Bytes(crypto.KeyRecordsDigest(records)))
	require.NoError(t, err)
	return sig
}

// ─────────────────────────────────────────────
// Register
// ─────────────────────────────────────────────

func TestCustodian_Register_Success(t *testing.T) {
	svc, repo := newTestCustodian(t)
	key := newAgentKey(t)

	session, err := svc.Register(context.Background(), "alice", "Alice", []models.KeyRecord{keyRecord(t, key, "primary", "pw")})
	require.NoError(t, err)
	assert.Equal(t, "alice", session.AccountID)
	assert.True(t, session.ExpiresAt.After(time.Now()))

	token, err := utils.ValidateAndParseJWTToken(session.Token, testAppConfig.TokenSignKey, testAppConfig.TokenIssuer)
	require.NoError(t, err)
	assert.Equal(t, "alice", token.AccountID)

	records, err := repo.FindKeyRecords(context.Background(), "alice")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestCustodian_Register_Rejects(t *testing.T) {
	key := newAgentKey(t)
	rec := keyRecord(t, key, "primary", "pw")

	tests := []struct {
		name      string
		accountID string
		records   []models.KeyRecord
		want      error
	}{
		{"empty key list", "alice", nil, ErrEmptyKeyList},
		{"empty account id", "", []models.KeyRecord{rec}, ErrInvalidDataProvided},
		{"duplicate label", "alice", []models.KeyRecord{rec, rec}, ErrInvalidDataProvided},
		{"empty label", "alice", []models.KeyRecord{{CustodialKey: rec.CustodialKey}}, ErrInvalidDataProvided},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestCustodian(t)
			_, err := svc.Register(context.Background(), tt.accountID, "", tt.records)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCustodian_Register_AlreadyExists(t *testing.T) {
	svc, _ := newTestCustodian(t)
	key := newAgentKey(t)
	rec := keyRecord(t, key, "primary", "pw")

	_, err := svc.Register(context.Background(), "alice", "", []models.KeyRecord{rec})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "alice", "", []models.KeyRecord{rec})
	assert.ErrorIs(t, err, ErrAccountAlreadyExists)
}

func TestCustodian_Register_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCustodianRepository(ctrl)
	svc := NewCustodianService(repo, testAppConfig, nil, nil, logger.Nop())

	boom := errors.New("connection reset")
	repo.EXPECT().CreateAccount(gomock.Any(), gomock.Any(), gomock.Any()).Return(boom)

	_, err := svc.Register(context.Background(), "alice", "", []models.KeyRecord{keyRecord(t, newAgentKey(t), "primary", "pw")})
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrAccountAlreadyExists)
}

// ─────────────────────────────────────────────
// Authenticate
// ─────────────────────────────────────────────

func TestCustodian_Authenticate_Success(t *testing.T) {
	svc, _ := newTestCustodian(t)
	key := newAgentKey(t)
	email := "bob@example.com"
	rec := keyRecord(t, key, "primary", "bob pw")
	rec.CustodialKey.Email = &email

	_, err := svc.Register(context.Background(), "bob", "Bob", []models.KeyRecord{rec})
	require.NoError(t, err)

	session, match, err := svc.Authenticate(context.Background(), "bob", query(t, "primary", "bob pw"))
	require.NoError(t, err)
	assert.Equal(t, "bob", session.AccountID)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "primary", match.Label)
	assert.Equal(t, rec.CustodialKey, match.CustodialKey)

	unmasked, err := crypto.FromCustodialKey(match.CustodialKey, derive(t, "bob pw"))
	require.NoError(t, err)
	defer unmasked.Destroy()
	assert.Equal(t, key.ID(), unmasked.ID())
}

func TestCustodian_Authenticate_FailuresAreUniform(t *testing.T) {
	svc, _ := newTestCustodian(t)
	_, err := svc.Register(context.Background(), "bob", "", []models.KeyRecord{keyRecord(t, newAgentKey(t), "primary", "bob pw")})
	require.NoError(t, err)

	cases := []struct {
		name      string
		accountID string
		q         models.AuthQuery
	}{
		{"wrong passphrase", "bob", query(t, "primary", "wrong")},
		{"unknown label", "bob", query(t, "backup", "bob pw")},
		{"unknown account", "nobody", query(t, "primary", "bob pw")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			session, match, err := svc.Authenticate(context.Background(), tc.accountID, tc.q)
			assert.Equal(t, ErrNotFound, err)
			assert.Empty(t, session)
			assert.Empty(t, match)
		})
	}
}

func TestCustodian_Authenticate_RateLimited(t *testing.T) {
	repo := store.NewMemoryCustodianRepository(logger.Nop())
	m := metrics.New()
	svc := NewCustodianService(repo, testAppConfig, ratelimit.New(0.001, 2, time.Minute), m, logger.Nop())

	q := query(t, "primary", "x")
	for i := 0; i < 2; i++ {
		_, _, err := svc.Authenticate(context.Background(), "ghost", q)
		assert.ErrorIs(t, err, ErrNotFound)
	}

	_, _, err := svc.Authenticate(context.Background(), "GHOST", q)
	assert.ErrorIs(t, err, ErrRateLimited)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.OperationsTotal.WithLabelValues(opAuthenticate, metrics.ResultNotFound)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.OperationsTotal.WithLabelValues(opAuthenticate, metrics.ResultRateLimited)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RateLimitedTotal))
}

func TestCustodian_Authenticate_StoreFailureIsNotNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCustodianRepository(ctrl)
	svc := NewCustodianService(repo, testAppConfig, nil, nil, logger.Nop())

	repo.EXPECT().FindKeyRecord(gomock.Any(), "bob", "primary").Return(models.KeyRecord{}, store.ErrExecutingQuery)

	_, _, err := svc.Authenticate(context.Background(), "bob", models.AuthQuery{Label: "primary"})
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestCustodian_Authenticate_MissStillCompares(t *testing.T) {
	stored := keyRecord(t, newAgentKey(t), "primary", "bob pw")

	cases := []struct {
		name      string
		rec       models.KeyRecord
		err       error
		wantFound bool
	}{
		{"unknown label", models.KeyRecord{}, store.ErrKeyRecordNotFound, false},
		{"unknown account", models.KeyRecord{}, store.ErrAccountNotFound, false},
		{"wrong passphrase", stored, nil, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockCustodianRepository(ctrl)
			svc := NewCustodianService(repo, testAppConfig, nil, nil, logger.Nop()).(*custodianService)

			var calls int
			svc.compare = func(s, g models.UserAuthKey, found bool) bool {
				calls++
				assert.Equal(t, tc.wantFound, found)
				return authKeyMatches(s, g, found)
			}

			repo.EXPECT().FindKeyRecord(gomock.Any(), "bob", "primary").Return(tc.rec, tc.err).Times(1)

			session, match, err := svc.Authenticate(context.Background(), "bob", query(t, "primary", "wrong"))
			assert.True(t, err == ErrNotFound, "got %v", err)
			assert.Empty(t, session)
			assert.Empty(t, match)
			assert.Equal(t, 1, calls)
		})
	}
}

func TestCustodian_Authenticate_InvalidInputSkipsLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCustodianRepository(ctrl)
	m := metrics.New()
	svc := NewCustodianService(repo, testAppConfig, nil, m, logger.Nop())

	cases := []struct {
		name      string
		accountID string
		label     string
	}{
		{"oversized account id", strings.Repeat("a", 100000), ""},
		{"oversized account id with label", strings.Repeat("a", 100000), "primary"},
		{"empty account id", "", "primary"},
		{"empty label", "bob", ""},
		{"oversized label", "bob", strings.Repeat("l", 1000)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.Authenticate(context.Background(), tc.accountID, models.AuthQuery{Label: tc.label})
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.NotErrorIs(t, err, ErrNotFound)
		})
	}

	assert.Equal(t, float64(len(cases)), testutil.ToFloat64(m.OperationsTotal.WithLabelValues(opAuthenticate, metrics.ResultRejected)))
}

// ─────────────────────────────────────────────
// SetKeys
// ─────────────────────────────────────────────

func TestCustodian_SetKeys_Success(t *testing.T) {
	svc, repo := newTestCustodian(t)
	key := newAgentKey(t)

	session, err := svc.Register(context.Background(), "carol", "", []models.KeyRecord{keyRecord(t, key, "primary", "pw")})
	require.NoError(t, err)

	extra := []models.KeyRecord{keyRecord(t, key, "rq_combo_0", "answers"), keyRecord(t, key, "primary", "new pw")}
	require.NoError(t, svc.SetKeys(context.Background(), session.Token, extra, signRecords(t, key, "carol", extra)))

	records, err := repo.FindKeyRecords(context.Background(), "carol")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "primary", records[0].Label)
	assert.Equal(t, extra[1], records[0])
	assert.Equal(t, "rq_combo_0", records[1].Label)

	_, _, err = svc.Authenticate(context.Background(), "carol", query(t, "primary", "new pw"))
	assert.NoError(t, err)
}

func TestCustodian_SetKeys_WrongSigner(t *testing.T) {
	svc, _ := newTestCustodian(t)
	key := newAgentKey(t)
	session, err := svc.Register(context.Background(), "carol", "", []models.KeyRecord{keyRecord(t, key, "primary", "pw")})
	require.NoError(t, err)

	intruder := newAgentKey(t)
	records := []models.KeyRecord{keyRecord(t, intruder, "primary", "stolen")}

	err = svc.SetKeys(context.Background(), session.Token, records, signRecords(t, intruder, "carol", records))
	assert.ErrorIs(t, err, crypto.ErrSignature)
}

func TestCustodian_SetKeys_SignatureBoundToAccount(t *testing.T) {
	svc, _ := newTestCustodian(t)
	key := newAgentKey(t)
	session, err := svc.Register(context.Background(), "carol", "", []models.KeyRecord{keyRecord(t, key, "primary", "pw")})
	require.NoError(t, err)

	records := []models.KeyRecord{keyRecord(t, key, "backup", "pw2")}
	err = svc.SetKeys(context.Background(), session.Token, records, signRecords(t, key, "someone-else", records))
	assert.ErrorIs(t, err, crypto.ErrSignature)
}

func TestCustodian_SetKeys_InvalidSession(t *testing.T) {
	svc, _ := newTestCustodian(t)
	key := newAgentKey(t)
	records := []models.KeyRecord{keyRecord(t, key, "primary", "pw")}
	_, err := svc.Register(context.Background(), "dave", "", records)
	require.NoError(t, err)
	sig := signRecords(t, key, "dave", records)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    testAppConfig.TokenIssuer,
		Subject:   "dave",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	})
	expiredToken, err := expired.SignedString([]byte(testAppConfig.TokenSignKey))
	require.NoError(t, err)

	forged, err := utils.GenerateJWTToken(testAppConfig.TokenIssuer, "dave", time.Minute, "other-key")
	require.NoError(t, err)

	ghost, err := utils.GenerateJWTToken(testAppConfig.TokenIssuer, "ghost", time.Minute, testAppConfig.TokenSignKey)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"empty":           "",
		"garbage":         "not-a-jwt",
		"expired":         expiredToken,
		"forged":          forged.SignedString,
		"unknown account": ghost.SignedString,
	} {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, svc.SetKeys(context.Background(), token, records, sig), ErrSessionInvalid)
		})
	}
}

func TestCustodian_SetKeys_EmptyList(t *testing.T) {
	svc, _ := newTestCustodian(t)
	session, err := svc.Register(context.Background(), "erin", "", []models.KeyRecord{keyRecord(t, newAgentKey(t), "primary", "pw")})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.SetKeys(context.Background(), session.Token, nil, crypto.Signature{}), ErrEmptyKeyList)
}

func TestCustodian_SetKeys_DuplicateLabelsRejected(t *testing.T) {
	svc, repo := newTestCustodian(t)
	key := newAgentKey(t)
	session, err := svc.Register(context.Background(), "hank", "", []models.KeyRecord{keyRecord(t, key, "primary", "pw")})
	require.NoError(t, err)

	records := []models.KeyRecord{keyRecord(t, key, "dup", "one"), keyRecord(t, key, "dup", "two")}
	err = svc.SetKeys(context.Background(), session.Token, records, signRecords(t, key, "hank", records))
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	stored, err := repo.FindKeyRecords(context.Background(), "hank")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "primary", stored[0].Label)
}

// ─────────────────────────────────────────────
// Recover
// ─────────────────────────────────────────────

func TestCustodian_Recover_FirstMatchInCallerOrder(t *testing.T) {
	svc, _ := newTestCustodian(t)
	key := newAgentKey(t)
	want := keyRecord(t, key, "rq_combo_2", "w2")
	_, err := svc.Register(context.Background(), "frank", "", []models.KeyRecord{
		keyRecord(t, key, "primary", "pw"),
		keyRecord(t, key, "rq_combo_0", "w0"),
		keyRecord(t, key, "rq_combo_1", "w1"),
		want,
	})
	require.NoError(t, err)

	match, err := svc.Recover(context.Background(), "frank", []models.AuthQuery{
		query(t, "rq_combo_0", "wrong"),
		query(t, "missing", "w1"),
		query(t, "rq_combo_2", "w2"),
		query(t, "rq_combo_1", "w1"),
	})
	require.NoError(t, err)
	assert.Equal(t, "rq_combo_2", match.Label)
	assert.Equal(t, want.CustodialKey, match.CustodialKey)

	unmasked, err := crypto.FromCustodialKey(match.CustodialKey, derive(t, "w2"))
	require.NoError(t, err)
	defer unmasked.Destroy()
	assert.Equal(t, key.ID(), unmasked.ID())

	_, err = crypto.FromCustodialKey(match.CustodialKey, derive(t, "w1"))
	assert.Error(t, err, "rq_combo_2 must not open with the rq_combo_1 answers")
}

func TestCustodian_Recover_NoMatch(t *testing.T) {
	svc, _ := newTestCustodian(t)
	_, err := svc.Register(context.Background(), "frank", "", []models.KeyRecord{keyRecord(t, newAgentKey(t), "primary", "pw")})
	require.NoError(t, err)

	_, err = svc.Recover(context.Background(), "frank", []models.AuthQuery{query(t, "primary", "nope")})
	assert.Equal(t, ErrNotFound, err)

	_, err = svc.Recover(context.Background(), "frank", nil)
	assert.Equal(t, ErrNotFound, err)

	_, err = svc.Recover(context.Background(), "nobody", []models.AuthQuery{query(t, "primary", "pw")})
	assert.Equal(t, ErrNotFound, err)
}

func TestCustodian_Recover_TooManyAttempts(t *testing.T) {
	svc, _ := newTestCustodian(t)
	attempts := make([]models.AuthQuery, 257)
	for i := range attempts {
		attempts[i] = models.AuthQuery{Label: "x"}
	}

	_, err := svc.Recover(context.Background(), "frank", attempts)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestCustodian_Recover_SingleLookupForAllAttempts(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCustodianRepository(ctrl)
	m := metrics.New()
	svc := NewCustodianService(repo, testAppConfig, nil, m, logger.Nop())

	key := newAgentKey(t)
	rec := keyRecord(t, key, "primary", "pw")
	repo.EXPECT().FindKeyRecords(gomock.Any(), "gina").Return([]models.KeyRecord{rec}, nil).Times(1)

	match, err := svc.Recover(context.Background(), "gina", []models.AuthQuery{
		query(t, "primary", "pw"),
		query(t, "other", "x"),
		query(t, "primary", "pw"),
	})
	require.NoError(t, err)
	assert.Equal(t, "primary", match.Label)
	assert.Equal(t, 1, testutil.CollectAndCount(m.RecoverAttempts))
}
