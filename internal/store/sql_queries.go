package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-keyplace/models"
)

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	accountsTable   = "accounts"
	keyRecordsTable = "key_records"

	upsertKeyRecordSuffix = `ON CONFLICT (account_id, label) DO UPDATE SET
		auth_key = EXCLUDED.auth_key,
		pubkey = EXCLUDED.pubkey,
		mask = EXCLUDED.mask,
		check_mac = EXCLUDED.check_mac,
		email = EXCLUDED.email,
		updated_at = NOW()`
)

var keyRecordColumns = []string{"label", "auth_key", "pubkey", "mask", "check_mac", "email"}

func buildInsertAccountQuery(account models.Account) (string, []any, error) {
	return psql.Insert(accountsTable).
		Columns("account_id", "name").
		Values(account.ID, account.Name).
		Suffix("RETURNING created_at").
		ToSql()
}

// buildUpsertKeyRecordsQuery inserts all records in one statement. Records
// must have unique labels; ON CONFLICT can not touch a row twice.
func buildUpsertKeyRecordsQuery(accountID string, records []models.KeyRecord) (string, []any, error) {
	b := psql.Insert(keyRecordsTable).
		Columns(append([]string{"account_id"}, keyRecordColumns...)...)

	for _, r := range records {
		b = b.Values(
			accountID,
			r.Label,
			r.UserAuthKey.Auth[:],
			r.CustodialKey.PubKey[:],
			r.CustodialKey.Mask[:],
			r.CustodialKey.Check[:],
			r.CustodialKey.Email,
		)
	}

	return b.Suffix(upsertKeyRecordSuffix).ToSql()
}

func buildLockAccountQuery(accountID string) (string, []any, error) {
	return psql.Select("account_id").
		From(accountsTable).
		Where(sq.Eq{"account_id": accountID}).
		Suffix("FOR UPDATE").
		ToSql()
}

func buildFindKeyRecordQuery(accountID, label string) (string, []any, error) {
	return psql.Select(keyRecordColumns...).
		From(keyRecordsTable).
		Where(sq.Eq{"account_id": accountID, "label": label}).
		ToSql()
}

// buildFindKeyRecordsQuery left joins from accounts so an existing account
// is told apart from an unknown one in a single statement.
func buildFindKeyRecordsQuery(accountID string) (string, []any, error) {
	cols := make([]string, 0, len(keyRecordColumns))
	for _, c := range keyRecordColumns {
		cols = append(cols, "k."+c)
	}

	return psql.Select(cols...).
		From(accountsTable + " a").
		LeftJoin(keyRecordsTable + " k ON k.account_id = a.account_id").
		Where(sq.Eq{"a.account_id": accountID}).
		OrderBy("k.position").
		ToSql()
}

// dedupeRecords keeps the first position and the last value of each label,
// matching what applying the records one by one would produce.
func dedupeRecords(records []models.KeyRecord) []models.KeyRecord {
	index := make(map[string]int, len(records))
	out := make([]models.KeyRecord, 0, len(records))
	for _, r := range records {
		if i, ok := index[r.Label]; ok {
			out[i] = r
			continue
		}
		index[r.Label] = len(out)
		out = append(out, r)
	}
	return out
}
