// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-keyplace/internal/adapter"
	"github.com/MKhiriev/go-keyplace/internal/crypto"
	"github.com/MKhiriev/go-keyplace/internal/logger"
	"github.com/MKhiriev/go-keyplace/internal/workers"
	"github.com/MKhiriev/go-keyplace/models"
	"github.com/awnumar/memguard"
	"github.com/tyler-smith/go-bip39"
)

const (
	// PrimaryLabel is the label registered at signup.
	PrimaryLabel = "primary"

	// QuestionWindow is the number of consecutive answers behind one
	// recovery record. With 8 questions there are 5 windows, so any 4
	// wrong answers that leave one window intact still recover.
	QuestionWindow = 4

	questionLabelPrefix = "rq_combo_"
	codeLabelPrefix     = "printed_code_"

	// printedCodeEntropyBits gives 12-word mnemonics.
	printedCodeEntropyBits = 128
)

// QuestionLabel is the label of question window i.
func QuestionLabel(i int) string { return fmt.Sprintf("%s%d", questionLabelPrefix, i) }

// CodeLabel is the label of printed code i.
func CodeLabel(i int) string { return fmt.Sprintf("%s%d", codeLabelPrefix, i) }

type clientRecoveryService struct {
	adapter adapter.CustodianAdapter
	keys    KeyManager
	deriver workers.BatchDeriver
	logger  *logger.Logger
}

func NewClientRecoveryService(custodian adapter.CustodianAdapter, keys KeyManager, deriver workers.BatchDeriver, log *logger.Logger) ClientRecoveryService {
	return &clientRecoveryService{adapter: custodian, keys: keys, deriver: deriver, logger: log}
}

func (c *clientRecoveryService) Signup(ctx context.Context, accountID, name string, passphrase *crypto.Secret, email *string) (crypto.AgentID, models.Session, error) {
	key, err := crypto.GenerateAgentKey(nil)
	if err != nil {
		return "", models.Session{}, fmt.Errorf("generate agent key: %w", err)
	}
	defer key.Destroy()

	pks, err := c.deriver.DeriveAll(ctx, []*crypto.Secret{passphrase})
	if err != nil {
		return "", models.Session{}, fmt.Errorf("derive passkey: %w", err)
	}
	pk := pks[0]
	defer pk.Destroy()

	ck, err := key.CustodialKey(pk, email)
	if err != nil {
		return "", models.Session{}, fmt.Errorf("mask agent key: %w", err)
	}

	session, err := c.adapter.Register(ctx, models.RegisterRequest{
		AccountID: accountID,
		Name:      name,
		Keys:      []models.KeyRecord{{Label: PrimaryLabel, UserAuthKey: pk.Auth(), CustodialKey: ck}},
	})
	if err != nil {
		return "", models.Session{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	id, err := c.keys.Store(ctx, key)
	if err != nil {
		return "", models.Session{}, err
	}

	logger.FromContext(ctx).Info().Str("account_id", accountID).Str("agent_id", id.String()).Msg("signed up")
	return id, session, nil
}

func (c *clientRecoveryService) Login(ctx context.Context, accountID, label string, passphrase *crypto.Secret) (crypto.AgentID, models.Session, error) {
	pks, err := c.deriver.DeriveAll(ctx, []*crypto.Secret{passphrase})
	if err != nil {
		return "", models.Session{}, fmt.Errorf("derive passkey: %w", err)
	}
	pk := pks[0]
	defer pk.Destroy()

	resp, err := c.adapter.Authenticate(ctx, models.AuthRequest{
		AccountID: accountID,
		Query:     models.AuthQuery{Label: label, UserAuthKey: pk.Auth()},
	})
	if err != nil {
		return "", models.Session{}, fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	id, err := c.unmaskAndStore(ctx, resp.Match.CustodialKey, []*crypto.PassKey{pk})
	if err != nil {
		return "", models.Session{}, err
	}
	return id, resp.Session, nil
}

func (c *clientRecoveryService) AddRecoveryQuestions(ctx context.Context, session models.Session, id crypto.AgentID, questions []models.RecoveryQuestion) ([]string, error) {
	passphrases, err := questionWindows(questions)
	if err != nil {
		return nil, err
	}
	defer destroySecrets(passphrases)

	labels := make([]string, len(passphrases))
	for i := range labels {
		labels[i] = QuestionLabel(i)
	}

	if err = c.registerRecoveryKeys(ctx, session, id, labels, passphrases); err != nil {
		return nil, err
	}
	return labels, nil
}

func (c *clientRecoveryService) AddPrintedCodes(ctx context.Context, session models.Session, id crypto.AgentID, n int) ([]string, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: code count must be positive, got %d", ErrInvalidDataProvided, n)
	}

	codes := make([]string, n)
	labels := make([]string, n)
	passphrases := make([]*crypto.Secret, n)
	defer destroySecrets(passphrases)

	for i := range codes {
		code, err := newPrintedCode()
		if err != nil {
			return nil, err
		}
		codes[i] = code
		labels[i] = CodeLabel(i)
		passphrases[i] = crypto.NewPassphrase(code)
	}

	if err := c.registerRecoveryKeys(ctx, session, id, labels, passphrases); err != nil {
		return nil, err
	}
	return codes, nil
}

func (c *clientRecoveryService) RecoverWithQuestions(ctx context.Context, accountID string, questions []models.RecoveryQuestion) (crypto.AgentID, error) {
	passphrases, err := questionWindows(questions)
	if err != nil {
		return "", err
	}
	defer destroySecrets(passphrases)

	pks, err := c.deriver.DeriveAll(ctx, passphrases)
	if err != nil {
		return "", fmt.Errorf("derive passkeys: %w", err)
	}
	defer destroyPassKeys(pks)

	attempts := make([]models.AuthQuery, len(pks))
	for i, pk := range pks {
		attempts[i] = models.AuthQuery{Label: QuestionLabel(i), UserAuthKey: pk.Auth()}
	}

	return c.recover(ctx, accountID, attempts, pks)
}

func (c *clientRecoveryService) RecoverWithPrintedCode(ctx context.Context, accountID, code string, maxCodes int) (crypto.AgentID, error) {
	code = normalizeCode(code)
	if !bip39.IsMnemonicValid(code) {
		return "", ErrInvalidRecoveryCode
	}
	if maxCodes <= 0 {
		return "", fmt.Errorf("%w: max codes must be positive, got %d", ErrInvalidDataProvided, maxCodes)
	}

	passphrase := crypto.NewPassphrase(code)
	defer passphrase.Destroy()

	pks, err := c.deriver.DeriveAll(ctx, []*crypto.Secret{passphrase})
	if err != nil {
		return "", fmt.Errorf("derive passkey: %w", err)
	}
	defer destroyPassKeys(pks)

	// the code could sit under any printed label; one derivation covers all
	attempts := make([]models.AuthQuery, maxCodes)
	for i := range attempts {
		attempts[i] = models.AuthQuery{Label: CodeLabel(i), UserAuthKey: pks[0].Auth()}
	}

	return c.recover(ctx, accountID, attempts, pks)
}

func (c *clientRecoveryService) SignMessage(ctx context.Context, id crypto.AgentID, fields ...crypto.Field) (crypto.Signature, error) {
	var sig crypto.Signature
	err := c.keys.WithKey(ctx, id, func(key *crypto.AgentKey) error {
		var err error
		sig, err = crypto.Sign(key, fields...)
		return err
	})
	return sig, err
}

// registerRecoveryKeys derives one PassKey per passphrase, masks the agent
// key under each and uploads the batch signed by the same agent key.
func (c *clientRecoveryService) registerRecoveryKeys(ctx context.Context, session models.Session, id crypto.AgentID, labels []string, passphrases []*crypto.Secret) error {
	pks, err := c.deriver.DeriveAll(ctx, passphrases)
	if err != nil {
		return fmt.Errorf("derive passkeys: %w", err)
	}
	defer destroyPassKeys(pks)

	return c.keys.WithKey(ctx, id, func(key *crypto.AgentKey) error {
		records := make([]models.KeyRecord, len(pks))
		for i, pk := range pks {
			ck, err := key.CustodialKey(pk, nil)
			if err != nil {
				return fmt.Errorf("mask agent key: %w", err)
			}
			records[i] = models.KeyRecord{Label: labels[i], UserAuthKey: pk.Auth(), CustodialKey: ck}
		}

		sig, err := crypto.Sign(key, crypto.String(session.AccountID), crypto.Bytes(crypto.KeyRecordsDigest(records)))
		if err != nil {
			return fmt.Errorf("sign key records: %w", err)
		}

		err = c.adapter.SetKeys(ctx, session.Token, models.SetKeysRequest{Keys: records, Signature: sig.String()})
		if err != nil {
			return fmt.Errorf("%w: %w", ErrSetKeysOnServer, mapAdapterError(err))
		}

		logger.FromContext(ctx).Info().
			Str("account_id", session.AccountID).
			Int("records", len(records)).
			Msg("recovery keys registered")
		return nil
	})
}

func (c *clientRecoveryService) recover(ctx context.Context, accountID string, attempts []models.AuthQuery, pks []*crypto.PassKey) (crypto.AgentID, error) {
	match, err := c.adapter.Recover(ctx, models.RecoverRequest{AccountID: accountID, Attempts: attempts})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRecoverOnServer, mapAdapterError(err))
	}

	id, err := c.unmaskAndStore(ctx, match.CustodialKey, pks)
	if err != nil {
		return "", err
	}

	logger.FromContext(ctx).Info().
		Str("account_id", accountID).
		Str("label", match.Label).
		Str("agent_id", id.String()).
		Msg("agent key recovered")
	return id, nil
}

// unmaskAndStore tries every candidate PassKey. ErrMac means "not this
// one"; any other error stops the search.
func (c *clientRecoveryService) unmaskAndStore(ctx context.Context, ck models.CustodialKey, pks []*crypto.PassKey) (crypto.AgentID, error) {
	for _, pk := range pks {
		key, err := crypto.FromCustodialKey(ck, pk)
		if errors.Is(err, crypto.ErrMac) {
			continue
		}
		if err != nil {
			return "", err
		}

		id, err := c.keys.Store(ctx, key)
		key.Destroy()
		return id, err
	}
	return "", ErrNoKeyMatched
}

// questionWindows builds one passphrase per window of QuestionWindow
// consecutive answers: the lower-cased "question|answer;" of each.
func questionWindows(questions []models.RecoveryQuestion) ([]*crypto.Secret, error) {
	if len(questions) < QuestionWindow {
		return nil, fmt.Errorf("%w: need at least %d, got %d", ErrNotEnoughQuestions, QuestionWindow, len(questions))
	}

	out := make([]*crypto.Secret, 0, len(questions)-QuestionWindow+1)
	for start := 0; start+QuestionWindow <= len(questions); start++ {
		var b strings.Builder
		for _, q := range questions[start : start+QuestionWindow] {
			b.WriteString(normalizeAnswer(q.Question))
			b.WriteByte('|')
			b.WriteString(normalizeAnswer(q.Answer))
			b.WriteByte(';')
		}
		out = append(out, crypto.NewPassphrase(b.String()))
	}
	return out, nil
}

func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// normalizeCode collapses whitespace so a code typed across several lines
// still derives the same key.
func normalizeCode(code string) string {
	return strings.Join(strings.Fields(strings.ToLower(code)), " ")
}

func newPrintedCode() (string, error) {
	entropy, err := bip39.NewEntropy(printedCodeEntropyBits)
	if err != nil {
		return "", fmt.Errorf("generate code entropy: %w", err)
	}
	defer memguard.WipeBytes(entropy)

	code, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("encode code: %w", err)
	}
	return code, nil
}

func destroySecrets(secrets []*crypto.Secret) {
	for _, s := range secrets {
		s.Destroy()
	}
}

func destroyPassKeys(pks []*crypto.PassKey) {
	for _, pk := range pks {
		if pk != nil {
			pk.Destroy()
		}
	}
}
