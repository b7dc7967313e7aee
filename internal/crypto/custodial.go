// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/ed25519"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"

	"github.com/MKhiriev/go-keyplace/models"
)

const custodialCheckContext = "keyplace/custodial-check/v1"

// CustodialKey masks the agent key under pk so it can be handed to a
// custodian. The result is deterministic for a given key and PassKey.
//
//	mask  = seed XOR MaskSecret
//	check = HMAC-SHA256(MaskSecret, context || pubkey || mask || seed)
func (k *AgentKey) CustodialKey(pk *PassKey, email *string) (models.CustodialKey, error) {
	maskSecret := pk.MaskSecret()
	if len(maskSecret) != models.Key32Size {
		return models.CustodialKey{}, ErrSecretDestroyed
	}
	seed, err := k.Seed()
	if err != nil {
		return models.CustodialKey{}, err
	}
	defer wipe(seed)

	ck := models.CustodialKey{PubKey: k.PubKey()}
	subtle.XORBytes(ck.Mask[:], seed, maskSecret)
	ck.Check = custodialCheck(maskSecret, ck.PubKey, ck.Mask, seed)
	if email != nil {
		e := *email
		ck.Email = &e
	}
	return ck, nil
}

// FromCustodialKey unmasks ck with pk. A wrong PassKey and a tampered
// record are both reported as [ErrMac]; no partial key is returned.
func FromCustodialKey(ck models.CustodialKey, pk *PassKey) (*AgentKey, error) {
	maskSecret := pk.MaskSecret()
	if len(maskSecret) != models.Key32Size {
		return nil, ErrSecretDestroyed
	}

	seed := make([]byte, ed25519.SeedSize)
	defer wipe(seed)
	subtle.XORBytes(seed, ck.Mask[:], maskSecret)

	want := custodialCheck(maskSecret, ck.PubKey, ck.Mask, seed)
	if !hmac.Equal(want[:], ck.Check[:]) {
		return nil, ErrMac
	}

	key, err := AgentKeyFromSeed(seed)
	if err != nil {
		return nil, ErrMac
	}
	if subtle.ConstantTimeCompare(key.pub, ck.PubKey[:]) != 1 {
		key.Destroy()
		return nil, ErrMac
	}
	return key, nil
}

func custodialCheck(maskSecret []byte, pub, mask models.Key32, seed []byte) models.Key32 {
	mac := hmac.New(sha256.New, maskSecret)
	mac.Write([]byte(custodialCheckContext))
	mac.Write(pub[:])
	mac.Write(mask[:])
	mac.Write(seed)

	var out models.Key32
	copy(out[:], mac.Sum(nil))
	return out
}
