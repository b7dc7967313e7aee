package service

import (
	"github.com/MKhiriev/go-keyplace/internal/adapter"
	"github.com/MKhiriev/go-keyplace/internal/crypto"
	"github.com/MKhiriev/go-keyplace/internal/logger"
	"github.com/MKhiriev/go-keyplace/internal/store"
	"github.com/MKhiriev/go-keyplace/internal/workers"
)

// ClientServices groups the CLI services.
type ClientServices struct {
	KeyManager      KeyManager
	RecoveryService ClientRecoveryService
}

func NewClientServices(localStore *store.ClientStorages, custodian adapter.CustodianAdapter, sealer crypto.Sealer, deriver workers.BatchDeriver, logger *logger.Logger) *ClientServices {
	keys := NewKeyManager(localStore.AgentKeyRepository, sealer, logger)

	return &ClientServices{
		KeyManager:      keys,
		RecoveryService: NewClientRecoveryService(custodian, keys, deriver, logger),
	}
}
