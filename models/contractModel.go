package models

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type ContractStatus string

const (
	ContractDraft             ContractStatus = "draft"
	ContractPendingSignatures ContractStatus = "pending_signatures"
	ContractActive            ContractStatus = "active"
	ContractTerminated        ContractStatus = "terminated"
	ContractExpired           ContractStatus = "expired"
)

type SignatoryParty string

const (
	PartyTenant SignatoryParty = "tenant"
	PartyOwner  SignatoryParty = "owner"
)

var ErrInvalidContractState = errors.New("contract is not open for signing")

type Contract struct {
	gorm.Model
	HostelID        int            `json:"hostelId"`
	RoomID          int            `json:"roomId"`
	TenantID        int            `json:"tenantId"`
	OwnerID         int            `json:"ownerId"`
	MonthlyRent     float64        `json:"monthlyRent"`
	SecurityDeposit float64        `json:"securityDeposit"`
	StartDate       time.Time      `json:"startDate"`
	EndDate         time.Time      `json:"endDate"`
	Status          ContractStatus `json:"status"`
	TenantSigned    bool           `json:"tenantSigned"`
	TenantSignedAt  *time.Time     `json:"tenantSignedAt"`
	OwnerSigned     bool           `json:"ownerSigned"`
	OwnerSignedAt   *time.Time     `json:"ownerSignedAt"`
}

// ApplySignature records one party's signature and, once both parties
// have signed, activates the contract in the same step. Signing twice
// is a no-op; signing a terminated or expired contract is rejected.
func (c *Contract) ApplySignature(party SignatoryParty, now time.Time) (changed bool, err error) {
	if c.Status == ContractTerminated || c.Status == ContractExpired {
		return false, ErrInvalidContractState
	}

	switch party {
	case PartyTenant:
		if !c.TenantSigned {
			c.TenantSigned = true
			c.TenantSignedAt = &now
			changed = true
		}
	case PartyOwner:
		if !c.OwnerSigned {
			c.OwnerSigned = true
			c.OwnerSignedAt = &now
			changed = true
		}
	default:
		return false, fmt.Errorf("unknown signatory party %q", party)
	}

	if changed && c.Status == ContractDraft {
		c.Status = ContractPendingSignatures
	}
	if c.TenantSigned && c.OwnerSigned && c.Status != ContractActive {
		c.Status = ContractActive
		changed = true
	}
	return changed, nil
}
