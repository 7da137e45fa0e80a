package services

import (
	"fmt"
	"time"

	"github.com/hostelmate/hostelmate-api/initializers"
	"github.com/hostelmate/hostelmate-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateContract drafts a lease for a room between an owner and a
// tenant. It becomes binding only after both parties sign.
func CreateContract(hostelID, roomID, tenantID, ownerID int, monthlyRent, securityDeposit float64, startDate, endDate time.Time) (*models.Contract, error) {
	contract := models.Contract{
		HostelID:        hostelID,
		RoomID:          roomID,
		TenantID:        tenantID,
		OwnerID:         ownerID,
		MonthlyRent:     monthlyRent,
		SecurityDeposit: securityDeposit,
		StartDate:       startDate,
		EndDate:         endDate,
		Status:          models.ContractDraft,
	}
	if err := initializers.DB.Create(&contract).Error; err != nil {
		return nil, fmt.Errorf("failed to create contract: %w", err)
	}
	return &contract, nil
}

// SignContract records one party's signature. The signature write and
// the both-signed re-evaluation happen inside one transaction under a
// row lock, so there is no window where both signatures exist but the
// contract still reads pending. Signing twice is a no-op; signing a
// terminated or expired contract is rejected.
func SignContract(contractID int, party models.SignatoryParty) (*models.Contract, error) {
	var contract models.Contract
	err := initializers.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&contract, contractID).Error; err != nil {
			return fmt.Errorf("contract lookup failed: %w", err)
		}

		changed, err := contract.ApplySignature(party, time.Now())
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}
		return tx.Save(&contract).Error
	})
	if err != nil {
		return nil, err
	}
	return &contract, nil
}

// TerminateContract ends an active lease. Terminated is terminal: no
// further signatures or reactivation.
func TerminateContract(contractID int) (*models.Contract, error) {
	var contract models.Contract
	err := initializers.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&contract, contractID).Error; err != nil {
			return fmt.Errorf("contract lookup failed: %w", err)
		}
		if contract.Status != models.ContractActive {
			return models.ErrInvalidContractState
		}
		contract.Status = models.ContractTerminated
		return tx.Save(&contract).Error
	})
	if err != nil {
		return nil, err
	}
	return &contract, nil
}
