package models

import (
	"testing"
	"time"
)

func TestApplySignature_BothPartiesActivate(t *testing.T) {
	contract := Contract{Status: ContractDraft}
	now := time.Now()

	changed, err := contract.ApplySignature(PartyTenant, now)
	if err != nil {
		t.Fatalf("tenant sign error: %v", err)
	}
	if !changed {
		t.Fatal("tenant sign should report a change")
	}
	if contract.Status != ContractPendingSignatures {
		t.Fatalf("expected pending_signatures after one signature, got %s", contract.Status)
	}
	if contract.TenantSignedAt == nil {
		t.Fatal("tenant signedAt not recorded")
	}

	changed, err = contract.ApplySignature(PartyOwner, now)
	if err != nil {
		t.Fatalf("owner sign error: %v", err)
	}
	if !changed {
		t.Fatal("owner sign should report a change")
	}
	if contract.Status != ContractActive {
		t.Fatalf("expected active after both signatures, got %s", contract.Status)
	}
}

func TestApplySignature_Idempotent(t *testing.T) {
	contract := Contract{Status: ContractDraft}
	now := time.Now()
	first := now.Add(-time.Hour)

	if _, err := contract.ApplySignature(PartyTenant, first); err != nil {
		t.Fatalf("sign error: %v", err)
	}
	changed, err := contract.ApplySignature(PartyTenant, now)
	if err != nil {
		t.Fatalf("repeat sign error: %v", err)
	}
	if changed {
		t.Fatal("repeat signature should be a no-op")
	}
	if !contract.TenantSignedAt.Equal(first) {
		t.Fatal("repeat signature must not move signedAt")
	}
	if contract.Status != ContractPendingSignatures {
		t.Fatalf("status changed on repeat signature: %s", contract.Status)
	}
}

func TestApplySignature_RejectedWhenClosed(t *testing.T) {
	for _, status := range []ContractStatus{ContractTerminated, ContractExpired} {
		contract := Contract{Status: status}
		_, err := contract.ApplySignature(PartyOwner, time.Now())
		if err != ErrInvalidContractState {
			t.Errorf("status %s: expected ErrInvalidContractState, got %v", status, err)
		}
		if contract.OwnerSigned {
			t.Errorf("status %s: signature recorded on closed contract", status)
		}
	}
}

func TestApplySignature_UnknownParty(t *testing.T) {
	contract := Contract{Status: ContractDraft}
	if _, err := contract.ApplySignature("witness", time.Now()); err == nil {
		t.Fatal("expected error for unknown party")
	}
}
