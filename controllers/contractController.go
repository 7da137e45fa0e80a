package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hostelmate/hostelmate-api/initializers"
	"github.com/hostelmate/hostelmate-api/models"
	"github.com/hostelmate/hostelmate-api/services"
)

// CreateContract lets an owner draft a lease for a tenant.
func CreateContract(ctx *gin.Context) {
	var body struct {
		HostelID        int       `json:"hostelId" binding:"required"`
		RoomID          int       `json:"roomId" binding:"required"`
		TenantID        int       `json:"tenantId" binding:"required"`
		MonthlyRent     float64   `json:"monthlyRent" binding:"required"`
		SecurityDeposit float64   `json:"securityDeposit"`
		StartDate       time.Time `json:"startDate" binding:"required"`
		EndDate         time.Time `json:"endDate" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	ownerID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	contract, err := services.CreateContract(body.HostelID, body.RoomID, body.TenantID, ownerID,
		body.MonthlyRent, body.SecurityDeposit, body.StartDate, body.EndDate)
	if err != nil {
		log.Println("Contract creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create contract")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"contract": contract})
}

// SignContract records the calling party's signature. The contract
// activates once both tenant and owner have signed.
func SignContract(ctx *gin.Context) {
	contractId, err := strconv.Atoi(ctx.Param("contractId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse contractId")
		return
	}

	var body struct {
		Party models.SignatoryParty `json:"party" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	contract, err := services.SignContract(contractId, body.Party)
	if err != nil {
		if errors.Is(err, models.ErrInvalidContractState) {
			sendErrorResponse(ctx, http.StatusConflict, "Contract is no longer open for signing.")
			return
		}
		log.Println("Contract signing error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to sign contract")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"status":       contract.Status,
		"tenantSigned": contract.TenantSigned,
		"ownerSigned":  contract.OwnerSigned,
	})
}

// TerminateContract ends an active lease.
func TerminateContract(ctx *gin.Context) {
	contractId, err := strconv.Atoi(ctx.Param("contractId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse contractId")
		return
	}

	contract, err := services.TerminateContract(contractId)
	if err != nil {
		if errors.Is(err, models.ErrInvalidContractState) {
			sendErrorResponse(ctx, http.StatusConflict, "Only active contracts can be terminated.")
			return
		}
		log.Println("Contract termination error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to terminate contract")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"status": contract.Status})
}

// GetContractById returns one contract.
func GetContractById(ctx *gin.Context) {
	contractId, err := strconv.Atoi(ctx.Param("contractId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse contractId")
		return
	}

	var contract models.Contract
	if result := initializers.DB.First(&contract, contractId); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusNotFound, "Contract not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"contract": contract})
}

// GetContractsByTenant lists contracts where the caller is the tenant.
func GetContractsByTenant(ctx *gin.Context) {
	tenantId, err := strconv.Atoi(ctx.Param("tenantId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse tenantId")
		return
	}

	var contracts []models.Contract
	if result := initializers.DB.
		Where("tenant_id = ?", tenantId).
		Order("created_at desc").
		Find(&contracts); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch contracts")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"contracts": contracts})
}
