package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/hostelmate/hostelmate-api/initializers"
	"github.com/hostelmate/hostelmate-api/models"
	"gorm.io/gorm"
)

// Common error response helper
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

// Hostel handlers
func CreateHostel(ctx *gin.Context) {
	var hostel models.Hostel
	if err := ctx.ShouldBindJSON(&hostel); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if ownerID, ok := currentUserID(ctx); ok {
		hostel.OwnerID = ownerID
	}

	if err := initializers.DB.Create(&hostel).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create hostel", err)
		return
	}

	ctx.JSON(http.StatusCreated, hostel)
}

func AddRoom(ctx *gin.Context) {
	var room models.Room
	if err := ctx.ShouldBindJSON(&room); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	// Validate hostel exists
	var hostel models.Hostel
	if err := initializers.DB.First(&hostel, room.HostelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Hostel not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to validate hostel", err)
		}
		return
	}

	if err := initializers.DB.Create(&room).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to add room", err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Room added successfully", "room": room})
}

// getAWSUploader returns a configured AWS S3 uploader
func getAWSUploader() (*manager.Uploader, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return manager.NewUploader(client), nil
}

func UploadHostelImages(ctx *gin.Context) {
	// Get multipart form
	form, err := ctx.MultipartForm()
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid form data", err)
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		respondWithError(ctx, http.StatusBadRequest, "No files uploaded", nil)
		return
	}

	// Get and validate hostelId
	hostelIdStr := ctx.PostForm("hostelId")
	if hostelIdStr == "" {
		respondWithError(ctx, http.StatusBadRequest, "Missing hostelId", nil)
		return
	}

	hostelId, err := strconv.Atoi(hostelIdStr)
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid hostelId", err)
		return
	}

	// Validate hostel exists
	var hostel models.Hostel
	if err := initializers.DB.First(&hostel, hostelId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Hostel not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to validate hostel", err)
		}
		return
	}

	// Get AWS uploader
	uploader, err := getAWSUploader()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to configure AWS", err)
		return
	}

	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		bucket = "hostelmate"
	}

	var uploadedUrls []string
	var failedUploads []string

	// Upload files and save to database
	for _, file := range files {
		f, openErr := file.Open()
		if openErr != nil {
			log.Printf("Error opening file %s: %v", file.Filename, openErr)
			failedUploads = append(failedUploads, file.Filename)
			continue
		}

		// Generate a unique filename to prevent overwrites
		uniqueFilename := fmt.Sprintf("%d-%s-%s", hostelId, time.Now().Format("20060102150405"), file.Filename)

		result, uploadErr := uploader.Upload(context.TODO(), &s3.PutObjectInput{
			Bucket:      aws.String(bucket),
			Key:         aws.String(uniqueFilename),
			Body:        f,
			ACL:         "public-read",
			ContentType: aws.String(file.Header.Get("Content-Type")),
		})
		f.Close() // Close file immediately after use

		if uploadErr != nil {
			log.Printf("Error uploading file %s: %v", file.Filename, uploadErr)
			failedUploads = append(failedUploads, file.Filename)
			continue
		}

		uploadedUrls = append(uploadedUrls, result.Location)

		// Create a HostelImage record
		hostelImage := models.HostelImage{
			Url:      result.Location,
			HostelID: hostelId,
		}

		if err := initializers.DB.Create(&hostelImage).Error; err != nil {
			log.Printf("Error saving image to database: %v", err)
			// We've already uploaded the file, so we'll just log this error
		}
	}

	response := gin.H{
		"message": "Files processed",
		"urls":    uploadedUrls,
	}

	if len(failedUploads) > 0 {
		response["failed"] = failedUploads
	}

	ctx.JSON(http.StatusOK, response)
}

func GetHostels(ctx *gin.Context) {
	var hostels []models.Hostel

	// Add pagination
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	offset := (page - 1) * limit

	query := initializers.DB.Preload("Images")

	// Add search by name or city if provided
	if search := ctx.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}
	if city := ctx.Query("city"); city != "" {
		query = query.Where("city = ?", city)
	}

	// Execute the query with pagination
	result := query.Limit(limit).Offset(offset).Find(&hostels)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch hostels", result.Error)
		return
	}

	// Get total count for pagination
	var count int64
	initializers.DB.Model(&models.Hostel{}).Count(&count)

	ctx.JSON(http.StatusOK, gin.H{
		"hostels": hostels,
		"metadata": gin.H{
			"total": count,
			"page":  page,
			"limit": limit,
		},
	})
}

func GetHostel(ctx *gin.Context) {
	hostelId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid hostel ID", err)
		return
	}

	var hostel models.Hostel
	result := initializers.DB.Preload("Rooms").Preload("Images").First(&hostel, hostelId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Hostel not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve hostel", result.Error)
		}
		return
	}

	ctx.JSON(http.StatusOK, hostel)
}
