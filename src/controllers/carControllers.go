package controllers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/PitStop/PitStop-Backend/src/dtos"
	"github.com/PitStop/PitStop-Backend/src/photostore"
	"github.com/PitStop/PitStop-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type CarController struct {
	service *services.CarService
	store   *photostore.DiskStore
}

func NewCarController(service *services.CarService, store *photostore.DiskStore) *CarController {
	return &CarController{service: service, store: store}
}

func (cc *CarController) GetAllCars(c *gin.Context) {
	clientIdStr := c.Query("clientId")
	var clientId *int
	if clientIdStr != "" {
		parsedId, err := strconv.Atoi(clientIdStr)
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid clientId parameter"})
			return
		}
		clientId = &parsedId
	}

	cars, err := cc.service.GetAllCars(clientId)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, cars)
}

func (cc *CarController) GetCarByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	car, err := cc.service.GetCarByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, car)
}

// CreateCar accepts a multipart form with the car fields plus an optional
// "photo" file and any number of "extraPhotos" files. The first stored photo
// becomes the primary.
func (cc *CarController) CreateCar(c *gin.Context) {
	var form dtos.CarForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	uploads, closeUploads, err := collectUploads(c)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	defer closeUploads()

	car, err := cc.service.CreateCar(&form, uploads)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(201, car)
}

// UpdateCar accepts the same multipart form as CreateCar plus repeated
// "removePhotos" fields naming stored photo paths to drop.
func (cc *CarController) UpdateCar(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	var form dtos.CarForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	uploads, closeUploads, err := collectUploads(c)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	defer closeUploads()

	car, err := cc.service.UpdateCar(id, &form, uploads, form.RemovePhotos)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, car)
}

func (cc *CarController) DeleteCar(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := cc.service.DeleteCar(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Car deleted successfully"})
}

// ServePhoto streams the primary photo of a car with cache headers. The ETag
// is keyed on the car version, so every edit invalidates stale copies.
func (cc *CarController) ServePhoto(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	car, err := cc.service.GetCarByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if car.Photo == "" {
		c.JSON(404, gin.H{"error": "Car has no photo"})
		return
	}

	filePath, err := cc.store.Abs(car.Photo)
	if err != nil {
		c.JSON(404, gin.H{"error": "Photo file not found"})
		return
	}
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		c.JSON(404, gin.H{"error": "Photo file not found"})
		return
	}

	// Cache headers
	lastModified := fileInfo.ModTime().UTC().Format("Mon, 02 Jan 2006 15:04:05 GMT")
	etag := fmt.Sprintf(`"%d-%d"`, car.ID, car.Version)

	c.Header("Cache-Control", "public, max-age=86400") // 1 day
	c.Header("ETag", etag)
	c.Header("Last-Modified", lastModified)

	if match := c.GetHeader("If-None-Match"); match == etag {
		c.Status(304) // Not Modified
		return
	}

	if modSince := c.GetHeader("If-Modified-Since"); modSince != "" {
		if t, err := time.Parse("Mon, 02 Jan 2006 15:04:05 GMT", modSince); err == nil {
			if !fileInfo.ModTime().After(t) {
				c.Status(304) // Not Modified
				return
			}
		}
	}

	c.File(filePath)
}

// collectUploads opens every photo file of the multipart form, the "photo"
// field first and the "extraPhotos" files after it in the order they were
// sent. A JSON request simply yields no uploads.
func collectUploads(c *gin.Context) ([]services.PhotoUpload, func(), error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, func() {}, nil
		}
		return nil, nil, err
	}

	var headers []*multipart.FileHeader
	if primary := form.File["photo"]; len(primary) > 0 {
		headers = append(headers, primary[0])
	}
	headers = append(headers, form.File["extraPhotos"]...)

	uploads := make([]services.PhotoUpload, 0, len(headers))
	var opened []multipart.File
	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		opened = append(opened, file)
		uploads = append(uploads, services.PhotoUpload{
			Filename: header.Filename,
			Size:     header.Size,
			Content:  file,
		})
	}

	return uploads, closeAll, nil
}
