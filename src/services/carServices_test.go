package services

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PitStop/PitStop-Backend/src/dtos"
	"github.com/PitStop/PitStop-Backend/src/models"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "pitstop.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&models.ClientModel{},
		&models.CarModel{},
		&models.TireModel{},
		&models.MasterModel{},
		&models.ServiceModel{},
		&models.OrderModel{},
		&models.CompletedWorkModel{},
		&models.UserModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// fakePhotoStore records calls instead of touching the disk. Returned paths
// are deterministic: photos/fake-1.jpg, photos/fake-2.jpg, ...
type fakePhotoStore struct {
	saves     int
	removed   []string
	saveErr   error
	removeErr error
}

func (f *fakePhotoStore) Save(content io.Reader, originalFilename string) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	if _, err := io.Copy(io.Discard, content); err != nil {
		return "", err
	}
	f.saves++
	return fmt.Sprintf("photos/fake-%d%s", f.saves, strings.ToLower(filepath.Ext(originalFilename))), nil
}

func (f *fakePhotoStore) Remove(relPath string) error {
	f.removed = append(f.removed, relPath)
	return f.removeErr
}

func (f *fakePhotoStore) removeCount(path string) int {
	n := 0
	for _, p := range f.removed {
		if p == path {
			n++
		}
	}
	return n
}

func newCarFixture(t *testing.T) (*CarService, *fakePhotoStore, *gorm.DB, int) {
	t.Helper()
	db := openTestDB(t)
	store := &fakePhotoStore{}
	service := NewCarService(db, store, zap.NewNop())

	client := models.ClientModel{FirstName: "Dana", LastName: "Petrov", Phone: "555-0101"}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("seed client: %v", err)
	}
	return service, store, db, client.Id
}

func carForm(clientId int) *dtos.CarForm {
	return &dtos.CarForm{
		ClientId: clientId,
		Make:     "Toyota",
		Model:    "Corolla",
		Year:     2019,
		Plate:    "AB123CD",
	}
}

func upload(name, content string) PhotoUpload {
	return PhotoUpload{Filename: name, Size: int64(len(content)), Content: strings.NewReader(content)}
}

func TestCreateCarStoresPrimaryThenExtras(t *testing.T) {
	service, store, _, clientId := newCarFixture(t)

	car, err := service.CreateCar(carForm(clientId), []PhotoUpload{
		upload("front.jpg", "aaa"),
		upload("side.jpg", "bbb"),
		upload("rear.jpg", "ccc"),
	})
	if err != nil {
		t.Fatalf("CreateCar: %v", err)
	}

	if car.Photo != "photos/fake-1.jpg" {
		t.Fatalf("primary = %q, want photos/fake-1.jpg", car.Photo)
	}
	extras, err := models.DecodePhotoList(car.ExtraPhotos)
	if err != nil {
		t.Fatalf("decode extras: %v", err)
	}
	if len(extras) != 2 || extras[0] != "photos/fake-2.jpg" || extras[1] != "photos/fake-3.jpg" {
		t.Fatalf("extras = %v, want [photos/fake-2.jpg photos/fake-3.jpg]", extras)
	}
	if car.Version != 1 {
		t.Fatalf("version = %d, want 1", car.Version)
	}
	if store.saves != 3 {
		t.Fatalf("saves = %d, want 3", store.saves)
	}
}

func TestCreateCarWithoutPhotos(t *testing.T) {
	service, store, _, clientId := newCarFixture(t)

	car, err := service.CreateCar(carForm(clientId), nil)
	if err != nil {
		t.Fatalf("CreateCar: %v", err)
	}
	if car.Photo != "" {
		t.Fatalf("primary = %q, want empty", car.Photo)
	}
	extras, _ := models.DecodePhotoList(car.ExtraPhotos)
	if len(extras) != 0 {
		t.Fatalf("extras = %v, want none", extras)
	}
	if store.saves != 0 {
		t.Fatalf("saves = %d, want 0", store.saves)
	}
}

func TestCreateCarValidation(t *testing.T) {
	service, _, _, clientId := newCarFixture(t)

	form := carForm(clientId)
	form.Year = 1850
	_, err := service.CreateCar(form, nil)
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError for year 1850, got %v", err)
	}
	if validation.Field != "year" {
		t.Fatalf("field = %q, want year", validation.Field)
	}

	if _, err := service.CreateCar(carForm(clientId+999), nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown client, got %v", err)
	}
}

func TestGetCarByIDNotFound(t *testing.T) {
	service, _, _, _ := newCarFixture(t)
	if _, err := service.GetCarByID(12345); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateCarPromotesNextPhotoWhenPrimaryRemoved(t *testing.T) {
	service, store, _, clientId := newCarFixture(t)

	car, err := service.CreateCar(carForm(clientId), []PhotoUpload{
		upload("a.jpg", "a"), upload("b.jpg", "b"), upload("c.jpg", "c"),
	})
	if err != nil {
		t.Fatalf("CreateCar: %v", err)
	}

	updated, err := service.UpdateCar(car.ID, carForm(clientId), nil, []string{"photos/fake-1.jpg"})
	if err != nil {
		t.Fatalf("UpdateCar: %v", err)
	}

	if updated.Photo != "photos/fake-2.jpg" {
		t.Fatalf("primary = %q, want photos/fake-2.jpg promoted", updated.Photo)
	}
	extras, _ := models.DecodePhotoList(updated.ExtraPhotos)
	if len(extras) != 1 || extras[0] != "photos/fake-3.jpg" {
		t.Fatalf("extras = %v, want [photos/fake-3.jpg]", extras)
	}
	if got := store.removeCount("photos/fake-1.jpg"); got != 1 {
		t.Fatalf("Remove(photos/fake-1.jpg) called %d times, want exactly 1", got)
	}
	if updated.Version != 2 {
		t.Fatalf("version = %d, want 2", updated.Version)
	}
}

func TestUpdateCarRemovesExtraAndAppendsUpload(t *testing.T) {
	service, store, _, clientId := newCarFixture(t)

	car, err := service.CreateCar(carForm(clientId), []PhotoUpload{
		upload("a.jpg", "a"), upload("b.jpg", "b"), upload("c.jpg", "c"),
	})
	if err != nil {
		t.Fatalf("CreateCar: %v", err)
	}

	// Removing one extra keeps the rest in order; the new upload lands last.
	updated, err := service.UpdateCar(car.ID, carForm(clientId),
		[]PhotoUpload{upload("d.jpg", "d")}, []string{"photos/fake-2.jpg"})
	if err != nil {
		t.Fatalf("UpdateCar: %v", err)
	}

	if updated.Photo != "photos/fake-1.jpg" {
		t.Fatalf("primary = %q, want unchanged photos/fake-1.jpg", updated.Photo)
	}
	extras, _ := models.DecodePhotoList(updated.ExtraPhotos)
	if len(extras) != 2 || extras[0] != "photos/fake-3.jpg" || extras[1] != "photos/fake-4.jpg" {
		t.Fatalf("extras = %v, want [photos/fake-3.jpg photos/fake-4.jpg]", extras)
	}
	if got := store.removeCount("photos/fake-2.jpg"); got != 1 {
		t.Fatalf("Remove(photos/fake-2.jpg) called %d times, want exactly 1", got)
	}
}

func TestUpdateCarRemoveEverythingThenUploadReplacement(t *testing.T) {
	service, store, _, clientId := newCarFixture(t)

	car, err := service.CreateCar(carForm(clientId), []PhotoUpload{
		upload("a.jpg", "a"), upload("b.jpg", "b"),
	})
	if err != nil {
		t.Fatalf("CreateCar: %v", err)
	}

	updated, err := service.UpdateCar(car.ID, carForm(clientId),
		[]PhotoUpload{upload("new.png", "n")},
		[]string{"photos/fake-1.jpg", "photos/fake-2.jpg"})
	if err != nil {
		t.Fatalf("UpdateCar: %v", err)
	}

	if updated.Photo != "photos/fake-3.png" {
		t.Fatalf("primary = %q, want the fresh upload", updated.Photo)
	}
	extras, _ := models.DecodePhotoList(updated.ExtraPhotos)
	if len(extras) != 0 {
		t.Fatalf("extras = %v, want none", extras)
	}
	if store.removeCount("photos/fake-1.jpg") != 1 || store.removeCount("photos/fake-2.jpg") != 1 {
		t.Fatalf("old files not removed exactly once each: %v", store.removed)
	}
}

func TestUpdateCarIgnoresForeignRemovalPath(t *testing.T) {
	service, store, _, clientId := newCarFixture(t)

	car, err := service.CreateCar(carForm(clientId), []PhotoUpload{upload("a.jpg", "a")})
	if err != nil {
		t.Fatalf("CreateCar: %v", err)
	}

	updated, err := service.UpdateCar(car.ID, carForm(clientId), nil, []string{"photos/ghost.jpg"})
	if err != nil {
		t.Fatalf("UpdateCar: %v", err)
	}
	if updated.Photo != "photos/fake-1.jpg" {
		t.Fatalf("primary = %q, want unchanged", updated.Photo)
	}
	if len(store.removed) != 0 {
		t.Fatalf("Remove called for %v, want no calls for paths the car does not own", store.removed)
	}
}

func TestUpdateCarSkipsEmptyUploads(t *testing.T) {
	service, store, _, clientId := newCarFixture(t)

	car, err := service.CreateCar(carForm(clientId), nil)
	if err != nil {
		t.Fatalf("CreateCar: %v", err)
	}

	updated, err := service.UpdateCar(car.ID, carForm(clientId),
		[]PhotoUpload{{Filename: "empty.jpg", Size: 0, Content: strings.NewReader("")}}, nil)
	if err != nil {
		t.Fatalf("UpdateCar: %v", err)
	}
	if store.saves != 0 {
		t.Fatalf("saves = %d, want 0 for a zero-length upload", store.saves)
	}
	if updated.Photo != "" {
		t.Fatalf("primary = %q, want still empty", updated.Photo)
	}
}

func TestUpdateCarAbortsWhenSaveFails(t *testing.T) {
	service, store, db, clientId := newCarFixture(t)

	car, err := service.CreateCar(carForm(clientId), nil)
	if err != nil {
		t.Fatalf("CreateCar: %v", err)
	}

	store.saveErr = errors.New("disk full")
	form := carForm(clientId)
	form.Make = "Honda"

	if _, err := service.UpdateCar(car.ID, form, []PhotoUpload{upload("a.jpg", "a")}, nil); !errors.Is(err, ErrPhotoStorage) {
		t.Fatalf("expected ErrPhotoStorage, got %v", err)
	}

	var reloaded models.CarModel
	if err := db.First(&reloaded, car.ID).Error; err != nil {
		t.Fatalf("reload car: %v", err)
	}
	if reloaded.Make != "Toyota" {
		t.Fatalf("make = %q, entity fields must stay untouched after a failed save", reloaded.Make)
	}
	if reloaded.Version != 1 {
		t.Fatalf("version = %d, want 1 after aborted update", reloaded.Version)
	}
}

func TestUpdateCarStaleVersion(t *testing.T) {
	service, _, _, clientId := newCarFixture(t)

	car, err := service.CreateCar(carForm(clientId), nil)
	if err != nil {
		t.Fatalf("CreateCar: %v", err)
	}

	form := carForm(clientId)
	form.Version = car.Version
	if _, err := service.UpdateCar(car.ID, form, nil, nil); err != nil {
		t.Fatalf("first update: %v", err)
	}

	// Same token again: the row moved on underneath this caller.
	if _, err := service.UpdateCar(car.ID, form, nil, nil); !errors.Is(err, ErrStaleWrite) {
		t.Fatalf("expected ErrStaleWrite, got %v", err)
	}

	// Version 0 opts out of the check entirely.
	form.Version = 0
	if _, err := service.UpdateCar(car.ID, form, nil, nil); err != nil {
		t.Fatalf("last-writer-wins update: %v", err)
	}
}

func TestUpdateCarRecoversFromMalformedExtras(t *testing.T) {
	service, _, db, clientId := newCarFixture(t)

	car := models.CarModel{
		ClientId:    clientId,
		Make:        "Lada",
		Model:       "Niva",
		Year:        2001,
		Photo:       "photos/keep.jpg",
		ExtraPhotos: datatypes.JSON(`{"broken"`),
		Version:     1,
	}
	if err := db.Create(&car).Error; err != nil {
		t.Fatalf("seed car: %v", err)
	}

	form := carForm(clientId)
	form.Make = "Lada"
	form.Model = "Niva"
	form.Year = 2001

	updated, err := service.UpdateCar(car.ID, form, nil, nil)
	if err != nil {
		t.Fatalf("UpdateCar over malformed extras: %v", err)
	}
	if updated.Photo != "photos/keep.jpg" {
		t.Fatalf("primary = %q, want kept", updated.Photo)
	}
	extras, err := models.DecodePhotoList(updated.ExtraPhotos)
	if err != nil {
		t.Fatalf("extras still malformed after update: %v", err)
	}
	if len(extras) != 0 {
		t.Fatalf("extras = %v, want empty after recovery", extras)
	}
}

func TestDeleteCarCascades(t *testing.T) {
	service, store, db, clientId := newCarFixture(t)

	car, err := service.CreateCar(carForm(clientId), []PhotoUpload{
		upload("a.jpg", "a"), upload("b.jpg", "b"),
	})
	if err != nil {
		t.Fatalf("CreateCar: %v", err)
	}

	for i := 0; i < 2; i++ {
		tire := models.TireModel{CarId: car.ID, WearPercent: 20, Pressure: 2.2}
		if err := db.Create(&tire).Error; err != nil {
			t.Fatalf("seed tire: %v", err)
		}
	}
	master := models.MasterModel{FirstName: "Igor", LastName: "Smirnov"}
	if err := db.Create(&master).Error; err != nil {
		t.Fatalf("seed master: %v", err)
	}
	priceItem := models.ServiceModel{Code: 100, Name: "Tire change", Cost: 15}
	if err := db.Create(&priceItem).Error; err != nil {
		t.Fatalf("seed service: %v", err)
	}
	order := models.OrderModel{Number: "ORD-1", CarId: car.ID, OrderDate: time.Now()}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	for i := 0; i < 2; i++ {
		work := models.CompletedWorkModel{OrderNumber: "ORD-1", ServiceCode: 100, MasterId: master.Id}
		if err := db.Create(&work).Error; err != nil {
			t.Fatalf("seed completed work: %v", err)
		}
	}

	if err := service.DeleteCar(car.ID); err != nil {
		t.Fatalf("DeleteCar: %v", err)
	}

	for name, model := range map[string]interface{}{
		"cars":            &models.CarModel{},
		"tires":           &models.TireModel{},
		"orders":          &models.OrderModel{},
		"completed works": &models.CompletedWorkModel{},
	} {
		var n int64
		if err := db.Model(model).Count(&n).Error; err != nil {
			t.Fatalf("count %s: %v", name, err)
		}
		if n != 0 {
			t.Fatalf("%s remaining = %d, want 0", name, n)
		}
	}

	var clients int64
	db.Model(&models.ClientModel{}).Count(&clients)
	if clients != 1 {
		t.Fatalf("client rows = %d, the owner must survive a car delete", clients)
	}

	if store.removeCount("photos/fake-1.jpg") != 1 || store.removeCount("photos/fake-2.jpg") != 1 {
		t.Fatalf("photo files not removed exactly once each: %v", store.removed)
	}
}

func TestDeleteCarToleratesMissingPhotoFiles(t *testing.T) {
	service, store, db, clientId := newCarFixture(t)

	car, err := service.CreateCar(carForm(clientId), []PhotoUpload{upload("a.jpg", "a")})
	if err != nil {
		t.Fatalf("CreateCar: %v", err)
	}

	store.removeErr = errors.New("file already gone")
	if err := service.DeleteCar(car.ID); err != nil {
		t.Fatalf("DeleteCar must not fail on photo remove errors, got %v", err)
	}

	var n int64
	db.Model(&models.CarModel{}).Count(&n)
	if n != 0 {
		t.Fatalf("car rows remaining = %d, want 0", n)
	}
}
