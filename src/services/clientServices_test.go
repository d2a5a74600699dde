package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/PitStop/PitStop-Backend/src/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newClientFixture(t *testing.T) (*ClientService, *fakePhotoStore, *gorm.DB) {
	t.Helper()
	db := openTestDB(t)
	store := &fakePhotoStore{}
	cars := NewCarService(db, store, zap.NewNop())
	return NewClientService(db, cars), store, db
}

func TestClientValidation(t *testing.T) {
	service, _, _ := newClientFixture(t)

	_, err := service.CreateClient(&models.ClientModel{LastName: "Petrov"})
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError for missing first name, got %v", err)
	}
	if validation.Field != "firstName" {
		t.Fatalf("field = %q, want firstName", validation.Field)
	}

	_, err = service.CreateClient(&models.ClientModel{
		FirstName: "Dana", LastName: "Petrov", Phone: strings.Repeat("9", 31),
	})
	if !errors.As(err, &validation) || validation.Field != "phone" {
		t.Fatalf("expected phone length error, got %v", err)
	}
}

func TestUpdateClientCanClearPhone(t *testing.T) {
	service, _, _ := newClientFixture(t)

	client, err := service.CreateClient(&models.ClientModel{FirstName: "Dana", LastName: "Petrov", Phone: "555-0101"})
	if err != nil {
		t.Fatalf("CreateClient: %v", err)
	}

	if _, err := service.UpdateClient(client.Id, &models.ClientModel{FirstName: "Dana", LastName: "Petrov"}); err != nil {
		t.Fatalf("UpdateClient: %v", err)
	}

	reloaded, err := service.GetClientByID(client.Id)
	if err != nil {
		t.Fatalf("GetClientByID: %v", err)
	}
	if reloaded.Phone != "" {
		t.Fatalf("phone = %q, an empty value must clear the field", reloaded.Phone)
	}
}

func TestDeleteClientRemovesCarsAndPhotos(t *testing.T) {
	service, store, db := newClientFixture(t)

	client, err := service.CreateClient(&models.ClientModel{FirstName: "Dana", LastName: "Petrov"})
	if err != nil {
		t.Fatalf("CreateClient: %v", err)
	}

	car1 := &models.CarModel{ClientId: client.Id, Make: "Kia", Model: "Rio", Year: 2020, Photo: "photos/fake-a.jpg", Version: 1}
	mustCreate(t, db, car1)
	car2 := &models.CarModel{ClientId: client.Id, Make: "VW", Model: "Golf", Year: 2016, Photo: "photos/fake-b.jpg", Version: 1}
	mustCreate(t, db, car2)

	master := &models.MasterModel{FirstName: "Igor", LastName: "Smirnov"}
	mustCreate(t, db, master)
	mustCreate(t, db, &models.ServiceModel{Code: 100, Name: "Tire change", Cost: 15})
	mustCreate(t, db, &models.OrderModel{
		Number: "ORD-1", CarId: car1.ID,
		OrderDate: time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC),
	})
	mustCreate(t, db, &models.CompletedWorkModel{OrderNumber: "ORD-1", ServiceCode: 100, MasterId: master.Id})

	if err := service.DeleteClient(client.Id); err != nil {
		t.Fatalf("DeleteClient: %v", err)
	}

	for name, model := range map[string]interface{}{
		"clients":         &models.ClientModel{},
		"cars":            &models.CarModel{},
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

	if store.removeCount("photos/fake-a.jpg") != 1 || store.removeCount("photos/fake-b.jpg") != 1 {
		t.Fatalf("photo files not removed exactly once each: %v", store.removed)
	}

	if err := service.DeleteClient(client.Id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
