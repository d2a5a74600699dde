package services

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/PitStop/PitStop-Backend/src/models"
	excelize "github.com/xuri/excelize/v2"
)

func buildPriceListWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			f.SetCellValue("Sheet1", cell, value)
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return &buf
}

func TestCreateServiceRejectsDuplicateCode(t *testing.T) {
	db := openTestDB(t)
	service := NewServiceService(db)

	if _, err := service.CreateService(&models.ServiceModel{Code: 100, Name: "Tire change", Cost: 15}); err != nil {
		t.Fatalf("CreateService: %v", err)
	}

	_, err := service.CreateService(&models.ServiceModel{Code: 100, Name: "Other", Cost: 5})
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError for duplicate code, got %v", err)
	}
	if validation.Field != "code" {
		t.Fatalf("field = %q, want code", validation.Field)
	}
}

func TestGetAllServicesOrderedByCode(t *testing.T) {
	db := openTestDB(t)
	service := NewServiceService(db)

	for _, code := range []int{102, 100, 101} {
		mustCreate(t, db, &models.ServiceModel{Code: code, Name: "Entry", Cost: 10})
	}

	list, err := service.GetAllServices()
	if err != nil {
		t.Fatalf("GetAllServices: %v", err)
	}
	if len(list) != 3 || list[0].Code != 100 || list[1].Code != 101 || list[2].Code != 102 {
		t.Fatalf("order = %v, want codes ascending", list)
	}
}

func TestUpdateServiceKeepsCode(t *testing.T) {
	db := openTestDB(t)
	service := NewServiceService(db)

	mustCreate(t, db, &models.ServiceModel{Code: 100, Name: "Tire change", Cost: 15})

	updated, err := service.UpdateService(100, &models.ServiceModel{Code: 999, Name: "  Tire change, premium  ", Cost: 25})
	if err != nil {
		t.Fatalf("UpdateService: %v", err)
	}
	if updated.Code != 100 {
		t.Fatalf("code = %d, the code must not change on update", updated.Code)
	}

	reloaded, err := service.GetServiceByCode(100)
	if err != nil {
		t.Fatalf("GetServiceByCode: %v", err)
	}
	if reloaded.Name != "Tire change, premium" || reloaded.Cost != 25 {
		t.Fatalf("reloaded = %q/%v, want trimmed name and cost 25", reloaded.Name, reloaded.Cost)
	}

	if _, err := service.UpdateService(12345, &models.ServiceModel{Name: "x", Cost: 1}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteServiceRestrictedWhileReferenced(t *testing.T) {
	db := openTestDB(t)
	service := NewServiceService(db)

	mustCreate(t, db, &models.ServiceModel{Code: 100, Name: "Tire change", Cost: 15})
	master := &models.MasterModel{FirstName: "Igor", LastName: "Smirnov"}
	mustCreate(t, db, master)
	mustCreate(t, db, &models.CompletedWorkModel{OrderNumber: "ORD-1", ServiceCode: 100, MasterId: master.Id})

	if err := service.DeleteService(100); !errors.Is(err, ErrRestricted) {
		t.Fatalf("expected ErrRestricted while referenced, got %v", err)
	}

	if err := db.Where("service_code = ?", 100).Delete(&models.CompletedWorkModel{}).Error; err != nil {
		t.Fatalf("delete work: %v", err)
	}
	if err := service.DeleteService(100); err != nil {
		t.Fatalf("DeleteService after unreference: %v", err)
	}
	if err := service.DeleteService(100); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestImportFromExcelUpsertsRows(t *testing.T) {
	db := openTestDB(t)
	service := NewServiceService(db)

	book := buildPriceListWorkbook(t, [][]interface{}{
		{"Code", "Name", "Cost"},
		{100, "Tire change (per wheel)", 15},
		{101, "Wheel balancing (per wheel)", "10,50"},
		{102, "Flat tire repair", "abc"},
		{"", "skipped", ""},
	})

	result, err := service.ImportFromExcel(book)
	if err != nil {
		t.Fatalf("ImportFromExcel: %v", err)
	}
	if result.Imported != 2 {
		t.Fatalf("Imported = %d, want 2", result.Imported)
	}
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "row 4") || !strings.Contains(result.Errors[0], "invalid cost") {
		t.Fatalf("Errors = %v, want one invalid-cost error for row 4", result.Errors)
	}

	balancing, err := service.GetServiceByCode(101)
	if err != nil {
		t.Fatalf("GetServiceByCode: %v", err)
	}
	if balancing.Cost != 10.5 {
		t.Fatalf("cost = %v, comma decimals must parse as 10.5", balancing.Cost)
	}

	// A second import with the same code updates in place instead of duplicating.
	again := buildPriceListWorkbook(t, [][]interface{}{
		{100, "Tire change (per wheel)", 18},
	})
	result, err = service.ImportFromExcel(again)
	if err != nil {
		t.Fatalf("re-import: %v", err)
	}
	if result.Imported != 1 || len(result.Errors) != 0 {
		t.Fatalf("re-import = %d/%v, want 1 row and no errors", result.Imported, result.Errors)
	}

	list, err := service.GetAllServices()
	if err != nil {
		t.Fatalf("GetAllServices: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("catalog size = %d, want 2", len(list))
	}
	if list[0].Code != 100 || list[0].Cost != 18 {
		t.Fatalf("code 100 = %v, want cost updated to 18", list[0])
	}
}

func TestImportFromExcelNothingUsable(t *testing.T) {
	db := openTestDB(t)
	service := NewServiceService(db)

	book := buildPriceListWorkbook(t, [][]interface{}{
		{"Code", "Name", "Cost"},
		{"xyz", "Thing", 5},
	})

	result, err := service.ImportFromExcel(book)
	if err == nil {
		t.Fatal("expected an error when no row imports")
	}
	if result == nil || result.Imported != 0 || len(result.Errors) != 1 {
		t.Fatalf("result = %+v, want 0 imported with 1 error", result)
	}
}

func TestImportFromExcelRejectsGarbage(t *testing.T) {
	db := openTestDB(t)
	service := NewServiceService(db)

	if _, err := service.ImportFromExcel(strings.NewReader("not a workbook")); err == nil {
		t.Fatal("expected an error for a non-excel payload")
	}
}
