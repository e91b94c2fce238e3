package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/lomepharma/pharma-garde/models"
	"golang.org/x/crypto/bcrypt"
)

const uploadS1 = `[{"semaine":"S1","pharmacies":[{"nom":"Pharmacie A","localisation":"Lomé","contact1":"+22890000000","contact2":"+22890000001"}]}]`

func putSchedule(t *testing.T, app *fiber.App, body, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPut, "/admin/schedule", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func TestReplaceSchedule_ReplacesAllPriorWeeks(t *testing.T) {
	app, gdb := setupTestApp(t)

	// An older schedule that must disappear wholesale.
	old := models.Week{Semaine: "S0", Pharmacies: []models.Pharmacy{{Nom: "Pharmacie Vieille", Localisation: "Kara"}}}
	if err := gdb.Create(&old).Error; err != nil {
		t.Fatalf("failed to seed old schedule: %v", err)
	}

	admin := createProfile(t, gdb, "admin", "admin@example.com", "pass1234", models.RoleAdmin)
	resp := putSchedule(t, app, uploadS1, bearer(tokenFor(t, admin, models.RoleAdmin)))
	mustStatus(t, resp, http.StatusOK)

	var weeks []models.Week
	if err := gdb.Preload("Pharmacies").Find(&weeks).Error; err != nil {
		t.Fatalf("failed to read schedule: %v", err)
	}
	if len(weeks) != 1 {
		t.Fatalf("weeks = %d, want exactly 1 after replace", len(weeks))
	}
	if weeks[0].Semaine != "S1" {
		t.Errorf("semaine = %q, want %q", weeks[0].Semaine, "S1")
	}
	if len(weeks[0].Pharmacies) != 1 || weeks[0].Pharmacies[0].Nom != "Pharmacie A" {
		t.Errorf("pharmacies = %v, want exactly one entry named Pharmacie A", weeks[0].Pharmacies)
	}
	if weeks[0].Pharmacies[0].Localisation != "Lomé" {
		t.Errorf("localisation = %q, want %q", weeks[0].Pharmacies[0].Localisation, "Lomé")
	}
}

func TestReplaceSchedule_WrongCredentialsLeaveDataUntouched(t *testing.T) {
	app, gdb := setupTestApp(t)

	old := models.Week{Semaine: "S0", Pharmacies: []models.Pharmacy{{Nom: "Pharmacie Vieille"}}}
	if err := gdb.Create(&old).Error; err != nil {
		t.Fatalf("failed to seed old schedule: %v", err)
	}

	// No token at all.
	resp := putSchedule(t, app, uploadS1, "")
	mustStatus(t, resp, http.StatusUnauthorized)

	// A valid token for the wrong role.
	client := createProfile(t, gdb, "client", "client@example.com", "pass1234", models.RoleClient)
	resp = putSchedule(t, app, uploadS1, bearer(tokenFor(t, client, models.RoleClient)))
	mustStatus(t, resp, http.StatusForbidden)

	var weeks []models.Week
	gdb.Preload("Pharmacies").Find(&weeks)
	if len(weeks) != 1 || weeks[0].Semaine != "S0" {
		t.Fatalf("schedule changed after denied requests: %v", weeks)
	}
	if len(weeks[0].Pharmacies) != 1 || weeks[0].Pharmacies[0].Nom != "Pharmacie Vieille" {
		t.Errorf("pharmacies changed after denied requests: %v", weeks[0].Pharmacies)
	}
}

func TestReplaceSchedule_StructuralValidation(t *testing.T) {
	app, gdb := setupTestApp(t)

	old := models.Week{Semaine: "S0"}
	if err := gdb.Create(&old).Error; err != nil {
		t.Fatalf("failed to seed old schedule: %v", err)
	}

	admin := createProfile(t, gdb, "admin", "admin@example.com", "pass1234", models.RoleAdmin)
	token := bearer(tokenFor(t, admin, models.RoleAdmin))

	for _, body := range []string{
		`{"semaine":"S1"}`,    // not an array
		`[]`,                  // empty
		`[{"pharmacies":[]}]`, // missing semaine
		`[{"semaine":"S1"}]`,  // missing pharmacies key
	} {
		resp := putSchedule(t, app, body, token)
		mustStatus(t, resp, http.StatusBadRequest)
	}

	var count int64
	gdb.Model(&models.Week{}).Count(&count)
	if count != 1 {
		t.Errorf("weeks = %d, want the old schedule intact", count)
	}
}

func TestGeneratePharmacistCredential_CreatesProfile(t *testing.T) {
	app, gdb := setupTestApp(t)

	admin := createProfile(t, gdb, "admin", "admin@example.com", "pass1234", models.RoleAdmin)

	req := httptest.NewRequest(http.MethodPost, "/admin/pharmacists", strings.NewReader(`{"pharmacy_name": "Pharmacie A"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearer(tokenFor(t, admin, models.RoleAdmin)))

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	mustStatus(t, resp, http.StatusOK)

	body := decodeBody(t, resp)
	credential, _ := body["credential"].(string)
	if len(credential) != 8 {
		t.Fatalf("credential = %q, want 8 characters", credential)
	}
	if body["created"] != true {
		t.Errorf("created = %v, want true for a new pharmacy", body["created"])
	}

	var profiles []models.Profile
	gdb.Joins("JOIN roles ON profiles.role_id = roles.id").
		Where("roles.name = ?", models.RolePharmacien).
		Find(&profiles)
	if len(profiles) != 1 {
		t.Fatalf("pharmacist profiles = %d, want exactly 1", len(profiles))
	}

	account := profiles[0]
	if account.PharmacyName == nil || *account.PharmacyName != "Pharmacie A" {
		t.Errorf("pharmacy_name = %v, want %q", account.PharmacyName, "Pharmacie A")
	}
	if account.Email != "pharmacie.a@pharmacies.local" {
		t.Errorf("email = %q, want the synthetic address", account.Email)
	}
	// The returned plaintext must verify against the stored hash.
	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(credential)); err != nil {
		t.Errorf("stored hash does not match the returned credential: %v", err)
	}
}

func TestGeneratePharmacistCredential_RotatesExisting(t *testing.T) {
	app, gdb := setupTestApp(t)

	admin := createProfile(t, gdb, "admin", "admin@example.com", "pass1234", models.RoleAdmin)
	token := bearer(tokenFor(t, admin, models.RoleAdmin))

	var credentials []string
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/admin/pharmacists", strings.NewReader(`{"pharmacy_name": "Pharmacie A"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", token)
		resp, err := app.Test(req, -1)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		mustStatus(t, resp, http.StatusOK)
		body := decodeBody(t, resp)
		credentials = append(credentials, body["credential"].(string))
	}

	var count int64
	gdb.Model(&models.Profile{}).Where("pharmacy_name = ?", "Pharmacie A").Count(&count)
	if count != 1 {
		t.Fatalf("profiles for the pharmacy = %d, want 1 after rotation", count)
	}

	var account models.Profile
	gdb.Where("pharmacy_name = ?", "Pharmacie A").First(&account)
	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(credentials[1])); err != nil {
		t.Errorf("stored hash does not match the rotated credential: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(credentials[0])); err == nil {
		t.Error("the old credential still verifies after rotation")
	}
}
