package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonhq/booking-api/models"
)

func TestCreateAppointment(t *testing.T) {
	app, gdb, cfg := newTestApp(t)
	user := createUser(t, gdb, "jane@example.com", models.RoleUser)
	service := createService(t, gdb, "Haircut", 1500)
	staff := createStaff(t, gdb, "sarah@salon.com")

	resp := doRequest(t, app, "POST", "/api/appointments", tokenFor(t, cfg, user), map[string]interface{}{
		"serviceId": service.ID,
		"staffId":   staff.ID,
		"date":      "2030-05-01",
		"time":      "10:00",
		"notes":     "first visit",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Appointment created successfully", body["message"])

	appt, ok := body["appointment"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "pending", appt["status"])
	assert.Equal(t, "2030-05-01", appt["date"])
	assert.Equal(t, "10:00", appt["time"])
	assert.Equal(t, 1500.0, appt["price"])
}

func TestCreateAppointmentSlotConflict(t *testing.T) {
	app, gdb, cfg := newTestApp(t)
	service := createService(t, gdb, "Haircut", 1500)
	staff := createStaff(t, gdb, "sarah@salon.com")

	slot := map[string]interface{}{
		"serviceId": service.ID,
		"staffId":   staff.ID,
		"date":      "2030-05-01",
		"time":      "10:00",
	}

	first := createUser(t, gdb, "first@example.com", models.RoleUser)
	resp := doRequest(t, app, "POST", "/api/appointments", tokenFor(t, cfg, first), slot)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Same staff, same date, same time: rejected even for a different user.
	second := createUser(t, gdb, "second@example.com", models.RoleUser)
	resp = doRequest(t, app, "POST", "/api/appointments", tokenFor(t, cfg, second), slot)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Staff is not available at this time", decodeBody(t, resp)["message"])

	// A different time with the same staff is fine.
	slot["time"] = "11:00"
	resp = doRequest(t, app, "POST", "/api/appointments", tokenFor(t, cfg, second), slot)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

// The conflict check has no status filter, so even a cancelled appointment
// keeps its slot occupied.
func TestCancelledAppointmentStillBlocksSlot(t *testing.T) {
	app, gdb, cfg := newTestApp(t)
	user := createUser(t, gdb, "jane@example.com", models.RoleUser)
	service := createService(t, gdb, "Haircut", 1500)
	staff := createStaff(t, gdb, "sarah@salon.com")
	token := tokenFor(t, cfg, user)

	slot := map[string]interface{}{
		"serviceId": service.ID,
		"staffId":   staff.ID,
		"date":      "2030-05-01",
		"time":      "10:00",
	}

	resp := doRequest(t, app, "POST", "/api/appointments", token, slot)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	apptID := decodeBody(t, resp)["appointment"].(map[string]interface{})["id"].(float64)

	resp = doRequest(t, app, "DELETE", fmt.Sprintf("/api/appointments/%.0f", apptID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, "POST", "/api/appointments", token, slot)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Staff is not available at this time", decodeBody(t, resp)["message"])
}

func TestCreateAppointmentValidation(t *testing.T) {
	app, gdb, cfg := newTestApp(t)
	user := createUser(t, gdb, "jane@example.com", models.RoleUser)
	service := createService(t, gdb, "Haircut", 1500)
	staff := createStaff(t, gdb, "sarah@salon.com")
	token := tokenFor(t, cfg, user)

	resp := doRequest(t, app, "POST", "/api/appointments", token, map[string]interface{}{
		"serviceId": service.ID,
		"staffId":   staff.ID,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "serviceId, staffId, date and time are required", decodeBody(t, resp)["message"])

	resp = doRequest(t, app, "POST", "/api/appointments", token, map[string]interface{}{
		"serviceId": 9999,
		"staffId":   staff.ID,
		"date":      "2030-05-01",
		"time":      "10:00",
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Service not found", decodeBody(t, resp)["message"])

	resp = doRequest(t, app, "POST", "/api/appointments", token, map[string]interface{}{
		"serviceId": service.ID,
		"staffId":   9999,
		"date":      "2030-05-01",
		"time":      "10:00",
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Staff not found", decodeBody(t, resp)["message"])

	resp = doRequest(t, app, "POST", "/api/appointments", token, map[string]interface{}{
		"serviceId": service.ID,
		"staffId":   staff.ID,
		"date":      "01/05/2030",
		"time":      "10:00",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// Later price edits to the service must not leak into appointments that were
// already booked.
func TestAppointmentPriceSnapshot(t *testing.T) {
	app, gdb, cfg := newTestApp(t)
	user := createUser(t, gdb, "jane@example.com", models.RoleUser)
	service := createService(t, gdb, "Haircut", 1500)
	staff := createStaff(t, gdb, "sarah@salon.com")
	token := tokenFor(t, cfg, user)

	resp := doRequest(t, app, "POST", "/api/appointments", token, map[string]interface{}{
		"serviceId": service.ID,
		"staffId":   staff.ID,
		"date":      "2030-05-01",
		"time":      "10:00",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	apptID := decodeBody(t, resp)["appointment"].(map[string]interface{})["id"].(float64)

	require.NoError(t, gdb.Model(&models.Service{}).Where("id = ?", service.ID).Update("price", 2500).Error)

	resp = doRequest(t, app, "GET", fmt.Sprintf("/api/appointments/%.0f", apptID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	appt := decodeBody(t, resp)["appointment"].(map[string]interface{})
	assert.Equal(t, 1500.0, appt["price"])
}

func TestListAppointmentsOwnership(t *testing.T) {
	app, gdb, cfg := newTestApp(t)
	service := createService(t, gdb, "Haircut", 1500)
	staff := createStaff(t, gdb, "sarah@salon.com")

	alice := createUser(t, gdb, "alice@example.com", models.RoleUser)
	bob := createUser(t, gdb, "bob@example.com", models.RoleUser)
	admin := createUser(t, gdb, "admin@example.com", models.RoleAdmin)

	for i, u := range []models.User{alice, bob} {
		resp := doRequest(t, app, "POST", "/api/appointments", tokenFor(t, cfg, u), map[string]interface{}{
			"serviceId": service.ID,
			"staffId":   staff.ID,
			"date":      "2030-05-01",
			"time":      fmt.Sprintf("1%d:00", i),
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := doRequest(t, app, "GET", "/api/appointments", tokenFor(t, cfg, alice), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	mine := decodeBody(t, resp)["appointments"].([]interface{})
	require.Len(t, mine, 1)
	assert.Equal(t, float64(alice.ID), mine[0].(map[string]interface{})["userId"])

	resp = doRequest(t, app, "GET", "/api/appointments", tokenFor(t, cfg, admin), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	all := decodeBody(t, resp)["appointments"].([]interface{})
	assert.Len(t, all, 2)
}

func TestGetAppointmentAccessDenied(t *testing.T) {
	app, gdb, cfg := newTestApp(t)
	service := createService(t, gdb, "Haircut", 1500)
	staff := createStaff(t, gdb, "sarah@salon.com")
	owner := createUser(t, gdb, "owner@example.com", models.RoleUser)
	intruder := createUser(t, gdb, "intruder@example.com", models.RoleUser)

	resp := doRequest(t, app, "POST", "/api/appointments", tokenFor(t, cfg, owner), map[string]interface{}{
		"serviceId": service.ID,
		"staffId":   staff.ID,
		"date":      "2030-05-01",
		"time":      "10:00",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	apptID := decodeBody(t, resp)["appointment"].(map[string]interface{})["id"].(float64)

	resp = doRequest(t, app, "GET", fmt.Sprintf("/api/appointments/%.0f", apptID), tokenFor(t, cfg, intruder), nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Access denied", decodeBody(t, resp)["message"])
}

// Status is an admin-only field: owners may reschedule but a status value in
// their payload is ignored.
func TestUpdateAppointmentStatusAdminOnly(t *testing.T) {
	app, gdb, cfg := newTestApp(t)
	service := createService(t, gdb, "Haircut", 1500)
	staff := createStaff(t, gdb, "sarah@salon.com")
	owner := createUser(t, gdb, "owner@example.com", models.RoleUser)
	admin := createUser(t, gdb, "admin@example.com", models.RoleAdmin)

	resp := doRequest(t, app, "POST", "/api/appointments", tokenFor(t, cfg, owner), map[string]interface{}{
		"serviceId": service.ID,
		"staffId":   staff.ID,
		"date":      "2030-05-01",
		"time":      "10:00",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	apptID := decodeBody(t, resp)["appointment"].(map[string]interface{})["id"].(float64)
	path := fmt.Sprintf("/api/appointments/%.0f", apptID)

	resp = doRequest(t, app, "PUT", path, tokenFor(t, cfg, owner), map[string]interface{}{
		"status": "confirmed",
		"notes":  "please hurry",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	appt := decodeBody(t, resp)["appointment"].(map[string]interface{})
	assert.Equal(t, "pending", appt["status"])
	assert.Equal(t, "please hurry", appt["notes"])

	resp = doRequest(t, app, "PUT", path, tokenFor(t, cfg, admin), map[string]interface{}{
		"status": "confirmed",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	appt = decodeBody(t, resp)["appointment"].(map[string]interface{})
	assert.Equal(t, "confirmed", appt["status"])
}

func TestUpdateAppointmentServiceResnapshotsPrice(t *testing.T) {
	app, gdb, cfg := newTestApp(t)
	haircut := createService(t, gdb, "Haircut", 1500)
	coloring := createService(t, gdb, "Hair Coloring", 3500)
	staff := createStaff(t, gdb, "sarah@salon.com")
	user := createUser(t, gdb, "jane@example.com", models.RoleUser)
	token := tokenFor(t, cfg, user)

	resp := doRequest(t, app, "POST", "/api/appointments", token, map[string]interface{}{
		"serviceId": haircut.ID,
		"staffId":   staff.ID,
		"date":      "2030-05-01",
		"time":      "10:00",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	apptID := decodeBody(t, resp)["appointment"].(map[string]interface{})["id"].(float64)

	resp = doRequest(t, app, "PUT", fmt.Sprintf("/api/appointments/%.0f", apptID), token, map[string]interface{}{
		"serviceId": coloring.ID,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	appt := decodeBody(t, resp)["appointment"].(map[string]interface{})
	assert.Equal(t, 3500.0, appt["price"])
}

// DELETE cancels in place; the row must survive for history.
func TestCancelAppointmentKeepsRow(t *testing.T) {
	app, gdb, cfg := newTestApp(t)
	service := createService(t, gdb, "Haircut", 1500)
	staff := createStaff(t, gdb, "sarah@salon.com")
	user := createUser(t, gdb, "jane@example.com", models.RoleUser)
	token := tokenFor(t, cfg, user)

	resp := doRequest(t, app, "POST", "/api/appointments", token, map[string]interface{}{
		"serviceId": service.ID,
		"staffId":   staff.ID,
		"date":      "2030-05-01",
		"time":      "10:00",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	apptID := decodeBody(t, resp)["appointment"].(map[string]interface{})["id"].(float64)

	resp = doRequest(t, app, "DELETE", fmt.Sprintf("/api/appointments/%.0f", apptID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Appointment cancelled successfully", decodeBody(t, resp)["message"])

	var appointment models.Appointment
	require.NoError(t, gdb.First(&appointment, uint(apptID)).Error)
	assert.Equal(t, models.StatusCancelled, appointment.Status)
}
