package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleFarmer, ParseRole("farmer"))
	assert.Equal(t, RoleFarmer, ParseRole(" Farmer "))
	assert.Equal(t, RoleVendor, ParseRole("Vendor"))
	assert.Equal(t, RoleExpert, ParseRole("Agricultural Expert"))
	assert.Equal(t, RoleNone, ParseRole(""))
	assert.Equal(t, RoleNone, ParseRole("admin"))
}

func TestRoleRoundTrip(t *testing.T) {
	for _, role := range []Role{RoleFarmer, RoleVendor, RoleExpert} {
		assert.Equal(t, role, ParseRole(role.String()))
	}
}

func TestDecodeCropListing(t *testing.T) {
	created := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
	crop, err := DecodeCropListing("crop-1", map[string]interface{}{
		"userId":    "farmer-1",
		"cropName":  "Ginger",
		"price":     int64(500),
		"unit":      "kg",
		"createdAt": created,
		"legacyTag": "ignored",
	})
	require.NoError(t, err)

	assert.Equal(t, "crop-1", crop.ID)
	assert.Equal(t, "farmer-1", crop.OwnerID)
	assert.Equal(t, 500.0, crop.Price)
	assert.Equal(t, created, crop.CreatedAt)
}

func TestDecodeRejectsWrongType(t *testing.T) {
	_, err := DecodeCropListing("crop-2", map[string]interface{}{
		"cropName": []string{"not", "a", "string"},
	})

	var typeErr *FieldTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "cropName", typeErr.Field)
	assert.Equal(t, "market", typeErr.Collection)
}

func TestUnexpectedFields(t *testing.T) {
	r := newFieldReader("vendors", "v1", map[string]interface{}{
		"shopName": "Agro Hub",
		"zeta":     1,
		"alpha":    2,
	}, equipmentSchema)

	assert.Equal(t, []string{"alpha", "zeta"}, r.Unexpected())
}

func TestDecodeEquipmentAcceptsNumericPrice(t *testing.T) {
	eq, err := DecodeEquipmentListing("v1", map[string]interface{}{
		"price":    float64(450),
		"delivery": "on",
	})
	require.NoError(t, err)
	assert.Equal(t, "450", eq.Price)
	assert.True(t, eq.Delivery)
}

func TestDecodeUserWithISOString(t *testing.T) {
	user, err := DecodeUser("uid-1", map[string]interface{}{
		"name":      "Anitha",
		"email":     "anitha@example.com",
		"role":      "Vendor",
		"createdAt": "2026-02-01T08:30:00.000Z",
	})
	require.NoError(t, err)

	identity := user.Identity()
	assert.Equal(t, "uid-1", identity.ID)
	assert.Equal(t, RoleVendor, identity.Role)
	assert.Equal(t, 2026, user.CreatedAt.Year())
}

func TestServiceTypeValid(t *testing.T) {
	assert.True(t, ServiceVideoCall.Valid())
	assert.False(t, ServiceType("Home Delivery").Valid())
}

func TestRoleJSON(t *testing.T) {
	var identity Identity
	require.NoError(t, json.Unmarshal([]byte(`{"id":"u1","role":"Agricultural Expert"}`), &identity))
	assert.Equal(t, RoleExpert, identity.Role)

	b, err := json.Marshal(Identity{ID: "u2", Role: RoleVendor})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"role":"Vendor"`)
}
