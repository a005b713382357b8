package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	for _, s := range []string{"customer", "admin", "staff"} {
		role, err := ParseRole(s)
		assert.NoError(t, err)
		assert.Equal(t, Role(s), role)
	}

	for _, s := range []string{"", "Admin", "admin, staff", "root"} {
		_, err := ParseRole(s)
		assert.Error(t, err, s)
	}
}

func TestRoleSet(t *testing.T) {
	set := NewRoleSet(RoleAdmin, RoleStaff)

	assert.True(t, set.Contains(RoleAdmin))
	assert.True(t, set.Contains(RoleStaff))
	assert.False(t, set.Contains(RoleCustomer))
	assert.False(t, set.Contains(Role("admin, staff")))
	assert.False(t, AnyRole.Contains(Role("")))
	assert.Equal(t, []Role{RoleCustomer, RoleAdmin, RoleStaff}, AnyRole.Roles())
	assert.Empty(t, NewRoleSet(Role("ghost")).Roles())
}

func TestRolePrivileged(t *testing.T) {
	assert.False(t, RoleCustomer.Privileged())
	assert.True(t, RoleAdmin.Privileged())
	assert.True(t, RoleStaff.Privileged())
}

func TestReservationSpanNights(t *testing.T) {
	r := Reservation{}
	r.CheckIn, _ = time.Parse(DateLayout, "2025-03-28")
	r.CheckOut, _ = time.Parse(DateLayout, "2025-04-02")

	assert.Equal(t, 5, r.SpanNights())
}

func TestReservationSpanNights_Centuries(t *testing.T) {
	r := Reservation{}
	r.CheckIn, _ = time.Parse(DateLayout, "1700-01-01")
	r.CheckOut, _ = time.Parse(DateLayout, "2100-01-01")

	assert.Equal(t, 146097, r.SpanNights())
}
