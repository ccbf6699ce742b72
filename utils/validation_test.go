package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequired(t *testing.T) {
	assert.NotEmpty(t, Required(""))
	assert.NotEmpty(t, Required("   "))
	assert.Empty(t, Required("Kopi Susu"))
}

func TestMinLength(t *testing.T) {
	rule := MinLength(3)
	assert.NotEmpty(t, rule("ab"))
	assert.Empty(t, rule("abc"))
	// Empty values are Required's concern, not MinLength's.
	assert.Empty(t, rule(""))
}

func TestMaxLength(t *testing.T) {
	rule := MaxLength(5)
	assert.Empty(t, rule("kopi"))
	assert.NotEmpty(t, rule("kopi susu"))
}

func TestLengthRulesCountRunesNotBytes(t *testing.T) {
	// Five characters, more than five bytes.
	name := "kōpi™"
	assert.Empty(t, MaxLength(5)(name))
	assert.Empty(t, MinLength(5)(name))
	assert.NotEmpty(t, MaxLength(4)(name))
	assert.NotEmpty(t, MinLength(6)(name))
}

func TestNumeric(t *testing.T) {
	assert.Empty(t, Numeric("42"))
	assert.Empty(t, Numeric(""))
	assert.NotEmpty(t, Numeric("abc"))
	assert.NotEmpty(t, Numeric("4.2"))
}

func TestPrice(t *testing.T) {
	assert.Empty(t, Price("15000"))
	assert.Empty(t, Price("0"))
	assert.Empty(t, Price(""))
	assert.NotEmpty(t, Price("-1"))
	assert.NotEmpty(t, Price("abc"))
}

func TestInSet(t *testing.T) {
	rule := InSet([]string{"Kopi", "Pastry"})
	assert.Empty(t, rule("Kopi"))
	assert.Empty(t, rule(""))
	assert.NotEmpty(t, rule("Elektronik"))
}

func TestValidateFieldFirstFailureWins(t *testing.T) {
	msg := ValidateField("", Required, MinLength(3))
	assert.Equal(t, "Field is required", msg)

	msg = ValidateField("ab", Required, MinLength(3))
	assert.Equal(t, "Minimum 3 characters", msg)

	assert.Empty(t, ValidateField("abc", Required, MinLength(3)))
}

func TestValidateFormLogin(t *testing.T) {
	ok, errs := ValidateForm(map[string]string{
		"username": "admin",
		"password": "admin123",
	}, LoginSchema())
	assert.True(t, ok)
	assert.Empty(t, errs)

	ok, errs = ValidateForm(map[string]string{
		"username": "ab",
		"password": "",
	}, LoginSchema())
	assert.False(t, ok)
	assert.Contains(t, errs, "username")
	assert.Contains(t, errs, "password")
}

func TestValidateFormProduct(t *testing.T) {
	ok, errs := ValidateForm(map[string]string{
		"name":     "Kopi Susu",
		"price":    "15000",
		"category": "Kopi",
		"stock":    "10",
	}, ProductSchema())
	assert.True(t, ok)
	assert.Empty(t, errs)

	ok, errs = ValidateForm(map[string]string{
		"name":     "",
		"price":    "-5",
		"category": "Elektronik",
		"stock":    "banyak",
	}, ProductSchema())
	assert.False(t, ok)
	assert.Len(t, errs, 4)
}
