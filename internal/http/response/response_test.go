package response

import (
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
)

func TestOK(t *testing.T) {
	resp := OK()

	assert.Equal(t, StatusOK, resp.Status)
	assert.Empty(t, resp.Error)
	assert.Nil(t, resp.Data)
}

func TestOKWithData(t *testing.T) {
	data := map[string]string{"key": "value"}
	resp := OKWithData(data)

	assert.Equal(t, StatusOK, resp.Status)
	assert.Empty(t, resp.Error)
	assert.Equal(t, data, resp.Data)
}

func TestError(t *testing.T) {
	msg := "something went wrong"
	resp := Error(msg)

	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t, msg, resp.Error)
}

func TestValidationError(t *testing.T) {
	type TestStruct struct {
		Name     string  `validate:"required"`
		Price    float64 `validate:"gte=0"`
		Quantity int     `validate:"gte=0"`
	}

	v := validator.New()
	ts := TestStruct{
		Price:    -1,
		Quantity: -5,
	}

	err := v.Struct(ts)
	assert.Error(t, err)

	validationErrors := err.(validator.ValidationErrors)
	resp := ValidationError(validationErrors)

	assert.Equal(t, StatusError, resp.Status)
	assert.NotEmpty(t, resp.Error)

	errMsg := resp.Error
	assert.Contains(t, errMsg, "field Name is a required field")
	assert.Contains(t, errMsg, "field Price must be greater than or equal to 0")
	assert.Contains(t, errMsg, "field Quantity must be greater than or equal to 0")
}

func TestValidationErrorMinMax(t *testing.T) {
	type TestStruct struct {
		Username string `validate:"min=3,max=50"`
		Password string `validate:"min=6"`
	}

	v := validator.New()
	ts := TestStruct{
		Username: "ab",
		Password: "12345",
	}

	err := v.Struct(ts)
	assert.Error(t, err)

	validationErrors := err.(validator.ValidationErrors)
	resp := ValidationError(validationErrors)

	assert.Equal(t, StatusError, resp.Status)
	assert.Contains(t, resp.Error, "field Username must be at least 3 characters long")
	assert.Contains(t, resp.Error, "field Password must be at least 6 characters long")
}
