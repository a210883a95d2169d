package handler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmkorzh/farmbox/internal/handler"
)

func TestValidatorPlantKindTag(t *testing.T) {
	handler.InitValidator()
	v := handler.GetValidator()

	type req struct {
		Plant string `validate:"required,plantkind"`
	}

	assert.NoError(t, v.ValidateStruct(req{Plant: "green"}))
	assert.NoError(t, v.ValidateStruct(req{Plant: "gold"}))
	assert.Error(t, v.ValidateStruct(req{Plant: "cactus"}))
	assert.Error(t, v.ValidateStruct(req{}))
}

func TestValidatorResourceKindTag(t *testing.T) {
	handler.InitValidator()
	v := handler.GetValidator()

	type req struct {
		Resource string `validate:"required,resourcekind"`
	}

	assert.NoError(t, v.ValidateStruct(req{Resource: "seed_green"}))
	assert.NoError(t, v.ValidateStruct(req{Resource: "fruit_gold"}))
	assert.NoError(t, v.ValidateStruct(req{Resource: "water_bottle"}))
	assert.Error(t, v.ValidateStruct(req{Resource: "unobtainium"}))
}

func TestFormatValidationError(t *testing.T) {
	handler.InitValidator()
	v := handler.GetValidator()

	type req struct {
		PlayerID string `validate:"required,uuid"`
		Plant    string `validate:"required,plantkind"`
	}

	err := v.ValidateStruct(req{PlayerID: "not-a-uuid", Plant: "cactus"})
	assert.Error(t, err)

	fields := handler.FormatValidationError(err)
	assert.Equal(t, "Must be a valid UUID", fields["playerid"])
	assert.Equal(t, "Invalid plant kind", fields["plant"])
}

func TestFormatValidationErrorNonValidatorError(t *testing.T) {
	fields := handler.FormatValidationError(assert.AnError)
	assert.Equal(t, "Invalid request format", fields["error"])
}

func TestFormatValidationErrorNil(t *testing.T) {
	assert.Nil(t, handler.FormatValidationError(nil))
}
