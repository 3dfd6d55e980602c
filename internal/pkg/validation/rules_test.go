package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type courseInput struct {
	Dept   string `validate:"required,coursedept"`
	Number string `validate:"required,coursenumber"`
	Term   string `validate:"omitempty,term"`
}

func TestRegisterValidators(t *testing.T) {
	v := validator.New()
	require.NoError(t, RegisterValidators(v))

	assert.NoError(t, v.Struct(courseInput{Dept: "MATH", Number: "20A", Term: "Fall"}))
	assert.NoError(t, v.Struct(courseInput{Dept: "cse", Number: "101", Term: "sp"}))

	err := v.Struct(courseInput{Dept: "M4TH", Number: "20-A", Term: "Summer"})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 3)

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, FormatFieldError(fe))
	}
	assert.Contains(t, msgs, "Dept must be 2-6 letters, e.g. MATH")
	assert.Contains(t, msgs, "Number must look like 20A or 100")
	assert.Contains(t, msgs, "Term must be one of Fall, Winter, Spring")
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "MATH", NormalizeCode(" math "))
	assert.Equal(t, "20A", NormalizeCode("20a"))
}
