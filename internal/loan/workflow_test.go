package loan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkflowForwardTransitions(t *testing.T) {
	next, ok := StepForm.Next()
	assert.True(t, ok)
	assert.Equal(t, StepConfirm, next)

	next, ok = StepConfirm.Next()
	assert.True(t, ok)
	assert.Equal(t, StepPayment, next)

	next, ok = StepPayment.Next()
	assert.True(t, ok)
	assert.Equal(t, StepSuccess, next)

	_, ok = StepSuccess.Next()
	assert.False(t, ok)
}

func TestWorkflowBackwardTransitions(t *testing.T) {
	prev, ok := StepConfirm.Back()
	assert.True(t, ok)
	assert.Equal(t, StepForm, prev)

	prev, ok = StepPayment.Back()
	assert.True(t, ok)
	assert.Equal(t, StepConfirm, prev)

	_, ok = StepForm.Back()
	assert.False(t, ok)

	_, ok = StepSuccess.Back()
	assert.False(t, ok)
}

func TestEnterRequiresDraft(t *testing.T) {
	assert.Equal(t, StepForm, Enter(StepConfirm, false))
	assert.Equal(t, StepForm, Enter(StepPayment, false))
	assert.Equal(t, StepForm, Enter(StepSuccess, false))

	assert.Equal(t, StepConfirm, Enter(StepConfirm, true))
	assert.Equal(t, StepPayment, Enter(StepPayment, true))

	// the form never requires a prerequisite
	assert.Equal(t, StepForm, Enter(StepForm, false))
}
