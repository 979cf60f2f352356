package loan

// Step identifies a stage of the application workflow. Transitions run
// strictly forward, with one backward edge from Confirm to Form and one
// from Payment to Confirm.
type Step string

const (
	StepForm    Step = "form"
	StepConfirm Step = "confirm"
	StepPayment Step = "payment"
	StepSuccess Step = "success"
)

var forward = map[Step]Step{
	StepForm:    StepConfirm,
	StepConfirm: StepPayment,
	StepPayment: StepSuccess,
}

var backward = map[Step]Step{
	StepConfirm: StepForm,
	StepPayment: StepConfirm,
}

func (s Step) Next() (Step, bool) {
	next, ok := forward[s]
	return next, ok
}

func (s Step) Back() (Step, bool) {
	prev, ok := backward[s]
	return prev, ok
}

// Enter guards entry into a step. Every step after the form requires the
// prior step's validated draft; arriving without one lands back on the form.
func Enter(step Step, hasDraft bool) Step {
	if step != StepForm && !hasDraft {
		return StepForm
	}
	return step
}
