package booking

// Stage is the wizard's position in the booking flow. A failed submission
// returns to StageSelectingSlot with the error kept on the wizard.
type Stage int

const (
	StageSelectingPatient Stage = 1
	StageSelectingDoctor  Stage = 2
	StageSelectingSlot    Stage = 3
	StageSubmitting       Stage = 4
	StageSuccess          Stage = 5
)

func (s Stage) String() string {
	switch s {
	case StageSelectingPatient:
		return "selecting_patient"
	case StageSelectingDoctor:
		return "selecting_doctor"
	case StageSelectingSlot:
		return "selecting_slot"
	case StageSubmitting:
		return "submitting"
	case StageSuccess:
		return "success"
	}
	return "unknown"
}
