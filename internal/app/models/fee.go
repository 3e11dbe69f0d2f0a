package models

type FeeStructure struct {
	DoctorID       string `json:"doctor_id"`
	OrganizationID string `json:"org_id"`
	RecurringFee   int64  `json:"recurring_fee"`
	DefaultFee     int64  `json:"default_fee"`
	EmergencyFee   int64  `json:"emergency_fee"`
}

// AmountFor returns the fee charged for feeType, zero for an unknown type.
func (f FeeStructure) AmountFor(feeType FeeType) int64 {
	switch feeType {
	case FeeTypeRecurring:
		return f.RecurringFee
	case FeeTypeDefault:
		return f.DefaultFee
	case FeeTypeEmergency:
		return f.EmergencyFee
	}
	return 0
}

func (f FeeStructure) IsNonNegative() bool {
	return f.RecurringFee >= 0 && f.DefaultFee >= 0 && f.EmergencyFee >= 0
}
