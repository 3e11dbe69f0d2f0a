package models

type DoctorRef struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Speciality string `json:"speciality,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

func (d DoctorRef) RecordID() string {
	return d.ID
}

type DoctorProfile struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Speciality      string `json:"speciality"`
	Email           string `json:"email,omitempty"`
	Phone           string `json:"phone,omitempty"`
	Qualification   string `json:"qualification,omitempty"`
	Bio             string `json:"bio,omitempty"`
	ExperienceYears int    `json:"experience_years,omitempty"`
}
