package domain

// Sex is the enumerated sex of a person record.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// Person is a profile record independent of login credentials.
type Person struct {
	ID              int64
	Firstname       string
	Middlename      *string
	Lastname        string
	Sex             Sex
	ProfileImageURL string
}
