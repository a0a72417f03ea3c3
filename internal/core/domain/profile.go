package domain

// Profile is the per-user business profile. ID is the identity's subject.
type Profile struct {
	ID          string
	Email       *string
	FullName    *string
	CompanyName *string
	Timestamps
}

type ProfileDetails struct {
	FullName    *string
	CompanyName *string
}
