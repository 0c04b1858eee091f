package account

import "strings"

// ConsumerRegistration is a consumer sign-up that passed validation.
// The account starts unverified with a one-time verification token.
type ConsumerRegistration struct {
	firstNames        string
	lastNames         string
	phone             string
	email             Email
	address           string
	nationalID        NationalID
	passwordHash      string
	verificationToken string
}

type RegistrationInput struct {
	FirstNames string
	LastNames  string
	Phone      string
	Email      string
	Address    string
	NationalID string
	Password   string
}

// Validate checks the raw input and returns the parsed password for hashing.
func (in RegistrationInput) Validate() (Email, NationalID, Password, error) {
	for _, v := range []string{in.FirstNames, in.LastNames, in.Phone, in.Email, in.Address, in.NationalID, in.Password} {
		if strings.TrimSpace(v) == "" {
			return Email{}, NationalID{}, Password{}, ErrRequiredField
		}
	}
	email, err := NewEmail(in.Email)
	if err != nil {
		return Email{}, NationalID{}, Password{}, err
	}
	nid, err := NewNationalID(in.NationalID)
	if err != nil {
		return Email{}, NationalID{}, Password{}, err
	}
	pw, err := NewPassword(in.Password)
	if err != nil {
		return Email{}, NationalID{}, Password{}, err
	}
	return email, nid, pw, nil
}

func NewConsumerRegistration(in RegistrationInput, passwordHash, verificationToken string) (*ConsumerRegistration, error) {
	email, nid, _, err := in.Validate()
	if err != nil {
		return nil, err
	}
	if passwordHash == "" || verificationToken == "" {
		return nil, ErrRequiredField
	}
	return &ConsumerRegistration{
		firstNames:        strings.TrimSpace(in.FirstNames),
		lastNames:         strings.TrimSpace(in.LastNames),
		phone:             strings.TrimSpace(in.Phone),
		email:             email,
		address:           strings.TrimSpace(in.Address),
		nationalID:        nid,
		passwordHash:      passwordHash,
		verificationToken: verificationToken,
	}, nil
}

func (r *ConsumerRegistration) FirstNames() string        { return r.firstNames }
func (r *ConsumerRegistration) LastNames() string         { return r.lastNames }
func (r *ConsumerRegistration) FullName() string          { return r.firstNames + " " + r.lastNames }
func (r *ConsumerRegistration) Phone() string             { return r.phone }
func (r *ConsumerRegistration) Email() Email              { return r.email }
func (r *ConsumerRegistration) Address() string           { return r.address }
func (r *ConsumerRegistration) NationalID() NationalID    { return r.nationalID }
func (r *ConsumerRegistration) PasswordHash() string      { return r.passwordHash }
func (r *ConsumerRegistration) VerificationToken() string { return r.verificationToken }
