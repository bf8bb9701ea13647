package bcrypt

import "golang.org/x/crypto/bcrypt"

// PINCost matches the work factor the admin PIN has always been hashed with.
const PINCost = 10

type IBcrypt interface {
	HashPassword(password string) (string, error)
	ComparePassword(hashPassword string, password string) error
	Matches(hashPassword string, password string) (bool, error)
}

type bcryptService struct {
	cost int
}

func New() IBcrypt {
	return &bcryptService{
		cost: PINCost,
	}
}

func NewWithCost(cost int) IBcrypt {
	return &bcryptService{
		cost: cost,
	}
}

func (b *bcryptService) HashPassword(password string) (string, error) {
	pass := []byte(password)
	result, err := bcrypt.GenerateFromPassword(pass, b.cost)
	if err != nil {
		return "", err
	}
	return string(result), nil
}

func (b *bcryptService) ComparePassword(hashPassword string, password string) error {
	pass := []byte(password)
	hashPass := []byte(hashPassword)
	return bcrypt.CompareHashAndPassword(hashPass, pass)
}

// Matches separates a plain mismatch (false, nil) from a malformed stored
// hash, which is reported as an error.
func (b *bcryptService) Matches(hashPassword string, password string) (bool, error) {
	err := b.ComparePassword(hashPassword, password)
	switch err {
	case nil:
		return true, nil
	case bcrypt.ErrMismatchedHashAndPassword:
		return false, nil
	default:
		return false, err
	}
}
