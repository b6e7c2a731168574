package password

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// BcryptGuard hashes and verifies channel passwords. Stateless; the cost
// matches what the platform has always used for channel passwords.
type BcryptGuard struct {
	cost int
}

func NewBcryptGuard() BcryptGuard {
	return BcryptGuard{cost: 10}
}

func (g BcryptGuard) Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), g.cost)
	if err != nil {
		return "", errors.Wrap(err, "password.Hash: ")
	}
	return string(digest), nil
}

func (g BcryptGuard) Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
