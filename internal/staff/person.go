// Package staff implements the validated hospital entities: Personnel,
// Contract and Department. Every entity checks its full field set at
// construction and re-validates on each mutation, so an instance that exists
// is always consistent. Serialization keeps the Spanish field names and enum
// literals of the existing JSON data files.
package staff

import (
	"strings"
	"time"

	"github.com/yourusername/rrhh/internal/hospital"
)

// Person holds the identity fields shared by every kind of hospital person.
// It is embedded by composition in the concrete entities.
type Person struct {
	DNI       string
	Name      string
	BirthDate time.Time
	Phone     string
}

// ValidDNI reports whether dni is exactly eight digits.
func ValidDNI(dni string) bool {
	return len(dni) == 8 && isDigits(dni)
}

// ValidPhone reports whether phone is nine digits starting with 9.
func ValidPhone(phone string) bool {
	return len(phone) == 9 && isDigits(phone) && phone[0] == '9'
}

func newPerson(dni, name string, birthDate time.Time, phone string) (Person, error) {
	if !ValidDNI(dni) {
		return Person{}, hospital.NewValidation("DNI invalido: %s. Debe tener exactamente 8 digitos", dni)
	}
	if !validNameLength(name) {
		return Person{}, hospital.NewValidation("Nombre invalido: %s. Debe tener entre 3 y 100 caracteres", name)
	}
	if birthDate.IsZero() {
		return Person{}, hospital.NewValidation("La fecha de nacimiento es obligatoria")
	}
	if isFutureDate(birthDate) {
		return Person{}, hospital.NewValidation("La fecha de nacimiento no puede ser futura")
	}
	if !ValidPhone(phone) {
		return Person{}, hospital.NewValidation("Telefono invalido: %s. Debe tener 9 digitos y empezar con 9", phone)
	}
	return Person{
		DNI:       dni,
		Name:      strings.TrimSpace(name),
		BirthDate: dateOnly(birthDate),
		Phone:     phone,
	}, nil
}

// Age returns the person's completed years.
func (p Person) Age() int {
	return Age(p.BirthDate)
}

func validNameLength(name string) bool {
	n := len([]rune(strings.TrimSpace(name)))
	return n >= 3 && n <= 100
}
