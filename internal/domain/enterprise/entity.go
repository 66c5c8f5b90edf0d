package enterprise

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidCompanyName = errors.New("company name must not be empty")

// Enterprise is an organization that owns a subscription its members
// inherit wallet access from.
type Enterprise struct {
	id          uuid.UUID
	companyName string
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewEnterprise(companyName string) (*Enterprise, error) {
	companyName = strings.TrimSpace(companyName)
	if companyName == "" {
		return nil, ErrInvalidCompanyName
	}
	return &Enterprise{
		id:          uuid.New(),
		companyName: companyName,
		isActive:    true,
	}, nil
}

func (e *Enterprise) ID() uuid.UUID        { return e.id }
func (e *Enterprise) CompanyName() string  { return e.companyName }
func (e *Enterprise) IsActive() bool       { return e.isActive }
func (e *Enterprise) CreatedAt() time.Time { return e.createdAt }
func (e *Enterprise) UpdatedAt() time.Time { return e.updatedAt }
