package employee

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestEmployeeSchema_EmailUnique(t *testing.T) {
	s, err := schema.Parse(&Employee{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	idx, ok := s.ParseIndexes()["uq_employee_email"]
	require.True(t, ok, "email unique index missing")
	assert.Equal(t, "UNIQUE", idx.Class)
	require.Len(t, idx.Fields, 1)
	assert.Equal(t, "email", idx.Fields[0].DBName)
}

func TestEmployeeSchema_AttendancesRelationHasNoConstraint(t *testing.T) {
	s, err := schema.Parse(&Employee{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	rel, ok := s.Relationships.Relations["Attendances"]
	require.True(t, ok, "Attendances relation not parsed")
	assert.Equal(t, schema.HasMany, rel.Type)

	// The cascade foreign key is declared on the attendance entity; this
	// projection must not produce a second, conflicting constraint.
	assert.Nil(t, rel.ParseConstraint())
}
