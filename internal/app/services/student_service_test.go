package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/unirecords/internal/app/models"
	"github.com/yigit/unirecords/internal/pkg/apperrors"
)

func newStudentFixture() StudentService {
	students := newFakeStudentRepo(&models.Student{
		StudentID: "S1", FirstName: "Ada", LastName: "Lovelace", ProgramTitle: "CS", ProgramYear: 2025,
	})
	invoices := &fakeInvoiceRepo{
		students: map[string]bool{"S1": true},
		invoices: map[string]*models.Invoice{
			"S1": {StudentID: "S1", TotalFees: 4500, AmountPaid: 1500, Holds: "None"},
		},
	}
	grades := &fakeGradeRepo{
		titles: map[int64]string{1: "Programming 1"},
		codes:  map[int64]string{1: "CS101"},
		grades: []models.Grade{{StudentID: "S1", UnitID: 1, Grade: "A", Semester: "S1", Year: 2025}},
	}
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	history := &fakeHistoryRepo{entries: map[string][]models.HistoryEntry{
		"S1": {
			{Title: "Programming 1", Action: "registered", Timestamp: now},
			{Title: "Programming 1", Action: "enrolled", Timestamp: now.Add(-time.Hour)},
		},
	}}
	units := &fakeUnitRepo{units: []models.Unit{
		{UnitCode: "CS101", Title: "Programming 1", YearOffered: 1, SemesterOffered: "S1", ProgramTitle: "CS"},
		{UnitCode: "CS102", Title: "Programming 2", YearOffered: 1, SemesterOffered: "S2", ProgramTitle: "CS"},
	}}
	return NewStudentService(students, invoices, grades, history, units, zerolog.Nop())
}

func TestStudentService_GetInvoice(t *testing.T) {
	svc := newStudentFixture()

	inv, err := svc.GetInvoice(context.Background(), "S1")
	require.NoError(t, err)
	require.NotNil(t, inv)
	assert.Equal(t, 4500.0, inv.TotalFees)
	assert.Equal(t, "None", inv.Holds)

	missing, err := svc.GetInvoice(context.Background(), "S2")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStudentService_GetGrades(t *testing.T) {
	svc := newStudentFixture()

	grades, err := svc.GetGrades(context.Background(), "S1")
	require.NoError(t, err)
	require.Len(t, grades, 1)
	assert.Equal(t, "Programming 1", grades[0].UnitName)
	assert.Equal(t, 2025, grades[0].Year)

	none, err := svc.GetGrades(context.Background(), "S2")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestStudentService_GetHistory(t *testing.T) {
	svc := newStudentFixture()

	history, err := svc.GetHistory(context.Background(), "S1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "registered", history[0].Action)
}

func TestStudentService_GetDetails(t *testing.T) {
	svc := newStudentFixture()

	details, err := svc.GetDetails(context.Background(), "S1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", details.FirstName)
	assert.Equal(t, 2025, details.ProgramYear)

	_, err = svc.GetDetails(context.Background(), "S2")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestStudentService_GetAvailableUnits(t *testing.T) {
	svc := newStudentFixture()

	units, err := svc.GetAvailableUnits(context.Background(), "CS", 1, "S1")
	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.Equal(t, "CS101", units[0].UnitCode)

	_, err = svc.GetAvailableUnits(context.Background(), "", 1, "S1")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
